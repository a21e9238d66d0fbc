// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/autodiag/refinery/ent/chunkevaluation"
	"github.com/autodiag/refinery/ent/crawlrequest"
	"github.com/autodiag/refinery/ent/document"
	"github.com/autodiag/refinery/ent/documentchunk"
	"github.com/autodiag/refinery/ent/dtccause"
	"github.com/autodiag/refinery/ent/dtcdiagnosticstep"
	"github.com/autodiag/refinery/ent/dtcmaster"
	"github.com/autodiag/refinery/ent/dtcrelatedsensor"
	"github.com/autodiag/refinery/ent/entitysource"
	"github.com/autodiag/refinery/ent/extractedcategory"
	"github.com/autodiag/refinery/ent/extractedcause"
	"github.com/autodiag/refinery/ent/extracteddtc"
	"github.com/autodiag/refinery/ent/extractedsensor"
	"github.com/autodiag/refinery/ent/extractedstep"
	"github.com/autodiag/refinery/ent/extractedtsb"
	"github.com/autodiag/refinery/ent/processinglog"
	"github.com/autodiag/refinery/ent/resolutionlog"
	"github.com/autodiag/refinery/ent/schema"
	"github.com/autodiag/refinery/ent/sensor"
	"github.com/autodiag/refinery/ent/tsbbulletin"
	"github.com/autodiag/refinery/ent/vehicle"
	"github.com/autodiag/refinery/ent/vehicledtc"
	"github.com/autodiag/refinery/ent/vehiclemention"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chunkevaluationFields := schema.ChunkEvaluation{}.Fields()
	_ = chunkevaluationFields
	// chunkevaluationDescTrustScore is the schema descriptor for trust_score field.
	chunkevaluationDescTrustScore := chunkevaluationFields[2].Descriptor()
	// chunkevaluation.TrustScoreValidator is a validator for the "trust_score" field. It is called by the builders before save.
	chunkevaluation.TrustScoreValidator = func() func(float64) error {
		validators := chunkevaluationDescTrustScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(trust_score float64) error {
			for _, fn := range fns {
				if err := fn(trust_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// chunkevaluationDescRelevanceScore is the schema descriptor for relevance_score field.
	chunkevaluationDescRelevanceScore := chunkevaluationFields[3].Descriptor()
	// chunkevaluation.RelevanceScoreValidator is a validator for the "relevance_score" field. It is called by the builders before save.
	chunkevaluation.RelevanceScoreValidator = func() func(float64) error {
		validators := chunkevaluationDescRelevanceScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(relevance_score float64) error {
			for _, fn := range fns {
				if err := fn(relevance_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// chunkevaluationDescEvaluatedAt is the schema descriptor for evaluated_at field.
	chunkevaluationDescEvaluatedAt := chunkevaluationFields[7].Descriptor()
	// chunkevaluation.DefaultEvaluatedAt holds the default value on creation for the evaluated_at field.
	chunkevaluation.DefaultEvaluatedAt = chunkevaluationDescEvaluatedAt.Default.(func() time.Time)
	// chunkevaluation.UpdateDefaultEvaluatedAt holds the default value on update for the evaluated_at field.
	chunkevaluation.UpdateDefaultEvaluatedAt = chunkevaluationDescEvaluatedAt.UpdateDefault.(func() time.Time)
	crawlrequestFields := schema.CrawlRequest{}.Fields()
	_ = crawlrequestFields
	// crawlrequestDescDepth is the schema descriptor for depth field.
	crawlrequestDescDepth := crawlrequestFields[3].Descriptor()
	// crawlrequest.DefaultDepth holds the default value on creation for the depth field.
	crawlrequest.DefaultDepth = crawlrequestDescDepth.Default.(int)
	// crawlrequest.DepthValidator is a validator for the "depth" field. It is called by the builders before save.
	crawlrequest.DepthValidator = crawlrequestDescDepth.Validators[0].(func(int) error)
	// crawlrequestDescMaxDepth is the schema descriptor for max_depth field.
	crawlrequestDescMaxDepth := crawlrequestFields[4].Descriptor()
	// crawlrequest.DefaultMaxDepth holds the default value on creation for the max_depth field.
	crawlrequest.DefaultMaxDepth = crawlrequestDescMaxDepth.Default.(int)
	// crawlrequest.MaxDepthValidator is a validator for the "max_depth" field. It is called by the builders before save.
	crawlrequest.MaxDepthValidator = crawlrequestDescMaxDepth.Validators[0].(func(int) error)
	// crawlrequestDescCreatedAt is the schema descriptor for created_at field.
	crawlrequestDescCreatedAt := crawlrequestFields[7].Descriptor()
	// crawlrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	crawlrequest.DefaultCreatedAt = crawlrequestDescCreatedAt.Default.(func() time.Time)
	dtccauseFields := schema.DTCCause{}.Fields()
	_ = dtccauseFields
	// dtccauseDescProbabilityWeight is the schema descriptor for probability_weight field.
	dtccauseDescProbabilityWeight := dtccauseFields[4].Descriptor()
	// dtccause.DefaultProbabilityWeight holds the default value on creation for the probability_weight field.
	dtccause.DefaultProbabilityWeight = dtccauseDescProbabilityWeight.Default.(float64)
	// dtccause.ProbabilityWeightValidator is a validator for the "probability_weight" field. It is called by the builders before save.
	dtccause.ProbabilityWeightValidator = func() func(float64) error {
		validators := dtccauseDescProbabilityWeight.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(probability_weight float64) error {
			for _, fn := range fns {
				if err := fn(probability_weight); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// dtccauseDescEvidenceCount is the schema descriptor for evidence_count field.
	dtccauseDescEvidenceCount := dtccauseFields[5].Descriptor()
	// dtccause.DefaultEvidenceCount holds the default value on creation for the evidence_count field.
	dtccause.DefaultEvidenceCount = dtccauseDescEvidenceCount.Default.(int)
	// dtccauseDescAvgTrust is the schema descriptor for avg_trust field.
	dtccauseDescAvgTrust := dtccauseFields[6].Descriptor()
	// dtccause.DefaultAvgTrust holds the default value on creation for the avg_trust field.
	dtccause.DefaultAvgTrust = dtccauseDescAvgTrust.Default.(float64)
	// dtccauseDescAvgRelevance is the schema descriptor for avg_relevance field.
	dtccauseDescAvgRelevance := dtccauseFields[7].Descriptor()
	// dtccause.DefaultAvgRelevance holds the default value on creation for the avg_relevance field.
	dtccause.DefaultAvgRelevance = dtccauseDescAvgRelevance.Default.(float64)
	// dtccauseDescConflictFlag is the schema descriptor for conflict_flag field.
	dtccauseDescConflictFlag := dtccauseFields[8].Descriptor()
	// dtccause.DefaultConflictFlag holds the default value on creation for the conflict_flag field.
	dtccause.DefaultConflictFlag = dtccauseDescConflictFlag.Default.(bool)
	// dtccauseDescCreatedAt is the schema descriptor for created_at field.
	dtccauseDescCreatedAt := dtccauseFields[9].Descriptor()
	// dtccause.DefaultCreatedAt holds the default value on creation for the created_at field.
	dtccause.DefaultCreatedAt = dtccauseDescCreatedAt.Default.(func() time.Time)
	// dtccauseDescUpdatedAt is the schema descriptor for updated_at field.
	dtccauseDescUpdatedAt := dtccauseFields[10].Descriptor()
	// dtccause.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dtccause.DefaultUpdatedAt = dtccauseDescUpdatedAt.Default.(func() time.Time)
	// dtccause.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dtccause.UpdateDefaultUpdatedAt = dtccauseDescUpdatedAt.UpdateDefault.(func() time.Time)
	dtcdiagnosticstepFields := schema.DTCDiagnosticStep{}.Fields()
	_ = dtcdiagnosticstepFields
	// dtcdiagnosticstepDescStepOrder is the schema descriptor for step_order field.
	dtcdiagnosticstepDescStepOrder := dtcdiagnosticstepFields[2].Descriptor()
	// dtcdiagnosticstep.DefaultStepOrder holds the default value on creation for the step_order field.
	dtcdiagnosticstep.DefaultStepOrder = dtcdiagnosticstepDescStepOrder.Default.(int)
	// dtcdiagnosticstepDescEvidenceCount is the schema descriptor for evidence_count field.
	dtcdiagnosticstepDescEvidenceCount := dtcdiagnosticstepFields[9].Descriptor()
	// dtcdiagnosticstep.DefaultEvidenceCount holds the default value on creation for the evidence_count field.
	dtcdiagnosticstep.DefaultEvidenceCount = dtcdiagnosticstepDescEvidenceCount.Default.(int)
	// dtcdiagnosticstepDescAvgTrust is the schema descriptor for avg_trust field.
	dtcdiagnosticstepDescAvgTrust := dtcdiagnosticstepFields[10].Descriptor()
	// dtcdiagnosticstep.DefaultAvgTrust holds the default value on creation for the avg_trust field.
	dtcdiagnosticstep.DefaultAvgTrust = dtcdiagnosticstepDescAvgTrust.Default.(float64)
	// dtcdiagnosticstepDescAvgRelevance is the schema descriptor for avg_relevance field.
	dtcdiagnosticstepDescAvgRelevance := dtcdiagnosticstepFields[11].Descriptor()
	// dtcdiagnosticstep.DefaultAvgRelevance holds the default value on creation for the avg_relevance field.
	dtcdiagnosticstep.DefaultAvgRelevance = dtcdiagnosticstepDescAvgRelevance.Default.(float64)
	// dtcdiagnosticstepDescConflictFlag is the schema descriptor for conflict_flag field.
	dtcdiagnosticstepDescConflictFlag := dtcdiagnosticstepFields[12].Descriptor()
	// dtcdiagnosticstep.DefaultConflictFlag holds the default value on creation for the conflict_flag field.
	dtcdiagnosticstep.DefaultConflictFlag = dtcdiagnosticstepDescConflictFlag.Default.(bool)
	// dtcdiagnosticstepDescCreatedAt is the schema descriptor for created_at field.
	dtcdiagnosticstepDescCreatedAt := dtcdiagnosticstepFields[13].Descriptor()
	// dtcdiagnosticstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	dtcdiagnosticstep.DefaultCreatedAt = dtcdiagnosticstepDescCreatedAt.Default.(func() time.Time)
	// dtcdiagnosticstepDescUpdatedAt is the schema descriptor for updated_at field.
	dtcdiagnosticstepDescUpdatedAt := dtcdiagnosticstepFields[14].Descriptor()
	// dtcdiagnosticstep.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dtcdiagnosticstep.DefaultUpdatedAt = dtcdiagnosticstepDescUpdatedAt.Default.(func() time.Time)
	// dtcdiagnosticstep.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dtcdiagnosticstep.UpdateDefaultUpdatedAt = dtcdiagnosticstepDescUpdatedAt.UpdateDefault.(func() time.Time)
	dtcmasterFields := schema.DTCMaster{}.Fields()
	_ = dtcmasterFields
	// dtcmasterDescCode is the schema descriptor for code field.
	dtcmasterDescCode := dtcmasterFields[1].Descriptor()
	// dtcmaster.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	dtcmaster.CodeValidator = dtcmasterDescCode.Validators[0].(func(string) error)
	// dtcmasterDescSystemCategory is the schema descriptor for system_category field.
	dtcmasterDescSystemCategory := dtcmasterFields[2].Descriptor()
	// dtcmaster.DefaultSystemCategory holds the default value on creation for the system_category field.
	dtcmaster.DefaultSystemCategory = dtcmasterDescSystemCategory.Default.(string)
	// dtcmasterDescDescriptionTrust is the schema descriptor for description_trust field.
	dtcmasterDescDescriptionTrust := dtcmasterFields[4].Descriptor()
	// dtcmaster.DefaultDescriptionTrust holds the default value on creation for the description_trust field.
	dtcmaster.DefaultDescriptionTrust = dtcmasterDescDescriptionTrust.Default.(float64)
	// dtcmasterDescSeverityLevel is the schema descriptor for severity_level field.
	dtcmasterDescSeverityLevel := dtcmasterFields[5].Descriptor()
	// dtcmaster.DefaultSeverityLevel holds the default value on creation for the severity_level field.
	dtcmaster.DefaultSeverityLevel = dtcmasterDescSeverityLevel.Default.(int)
	// dtcmaster.SeverityLevelValidator is a validator for the "severity_level" field. It is called by the builders before save.
	dtcmaster.SeverityLevelValidator = func() func(int) error {
		validators := dtcmasterDescSeverityLevel.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(severity_level int) error {
			for _, fn := range fns {
				if err := fn(severity_level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// dtcmasterDescEmissionsRelated is the schema descriptor for emissions_related field.
	dtcmasterDescEmissionsRelated := dtcmasterFields[6].Descriptor()
	// dtcmaster.DefaultEmissionsRelated holds the default value on creation for the emissions_related field.
	dtcmaster.DefaultEmissionsRelated = dtcmasterDescEmissionsRelated.Default.(bool)
	// dtcmasterDescEvidenceCount is the schema descriptor for evidence_count field.
	dtcmasterDescEvidenceCount := dtcmasterFields[7].Descriptor()
	// dtcmaster.DefaultEvidenceCount holds the default value on creation for the evidence_count field.
	dtcmaster.DefaultEvidenceCount = dtcmasterDescEvidenceCount.Default.(int)
	// dtcmasterDescAvgTrust is the schema descriptor for avg_trust field.
	dtcmasterDescAvgTrust := dtcmasterFields[8].Descriptor()
	// dtcmaster.DefaultAvgTrust holds the default value on creation for the avg_trust field.
	dtcmaster.DefaultAvgTrust = dtcmasterDescAvgTrust.Default.(float64)
	// dtcmasterDescAvgRelevance is the schema descriptor for avg_relevance field.
	dtcmasterDescAvgRelevance := dtcmasterFields[9].Descriptor()
	// dtcmaster.DefaultAvgRelevance holds the default value on creation for the avg_relevance field.
	dtcmaster.DefaultAvgRelevance = dtcmasterDescAvgRelevance.Default.(float64)
	// dtcmasterDescConfidenceScore is the schema descriptor for confidence_score field.
	dtcmasterDescConfidenceScore := dtcmasterFields[10].Descriptor()
	// dtcmaster.DefaultConfidenceScore holds the default value on creation for the confidence_score field.
	dtcmaster.DefaultConfidenceScore = dtcmasterDescConfidenceScore.Default.(float64)
	// dtcmasterDescConflictFlag is the schema descriptor for conflict_flag field.
	dtcmasterDescConflictFlag := dtcmasterFields[11].Descriptor()
	// dtcmaster.DefaultConflictFlag holds the default value on creation for the conflict_flag field.
	dtcmaster.DefaultConflictFlag = dtcmasterDescConflictFlag.Default.(bool)
	// dtcmasterDescCreatedAt is the schema descriptor for created_at field.
	dtcmasterDescCreatedAt := dtcmasterFields[12].Descriptor()
	// dtcmaster.DefaultCreatedAt holds the default value on creation for the created_at field.
	dtcmaster.DefaultCreatedAt = dtcmasterDescCreatedAt.Default.(func() time.Time)
	// dtcmasterDescUpdatedAt is the schema descriptor for updated_at field.
	dtcmasterDescUpdatedAt := dtcmasterFields[13].Descriptor()
	// dtcmaster.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dtcmaster.DefaultUpdatedAt = dtcmasterDescUpdatedAt.Default.(func() time.Time)
	// dtcmaster.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dtcmaster.UpdateDefaultUpdatedAt = dtcmasterDescUpdatedAt.UpdateDefault.(func() time.Time)
	dtcrelatedsensorFields := schema.DTCRelatedSensor{}.Fields()
	_ = dtcrelatedsensorFields
	// dtcrelatedsensorDescPriorityRank is the schema descriptor for priority_rank field.
	dtcrelatedsensorDescPriorityRank := dtcrelatedsensorFields[3].Descriptor()
	// dtcrelatedsensor.DefaultPriorityRank holds the default value on creation for the priority_rank field.
	dtcrelatedsensor.DefaultPriorityRank = dtcrelatedsensorDescPriorityRank.Default.(int)
	// dtcrelatedsensorDescEvidenceCount is the schema descriptor for evidence_count field.
	dtcrelatedsensorDescEvidenceCount := dtcrelatedsensorFields[4].Descriptor()
	// dtcrelatedsensor.DefaultEvidenceCount holds the default value on creation for the evidence_count field.
	dtcrelatedsensor.DefaultEvidenceCount = dtcrelatedsensorDescEvidenceCount.Default.(int)
	// dtcrelatedsensorDescAvgTrust is the schema descriptor for avg_trust field.
	dtcrelatedsensorDescAvgTrust := dtcrelatedsensorFields[5].Descriptor()
	// dtcrelatedsensor.DefaultAvgTrust holds the default value on creation for the avg_trust field.
	dtcrelatedsensor.DefaultAvgTrust = dtcrelatedsensorDescAvgTrust.Default.(float64)
	// dtcrelatedsensorDescAvgRelevance is the schema descriptor for avg_relevance field.
	dtcrelatedsensorDescAvgRelevance := dtcrelatedsensorFields[6].Descriptor()
	// dtcrelatedsensor.DefaultAvgRelevance holds the default value on creation for the avg_relevance field.
	dtcrelatedsensor.DefaultAvgRelevance = dtcrelatedsensorDescAvgRelevance.Default.(float64)
	// dtcrelatedsensorDescConflictFlag is the schema descriptor for conflict_flag field.
	dtcrelatedsensorDescConflictFlag := dtcrelatedsensorFields[7].Descriptor()
	// dtcrelatedsensor.DefaultConflictFlag holds the default value on creation for the conflict_flag field.
	dtcrelatedsensor.DefaultConflictFlag = dtcrelatedsensorDescConflictFlag.Default.(bool)
	// dtcrelatedsensorDescCreatedAt is the schema descriptor for created_at field.
	dtcrelatedsensorDescCreatedAt := dtcrelatedsensorFields[8].Descriptor()
	// dtcrelatedsensor.DefaultCreatedAt holds the default value on creation for the created_at field.
	dtcrelatedsensor.DefaultCreatedAt = dtcrelatedsensorDescCreatedAt.Default.(func() time.Time)
	// dtcrelatedsensorDescUpdatedAt is the schema descriptor for updated_at field.
	dtcrelatedsensorDescUpdatedAt := dtcrelatedsensorFields[9].Descriptor()
	// dtcrelatedsensor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dtcrelatedsensor.DefaultUpdatedAt = dtcrelatedsensorDescUpdatedAt.Default.(func() time.Time)
	// dtcrelatedsensor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dtcrelatedsensor.UpdateDefaultUpdatedAt = dtcrelatedsensorDescUpdatedAt.UpdateDefault.(func() time.Time)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescTitle is the schema descriptor for title field.
	documentDescTitle := documentFields[1].Descriptor()
	// document.DefaultTitle holds the default value on creation for the title field.
	document.DefaultTitle = documentDescTitle.Default.(string)
	// documentDescMimeType is the schema descriptor for mime_type field.
	documentDescMimeType := documentFields[4].Descriptor()
	// document.DefaultMimeType holds the default value on creation for the mime_type field.
	document.DefaultMimeType = documentDescMimeType.Default.(string)
	// documentDescChunkCount is the schema descriptor for chunk_count field.
	documentDescChunkCount := documentFields[9].Descriptor()
	// document.DefaultChunkCount holds the default value on creation for the chunk_count field.
	document.DefaultChunkCount = documentDescChunkCount.Default.(int)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[12].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[13].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	documentchunkFields := schema.DocumentChunk{}.Fields()
	_ = documentchunkFields
	// documentchunkDescChunkIndex is the schema descriptor for chunk_index field.
	documentchunkDescChunkIndex := documentchunkFields[2].Descriptor()
	// documentchunk.ChunkIndexValidator is a validator for the "chunk_index" field. It is called by the builders before save.
	documentchunk.ChunkIndexValidator = documentchunkDescChunkIndex.Validators[0].(func(int) error)
	// documentchunkDescTokenCount is the schema descriptor for token_count field.
	documentchunkDescTokenCount := documentchunkFields[6].Descriptor()
	// documentchunk.DefaultTokenCount holds the default value on creation for the token_count field.
	documentchunk.DefaultTokenCount = documentchunkDescTokenCount.Default.(int)
	// documentchunkDescCreatedAt is the schema descriptor for created_at field.
	documentchunkDescCreatedAt := documentchunkFields[8].Descriptor()
	// documentchunk.DefaultCreatedAt holds the default value on creation for the created_at field.
	documentchunk.DefaultCreatedAt = documentchunkDescCreatedAt.Default.(func() time.Time)
	entitysourceFields := schema.EntitySource{}.Fields()
	_ = entitysourceFields
	// entitysourceDescTrustScore is the schema descriptor for trust_score field.
	entitysourceDescTrustScore := entitysourceFields[4].Descriptor()
	// entitysource.DefaultTrustScore holds the default value on creation for the trust_score field.
	entitysource.DefaultTrustScore = entitysourceDescTrustScore.Default.(float64)
	// entitysourceDescRelevanceScore is the schema descriptor for relevance_score field.
	entitysourceDescRelevanceScore := entitysourceFields[5].Descriptor()
	// entitysource.DefaultRelevanceScore holds the default value on creation for the relevance_score field.
	entitysource.DefaultRelevanceScore = entitysourceDescRelevanceScore.Default.(float64)
	// entitysourceDescExtractedAt is the schema descriptor for extracted_at field.
	entitysourceDescExtractedAt := entitysourceFields[6].Descriptor()
	// entitysource.DefaultExtractedAt holds the default value on creation for the extracted_at field.
	entitysource.DefaultExtractedAt = entitysourceDescExtractedAt.Default.(func() time.Time)
	extractedcategoryFields := schema.ExtractedCategory{}.Fields()
	_ = extractedcategoryFields
	// extractedcategoryDescCreatedAt is the schema descriptor for created_at field.
	extractedcategoryDescCreatedAt := extractedcategoryFields[4].Descriptor()
	// extractedcategory.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractedcategory.DefaultCreatedAt = extractedcategoryDescCreatedAt.Default.(func() time.Time)
	extractedcauseFields := schema.ExtractedCause{}.Fields()
	_ = extractedcauseFields
	// extractedcauseDescTrust is the schema descriptor for trust field.
	extractedcauseDescTrust := extractedcauseFields[6].Descriptor()
	// extractedcause.DefaultTrust holds the default value on creation for the trust field.
	extractedcause.DefaultTrust = extractedcauseDescTrust.Default.(float64)
	// extractedcauseDescRelevance is the schema descriptor for relevance field.
	extractedcauseDescRelevance := extractedcauseFields[7].Descriptor()
	// extractedcause.DefaultRelevance holds the default value on creation for the relevance field.
	extractedcause.DefaultRelevance = extractedcauseDescRelevance.Default.(float64)
	// extractedcauseDescCreatedAt is the schema descriptor for created_at field.
	extractedcauseDescCreatedAt := extractedcauseFields[8].Descriptor()
	// extractedcause.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractedcause.DefaultCreatedAt = extractedcauseDescCreatedAt.Default.(func() time.Time)
	extracteddtcFields := schema.ExtractedDTC{}.Fields()
	_ = extracteddtcFields
	// extracteddtcDescTrust is the schema descriptor for trust field.
	extracteddtcDescTrust := extracteddtcFields[7].Descriptor()
	// extracteddtc.DefaultTrust holds the default value on creation for the trust field.
	extracteddtc.DefaultTrust = extracteddtcDescTrust.Default.(float64)
	// extracteddtcDescRelevance is the schema descriptor for relevance field.
	extracteddtcDescRelevance := extracteddtcFields[8].Descriptor()
	// extracteddtc.DefaultRelevance holds the default value on creation for the relevance field.
	extracteddtc.DefaultRelevance = extracteddtcDescRelevance.Default.(float64)
	// extracteddtcDescCreatedAt is the schema descriptor for created_at field.
	extracteddtcDescCreatedAt := extracteddtcFields[9].Descriptor()
	// extracteddtc.DefaultCreatedAt holds the default value on creation for the created_at field.
	extracteddtc.DefaultCreatedAt = extracteddtcDescCreatedAt.Default.(func() time.Time)
	extractedsensorFields := schema.ExtractedSensor{}.Fields()
	_ = extractedsensorFields
	// extractedsensorDescTrust is the schema descriptor for trust field.
	extractedsensorDescTrust := extractedsensorFields[8].Descriptor()
	// extractedsensor.DefaultTrust holds the default value on creation for the trust field.
	extractedsensor.DefaultTrust = extractedsensorDescTrust.Default.(float64)
	// extractedsensorDescRelevance is the schema descriptor for relevance field.
	extractedsensorDescRelevance := extractedsensorFields[9].Descriptor()
	// extractedsensor.DefaultRelevance holds the default value on creation for the relevance field.
	extractedsensor.DefaultRelevance = extractedsensorDescRelevance.Default.(float64)
	// extractedsensorDescCreatedAt is the schema descriptor for created_at field.
	extractedsensorDescCreatedAt := extractedsensorFields[10].Descriptor()
	// extractedsensor.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractedsensor.DefaultCreatedAt = extractedsensorDescCreatedAt.Default.(func() time.Time)
	extractedstepFields := schema.ExtractedStep{}.Fields()
	_ = extractedstepFields
	// extractedstepDescStepOrder is the schema descriptor for step_order field.
	extractedstepDescStepOrder := extractedstepFields[3].Descriptor()
	// extractedstep.DefaultStepOrder holds the default value on creation for the step_order field.
	extractedstep.DefaultStepOrder = extractedstepDescStepOrder.Default.(int)
	// extractedstepDescTrust is the schema descriptor for trust field.
	extractedstepDescTrust := extractedstepFields[8].Descriptor()
	// extractedstep.DefaultTrust holds the default value on creation for the trust field.
	extractedstep.DefaultTrust = extractedstepDescTrust.Default.(float64)
	// extractedstepDescRelevance is the schema descriptor for relevance field.
	extractedstepDescRelevance := extractedstepFields[9].Descriptor()
	// extractedstep.DefaultRelevance holds the default value on creation for the relevance field.
	extractedstep.DefaultRelevance = extractedstepDescRelevance.Default.(float64)
	// extractedstepDescCreatedAt is the schema descriptor for created_at field.
	extractedstepDescCreatedAt := extractedstepFields[10].Descriptor()
	// extractedstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractedstep.DefaultCreatedAt = extractedstepDescCreatedAt.Default.(func() time.Time)
	extractedtsbFields := schema.ExtractedTSB{}.Fields()
	_ = extractedtsbFields
	// extractedtsbDescTrust is the schema descriptor for trust field.
	extractedtsbDescTrust := extractedtsbFields[8].Descriptor()
	// extractedtsb.DefaultTrust holds the default value on creation for the trust field.
	extractedtsb.DefaultTrust = extractedtsbDescTrust.Default.(float64)
	// extractedtsbDescRelevance is the schema descriptor for relevance field.
	extractedtsbDescRelevance := extractedtsbFields[9].Descriptor()
	// extractedtsb.DefaultRelevance holds the default value on creation for the relevance field.
	extractedtsb.DefaultRelevance = extractedtsbDescRelevance.Default.(float64)
	// extractedtsbDescCreatedAt is the schema descriptor for created_at field.
	extractedtsbDescCreatedAt := extractedtsbFields[10].Descriptor()
	// extractedtsb.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractedtsb.DefaultCreatedAt = extractedtsbDescCreatedAt.Default.(func() time.Time)
	processinglogFields := schema.ProcessingLog{}.Fields()
	_ = processinglogFields
	// processinglogDescCreatedAt is the schema descriptor for created_at field.
	processinglogDescCreatedAt := processinglogFields[6].Descriptor()
	// processinglog.DefaultCreatedAt holds the default value on creation for the created_at field.
	processinglog.DefaultCreatedAt = processinglogDescCreatedAt.Default.(func() time.Time)
	resolutionlogFields := schema.ResolutionLog{}.Fields()
	_ = resolutionlogFields
	// resolutionlogDescCreatedAt is the schema descriptor for created_at field.
	resolutionlogDescCreatedAt := resolutionlogFields[7].Descriptor()
	// resolutionlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	resolutionlog.DefaultCreatedAt = resolutionlogDescCreatedAt.Default.(func() time.Time)
	sensorFields := schema.Sensor{}.Fields()
	_ = sensorFields
	// sensorDescCreatedAt is the schema descriptor for created_at field.
	sensorDescCreatedAt := sensorFields[5].Descriptor()
	// sensor.DefaultCreatedAt holds the default value on creation for the created_at field.
	sensor.DefaultCreatedAt = sensorDescCreatedAt.Default.(func() time.Time)
	tsbbulletinFields := schema.TSBBulletin{}.Fields()
	_ = tsbbulletinFields
	// tsbbulletinDescEvidenceCount is the schema descriptor for evidence_count field.
	tsbbulletinDescEvidenceCount := tsbbulletinFields[6].Descriptor()
	// tsbbulletin.DefaultEvidenceCount holds the default value on creation for the evidence_count field.
	tsbbulletin.DefaultEvidenceCount = tsbbulletinDescEvidenceCount.Default.(int)
	// tsbbulletinDescAvgTrust is the schema descriptor for avg_trust field.
	tsbbulletinDescAvgTrust := tsbbulletinFields[7].Descriptor()
	// tsbbulletin.DefaultAvgTrust holds the default value on creation for the avg_trust field.
	tsbbulletin.DefaultAvgTrust = tsbbulletinDescAvgTrust.Default.(float64)
	// tsbbulletinDescAvgRelevance is the schema descriptor for avg_relevance field.
	tsbbulletinDescAvgRelevance := tsbbulletinFields[8].Descriptor()
	// tsbbulletin.DefaultAvgRelevance holds the default value on creation for the avg_relevance field.
	tsbbulletin.DefaultAvgRelevance = tsbbulletinDescAvgRelevance.Default.(float64)
	// tsbbulletinDescCreatedAt is the schema descriptor for created_at field.
	tsbbulletinDescCreatedAt := tsbbulletinFields[9].Descriptor()
	// tsbbulletin.DefaultCreatedAt holds the default value on creation for the created_at field.
	tsbbulletin.DefaultCreatedAt = tsbbulletinDescCreatedAt.Default.(func() time.Time)
	// tsbbulletinDescUpdatedAt is the schema descriptor for updated_at field.
	tsbbulletinDescUpdatedAt := tsbbulletinFields[10].Descriptor()
	// tsbbulletin.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tsbbulletin.DefaultUpdatedAt = tsbbulletinDescUpdatedAt.Default.(func() time.Time)
	// tsbbulletin.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tsbbulletin.UpdateDefaultUpdatedAt = tsbbulletinDescUpdatedAt.UpdateDefault.(func() time.Time)
	vehicleFields := schema.Vehicle{}.Fields()
	_ = vehicleFields
	// vehicleDescCreatedAt is the schema descriptor for created_at field.
	vehicleDescCreatedAt := vehicleFields[7].Descriptor()
	// vehicle.DefaultCreatedAt holds the default value on creation for the created_at field.
	vehicle.DefaultCreatedAt = vehicleDescCreatedAt.Default.(func() time.Time)
	// vehicleDescUpdatedAt is the schema descriptor for updated_at field.
	vehicleDescUpdatedAt := vehicleFields[8].Descriptor()
	// vehicle.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vehicle.DefaultUpdatedAt = vehicleDescUpdatedAt.Default.(func() time.Time)
	// vehicle.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vehicle.UpdateDefaultUpdatedAt = vehicleDescUpdatedAt.UpdateDefault.(func() time.Time)
	vehicledtcFields := schema.VehicleDTC{}.Fields()
	_ = vehicledtcFields
	// vehicledtcDescConfidenceScore is the schema descriptor for confidence_score field.
	vehicledtcDescConfidenceScore := vehicledtcFields[4].Descriptor()
	// vehicledtc.DefaultConfidenceScore holds the default value on creation for the confidence_score field.
	vehicledtc.DefaultConfidenceScore = vehicledtcDescConfidenceScore.Default.(float64)
	// vehicledtcDescCreatedAt is the schema descriptor for created_at field.
	vehicledtcDescCreatedAt := vehicledtcFields[5].Descriptor()
	// vehicledtc.DefaultCreatedAt holds the default value on creation for the created_at field.
	vehicledtc.DefaultCreatedAt = vehicledtcDescCreatedAt.Default.(func() time.Time)
	vehiclementionFields := schema.VehicleMention{}.Fields()
	_ = vehiclementionFields
	// vehiclementionDescLinked is the schema descriptor for linked field.
	vehiclementionDescLinked := vehiclementionFields[9].Descriptor()
	// vehiclemention.DefaultLinked holds the default value on creation for the linked field.
	vehiclemention.DefaultLinked = vehiclementionDescLinked.Default.(bool)
	// vehiclementionDescTrust is the schema descriptor for trust field.
	vehiclementionDescTrust := vehiclementionFields[11].Descriptor()
	// vehiclemention.DefaultTrust holds the default value on creation for the trust field.
	vehiclemention.DefaultTrust = vehiclementionDescTrust.Default.(float64)
	// vehiclementionDescRelevance is the schema descriptor for relevance field.
	vehiclementionDescRelevance := vehiclementionFields[12].Descriptor()
	// vehiclemention.DefaultRelevance holds the default value on creation for the relevance field.
	vehiclemention.DefaultRelevance = vehiclementionDescRelevance.Default.(float64)
	// vehiclementionDescCreatedAt is the schema descriptor for created_at field.
	vehiclementionDescCreatedAt := vehiclementionFields[13].Descriptor()
	// vehiclemention.DefaultCreatedAt holds the default value on creation for the created_at field.
	vehiclemention.DefaultCreatedAt = vehiclementionDescCreatedAt.Default.(func() time.Time)
}
