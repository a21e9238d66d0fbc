// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChunkEvaluationsColumns holds the columns for the "chunk_evaluations" table.
	ChunkEvaluationsColumns = []*schema.Column{
		{Name: "evaluation_id", Type: field.TypeString, Unique: true},
		{Name: "trust_score", Type: field.TypeFloat64},
		{Name: "relevance_score", Type: field.TypeFloat64},
		{Name: "automotive_domain", Type: field.TypeEnum, Enums: []string{"obd", "electrical", "engine", "transmission", "brakes", "suspension", "hvac", "body", "general", "unknown"}, Default: "unknown"},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "model_used", Type: field.TypeString, Nullable: true},
		{Name: "evaluated_at", Type: field.TypeTime},
		{Name: "chunk_id", Type: field.TypeString, Unique: true},
	}
	// ChunkEvaluationsTable holds the schema information for the "chunk_evaluations" table.
	ChunkEvaluationsTable = &schema.Table{
		Name:       "chunk_evaluations",
		Columns:    ChunkEvaluationsColumns,
		PrimaryKey: []*schema.Column{ChunkEvaluationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chunk_evaluations_document_chunks_evaluation",
				Columns:    []*schema.Column{ChunkEvaluationsColumns[7]},
				RefColumns: []*schema.Column{DocumentChunksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chunkevaluation_relevance_score",
				Unique:  false,
				Columns: []*schema.Column{ChunkEvaluationsColumns[2]},
			},
		},
	}
	// CrawlRequestsColumns holds the columns for the "crawl_requests" table.
	CrawlRequestsColumns = []*schema.Column{
		{Name: "crawl_request_id", Type: field.TypeString, Unique: true},
		{Name: "url", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "active", "completed", "failed"}, Default: "pending"},
		{Name: "depth", Type: field.TypeInt, Default: 0},
		{Name: "max_depth", Type: field.TypeInt, Default: 1},
		{Name: "parent_url", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// CrawlRequestsTable holds the schema information for the "crawl_requests" table.
	CrawlRequestsTable = &schema.Table{
		Name:       "crawl_requests",
		Columns:    CrawlRequestsColumns,
		PrimaryKey: []*schema.Column{CrawlRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "crawlrequest_status",
				Unique:  false,
				Columns: []*schema.Column{CrawlRequestsColumns[2]},
			},
			{
				Name:    "crawlrequest_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{CrawlRequestsColumns[2], CrawlRequestsColumns[7]},
			},
		},
	}
	// DtcPossibleCausesColumns holds the columns for the "dtc_possible_causes" table.
	DtcPossibleCausesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "dtc_master_id", Type: field.TypeString},
		{Name: "cause", Type: field.TypeString, Size: 2147483647},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "probability_weight", Type: field.TypeFloat64, Default: 0.5},
		{Name: "evidence_count", Type: field.TypeInt, Default: 1},
		{Name: "avg_trust", Type: field.TypeFloat64, Default: 0},
		{Name: "avg_relevance", Type: field.TypeFloat64, Default: 0},
		{Name: "conflict_flag", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DtcPossibleCausesTable holds the schema information for the "dtc_possible_causes" table.
	DtcPossibleCausesTable = &schema.Table{
		Name:       "dtc_possible_causes",
		Columns:    DtcPossibleCausesColumns,
		PrimaryKey: []*schema.Column{DtcPossibleCausesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dtccause_dtc_master_id_fingerprint",
				Unique:  true,
				Columns: []*schema.Column{DtcPossibleCausesColumns[1], DtcPossibleCausesColumns[3]},
			},
		},
	}
	// DtcDiagnosticStepsColumns holds the columns for the "dtc_diagnostic_steps" table.
	DtcDiagnosticStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "dtc_master_id", Type: field.TypeString},
		{Name: "step_order", Type: field.TypeInt, Default: 1},
		{Name: "instruction", Type: field.TypeString, Size: 2147483647},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "tools_required", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "expected_values", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "pass_next_step_id", Type: field.TypeString, Nullable: true},
		{Name: "fail_next_step_id", Type: field.TypeString, Nullable: true},
		{Name: "evidence_count", Type: field.TypeInt, Default: 1},
		{Name: "avg_trust", Type: field.TypeFloat64, Default: 0},
		{Name: "avg_relevance", Type: field.TypeFloat64, Default: 0},
		{Name: "conflict_flag", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DtcDiagnosticStepsTable holds the schema information for the "dtc_diagnostic_steps" table.
	DtcDiagnosticStepsTable = &schema.Table{
		Name:       "dtc_diagnostic_steps",
		Columns:    DtcDiagnosticStepsColumns,
		PrimaryKey: []*schema.Column{DtcDiagnosticStepsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dtcdiagnosticstep_dtc_master_id_fingerprint",
				Unique:  true,
				Columns: []*schema.Column{DtcDiagnosticStepsColumns[1], DtcDiagnosticStepsColumns[4]},
			},
			{
				Name:    "dtcdiagnosticstep_dtc_master_id_step_order",
				Unique:  false,
				Columns: []*schema.Column{DtcDiagnosticStepsColumns[1], DtcDiagnosticStepsColumns[2]},
			},
		},
	}
	// DtcMasterColumns holds the columns for the "dtc_master" table.
	DtcMasterColumns = []*schema.Column{
		{Name: "dtc_master_id", Type: field.TypeString, Unique: true},
		{Name: "code", Type: field.TypeString, Unique: true, Size: 5},
		{Name: "system_category", Type: field.TypeString, Default: "unknown"},
		{Name: "generic_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "description_trust", Type: field.TypeFloat64, Default: 0},
		{Name: "severity_level", Type: field.TypeInt, Default: 3},
		{Name: "emissions_related", Type: field.TypeBool, Default: false},
		{Name: "evidence_count", Type: field.TypeInt, Default: 0},
		{Name: "avg_trust", Type: field.TypeFloat64, Default: 0},
		{Name: "avg_relevance", Type: field.TypeFloat64, Default: 0},
		{Name: "confidence_score", Type: field.TypeFloat64, Default: 0},
		{Name: "conflict_flag", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DtcMasterTable holds the schema information for the "dtc_master" table.
	DtcMasterTable = &schema.Table{
		Name:       "dtc_master",
		Columns:    DtcMasterColumns,
		PrimaryKey: []*schema.Column{DtcMasterColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dtcmaster_system_category",
				Unique:  false,
				Columns: []*schema.Column{DtcMasterColumns[2]},
			},
		},
	}
	// DtcRelatedSensorsColumns holds the columns for the "dtc_related_sensors" table.
	DtcRelatedSensorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "dtc_master_id", Type: field.TypeString},
		{Name: "sensor_id", Type: field.TypeString},
		{Name: "priority_rank", Type: field.TypeInt, Default: 1},
		{Name: "evidence_count", Type: field.TypeInt, Default: 1},
		{Name: "avg_trust", Type: field.TypeFloat64, Default: 0},
		{Name: "avg_relevance", Type: field.TypeFloat64, Default: 0},
		{Name: "conflict_flag", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DtcRelatedSensorsTable holds the schema information for the "dtc_related_sensors" table.
	DtcRelatedSensorsTable = &schema.Table{
		Name:       "dtc_related_sensors",
		Columns:    DtcRelatedSensorsColumns,
		PrimaryKey: []*schema.Column{DtcRelatedSensorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dtcrelatedsensor_dtc_master_id_sensor_id",
				Unique:  true,
				Columns: []*schema.Column{DtcRelatedSensorsColumns[1], DtcRelatedSensorsColumns[2]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "document_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Default: "Untitled"},
		{Name: "source_url", Type: field.TypeString, Nullable: true},
		{Name: "content_hash", Type: field.TypeString, Unique: true},
		{Name: "mime_type", Type: field.TypeString, Default: "text/plain"},
		{Name: "blob_bucket", Type: field.TypeString, Nullable: true},
		{Name: "blob_key", Type: field.TypeString, Nullable: true},
		{Name: "processing_stage", Type: field.TypeEnum, Enums: []string{"pending", "chunking", "embedding", "evaluating", "extracting", "resolving", "complete", "error"}, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "chunk_count", Type: field.TypeInt, Default: 0},
		{Name: "document_category", Type: field.TypeString, Nullable: true},
		{Name: "confidence_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_processing_stage",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[7]},
			},
			{
				Name:    "document_processing_stage_updated_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[7], DocumentsColumns[13]},
			},
		},
	}
	// DocumentChunksColumns holds the columns for the "document_chunks" table.
	DocumentChunksColumns = []*schema.Column{
		{Name: "chunk_id", Type: field.TypeString, Unique: true},
		{Name: "chunk_index", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "char_start", Type: field.TypeInt},
		{Name: "char_end", Type: field.TypeInt},
		{Name: "token_count", Type: field.TypeInt, Default: 0},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeString},
	}
	// DocumentChunksTable holds the schema information for the "document_chunks" table.
	DocumentChunksTable = &schema.Table{
		Name:       "document_chunks",
		Columns:    DocumentChunksColumns,
		PrimaryKey: []*schema.Column{DocumentChunksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_chunks_documents_chunks",
				Columns:    []*schema.Column{DocumentChunksColumns[8]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documentchunk_document_id_chunk_index",
				Unique:  true,
				Columns: []*schema.Column{DocumentChunksColumns[8], DocumentChunksColumns[1]},
			},
		},
	}
	// EntitySourcesColumns holds the columns for the "entity_sources" table.
	EntitySourcesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "entity_table", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "trust_score", Type: field.TypeFloat64, Default: 0},
		{Name: "relevance_score", Type: field.TypeFloat64, Default: 0},
		{Name: "extracted_at", Type: field.TypeTime},
		{Name: "chunk_id", Type: field.TypeString},
	}
	// EntitySourcesTable holds the schema information for the "entity_sources" table.
	EntitySourcesTable = &schema.Table{
		Name:       "entity_sources",
		Columns:    EntitySourcesColumns,
		PrimaryKey: []*schema.Column{EntitySourcesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entity_sources_document_chunks_sources",
				Columns:    []*schema.Column{EntitySourcesColumns[6]},
				RefColumns: []*schema.Column{DocumentChunksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "entitysource_entity_table_entity_id_chunk_id",
				Unique:  true,
				Columns: []*schema.Column{EntitySourcesColumns[1], EntitySourcesColumns[2], EntitySourcesColumns[6]},
			},
			{
				Name:    "entitysource_chunk_id",
				Unique:  false,
				Columns: []*schema.Column{EntitySourcesColumns[6]},
			},
		},
	}
	// ExtractedCategoriesColumns holds the columns for the "extracted_categories" table.
	ExtractedCategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "document_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "source_chunk_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExtractedCategoriesTable holds the schema information for the "extracted_categories" table.
	ExtractedCategoriesTable = &schema.Table{
		Name:       "extracted_categories",
		Columns:    ExtractedCategoriesColumns,
		PrimaryKey: []*schema.Column{ExtractedCategoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractedcategory_document_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractedCategoriesColumns[1]},
			},
		},
	}
	// ExtractedCausesColumns holds the columns for the "extracted_causes" table.
	ExtractedCausesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "document_id", Type: field.TypeString},
		{Name: "dtc_code", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "likelihood", Type: field.TypeString, Nullable: true},
		{Name: "source_chunk_id", Type: field.TypeString},
		{Name: "trust", Type: field.TypeFloat64, Default: 0},
		{Name: "relevance", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExtractedCausesTable holds the schema information for the "extracted_causes" table.
	ExtractedCausesTable = &schema.Table{
		Name:       "extracted_causes",
		Columns:    ExtractedCausesColumns,
		PrimaryKey: []*schema.Column{ExtractedCausesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractedcause_document_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractedCausesColumns[1]},
			},
			{
				Name:    "extractedcause_dtc_code",
				Unique:  false,
				Columns: []*schema.Column{ExtractedCausesColumns[2]},
			},
		},
	}
	// ExtractedDtcsColumns holds the columns for the "extracted_dtcs" table.
	ExtractedDtcsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "document_id", Type: field.TypeString},
		{Name: "code", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "severity", Type: field.TypeString, Nullable: true},
		{Name: "source_chunk_id", Type: field.TypeString},
		{Name: "trust", Type: field.TypeFloat64, Default: 0},
		{Name: "relevance", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExtractedDtcsTable holds the schema information for the "extracted_dtcs" table.
	ExtractedDtcsTable = &schema.Table{
		Name:       "extracted_dtcs",
		Columns:    ExtractedDtcsColumns,
		PrimaryKey: []*schema.Column{ExtractedDtcsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extracteddtc_document_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractedDtcsColumns[1]},
			},
			{
				Name:    "extracteddtc_code",
				Unique:  false,
				Columns: []*schema.Column{ExtractedDtcsColumns[2]},
			},
		},
	}
	// ExtractedSensorsColumns holds the columns for the "extracted_sensors" table.
	ExtractedSensorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "document_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "sensor_type", Type: field.TypeString, Nullable: true},
		{Name: "typical_range", Type: field.TypeString, Nullable: true},
		{Name: "unit", Type: field.TypeString, Nullable: true},
		{Name: "related_dtc_codes", Type: field.TypeJSON, Nullable: true},
		{Name: "source_chunk_id", Type: field.TypeString},
		{Name: "trust", Type: field.TypeFloat64, Default: 0},
		{Name: "relevance", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExtractedSensorsTable holds the schema information for the "extracted_sensors" table.
	ExtractedSensorsTable = &schema.Table{
		Name:       "extracted_sensors",
		Columns:    ExtractedSensorsColumns,
		PrimaryKey: []*schema.Column{ExtractedSensorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractedsensor_document_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractedSensorsColumns[1]},
			},
		},
	}
	// ExtractedStepsColumns holds the columns for the "extracted_steps" table.
	ExtractedStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "document_id", Type: field.TypeString},
		{Name: "dtc_code", Type: field.TypeString},
		{Name: "step_order", Type: field.TypeInt, Default: 0},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "tools_required", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "expected_values", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "source_chunk_id", Type: field.TypeString},
		{Name: "trust", Type: field.TypeFloat64, Default: 0},
		{Name: "relevance", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExtractedStepsTable holds the schema information for the "extracted_steps" table.
	ExtractedStepsTable = &schema.Table{
		Name:       "extracted_steps",
		Columns:    ExtractedStepsColumns,
		PrimaryKey: []*schema.Column{ExtractedStepsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractedstep_document_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractedStepsColumns[1]},
			},
			{
				Name:    "extractedstep_dtc_code_step_order",
				Unique:  false,
				Columns: []*schema.Column{ExtractedStepsColumns[2], ExtractedStepsColumns[3]},
			},
		},
	}
	// ExtractedTsbsColumns holds the columns for the "extracted_tsbs" table.
	ExtractedTsbsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "document_id", Type: field.TypeString},
		{Name: "tsb_number", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "affected_models", Type: field.TypeString, Nullable: true},
		{Name: "related_dtc_codes", Type: field.TypeJSON, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "source_chunk_id", Type: field.TypeString},
		{Name: "trust", Type: field.TypeFloat64, Default: 0},
		{Name: "relevance", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExtractedTsbsTable holds the schema information for the "extracted_tsbs" table.
	ExtractedTsbsTable = &schema.Table{
		Name:       "extracted_tsbs",
		Columns:    ExtractedTsbsColumns,
		PrimaryKey: []*schema.Column{ExtractedTsbsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractedtsb_document_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractedTsbsColumns[1]},
			},
			{
				Name:    "extractedtsb_tsb_number",
				Unique:  false,
				Columns: []*schema.Column{ExtractedTsbsColumns[2]},
			},
		},
	}
	// ProcessingLogsColumns holds the columns for the "processing_logs" table.
	ProcessingLogsColumns = []*schema.Column{
		{Name: "log_id", Type: field.TypeString, Unique: true},
		{Name: "stage", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"started", "completed", "error"}},
		{Name: "message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeString},
	}
	// ProcessingLogsTable holds the schema information for the "processing_logs" table.
	ProcessingLogsTable = &schema.Table{
		Name:       "processing_logs",
		Columns:    ProcessingLogsColumns,
		PrimaryKey: []*schema.Column{ProcessingLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "processing_logs_documents_processing_logs",
				Columns:    []*schema.Column{ProcessingLogsColumns[6]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processinglog_document_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingLogsColumns[6], ProcessingLogsColumns[5]},
			},
			{
				Name:    "processinglog_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingLogsColumns[5]},
			},
		},
	}
	// ResolutionLogsColumns holds the columns for the "resolution_logs" table.
	ResolutionLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "document_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"created", "updated", "merged", "rejected"}},
		{Name: "entity_table", Type: field.TypeString, Nullable: true},
		{Name: "entity_id", Type: field.TypeString, Nullable: true},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ResolutionLogsTable holds the schema information for the "resolution_logs" table.
	ResolutionLogsTable = &schema.Table{
		Name:       "resolution_logs",
		Columns:    ResolutionLogsColumns,
		PrimaryKey: []*schema.Column{ResolutionLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resolutionlog_run_id",
				Unique:  false,
				Columns: []*schema.Column{ResolutionLogsColumns[1]},
			},
			{
				Name:    "resolutionlog_document_id",
				Unique:  false,
				Columns: []*schema.Column{ResolutionLogsColumns[2]},
			},
			{
				Name:    "resolutionlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{ResolutionLogsColumns[7]},
			},
		},
	}
	// SensorsColumns holds the columns for the "sensors" table.
	SensorsColumns = []*schema.Column{
		{Name: "sensor_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "sensor_type", Type: field.TypeString, Nullable: true},
		{Name: "typical_range", Type: field.TypeString, Nullable: true},
		{Name: "unit", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SensorsTable holds the schema information for the "sensors" table.
	SensorsTable = &schema.Table{
		Name:       "sensors",
		Columns:    SensorsColumns,
		PrimaryKey: []*schema.Column{SensorsColumns[0]},
	}
	// TsbBulletinsColumns holds the columns for the "tsb_bulletins" table.
	TsbBulletinsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tsb_number", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "affected_models", Type: field.TypeString, Nullable: true},
		{Name: "related_dtc_codes", Type: field.TypeJSON, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "evidence_count", Type: field.TypeInt, Default: 1},
		{Name: "avg_trust", Type: field.TypeFloat64, Default: 0},
		{Name: "avg_relevance", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TsbBulletinsTable holds the schema information for the "tsb_bulletins" table.
	TsbBulletinsTable = &schema.Table{
		Name:       "tsb_bulletins",
		Columns:    TsbBulletinsColumns,
		PrimaryKey: []*schema.Column{TsbBulletinsColumns[0]},
	}
	// VehiclesColumns holds the columns for the "vehicles" table.
	VehiclesColumns = []*schema.Column{
		{Name: "vehicle_id", Type: field.TypeString, Unique: true},
		{Name: "make", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "year_start", Type: field.TypeInt, Nullable: true},
		{Name: "year_end", Type: field.TypeInt, Nullable: true},
		{Name: "engine", Type: field.TypeString, Nullable: true},
		{Name: "transmission", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// VehiclesTable holds the schema information for the "vehicles" table.
	VehiclesTable = &schema.Table{
		Name:       "vehicles",
		Columns:    VehiclesColumns,
		PrimaryKey: []*schema.Column{VehiclesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vehicle_make_model",
				Unique:  false,
				Columns: []*schema.Column{VehiclesColumns[1], VehiclesColumns[2]},
			},
		},
	}
	// VehicleDtcsColumns holds the columns for the "vehicle_dtcs" table.
	VehicleDtcsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "vehicle_id", Type: field.TypeString},
		{Name: "dtc_master_id", Type: field.TypeString},
		{Name: "source_chunk_id", Type: field.TypeString, Nullable: true},
		{Name: "confidence_score", Type: field.TypeFloat64, Default: 0.5},
		{Name: "created_at", Type: field.TypeTime},
	}
	// VehicleDtcsTable holds the schema information for the "vehicle_dtcs" table.
	VehicleDtcsTable = &schema.Table{
		Name:       "vehicle_dtcs",
		Columns:    VehicleDtcsColumns,
		PrimaryKey: []*schema.Column{VehicleDtcsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vehicledtc_vehicle_id_dtc_master_id",
				Unique:  true,
				Columns: []*schema.Column{VehicleDtcsColumns[1], VehicleDtcsColumns[2]},
			},
		},
	}
	// VehicleMentionsColumns holds the columns for the "vehicle_mentions" table.
	VehicleMentionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "document_id", Type: field.TypeString},
		{Name: "make", Type: field.TypeString},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "year_start", Type: field.TypeInt, Nullable: true},
		{Name: "year_end", Type: field.TypeInt, Nullable: true},
		{Name: "engine", Type: field.TypeString, Nullable: true},
		{Name: "transmission", Type: field.TypeString, Nullable: true},
		{Name: "related_dtc_codes", Type: field.TypeJSON, Nullable: true},
		{Name: "linked", Type: field.TypeBool, Default: false},
		{Name: "source_chunk_id", Type: field.TypeString},
		{Name: "trust", Type: field.TypeFloat64, Default: 0},
		{Name: "relevance", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// VehicleMentionsTable holds the schema information for the "vehicle_mentions" table.
	VehicleMentionsTable = &schema.Table{
		Name:       "vehicle_mentions",
		Columns:    VehicleMentionsColumns,
		PrimaryKey: []*schema.Column{VehicleMentionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vehiclemention_document_id_linked",
				Unique:  false,
				Columns: []*schema.Column{VehicleMentionsColumns[1], VehicleMentionsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChunkEvaluationsTable,
		CrawlRequestsTable,
		DtcPossibleCausesTable,
		DtcDiagnosticStepsTable,
		DtcMasterTable,
		DtcRelatedSensorsTable,
		DocumentsTable,
		DocumentChunksTable,
		EntitySourcesTable,
		ExtractedCategoriesTable,
		ExtractedCausesTable,
		ExtractedDtcsTable,
		ExtractedSensorsTable,
		ExtractedStepsTable,
		ExtractedTsbsTable,
		ProcessingLogsTable,
		ResolutionLogsTable,
		SensorsTable,
		TsbBulletinsTable,
		VehiclesTable,
		VehicleDtcsTable,
		VehicleMentionsTable,
	}
)

func init() {
	ChunkEvaluationsTable.ForeignKeys[0].RefTable = DocumentChunksTable
	DtcPossibleCausesTable.Annotation = &entsql.Annotation{
		Table: "dtc_possible_causes",
	}
	DtcDiagnosticStepsTable.Annotation = &entsql.Annotation{
		Table: "dtc_diagnostic_steps",
	}
	DtcMasterTable.Annotation = &entsql.Annotation{
		Table: "dtc_master",
	}
	DtcRelatedSensorsTable.Annotation = &entsql.Annotation{
		Table: "dtc_related_sensors",
	}
	DocumentChunksTable.ForeignKeys[0].RefTable = DocumentsTable
	EntitySourcesTable.ForeignKeys[0].RefTable = DocumentChunksTable
	ExtractedDtcsTable.Annotation = &entsql.Annotation{
		Table: "extracted_dtcs",
	}
	ExtractedTsbsTable.Annotation = &entsql.Annotation{
		Table: "extracted_tsbs",
	}
	ProcessingLogsTable.ForeignKeys[0].RefTable = DocumentsTable
	TsbBulletinsTable.Annotation = &entsql.Annotation{
		Table: "tsb_bulletins",
	}
	VehicleDtcsTable.Annotation = &entsql.Annotation{
		Table: "vehicle_dtcs",
	}
}
