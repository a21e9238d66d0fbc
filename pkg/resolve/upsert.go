package resolve

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/autodiag/refinery/ent"
	"github.com/autodiag/refinery/ent/dtccause"
	"github.com/autodiag/refinery/ent/dtcdiagnosticstep"
	"github.com/autodiag/refinery/ent/dtcmaster"
	"github.com/autodiag/refinery/ent/dtcrelatedsensor"
	"github.com/autodiag/refinery/ent/resolutionlog"
	"github.com/autodiag/refinery/ent/sensor"
	"github.com/autodiag/refinery/ent/tsbbulletin"
	"github.com/autodiag/refinery/ent/vehicle"
	"github.com/autodiag/refinery/ent/vehicledtc"
	"github.com/autodiag/refinery/pkg/scoring"
)

// resolveDTCs upserts one dtc_master row per distinct code observed in
// the document.
func (r *run) resolveDTCs(dtcs []*ent.ExtractedDTC, vehicleCtx VehicleContext,
	mentionByChunk map[string]*ent.VehicleMention) error {

	byCode := make(map[string][]*ent.ExtractedDTC)
	for _, d := range dtcs {
		byCode[d.Code] = append(byCode[d.Code], d)
	}

	for _, code := range sortedKeys(byCode) {
		rows := byCode[code]

		var evidence []Evidence
		var severities []string
		for _, row := range rows {
			evidence = append(evidence, Evidence{
				ChunkID: row.SourceChunkID, Trust: row.Trust, Relevance: row.Relevance,
			})
			severities = append(severities, row.Severity)
		}
		evidence = dedupEvidence(evidence)

		bestDesc, bestTrust := bestDescription(rows, vehicleCtx, mentionByChunk)
		conflict := distinctNonEmpty(severities)
		severityLabel, _ := MajorityVote(severities)

		master, err := r.tx.DTCMaster.Query().
			Where(dtcmaster.CodeEQ(code)).
			Only(r.ctx)
		switch {
		case ent.IsNotFound(err):
			id := uuid.NewString()
			fresh, err := r.recordSources("dtc_master", id, evidence)
			if err != nil {
				return err
			}
			agg := Combine(Aggregate{}, fresh)
			if err := r.tx.DTCMaster.Create().
				SetID(id).
				SetCode(code).
				SetSystemCategory(systemCategoryFromCode(code)).
				SetGenericDescription(bestDesc).
				SetDescriptionTrust(bestTrust).
				SetSeverityLevel(severityLevelFromLabel(severityLabel)).
				SetEmissionsRelated(emissionsRelated(code)).
				SetEvidenceCount(agg.Count).
				SetAvgTrust(agg.AvgTrust).
				SetAvgRelevance(agg.AvgRelevance).
				SetConfidenceScore(agg.Confidence()).
				SetConflictFlag(conflict).
				Exec(r.ctx); err != nil {
				return err
			}
			r.codeToMaster[code] = id
			if err := r.logAction(resolutionlog.ActionCreated, "dtc_master", id,
				map[string]interface{}{"code": code, "evidence": agg.Count}); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			fresh, err := r.recordSources("dtc_master", master.ID, evidence)
			if err != nil {
				return err
			}
			agg := Combine(Aggregate{
				Count:        master.EvidenceCount,
				AvgTrust:     master.AvgTrust,
				AvgRelevance: master.AvgRelevance,
			}, fresh)

			update := r.tx.DTCMaster.UpdateOne(master).
				SetEvidenceCount(agg.Count).
				SetAvgTrust(agg.AvgTrust).
				SetAvgRelevance(agg.AvgRelevance).
				SetConfidenceScore(agg.Confidence())
			if conflict {
				update = update.SetConflictFlag(true)
			}
			// The description yields only to strictly better evidence.
			if bestDesc != "" && bestTrust > master.DescriptionTrust {
				update = update.
					SetGenericDescription(bestDesc).
					SetDescriptionTrust(bestTrust)
			}
			if err := update.Exec(r.ctx); err != nil {
				return err
			}
			r.codeToMaster[code] = master.ID
			if err := r.logAction(resolutionlog.ActionMerged, "dtc_master", master.ID,
				map[string]interface{}{"code": code, "new_evidence": len(fresh)}); err != nil {
				return err
			}
		}
	}
	return nil
}

// bestDescription ranks the staged rows and returns the top-ranked
// non-empty description with its trust.
func bestDescription(rows []*ent.ExtractedDTC, vehicleCtx VehicleContext,
	mentionByChunk map[string]*ent.VehicleMention) (string, float64) {

	observations := make([]scoring.Observation, 0, len(rows))
	byID := make(map[string]*ent.ExtractedDTC, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
		observations = append(observations, scoring.Observation{
			ID:            row.ID,
			Kind:          scoring.KindDTC,
			Trust:         row.Trust,
			Relevance:     row.Relevance,
			EvidenceCount: 1,
			Vehicle:       MatchContext(mentionByChunk[row.SourceChunkID], vehicleCtx),
		})
	}
	scoring.Rank(observations)

	for _, o := range observations {
		row := byID[o.ID]
		if desc := strings.TrimSpace(row.Description); desc != "" {
			return desc, row.Trust
		}
	}
	return "", 0
}

// ensureMaster returns the dtc_master ID for code, creating a stub row
// when the document references a code it never described.
func (r *run) ensureMaster(code string) (string, error) {
	if id, ok := r.codeToMaster[code]; ok {
		return id, nil
	}

	master, err := r.tx.DTCMaster.Query().
		Where(dtcmaster.CodeEQ(code)).
		Only(r.ctx)
	if err == nil {
		r.codeToMaster[code] = master.ID
		return master.ID, nil
	}
	if !ent.IsNotFound(err) {
		return "", err
	}

	id := uuid.NewString()
	if err := r.tx.DTCMaster.Create().
		SetID(id).
		SetCode(code).
		SetSystemCategory(systemCategoryFromCode(code)).
		SetEmissionsRelated(emissionsRelated(code)).
		Exec(r.ctx); err != nil {
		return "", err
	}
	r.codeToMaster[code] = id
	if err := r.logAction(resolutionlog.ActionCreated, "dtc_master", id,
		map[string]interface{}{"code": code, "stub": true}); err != nil {
		return "", err
	}
	return id, nil
}

// resolveCauses upserts possible causes, deduplicated per DTC on the
// cause text fingerprint.
func (r *run) resolveCauses(causes []*ent.ExtractedCause) error {
	type causeGroup struct {
		code string
		fp   string
		rows []*ent.ExtractedCause
	}
	groups := make(map[string]*causeGroup)
	for _, c := range causes {
		fp := Fingerprint(c.Description)
		if fp == "" {
			continue
		}
		key := c.DtcCode + "\x00" + fp
		if groups[key] == nil {
			groups[key] = &causeGroup{code: c.DtcCode, fp: fp}
		}
		groups[key].rows = append(groups[key].rows, c)
	}

	for _, key := range sortedKeys(groups) {
		g := groups[key]
		masterID, err := r.ensureMaster(g.code)
		if err != nil {
			return err
		}

		var evidence []Evidence
		var likelihoods []string
		text := g.rows[0].Description
		textTrust := g.rows[0].Trust
		for _, row := range g.rows {
			evidence = append(evidence, Evidence{
				ChunkID: row.SourceChunkID, Trust: row.Trust, Relevance: row.Relevance,
			})
			likelihoods = append(likelihoods, row.Likelihood)
			if row.Trust > textTrust {
				text, textTrust = row.Description, row.Trust
			}
		}
		evidence = dedupEvidence(evidence)
		likelihood, _ := MajorityVote(likelihoods)
		conflict := distinctNonEmpty(likelihoods)

		existing, err := r.tx.DTCCause.Query().
			Where(
				dtccause.DtcMasterIDEQ(masterID),
				dtccause.FingerprintEQ(g.fp),
			).
			Only(r.ctx)
		switch {
		case ent.IsNotFound(err):
			id := uuid.NewString()
			fresh, err := r.recordSources("dtc_possible_causes", id, evidence)
			if err != nil {
				return err
			}
			agg := Combine(Aggregate{}, fresh)
			pw := max(scoring.LikelihoodWeight(likelihood), scoring.ProbabilityWeight(agg.Count))
			if err := r.tx.DTCCause.Create().
				SetID(id).
				SetDtcMasterID(masterID).
				SetCause(strings.TrimSpace(text)).
				SetFingerprint(g.fp).
				SetProbabilityWeight(pw).
				SetEvidenceCount(agg.Count).
				SetAvgTrust(agg.AvgTrust).
				SetAvgRelevance(agg.AvgRelevance).
				SetConflictFlag(conflict).
				Exec(r.ctx); err != nil {
				return err
			}
			if err := r.logAction(resolutionlog.ActionCreated, "dtc_possible_causes", id,
				map[string]interface{}{"dtc_code": g.code}); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			fresh, err := r.recordSources("dtc_possible_causes", existing.ID, evidence)
			if err != nil {
				return err
			}
			agg := Combine(Aggregate{
				Count:        existing.EvidenceCount,
				AvgTrust:     existing.AvgTrust,
				AvgRelevance: existing.AvgRelevance,
			}, fresh)
			pw := max(existing.ProbabilityWeight,
				scoring.LikelihoodWeight(likelihood),
				scoring.ProbabilityWeight(agg.Count))

			update := r.tx.DTCCause.UpdateOne(existing).
				SetProbabilityWeight(pw).
				SetEvidenceCount(agg.Count).
				SetAvgTrust(agg.AvgTrust).
				SetAvgRelevance(agg.AvgRelevance)
			if conflict {
				update = update.SetConflictFlag(true)
			}
			if err := update.Exec(r.ctx); err != nil {
				return err
			}
			if err := r.logAction(resolutionlog.ActionMerged, "dtc_possible_causes", existing.ID,
				map[string]interface{}{"dtc_code": g.code, "new_evidence": len(fresh)}); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveSteps upserts diagnostic steps, deduplicated per DTC on the
// instruction fingerprint.
func (r *run) resolveSteps(steps []*ent.ExtractedStep) error {
	type stepGroup struct {
		code string
		fp   string
		rows []*ent.ExtractedStep
	}
	groups := make(map[string]*stepGroup)
	for _, st := range steps {
		fp := Fingerprint(st.Description)
		if fp == "" {
			continue
		}
		key := st.DtcCode + "\x00" + fp
		if groups[key] == nil {
			groups[key] = &stepGroup{code: st.DtcCode, fp: fp}
		}
		groups[key].rows = append(groups[key].rows, st)
	}

	for _, key := range sortedKeys(groups) {
		g := groups[key]
		masterID, err := r.ensureMaster(g.code)
		if err != nil {
			return err
		}

		var evidence []Evidence
		order := 0
		instruction := g.rows[0].Description
		tools := ""
		expected := ""
		for _, row := range g.rows {
			evidence = append(evidence, Evidence{
				ChunkID: row.SourceChunkID, Trust: row.Trust, Relevance: row.Relevance,
			})
			if row.StepOrder > 0 && (order == 0 || row.StepOrder < order) {
				order = row.StepOrder
			}
			if tools == "" {
				tools = row.ToolsRequired
			}
			if expected == "" {
				expected = row.ExpectedValues
			}
		}
		evidence = dedupEvidence(evidence)
		if order == 0 {
			order = 1
		}

		existing, err := r.tx.DTCDiagnosticStep.Query().
			Where(
				dtcdiagnosticstep.DtcMasterIDEQ(masterID),
				dtcdiagnosticstep.FingerprintEQ(g.fp),
			).
			Only(r.ctx)
		switch {
		case ent.IsNotFound(err):
			id := uuid.NewString()
			fresh, err := r.recordSources("dtc_diagnostic_steps", id, evidence)
			if err != nil {
				return err
			}
			agg := Combine(Aggregate{}, fresh)
			if err := r.tx.DTCDiagnosticStep.Create().
				SetID(id).
				SetDtcMasterID(masterID).
				SetStepOrder(order).
				SetInstruction(strings.TrimSpace(instruction)).
				SetFingerprint(g.fp).
				SetToolsRequired(tools).
				SetExpectedValues(expected).
				SetEvidenceCount(agg.Count).
				SetAvgTrust(agg.AvgTrust).
				SetAvgRelevance(agg.AvgRelevance).
				Exec(r.ctx); err != nil {
				return err
			}
			if err := r.logAction(resolutionlog.ActionCreated, "dtc_diagnostic_steps", id,
				map[string]interface{}{"dtc_code": g.code, "step_order": order}); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			fresh, err := r.recordSources("dtc_diagnostic_steps", existing.ID, evidence)
			if err != nil {
				return err
			}
			agg := Combine(Aggregate{
				Count:        existing.EvidenceCount,
				AvgTrust:     existing.AvgTrust,
				AvgRelevance: existing.AvgRelevance,
			}, fresh)
			if err := r.tx.DTCDiagnosticStep.UpdateOne(existing).
				SetEvidenceCount(agg.Count).
				SetAvgTrust(agg.AvgTrust).
				SetAvgRelevance(agg.AvgRelevance).
				Exec(r.ctx); err != nil {
				return err
			}
			if err := r.logAction(resolutionlog.ActionMerged, "dtc_diagnostic_steps", existing.ID,
				map[string]interface{}{"dtc_code": g.code, "new_evidence": len(fresh)}); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveSensors upserts the sensor catalog and links sensors to the
// DTCs they help diagnose.
func (r *run) resolveSensors(sensors []*ent.ExtractedSensor) error {
	type sensorGroup struct {
		name string
		rows []*ent.ExtractedSensor
	}
	groups := make(map[string]*sensorGroup)
	for _, sn := range sensors {
		name := strings.TrimSpace(sn.Name)
		fp := Fingerprint(name)
		if fp == "" {
			continue
		}
		if groups[fp] == nil {
			groups[fp] = &sensorGroup{name: name}
		}
		groups[fp].rows = append(groups[fp].rows, sn)
	}

	for _, fp := range sortedKeys(groups) {
		g := groups[fp]

		existing, err := r.tx.Sensor.Query().
			Where(sensor.NameEqualFold(g.name)).
			First(r.ctx)
		var sensorID string
		switch {
		case ent.IsNotFound(err):
			sensorID = uuid.NewString()
			create := r.tx.Sensor.Create().
				SetID(sensorID).
				SetName(g.name)
			for _, row := range g.rows {
				if row.SensorType != "" {
					create = create.SetSensorType(row.SensorType)
					break
				}
			}
			for _, row := range g.rows {
				if row.TypicalRange != "" {
					create = create.SetTypicalRange(row.TypicalRange)
					break
				}
			}
			for _, row := range g.rows {
				if row.Unit != "" {
					create = create.SetUnit(row.Unit)
					break
				}
			}
			if err := create.Exec(r.ctx); err != nil {
				return err
			}
			if err := r.logAction(resolutionlog.ActionCreated, "sensors", sensorID,
				map[string]interface{}{"name": g.name}); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			sensorID = existing.ID
		}

		// Link the sensor to every code it was observed with.
		codes := make(map[string][]Evidence)
		for _, row := range g.rows {
			for _, code := range row.RelatedDtcCodes {
				codes[code] = append(codes[code], Evidence{
					ChunkID: row.SourceChunkID, Trust: row.Trust, Relevance: row.Relevance,
				})
			}
		}
		for _, code := range sortedKeys(codes) {
			if err := r.linkSensor(sensorID, code, dedupEvidence(codes[code])); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *run) linkSensor(sensorID, code string, evidence []Evidence) error {
	masterID, err := r.ensureMaster(code)
	if err != nil {
		return err
	}

	existing, err := r.tx.DTCRelatedSensor.Query().
		Where(
			dtcrelatedsensor.DtcMasterIDEQ(masterID),
			dtcrelatedsensor.SensorIDEQ(sensorID),
		).
		Only(r.ctx)
	switch {
	case ent.IsNotFound(err):
		id := uuid.NewString()
		fresh, err := r.recordSources("dtc_related_sensors", id, evidence)
		if err != nil {
			return err
		}
		agg := Combine(Aggregate{}, fresh)
		if err := r.tx.DTCRelatedSensor.Create().
			SetID(id).
			SetDtcMasterID(masterID).
			SetSensorID(sensorID).
			SetEvidenceCount(agg.Count).
			SetAvgTrust(agg.AvgTrust).
			SetAvgRelevance(agg.AvgRelevance).
			Exec(r.ctx); err != nil {
			return err
		}
		return r.logAction(resolutionlog.ActionCreated, "dtc_related_sensors", id,
			map[string]interface{}{"dtc_code": code})
	case err != nil:
		return err
	default:
		fresh, err := r.recordSources("dtc_related_sensors", existing.ID, evidence)
		if err != nil {
			return err
		}
		agg := Combine(Aggregate{
			Count:        existing.EvidenceCount,
			AvgTrust:     existing.AvgTrust,
			AvgRelevance: existing.AvgRelevance,
		}, fresh)
		if err := r.tx.DTCRelatedSensor.UpdateOne(existing).
			SetEvidenceCount(agg.Count).
			SetAvgTrust(agg.AvgTrust).
			SetAvgRelevance(agg.AvgRelevance).
			Exec(r.ctx); err != nil {
			return err
		}
		return r.logAction(resolutionlog.ActionMerged, "dtc_related_sensors", existing.ID,
			map[string]interface{}{"dtc_code": code, "new_evidence": len(fresh)})
	}
}

// resolveTSBs upserts bulletin references keyed by bulletin number.
func (r *run) resolveTSBs(tsbs []*ent.ExtractedTSB) error {
	groups := make(map[string][]*ent.ExtractedTSB)
	for _, t := range tsbs {
		number := strings.TrimSpace(t.TsbNumber)
		if number == "" {
			continue
		}
		groups[number] = append(groups[number], t)
	}

	for _, number := range sortedKeys(groups) {
		rows := groups[number]

		var evidence []Evidence
		title, models, summary := "", "", ""
		codeSet := make(map[string]bool)
		for _, row := range rows {
			evidence = append(evidence, Evidence{
				ChunkID: row.SourceChunkID, Trust: row.Trust, Relevance: row.Relevance,
			})
			if title == "" {
				title = row.Title
			}
			if models == "" {
				models = row.AffectedModels
			}
			if summary == "" {
				summary = row.Summary
			}
			for _, code := range row.RelatedDtcCodes {
				codeSet[code] = true
			}
		}
		evidence = dedupEvidence(evidence)
		codes := sortedKeys(codeSet)

		existing, err := r.tx.TSBBulletin.Query().
			Where(tsbbulletin.TsbNumberEQ(number)).
			Only(r.ctx)
		switch {
		case ent.IsNotFound(err):
			id := uuid.NewString()
			fresh, err := r.recordSources("tsb_bulletins", id, evidence)
			if err != nil {
				return err
			}
			agg := Combine(Aggregate{}, fresh)
			if err := r.tx.TSBBulletin.Create().
				SetID(id).
				SetTsbNumber(number).
				SetTitle(title).
				SetAffectedModels(models).
				SetSummary(summary).
				SetRelatedDtcCodes(codes).
				SetEvidenceCount(agg.Count).
				SetAvgTrust(agg.AvgTrust).
				SetAvgRelevance(agg.AvgRelevance).
				Exec(r.ctx); err != nil {
				return err
			}
			if err := r.logAction(resolutionlog.ActionCreated, "tsb_bulletins", id,
				map[string]interface{}{"tsb_number": number}); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			fresh, err := r.recordSources("tsb_bulletins", existing.ID, evidence)
			if err != nil {
				return err
			}
			agg := Combine(Aggregate{
				Count:        existing.EvidenceCount,
				AvgTrust:     existing.AvgTrust,
				AvgRelevance: existing.AvgRelevance,
			}, fresh)

			merged := make(map[string]bool, len(existing.RelatedDtcCodes)+len(codes))
			for _, code := range existing.RelatedDtcCodes {
				merged[code] = true
			}
			for _, code := range codes {
				merged[code] = true
			}

			update := r.tx.TSBBulletin.UpdateOne(existing).
				SetRelatedDtcCodes(sortedKeys(merged)).
				SetEvidenceCount(agg.Count).
				SetAvgTrust(agg.AvgTrust).
				SetAvgRelevance(agg.AvgRelevance)
			if existing.Title == "" && title != "" {
				update = update.SetTitle(title)
			}
			if existing.AffectedModels == "" && models != "" {
				update = update.SetAffectedModels(models)
			}
			if existing.Summary == "" && summary != "" {
				update = update.SetSummary(summary)
			}
			if err := update.Exec(r.ctx); err != nil {
				return err
			}
			if err := r.logAction(resolutionlog.ActionMerged, "tsb_bulletins", existing.ID,
				map[string]interface{}{"tsb_number": number, "new_evidence": len(fresh)}); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveVehicles links vehicle mentions to catalog rows, creating them
// when no existing row matches on make, model, and year overlap.
func (r *run) resolveVehicles(mentions []*ent.VehicleMention) error {
	ids := make([]string, 0, len(mentions))
	byID := make(map[string]*ent.VehicleMention, len(mentions))
	for _, m := range mentions {
		ids = append(ids, m.ID)
		byID[m.ID] = m
	}
	sort.Strings(ids)

	for _, id := range ids {
		m := byID[id]
		if m.Linked || strings.TrimSpace(m.Make) == "" {
			continue
		}

		vehicleID, err := r.matchOrCreateVehicle(m)
		if err != nil {
			return err
		}

		for _, code := range m.RelatedDtcCodes {
			if err := r.linkVehicleDTC(vehicleID, code, m); err != nil {
				return err
			}
		}

		if err := r.tx.VehicleMention.UpdateOne(m).
			SetLinked(true).
			Exec(r.ctx); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) matchOrCreateVehicle(m *ent.VehicleMention) (string, error) {
	candidates, err := r.tx.Vehicle.Query().
		Where(
			vehicle.MakeEqualFold(strings.TrimSpace(m.Make)),
			vehicle.ModelEqualFold(strings.TrimSpace(m.Model)),
		).
		Order(ent.Asc(vehicle.FieldID)).
		All(r.ctx)
	if err != nil {
		return "", err
	}
	for _, c := range candidates {
		if yearRangesOverlap(m.YearStart, m.YearEnd, c.YearStart, c.YearEnd) {
			return c.ID, nil
		}
	}

	id := uuid.NewString()
	create := r.tx.Vehicle.Create().
		SetID(id).
		SetMake(strings.TrimSpace(m.Make)).
		SetModel(strings.TrimSpace(m.Model)).
		SetEngine(m.Engine).
		SetTransmission(m.Transmission)
	if m.YearStart != nil {
		create = create.SetYearStart(*m.YearStart)
	}
	if m.YearEnd != nil {
		create = create.SetYearEnd(*m.YearEnd)
	}
	if err := create.Exec(r.ctx); err != nil {
		return "", err
	}
	if err := r.logAction(resolutionlog.ActionCreated, "vehicles", id,
		map[string]interface{}{"make": m.Make, "model": m.Model}); err != nil {
		return "", err
	}
	return id, nil
}

func (r *run) linkVehicleDTC(vehicleID, code string, m *ent.VehicleMention) error {
	masterID, err := r.ensureMaster(code)
	if err != nil {
		return err
	}

	exists, err := r.tx.VehicleDTC.Query().
		Where(
			vehicledtc.VehicleIDEQ(vehicleID),
			vehicledtc.DtcMasterIDEQ(masterID),
		).
		Exist(r.ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	id := uuid.NewString()
	if err := r.tx.VehicleDTC.Create().
		SetID(id).
		SetVehicleID(vehicleID).
		SetDtcMasterID(masterID).
		SetSourceChunkID(m.SourceChunkID).
		SetConfidenceScore(m.Trust).
		Exec(r.ctx); err != nil {
		return err
	}
	return r.logAction(resolutionlog.ActionCreated, "vehicle_dtcs", id,
		map[string]interface{}{"dtc_code": code})
}

// systemCategoryFromCode maps the code's system letter to its category.
func systemCategoryFromCode(code string) string {
	switch code[0] {
	case 'P':
		return "powertrain"
	case 'B':
		return "body"
	case 'C':
		return "chassis"
	case 'U':
		return "network"
	default:
		return "unknown"
	}
}

// emissionsRelated reports whether the code sits in the P04xx
// emissions-control block.
func emissionsRelated(code string) bool {
	return strings.HasPrefix(code, "P04")
}

// severityLevelFromLabel maps the extraction severity labels onto the
// 1..5 scale stored on dtc_master.
func severityLevelFromLabel(label string) int {
	switch label {
	case "informational":
		return 1
	case "minor":
		return 2
	case "moderate":
		return 3
	case "critical":
		return 5
	default:
		return 3
	}
}
