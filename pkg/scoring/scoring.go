// Package scoring implements the deterministic scoring used to rank and
// merge evidence during conflict resolution. Everything here is a pure
// function of its inputs: the same observations always produce the same
// scores, so resolution runs are reproducible.
package scoring

import (
	"math"
	"sort"
)

// EntityKind selects the participation formula for an observation.
type EntityKind string

// Entity kinds with distinct participation scoring.
const (
	KindDTC      EntityKind = "dtc"
	KindCause    EntityKind = "cause"
	KindStep     EntityKind = "step"
	KindSymptom  EntityKind = "symptom"
	KindFix      EntityKind = "fix"
	KindSensor   EntityKind = "sensor"
	KindLiveData EntityKind = "live_data"
	KindThread   EntityKind = "thread"
)

// VehicleMatch describes how an observation's vehicle context relates to
// the document's vehicle context.
type VehicleMatch int

// Vehicle match outcomes, best to worst.
const (
	VehicleMatchFull     VehicleMatch = iota // make and model agree
	VehicleMatchMakeOnly                     // make agrees, model unknown or absent
	VehicleMatchAgnostic                     // OEM-agnostic content or no vehicle context
	VehicleMatchConflict                     // stated vehicle contradicts document context
)

// Observation carries everything the unified score needs.
type Observation struct {
	ID        string
	Kind      EntityKind
	Trust     float64
	Relevance float64

	// EvidenceCount is the number of distinct chunks supporting this
	// observation's canonical entity.
	EvidenceCount int

	Vehicle VehicleMatch

	// Kind-specific inputs.
	RepairCount       int     // fixes: confirmed repair reports
	ProbabilityWeight float64 // causes
	Frequency         int     // symptoms: 0..10
	SolutionMarked    bool    // forum threads
}

// EvidenceQuality returns the quality component: 50 * (0.65*trust +
// 0.35*relevance).
func EvidenceQuality(trust, relevance float64) float64 {
	return 50 * (0.65*trust + 0.35*relevance)
}

// Corroboration returns the corroboration component, a log curve that
// saturates at 10 supporting chunks: 20 * ln(1+n)/ln(11).
func Corroboration(evidenceCount int) float64 {
	if evidenceCount <= 0 {
		return 0
	}
	return 20 * clamp01(math.Log(1+float64(evidenceCount))/math.Log(11))
}

// VehicleSpecificity returns the vehicle-context component.
func VehicleSpecificity(match VehicleMatch) float64 {
	switch match {
	case VehicleMatchFull:
		return 20
	case VehicleMatchMakeOnly:
		return 12
	case VehicleMatchConflict:
		return -20
	default:
		return 6
	}
}

// Participation returns the kind-specific component.
func Participation(o Observation) float64 {
	switch o.Kind {
	case KindFix:
		if o.RepairCount <= 0 {
			return 0
		}
		return 10 * clamp01(math.Log(1+float64(o.RepairCount))/math.Log(51))
	case KindCause:
		return 10 * clamp01(o.ProbabilityWeight)
	case KindSymptom:
		return 10 * clamp01(float64(o.Frequency)/10)
	case KindThread:
		if o.SolutionMarked {
			return 6
		}
		return 0
	default:
		// DTCs, steps, sensors, live data carry no participation bonus.
		return 0
	}
}

// Score returns the unified score S for one observation.
func Score(o Observation) float64 {
	return EvidenceQuality(o.Trust, o.Relevance) +
		Corroboration(o.EvidenceCount) +
		VehicleSpecificity(o.Vehicle) +
		Participation(o)
}

// Rank sorts observations best-first. Ties break on evidence count, then
// trust, then relevance, then ID, so ordering is total and reproducible.
func Rank(observations []Observation) {
	sort.SliceStable(observations, func(i, j int) bool {
		a, b := observations[i], observations[j]
		sa, sb := Score(a), Score(b)
		if sa != sb {
			return sa > sb
		}
		if a.EvidenceCount != b.EvidenceCount {
			return a.EvidenceCount > b.EvidenceCount
		}
		if a.Trust != b.Trust {
			return a.Trust > b.Trust
		}
		if a.Relevance != b.Relevance {
			return a.Relevance > b.Relevance
		}
		return a.ID < b.ID
	})
}

// Confidence returns the confidence score for an entity with n supporting
// chunks averaging avgTrust: saturating evidence term plus trust term.
func Confidence(evidenceCount int, avgTrust float64) float64 {
	evidence := math.Min(1, float64(evidenceCount)/5)
	return math.Min(1, 0.3*evidence+0.7*avgTrust)
}

// ProbabilityWeight returns a cause's probability weight after n
// corroborating observations: starts at 0.5 and gains 0.1 per extra
// observation, capped at 1.
func ProbabilityWeight(observationCount int) float64 {
	if observationCount <= 0 {
		return 0.5
	}
	return math.Min(1, 0.5+0.1*float64(observationCount-1))
}

// SymptomFrequency returns a symptom's frequency on the 0..10 scale after
// n observations.
func SymptomFrequency(observationCount int) int {
	if observationCount > 10 {
		return 10
	}
	if observationCount < 0 {
		return 0
	}
	return observationCount
}

// LikelihoodWeight maps an extracted likelihood label to a probability
// weight. Unknown labels get the neutral default.
func LikelihoodWeight(likelihood string) float64 {
	switch likelihood {
	case "high":
		return 0.85
	case "medium":
		return 0.55
	case "low":
		return 0.25
	default:
		return 0.5
	}
}

// Completeness describes which facets of a DTC's knowledge are populated.
type Completeness struct {
	HasSteps       bool
	HasCauses      bool
	HasDescription bool
	HasSensors     bool
	HasTSB         bool
	HasCategory    bool
	HasSeverity    bool
}

// CompletenessScore returns the weighted coverage of a DTC's knowledge,
// in [0, 1]. Actionable facets dominate: steps and causes together carry
// over half the weight.
func CompletenessScore(c Completeness) float64 {
	score := 0.0
	if c.HasSteps {
		score += 0.30
	}
	if c.HasCauses {
		score += 0.25
	}
	if c.HasDescription {
		score += 0.15
	}
	if c.HasSensors {
		score += 0.10
	}
	if c.HasTSB {
		score += 0.10
	}
	if c.HasCategory {
		score += 0.05
	}
	if c.HasSeverity {
		score += 0.05
	}
	return score
}

// WeightedMean merges a new value into an evidence-weighted running mean:
// the existing mean carries oldCount observations, the new value one.
func WeightedMean(oldMean float64, oldCount int, value float64) float64 {
	if oldCount <= 0 {
		return value
	}
	n := float64(oldCount)
	return (oldMean*n + value) / (n + 1)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
