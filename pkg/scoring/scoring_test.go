package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvidenceQuality(t *testing.T) {
	assert.InDelta(t, 50.0, EvidenceQuality(1, 1), 1e-9)
	assert.InDelta(t, 0.0, EvidenceQuality(0, 0), 1e-9)
	// Trust dominates relevance 65/35.
	assert.InDelta(t, 32.5, EvidenceQuality(1, 0), 1e-9)
	assert.InDelta(t, 17.5, EvidenceQuality(0, 1), 1e-9)
	assert.InDelta(t, 50*(0.65*0.8+0.35*0.6), EvidenceQuality(0.8, 0.6), 1e-9)
}

func TestCorroboration(t *testing.T) {
	assert.Equal(t, 0.0, Corroboration(0))
	assert.Equal(t, 0.0, Corroboration(-1))
	// Saturates at 10 chunks.
	assert.InDelta(t, 20.0, Corroboration(10), 1e-9)
	assert.InDelta(t, 20.0, Corroboration(100), 1e-9)
	// Monotonic below saturation.
	assert.Less(t, Corroboration(1), Corroboration(2))
	assert.Less(t, Corroboration(2), Corroboration(9))
	assert.InDelta(t, 20*math.Log(2)/math.Log(11), Corroboration(1), 1e-9)
}

func TestVehicleSpecificity(t *testing.T) {
	assert.Equal(t, 20.0, VehicleSpecificity(VehicleMatchFull))
	assert.Equal(t, 12.0, VehicleSpecificity(VehicleMatchMakeOnly))
	assert.Equal(t, 6.0, VehicleSpecificity(VehicleMatchAgnostic))
	assert.Equal(t, -20.0, VehicleSpecificity(VehicleMatchConflict))
}

func TestParticipation(t *testing.T) {
	// Fixes scale with confirmed repairs, saturating at 50.
	assert.Equal(t, 0.0, Participation(Observation{Kind: KindFix, RepairCount: 0}))
	assert.InDelta(t, 10.0, Participation(Observation{Kind: KindFix, RepairCount: 50}), 1e-9)
	assert.InDelta(t, 10.0, Participation(Observation{Kind: KindFix, RepairCount: 500}), 1e-9)
	assert.Less(t,
		Participation(Observation{Kind: KindFix, RepairCount: 2}),
		Participation(Observation{Kind: KindFix, RepairCount: 20}))

	// Causes scale with probability weight.
	assert.InDelta(t, 8.5, Participation(Observation{Kind: KindCause, ProbabilityWeight: 0.85}), 1e-9)

	// Symptoms scale with frequency.
	assert.InDelta(t, 7.0, Participation(Observation{Kind: KindSymptom, Frequency: 7}), 1e-9)
	assert.InDelta(t, 10.0, Participation(Observation{Kind: KindSymptom, Frequency: 15}), 1e-9)

	// Threads earn a flat bonus only with a marked solution.
	assert.Equal(t, 6.0, Participation(Observation{Kind: KindThread, SolutionMarked: true}))
	assert.Equal(t, 0.0, Participation(Observation{Kind: KindThread}))

	// Structural kinds carry no participation bonus.
	for _, kind := range []EntityKind{KindDTC, KindStep, KindSensor, KindLiveData} {
		assert.Equal(t, 0.0, Participation(Observation{Kind: kind, RepairCount: 10, Frequency: 10}))
	}
}

func TestScore_Composition(t *testing.T) {
	o := Observation{
		ID:                "obs-1",
		Kind:              KindCause,
		Trust:             0.8,
		Relevance:         0.6,
		EvidenceCount:     3,
		Vehicle:           VehicleMatchFull,
		ProbabilityWeight: 0.7,
	}
	want := EvidenceQuality(0.8, 0.6) + Corroboration(3) + 20 + 7
	assert.InDelta(t, want, Score(o), 1e-9)
}

func TestRank_OrdersByScoreThenTieBreaks(t *testing.T) {
	observations := []Observation{
		{ID: "c", Kind: KindDTC, Trust: 0.5, Relevance: 0.5, EvidenceCount: 1, Vehicle: VehicleMatchAgnostic},
		{ID: "a", Kind: KindDTC, Trust: 0.9, Relevance: 0.9, EvidenceCount: 5, Vehicle: VehicleMatchFull},
		{ID: "b", Kind: KindDTC, Trust: 0.5, Relevance: 0.5, EvidenceCount: 3, Vehicle: VehicleMatchAgnostic},
	}

	Rank(observations)

	assert.Equal(t, "a", observations[0].ID)
	assert.Equal(t, "b", observations[1].ID) // more evidence than c
	assert.Equal(t, "c", observations[2].ID)
}

func TestRank_FullTieBreaksOnID(t *testing.T) {
	observations := []Observation{
		{ID: "z", Kind: KindDTC, Trust: 0.5, Relevance: 0.5, EvidenceCount: 2, Vehicle: VehicleMatchAgnostic},
		{ID: "a", Kind: KindDTC, Trust: 0.5, Relevance: 0.5, EvidenceCount: 2, Vehicle: VehicleMatchAgnostic},
		{ID: "m", Kind: KindDTC, Trust: 0.5, Relevance: 0.5, EvidenceCount: 2, Vehicle: VehicleMatchAgnostic},
	}

	Rank(observations)

	assert.Equal(t, []string{"a", "m", "z"},
		[]string{observations[0].ID, observations[1].ID, observations[2].ID})
}

func TestRank_IsReproducible(t *testing.T) {
	build := func() []Observation {
		return []Observation{
			{ID: "d", Kind: KindCause, Trust: 0.7, Relevance: 0.3, EvidenceCount: 2, ProbabilityWeight: 0.6},
			{ID: "b", Kind: KindFix, Trust: 0.7, Relevance: 0.3, EvidenceCount: 2, RepairCount: 4},
			{ID: "a", Kind: KindSymptom, Trust: 0.4, Relevance: 0.9, EvidenceCount: 7, Frequency: 3},
			{ID: "c", Kind: KindThread, Trust: 0.4, Relevance: 0.9, EvidenceCount: 7, SolutionMarked: true},
		}
	}

	first := build()
	Rank(first)
	for i := 0; i < 10; i++ {
		again := build()
		Rank(again)
		require.Equal(t, first, again)
	}
}

func TestConfidence(t *testing.T) {
	// Exact formula, not an approximation.
	assert.InDelta(t, 0.3*0.2+0.7*0.9, Confidence(1, 0.9), 1e-9)
	assert.InDelta(t, 0.3+0.7*0.5, Confidence(5, 0.5), 1e-9)
	// Evidence term saturates at five chunks.
	assert.InDelta(t, Confidence(5, 0.5), Confidence(50, 0.5), 1e-9)
	// Capped at 1.
	assert.Equal(t, 1.0, Confidence(10, 1.0))
	assert.Equal(t, 0.0, Confidence(0, 0))
}

func TestProbabilityWeight(t *testing.T) {
	assert.InDelta(t, 0.5, ProbabilityWeight(1), 1e-9)
	assert.InDelta(t, 0.6, ProbabilityWeight(2), 1e-9)
	assert.InDelta(t, 0.9, ProbabilityWeight(5), 1e-9)
	assert.Equal(t, 1.0, ProbabilityWeight(6))
	assert.Equal(t, 1.0, ProbabilityWeight(100))
	assert.Equal(t, 0.5, ProbabilityWeight(0))
}

func TestSymptomFrequency(t *testing.T) {
	assert.Equal(t, 3, SymptomFrequency(3))
	assert.Equal(t, 10, SymptomFrequency(10))
	assert.Equal(t, 10, SymptomFrequency(25))
	assert.Equal(t, 0, SymptomFrequency(-1))
}

func TestLikelihoodWeight(t *testing.T) {
	assert.Equal(t, 0.85, LikelihoodWeight("high"))
	assert.Equal(t, 0.55, LikelihoodWeight("medium"))
	assert.Equal(t, 0.25, LikelihoodWeight("low"))
	assert.Equal(t, 0.5, LikelihoodWeight(""))
	assert.Equal(t, 0.5, LikelihoodWeight("certain"))
}

func TestCompletenessScore(t *testing.T) {
	assert.Equal(t, 0.0, CompletenessScore(Completeness{}))
	assert.InDelta(t, 1.0, CompletenessScore(Completeness{
		HasSteps:       true,
		HasCauses:      true,
		HasDescription: true,
		HasSensors:     true,
		HasTSB:         true,
		HasCategory:    true,
		HasSeverity:    true,
	}), 1e-9)

	// Per-facet weights.
	assert.InDelta(t, 0.30, CompletenessScore(Completeness{HasSteps: true}), 1e-9)
	assert.InDelta(t, 0.25, CompletenessScore(Completeness{HasCauses: true}), 1e-9)
	assert.InDelta(t, 0.15, CompletenessScore(Completeness{HasDescription: true}), 1e-9)
	assert.InDelta(t, 0.10, CompletenessScore(Completeness{HasSensors: true}), 1e-9)
	assert.InDelta(t, 0.10, CompletenessScore(Completeness{HasTSB: true}), 1e-9)
	assert.InDelta(t, 0.05, CompletenessScore(Completeness{HasCategory: true}), 1e-9)
	assert.InDelta(t, 0.05, CompletenessScore(Completeness{HasSeverity: true}), 1e-9)

	assert.InDelta(t, 0.55, CompletenessScore(Completeness{
		HasSteps:  true,
		HasCauses: true,
	}), 1e-9)
}

func TestWeightedMean(t *testing.T) {
	// First observation: the value stands alone.
	assert.Equal(t, 0.8, WeightedMean(0, 0, 0.8))
	// Merging 0.9 into a mean of 0.6 over 2 observations.
	assert.InDelta(t, (0.6*2+0.9)/3, WeightedMean(0.6, 2, 0.9), 1e-9)
	// Order of single merges matches the batch mean.
	m := WeightedMean(0.2, 1, 0.4)
	m = WeightedMean(m, 2, 0.9)
	assert.InDelta(t, (0.2+0.4+0.9)/3, m, 1e-9)
}
