package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_WeightsByEvidenceCount(t *testing.T) {
	agg := Merge(Aggregate{}, Evidence{ChunkID: "c1", Trust: 0.8, Relevance: 0.6})
	assert.Equal(t, 1, agg.Count)
	assert.Equal(t, 0.8, agg.AvgTrust)
	assert.Equal(t, 0.6, agg.AvgRelevance)

	agg = Merge(agg, Evidence{ChunkID: "c2", Trust: 0.4, Relevance: 0.2})
	assert.Equal(t, 2, agg.Count)
	assert.InDelta(t, 0.6, agg.AvgTrust, 1e-9)
	assert.InDelta(t, 0.4, agg.AvgRelevance, 1e-9)
}

func TestCombine_MatchesSequentialMerges(t *testing.T) {
	evidence := []Evidence{
		{ChunkID: "c1", Trust: 0.9, Relevance: 0.8},
		{ChunkID: "c2", Trust: 0.5, Relevance: 0.4},
		{ChunkID: "c3", Trust: 0.7, Relevance: 0.6},
	}

	batch := Combine(Aggregate{}, evidence)
	sequential := Aggregate{}
	for _, ev := range evidence {
		sequential = Merge(sequential, ev)
	}
	require.Equal(t, sequential.Count, batch.Count)
	assert.InDelta(t, sequential.AvgTrust, batch.AvgTrust, 1e-9)
	assert.InDelta(t, sequential.AvgRelevance, batch.AvgRelevance, 1e-9)
}

func TestMajorityVote(t *testing.T) {
	got, ok := MajorityVote([]string{"forum_discussion", "forum_discussion", "dtc_reference"})
	require.True(t, ok)
	assert.Equal(t, "forum_discussion", got)

	// Empty votes are not counted.
	got, ok = MajorityVote([]string{"", "", "tsb_bulletin"})
	require.True(t, ok)
	assert.Equal(t, "tsb_bulletin", got)

	_, ok = MajorityVote(nil)
	assert.False(t, ok)
	_, ok = MajorityVote([]string{"", ""})
	assert.False(t, ok)
}

func TestMajorityVote_TieBreaksLexically(t *testing.T) {
	got, ok := MajorityVote([]string{"b", "a", "b", "a"})
	require.True(t, ok)
	assert.Equal(t, "a", got)
}

func TestDistinctNonEmpty(t *testing.T) {
	assert.False(t, distinctNonEmpty(nil))
	assert.False(t, distinctNonEmpty([]string{"", ""}))
	assert.False(t, distinctNonEmpty([]string{"high", "", "high"}))
	assert.True(t, distinctNonEmpty([]string{"high", "low"}))
}

func TestDedupEvidence(t *testing.T) {
	got := dedupEvidence([]Evidence{
		{ChunkID: "c1", Trust: 0.9},
		{ChunkID: "c1", Trust: 0.1},
		{ChunkID: "", Trust: 0.5},
		{ChunkID: "c2", Trust: 0.5},
	})
	require.Len(t, got, 2)
	// First entry per chunk wins.
	assert.Equal(t, 0.9, got[0].Trust)
	assert.Equal(t, "c2", got[1].ChunkID)
}
