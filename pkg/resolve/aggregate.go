package resolve

import (
	"sort"

	"github.com/autodiag/refinery/pkg/scoring"
)

// Evidence is one chunk's support for a canonical entity.
type Evidence struct {
	ChunkID   string
	Trust     float64
	Relevance float64
}

// Aggregate is the running evidence state of a canonical entity.
type Aggregate struct {
	Count        int
	AvgTrust     float64
	AvgRelevance float64
}

// Merge folds one piece of evidence into an aggregate using the
// evidence-weighted mean.
func Merge(agg Aggregate, ev Evidence) Aggregate {
	return Aggregate{
		Count:        agg.Count + 1,
		AvgTrust:     scoring.WeightedMean(agg.AvgTrust, agg.Count, ev.Trust),
		AvgRelevance: scoring.WeightedMean(agg.AvgRelevance, agg.Count, ev.Relevance),
	}
}

// Combine folds a batch of evidence into an aggregate, in order.
func Combine(agg Aggregate, evidence []Evidence) Aggregate {
	for _, ev := range evidence {
		agg = Merge(agg, ev)
	}
	return agg
}

// Confidence returns the aggregate's confidence score.
func (a Aggregate) Confidence() float64 {
	return scoring.Confidence(a.Count, a.AvgTrust)
}

// MajorityVote returns the most frequent non-empty vote. Ties break to
// the lexically smallest candidate so the result is reproducible. The
// second return is false when no votes were cast.
func MajorityVote(votes []string) (string, bool) {
	counts := make(map[string]int)
	for _, v := range votes {
		if v != "" {
			counts[v]++
		}
	}
	if len(counts) == 0 {
		return "", false
	}

	candidates := make([]string, 0, len(counts))
	for v := range counts {
		candidates = append(candidates, v)
	}
	sort.Strings(candidates)

	best := candidates[0]
	for _, v := range candidates[1:] {
		if counts[v] > counts[best] {
			best = v
		}
	}
	return best, true
}

// distinctNonEmpty reports whether values contains more than one distinct
// non-empty entry. Used to flag conflicting observations within one run.
func distinctNonEmpty(values []string) bool {
	var first string
	for _, v := range values {
		if v == "" {
			continue
		}
		if first == "" {
			first = v
			continue
		}
		if v != first {
			return true
		}
	}
	return false
}
