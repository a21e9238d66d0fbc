package resolve

import (
	"strings"

	"github.com/autodiag/refinery/ent"
	"github.com/autodiag/refinery/pkg/scoring"
)

// VehicleContext is the document-level vehicle consensus, derived by
// majority vote over the document's vehicle mentions.
type VehicleContext struct {
	Make  string
	Model string
}

// DocumentVehicleContext derives the document's vehicle context from its
// mentions. An empty context means the document is vehicle-agnostic.
func DocumentVehicleContext(mentions []*ent.VehicleMention) VehicleContext {
	var makes, models []string
	for _, m := range mentions {
		makes = append(makes, strings.ToLower(strings.TrimSpace(m.Make)))
		models = append(models, strings.ToLower(strings.TrimSpace(m.Model)))
	}

	ctx := VehicleContext{}
	if mk, ok := MajorityVote(makes); ok {
		ctx.Make = mk
	}
	if model, ok := MajorityVote(models); ok {
		ctx.Model = model
	}
	return ctx
}

// MatchContext grades a mention against the document context.
func MatchContext(m *ent.VehicleMention, ctx VehicleContext) scoring.VehicleMatch {
	if m == nil || ctx.Make == "" {
		return scoring.VehicleMatchAgnostic
	}

	mentionMake := strings.ToLower(strings.TrimSpace(m.Make))
	mentionModel := strings.ToLower(strings.TrimSpace(m.Model))

	if mentionMake == "" {
		return scoring.VehicleMatchAgnostic
	}
	if mentionMake != ctx.Make {
		return scoring.VehicleMatchConflict
	}
	if mentionModel == "" || ctx.Model == "" {
		return scoring.VehicleMatchMakeOnly
	}
	if mentionModel != ctx.Model {
		return scoring.VehicleMatchConflict
	}
	return scoring.VehicleMatchFull
}

// yearRangesOverlap reports whether two optional year ranges intersect.
// A nil bound is open-ended, so a missing range overlaps everything.
func yearRangesOverlap(aStart, aEnd, bStart, bEnd *int) bool {
	lo := func(p *int) int {
		if p == nil {
			return 0
		}
		return *p
	}
	hi := func(p *int) int {
		if p == nil {
			return 1 << 30
		}
		return *p
	}
	return lo(aStart) <= hi(bEnd) && lo(bStart) <= hi(aEnd)
}
