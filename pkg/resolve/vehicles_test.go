package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autodiag/refinery/ent"
	"github.com/autodiag/refinery/pkg/scoring"
)

func mention(make, model string) *ent.VehicleMention {
	return &ent.VehicleMention{Make: make, Model: model}
}

func TestDocumentVehicleContext_MajorityWins(t *testing.T) {
	ctx := DocumentVehicleContext([]*ent.VehicleMention{
		mention("Toyota", "Camry"),
		mention("toyota", "Camry"),
		mention("Honda", "Civic"),
	})
	assert.Equal(t, "toyota", ctx.Make)
	assert.Equal(t, "camry", ctx.Model)
}

func TestDocumentVehicleContext_NoMentions(t *testing.T) {
	ctx := DocumentVehicleContext(nil)
	assert.Empty(t, ctx.Make)
	assert.Empty(t, ctx.Model)
}

func TestMatchContext(t *testing.T) {
	ctx := VehicleContext{Make: "toyota", Model: "camry"}

	assert.Equal(t, scoring.VehicleMatchFull, MatchContext(mention("Toyota", "Camry"), ctx))
	assert.Equal(t, scoring.VehicleMatchMakeOnly, MatchContext(mention("Toyota", ""), ctx))
	assert.Equal(t, scoring.VehicleMatchConflict, MatchContext(mention("Toyota", "Corolla"), ctx))
	assert.Equal(t, scoring.VehicleMatchConflict, MatchContext(mention("Honda", "Camry"), ctx))
	assert.Equal(t, scoring.VehicleMatchAgnostic, MatchContext(mention("", ""), ctx))
	assert.Equal(t, scoring.VehicleMatchAgnostic, MatchContext(nil, ctx))

	// No document context grades everything agnostic.
	assert.Equal(t, scoring.VehicleMatchAgnostic,
		MatchContext(mention("Toyota", "Camry"), VehicleContext{}))
}

func TestMatchContext_MakeOnlyWhenContextLacksModel(t *testing.T) {
	ctx := VehicleContext{Make: "toyota"}
	assert.Equal(t, scoring.VehicleMatchMakeOnly, MatchContext(mention("Toyota", "Camry"), ctx))
}

func TestYearRangesOverlap(t *testing.T) {
	y := func(v int) *int { return &v }

	assert.True(t, yearRangesOverlap(y(2007), y(2011), y(2010), y(2015)))
	assert.False(t, yearRangesOverlap(y(2007), y(2009), y(2010), y(2015)))
	// Open-ended ranges overlap everything.
	assert.True(t, yearRangesOverlap(nil, nil, y(2010), y(2015)))
	assert.True(t, yearRangesOverlap(y(2007), nil, nil, y(2008)))
	// Touching endpoints count as overlap.
	assert.True(t, yearRangesOverlap(y(2007), y(2010), y(2010), y(2012)))
}

func TestSeverityLevelFromLabel(t *testing.T) {
	assert.Equal(t, 1, severityLevelFromLabel("informational"))
	assert.Equal(t, 2, severityLevelFromLabel("minor"))
	assert.Equal(t, 3, severityLevelFromLabel("moderate"))
	assert.Equal(t, 5, severityLevelFromLabel("critical"))
	assert.Equal(t, 3, severityLevelFromLabel(""))
}

func TestSystemCategoryFromCode(t *testing.T) {
	assert.Equal(t, "powertrain", systemCategoryFromCode("P0300"))
	assert.Equal(t, "body", systemCategoryFromCode("B1234"))
	assert.Equal(t, "chassis", systemCategoryFromCode("C0561"))
	assert.Equal(t, "network", systemCategoryFromCode("U0100"))
}

func TestEmissionsRelated(t *testing.T) {
	assert.True(t, emissionsRelated("P0420"))
	assert.True(t, emissionsRelated("P0455"))
	assert.False(t, emissionsRelated("P0300"))
	assert.False(t, emissionsRelated("U0400"))
}
