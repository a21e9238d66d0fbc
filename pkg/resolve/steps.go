package resolve

import (
	"context"
	"fmt"

	"github.com/autodiag/refinery/ent"
)

// NextStep follows a diagnostic step's decision pointer one level: the
// pass pointer when the check passed, the fail pointer otherwise. Returns
// nil when the walk ends. The step graph is never loaded eagerly; callers
// walk it pointer by pointer.
func NextStep(ctx context.Context, client *ent.Client, step *ent.DTCDiagnosticStep,
	passed bool) (*ent.DTCDiagnosticStep, error) {

	nextID := step.FailNextStepID
	if passed {
		nextID = step.PassNextStepID
	}
	if nextID == nil || *nextID == "" {
		return nil, nil
	}
	next, err := client.DTCDiagnosticStep.Get(ctx, *nextID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to follow step pointer %s: %w", *nextID, err)
	}
	return next, nil
}
