// Code generated by ent, DO NOT EDIT.

package hook

import (
	"context"
	"fmt"

	"github.com/autodiag/refinery/ent"
)

// The ChunkEvaluationFunc type is an adapter to allow the use of ordinary
// function as ChunkEvaluation mutator.
type ChunkEvaluationFunc func(context.Context, *ent.ChunkEvaluationMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ChunkEvaluationFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ChunkEvaluationMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ChunkEvaluationMutation", m)
}

// The CrawlRequestFunc type is an adapter to allow the use of ordinary
// function as CrawlRequest mutator.
type CrawlRequestFunc func(context.Context, *ent.CrawlRequestMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f CrawlRequestFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.CrawlRequestMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.CrawlRequestMutation", m)
}

// The DTCCauseFunc type is an adapter to allow the use of ordinary
// function as DTCCause mutator.
type DTCCauseFunc func(context.Context, *ent.DTCCauseMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f DTCCauseFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.DTCCauseMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.DTCCauseMutation", m)
}

// The DTCDiagnosticStepFunc type is an adapter to allow the use of ordinary
// function as DTCDiagnosticStep mutator.
type DTCDiagnosticStepFunc func(context.Context, *ent.DTCDiagnosticStepMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f DTCDiagnosticStepFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.DTCDiagnosticStepMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.DTCDiagnosticStepMutation", m)
}

// The DTCMasterFunc type is an adapter to allow the use of ordinary
// function as DTCMaster mutator.
type DTCMasterFunc func(context.Context, *ent.DTCMasterMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f DTCMasterFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.DTCMasterMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.DTCMasterMutation", m)
}

// The DTCRelatedSensorFunc type is an adapter to allow the use of ordinary
// function as DTCRelatedSensor mutator.
type DTCRelatedSensorFunc func(context.Context, *ent.DTCRelatedSensorMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f DTCRelatedSensorFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.DTCRelatedSensorMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.DTCRelatedSensorMutation", m)
}

// The DocumentFunc type is an adapter to allow the use of ordinary
// function as Document mutator.
type DocumentFunc func(context.Context, *ent.DocumentMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f DocumentFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.DocumentMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.DocumentMutation", m)
}

// The DocumentChunkFunc type is an adapter to allow the use of ordinary
// function as DocumentChunk mutator.
type DocumentChunkFunc func(context.Context, *ent.DocumentChunkMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f DocumentChunkFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.DocumentChunkMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.DocumentChunkMutation", m)
}

// The EntitySourceFunc type is an adapter to allow the use of ordinary
// function as EntitySource mutator.
type EntitySourceFunc func(context.Context, *ent.EntitySourceMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f EntitySourceFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.EntitySourceMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.EntitySourceMutation", m)
}

// The ExtractedCategoryFunc type is an adapter to allow the use of ordinary
// function as ExtractedCategory mutator.
type ExtractedCategoryFunc func(context.Context, *ent.ExtractedCategoryMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ExtractedCategoryFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ExtractedCategoryMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ExtractedCategoryMutation", m)
}

// The ExtractedCauseFunc type is an adapter to allow the use of ordinary
// function as ExtractedCause mutator.
type ExtractedCauseFunc func(context.Context, *ent.ExtractedCauseMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ExtractedCauseFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ExtractedCauseMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ExtractedCauseMutation", m)
}

// The ExtractedDTCFunc type is an adapter to allow the use of ordinary
// function as ExtractedDTC mutator.
type ExtractedDTCFunc func(context.Context, *ent.ExtractedDTCMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ExtractedDTCFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ExtractedDTCMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ExtractedDTCMutation", m)
}

// The ExtractedSensorFunc type is an adapter to allow the use of ordinary
// function as ExtractedSensor mutator.
type ExtractedSensorFunc func(context.Context, *ent.ExtractedSensorMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ExtractedSensorFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ExtractedSensorMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ExtractedSensorMutation", m)
}

// The ExtractedStepFunc type is an adapter to allow the use of ordinary
// function as ExtractedStep mutator.
type ExtractedStepFunc func(context.Context, *ent.ExtractedStepMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ExtractedStepFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ExtractedStepMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ExtractedStepMutation", m)
}

// The ExtractedTSBFunc type is an adapter to allow the use of ordinary
// function as ExtractedTSB mutator.
type ExtractedTSBFunc func(context.Context, *ent.ExtractedTSBMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ExtractedTSBFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ExtractedTSBMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ExtractedTSBMutation", m)
}

// The ProcessingLogFunc type is an adapter to allow the use of ordinary
// function as ProcessingLog mutator.
type ProcessingLogFunc func(context.Context, *ent.ProcessingLogMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ProcessingLogFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ProcessingLogMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ProcessingLogMutation", m)
}

// The ResolutionLogFunc type is an adapter to allow the use of ordinary
// function as ResolutionLog mutator.
type ResolutionLogFunc func(context.Context, *ent.ResolutionLogMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ResolutionLogFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ResolutionLogMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ResolutionLogMutation", m)
}

// The SensorFunc type is an adapter to allow the use of ordinary
// function as Sensor mutator.
type SensorFunc func(context.Context, *ent.SensorMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SensorFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SensorMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SensorMutation", m)
}

// The TSBBulletinFunc type is an adapter to allow the use of ordinary
// function as TSBBulletin mutator.
type TSBBulletinFunc func(context.Context, *ent.TSBBulletinMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f TSBBulletinFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.TSBBulletinMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.TSBBulletinMutation", m)
}

// The VehicleFunc type is an adapter to allow the use of ordinary
// function as Vehicle mutator.
type VehicleFunc func(context.Context, *ent.VehicleMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f VehicleFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.VehicleMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.VehicleMutation", m)
}

// The VehicleDTCFunc type is an adapter to allow the use of ordinary
// function as VehicleDTC mutator.
type VehicleDTCFunc func(context.Context, *ent.VehicleDTCMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f VehicleDTCFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.VehicleDTCMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.VehicleDTCMutation", m)
}

// The VehicleMentionFunc type is an adapter to allow the use of ordinary
// function as VehicleMention mutator.
type VehicleMentionFunc func(context.Context, *ent.VehicleMentionMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f VehicleMentionFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.VehicleMentionMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.VehicleMentionMutation", m)
}

// Condition is a hook condition function.
type Condition func(context.Context, ent.Mutation) bool

// And groups conditions with the AND operator.
func And(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		if !first(ctx, m) || !second(ctx, m) {
			return false
		}
		for _, cond := range rest {
			if !cond(ctx, m) {
				return false
			}
		}
		return true
	}
}

// Or groups conditions with the OR operator.
func Or(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		if first(ctx, m) || second(ctx, m) {
			return true
		}
		for _, cond := range rest {
			if cond(ctx, m) {
				return true
			}
		}
		return false
	}
}

// Not negates a given condition.
func Not(cond Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		return !cond(ctx, m)
	}
}

// HasOp is a condition testing mutation operation.
func HasOp(op ent.Op) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		return m.Op().Is(op)
	}
}

// HasAddedFields is a condition validating `.AddedField` on fields.
func HasAddedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if _, exists := m.AddedField(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.AddedField(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasClearedFields is a condition validating `.FieldCleared` on fields.
func HasClearedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if exists := m.FieldCleared(field); !exists {
			return false
		}
		for _, field := range fields {
			if exists := m.FieldCleared(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasFields is a condition validating `.Field` on fields.
func HasFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if _, exists := m.Field(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.Field(field); !exists {
				return false
			}
		}
		return true
	}
}

// If executes the given hook under condition.
//
//	hook.If(ComputeAverage, And(HasFields(...), HasAddedFields(...)))
func If(hk ent.Hook, cond Condition) ent.Hook {
	return func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			if cond(ctx, m) {
				return hk(next).Mutate(ctx, m)
			}
			return next.Mutate(ctx, m)
		})
	}
}

// On executes the given hook only for the given operation.
//
//	hook.On(Log, ent.Delete|ent.Create)
func On(hk ent.Hook, op ent.Op) ent.Hook {
	return If(hk, HasOp(op))
}

// Unless skips the given hook only for the given operation.
//
//	hook.Unless(Log, ent.Update|ent.UpdateOne)
func Unless(hk ent.Hook, op ent.Op) ent.Hook {
	return If(hk, Not(HasOp(op)))
}

// FixedError is a hook returning a fixed error.
func FixedError(err error) ent.Hook {
	return func(ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(context.Context, ent.Mutation) (ent.Value, error) {
			return nil, err
		})
	}
}

// Reject returns a hook that rejects all operations that match op.
//
//	func (T) Hooks() []ent.Hook {
//		return []ent.Hook{
//			Reject(ent.Delete|ent.Update),
//		}
//	}
func Reject(op ent.Op) ent.Hook {
	hk := FixedError(fmt.Errorf("%s operation is not allowed", op))
	return On(hk, op)
}

// Chain acts as a list of hooks and is effectively immutable.
// Once created, it will always hold the same set of hooks in the same order.
type Chain struct {
	hooks []ent.Hook
}

// NewChain creates a new chain of hooks.
func NewChain(hooks ...ent.Hook) Chain {
	return Chain{append([]ent.Hook(nil), hooks...)}
}

// Hook chains the list of hooks and returns the final hook.
func (c Chain) Hook() ent.Hook {
	return func(mutator ent.Mutator) ent.Mutator {
		for i := len(c.hooks) - 1; i >= 0; i-- {
			mutator = c.hooks[i](mutator)
		}
		return mutator
	}
}

// Append extends a chain, adding the specified hook
// as the last ones in the mutation flow.
func (c Chain) Append(hooks ...ent.Hook) Chain {
	newHooks := make([]ent.Hook, 0, len(c.hooks)+len(hooks))
	newHooks = append(newHooks, c.hooks...)
	newHooks = append(newHooks, hooks...)
	return Chain{newHooks}
}

// Extend extends a chain, adding the specified chain
// as the last ones in the mutation flow.
func (c Chain) Extend(chain Chain) Chain {
	return c.Append(chain.hooks...)
}
