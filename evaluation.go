package flagresolve

import (
	"context"
	"fmt"

	"github.com/TimurManjosov/flagresolve/values"
)

// Evaluation is the result of a single flag evaluation. On failure Value
// holds the caller's default, Reason is "ERROR" and ErrorCode/ErrorMessage
// describe what went wrong.
type Evaluation[T any] struct {
	Value        T
	Variant      string
	Reason       string
	ErrorCode    ErrorCode
	ErrorMessage string
}

// BoolEvaluation resolves key as a boolean.
func (p *Provider) BoolEvaluation(ctx context.Context, key string, defaultValue bool, evalCtx EvaluationContext) Evaluation[bool] {
	return castEvaluation(p, ctx, key, values.Bool(defaultValue), evalCtx, values.Value.AsBool)
}

// StringEvaluation resolves key as a string.
func (p *Provider) StringEvaluation(ctx context.Context, key string, defaultValue string, evalCtx EvaluationContext) Evaluation[string] {
	return castEvaluation(p, ctx, key, values.String(defaultValue), evalCtx, values.Value.AsString)
}

// IntEvaluation resolves key as a 32-bit integer.
func (p *Provider) IntEvaluation(ctx context.Context, key string, defaultValue int32, evalCtx EvaluationContext) Evaluation[int32] {
	return castEvaluation(p, ctx, key, values.Int(defaultValue), evalCtx, values.Value.AsInt)
}

// DoubleEvaluation resolves key as a 64-bit float.
func (p *Provider) DoubleEvaluation(ctx context.Context, key string, defaultValue float64, evalCtx EvaluationContext) Evaluation[float64] {
	return castEvaluation(p, ctx, key, values.Double(defaultValue), evalCtx, values.Value.AsDouble)
}

// castEvaluation narrows an object evaluation to the statically requested
// type. The wrapped default always narrows back, so errored evaluations keep
// their original code and message.
func castEvaluation[T any](p *Provider, ctx context.Context, key string, defaultValue values.Value, evalCtx EvaluationContext, cast func(values.Value) (T, bool)) Evaluation[T] {
	object := p.ObjectEvaluation(ctx, key, defaultValue, evalCtx)

	casted, ok := cast(object.Value)
	if !ok {
		fallback, _ := cast(defaultValue)
		return Evaluation[T]{
			Value:        fallback,
			Reason:       ReasonError,
			ErrorCode:    ErrorCodeTypeMismatch,
			ErrorMessage: fmt.Sprintf("Cannot cast value '%s' to expected type", object.Value),
		}
	}

	return Evaluation[T]{
		Value:        casted,
		Variant:      object.Variant,
		Reason:       object.Reason,
		ErrorCode:    object.ErrorCode,
		ErrorMessage: object.ErrorMessage,
	}
}
