package logs

import (
	"context"
	"crypto/rand"
)

type Span string

type spanKey struct{}

var SpanKey = spanKey{}

type stepKey struct{}

// NewSpan starts a span for a named step of the bootstrap sequence.
type NewSpan func(ctx context.Context, step string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, step string) (context.Context, Span) {
		var args []any
		if parent, ok := ctx.Value(SpanKey).(Span); ok {
			args = append(args, "parent", string(parent))
		}
		span := Span(rand.Text()[:8])
		ctx = context.WithValue(ctx, SpanKey, span)
		ctx = context.WithValue(ctx, stepKey{}, step)
		logger.DebugContext(ctx, "begin", args...)
		return ctx, span
	}
}

func SpanOf(ctx context.Context) Span {
	span, _ := ctx.Value(SpanKey).(Span)
	return span
}
