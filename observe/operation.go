package observe

import (
	"context"
	"strings"
)

type operationKey struct{}

// WithOperation returns a context that labels aggregations run with it.
// Observers report the label; blank names are ignored.
func WithOperation(ctx context.Context, name string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, operationKey{}, name)
}

// OperationFromContext returns the operation label, if present.
func OperationFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	name, ok := ctx.Value(operationKey{}).(string)
	return name, ok
}
