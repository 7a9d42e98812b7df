package logging

import (
	"context"

	"github.com/google/uuid"
)

type Module string

const (
	ModuleSchedule   Module = "schedule"
	ModuleOccurrence Module = "occurrence"
	ModuleOwner      Module = "owner"
	ModuleDispatch   Module = "dispatch"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	moduleKey
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func ModuleFromContext(ctx context.Context) Module {
	m, _ := ctx.Value(moduleKey).(Module)

	return m
}

// ValidateAndExtractRequestID keeps an incoming id when it is a UUID and
// issues a fresh UUIDv7 otherwise.
func ValidateAndExtractRequestID(raw string) string {
	if id, err := uuid.Parse(raw); err == nil {
		return id.String()
	}

	return uuid.Must(uuid.NewV7()).String()
}
