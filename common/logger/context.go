package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields are added to every log record written with a context carrying them.
type LogFields struct {
	WorkspaceID  *int64
	UserID       *int64  // acting user
	TargetUserID *int64  // user whose membership is changing
	AuthID       *string // external identity of the requester
	Operation    *string // e.g. "workspace.create"
	Component    string  // e.g. "workspaces.service"
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields; newer non-nil/non-empty values win.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	merged := mergeFields(GetLogFields(ctx), fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields returns the fields on ctx, or the zero value.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.WorkspaceID != nil {
		result.WorkspaceID = next.WorkspaceID
	}
	if next.UserID != nil {
		result.UserID = next.UserID
	}
	if next.TargetUserID != nil {
		result.TargetUserID = next.TargetUserID
	}
	if next.AuthID != nil {
		result.AuthID = next.AuthID
	}
	if next.Operation != nil {
		result.Operation = next.Operation
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr returns a pointer to v, for building LogFields inline.
func Ptr[T any](v T) *T {
	return &v
}
