package progress

import "context"

type reasonKey struct{}

// Reasons a day became ready, carried to the notifier.
const (
	ReasonCreated     = "created"
	ReasonAdvanced    = "advanced"
	ReasonRegenerated = "regenerated"
	ReasonReminder    = "reminder"
)

// WithReason tags ctx with why a day-ready notification is sent.
func WithReason(ctx context.Context, reason string) context.Context {
	return context.WithValue(ctx, reasonKey{}, reason)
}

// ReasonFrom returns the notification reason, or "" when unset.
func ReasonFrom(ctx context.Context) string {
	r, _ := ctx.Value(reasonKey{}).(string)
	return r
}
