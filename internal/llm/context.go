package llm

import "context"

type contextKey string

const scopeKey contextKey = "llm_scope"

// Scope carries request attribution for event logging. The generation
// pipeline attaches it before calling the provider.
type Scope struct {
	StudentID string
	GameType  string
	Strategy  string
}

// WithScope attaches request attribution to the context.
func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey, s)
}

// ScopeFrom extracts request attribution from the context.
func ScopeFrom(ctx context.Context) Scope {
	if v, ok := ctx.Value(scopeKey).(Scope); ok {
		return v
	}
	return Scope{}
}
