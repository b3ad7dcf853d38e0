package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID    ctxKey = "user_id"
	CtxKeyPrincipal ctxKey = "principal"
)

// Principal is the caller resolved from a bearer token and its live session.
type Principal struct {
	UID       string
	SessionID string
	UserType  string

	// VerificationLevel comes from the token, not the session.
	VerificationLevel string
}

// PrincipalFromContext returns the authenticated caller, if any.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(CtxKeyPrincipal).(Principal)
	return p, ok && p.UID != ""
}

// ContextWithPrincipal stores p for downstream handlers.
func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, p.UID)
	return context.WithValue(ctx, CtxKeyPrincipal, p)
}
