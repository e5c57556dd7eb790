package user

import "context"

// Principal is the authenticated caller of an administrative operation.
type Principal struct {
	UserID  string
	IsAdmin bool
}

// AuthContext resolves the current principal. It is injected into the
// operations instead of being read from ambient global state so tests can
// substitute it. The bool is false for anonymous callers.
type AuthContext interface {
	CurrentUser(ctx context.Context) (Principal, bool, error)
}

type principalContextKey struct{}

// WithPrincipal stores a verified principal on the context; the HTTP
// middleware does this after token introspection.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext returns the principal stored by WithPrincipal.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(Principal)
	return p, ok
}

// ContextAuth is the production AuthContext: it reads whatever principal the
// request middleware verified.
type ContextAuth struct{}

func (ContextAuth) CurrentUser(ctx context.Context) (Principal, bool, error) {
	p, ok := PrincipalFromContext(ctx)
	return p, ok, nil
}
