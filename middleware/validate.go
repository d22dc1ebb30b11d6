package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/minhhieuit/PermissionAccessControl/core/claims"
	"github.com/minhhieuit/PermissionAccessControl/core/credential"
	"github.com/minhhieuit/PermissionAccessControl/core/enrich"
	"github.com/minhhieuit/PermissionAccessControl/core/logger"
)

type principalKey struct{}

// Transport is the credential-store contract the middleware needs: load the
// current principal, save a replacement (renewal), delete on rejection.
type Transport interface {
	Load(r *http.Request) (claims.Principal, error)
	Save(w http.ResponseWriter, r *http.Request, p claims.Principal) error
	Delete(w http.ResponseWriter)
}

// Enricher is the enrichment pass invoked on every validation event.
type Enricher interface {
	Enrich(ctx context.Context, current claims.Principal) (enrich.Outcome, error)
}

// ValidateConfig configures the credential validation middleware.
type ValidateConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Transport loads, saves, and deletes the session credential (required)
	Transport Transport
	// Enricher runs the claims enrichment pass (required)
	Enricher Enricher
	// Logger for structured logging (default: slog with io.Discard)
	Logger *slog.Logger
	// ErrorHandler defines the response for rejected sessions
	// Default: 401 Unauthorized
	ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)
}

// Validate creates middleware that validates the session credential on every
// request: it loads the principal from the transport, runs the enrichment
// pass, and on replacement renews the credential before the handler runs.
//
// Requests without any credential pass through anonymously. A credential
// that is present but cannot be verified or enriched is deleted and the
// session rejected: a user who cannot be enriched cannot be safely
// authorized.
//
// Usage:
//
//	transport := credential.NewCookie(cookies)
//	enricher := enrich.New(directory, calculator)
//
//	mux.Handle("/", middleware.Validate(transport, enricher)(appHandler))
func Validate(transport Transport, enricher Enricher) func(http.Handler) http.Handler {
	return ValidateWithConfig(ValidateConfig{
		Transport: transport,
		Enricher:  enricher,
	})
}

// ValidateWithConfig creates a credential validation middleware with custom
// configuration.
func ValidateWithConfig(cfg ValidateConfig) func(http.Handler) http.Handler {
	if cfg.Transport == nil {
		panic("validate middleware: transport is required")
	}
	if cfg.Enricher == nil {
		panic("validate middleware: enricher is required")
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			current, err := cfg.Transport.Load(r)
			if err != nil {
				if errors.Is(err, credential.ErrNoCredential) {
					next.ServeHTTP(w, r)
					return
				}

				cfg.Logger.LogAttrs(r.Context(), slog.LevelWarn, "session credential rejected", logger.Error(err))
				cfg.Transport.Delete(w)
				cfg.ErrorHandler(w, r, err)
				return
			}

			outcome, err := cfg.Enricher.Enrich(r.Context(), current)
			if err != nil {
				cfg.Logger.LogAttrs(r.Context(), slog.LevelError, "claims enrichment failed", logger.Error(err))
				cfg.Transport.Delete(w)
				cfg.ErrorHandler(w, r, err)
				return
			}

			if outcome.Replaced {
				// Renewal commit: without it the enrichment would repeat on
				// every request.
				if err := cfg.Transport.Save(w, r, outcome.Principal); err != nil {
					cfg.Logger.LogAttrs(r.Context(), slog.LevelError, "credential renewal failed", logger.Error(err))
					cfg.Transport.Delete(w)
					cfg.ErrorHandler(w, r, err)
					return
				}
			}

			ctx := WithPrincipal(r.Context(), outcome.Principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithPrincipal stores the principal in the context.
func WithPrincipal(ctx context.Context, p claims.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext retrieves the principal stored by the validation
// middleware. The second return value reports whether one is present.
func PrincipalFromContext(ctx context.Context) (claims.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(claims.Principal)
	return p, ok
}
