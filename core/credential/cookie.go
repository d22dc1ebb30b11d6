package credential

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/minhhieuit/PermissionAccessControl/core/claims"
	"github.com/minhhieuit/PermissionAccessControl/core/cookie"
)

// defaultCookieName is the session credential cookie.
const defaultCookieName = "__session"

// Cookie transports the principal as a signed cookie whose value is the
// JSON-encoded claim set. Saving overwrites the cookie in place, which is
// how a renewal reaches the client.
type Cookie struct {
	cookies *cookie.Manager
	name    string
	maxAge  int
}

// CookieOption configures the cookie transport.
type CookieOption func(*Cookie)

// WithCookieName overrides the credential cookie name.
func WithCookieName(name string) CookieOption {
	return func(c *Cookie) {
		if name != "" {
			c.name = name
		}
	}
}

// WithCookieMaxAge sets the credential cookie lifetime in seconds.
// Zero means a session cookie that expires with the browser session.
func WithCookieMaxAge(seconds int) CookieOption {
	return func(c *Cookie) {
		c.maxAge = seconds
	}
}

// NewCookie creates a cookie-based credential transport over the given
// cookie manager.
func NewCookie(cookies *cookie.Manager, opts ...CookieOption) *Cookie {
	if cookies == nil {
		panic("credential: cookie manager is required")
	}

	c := &Cookie{
		cookies: cookies,
		name:    defaultCookieName,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Load reads and verifies the credential cookie and decodes the principal.
// Returns ErrNoCredential when the cookie is absent and ErrInvalidCredential
// when verification or decoding fails.
func (c *Cookie) Load(r *http.Request) (claims.Principal, error) {
	payload, err := c.cookies.GetSigned(r, c.name)
	if err != nil {
		if errors.Is(err, cookie.ErrCookieNotFound) {
			return claims.Principal{}, ErrNoCredential
		}
		return claims.Principal{}, errors.Join(ErrInvalidCredential, err)
	}

	var p claims.Principal
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return claims.Principal{}, errors.Join(ErrInvalidCredential, err)
	}

	return p, nil
}

// Save writes the principal back as a fresh signed cookie. This is the
// renewal commit: once it succeeds, the client presents the enriched claim
// set on every subsequent request.
func (c *Cookie) Save(w http.ResponseWriter, r *http.Request, p claims.Principal) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return c.cookies.SetSigned(w, c.name, string(payload),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteLaxMode),
		cookie.WithMaxAge(c.maxAge),
	)
}

// Delete expires the credential cookie, rejecting the session.
func (c *Cookie) Delete(w http.ResponseWriter) {
	c.cookies.Delete(w, c.name)
}
