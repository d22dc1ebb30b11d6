package credential

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/minhhieuit/PermissionAccessControl/core/claims"
)

const (
	defaultAuthHeader  = "Authorization"
	defaultRenewHeader = "X-Renewed-Credential"
	defaultTokenTTL    = 24 * time.Hour
)

// principalClaims is the JWT claims payload carrying the full session claim
// set alongside the registered claims.
type principalClaims struct {
	jwt.RegisteredClaims
	Scheme    string         `json:"scheme"`
	ClaimsSet []claims.Claim `json:"claims_set"`
}

// JWT transports the principal as custom claims in an HS256 bearer token.
// Because a bearer token cannot be overwritten server-side, renewal issues a
// fresh token in a response header; clients are expected to replace their
// stored token when the header is present.
type JWT struct {
	signingKey  []byte
	issuer      string
	ttl         time.Duration
	authHeader  string
	renewHeader string
}

// JWTOption configures the JWT transport.
type JWTOption func(*JWT)

// WithJWTIssuer sets the issuer for generated tokens.
func WithJWTIssuer(issuer string) JWTOption {
	return func(t *JWT) {
		t.issuer = issuer
	}
}

// WithJWTTTL sets the lifetime of renewed tokens.
func WithJWTTTL(ttl time.Duration) JWTOption {
	return func(t *JWT) {
		if ttl > 0 {
			t.ttl = ttl
		}
	}
}

// WithJWTRenewHeader overrides the response header used to deliver renewed
// tokens.
func WithJWTRenewHeader(name string) JWTOption {
	return func(t *JWT) {
		if name != "" {
			t.renewHeader = name
		}
	}
}

// NewJWT creates a JWT-based credential transport with the given HS256
// signing key.
func NewJWT(signingKey string, opts ...JWTOption) (*JWT, error) {
	if signingKey == "" {
		return nil, ErrEmptySigningKey
	}

	t := &JWT{
		signingKey:  []byte(signingKey),
		ttl:         defaultTokenTTL,
		authHeader:  defaultAuthHeader,
		renewHeader: defaultRenewHeader,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// Load extracts and validates the bearer token and rebuilds the principal
// from its claims payload.
func (t *JWT) Load(r *http.Request) (claims.Principal, error) {
	header := r.Header.Get(t.authHeader)
	if header == "" {
		return claims.Principal{}, ErrNoCredential
	}

	tokenString := header
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		tokenString = parts[1]
	}

	var payload principalClaims
	token, err := jwt.ParseWithClaims(tokenString, &payload, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.signingKey, nil
	})
	if err != nil || !token.Valid {
		return claims.Principal{}, errors.Join(ErrInvalidCredential, err)
	}

	scheme := payload.Scheme
	if scheme == "" {
		scheme = claims.SchemeJWT
	}

	p, err := claims.NewPrincipal(scheme, payload.ClaimsSet...)
	if err != nil {
		return claims.Principal{}, errors.Join(ErrInvalidCredential, err)
	}

	return p, nil
}

// Save signs a fresh token carrying the replacement claim set and delivers
// it via the renew header. This is the renewal commit for bearer clients.
func (t *JWT) Save(w http.ResponseWriter, r *http.Request, p claims.Principal) error {
	now := time.Now()
	payload := principalClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Scheme:    p.Scheme(),
		ClaimsSet: p.Claims(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(t.signingKey)
	if err != nil {
		return err
	}

	w.Header().Set(t.renewHeader, token)
	return nil
}

// Delete clears any pending renewed token. Bearer tokens themselves are
// stateless; rejection is enforced by the 401 the caller sends alongside.
func (t *JWT) Delete(w http.ResponseWriter) {
	w.Header().Del(t.renewHeader)
}
