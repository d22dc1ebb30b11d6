package claims

import "encoding/json"

// Principal is the authenticated identity for the current session: an ordered
// claim set plus the authentication scheme it was issued under.
//
// Principal is an immutable value type. Constructors and accessors copy the
// claim set, and WithClaims builds a new Principal instead of mutating the
// receiver. The zero Principal is valid and represents an anonymous identity.
type Principal struct {
	scheme string
	claims []Claim
}

// NewPrincipal creates a principal under the given authentication scheme.
// The claim slice is copied, so the caller keeps ownership of its argument.
func NewPrincipal(scheme string, cs ...Claim) (Principal, error) {
	if scheme == "" {
		return Principal{}, ErrMissingScheme
	}

	return Principal{
		scheme: scheme,
		claims: append([]Claim(nil), cs...),
	}, nil
}

// Scheme returns the authentication scheme tag the principal was issued under.
func (p Principal) Scheme() string {
	return p.scheme
}

// Claims returns a copy of the ordered claim set.
func (p Principal) Claims() []Claim {
	return append([]Claim(nil), p.claims...)
}

// Len returns the number of claims in the set.
func (p Principal) Len() int {
	return len(p.claims)
}

// HasClaim reports whether a claim of the given type is present.
func (p Principal) HasClaim(claimType string) bool {
	_, ok := p.ClaimValue(claimType)
	return ok
}

// ClaimValue returns the value of the first claim of the given type.
// The second return value reports whether such a claim exists.
func (p Principal) ClaimValue(claimType string) (string, bool) {
	for _, c := range p.claims {
		if c.Type == claimType {
			return c.Value, true
		}
	}
	return "", false
}

// WithClaims builds a new principal from the existing claim set plus the
// given additions, preserving claim order and the authentication scheme.
// The receiver is left untouched.
func (p Principal) WithClaims(additions ...Claim) Principal {
	merged := make([]Claim, 0, len(p.claims)+len(additions))
	merged = append(merged, p.claims...)
	merged = append(merged, additions...)

	return Principal{
		scheme: p.scheme,
		claims: merged,
	}
}

// principalWire is the JSON representation used by credential transports.
type principalWire struct {
	Scheme string  `json:"scheme"`
	Claims []Claim `json:"claims"`
}

// MarshalJSON implements json.Marshaler.
func (p Principal) MarshalJSON() ([]byte, error) {
	return json.Marshal(principalWire{
		Scheme: p.scheme,
		Claims: p.claims,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Principal) UnmarshalJSON(data []byte) error {
	var wire principalWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Scheme == "" {
		return ErrMissingScheme
	}

	p.scheme = wire.Scheme
	p.claims = wire.Claims
	return nil
}
