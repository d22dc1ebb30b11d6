// Package credential implements the transports that carry the session
// principal between requests.
//
// A transport can load the current principal from an incoming request, save
// a replacement principal (the renewal commit performed after a successful
// enrichment pass), and delete the credential when a session is rejected.
// Two transports are provided: Cookie serializes the principal into a signed
// session cookie, JWT carries it as custom claims in an HS256 bearer token
// and issues renewed tokens through a response header.
//
//	cookies, _ := cookie.New([]string{secret})
//	transport := credential.NewCookie(cookies)
//
//	principal, err := transport.Load(r)
//	switch {
//	case errors.Is(err, credential.ErrNoCredential):
//		// anonymous request
//	case err != nil:
//		// tampered or expired credential
//	}
package credential
