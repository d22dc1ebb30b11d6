// Package cookie provides an HTTP cookie manager with HMAC signing and
// AES-256-GCM encryption, used as the transport layer for the session
// credential.
//
// Values written through SetSigned carry an HMAC-SHA256 signature so any
// client-side tampering is detected on read. Values written through
// SetEncrypted are additionally opaque to the client. Multiple secrets are
// supported for key rotation: the first secret signs and encrypts, all
// secrets are tried on verification and decryption.
//
//	manager, err := cookie.New([]string{secret})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = manager.SetSigned(w, "session", payload,
//		cookie.WithHTTPOnly(true),
//		cookie.WithSecure(true),
//	)
//
//	payload, err := manager.GetSigned(r, "session")
package cookie
