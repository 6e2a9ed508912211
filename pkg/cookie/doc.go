// Package cookie persists a single user preference, such as the selected
// language, in an HTTP cookie.
//
//	m := cookie.New("lang")
//	m.Set(w, "es")
//	lang, err := m.Get(r) // "es"
//
// Passing WithSecret (32+ bytes) signs values as base64(value).base64(hmac);
// tampered or unsigned values then fail with ErrBadSig so callers can fall back
// to their default.
package cookie
