// Package securexml provides hardened XML parsing and serialization on
// top of github.com/beevik/etree.
//
// The VIES exchange crosses a trust boundary in both directions: the
// request body carries caller-supplied text, and the response body comes
// from a remote service. This package keeps both safe. At parse time
// it refuses DOCTYPE and entity declarations, so entities are never
// expanded and external resources are never fetched. At serialize time
// it escapes text content, so element structure cannot be altered
// through untrusted text.
//
// Parsing is namespace-aware: an element's Tag holds its local name, so
// documents can be queried without pinning namespace prefixes.
package securexml
