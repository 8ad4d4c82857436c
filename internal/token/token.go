// Package token issues opaque public-sharing tokens for documents.
//
// Tokens are ULIDs: 26-character Crockford base32 strings with 80 bits of
// randomness behind a millisecond timestamp. They are collision resistant and
// time sortable, and carry no relation to a document's sequence number, so
// holding one token reveals nothing about any other.
package token

import "github.com/oklog/ulid/v2"

// New returns a freshly issued share token.
func New() string {
	return ulid.Make().String()
}
