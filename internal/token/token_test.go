package token_test

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"

	"folio/internal/token"
)

func TestNew_IsValidULID(t *testing.T) {
	tok := token.New()

	assert.Len(t, tok, 26)
	_, err := ulid.Parse(tok)
	assert.NoError(t, err)
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		tok := token.New()
		_, dup := seen[tok]
		assert.False(t, dup, "duplicate token issued: %s", tok)
		seen[tok] = struct{}{}
	}
}
