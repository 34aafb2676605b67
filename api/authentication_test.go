package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAuthorizationBearerHeader(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		header := http.Header{}
		header.Set("Authorization", "Bearer token")
		token, err := ParseAuthorizationBearerHeader(header)
		assert.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("empty header", func(t *testing.T) {
		token, err := ParseAuthorizationBearerHeader(http.Header{})
		assert.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("missing Bearer prefix", func(t *testing.T) {
		header := http.Header{}
		header.Set("Authorization", "token")
		_, err := ParseAuthorizationBearerHeader(header)
		assert.Error(t, err)
	})
}

func TestParseApiKeyHeader(t *testing.T) {
	header := http.Header{}
	header.Set("X-API-Key", "  key  ")
	assert.Equal(t, "key", ParseApiKeyHeader(header))
}
