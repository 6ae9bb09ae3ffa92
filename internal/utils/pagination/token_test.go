package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2024, 3, 9, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(createdAt, "42")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, decodedID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, createdAt, decodedAt, "Created at should match after decode")
	assert.Equal(t, "42", decodedID, "Id should match after decode")

	// Non-UTC input is normalized
	local := time.Date(2024, 3, 9, 16, 30, 45, 0, time.FixedZone("EET", 2*3600))
	decodedAt, _, err = DecodeToken(EncodeToken(local, "7"))
	require.NoError(t, err)
	assert.True(t, local.Equal(decodedAt))
	assert.Equal(t, time.UTC, decodedAt.Location())
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	// Base64 of a date without separator
	_, _, err = DecodeToken("MjAyMy0wNS0xNVQwMDowMDowMFo=")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	// Base64 of "notadate|12"
	_, _, err = DecodeToken("bm90YWRhdGV8MTI=")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")
}
