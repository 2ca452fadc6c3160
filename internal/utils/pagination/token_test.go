package pagination_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/centsible/centsible_backend/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	occurredAt := time.Date(2025, time.July, 14, 9, 30, 15, 123456789, time.UTC)
	entryID := "8f14e45f-ceea-467f-a1d6-b4c2f0a7e9d2"

	token := pagination.EncodeToken(occurredAt, entryID)

	gotTime, gotID, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, occurredAt.Equal(gotTime))
	assert.Equal(t, entryID, gotID)
}

func TestDecodeToken_InvalidBase64(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.ErrorContains(t, err, "base64")
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("2025-07-14T09:30:15Z"))
	_, _, err := pagination.DecodeToken(token)
	assert.Error(t, err)
}

func TestDecodeToken_BadTimestamp(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("yesterday|entry-1"))
	_, _, err := pagination.DecodeToken(token)
	assert.ErrorContains(t, err, "time parse")
}
