package domain_test

import (
	"testing"
	"time"

	"github.com/centsible/centsible_backend/internal/apperrors"
	"github.com/centsible/centsible_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCycleKey(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		key, err := domain.ParseCycleKey("2025-07")
		require.NoError(t, err)
		assert.Equal(t, "2025-07", key.String())
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, raw := range []string{"", "2025", "2025-13", "2025-00", "07-2025", "2025-7", "jul-2025"} {
			_, err := domain.ParseCycleKey(raw)
			assert.ErrorIs(t, err, apperrors.ErrValidation, "raw=%q", raw)
		}
	})
}

func TestCycleKeyCutoff(t *testing.T) {
	key, err := domain.ParseCycleKey("2025-07")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), key.Cutoff())
}

func TestCycleKeyNext(t *testing.T) {
	assert.Equal(t, domain.CycleKey("2025-08"), domain.CycleKey("2025-07").Next())
	assert.Equal(t, domain.CycleKey("2026-01"), domain.CycleKey("2025-12").Next())
}

func TestCycleKeyForTime(t *testing.T) {
	assert.Equal(t, domain.CycleKey("2025-07"), domain.CycleKeyForTime(time.Date(2025, time.July, 31, 23, 59, 0, 0, time.UTC)))

	// Local times normalize to UTC before keying.
	loc := time.FixedZone("UTC+10", 10*60*60)
	assert.Equal(t, domain.CycleKey("2025-06"), domain.CycleKeyForTime(time.Date(2025, time.July, 1, 8, 0, 0, 0, loc)))
}
