package domain

import (
	"fmt"
	"time"

	"github.com/centsible/centsible_backend/internal/apperrors"
)

// CycleKey identifies one processing period for one user, formatted as a
// calendar month ("2024-05"). Uniqueness constraints on runs and snapshots
// are scoped by (user, cycle key).
type CycleKey string

const cycleKeyLayout = "2006-01"

// ParseCycleKey validates the raw value and returns it as a CycleKey.
func ParseCycleKey(raw string) (CycleKey, error) {
	t, err := time.Parse(cycleKeyLayout, raw)
	if err != nil {
		return "", fmt.Errorf("%w: malformed cycle key %q, expected YYYY-MM", apperrors.ErrValidation, raw)
	}
	if t.Year() < 1970 || t.Year() > 9999 {
		return "", fmt.Errorf("%w: cycle key year out of range in %q", apperrors.ErrValidation, raw)
	}
	return CycleKey(raw), nil
}

// CycleKeyForTime returns the cycle key of the month containing t (UTC).
func CycleKeyForTime(t time.Time) CycleKey {
	return CycleKey(t.UTC().Format(cycleKeyLayout))
}

func (k CycleKey) String() string {
	return string(k)
}

// Cutoff returns the first instant (UTC) of the keyed month. Accounts whose
// last cycle predates the cutoff are candidates for this cycle.
func (k CycleKey) Cutoff() time.Time {
	t, err := time.Parse(cycleKeyLayout, string(k))
	if err != nil {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Next returns the key of the following calendar month.
func (k CycleKey) Next() CycleKey {
	return CycleKeyForTime(k.Cutoff().AddDate(0, 1, 0))
}
