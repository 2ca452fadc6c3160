package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cadence describes how often a recurring financial event repeats.
type Cadence string

const (
	CadenceWeekly    Cadence = "WEEKLY"
	CadenceBiweekly  Cadence = "BIWEEKLY"
	CadenceMonthly   Cadence = "MONTHLY"
	CadenceQuarterly Cadence = "QUARTERLY"
	CadenceYearly    Cadence = "YEARLY"
	CadenceCustom    Cadence = "CUSTOM"
	CadenceOneTime   Cadence = "ONE_TIME"
)

// IntervalUnit is the unit of a custom cadence interval.
type IntervalUnit string

const (
	UnitDay   IntervalUnit = "DAY"
	UnitWeek  IntervalUnit = "WEEK"
	UnitMonth IntervalUnit = "MONTH"
	UnitYear  IntervalUnit = "YEAR"
)

// Schedule pairs a cadence with the explicit interval required by CUSTOM.
// CustomEvery and CustomUnit are ignored for the fixed cadences.
type Schedule struct {
	Cadence     Cadence      `json:"cadence"`
	CustomEvery int          `json:"customEvery,omitempty"`
	CustomUnit  IntervalUnit `json:"customUnit,omitempty"`
}

// IsValid reports whether the cadence is one of the closed set of values.
func (c Cadence) IsValid() bool {
	switch c {
	case CadenceWeekly, CadenceBiweekly, CadenceMonthly, CadenceQuarterly,
		CadenceYearly, CadenceCustom, CadenceOneTime:
		return true
	}
	return false
}

var (
	weeksPerMonth = decimal.RequireFromString("4.33")
	twelve        = decimal.NewFromInt(12)
	three         = decimal.NewFromInt(3)
	two           = decimal.NewFromInt(2)
)

// MonthlyFactor returns the multiplier that normalizes a per-occurrence
// amount to a monthly figure. ONE_TIME normalizes to zero: it contributes
// nothing to a recurring monthly view.
func (s Schedule) MonthlyFactor() decimal.Decimal {
	switch s.Cadence {
	case CadenceWeekly:
		return weeksPerMonth
	case CadenceBiweekly:
		return weeksPerMonth.Div(two)
	case CadenceMonthly:
		return decimal.NewFromInt(1)
	case CadenceQuarterly:
		return decimal.NewFromInt(1).Div(three)
	case CadenceYearly:
		return decimal.NewFromInt(1).Div(twelve)
	case CadenceCustom:
		if s.CustomEvery <= 0 {
			return decimal.Zero
		}
		every := decimal.NewFromInt(int64(s.CustomEvery))
		switch s.CustomUnit {
		case UnitDay:
			return decimal.NewFromInt(30).Div(every)
		case UnitWeek:
			return weeksPerMonth.Div(every)
		case UnitMonth:
			return decimal.NewFromInt(1).Div(every)
		case UnitYear:
			return decimal.NewFromInt(1).Div(twelve.Mul(every))
		}
		return decimal.Zero
	default: // ONE_TIME or unknown
		return decimal.Zero
	}
}

// interval returns the gap between two occurrences of the schedule.
// Month- and year-based cadences are handled by the caller via AddDate.
func (s Schedule) interval() (days int, months int) {
	switch s.Cadence {
	case CadenceWeekly:
		return 7, 0
	case CadenceBiweekly:
		return 14, 0
	case CadenceMonthly:
		return 0, 1
	case CadenceQuarterly:
		return 0, 3
	case CadenceYearly:
		return 0, 12
	case CadenceCustom:
		every := s.CustomEvery
		if every <= 0 {
			return 0, 0
		}
		switch s.CustomUnit {
		case UnitDay:
			return every, 0
		case UnitWeek:
			return every * 7, 0
		case UnitMonth:
			return 0, every
		case UnitYear:
			return 0, every * 12
		}
	}
	return 0, 0
}

// IsDue reports whether a schedule with the given last occurrence is due for
// another occurrence at or before the cutoff. A nil last occurrence means the
// schedule has never fired and is due immediately. ONE_TIME schedules fire
// exactly once.
func (s Schedule) IsDue(last *time.Time, cutoff time.Time) bool {
	if last == nil {
		return true
	}
	if s.Cadence == CadenceOneTime {
		return false
	}
	days, months := s.interval()
	if days == 0 && months == 0 {
		return false
	}
	next := last.AddDate(0, months, days)
	return !next.After(cutoff)
}
