package savings

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the color shown for a day's savings performance.
type Status string

const (
	StatusDarkGreen  Status = "dark_green"
	StatusLightGreen Status = "light_green"
	StatusRed        Status = "red"
	StatusGray       Status = "gray"
)

// Tooltips shown next to each status.
const (
	TooltipNoGoal     = "Set a goal to track daily performance."
	TooltipDarkGreen  = "You saved more than double your daily goal today."
	TooltipLightGreen = "You met your daily savings goal today."
	TooltipRed        = "You did not meet your daily savings goal today."
)

// DailyStatus is the persisted status of one user on one UTC day.
type DailyStatus struct {
	UserID      uuid.UUID
	Date        time.Time
	StatusColor Status
	UpdatedAt   time.Time
}

// Evaluation is the outcome of classifying today's net savings.
type Evaluation struct {
	Status       Status
	GoalPerDay   decimal.Decimal
	IncomePerDay decimal.Decimal
	Tooltip      string
}

// Classify maps a day's net income against the daily goal.
func Classify(incomePerDay, goalPerDay decimal.Decimal) Status {
	switch {
	case !incomePerDay.IsPositive() || incomePerDay.LessThan(goalPerDay):
		return StatusRed
	case incomePerDay.GreaterThanOrEqual(goalPerDay.Mul(decimal.NewFromInt(2))):
		return StatusDarkGreen
	default:
		return StatusLightGreen
	}
}

// Tooltip returns the message for a status.
func Tooltip(s Status) string {
	switch s {
	case StatusDarkGreen:
		return TooltipDarkGreen
	case StatusLightGreen:
		return TooltipLightGreen
	case StatusRed:
		return TooltipRed
	default:
		return TooltipNoGoal
	}
}

// DayStart returns UTC midnight of the calendar day containing t.
func DayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayBounds returns the inclusive window [00:00:00.000, 23:59:59.999] of t's UTC day.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := DayStart(t)
	return start, start.Add(24*time.Hour - time.Millisecond)
}

// YearBounds returns the first and last UTC day of a calendar year.
func YearBounds(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// MonthBounds returns the inclusive window of a UTC calendar month.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0).Add(-time.Millisecond)
}
