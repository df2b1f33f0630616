package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	promptAmount   = "How much money do you want to budget?"
	promptDuration = "How many days should this budget last?"
	daysPerMonth   = 30
)

var (
	numberRe      = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)
	firstNumberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)
	hundred       = decimal.NewFromInt(100)

	dayUnitRe   = regexp.MustCompile(`(\d[\d,]*(?:\.\d+)?)\s*(?:days?|din|roju|rojulu)\b`)
	monthUnitRe = regexp.MustCompile(`(\d[\d,]*(?:\.\d+)?)\s*(?:months?|mahine|mahina|nela|nelalu)\b`)
	unitMonthRe = regexp.MustCompile(`\b(?:months?|mahine|mahina|nela|nelalu)\s+(\d{1,2})\b`)
	loneMonthRe = regexp.MustCompile(`\b(?:month|mahina|mahine|nela)\b`)
)

// Duration is an amount to spread over a number of days.
type Duration struct {
	Amount decimal.Decimal
	Days   int
}

// Command is what a single dialogue utterance carries.
type Command struct {
	Amount    decimal.Decimal
	HasAmount bool
	Type      string
	Language  string
}

func parseNumber(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

type number struct {
	start int
	value decimal.Decimal
}

// boundNumber returns the index into nums of the number captured by group 1
// of re, or -1.
func boundNumber(re *regexp.Regexp, lower string, nums []number) int {
	m := re.FindStringSubmatchIndex(lower)
	if m == nil {
		return -1
	}
	for i, n := range nums {
		if n.start == m[2] {
			return i
		}
	}
	return -1
}

// largestExcept returns the largest number other than nums[skip].
func largestExcept(nums []number, skip int) *decimal.Decimal {
	var best *decimal.Decimal
	for i := range nums {
		if i == skip {
			continue
		}
		if best == nil || nums[i].value.GreaterThan(*best) {
			v := nums[i].value
			best = &v
		}
	}
	return best
}

// ParseDuration extracts a budget amount and a duration in days.
//
// A unit binds to the number it follows ("30 days", "2 months") and a day
// unit wins over a month unit. The amount is then the largest other number.
// Without units a lone "month" means 30 days, and with two or more numbers
// the largest is the amount and the smallest the duration. A lone number
// with a day unit is an amount when 100 or above.
func ParseDuration(text string) (Duration, error) {
	lower := strings.ToLower(text)

	var nums []number
	for _, loc := range numberRe.FindAllStringIndex(lower, -1) {
		if d, ok := parseNumber(lower[loc[0]:loc[1]]); ok {
			nums = append(nums, number{start: loc[0], value: d})
		}
	}

	var amount, duration *decimal.Decimal
	monthDays := decimal.NewFromInt(daysPerMonth)
	if i := boundNumber(dayUnitRe, lower, nums); i >= 0 {
		if len(nums) == 1 && !nums[i].value.LessThan(hundred) {
			amount = &nums[i].value
		} else {
			duration = &nums[i].value
			amount = largestExcept(nums, i)
		}
	} else if i := monthBound(lower, nums); i >= 0 {
		days := nums[i].value.Mul(monthDays)
		duration = &days
		amount = largestExcept(nums, i)
	} else if loneMonthRe.MatchString(lower) {
		duration = &monthDays
		amount = largestExcept(nums, -1)
	} else if len(nums) == 1 {
		amount = &nums[0].value
	} else if len(nums) > 1 {
		hi, lo := nums[0].value, nums[0].value
		for _, n := range nums[1:] {
			hi = decimal.Max(hi, n.value)
			lo = decimal.Min(lo, n.value)
		}
		amount, duration = &hi, &lo
	}

	if amount == nil || !amount.IsPositive() {
		return Duration{}, clarify(SlotAmount, promptAmount)
	}
	if duration == nil || duration.IntPart() <= 0 {
		return Duration{}, clarify(SlotDuration, promptDuration)
	}
	return Duration{Amount: *amount, Days: int(duration.IntPart())}, nil
}

// monthBound finds a month count written before its unit, or after it as
// in "nelalu 2".
func monthBound(lower string, nums []number) int {
	if i := boundNumber(monthUnitRe, lower, nums); i >= 0 {
		return i
	}
	return boundNumber(unitMonthRe, lower, nums)
}

// ParseCommand reads the first number, the transaction type and a language
// hint from one utterance. Missing values are left empty.
func ParseCommand(text string) Command {
	cmd := Command{
		Type:     DetectType(text),
		Language: DetectLanguage(text),
	}
	if m := firstNumberRe.FindString(text); m != "" {
		if d, ok := parseNumber(m); ok && d.IsPositive() {
			cmd.Amount, cmd.HasAmount = d, true
		}
	}
	return cmd
}
