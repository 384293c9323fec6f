package shared

import "time"

// types shared between the http api and the background jobs

// AuthClaims is what the auth middleware extracts from a verified access token.
type AuthClaims struct {
	MemberID int64  `json:"member_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Period is a ranking window.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// Periods lists every ranking window in display order.
var Periods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly}

// ParsePeriod validates a period path segment.
func ParsePeriod(s string) (Period, bool) {
	switch p := Period(s); p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return p, true
	}
	return "", false
}

// Column is the precomputed webtoons counter backing the period.
func (p Period) Column() string {
	return string(p) + "_views"
}

// Days is how many calendar days, today included, the period sums over.
func (p Period) Days() int {
	switch p {
	case PeriodWeekly:
		return 7
	case PeriodMonthly:
		return 30
	case PeriodYearly:
		return 365
	default:
		return 1
	}
}

// WindowStart returns the first stat date included in the period ending on day.
func (p Period) WindowStart(day time.Time) time.Time {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return d.AddDate(0, 0, -(p.Days() - 1))
}
