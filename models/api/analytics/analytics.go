package analyticsapimodels

import "github.com/pkg/errors"

type DashboardStats struct {
	TotalSubmissions   int64   `json:"total_submissions"`
	CompletionRate     float64 `json:"completion_rate"`     //complete/total * 100, 0 when empty
	AvgCompletionTime  float64 `json:"avg_completion_time"` //calendar days, complete records only
	PendingSubmissions int64   `json:"pending_submissions"`
}

type DepartmentBreakdown struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type QuestionAnalysis struct {
	Question   string `json:"question"`
	YesCount   int    `json:"yes_count"`
	NoCount    int    `json:"no_count"`
	OtherCount int    `json:"other_count,omitempty"` //q10 opt-out answers
}

type TrendPoint struct {
	Date  string `json:"date"` //YYYY-MM-DD
	Count int    `json:"count"`
}

type TrendPeriod string

const (
	TrendPeriodWeek    TrendPeriod = "week"
	TrendPeriodMonth   TrendPeriod = "month"
	TrendPeriodQuarter TrendPeriod = "quarter"
	TrendPeriodYear    TrendPeriod = "year"
)

func (p TrendPeriod) Validate() error {
	switch p {
	case TrendPeriodWeek, TrendPeriodMonth, TrendPeriodQuarter, TrendPeriodYear:
		return nil
	}
	return errors.Errorf("unknown trend period: %s", p)
}

// LookbackDays is the calendar-day window of a trend period.
func (p TrendPeriod) LookbackDays() int {
	switch p {
	case TrendPeriodWeek:
		return 7
	case TrendPeriodMonth:
		return 30
	case TrendPeriodQuarter:
		return 90
	case TrendPeriodYear:
		return 365
	}
	return 0
}
