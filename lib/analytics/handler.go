package analytics

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"onboarding-checklist-backend/db"
	analyticsstore "onboarding-checklist-backend/lib/analytics/store"
	"onboarding-checklist-backend/lib/utils/helpers"
	initchecker "onboarding-checklist-backend/lib/utils/init-checker"
	"onboarding-checklist-backend/models"
	analyticsapimodels "onboarding-checklist-backend/models/api/analytics"
	dbmodels "onboarding-checklist-backend/models/db"
)

type Provider interface {
	DashboardStats() (analyticsapimodels.DashboardStats, error)
	DepartmentBreakdown() ([]analyticsapimodels.DepartmentBreakdown, error)
	QuestionAnalysis() ([]analyticsapimodels.QuestionAnalysis, error)
	Trend(period analyticsapimodels.TrendPeriod) ([]analyticsapimodels.TrendPoint, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: analyticsstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store analyticsstore.Provider
}

// DashboardStats runs its four source queries concurrently; they are
// independent, but any failure fails the whole batch.
func (i impl) DashboardStats() (analyticsapimodels.DashboardStats, error) {
	var (
		total, complete, pending int64
		spans                    []analyticsstore.CompletionSpan
	)
	g := errgroup.Group{}
	g.Go(func() (err error) {
		total, err = i.store.TotalCount()
		return err
	})
	g.Go(func() (err error) {
		complete, err = i.store.CountByStatus(models.SubmissionStatusComplete)
		return err
	})
	g.Go(func() (err error) {
		pending, err = i.store.CountByStatus(models.SubmissionStatusPending)
		return err
	})
	g.Go(func() (err error) {
		spans, err = i.store.CompletionSpans()
		return err
	})
	if err := g.Wait(); err != nil {
		return analyticsapimodels.DashboardStats{}, err
	}
	return analyticsapimodels.DashboardStats{
		TotalSubmissions:   total,
		CompletionRate:     completionRate(complete, total),
		AvgCompletionTime:  avgCompletionDays(spans),
		PendingSubmissions: pending,
	}, nil
}

func (i impl) DepartmentBreakdown() ([]analyticsapimodels.DepartmentBreakdown, error) {
	return i.store.DepartmentCounts()
}

func (i impl) QuestionAnalysis() ([]analyticsapimodels.QuestionAnalysis, error) {
	rows, err := i.store.AnswerRows()
	if err != nil {
		return nil, err
	}
	return questionCounts(rows), nil
}

func (i impl) Trend(period analyticsapimodels.TrendPeriod) ([]analyticsapimodels.TrendPoint, error) {
	since := time.Now().AddDate(0, 0, -period.LookbackDays())
	dates, err := i.store.SubmissionDatesSince(since)
	if err != nil {
		return nil, err
	}
	return bucketByDay(dates), nil
}

func completionRate(complete, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(complete) / float64(total) * 100
}

// avgCompletionDays averages the calendar-day distance between start and
// submission over complete records, 0 when there are none.
func avgCompletionDays(spans []analyticsstore.CompletionSpan) float64 {
	if len(spans) == 0 {
		return 0
	}
	totalDays := 0
	for _, span := range spans {
		totalDays += helpers.CalendarDaysBetween(span.StartDate, span.SubmissionDate)
	}
	return float64(totalDays) / float64(len(spans))
}

// questionCounts tallies the yes/no answers per single-choice question,
// plus the opt-out bucket on q10. The multi-select question is skipped.
func questionCounts(rows []dbmodels.ChecklistSubmission) []analyticsapimodels.QuestionAnalysis {
	analysis := make([]analyticsapimodels.QuestionAnalysis, 0, len(models.ScalarQuestionKeys))
	for i := 1; i <= 12; i++ {
		key := fmt.Sprintf("q%d", i)
		if key == "q6" {
			continue
		}
		entry := analyticsapimodels.QuestionAnalysis{
			Question: fmt.Sprintf("Question %d", i),
		}
		for _, row := range rows {
			switch row.ScalarAnswer(key) {
			case models.AnswerYes:
				entry.YesCount++
			case models.AnswerNo:
				entry.NoCount++
			case models.AnswerOptOutPersonalDevice:
				entry.OtherCount++
			}
		}
		analysis = append(analysis, entry)
	}
	return analysis
}

// bucketByDay groups timestamps by their date portion, ascending.
func bucketByDay(dates []time.Time) []analyticsapimodels.TrendPoint {
	buckets := map[string]int{}
	for _, d := range dates {
		buckets[helpers.FormatDate(d)]++
	}
	points := make([]analyticsapimodels.TrendPoint, 0, len(buckets))
	for date, count := range buckets {
		points = append(points, analyticsapimodels.TrendPoint{Date: date, Count: count})
	}
	sort.Slice(points, func(a, b int) bool {
		return points[a].Date < points[b].Date
	})
	return points
}
