package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	analyticsstore "onboarding-checklist-backend/lib/analytics/store"
	"onboarding-checklist-backend/models"
	analyticsapimodels "onboarding-checklist-backend/models/api/analytics"
	dbmodels "onboarding-checklist-backend/models/db"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCompletionRate(t *testing.T) {
	t.Run(`zero submissions yields 0, not a division error`, func(t *testing.T) {
		require.Equal(t, float64(0), completionRate(0, 0))
	})

	t.Run(`rate is complete over total`, func(t *testing.T) {
		require.Equal(t, float64(50), completionRate(2, 4))
		require.Equal(t, float64(100), completionRate(3, 3))
	})
}

func TestAvgCompletionDays(t *testing.T) {
	t.Run(`no complete records yields 0`, func(t *testing.T) {
		require.Equal(t, float64(0), avgCompletionDays(nil))
	})

	t.Run(`averages calendar-day spans`, func(t *testing.T) {
		spans := []analyticsstore.CompletionSpan{
			{StartDate: day(2024, 3, 1), SubmissionDate: day(2024, 3, 3)},
			{StartDate: day(2024, 3, 1), SubmissionDate: day(2024, 3, 5)},
		}
		require.Equal(t, float64(3), avgCompletionDays(spans))
	})
}

func TestQuestionCounts(t *testing.T) {
	rows := []dbmodels.ChecklistSubmission{
		{Q1: models.AnswerYes, Q2: models.AnswerNo, Q10: models.AnswerYes},
		{Q1: models.AnswerYes, Q2: models.AnswerYes, Q10: models.AnswerOptOutPersonalDevice},
	}
	analysis := questionCounts(rows)

	// q6 excluded: 11 entries
	require.Equal(t, 11, len(analysis))

	require.Equal(t, "Question 1", analysis[0].Question)
	require.Equal(t, 2, analysis[0].YesCount)
	require.Equal(t, 0, analysis[0].NoCount)

	require.Equal(t, "Question 2", analysis[1].Question)
	require.Equal(t, 1, analysis[1].YesCount)
	require.Equal(t, 1, analysis[1].NoCount)

	// q10 carries the opt-out bucket; index 8 after skipping q6
	require.Equal(t, "Question 10", analysis[8].Question)
	require.Equal(t, 1, analysis[8].YesCount)
	require.Equal(t, 1, analysis[8].OtherCount)
}

func TestBucketByDay(t *testing.T) {
	t.Run(`empty input`, func(t *testing.T) {
		require.Equal(t, 0, len(bucketByDay(nil)))
	})

	t.Run(`groups by date portion, ascending`, func(t *testing.T) {
		dates := []time.Time{
			day(2024, 3, 2),
			time.Date(2024, 3, 2, 15, 30, 0, 0, time.UTC),
			day(2024, 3, 1),
		}
		points := bucketByDay(dates)
		require.Equal(t, []analyticsapimodels.TrendPoint{
			{Date: "2024-03-01", Count: 1},
			{Date: "2024-03-02", Count: 2},
		}, points)
	})
}

type stubStore struct {
	total    int64
	complete int64
	pending  int64
	spans    []analyticsstore.CompletionSpan
	err      error
}

func (s stubStore) TotalCount() (int64, error) { return s.total, s.err }
func (s stubStore) CountByStatus(status models.SubmissionStatus) (int64, error) {
	if status == models.SubmissionStatusComplete {
		return s.complete, s.err
	}
	return s.pending, s.err
}
func (s stubStore) CompletionSpans() ([]analyticsstore.CompletionSpan, error) {
	return s.spans, s.err
}
func (s stubStore) DepartmentCounts() ([]analyticsapimodels.DepartmentBreakdown, error) {
	return []analyticsapimodels.DepartmentBreakdown{
		{Department: "IT", Count: 2},
		{Department: "HR", Count: 1},
	}, nil
}
func (s stubStore) AnswerRows() ([]dbmodels.ChecklistSubmission, error) { return nil, nil }
func (s stubStore) SubmissionDatesSince(since time.Time) ([]time.Time, error) {
	return nil, nil
}

func TestDashboardStats(t *testing.T) {
	t.Run(`empty store`, func(t *testing.T) {
		stats, err := impl{store: stubStore{}}.DashboardStats()
		require.Nil(t, err)
		require.Equal(t, analyticsapimodels.DashboardStats{}, stats)
	})

	t.Run(`aggregates all four sources`, func(t *testing.T) {
		store := stubStore{
			total:    4,
			complete: 2,
			pending:  1,
			spans: []analyticsstore.CompletionSpan{
				{StartDate: day(2024, 3, 1), SubmissionDate: day(2024, 3, 3)},
			},
		}
		stats, err := impl{store: store}.DashboardStats()
		require.Nil(t, err)
		require.Equal(t, int64(4), stats.TotalSubmissions)
		require.Equal(t, float64(50), stats.CompletionRate)
		require.Equal(t, float64(2), stats.AvgCompletionTime)
		require.Equal(t, int64(1), stats.PendingSubmissions)
	})
}

func TestDepartmentBreakdown(t *testing.T) {
	list, err := impl{store: stubStore{}}.DepartmentBreakdown()
	require.Nil(t, err)
	require.Equal(t, 2, len(list))
	var sum int64
	for _, entry := range list {
		sum += entry.Count
	}
	require.Equal(t, int64(3), sum)
}
