package domain

import (
	"math"
	"time"
)

const (
	StatusExcellent = "excellent"
	StatusSteady    = "steady"
)

type ProgressStats struct {
	Year           int     `json:"year"`
	TotalDays      int     `json:"total_days"`
	CompletedDays  int     `json:"completed_days"`
	RemainingDays  int     `json:"remaining_days"`
	Percentage     int     `json:"percentage"`
	CompletionRate float64 `json:"completion_rate"`
	MonthlyAverage int     `json:"monthly_average"`
	Status         string  `json:"status"`
	CurrentStreak  int     `json:"current_streak"`
	LongestStreak  int     `json:"longest_streak"`
	CurrentWeek    int     `json:"current_week"`
	TodayID        string  `json:"today_id"`
	TodayCompleted bool    `json:"today_completed"`
}

// ComputeStats summarizes progress against a plan as of today. IDs that are
// not part of the plan are ignored.
func ComputeStats(plan Plan, progress UserProgress, today time.Time) ProgressStats {
	todayDay := plan.Today(today)

	completed := 0
	for _, id := range progress.IDs() {
		if _, ok := plan.Days[id]; ok {
			completed++
		}
	}

	total := plan.Len()
	stats := ProgressStats{
		Year:           plan.Year,
		TotalDays:      total,
		CompletedDays:  completed,
		RemainingDays:  total - completed,
		MonthlyAverage: int(math.Round(float64(completed) / 12)),
		Status:         StatusSteady,
		CurrentWeek:    todayDay.Week(),
		TodayID:        todayDay.ID,
		TodayCompleted: progress.Has(todayDay.ID),
	}

	if total > 0 {
		stats.CompletionRate = float64(completed) / float64(total) * 100
		stats.Percentage = int(math.Round(stats.CompletionRate))
	}
	if stats.Percentage > 50 {
		stats.Status = StatusExcellent
	}

	stats.CurrentStreak, stats.LongestStreak = readingStreaks(plan, progress, todayDay)
	return stats
}

// readingStreaks counts runs of consecutive completed plan days. The current
// streak ends today, or yesterday when today is still open.
func readingStreaks(plan Plan, progress UserProgress, today ReadingDay) (int, int) {
	ordered := plan.Ordered()

	longest, run := 0, 0
	for _, d := range ordered {
		if progress.Has(d.ID) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}

	idx := today.DayOfYear - 1
	if idx < 0 || idx >= len(ordered) {
		return 0, longest
	}
	if !progress.Has(ordered[idx].ID) {
		idx--
	}

	current := 0
	for i := idx; i >= 0 && progress.Has(ordered[i].ID); i-- {
		current++
	}
	return current, longest
}
