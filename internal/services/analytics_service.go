package services

import (
	"fmt"
	"math"
	"time"

	"edutracker_go_backend/internal/models"
)

// TimeRange selects the analytics window and its bucketing granularity.
type TimeRange string

const (
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
	RangeYear  TimeRange = "year"
)

// ParseTimeRange validates a range string from the API.
func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case RangeWeek, RangeMonth, RangeYear:
		return TimeRange(s), nil
	}
	return "", fmt.Errorf("invalid time range: %q", s)
}

// Bucket is one bar of the study-time chart: a time label and the total hours
// studied in its span, rounded to one decimal place.
type Bucket struct {
	Label      string  `json:"label"`
	TotalHours float64 `json:"totalHours"`
}

// WindowStart returns the inclusive lower bound for records in the range.
func WindowStart(rng TimeRange, now time.Time) time.Time {
	switch rng {
	case RangeWeek:
		return now.AddDate(0, 0, -7)
	case RangeMonth:
		return now.AddDate(0, -1, 0)
	default:
		return now.AddDate(-1, 0, 0)
	}
}

// bucketLabel assigns a session to its chart label for the range.
func bucketLabel(rng TimeRange, t time.Time) string {
	switch rng {
	case RangeWeek:
		return t.Format("Mon")
	case RangeMonth:
		return fmt.Sprintf("%d/%d", t.Day(), int(t.Month()))
	default:
		return t.Format("Jan")
	}
}

// axisLabels precomputes the full chronological label axis for the window, so
// the chart keeps a stable, complete axis even when some buckets are empty and
// regardless of the order records arrive in.
func axisLabels(rng TimeRange, now time.Time) []string {
	var labels []string
	switch rng {
	case RangeWeek:
		for d := -6; d <= 0; d++ {
			labels = append(labels, now.AddDate(0, 0, d).Format("Mon"))
		}
	case RangeMonth:
		start := now.AddDate(0, -1, 0)
		for t := start; !t.After(now); t = t.AddDate(0, 0, 1) {
			labels = append(labels, bucketLabel(RangeMonth, t))
		}
	default:
		// Anchor on the first of the month so month arithmetic never
		// normalizes across a short month.
		anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		for m := -11; m <= 0; m++ {
			labels = append(labels, anchor.AddDate(0, m, 0).Format("Jan"))
		}
	}
	return labels
}

// AggregateStudyTime groups sessions into chart buckets for the range. It is
// pure: callers re-run it whenever the record set or active range changes.
// Sessions older than the window start are excluded; minutes accumulate per
// label and convert to hours at one decimal place.
func AggregateStudyTime(sessions []models.StudySession, rng TimeRange, now time.Time) []Bucket {
	start := WindowStart(rng, now)

	minutesByLabel := make(map[string]int)
	for _, session := range sessions {
		if session.OccurredAt.Before(start) {
			continue
		}
		minutesByLabel[bucketLabel(rng, session.OccurredAt)] += session.Minutes
	}

	labels := axisLabels(rng, now)
	buckets := make([]Bucket, 0, len(labels))
	for _, label := range labels {
		minutes := minutesByLabel[label]
		buckets = append(buckets, Bucket{
			Label:      label,
			TotalHours: math.Round(float64(minutes)/60*10) / 10,
		})
	}
	return buckets
}
