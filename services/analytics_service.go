package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bhavesharora02/Euron-Water-Supply/models"
	"github.com/bhavesharora02/Euron-Water-Supply/utils"

	"gorm.io/gorm"
)

type Granularity string

const (
	GranularityDay  Granularity = "day"
	GranularityWeek Granularity = "week"
)

// PeriodSummary is one bucket of the aggregated intake series. Derived on
// demand, never persisted.
type PeriodSummary struct {
	Period  string  `json:"period"` // "2026-08-30" or "2026-W35"
	TotalML float64 `json:"total_ml"`
	Count   int     `json:"count"`
}

type TodayProgress struct {
	Date        string  `json:"date"`
	ConsumedML  float64 `json:"consumed_ml"`
	GoalML      float64 `json:"goal_ml"`
	RemainingML float64 `json:"remaining_ml"`
	Percent     float64 `json:"percent"` // capped at 1
	Count       int     `json:"count"`
	Category    string  `json:"category"`
}

type RangeStats struct {
	TotalML       float64 `json:"total_ml"`
	Count         int     `json:"count"`
	AvgPerEntryML float64 `json:"avg_per_entry_ml"`
}

type TrendPoint struct {
	Label string  `json:"label"`
	AvgML float64 `json:"avg_ml"`
}

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

func periodKey(t time.Time, g Granularity) string {
	tt := t.In(time.Local)
	if g == GranularityWeek {
		y, w := tt.ISOWeek()
		return fmt.Sprintf("%d-W%02d", y, w)
	}
	return tt.Format("2006-01-02")
}

// SummarizeRecords buckets records by calendar day or ISO week. Deterministic
// for a given input; empty input yields an empty (non-nil) slice.
func SummarizeRecords(records []models.IntakeRecord, g Granularity) []PeriodSummary {
	totals := map[string]*PeriodSummary{}
	for _, r := range records {
		key := periodKey(r.Timestamp, g)
		ps, ok := totals[key]
		if !ok {
			ps = &PeriodSummary{Period: key}
			totals[key] = ps
		}
		ps.TotalML += r.VolumeML
		ps.Count++
	}

	out := make([]PeriodSummary, 0, len(totals))
	for _, ps := range totals {
		out = append(out, *ps)
	}
	// both key formats sort chronologically as strings
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

// Summarize fetches the user's records in [from, to) and buckets them.
func (s *AnalyticsService) Summarize(ctx context.Context, userID uint, from, to time.Time, g Granularity) ([]PeriodSummary, error) {
	var recs []models.IntakeRecord
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, from, to).
		Order("timestamp ASC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return SummarizeRecords(recs, g), nil
}

// LastNDays returns daily summaries for the n calendar days ending today.
func (s *AnalyticsService) LastNDays(ctx context.Context, userID uint, n int) ([]PeriodSummary, error) {
	end := dayStartLocal(time.Now()).Add(24 * time.Hour)
	start := end.AddDate(0, 0, -n)
	return s.Summarize(ctx, userID, start, end, GranularityDay)
}

func (s *AnalyticsService) Today(ctx context.Context, userID uint) (*TodayProgress, error) {
	start := dayStartLocal(time.Now())
	end := start.Add(24 * time.Hour)

	var row struct {
		Total float64
		N     int
	}
	if err := s.db.WithContext(ctx).
		Model(&models.IntakeRecord{}).
		Select("COALESCE(SUM(volume_ml),0) AS total, COUNT(*) AS n").
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, start, end).
		Scan(&row).Error; err != nil {
		return nil, err
	}

	goal := GoalTargetML(userID)
	return buildTodayProgress(start, row.Total, row.N, goal), nil
}

func buildTodayProgress(day time.Time, consumed float64, count int, goal float64) *TodayProgress {
	tp := &TodayProgress{
		Date:       day.Format("2006-01-02"),
		ConsumedML: consumed,
		GoalML:     goal,
		Count:      count,
	}
	if goal > 0 {
		tp.Percent = consumed / goal
		if tp.Percent > 1 {
			tp.Percent = 1
		}
		if rem := goal - consumed; rem > 0 {
			tp.RemainingML = rem
		}
	}
	if goal > 0 {
		tp.Category = utils.HydrationCategory(consumed / goal)
	}
	return tp
}

// Stats computes range totals for the history view.
func (s *AnalyticsService) Stats(ctx context.Context, userID uint, from, to time.Time) (*RangeStats, error) {
	var row struct {
		Total float64
		N     int
	}
	if err := s.db.WithContext(ctx).
		Model(&models.IntakeRecord{}).
		Select("COALESCE(SUM(volume_ml),0) AS total, COUNT(*) AS n").
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, from, to).
		Scan(&row).Error; err != nil {
		return nil, err
	}

	st := &RangeStats{TotalML: row.Total, Count: row.N}
	if row.N > 0 {
		st.AvgPerEntryML = row.Total / float64(row.N)
	}
	return st, nil
}

var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// DayOfWeekAverages reports the mean entry size per weekday, Monday first.
// Days without entries are included with a zero average.
func (s *AnalyticsService) DayOfWeekAverages(ctx context.Context, userID uint) ([]TrendPoint, error) {
	recs, err := s.allRecords(ctx, userID)
	if err != nil {
		return nil, err
	}

	sums := map[time.Weekday]float64{}
	counts := map[time.Weekday]int{}
	for _, r := range recs {
		wd := r.Timestamp.In(time.Local).Weekday()
		sums[wd] += r.VolumeML
		counts[wd]++
	}

	out := make([]TrendPoint, 0, len(weekdayOrder))
	for _, wd := range weekdayOrder {
		p := TrendPoint{Label: wd.String()}
		if n := counts[wd]; n > 0 {
			p.AvgML = sums[wd] / float64(n)
		}
		out = append(out, p)
	}
	return out, nil
}

// HourlyAverages reports the mean entry size per hour of day, 0..23.
func (s *AnalyticsService) HourlyAverages(ctx context.Context, userID uint) ([]TrendPoint, error) {
	recs, err := s.allRecords(ctx, userID)
	if err != nil {
		return nil, err
	}

	var sums [24]float64
	var counts [24]int
	for _, r := range recs {
		h := r.Timestamp.In(time.Local).Hour()
		sums[h] += r.VolumeML
		counts[h]++
	}

	out := make([]TrendPoint, 0, 24)
	for h := 0; h < 24; h++ {
		p := TrendPoint{Label: fmt.Sprintf("%02d:00", h)}
		if counts[h] > 0 {
			p.AvgML = sums[h] / float64(counts[h])
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *AnalyticsService) allRecords(ctx context.Context, userID uint) ([]models.IntakeRecord, error) {
	var recs []models.IntakeRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp ASC").
		Find(&recs).Error
	return recs, err
}
