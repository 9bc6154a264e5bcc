package loader

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	"github.com/navneetshukla17/primetrade-ai-analysis/internal/domain"
)

// SentimentSeries is the date-keyed Fear & Greed index. Gaps are a valid
// condition; the join layer deals with them.
type SentimentSeries struct {
	byDay map[string]domain.SentimentRecord
	loc   *time.Location
}

const dayKeyLayout = "2006-01-02"

// NewSentimentSeries builds a series from already-parsed records, for
// callers that don't go through a CSV file. Duplicate dates are
// last-write-wins, matching the loader.
func NewSentimentSeries(records []domain.SentimentRecord, loc *time.Location) *SentimentSeries {
	s := &SentimentSeries{
		byDay: make(map[string]domain.SentimentRecord, len(records)),
		loc:   loc,
	}
	for _, rec := range records {
		s.byDay[rec.Date.In(loc).Format(dayKeyLayout)] = rec
	}
	return s
}

// Lookup returns the sentiment record for the calendar day of t.
func (s *SentimentSeries) Lookup(day time.Time) (domain.SentimentRecord, bool) {
	rec, ok := s.byDay[day.In(s.loc).Format(dayKeyLayout)]
	return rec, ok
}

func (s *SentimentSeries) Len() int {
	return len(s.byDay)
}

// Bounds returns the earliest and latest days present in the series.
func (s *SentimentSeries) Bounds() (time.Time, time.Time, bool) {
	if len(s.byDay) == 0 {
		return time.Time{}, time.Time{}, false
	}
	var min, max time.Time
	for _, rec := range s.byDay {
		if min.IsZero() || rec.Date.Before(min) {
			min = rec.Date
		}
		if max.IsZero() || rec.Date.After(max) {
			max = rec.Date
		}
	}
	return min, max, true
}

type sentimentRow struct {
	Timestamp      string `csv:"timestamp"`
	Value          string `csv:"value"`
	Classification string `csv:"classification"`
	Date           string `csv:"date"`
}

// LoadSentiment reads the Fear & Greed CSV into a per-day series. An
// unparseable date is a hard error, not a silent drop. A duplicate date
// is last-write-wins with a warning.
func LoadSentiment(path string, loc *time.Location, log *zap.SugaredLogger) (*SentimentSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open sentiment file: %w", err)
	}
	defer f.Close()

	rows := []sentimentRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("could not parse sentiment csv %s: %w", path, err)
	}

	series := &SentimentSeries{
		byDay: make(map[string]domain.SentimentRecord, len(rows)),
		loc:   loc,
	}

	for i, row := range rows {
		date, err := parseSentimentDate(row.Date, loc)
		if err != nil {
			return nil, fmt.Errorf("sentiment row %d: %w", i+1, err)
		}

		classification, err := resolveClassification(row)
		if err != nil {
			return nil, fmt.Errorf("sentiment row %d (%s): %w", i+1, row.Date, err)
		}

		value := 0
		if strings.TrimSpace(row.Value) != "" {
			value, err = strconv.Atoi(strings.TrimSpace(row.Value))
			if err != nil {
				return nil, fmt.Errorf("sentiment row %d (%s): invalid index value %q", i+1, row.Date, row.Value)
			}
		}

		key := date.Format(dayKeyLayout)
		if prev, ok := series.byDay[key]; ok {
			log.Warnw("duplicate sentiment date, keeping later row",
				"date", key, "previous", prev.Classification, "replacement", classification)
		}
		series.byDay[key] = domain.SentimentRecord{
			Date:           date,
			Value:          value,
			Classification: classification,
		}
	}

	return series, nil
}

// resolveClassification prefers the explicit label; when the feed carries
// only the numeric value, the category falls back to the value bands.
func resolveClassification(row sentimentRow) (domain.SentimentCategory, error) {
	if strings.TrimSpace(row.Classification) != "" {
		return domain.ParseSentimentCategory(row.Classification)
	}
	if strings.TrimSpace(row.Value) == "" {
		return "", fmt.Errorf("row has neither classification nor value")
	}
	value, err := strconv.Atoi(strings.TrimSpace(row.Value))
	if err != nil {
		return "", fmt.Errorf("invalid index value %q", row.Value)
	}
	return domain.SentimentFromValue(value), nil
}

var sentimentDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02-01-2006",
}

func parseSentimentDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range sentimentDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}
