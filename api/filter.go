package api

import (
	"fmt"
	"time"

	"github.com/navneetshukla17/primetrade-ai-analysis/internal/domain"
)

// FilterRequest is the dashboard's filter specification, shared by every
// POST endpoint. All fields are optional; an empty filter selects the
// whole dataset.
type FilterRequest struct {
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Sentiments []string `json:"sentiments"`
	Coins      []string `json:"coins"`
	Directions []string `json:"directions"`
	Sides      []string `json:"sides"`
	Accounts   []string `json:"accounts"`
}

const dateLayout = "2006-01-02"

// toFilter validates the request and builds the domain filter. A bad
// enum value or date is the caller's error and must be rejected before
// any computation runs.
func (r FilterRequest) toFilter(loc *time.Location) (domain.Filter, error) {
	f := domain.Filter{
		Coins:    r.Coins,
		Accounts: r.Accounts,
	}

	if r.StartDate != "" {
		t, err := time.ParseInLocation(dateLayout, r.StartDate, loc)
		if err != nil {
			return f, fmt.Errorf("invalid startDate %q, want YYYY-MM-DD", r.StartDate)
		}
		f.Start = &t
	}
	if r.EndDate != "" {
		t, err := time.ParseInLocation(dateLayout, r.EndDate, loc)
		if err != nil {
			return f, fmt.Errorf("invalid endDate %q, want YYYY-MM-DD", r.EndDate)
		}
		f.End = &t
	}
	if f.Start != nil && f.End != nil && f.End.Before(*f.Start) {
		return f, fmt.Errorf("endDate cannot be before startDate")
	}

	for _, s := range r.Sentiments {
		if s == string(domain.SentimentUnknown) {
			f.Sentiments = append(f.Sentiments, domain.SentimentUnknown)
			continue
		}
		cat, err := domain.ParseSentimentCategory(s)
		if err != nil {
			return f, err
		}
		f.Sentiments = append(f.Sentiments, cat)
	}

	for _, d := range r.Directions {
		switch domain.Direction(d) {
		case domain.DirectionLong, domain.DirectionShort, domain.DirectionOther:
			f.Directions = append(f.Directions, domain.Direction(d))
		default:
			return f, fmt.Errorf("invalid direction %q, want Long/Short/Other", d)
		}
	}

	for _, s := range r.Sides {
		side, err := domain.ParseSide(s)
		if err != nil {
			return f, err
		}
		f.Sides = append(f.Sides, side)
	}

	return f, nil
}
