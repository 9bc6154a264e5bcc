package domain

import "time"

// Filter narrows the enriched dataset before grouping. Fields are ANDed;
// a nil/empty field means "no constraint on that axis". Filtering and
// grouping are independent stages: applying a filter yields a read-only
// subset, never a rewrite.
type Filter struct {
	// Start and End bound TradingDay, inclusive on both ends.
	Start *time.Time
	End   *time.Time

	Sentiments []SentimentCategory
	Coins      []string
	Directions []Direction
	Sides      []Side
	Accounts   []string
}

func (f Filter) Match(t EnrichedTrade) bool {
	if f.Start != nil && t.TradingDay.Before(*f.Start) {
		return false
	}
	if f.End != nil && t.TradingDay.After(*f.End) {
		return false
	}
	if len(f.Sentiments) > 0 && !containsSentiment(f.Sentiments, t.Sentiment) {
		return false
	}
	if len(f.Coins) > 0 && !containsString(f.Coins, t.Symbol) {
		return false
	}
	if len(f.Directions) > 0 && !containsDirection(f.Directions, t.Direction) {
		return false
	}
	if len(f.Sides) > 0 && !containsSide(f.Sides, t.Side) {
		return false
	}
	if len(f.Accounts) > 0 && !containsString(f.Accounts, t.Account) {
		return false
	}
	return true
}

// Apply returns the trades matching the filter, in input order.
func (f Filter) Apply(trades []EnrichedTrade) []EnrichedTrade {
	out := make([]EnrichedTrade, 0, len(trades))
	for _, t := range trades {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

func containsString(hs []string, n string) bool {
	for _, h := range hs {
		if h == n {
			return true
		}
	}
	return false
}

func containsSentiment(hs []SentimentCategory, n SentimentCategory) bool {
	for _, h := range hs {
		// a coarse filter value matches its extreme variants, so asking
		// for "Fear" also selects Extreme Fear days
		if h == n || h == n.Coarse() {
			return true
		}
	}
	return false
}

func containsDirection(hs []Direction, n Direction) bool {
	for _, h := range hs {
		if h == n {
			return true
		}
	}
	return false
}

func containsSide(hs []Side, n Side) bool {
	for _, h := range hs {
		if h == n {
			return true
		}
	}
	return false
}
