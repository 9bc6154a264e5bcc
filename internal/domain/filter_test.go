package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func enriched(day time.Time, sentiment SentimentCategory, coin string, direction Direction) EnrichedTrade {
	return EnrichedTrade{
		Trade: Trade{
			Account: "0xabc",
			Symbol:  coin,
			Side:    SideBuy,
		},
		TradingDay: day,
		Sentiment:  sentiment,
		Direction:  direction,
	}
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestFilterMatch(t *testing.T) {
	trade := enriched(date(2024, 12, 3), SentimentExtremeFear, "BTC", DirectionLong)

	assert.True(t, Filter{}.Match(trade), "empty filter selects everything")

	start := date(2024, 12, 3)
	end := date(2024, 12, 3)
	assert.True(t, Filter{Start: &start, End: &end}.Match(trade), "bounds are inclusive")

	after := date(2024, 12, 4)
	assert.False(t, Filter{Start: &after}.Match(trade))
	before := date(2024, 12, 2)
	assert.False(t, Filter{End: &before}.Match(trade))

	assert.True(t, Filter{Coins: []string{"BTC", "ETH"}}.Match(trade))
	assert.False(t, Filter{Coins: []string{"SOL"}}.Match(trade))

	assert.True(t, Filter{Directions: []Direction{DirectionLong}}.Match(trade))
	assert.False(t, Filter{Directions: []Direction{DirectionShort}}.Match(trade))

	assert.True(t, Filter{Accounts: []string{"0xabc"}}.Match(trade))
	assert.False(t, Filter{Accounts: []string{"0xdef"}}.Match(trade))
}

func TestFilterCoarseSentimentMatchesExtremes(t *testing.T) {
	extremeFear := enriched(date(2024, 12, 3), SentimentExtremeFear, "BTC", DirectionLong)
	neutral := enriched(date(2024, 12, 3), SentimentNeutral, "BTC", DirectionLong)
	unknown := enriched(date(2024, 12, 3), SentimentUnknown, "BTC", DirectionLong)

	// the dashboard's two-option Fear/Greed filter must catch extreme days
	fearOnly := Filter{Sentiments: []SentimentCategory{SentimentFear}}
	assert.True(t, fearOnly.Match(extremeFear))
	assert.False(t, fearOnly.Match(neutral))
	assert.False(t, fearOnly.Match(unknown))

	exact := Filter{Sentiments: []SentimentCategory{SentimentExtremeFear}}
	assert.True(t, exact.Match(extremeFear))

	unknownFilter := Filter{Sentiments: []SentimentCategory{SentimentUnknown}}
	assert.True(t, unknownFilter.Match(unknown))
	assert.False(t, unknownFilter.Match(extremeFear))
}

func TestFilterApplyPreservesOrder(t *testing.T) {
	rows := []EnrichedTrade{
		enriched(date(2024, 12, 5), SentimentFear, "BTC", DirectionLong),
		enriched(date(2024, 12, 1), SentimentFear, "ETH", DirectionLong),
		enriched(date(2024, 12, 3), SentimentFear, "BTC", DirectionLong),
	}

	got := Filter{Coins: []string{"BTC"}}.Apply(rows)
	assert.Len(t, got, 2)
	assert.Equal(t, date(2024, 12, 5), got[0].TradingDay)
	assert.Equal(t, date(2024, 12, 3), got[1].TradingDay)
}
