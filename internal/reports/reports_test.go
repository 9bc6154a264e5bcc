package reports

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navneetshukla17/primetrade-ai-analysis/internal/domain"
	"github.com/navneetshukla17/primetrade-ai-analysis/internal/util"
)

func row(account, symbol string, pnl float64, sentiment domain.SentimentCategory, direction domain.Direction) domain.EnrichedTrade {
	day := util.NewDate(2024, 12, 2)
	return domain.EnrichedTrade{
		Trade: domain.Trade{
			Account:        account,
			Symbol:         symbol,
			ExecutionPrice: decimal.NewFromInt(100),
			Size:           decimal.NewFromInt(1),
			Side:           domain.SideBuy,
			Timestamp:      day.Add(14 * time.Hour),
			ClosedPnL:      decimal.NewFromFloat(pnl),
		},
		TradingDay: day,
		Hour:       14,
		Weekday:    time.Monday,
		SizeBucket: domain.BucketSmall,
		Direction:  direction,
		IsWin:      pnl > 0,
		Sentiment:  sentiment,
	}
}

func sampleRows() []domain.EnrichedTrade {
	return []domain.EnrichedTrade{
		row("a", "BTC", 10, domain.SentimentFear, domain.DirectionLong),
		row("a", "BTC", -5, domain.SentimentGreed, domain.DirectionShort),
		row("b", "ETH", 20, domain.SentimentFear, domain.DirectionLong),
	}
}

func TestSentimentPnLIsZeroFilled(t *testing.T) {
	table, err := Build("sentiment_pnl", sampleRows(), Options{})
	require.NoError(t, err)

	// all five categories appear even though only two have trades
	require.Len(t, table.Rows, 5)
	assert.Equal(t, "Extreme Fear", table.Rows[0][0])
	assert.Equal(t, "Extreme Greed", table.Rows[4][0])

	for _, r := range table.Rows {
		if r[0] == "Fear" {
			assert.Equal(t, "2", r[1])
			assert.Equal(t, "15.00", r[2])
			assert.Equal(t, "100.0%", r[4])
		}
		if r[0] == "Neutral" {
			assert.Equal(t, "0", r[1])
			// empty groups render blank, not zero
			assert.Equal(t, "", r[2])
			assert.Equal(t, "", r[4])
		}
	}
}

func TestUnknownReportName(t *testing.T) {
	_, err := Build("galaxy_brain", nil, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report")
}

func TestCoinSentimentRespectsMinTrades(t *testing.T) {
	rows := sampleRows()
	table, err := Build("coin_sentiment", rows, Options{MinCoinTrades: 2})
	require.NoError(t, err)

	for _, r := range table.Rows {
		// ETH has a single trade, below the threshold
		assert.NotEqual(t, "ETH", r[0])
	}
	require.NotEmpty(t, table.Rows)
	assert.Equal(t, "BTC", table.Rows[0][0])
}

func TestTraderSegmentsTable(t *testing.T) {
	table, err := Build("trader_segments", sampleRows(), Options{SegmentFraction: 0.5})
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "top", table.Rows[0][0])
	assert.Equal(t, "b", table.Rows[0][1])
	assert.Equal(t, "bottom", table.Rows[1][0])
	assert.Equal(t, "a", table.Rows[1][1])
}

func TestBuildAllIsStable(t *testing.T) {
	rows := sampleRows()
	first, err := BuildAll(rows, Options{})
	require.NoError(t, err)
	second, err := BuildAll(rows, Options{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, first, len(Names()))
}

func TestRenderCSV(t *testing.T) {
	table, err := Build("sentiment_pnl", sampleRows(), Options{})
	require.NoError(t, err)

	body, err := RenderCSV(table)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "sentiment,trades,avg_pnl,total_pnl,win_rate,avg_roi,total_volume", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Extreme Fear,0,"))
}

func TestRenderMarkdown(t *testing.T) {
	table, err := Build("weekday", sampleRows(), Options{})
	require.NoError(t, err)

	body := RenderMarkdown(table)
	assert.Contains(t, body, "## Performance by Day of Week")
	assert.Contains(t, body, "| weekday |")
	assert.Contains(t, body, "| Monday |")
}
