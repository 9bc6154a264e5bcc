package enrich

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navneetshukla17/primetrade-ai-analysis/internal/domain"
	"github.com/navneetshukla17/primetrade-ai-analysis/internal/util"
)

func istLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func defaultThresholds() []decimal.Decimal {
	return []decimal.Decimal{
		decimal.NewFromInt(100),
		decimal.NewFromInt(1000),
		decimal.NewFromInt(10000),
		decimal.NewFromInt(100000),
	}
}

func newTrade(price, size, pnl string, ts time.Time) domain.Trade {
	return domain.Trade{
		Account:        "0xabc",
		Symbol:         "BTC",
		ExecutionPrice: decimal.RequireFromString(price),
		Size:           decimal.RequireFromString(size),
		Side:           domain.SideBuy,
		Timestamp:      ts,
		ClosedPnL:      decimal.RequireFromString(pnl),
	}
}

func TestDeriveTradingDayMatchesTimestamp(t *testing.T) {
	loc := istLocation(t)
	d := NewDeriver(loc, defaultThresholds())

	// 00:20 IST on Dec 3 is still Dec 2 in UTC; the trading day must
	// follow the session timezone, not the host's
	ts := time.Date(2024, 12, 3, 0, 20, 0, 0, loc)
	enriched := d.Derive(newTrade("100", "1", "5", ts))

	assert.Equal(t, util.TruncateToDay(enriched.Timestamp, loc), enriched.TradingDay)
	assert.Equal(t, 3, enriched.TradingDay.Day())
	assert.Equal(t, 0, enriched.Hour)
	assert.Equal(t, time.Tuesday, enriched.Weekday)
	assert.False(t, enriched.IsWeekend)
}

func TestDeriveWeekend(t *testing.T) {
	loc := istLocation(t)
	d := NewDeriver(loc, defaultThresholds())

	sat := d.Derive(newTrade("100", "1", "0", time.Date(2024, 12, 7, 12, 0, 0, 0, loc)))
	assert.True(t, sat.IsWeekend)
	assert.Equal(t, time.Saturday, sat.Weekday)

	mon := d.Derive(newTrade("100", "1", "0", time.Date(2024, 12, 9, 12, 0, 0, 0, loc)))
	assert.False(t, mon.IsWeekend)
}

func TestDeriveSizeBucketPartition(t *testing.T) {
	loc := istLocation(t)
	d := NewDeriver(loc, defaultThresholds())
	ts := time.Date(2024, 12, 3, 12, 0, 0, 0, loc)

	tests := []struct {
		price, size string
		want        domain.SizeBucket
	}{
		{"1", "0", domain.BucketMicro},
		{"1", "99.99", domain.BucketMicro},
		{"1", "100", domain.BucketSmall}, // exact threshold goes up
		{"1", "999.99", domain.BucketSmall},
		{"1", "1000", domain.BucketMedium},
		{"100", "99.99", domain.BucketMedium},
		{"1", "10000", domain.BucketLarge},
		{"1", "100000", domain.BucketXLarge},
		{"95000", "10", domain.BucketXLarge},
		// bucketing is on notional, so sign is irrelevant
		{"1", "-100", domain.BucketSmall},
	}
	for _, tc := range tests {
		enriched := d.Derive(newTrade(tc.price, tc.size, "0", ts))
		assert.Equal(t, tc.want, enriched.SizeBucket, "price %s size %s", tc.price, tc.size)
	}
}

func TestDeriveIsWin(t *testing.T) {
	loc := istLocation(t)
	d := NewDeriver(loc, defaultThresholds())
	ts := time.Date(2024, 12, 3, 12, 0, 0, 0, loc)

	assert.True(t, d.Derive(newTrade("100", "1", "0.01", ts)).IsWin)
	// zero PnL counts as a loss by convention
	assert.False(t, d.Derive(newTrade("100", "1", "0", ts)).IsWin)
	assert.False(t, d.Derive(newTrade("100", "1", "-5", ts)).IsWin)
}

func TestDeriveROIAndNetPnL(t *testing.T) {
	loc := istLocation(t)
	d := NewDeriver(loc, defaultThresholds())
	ts := time.Date(2024, 12, 3, 12, 0, 0, 0, loc)

	trade := newTrade("100", "2", "10", ts)
	trade.Fee = decimal.RequireFromString("1.5")
	enriched := d.Derive(trade)

	// 10 / 200 * 100
	assert.InDelta(t, 5.0, enriched.ROI, 1e-9)
	assert.True(t, enriched.NetPnL.Equal(decimal.RequireFromString("8.5")))

	// zero notional must not produce an infinite ROI
	free := d.Derive(newTrade("0", "0", "10", ts))
	assert.Equal(t, 0.0, free.ROI)
}

func TestDeriveDirection(t *testing.T) {
	loc := istLocation(t)
	d := NewDeriver(loc, defaultThresholds())
	ts := time.Date(2024, 12, 3, 12, 0, 0, 0, loc)

	trade := newTrade("100", "1", "0", ts)
	trade.RawDirection = "Close Short"
	assert.Equal(t, domain.DirectionShort, d.Derive(trade).Direction)

	// without a direction column, the side decides
	trade.RawDirection = ""
	trade.Side = domain.SideSell
	assert.Equal(t, domain.DirectionShort, d.Derive(trade).Direction)
	trade.Side = domain.SideBuy
	assert.Equal(t, domain.DirectionLong, d.Derive(trade).Direction)
}

func TestDeriveIsOrderIndependent(t *testing.T) {
	loc := istLocation(t)
	d := NewDeriver(loc, defaultThresholds())

	a := newTrade("100", "5", "3", time.Date(2024, 12, 3, 9, 0, 0, 0, loc))
	b := newTrade("200", "1", "-2", time.Date(2024, 12, 4, 18, 0, 0, 0, loc))

	first := d.Derive(a)
	_ = d.Derive(b)
	again := d.Derive(a)
	assert.Equal(t, first, again)
}
