package enrich

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/navneetshukla17/primetrade-ai-analysis/internal/domain"
	"github.com/navneetshukla17/primetrade-ai-analysis/internal/util"
)

var hundred = decimal.NewFromInt(100)

// Deriver computes the per-trade derived fields. It is purely a function
// of a single trade plus its fixed configuration, so it is order
// independent and safe to run per-row in any order.
type Deriver struct {
	loc        *time.Location
	thresholds []decimal.Decimal
}

func NewDeriver(loc *time.Location, thresholds []decimal.Decimal) Deriver {
	return Deriver{loc: loc, thresholds: thresholds}
}

// Derive computes every derived field except the sentiment join.
func (d Deriver) Derive(t domain.Trade) domain.EnrichedTrade {
	local := t.Timestamp.In(d.loc)
	weekday := local.Weekday()

	notional := t.Notional()

	roi := 0.0
	if !notional.IsZero() {
		roi = t.ClosedPnL.Div(notional).Mul(hundred).InexactFloat64()
	}

	direction := domain.ClassifyDirection(t.RawDirection)
	if t.RawDirection == "" {
		// exports without a direction column: treat buys as long flow,
		// sells as short flow
		if t.Side == domain.SideBuy {
			direction = domain.DirectionLong
		} else {
			direction = domain.DirectionShort
		}
	}

	return domain.EnrichedTrade{
		Trade:      t,
		TradingDay: util.TruncateToDay(t.Timestamp, d.loc),
		Hour:       local.Hour(),
		Weekday:    weekday,
		IsWeekend:  weekday == time.Saturday || weekday == time.Sunday,
		SizeBucket: d.bucket(notional),
		Direction:  direction,
		IsWin:      t.ClosedPnL.IsPositive(),
		ROI:        roi,
		NetPnL:     t.ClosedPnL.Sub(t.Fee),
		Sentiment:  domain.SentimentUnknown,
	}
}

// bucket maps a notional onto the size partition. Thresholds are lower
// bounds of the upper buckets, so an exact threshold value lands up.
func (d Deriver) bucket(notional decimal.Decimal) domain.SizeBucket {
	bucket := domain.SizeBuckets[0]
	for i, threshold := range d.thresholds {
		if notional.GreaterThanOrEqual(threshold) {
			bucket = domain.SizeBuckets[i+1]
		}
	}
	return bucket
}
