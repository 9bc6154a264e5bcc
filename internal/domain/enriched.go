package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SizeBucket discretizes a fill's notional value. The partition is total
// and non-overlapping; a notional sitting exactly on a threshold belongs
// to the upper bucket.
type SizeBucket string

const (
	BucketMicro  SizeBucket = "Micro"  // [0, 100)
	BucketSmall  SizeBucket = "Small"  // [100, 1k)
	BucketMedium SizeBucket = "Medium" // [1k, 10k)
	BucketLarge  SizeBucket = "Large"  // [10k, 100k)
	BucketXLarge SizeBucket = "XLarge" // [100k, inf)
)

var SizeBuckets = []SizeBucket{
	BucketMicro,
	BucketSmall,
	BucketMedium,
	BucketLarge,
	BucketXLarge,
}

// EnrichedTrade is a Trade plus the derived fields every aggregation
// groups on. Derived deterministically from the trade's own fields and
// the joined sentiment record; never mutated after the join.
type EnrichedTrade struct {
	Trade

	// TradingDay is Timestamp truncated to midnight in the configured
	// timezone; the join key against the sentiment series.
	TradingDay time.Time
	Hour       int
	Weekday    time.Weekday
	IsWeekend  bool
	SizeBucket SizeBucket
	Direction  Direction

	// IsWin is ClosedPnL > 0. A flat close (PnL exactly zero) counts as
	// a loss.
	IsWin bool

	// ROI is ClosedPnL / Notional * 100. Zero-notional fills get 0
	// rather than an infinity that would poison downstream means.
	ROI float64

	NetPnL decimal.Decimal

	// Sentiment is the joined category for TradingDay, or Unknown when
	// the series has a gap on that day. IndexValue is 0 for Unknown.
	Sentiment  SentimentCategory
	IndexValue int
}
