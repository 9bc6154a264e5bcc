package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Dimension is a groupable axis over enriched trades.
type Dimension string

const (
	DimSentiment       Dimension = "sentiment"
	DimCoarseSentiment Dimension = "coarse_sentiment"
	DimSide            Dimension = "side"
	DimDirection       Dimension = "direction"
	DimSizeBucket      Dimension = "size_bucket"
	DimCoin            Dimension = "coin"
	DimHour            Dimension = "hour"
	DimWeekday         Dimension = "weekday"
	DimWeekend         Dimension = "weekend"
	DimTrader          Dimension = "trader"
)

var dimensions = map[Dimension]bool{
	DimSentiment:       true,
	DimCoarseSentiment: true,
	DimSide:            true,
	DimDirection:       true,
	DimSizeBucket:      true,
	DimCoin:            true,
	DimHour:            true,
	DimWeekday:         true,
	DimWeekend:         true,
	DimTrader:          true,
}

// ParseDimension validates a grouping dimension name. An unknown name is
// a configuration error and must be rejected before any computation runs.
func ParseDimension(s string) (Dimension, error) {
	d := Dimension(s)
	if !dimensions[d] {
		return "", fmt.Errorf("unknown grouping dimension %q", s)
	}
	return d, nil
}

// Value extracts this dimension's value from a trade, as the string that
// becomes part of the group key.
func (d Dimension) Value(t EnrichedTrade) string {
	switch d {
	case DimSentiment:
		return string(t.Sentiment)
	case DimCoarseSentiment:
		return string(t.Sentiment.Coarse())
	case DimSide:
		return string(t.Side)
	case DimDirection:
		return string(t.Direction)
	case DimSizeBucket:
		return string(t.SizeBucket)
	case DimCoin:
		return t.Symbol
	case DimHour:
		return strconv.Itoa(t.Hour)
	case DimWeekday:
		return t.Weekday.String()
	case DimWeekend:
		return strconv.FormatBool(t.IsWeekend)
	case DimTrader:
		return t.Account
	}
	return ""
}

// AggregateStat is one output row of a grouped aggregation. Produced
// fresh per query; never mutated.
type AggregateStat struct {
	// Key maps each requested dimension to this group's value.
	Key map[Dimension]string `json:"key"`

	TradeCount int `json:"tradeCount"`

	// AvgPnL and WinRate are NaN for an empty (zero-filled) group;
	// rendered as null in JSON.
	AvgPnL    float64 `json:"-"`
	WinRate   float64 `json:"-"`
	AvgROI    float64 `json:"-"`
	PnLStdDev float64 `json:"-"`

	TotalPnL    decimal.Decimal `json:"totalPnL"`
	TotalVolume decimal.Decimal `json:"totalVolume"`
}

// nullIfNaN keeps NaN rates representable over the wire. encoding/json
// refuses to marshal NaN, and an empty group must serialize as null, not
// error out.
func nullIfNaN(f float64) *float64 {
	if math.IsNaN(f) {
		return nil
	}
	return &f
}

func (s AggregateStat) MarshalJSON() ([]byte, error) {
	type alias AggregateStat
	return json.Marshal(struct {
		alias
		AvgPnL    *float64 `json:"avgPnL"`
		WinRate   *float64 `json:"winRate"`
		AvgROI    *float64 `json:"avgROI"`
		PnLStdDev *float64 `json:"pnlStdDev"`
	}{
		alias:     alias(s),
		AvgPnL:    nullIfNaN(s.AvgPnL),
		WinRate:   nullIfNaN(s.WinRate),
		AvgROI:    nullIfNaN(s.AvgROI),
		PnLStdDev: nullIfNaN(s.PnLStdDev),
	})
}
