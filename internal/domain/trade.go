package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Side string

const (
	SideBuy  Side = "Buy"
	SideSell Side = "Sell"
)

func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy", "b":
		return SideBuy, nil
	case "sell", "s":
		return SideSell, nil
	}
	return "", fmt.Errorf("unrecognized side %q", s)
}

// Direction is the position direction a fill belongs to, collapsed from
// the exchange's free-form direction strings ("Open Long", "Close Short",
// "Long > Short", ...).
type Direction string

const (
	DirectionLong  Direction = "Long"
	DirectionShort Direction = "Short"
	DirectionOther Direction = "Other"
)

var Directions = []Direction{DirectionLong, DirectionShort, DirectionOther}

// ClassifyDirection maps a raw direction string to Long/Short/Other.
// Strings mentioning both (position flips) count as Other.
func ClassifyDirection(raw string) Direction {
	hasLong := strings.Contains(raw, "Long")
	hasShort := strings.Contains(raw, "Short")
	switch {
	case hasLong && hasShort:
		return DirectionOther
	case hasShort:
		return DirectionShort
	case hasLong:
		return DirectionLong
	}
	return DirectionOther
}

// Trade is one fill from the execution log. Immutable once loaded;
// duplicate fills are valid rows.
type Trade struct {
	Account        string
	Symbol         string
	ExecutionPrice decimal.Decimal
	Size           decimal.Decimal
	Side           Side
	RawDirection   string
	Timestamp      time.Time
	StartPosition  decimal.Decimal
	Event          string
	ClosedPnL      decimal.Decimal
	Fee            decimal.Decimal
	Leverage       decimal.Decimal
}

// Notional is the USD value of the fill, the basis for size bucketing.
func (t Trade) Notional() decimal.Decimal {
	return t.Size.Abs().Mul(t.ExecutionPrice)
}
