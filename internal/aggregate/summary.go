package aggregate

import (
	"encoding/json"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"

	"github.com/navneetshukla17/primetrade-ai-analysis/internal/domain"
)

// Summary is the headline metric row for the active filter.
type Summary struct {
	TotalTrades   int             `json:"totalTrades"`
	UniqueTraders int             `json:"uniqueTraders"`
	UniqueCoins   int             `json:"uniqueCoins"`
	TotalPnL      decimal.Decimal `json:"totalPnL"`
	TotalVolume   decimal.Decimal `json:"totalVolume"`
	AvgPnL        float64         `json:"-"`
	WinRate       float64         `json:"-"`
	AvgROI        float64         `json:"-"`
}

func (s Summary) MarshalJSON() ([]byte, error) {
	type alias Summary
	return json.Marshal(struct {
		alias
		AvgPnL  *float64 `json:"avgPnL"`
		WinRate *float64 `json:"winRate"`
		AvgROI  *float64 `json:"avgROI"`
	}{
		alias:   alias(s),
		AvgPnL:  nilIfNaN(s.AvgPnL),
		WinRate: nilIfNaN(s.WinRate),
		AvgROI:  nilIfNaN(s.AvgROI),
	})
}

func nilIfNaN(f float64) *float64 {
	if math.IsNaN(f) {
		return nil
	}
	return &f
}

// Summarize computes the metric row over the rows in scope. An empty
// scope is a valid result with NaN rates, not an error.
func Summarize(rows []domain.EnrichedTrade) Summary {
	s := Summary{
		TotalPnL:    decimal.Zero,
		TotalVolume: decimal.Zero,
		AvgPnL:      math.NaN(),
		WinRate:     math.NaN(),
		AvgROI:      math.NaN(),
	}

	traders := map[string]bool{}
	coins := map[string]bool{}
	wins := 0
	pnls := make([]float64, 0, len(rows))
	rois := make([]float64, 0, len(rows))

	for _, row := range rows {
		s.TotalTrades++
		traders[row.Account] = true
		coins[row.Symbol] = true
		if row.IsWin {
			wins++
		}
		s.TotalPnL = s.TotalPnL.Add(row.ClosedPnL)
		s.TotalVolume = s.TotalVolume.Add(row.Notional())
		pnl, _ := row.ClosedPnL.Float64()
		pnls = append(pnls, pnl)
		rois = append(rois, row.ROI)
	}

	s.UniqueTraders = len(traders)
	s.UniqueCoins = len(coins)
	if s.TotalTrades > 0 {
		s.AvgPnL, _ = stats.Mean(pnls)
		s.AvgROI, _ = stats.Mean(rois)
		s.WinRate = float64(wins) / float64(s.TotalTrades)
	}
	return s
}
