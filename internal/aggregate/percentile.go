package aggregate

import (
	"fmt"
	"sort"

	"github.com/navneetshukla17/primetrade-ai-analysis/internal/domain"
)

// TraderSegment ranks per-trader aggregates by average PnL and slices the
// requested fraction. top=true takes the head of the descending ranking
// ("top 10% traders"), top=false the tail. With n traders the segment
// holds floor(n*fraction) of them, but never fewer than one when any
// trader exists.
func TraderSegment(rows []domain.EnrichedTrade, fraction float64, top bool) ([]domain.AggregateStat, error) {
	if fraction <= 0 || fraction > 1 {
		return nil, fmt.Errorf("segment fraction must be in (0, 1], got %v", fraction)
	}

	perTrader, err := Aggregate(rows, []domain.Dimension{domain.DimTrader})
	if err != nil {
		return nil, err
	}
	if len(perTrader) == 0 {
		return nil, nil
	}

	sort.SliceStable(perTrader, func(i, j int) bool {
		if top {
			return perTrader[i].AvgPnL > perTrader[j].AvgPnL
		}
		return perTrader[i].AvgPnL < perTrader[j].AvgPnL
	})

	n := int(float64(len(perTrader)) * fraction)
	if n < 1 {
		n = 1
	}
	if n > len(perTrader) {
		n = len(perTrader)
	}
	return perTrader[:n], nil
}

// TopTraders returns the n best (or worst) traders ranked by total PnL,
// the leaderboard view.
func TopTraders(rows []domain.EnrichedTrade, n int, best bool) ([]domain.AggregateStat, error) {
	if n <= 0 {
		return nil, fmt.Errorf("leaderboard size must be positive, got %d", n)
	}

	perTrader, err := Aggregate(rows, []domain.Dimension{domain.DimTrader})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(perTrader, func(i, j int) bool {
		cmp := perTrader[i].TotalPnL.Cmp(perTrader[j].TotalPnL)
		if best {
			return cmp > 0
		}
		return cmp < 0
	})

	if n > len(perTrader) {
		n = len(perTrader)
	}
	return perTrader[:n], nil
}
