package aggregate

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"

	"github.com/navneetshukla17/primetrade-ai-analysis/internal/domain"
)

// accumulator collects one group's running totals. The explicit
// key -> accumulator mapping keeps the join and empty-group policies
// auditable instead of hiding them in a dataframe merge.
type accumulator struct {
	values      []string
	count       int
	wins        int
	totalPnL    decimal.Decimal
	totalVolume decimal.Decimal
	pnls        []float64
	rois        []float64
}

const keySep = "\x1f"

// Aggregate groups rows by the given dimensions and computes one
// AggregateStat per distinct key combination present in the data.
// Categories with zero matching trades do not appear; see ZeroFill.
// Output order is deterministic for identical inputs regardless of row
// order.
func Aggregate(rows []domain.EnrichedTrade, dims []domain.Dimension) ([]domain.AggregateStat, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("at least one grouping dimension is required")
	}
	for _, d := range dims {
		if _, err := domain.ParseDimension(string(d)); err != nil {
			return nil, err
		}
	}

	groups := map[string]*accumulator{}
	for _, row := range rows {
		values := make([]string, len(dims))
		for i, d := range dims {
			values[i] = d.Value(row)
		}
		key := strings.Join(values, keySep)

		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{
				values:      values,
				totalPnL:    decimal.Zero,
				totalVolume: decimal.Zero,
			}
			groups[key] = acc
		}
		acc.add(row)
	}

	out := make([]domain.AggregateStat, 0, len(groups))
	for _, acc := range groups {
		out = append(out, acc.stat(dims))
	}
	sortStats(out, dims)
	return out, nil
}

func (a *accumulator) add(row domain.EnrichedTrade) {
	a.count++
	if row.IsWin {
		a.wins++
	}
	pnl, _ := row.ClosedPnL.Float64()
	a.pnls = append(a.pnls, pnl)
	a.rois = append(a.rois, row.ROI)
	a.totalPnL = a.totalPnL.Add(row.ClosedPnL)
	a.totalVolume = a.totalVolume.Add(row.Notional())
}

func (a *accumulator) stat(dims []domain.Dimension) domain.AggregateStat {
	key := make(map[domain.Dimension]string, len(dims))
	for i, d := range dims {
		key[d] = a.values[i]
	}

	s := domain.AggregateStat{
		Key:         key,
		TradeCount:  a.count,
		TotalPnL:    a.totalPnL,
		TotalVolume: a.totalVolume,
		AvgPnL:      math.NaN(),
		WinRate:     math.NaN(),
		AvgROI:      math.NaN(),
		PnLStdDev:   math.NaN(),
	}
	if a.count == 0 {
		return s
	}

	// stats.Mean only errors on empty input, which is excluded above
	s.AvgPnL, _ = stats.Mean(a.pnls)
	s.AvgROI, _ = stats.Mean(a.rois)
	s.WinRate = float64(a.wins) / float64(a.count)
	if a.count > 1 {
		s.PnLStdDev, _ = stats.StandardDeviationSample(a.pnls)
	}
	return s
}

// emptyStat builds the zero-trade row used when a caller asks for a
// fixed category list. Rates are NaN, never zero: an empty group has no
// win rate.
func emptyStat(key map[domain.Dimension]string) domain.AggregateStat {
	return domain.AggregateStat{
		Key:         key,
		TotalPnL:    decimal.Zero,
		TotalVolume: decimal.Zero,
		AvgPnL:      math.NaN(),
		WinRate:     math.NaN(),
		AvgROI:      math.NaN(),
		PnLStdDev:   math.NaN(),
	}
}

// ZeroFill adds empty rows for requested categories absent from stats,
// for a single-dimension aggregation feeding a chart with a fixed axis.
func ZeroFill(statsIn []domain.AggregateStat, dim domain.Dimension, categories []string) []domain.AggregateStat {
	present := map[string]bool{}
	for _, s := range statsIn {
		present[s.Key[dim]] = true
	}

	out := statsIn
	for _, c := range categories {
		if !present[c] {
			out = append(out, emptyStat(map[domain.Dimension]string{dim: c}))
		}
	}
	sortStats(out, []domain.Dimension{dim})
	return out
}

func sortStats(out []domain.AggregateStat, dims []domain.Dimension) {
	sort.Slice(out, func(i, j int) bool {
		for _, d := range dims {
			vi, vj := out[i].Key[d], out[j].Key[d]
			if vi == vj {
				continue
			}
			return dimLess(d, vi, vj)
		}
		return false
	})
}

// dimLess orders group-key values for stable output: hours numerically,
// weekdays Monday through Sunday, everything else lexically.
func dimLess(d domain.Dimension, a, b string) bool {
	switch d {
	case domain.DimHour:
		ai, errA := strconv.Atoi(a)
		bi, errB := strconv.Atoi(b)
		if errA == nil && errB == nil {
			return ai < bi
		}
	case domain.DimWeekday:
		return weekdayOrder(a) < weekdayOrder(b)
	}
	return a < b
}

func weekdayOrder(name string) int {
	for i := 0; i < 7; i++ {
		// Monday-first ordering, matching the report tables
		if time.Weekday((i+1)%7).String() == name {
			return i
		}
	}
	return 7
}
