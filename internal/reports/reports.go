package reports

import (
	"fmt"
	"math"
	"sort"

	"github.com/navneetshukla17/primetrade-ai-analysis/internal/aggregate"
	"github.com/navneetshukla17/primetrade-ai-analysis/internal/domain"
)

// Table is a named, render-ready aggregate table. Every chart and every
// reported insight reads from one of these.
type Table struct {
	Name    string     `json:"name"`
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Options tune the report builders; zero values get sane defaults.
type Options struct {
	// MinCoinTrades hides coins with fewer trades from coin tables.
	MinCoinTrades int
	// SegmentFraction is the trader percentile slice, default 0.10.
	SegmentFraction float64
}

func (o Options) withDefaults() Options {
	if o.SegmentFraction == 0 {
		o.SegmentFraction = 0.10
	}
	return o
}

type builder func(rows []domain.EnrichedTrade, opts Options) (Table, error)

var registry = map[string]builder{
	"sentiment_pnl":   sentimentPnL,
	"side_sentiment":  sideSentiment,
	"size_bucket":     sizeBucket,
	"hourly":          hourly,
	"weekday":         weekday,
	"coin_sentiment":  coinSentiment,
	"trader_segments": traderSegments,
}

// Names lists the available report names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build renders the named report over the rows in scope.
func Build(name string, rows []domain.EnrichedTrade, opts Options) (Table, error) {
	b, ok := registry[name]
	if !ok {
		return Table{}, fmt.Errorf("unknown report %q (available: %v)", name, Names())
	}
	return b(rows, opts.withDefaults())
}

// BuildAll renders every registered report.
func BuildAll(rows []domain.EnrichedTrade, opts Options) ([]Table, error) {
	tables := make([]Table, 0, len(registry))
	for _, name := range Names() {
		t, err := Build(name, rows, opts)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

var statColumns = []string{"trades", "avg_pnl", "total_pnl", "win_rate", "avg_roi", "total_volume"}

func statCells(s domain.AggregateStat) []string {
	return []string{
		fmt.Sprintf("%d", s.TradeCount),
		fmtFloat(s.AvgPnL, 2),
		s.TotalPnL.StringFixed(2),
		fmtPercent(s.WinRate),
		fmtFloat(s.AvgROI, 2),
		s.TotalVolume.StringFixed(2),
	}
}

// fmtFloat renders NaN (empty group) as a blank cell.
func fmtFloat(f float64, places int) string {
	if math.IsNaN(f) {
		return ""
	}
	return fmt.Sprintf("%.*f", places, f)
}

func fmtPercent(f float64) string {
	if math.IsNaN(f) {
		return ""
	}
	return fmt.Sprintf("%.1f%%", f*100)
}

func sentimentPnL(rows []domain.EnrichedTrade, _ Options) (Table, error) {
	stats, err := aggregate.Aggregate(rows, []domain.Dimension{domain.DimSentiment})
	if err != nil {
		return Table{}, err
	}
	// charts want the full axis even for categories with no trades
	categories := make([]string, 0, len(domain.SentimentCategories))
	for _, c := range domain.SentimentCategories {
		categories = append(categories, string(c))
	}
	stats = aggregate.ZeroFill(stats, domain.DimSentiment, categories)

	t := Table{
		Name:    "sentiment_pnl",
		Title:   "Performance by Sentiment Category",
		Columns: append([]string{"sentiment"}, statColumns...),
	}
	for _, s := range stats {
		t.Rows = append(t.Rows, append([]string{s.Key[domain.DimSentiment]}, statCells(s)...))
	}
	return t, nil
}

func sideSentiment(rows []domain.EnrichedTrade, _ Options) (Table, error) {
	stats, err := aggregate.Aggregate(rows, []domain.Dimension{domain.DimCoarseSentiment, domain.DimDirection})
	if err != nil {
		return Table{}, err
	}

	t := Table{
		Name:    "side_sentiment",
		Title:   "Long vs Short Performance by Sentiment",
		Columns: append([]string{"sentiment", "direction"}, statColumns...),
	}
	for _, s := range stats {
		t.Rows = append(t.Rows, append([]string{
			s.Key[domain.DimCoarseSentiment],
			s.Key[domain.DimDirection],
		}, statCells(s)...))
	}
	return t, nil
}

func sizeBucket(rows []domain.EnrichedTrade, _ Options) (Table, error) {
	stats, err := aggregate.Aggregate(rows, []domain.Dimension{domain.DimSizeBucket})
	if err != nil {
		return Table{}, err
	}
	buckets := make([]string, 0, len(domain.SizeBuckets))
	for _, b := range domain.SizeBuckets {
		buckets = append(buckets, string(b))
	}
	stats = aggregate.ZeroFill(stats, domain.DimSizeBucket, buckets)
	sortByBucketOrder(stats)

	t := Table{
		Name:    "size_bucket",
		Title:   "Performance by Position Size",
		Columns: append([]string{"size_bucket"}, statColumns...),
	}
	for _, s := range stats {
		t.Rows = append(t.Rows, append([]string{s.Key[domain.DimSizeBucket]}, statCells(s)...))
	}
	return t, nil
}

// size buckets have a natural order that lexical sorting would scramble
func sortByBucketOrder(stats []domain.AggregateStat) {
	order := map[string]int{}
	for i, b := range domain.SizeBuckets {
		order[string(b)] = i
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return order[stats[i].Key[domain.DimSizeBucket]] < order[stats[j].Key[domain.DimSizeBucket]]
	})
}

func hourly(rows []domain.EnrichedTrade, _ Options) (Table, error) {
	stats, err := aggregate.Aggregate(rows, []domain.Dimension{domain.DimHour})
	if err != nil {
		return Table{}, err
	}

	t := Table{
		Name:    "hourly",
		Title:   "Performance by Hour of Day (IST)",
		Columns: append([]string{"hour"}, statColumns...),
	}
	for _, s := range stats {
		t.Rows = append(t.Rows, append([]string{s.Key[domain.DimHour]}, statCells(s)...))
	}
	return t, nil
}

func weekday(rows []domain.EnrichedTrade, _ Options) (Table, error) {
	stats, err := aggregate.Aggregate(rows, []domain.Dimension{domain.DimWeekday})
	if err != nil {
		return Table{}, err
	}

	t := Table{
		Name:    "weekday",
		Title:   "Performance by Day of Week",
		Columns: append([]string{"weekday"}, statColumns...),
	}
	for _, s := range stats {
		t.Rows = append(t.Rows, append([]string{s.Key[domain.DimWeekday]}, statCells(s)...))
	}
	return t, nil
}

func coinSentiment(rows []domain.EnrichedTrade, opts Options) (Table, error) {
	stats, err := aggregate.Aggregate(rows, []domain.Dimension{domain.DimCoin, domain.DimCoarseSentiment})
	if err != nil {
		return Table{}, err
	}

	// thin coins produce noisy means; apply the leaderboard threshold
	counts := map[string]int{}
	for _, s := range stats {
		counts[s.Key[domain.DimCoin]] += s.TradeCount
	}

	t := Table{
		Name:    "coin_sentiment",
		Title:   "Coin Performance by Sentiment",
		Columns: append([]string{"coin", "sentiment"}, statColumns...),
	}
	for _, s := range stats {
		if counts[s.Key[domain.DimCoin]] < opts.MinCoinTrades {
			continue
		}
		t.Rows = append(t.Rows, append([]string{
			s.Key[domain.DimCoin],
			s.Key[domain.DimCoarseSentiment],
		}, statCells(s)...))
	}
	return t, nil
}

func traderSegments(rows []domain.EnrichedTrade, opts Options) (Table, error) {
	top, err := aggregate.TraderSegment(rows, opts.SegmentFraction, true)
	if err != nil {
		return Table{}, err
	}
	bottom, err := aggregate.TraderSegment(rows, opts.SegmentFraction, false)
	if err != nil {
		return Table{}, err
	}

	t := Table{
		Name:    "trader_segments",
		Title:   fmt.Sprintf("Top/Bottom %.0f%% Traders by Average PnL", opts.SegmentFraction*100),
		Columns: append([]string{"segment", "trader"}, statColumns...),
	}
	for _, s := range top {
		t.Rows = append(t.Rows, append([]string{"top", s.Key[domain.DimTrader]}, statCells(s)...))
	}
	for _, s := range bottom {
		t.Rows = append(t.Rows, append([]string{"bottom", s.Key[domain.DimTrader]}, statCells(s)...))
	}
	return t, nil
}
