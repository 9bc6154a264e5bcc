package loader

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/navneetshukla17/primetrade-ai-analysis/internal/domain"
)

// tradeRow mirrors the execution-log CSV exactly. All fields come in as
// strings so a single malformed cell rejects that row, not the file.
type tradeRow struct {
	Account        string `csv:"account"`
	Symbol         string `csv:"symbol"`
	ExecutionPrice string `csv:"execution_price"`
	Size           string `csv:"size"`
	Side           string `csv:"side"`
	Time           string `csv:"time"`
	StartPosition  string `csv:"start_position"`
	Direction      string `csv:"direction"`
	Event          string `csv:"event"`
	ClosedPnL      string `csv:"closedPnL"`
	Fee            string `csv:"fee"`
	Leverage       string `csv:"leverage"`
}

// LoadReport counts what the trade loader had to skip. Malformed rows
// are recovered locally but never silently: the counts surface to the
// caller and the log.
type LoadReport struct {
	TotalRows    int
	LoadedRows   int
	SkippedRows  int
	SkipReasons  map[string]int
	FirstSkipped string
}

func (r *LoadReport) skip(reason string, rowNum int) {
	r.SkippedRows++
	if r.SkipReasons == nil {
		r.SkipReasons = map[string]int{}
	}
	r.SkipReasons[reason]++
	if r.FirstSkipped == "" {
		r.FirstSkipped = fmt.Sprintf("row %d: %s", rowNum, reason)
	}
}

// timestamps in the source export are day-first IST
var tradeTimeLayouts = []string{
	"02-01-2006 15:04",
	"02-01-2006 15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// LoadTrades reads the execution log. Output order is input order; the
// log is not required to be time-sorted.
func LoadTrades(path string, loc *time.Location, log *zap.SugaredLogger) ([]domain.Trade, LoadReport, error) {
	report := LoadReport{}

	f, err := os.Open(path)
	if err != nil {
		return nil, report, fmt.Errorf("could not open trades file: %w", err)
	}
	defer f.Close()

	rows := []tradeRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, report, fmt.Errorf("could not parse trades csv %s: %w", path, err)
	}
	report.TotalRows = len(rows)

	trades := make([]domain.Trade, 0, len(rows))
	for i, row := range rows {
		trade, reason := parseTradeRow(row, loc)
		if reason != "" {
			report.skip(reason, i+1)
			continue
		}
		trades = append(trades, trade)
	}
	report.LoadedRows = len(trades)

	if report.SkippedRows > 0 {
		log.Warnw("skipped malformed trade rows",
			"skipped", report.SkippedRows,
			"total", report.TotalRows,
			"reasons", report.SkipReasons,
			"first", report.FirstSkipped)
	}

	return trades, report, nil
}

func parseTradeRow(row tradeRow, loc *time.Location) (domain.Trade, string) {
	if strings.TrimSpace(row.Account) == "" {
		return domain.Trade{}, "missing account"
	}
	if strings.TrimSpace(row.Symbol) == "" {
		return domain.Trade{}, "missing symbol"
	}

	ts, err := parseTradeTime(row.Time, loc)
	if err != nil {
		return domain.Trade{}, "bad timestamp"
	}

	side, err := domain.ParseSide(row.Side)
	if err != nil {
		return domain.Trade{}, "bad side"
	}

	price, err := parseDecimal(row.ExecutionPrice, false)
	if err != nil {
		return domain.Trade{}, "bad execution_price"
	}
	size, err := parseDecimal(row.Size, false)
	if err != nil {
		return domain.Trade{}, "bad size"
	}
	startPos, err := parseDecimal(row.StartPosition, true)
	if err != nil {
		return domain.Trade{}, "bad start_position"
	}
	pnl, err := parseDecimal(row.ClosedPnL, true)
	if err != nil {
		return domain.Trade{}, "bad closedPnL"
	}
	fee, err := parseDecimal(row.Fee, true)
	if err != nil {
		return domain.Trade{}, "bad fee"
	}
	leverage, err := parseDecimal(row.Leverage, true)
	if err != nil {
		return domain.Trade{}, "bad leverage"
	}

	return domain.Trade{
		Account:        strings.TrimSpace(row.Account),
		Symbol:         strings.ToUpper(strings.TrimSpace(row.Symbol)),
		ExecutionPrice: price,
		Size:           size,
		Side:           side,
		RawDirection:   strings.TrimSpace(row.Direction),
		Timestamp:      ts,
		StartPosition:  startPos,
		Event:          strings.TrimSpace(row.Event),
		ClosedPnL:      pnl,
		Fee:            fee,
		Leverage:       leverage,
	}, ""
}

func parseTradeTime(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range tradeTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", raw)
}

// parseDecimal parses a numeric cell. Optional cells default to zero
// when blank; required ones reject the row.
func parseDecimal(raw string, optional bool) (decimal.Decimal, error) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if raw == "" {
		if optional {
			return decimal.Zero, nil
		}
		return decimal.Decimal{}, fmt.Errorf("empty required numeric field")
	}
	return decimal.NewFromString(raw)
}
