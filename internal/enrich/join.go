package enrich

import (
	"go.uber.org/zap"

	"github.com/navneetshukla17/primetrade-ai-analysis/internal/domain"
	"github.com/navneetshukla17/primetrade-ai-analysis/internal/loader"
)

// JoinReport makes sentiment gaps visible without failing the pipeline.
type JoinReport struct {
	MatchedTrades   int
	UnmatchedTrades int
	// UnmatchedDays counts distinct trading days with no sentiment
	// record, not trades.
	UnmatchedDays int
}

// Join left-joins each enriched trade's trading day to the sentiment
// series. A day missing from the series gets the Unknown sentinel; one
// gap must never abort the rest of the log.
func Join(trades []domain.EnrichedTrade, series *loader.SentimentSeries, log *zap.SugaredLogger) ([]domain.EnrichedTrade, JoinReport) {
	report := JoinReport{}
	missingDays := map[string]bool{}

	out := make([]domain.EnrichedTrade, len(trades))
	for i, t := range trades {
		rec, ok := series.Lookup(t.TradingDay)
		if ok {
			t.Sentiment = rec.Classification
			t.IndexValue = rec.Value
			report.MatchedTrades++
		} else {
			t.Sentiment = domain.SentimentUnknown
			t.IndexValue = 0
			report.UnmatchedTrades++
			missingDays[t.TradingDay.Format("2006-01-02")] = true
		}
		out[i] = t
	}
	report.UnmatchedDays = len(missingDays)

	if report.UnmatchedDays > 0 {
		log.Warnw("trading days without sentiment data",
			"days", report.UnmatchedDays,
			"trades", report.UnmatchedTrades)
	}

	return out, report
}
