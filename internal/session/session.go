package session

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/navneetshukla17/primetrade-ai-analysis/internal/config"
	"github.com/navneetshukla17/primetrade-ai-analysis/internal/domain"
	"github.com/navneetshukla17/primetrade-ai-analysis/internal/enrich"
	"github.com/navneetshukla17/primetrade-ai-analysis/internal/loader"
)

// Dataset is the fully loaded, derived and joined session data. It is
// read-only after construction; filters hand out subsets, never writes.
type Dataset struct {
	Trades     []domain.EnrichedTrade
	Series     *loader.SentimentSeries
	LoadReport loader.LoadReport
	JoinReport enrich.JoinReport

	Fingerprint string
	LoadedAt    time.Time
}

// Manager memoizes the Loader -> Deriver -> Joiner run keyed on the
// input files' content hash. Filter changes hit the cache; only a change
// to the underlying files triggers a re-parse.
type Manager struct {
	cfg *config.Config
	log *zap.SugaredLogger

	mu      sync.Mutex
	current *Dataset
}

func NewManager(cfg *config.Config, log *zap.SugaredLogger) *Manager {
	return &Manager{cfg: cfg, log: log}
}

// Dataset returns the cached dataset, rebuilding it when the input files
// changed since the last load.
func (m *Manager) Dataset() (*Dataset, error) {
	fingerprint, err := fingerprintFiles(m.cfg.Data.SentimentFile, m.cfg.Data.TradesFile)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil && m.current.Fingerprint == fingerprint {
		return m.current, nil
	}

	ds, err := m.build(fingerprint)
	if err != nil {
		return nil, err
	}
	m.current = ds
	return ds, nil
}

func (m *Manager) build(fingerprint string) (*Dataset, error) {
	start := time.Now()
	loc := m.cfg.Location()

	series, err := loader.LoadSentiment(m.cfg.Data.SentimentFile, loc, m.log)
	if err != nil {
		return nil, fmt.Errorf("failed to load sentiment series: %w", err)
	}

	trades, loadReport, err := loader.LoadTrades(m.cfg.Data.TradesFile, loc, m.log)
	if err != nil {
		return nil, fmt.Errorf("failed to load trades: %w", err)
	}

	deriver := enrich.NewDeriver(loc, m.cfg.Thresholds())
	enriched := make([]domain.EnrichedTrade, len(trades))
	for i, t := range trades {
		enriched[i] = deriver.Derive(t)
	}

	joined, joinReport := enrich.Join(enriched, series, m.log)

	m.log.Infow("session dataset loaded",
		"trades", len(joined),
		"sentimentDays", series.Len(),
		"skippedRows", loadReport.SkippedRows,
		"unmatchedDays", joinReport.UnmatchedDays,
		"elapsed", time.Since(start).String())

	return &Dataset{
		Trades:      joined,
		Series:      series,
		LoadReport:  loadReport,
		JoinReport:  joinReport,
		Fingerprint: fingerprint,
		LoadedAt:    time.Now(),
	}, nil
}

func fingerprintFiles(paths ...string) (string, error) {
	h := sha256.New()
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("could not open %s for fingerprint: %w", path, err)
		}
		_, err = io.Copy(h, f)
		f.Close()
		if err != nil {
			return "", fmt.Errorf("could not hash %s: %w", path, err)
		}
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
