package domain

import (
	"fmt"
	"strings"
	"time"
)

// SentimentCategory is the classification attached to a trading day from
// the Fear & Greed index.
type SentimentCategory string

const (
	SentimentExtremeFear  SentimentCategory = "Extreme Fear"
	SentimentFear         SentimentCategory = "Fear"
	SentimentNeutral      SentimentCategory = "Neutral"
	SentimentGreed        SentimentCategory = "Greed"
	SentimentExtremeGreed SentimentCategory = "Extreme Greed"

	// SentimentUnknown is assigned to trades whose trading day has no
	// sentiment record. It is never produced by the loader.
	SentimentUnknown SentimentCategory = "Unknown"
)

// SentimentCategories lists the loader-produced categories in ascending
// index order. Unknown is excluded on purpose; callers that want it in a
// zero-filled chart add it themselves.
var SentimentCategories = []SentimentCategory{
	SentimentExtremeFear,
	SentimentFear,
	SentimentNeutral,
	SentimentGreed,
	SentimentExtremeGreed,
}

// ParseSentimentCategory normalizes a raw classification string from the
// index feed ("extreme fear", "Greed", ...).
func ParseSentimentCategory(s string) (SentimentCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "extreme fear":
		return SentimentExtremeFear, nil
	case "fear":
		return SentimentFear, nil
	case "neutral":
		return SentimentNeutral, nil
	case "greed":
		return SentimentGreed, nil
	case "extreme greed":
		return SentimentExtremeGreed, nil
	}
	return "", fmt.Errorf("unrecognized sentiment classification %q", s)
}

// SentimentFromValue maps a 0-100 index value onto a category. Bands are
// half-open, so a value sitting exactly on a threshold belongs to the
// upper band: [0,30) extreme fear, [30,45) fear, [45,55) neutral,
// [55,70) greed, [70,100] extreme greed.
func SentimentFromValue(value int) SentimentCategory {
	switch {
	case value < 30:
		return SentimentExtremeFear
	case value < 45:
		return SentimentFear
	case value < 55:
		return SentimentNeutral
	case value < 70:
		return SentimentGreed
	default:
		return SentimentExtremeGreed
	}
}

// Coarse collapses the five-level category into the two-level Fear/Greed
// split used by the headline comparisons. Neutral and Unknown map to
// themselves.
func (c SentimentCategory) Coarse() SentimentCategory {
	switch c {
	case SentimentExtremeFear:
		return SentimentFear
	case SentimentExtremeGreed:
		return SentimentGreed
	}
	return c
}

// SentimentRecord is one day of the Fear & Greed series.
type SentimentRecord struct {
	Date           time.Time
	Value          int
	Classification SentimentCategory
}
