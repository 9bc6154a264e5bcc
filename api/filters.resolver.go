package api

import (
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/navneetshukla17/primetrade-ai-analysis/internal/domain"
)

// FilterOptionsResponse enumerates what the dashboard can filter on for
// the current dataset.
type FilterOptionsResponse struct {
	MinDate    string   `json:"minDate"`
	MaxDate    string   `json:"maxDate"`
	Sentiments []string `json:"sentiments"`
	Coins      []string `json:"coins"`
	Directions []string `json:"directions"`
	Sides      []string `json:"sides"`
}

func (m ApiHandler) filterOptions(c *gin.Context) {
	ds, err := m.Sessions.Dataset()
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}

	coinSet := map[string]bool{}
	var minDay, maxDay string
	for _, t := range ds.Trades {
		coinSet[t.Symbol] = true
		day := t.TradingDay.Format(dateLayout)
		if minDay == "" || day < minDay {
			minDay = day
		}
		if day > maxDay {
			maxDay = day
		}
	}

	coins := make([]string, 0, len(coinSet))
	for coin := range coinSet {
		coins = append(coins, coin)
	}
	sort.Strings(coins)

	sentiments := make([]string, 0, len(domain.SentimentCategories)+1)
	for _, s := range domain.SentimentCategories {
		sentiments = append(sentiments, string(s))
	}
	sentiments = append(sentiments, string(domain.SentimentUnknown))

	c.JSON(200, FilterOptionsResponse{
		MinDate:    minDay,
		MaxDate:    maxDay,
		Sentiments: sentiments,
		Coins:      coins,
		Directions: []string{string(domain.DirectionLong), string(domain.DirectionShort), string(domain.DirectionOther)},
		Sides:      []string{string(domain.SideBuy), string(domain.SideSell)},
	})
}
