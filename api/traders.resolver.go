package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/navneetshukla17/primetrade-ai-analysis/internal/aggregate"
	"github.com/navneetshukla17/primetrade-ai-analysis/internal/domain"
)

// TradersRequest selects either a leaderboard (TopN/BottomN by total
// PnL) or a percentile segment (Fraction of traders by average PnL).
type TradersRequest struct {
	Filter   FilterRequest `json:"filter"`
	TopN     int           `json:"topN"`
	BottomN  int           `json:"bottomN"`
	Fraction float64       `json:"fraction"`
	Segment  string        `json:"segment"` // "top" or "bottom", with fraction
}

type TradersResponse struct {
	Traders []domain.AggregateStat `json:"traders"`
}

func (m ApiHandler) traders(c *gin.Context) {
	var requestBody TradersRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		m.returnErrorJsonCode(err, c, 400)
		return
	}

	filter, err := requestBody.Filter.toFilter(m.Config.Location())
	if err != nil {
		m.returnErrorJsonCode(err, c, 400)
		return
	}

	ds, err := m.Sessions.Dataset()
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}
	rows := filter.Apply(ds.Trades)

	var stats []domain.AggregateStat
	switch {
	case requestBody.Fraction > 0:
		top := requestBody.Segment != "bottom"
		stats, err = aggregate.TraderSegment(rows, requestBody.Fraction, top)
	case requestBody.TopN > 0:
		stats, err = aggregate.TopTraders(rows, requestBody.TopN, true)
	case requestBody.BottomN > 0:
		stats, err = aggregate.TopTraders(rows, requestBody.BottomN, false)
	default:
		err = fmt.Errorf("one of topN, bottomN or fraction is required")
	}
	if err != nil {
		m.returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, TradersResponse{Traders: stats})
}
