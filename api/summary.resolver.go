package api

import (
	"github.com/gin-gonic/gin"

	"github.com/navneetshukla17/primetrade-ai-analysis/internal/aggregate"
)

type SummaryRequest struct {
	Filter FilterRequest `json:"filter"`
}

type SummaryResponse struct {
	Summary         aggregate.Summary `json:"summary"`
	SkippedRows     int               `json:"skippedRows"`
	UnmatchedDays   int               `json:"unmatchedDays"`
	UnmatchedTrades int               `json:"unmatchedTrades"`
}

func (m ApiHandler) summary(c *gin.Context) {
	var requestBody SummaryRequest
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

	c.JSON(200, SummaryResponse{
		Summary:         aggregate.Summarize(filter.Apply(ds.Trades)),
		SkippedRows:     ds.LoadReport.SkippedRows,
		UnmatchedDays:   ds.JoinReport.UnmatchedDays,
		UnmatchedTrades: ds.JoinReport.UnmatchedTrades,
	})
}
