package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/navneetshukla17/primetrade-ai-analysis/internal/aggregate"
	"github.com/navneetshukla17/primetrade-ai-analysis/internal/domain"
)

var errZeroFillDims = errors.New("zeroFill requires exactly one groupBy dimension")

type AggregateRequest struct {
	Filter  FilterRequest `json:"filter"`
	GroupBy []string      `json:"groupBy"`

	// ZeroFill adds empty rows for the named categories of the first
	// (and only) grouping dimension; callers that need a fixed chart
	// axis ask for it explicitly.
	ZeroFill []string `json:"zeroFill"`
}

type AggregateResponse struct {
	Stats []domain.AggregateStat `json:"stats"`
}

func (m ApiHandler) aggregate(c *gin.Context) {
	var requestBody AggregateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		m.returnErrorJsonCode(err, c, 400)
		return
	}

	dims := make([]domain.Dimension, 0, len(requestBody.GroupBy))
	for _, raw := range requestBody.GroupBy {
		d, err := domain.ParseDimension(raw)
		if err != nil {
			m.returnErrorJsonCode(err, c, 400)
			return
		}
		dims = append(dims, d)
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

	stats, err := aggregate.Aggregate(filter.Apply(ds.Trades), dims)
	if err != nil {
		m.returnErrorJsonCode(err, c, 400)
		return
	}

	if len(requestBody.ZeroFill) > 0 {
		if len(dims) != 1 {
			m.returnErrorJsonCode(
				errZeroFillDims, c, 400)
			return
		}
		stats = aggregate.ZeroFill(stats, dims[0], requestBody.ZeroFill)
	}

	c.JSON(200, AggregateResponse{Stats: stats})
}
