package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/navneetshukla17/primetrade-ai-analysis/internal/domain"
)

type TradesRequest struct {
	Filter FilterRequest `json:"filter"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

type TradeJson struct {
	Account        string          `json:"account"`
	Symbol         string          `json:"symbol"`
	ExecutionPrice decimal.Decimal `json:"executionPrice"`
	Size           decimal.Decimal `json:"size"`
	Side           string          `json:"side"`
	Direction      string          `json:"direction"`
	Timestamp      time.Time       `json:"timestamp"`
	TradingDay     string          `json:"tradingDay"`
	Hour           int             `json:"hour"`
	Weekday        string          `json:"weekday"`
	IsWeekend      bool            `json:"isWeekend"`
	SizeBucket     string          `json:"sizeBucket"`
	ClosedPnL      decimal.Decimal `json:"closedPnL"`
	NetPnL         decimal.Decimal `json:"netPnL"`
	Leverage       decimal.Decimal `json:"leverage"`
	IsWin          bool            `json:"isWin"`
	ROI            float64         `json:"roi"`
	Sentiment      string          `json:"sentiment"`
	IndexValue     int             `json:"indexValue"`
}

type TradesResponse struct {
	Total  int         `json:"total"`
	Offset int         `json:"offset"`
	Trades []TradeJson `json:"trades"`
}

const maxPageSize = 1000

func (m ApiHandler) trades(c *gin.Context) {
	var requestBody TradesRequest
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

	matched := filter.Apply(ds.Trades)

	limit := requestBody.Limit
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	offset := requestBody.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	page := make([]TradeJson, 0, end-offset)
	for _, t := range matched[offset:end] {
		page = append(page, toTradeJson(t))
	}

	c.JSON(200, TradesResponse{
		Total:  len(matched),
		Offset: offset,
		Trades: page,
	})
}

func toTradeJson(t domain.EnrichedTrade) TradeJson {
	return TradeJson{
		Account:        t.Account,
		Symbol:         t.Symbol,
		ExecutionPrice: t.ExecutionPrice,
		Size:           t.Size,
		Side:           string(t.Side),
		Direction:      string(t.Direction),
		Timestamp:      t.Timestamp,
		TradingDay:     t.TradingDay.Format(dateLayout),
		Hour:           t.Hour,
		Weekday:        t.Weekday.String(),
		IsWeekend:      t.IsWeekend,
		SizeBucket:     string(t.SizeBucket),
		ClosedPnL:      t.ClosedPnL,
		NetPnL:         t.NetPnL,
		Leverage:       t.Leverage,
		IsWin:          t.IsWin,
		ROI:            t.ROI,
		Sentiment:      string(t.Sentiment),
		IndexValue:     t.IndexValue,
	}
}
