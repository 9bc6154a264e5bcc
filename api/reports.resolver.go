package api

import (
	"github.com/gin-gonic/gin"

	"github.com/navneetshukla17/primetrade-ai-analysis/internal/reports"
)

func (m ApiHandler) listReports(c *gin.Context) {
	c.JSON(200, gin.H{"reports": reports.Names()})
}

// report renders a named aggregate table over the full dataset, as JSON
// by default or CSV with ?format=csv.
func (m ApiHandler) report(c *gin.Context) {
	name := c.Param("name")

	ds, err := m.Sessions.Dataset()
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}

	table, err := reports.Build(name, ds.Trades, reports.Options{
		MinCoinTrades: m.Config.MinCoinTrades,
	})
	if err != nil {
		m.returnErrorJsonCode(err, c, 400)
		return
	}

	if c.Query("format") == "csv" {
		body, err := reports.RenderCSV(table)
		if err != nil {
			m.returnErrorJson(err, c)
			return
		}
		c.Header("Content-Disposition", "attachment; filename="+name+".csv")
		c.Data(200, "text/csv", []byte(body))
		return
	}

	c.JSON(200, table)
}
