package api

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/navneetshukla17/primetrade-ai-analysis/internal/config"
	"github.com/navneetshukla17/primetrade-ai-analysis/internal/session"
)

type ApiHandler struct {
	Sessions *session.Manager
	Config   *config.Config
	Logger   *zap.SugaredLogger
}

func (m ApiHandler) StartApi(port int) error {
	router := m.Router()
	return router.Run(fmt.Sprintf(":%d", port))
}

// Router builds the gin engine; split out from StartApi so tests can
// drive it with httptest.
func (m ApiHandler) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "trader sentiment analysis api"})
	})
	router.POST("/summary", m.summary)
	router.POST("/trades", m.trades)
	router.POST("/aggregate", m.aggregate)
	router.POST("/traders", m.traders)
	router.GET("/filters", m.filterOptions)
	router.GET("/reports", m.listReports)
	router.GET("/reports/:name", m.report)

	return router
}

func (m ApiHandler) returnErrorJson(err error, c *gin.Context) {
	m.returnErrorJsonCode(err, c, 500)
}

func (m ApiHandler) returnErrorJsonCode(err error, c *gin.Context, code int) {
	m.Logger.Errorw("request failed", "route", c.Request.URL.Path, "error", err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	requestID := uuid.New()
	ctx.Set("requestID", requestID.String())

	start := time.Now()
	ctx.Next()

	m.Logger.Infow("request",
		"requestID", requestID.String(),
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds())
}
