package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nguyentantai21042004/voice-notes/internal/metrics"
)

func (s *implServer) routes(gatherer prometheus.Gatherer) {
	s.engine.Use(s.recovery(), s.requestID(), s.requestLogger())

	s.engine.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	if gatherer != nil {
		s.engine.GET("/metrics", gin.WrapH(metrics.Handler(gatherer)))
	}

	t := s.engine.Group("/transcriptions")
	t.GET("", s.listTranscriptions)
	t.POST("", s.createTranscription)
	t.GET("/:id", s.getTranscription)
	t.DELETE("/:id", s.deleteTranscription)
	t.GET("/:id/summary", s.getSummary)

	s.engine.GET("/summary/:id", s.getSummary)
}
