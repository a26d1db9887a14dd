package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kspsusmitha/fitness-app/internal/metrics"
	log "github.com/sirupsen/logrus"
)

const (
	SessionHeader = "X-Session-ID"
	sessionCtxKey = "session_id"
)

// SessionMiddleware берёт id сеанса из заголовка или выдаёт новый
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(sessionCtxKey, id)
		c.Header(SessionHeader, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return "http:" + c.GetString(sessionCtxKey)
}

// MetricsMiddleware замеряет длительность запросов
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		m.RequestDuration.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())

		log.WithFields(log.Fields{
			"method": c.Request.Method,
			"route":  route,
			"status": status,
		}).Debug("request handled")
	}
}
