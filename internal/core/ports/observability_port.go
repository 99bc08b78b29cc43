package ports

import (
	"time"

	"github.com/gin-gonic/gin"
)

type LoggerPort interface {
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

type MetricsPort interface {
	RecordMetrics(c *gin.Context, start time.Time)
}
