package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// EnrollmentOps 选课操作，op: enroll | drop，result: ok | conflict | not_found | error
	EnrollmentOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quintet_enrollment_operations_total",
			Help: "Enrollment create/drop operations by outcome",
		},
		[]string{"op", "result"},
	)

	GradesRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quintet_grades_recorded_total",
			Help: "Evaluation scores written",
		},
	)

	// CascadeRows 级联删除每张表删除的行数
	CascadeRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quintet_cascade_deleted_rows_total",
			Help: "Rows removed by cascading deletes",
		},
		[]string{"plan", "table"},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(EnrollmentOps)
		prometheus.MustRegister(GradesRecorded)
		prometheus.MustRegister(CascadeRows)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
