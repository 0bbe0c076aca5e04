package fasthttp

import (
	"sync"
	"time"

	"github.com/romshark/ntoa/internal/bufpool"
	"github.com/romshark/ntoa/internal/metrics"
	"github.com/romshark/ntoa/logger"

	"github.com/fasthttp/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"
)

// Server is an HTTP API instance
type Server struct {
	conv           Converter
	logErr         *zap.Logger
	access         *logger.Logger
	metrics        *metrics.Metrics
	metricsHandler fasthttp.RequestHandler
	pool           *bufpool.Pool
	wsUpgrader     websocket.FastHTTPUpgrader
	wsPingInterval time.Duration
	wsWriteTimeout time.Duration
	maxBatchSize   int

	lock    sync.Mutex
	wsConns map[*websocket.Conn]func()
}

// New returns a new HTTP API server instance.
// Metrics are registered with and exposed from reg, a fresh registry
// is used if reg is nil. A maxBatchSize of 0 disables the batch size limit.
func New(
	logErr *zap.Logger,
	access *logger.Logger,
	conv Converter,
	reg *prometheus.Registry,
	maxBatchSize int,
) *Server {
	if logErr == nil {
		logErr = zap.NewNop()
	}
	if access == nil {
		access = logger.NewNop()
	}
	if conv == nil {
		conv = Ntoa{}
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	return &Server{
		conv:    conv,
		logErr:  logErr,
		access:  access,
		metrics: metrics.New(reg),
		metricsHandler: fasthttpadaptor.NewFastHTTPHandler(
			promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		),
		pool:           bufpool.NewPool(4096),
		wsUpgrader:     websocket.FastHTTPUpgrader{},
		wsPingInterval: 30 * time.Second,
		wsWriteTimeout: 1 * time.Second,
		maxBatchSize:   maxBatchSize,
		wsConns:        map[*websocket.Conn]func(){},
	}
}

// Close closes all open websocket connections
func (s *Server) Close() {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, close := range s.wsConns {
		close()
	}
	s.wsConns = map[*websocket.Conn]func(){}
}
