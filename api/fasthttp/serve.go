package fasthttp

import (
	"bytes"
	"errors"
	"time"

	"github.com/romshark/ntoa/internal/consts"
	"github.com/romshark/ntoa/internal/metrics"
	"github.com/romshark/ntoa/internal/msgcodec"
	"github.com/romshark/ntoa/internal/numparse"
	"github.com/romshark/ntoa/logger"
	"github.com/romshark/ntoa/ntoa"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var (
	methodGet     = []byte("GET")
	methodPost    = []byte("POST")
	pathFormat    = []byte("/format")
	pathFormatVal = []byte("/format/")
	pathMaxChars  = []byte("/maxchars")
	pathDigit     = []byte("/digit/")
	pathStream    = []byte("/stream")
	pathMetrics   = []byte("/metrics")
	queryRadix    = []byte("radix")
	headerAllow   = []byte("Allow")
)

// Serve handles incomming requests from a fasthttp.Server
func (s *Server) Serve(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	defer s.logAccess(ctx, start)

	m := ctx.Method()
	p := ctx.Path()

	var (
		handle func(ctx *fasthttp.RequestCtx) error
		method []byte
	)

	switch {
	case bytes.Equal(p, pathFormat):
		// POST /format
		handle, method = s.handleBatch, methodPost
	case len(p) > len(pathFormatVal) &&
		bytes.HasPrefix(p, pathFormatVal):
		// GET /format/:value
		handle, method = s.handleFormat, methodGet
	case bytes.Equal(p, pathMaxChars):
		// GET /maxchars
		handle, method = s.handleMaxChars, methodGet
	case len(p) > len(pathDigit) &&
		bytes.HasPrefix(p, pathDigit):
		// GET /digit/:n
		handle, method = s.handleDigit, methodGet
	case bytes.Equal(p, pathStream):
		// GET /stream
		handle, method = s.handleStream, methodGet
	case bytes.Equal(p, pathMetrics):
		// GET /metrics
		handle, method = s.handleMetrics, methodGet
	}

	if handle == nil {
		// No handler selected
		ctx.Error(
			fasthttp.StatusMessage(fasthttp.StatusNotFound),
			fasthttp.StatusNotFound,
		)
		return
	}

	if !bytes.Equal(m, method) {
		ctx.Error(
			fasthttp.StatusMessage(fasthttp.StatusMethodNotAllowed),
			fasthttp.StatusMethodNotAllowed,
		)
		ctx.Response.Header.SetBytesKV(headerAllow, method)
		return
	}

	// Handle request
	if err := handle(ctx); err != nil {
		ctx.Error(
			fasthttp.StatusMessage(fasthttp.StatusInternalServerError),
			fasthttp.StatusInternalServerError,
		)
		s.logErr.Error(
			"handling request",
			zap.ByteString("path", p),
			zap.Error(err),
		)
		return
	}
}

func (s *Server) logAccess(ctx *fasthttp.RequestCtx, start time.Time) {
	if !s.access.Enabled(logger.Info) {
		return
	}
	s.access.Info(
		"request",
		logger.Str("method", string(ctx.Method())),
		logger.Str("path", string(ctx.Path())),
		logger.Int("status", int64(ctx.Response.StatusCode())),
		logger.Int("duration-us", time.Since(start).Microseconds()),
	)
}

func (s *Server) handleMetrics(ctx *fasthttp.RequestCtx) error {
	s.metricsHandler(ctx)
	return nil
}

// queryRadixArg returns the radix query argument, decimal by default
func queryRadixArg(ctx *fasthttp.RequestCtx) (ntoa.Radix, error) {
	a := ctx.QueryArgs().PeekBytes(queryRadix)
	if len(a) < 1 {
		return ntoa.Decimal, nil
	}
	return numparse.ParseRadix(a)
}

// writeErr writes the bad request response for client errors.
// Errors that aren't caused by the client are returned.
func (s *Server) writeErr(ctx *fasthttp.RequestCtx, err error) error {
	msg, reason := statusOf(err)
	if msg == "" {
		return err
	}
	s.metrics.Failures.WithLabelValues(reason).Inc()
	ctx.ResetBody()
	ctx.SetStatusCode(fasthttp.StatusBadRequest)
	ctx.SetBodyString(msg)
	return nil
}

// statusOf maps client errors to status messages and metric reasons
func statusOf(err error) (msg, reason string) {
	switch {
	case errors.Is(err, ntoa.ErrInvalidRadix):
		return consts.StatusMsgErrInvalidRadix, metrics.ReasonInvalidRadix
	case errors.Is(err, numparse.ErrMalformed):
		return consts.StatusMsgErrMalformedValue, metrics.ReasonMalformedValue
	case errors.Is(err, numparse.ErrOverflow):
		return consts.StatusMsgErrOverflow, metrics.ReasonMalformedValue
	case errors.Is(err, ntoa.ErrOutOfRange):
		return consts.StatusMsgErrOutOfRange, metrics.ReasonOutOfRange
	case errors.Is(err, msgcodec.ErrMalformedMessage),
		errors.Is(err, errInvalidPayload):
		return consts.StatusMsgErrInvalidPayload, metrics.ReasonInvalidPayload
	case errors.Is(err, errBatchTooLarge):
		return consts.StatusMsgErrBatchTooLarge, metrics.ReasonBatchTooLarge
	case errors.Is(err, errUnsupportedContentType):
		return consts.StatusMsgErrUnsupportedContentType, metrics.ReasonInvalidPayload
	}
	return "", ""
}

var (
	errInvalidPayload         = errors.New("invalid payload")
	errBatchTooLarge          = errors.New("batch too large")
	errUnsupportedContentType = errors.New("unsupported content type")
)

func (s *Server) countConversions(r ntoa.Radix, n int) {
	s.metrics.Conversions.WithLabelValues(ntoa.FormatInt(int64(r))).Add(float64(n))
}
