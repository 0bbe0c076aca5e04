package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/romshark/ntoa/internal/consts"
	"github.com/romshark/ntoa/ntoa"

	"github.com/fasthttp/websocket"
	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const (
	methodGet     = "GET"
	methodPost    = "POST"
	pathFormat    = "/format"
	pathFormatVal = "/format/"
	pathMaxChars  = "/maxchars"
	pathStream    = "/stream"
	queryRadix    = "radix"
)

var streamErrPrefix = []byte(consts.StreamErrPrefix)

// Make sure *HTTP implements Implementer
var _ Implementer = new(HTTP)

// HTTP is a format service client communicating over HTTP
type HTTP struct {
	host     string
	logErr   *zap.Logger
	clt      *fasthttp.Client
	wsDialer *websocket.Dialer
}

// NewHTTP creates a new HTTP client
func NewHTTP(
	host string,
	logErr *zap.Logger,
	clt *fasthttp.Client,
	wsDialer *websocket.Dialer,
) *HTTP {
	if logErr == nil {
		logErr = zap.NewNop()
	}
	if clt == nil {
		clt = &fasthttp.Client{}
	}
	if wsDialer == nil {
		wsDialer = websocket.DefaultDialer
	}
	return &HTTP{
		host:     host,
		logErr:   logErr,
		clt:      clt,
		wsDialer: wsDialer,
	}
}

// Format implements Implementer.Format
func (c *HTTP) Format(
	ctx context.Context,
	v int64,
	r ntoa.Radix,
) (string, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetHost(c.host)
	req.Header.SetMethod(methodGet)
	req.URI().SetPath(pathFormatVal + ntoa.FormatInt(v))
	req.URI().QueryArgs().Set(queryRadix, ntoa.FormatInt(int64(r)))

	if err := c.do(ctx, req, resp); err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}

// FormatBatch implements Implementer.FormatBatch
func (c *HTTP) FormatBatch(
	ctx context.Context,
	r ntoa.Radix,
	values []int64,
) ([]string, error) {
	body, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetHost(c.host)
	req.Header.SetMethod(methodPost)
	req.Header.SetContentType(consts.ContentTypeJSON)
	req.URI().SetPath(pathFormat)
	req.URI().QueryArgs().Set(queryRadix, ntoa.FormatInt(int64(r)))
	req.SetBody(body)

	if err := c.do(ctx, req, resp); err != nil {
		return nil, err
	}

	var s []string
	if err := json.Unmarshal(resp.Body(), &s); err != nil {
		return nil, fmt.Errorf("unmarshaling response body: %w", err)
	}
	if len(s) != len(values) {
		return nil, fmt.Errorf(
			"unexpected number of results: %d, expected %d",
			len(s), len(values),
		)
	}
	return s, nil
}

// MaxChars implements Implementer.MaxChars
func (c *HTTP) MaxChars(ctx context.Context, r ntoa.Radix) (int, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetHost(c.host)
	req.Header.SetMethod(methodGet)
	req.URI().SetPath(pathMaxChars)
	req.URI().QueryArgs().Set(queryRadix, ntoa.FormatInt(int64(r)))

	if err := c.do(ctx, req, resp); err != nil {
		return 0, err
	}

	var re struct {
		Radix    int `json:"radix"`
		MaxChars int `json:"max-chars"`
	}
	if err := json.Unmarshal(resp.Body(), &re); err != nil {
		return 0, fmt.Errorf("unmarshaling response body: %w", err)
	}
	return re.MaxChars, nil
}

// Stream implements Implementer.Stream
func (c *HTTP) Stream(
	ctx context.Context,
	r ntoa.Radix,
	values []string,
	onResult func(i int, result string, err error),
) error {
	u := url.URL{
		Scheme:   "ws",
		Host:     c.host,
		Path:     pathStream,
		RawQuery: queryRadix + "=" + ntoa.FormatInt(int64(r)),
	}
	conn, resp, err := c.wsDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		if resp != nil && resp.StatusCode == fasthttp.StatusBadRequest {
			body, _ := io.ReadAll(resp.Body)
			return errFromStatusMsg(body)
		}
		return fmt.Errorf("dialing websocket: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			c.logErr.Error("closing websocket connection", zap.Error(err))
		}
	}()

	// Cancel pending reads and writes when the context is done
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-stop:
		}
	}()

	for i, v := range values {
		if err := conn.WriteMessage(
			websocket.TextMessage,
			[]byte(v),
		); err != nil {
			return streamErr(ctx, "writing", err)
		}
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return streamErr(ctx, "reading", err)
		}
		if bytes.HasPrefix(msg, streamErrPrefix) {
			onResult(i, "", errFromStatusMsg(msg[len(streamErrPrefix):]))
			continue
		}
		onResult(i, string(msg), nil)
	}

	if err := conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	); err != nil {
		return streamErr(ctx, "closing", err)
	}
	return nil
}

func streamErr(ctx context.Context, op string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return fmt.Errorf("%s websocket message: %w", op, err)
}

// do performs req respecting the deadline of ctx
// and maps error responses to errors.
func (c *HTTP) do(
	ctx context.Context,
	req *fasthttp.Request,
	resp *fasthttp.Response,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var err error
	if d, ok := ctx.Deadline(); ok {
		err = c.clt.DoDeadline(req, resp, d)
	} else {
		err = c.clt.Do(req, resp)
	}
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}

	switch resp.StatusCode() {
	case fasthttp.StatusOK:
		return nil
	case fasthttp.StatusBadRequest:
		return errFromStatusMsg(resp.Body())
	}
	return fmt.Errorf("unexpected status code: %d", resp.StatusCode())
}

// errFromStatusMsg maps the status message of a bad request
// to the corresponding error.
func errFromStatusMsg(msg []byte) error {
	switch string(msg) {
	case consts.StatusMsgErrInvalidRadix:
		return ErrInvalidRadix
	case consts.StatusMsgErrMalformedValue:
		return ErrMalformedValue
	case consts.StatusMsgErrOverflow:
		return ErrOverflow
	case consts.StatusMsgErrOutOfRange:
		return ErrOutOfRange
	case consts.StatusMsgErrInvalidPayload:
		return ErrInvalidPayload
	case consts.StatusMsgErrBatchTooLarge:
		return ErrBatchTooLarge
	case consts.StatusMsgErrUnsupportedContentType:
		return ErrUnsupportedContentType
	case consts.StatusMsgErrInternal:
		return ErrInternal
	}
	return fmt.Errorf("unexpected client-side error: %s", string(msg))
}
