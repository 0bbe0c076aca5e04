package fasthttp

import (
	"bytes"
	"strconv"

	"github.com/romshark/ntoa/internal/consts"
	"github.com/romshark/ntoa/internal/msgcodec"
	"github.com/romshark/ntoa/internal/numparse"

	"github.com/cespare/xxhash/v2"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fastjson"
)

var (
	contentTypeJSON   = []byte(consts.ContentTypeJSON)
	contentTypeBinary = []byte(consts.ContentTypeBinary)
	contentTypeNone   = []byte(consts.ContentTypeUnspecified)
	headerETag        = []byte("ETag")
	headerIfNoneMatch = []byte("If-None-Match")
)

var parserPool fastjson.ParserPool

// handleBatch handles POST /format
func (s *Server) handleBatch(ctx *fasthttp.RequestCtx) error {
	radix, err := queryRadixArg(ctx)
	if err != nil {
		return s.writeErr(ctx, err)
	}

	values, err := s.readBatch(ctx)
	if err != nil {
		return s.writeErr(ctx, err)
	}
	s.metrics.BatchSize.Observe(float64(len(values)))

	b := s.pool.Get()
	defer b.Release()

	_ = b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			_ = b.WriteByte(',')
		}
		_ = b.WriteByte('"')
		p, err := s.conv.AppendInt(b.AvailableBuffer(), v, radix)
		if err != nil {
			return s.writeErr(ctx, err)
		}
		_, _ = b.Write(p)
		_ = b.WriteByte('"')
	}
	_ = b.WriteByte(']')
	s.countConversions(radix, len(values))

	etag := appendETag(make([]byte, 0, 20), b.Bytes())
	ctx.Response.Header.SetBytesKV(headerETag, etag)
	if bytes.Equal(ctx.Request.Header.PeekBytes(headerIfNoneMatch), etag) {
		ctx.Response.SetStatusCode(fasthttp.StatusNotModified)
		return nil
	}

	ctx.Response.SetStatusCode(fasthttp.StatusOK)
	ctx.Response.Header.SetContentType(consts.ContentTypeJSON)
	_, _ = ctx.Write(b.Bytes())
	return nil
}

// readBatch reads the values of a batch request body
// either encoded as a JSON array or in binary format.
// Bodies of unspecified content type are read as JSON.
func (s *Server) readBatch(ctx *fasthttp.RequestCtx) ([]int64, error) {
	ct := ctx.Request.Header.ContentType()
	switch {
	case len(ct) < 1,
		bytes.HasPrefix(ct, contentTypeJSON),
		bytes.HasPrefix(ct, contentTypeNone):
		return s.readBatchJSON(ctx.Request.Body())
	case bytes.HasPrefix(ct, contentTypeBinary):
		return s.readBatchBinary(ctx.Request.Body())
	}
	return nil, errUnsupportedContentType
}

func (s *Server) checkBatchSize(n int) error {
	if s.maxBatchSize > 0 && n > s.maxBatchSize {
		return errBatchTooLarge
	}
	return nil
}

func (s *Server) readBatchJSON(body []byte) ([]int64, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, errInvalidPayload
	}
	a, err := v.Array()
	if err != nil {
		return nil, errInvalidPayload
	}
	if err := s.checkBatchSize(len(a)); err != nil {
		return nil, err
	}

	values := make([]int64, len(a))
	for i, e := range a {
		switch e.Type() {
		case fastjson.TypeNumber:
			if values[i], err = e.Int64(); err != nil {
				return nil, errInvalidPayload
			}
		case fastjson.TypeString:
			// Strings carry values in prefixed notation such as "-0xff"
			if values[i], _, err = numparse.ParseInt(e.GetStringBytes()); err != nil {
				return nil, err
			}
		default:
			return nil, errInvalidPayload
		}
	}
	return values, nil
}

func (s *Server) readBatchBinary(body []byte) (values []int64, err error) {
	err = msgcodec.ScanInt64s(
		body,
		func(n int) error {
			if err := s.checkBatchSize(n); err != nil {
				return err
			}
			values = make([]int64, 0, n)
			return nil
		},
		func(v int64) error {
			values = append(values, v)
			return nil
		},
	)
	return
}

// appendETag appends the quoted xxhash64 digest of body in hex
func appendETag(dst, body []byte) []byte {
	dst = append(dst, '"')
	dst = strconv.AppendUint(dst, xxhash.Sum64(body), 16)
	return append(dst, '"')
}
