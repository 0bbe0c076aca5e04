package fasthttp

import (
	"github.com/romshark/ntoa/internal/consts"
	"github.com/romshark/ntoa/internal/numparse"
	"github.com/romshark/ntoa/ntoa"

	"github.com/valyala/fasthttp"
)

// handleFormat handles GET /format/:value
func (s *Server) handleFormat(ctx *fasthttp.RequestCtx) error {
	radix, err := queryRadixArg(ctx)
	if err != nil {
		return s.writeErr(ctx, err)
	}

	v, _, err := numparse.ParseInt(ctx.Path()[len(pathFormatVal):])
	if err != nil {
		return s.writeErr(ctx, err)
	}

	b := s.pool.Get()
	defer b.Release()

	p, err := s.conv.AppendInt(b.AvailableBuffer(), v, radix)
	if err != nil {
		return s.writeErr(ctx, err)
	}
	s.countConversions(radix, 1)

	ctx.Response.SetStatusCode(fasthttp.StatusOK)
	ctx.Response.Header.SetContentType(consts.ContentTypeText)
	_, _ = ctx.Write(p)
	return nil
}

// handleMaxChars handles GET /maxchars
func (s *Server) handleMaxChars(ctx *fasthttp.RequestCtx) error {
	radix, err := queryRadixArg(ctx)
	if err != nil {
		return s.writeErr(ctx, err)
	}
	n, err := s.conv.MaxChars(radix)
	if err != nil {
		return s.writeErr(ctx, err)
	}

	b := s.pool.Get()
	defer b.Release()

	_, _ = b.WriteString(`{"radix":`)
	if err := b.AppendInt(int64(radix), ntoa.Decimal); err != nil {
		return err
	}
	_, _ = b.WriteString(`,"max-chars":`)
	if err := b.AppendInt(int64(n), ntoa.Decimal); err != nil {
		return err
	}
	_ = b.WriteByte('}')

	ctx.Response.SetStatusCode(fasthttp.StatusOK)
	ctx.Response.Header.SetContentType(consts.ContentTypeJSON)
	_, _ = ctx.Write(b.Bytes())
	return nil
}

// handleDigit handles GET /digit/:n
func (s *Server) handleDigit(ctx *fasthttp.RequestCtx) error {
	n, _, err := numparse.ParseInt(ctx.Path()[len(pathDigit):])
	if err != nil {
		return s.writeErr(ctx, err)
	}
	if n < -1<<31 || n > 1<<31-1 {
		// Out of range for any platform int
		n = -1
	}
	c, err := s.conv.DigitChar(int(n))
	if err != nil {
		return s.writeErr(ctx, err)
	}

	ctx.Response.SetStatusCode(fasthttp.StatusOK)
	ctx.Response.Header.SetContentType(consts.ContentTypeText)
	ctx.Response.SetBody([]byte{c})
	return nil
}
