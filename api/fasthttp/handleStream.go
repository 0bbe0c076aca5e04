package fasthttp

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/romshark/ntoa/internal/consts"
	"github.com/romshark/ntoa/internal/metrics"
	"github.com/romshark/ntoa/internal/numparse"
	"github.com/romshark/ntoa/ntoa"

	"github.com/fasthttp/websocket"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// StreamErrPrefix prefixes the status message of a rejected stream value
const StreamErrPrefix = consts.StreamErrPrefix

// maxStreamMsgLen limits the length of a message in a stream session,
// longer messages end the session
const maxStreamMsgLen = 64 * 1024

// handleStream handles GET /stream upgrading the connection to a
// websocket conversion session. Every text message received is a
// value to be formatted, every reply the formatted value or the
// status message of the failure prefixed by StreamErrPrefix.
func (s *Server) handleStream(ctx *fasthttp.RequestCtx) error {
	radix, err := queryRadixArg(ctx)
	if err != nil {
		return s.writeErr(ctx, err)
	}

	return s.wsUpgrader.Upgrade(ctx, func(conn *websocket.Conn) {
		s.metrics.StreamSessions.Inc()
		defer s.metrics.StreamSessions.Dec()

		pingTicker := time.NewTicker(s.wsPingInterval)
		stopPing := make(chan struct{})
		closed := uint32(0)

		var writeLock sync.Mutex
		write := func(msgType int, msg []byte) error {
			writeLock.Lock()
			defer writeLock.Unlock()
			if err := conn.SetWriteDeadline(
				time.Now().Add(s.wsWriteTimeout),
			); err != nil {
				return err
			}
			return conn.WriteMessage(msgType, msg)
		}

		// closeConn is expected to be called while s.lock is locked!
		// The hijacked connection is only closed once the handler
		// returns, hence the read loop is unblocked by a close frame
		// and an expired read deadline.
		closeConn := func() {
			if !atomic.CompareAndSwapUint32(&closed, 0, 1) {
				// Already closed
				return
			}
			pingTicker.Stop()
			close(stopPing)
			_ = conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
				time.Now().Add(s.wsWriteTimeout),
			)
			_ = conn.SetReadDeadline(time.Now())
			conn.Close()

			delete(s.wsConns, conn)
		}

		defer func() {
			s.lock.Lock()
			defer s.lock.Unlock()
			closeConn()
		}()

		s.lock.Lock()
		s.wsConns[conn] = closeConn
		s.lock.Unlock()

		go func() {
			for {
				select {
				case <-pingTicker.C:
					// Send ping control message
					if err := write(websocket.PingMessage, nil); err != nil {
						return
					}
				case <-stopPing:
					return
				}
			}
		}()

		conn.SetReadLimit(maxStreamMsgLen)
		if err := conn.SetReadDeadline(time.Time{}); err != nil {
			s.logErr.Error("disabling websocket read timeout", zap.Error(err))
		}

		in := make([]byte, consts.MaxStreamValueLen+1)
		out := make([]byte, 0, consts.MaxStreamValueLen)
		for {
			msg, tooLong, err := readStreamValue(conn, in)
			if err != nil {
				return
			}
			if tooLong {
				s.metrics.Failures.WithLabelValues(metrics.ReasonMalformedValue).Inc()
				out = append(out[:0], StreamErrPrefix...)
				out = append(out, consts.StatusMsgErrMalformedValue...)
			} else {
				out = s.formatStreamValue(out[:0], msg, radix)
			}
			if err := write(websocket.TextMessage, out); err != nil {
				return
			}
		}
	})
}

// readStreamValue reads the next text message into buf which must
// be longer than consts.MaxStreamValueLen. tooLong is true for messages
// exceeding consts.MaxStreamValueLen, their remainder is discarded.
func readStreamValue(
	conn *websocket.Conn,
	buf []byte,
) (msg []byte, tooLong bool, err error) {
	for {
		msgType, r, err := conn.NextReader()
		if err != nil {
			return nil, false, err
		}
		if msgType != websocket.TextMessage {
			continue
		}
		n, err := io.ReadFull(r, buf)
		switch err {
		case nil:
			if _, err := io.Copy(io.Discard, r); err != nil {
				return nil, false, err
			}
			return nil, true, nil
		case io.EOF, io.ErrUnexpectedEOF:
			return buf[:n], false, nil
		}
		return nil, false, err
	}
}

func (s *Server) formatStreamValue(
	dst []byte,
	msg []byte,
	radix ntoa.Radix,
) []byte {
	v, _, err := numparse.ParseInt(msg)
	if err == nil {
		var p []byte
		if p, err = s.conv.AppendInt(dst, v, radix); err == nil {
			s.countConversions(radix, 1)
			return p
		}
	}
	statusMsg, reason := statusOf(err)
	if statusMsg == "" {
		s.logErr.Error("formatting stream value", zap.Error(err))
		statusMsg, reason = consts.StatusMsgErrInternal, metrics.ReasonInternal
	}
	s.metrics.Failures.WithLabelValues(reason).Inc()
	dst = append(dst[:0], StreamErrPrefix...)
	return append(dst, statusMsg...)
}
