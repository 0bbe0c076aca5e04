package consts

// Status messages written to response bodies of failed requests
const (
	StatusMsgErrInvalidRadix           = "ErrInvalidRadix"
	StatusMsgErrMalformedValue         = "ErrMalformedValue"
	StatusMsgErrOverflow               = "ErrOverflow"
	StatusMsgErrOutOfRange             = "ErrOutOfRange"
	StatusMsgErrInvalidPayload         = "ErrInvalidPayload"
	StatusMsgErrBatchTooLarge          = "ErrBatchTooLarge"
	StatusMsgErrUnsupportedContentType = "ErrUnsupportedContentType"
	StatusMsgErrInternal               = "ErrInternal"
)

// Content types
const (
	ContentTypeJSON   = "application/json"
	ContentTypeBinary = "application/x-ntoa-int64s"
	ContentTypeText   = "text/plain; charset=utf-8"

	// ContentTypeUnspecified is assigned by HTTP clients
	// to bodies sent without an explicit content type
	ContentTypeUnspecified = "application/octet-stream"
)

// StreamErrPrefix prefixes the status message replied
// for a rejected value in a stream session
const StreamErrPrefix = "ERR:"

// MaxStreamValueLen is the longest value accepted in a stream session,
// longer values are rejected as malformed
const MaxStreamValueLen = 128
