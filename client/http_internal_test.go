package client

import (
	"testing"

	"github.com/romshark/ntoa/internal/consts"

	"github.com/stretchr/testify/require"
)

func TestErrFromStatusMsg(t *testing.T) {
	for _, tt := range []struct {
		msg    string
		expect error
	}{
		{consts.StatusMsgErrInvalidRadix, ErrInvalidRadix},
		{consts.StatusMsgErrMalformedValue, ErrMalformedValue},
		{consts.StatusMsgErrOverflow, ErrOverflow},
		{consts.StatusMsgErrOutOfRange, ErrOutOfRange},
		{consts.StatusMsgErrInvalidPayload, ErrInvalidPayload},
		{consts.StatusMsgErrBatchTooLarge, ErrBatchTooLarge},
		{consts.StatusMsgErrUnsupportedContentType, ErrUnsupportedContentType},
		{consts.StatusMsgErrInternal, ErrInternal},
	} {
		t.Run(tt.msg, func(t *testing.T) {
			require.ErrorIs(t, errFromStatusMsg([]byte(tt.msg)), tt.expect)
		})
	}

	err := errFromStatusMsg([]byte("ErrUnknown"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "ErrUnknown")
}
