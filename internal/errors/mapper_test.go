package errors_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	svcErr "github.com/oggyb/pharma-match/internal/errors"
	"github.com/oggyb/pharma-match/internal/matching"
)

func TestMap_Codes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   codes.Code
		reason string
	}{
		{"invalid", fmt.Errorf("%w: bad kind", matching.ErrInvalidArgument), codes.InvalidArgument, svcErr.ReasonInvalidArgument},
		{"not found", matching.ErrNotFound, codes.NotFound, svcErr.ReasonNotFound},
		{"gorm not found", gorm.ErrRecordNotFound, codes.NotFound, svcErr.ReasonNotFound},
		{"unavailable", matching.ErrTargetUnavailable, codes.FailedPrecondition, svcErr.ReasonTargetUnavailable},
		{"quota", matching.ErrQuotaExceeded, codes.ResourceExhausted, svcErr.ReasonQuotaExceeded},
		{"blocked", matching.ErrBlocked, codes.PermissionDenied, svcErr.ReasonBlocked},
		{"storage", &matching.StorageError{Op: "record swipe", Err: errors.New("disk full")}, codes.Unavailable, svcErr.ReasonStorage},
		{"deadline", &matching.StorageError{Op: "get actor", Err: context.DeadlineExceeded}, codes.DeadlineExceeded, ""},
		{"canceled", context.Canceled, codes.Canceled, ""},
		{"other", errors.New("boom"), codes.Internal, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svcErr.Map(tt.err)
			assert.Equal(t, tt.code, status.Code(err))
			assert.Equal(t, tt.reason, svcErr.Reason(err))
		})
	}
}

func TestMap_StorageHidesCause(t *testing.T) {
	err := svcErr.Map(&matching.StorageError{Op: "record swipe", Err: errors.New("password=hunter2")})
	assert.NotContains(t, status.Convert(err).Message(), "hunter2")
}

func TestMap_RateLimitedCarriesRetryInfo(t *testing.T) {
	err := svcErr.Map(&matching.RateLimitedError{RetryAfter: 7 * time.Second})
	st := status.Convert(err)
	require.Equal(t, codes.ResourceExhausted, st.Code())
	assert.Equal(t, svcErr.ReasonRateLimited, svcErr.Reason(err))

	var retry *errdetails.RetryInfo
	for _, d := range st.Details() {
		if r, ok := d.(*errdetails.RetryInfo); ok {
			retry = r
		}
	}
	require.NotNil(t, retry)
	assert.Equal(t, 7*time.Second, retry.GetRetryDelay().AsDuration())
}

func TestMap_PassesStatusThrough(t *testing.T) {
	in := status.Error(codes.Aborted, "aborted")
	assert.Equal(t, in, svcErr.Map(in))
	assert.NoError(t, svcErr.Map(nil))
}
