package errors

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"
	"gorm.io/gorm"

	"github.com/oggyb/pharma-match/internal/matching"
)

// Domain is attached to every ErrorInfo detail.
const Domain = "pharma-match"

// Reasons carried in errdetails.ErrorInfo so clients can branch without
// parsing messages.
const (
	ReasonTargetUnavailable = "TARGET_UNAVAILABLE"
	ReasonQuotaExceeded     = "QUOTA_EXCEEDED"
	ReasonBlocked           = "BLOCKED"
	ReasonInvalidArgument   = "INVALID_ARGUMENT"
	ReasonNotFound          = "NOT_FOUND"
	ReasonRateLimited       = "RATE_LIMITED"
	ReasonStorage           = "STORAGE"
)

// Map converts engine/repo errors into gRPC status errors.
// Keeps service layer clean by centralizing error mapping.
func Map(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var limited *matching.RateLimitedError
	switch {
	case errors.As(err, &limited):
		return withDetails(codes.ResourceExhausted, err.Error(), ReasonRateLimited,
			&errdetails.RetryInfo{RetryDelay: durationpb.New(limited.RetryAfter)})

	case errors.Is(err, matching.ErrInvalidArgument):
		return withDetails(codes.InvalidArgument, err.Error(), ReasonInvalidArgument)

	case errors.Is(err, matching.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return withDetails(codes.NotFound, "record not found", ReasonNotFound)

	case errors.Is(err, matching.ErrTargetUnavailable):
		return withDetails(codes.FailedPrecondition, err.Error(), ReasonTargetUnavailable)

	case errors.Is(err, matching.ErrQuotaExceeded):
		return withDetails(codes.ResourceExhausted, err.Error(), ReasonQuotaExceeded)

	case errors.Is(err, matching.ErrBlocked):
		return withDetails(codes.PermissionDenied, err.Error(), ReasonBlocked)

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")

	case errors.Is(err, matching.ErrStorage):
		// storage details stay in the server log
		return withDetails(codes.Unavailable, "storage unavailable", ReasonStorage)

	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func withDetails(code codes.Code, msg, reason string, extra ...*errdetails.RetryInfo) error {
	st := status.New(code, msg)
	details := []protoadapt.MessageV1{&errdetails.ErrorInfo{Reason: reason, Domain: Domain}}
	for _, e := range extra {
		details = append(details, e)
	}
	withInfo, err := st.WithDetails(details...)
	if err != nil {
		return st.Err()
	}
	return withInfo.Err()
}

// Reason extracts the ErrorInfo reason of a status error, or "".
func Reason(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info.GetReason()
		}
	}
	return ""
}

// InvalidArgument creates a gRPC InvalidArgument error.
// Use this in service layer for bad input validation.
func InvalidArgument(msg string) error {
	return withDetails(codes.InvalidArgument, msg, ReasonInvalidArgument)
}
