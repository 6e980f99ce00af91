package errors

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Map converts service/repo errors into gRPC-friendly status errors.
// Storage causes are not leaked to callers.
func Map(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	msg := Message(err)
	switch KindOf(err) {
	case InvalidValue:
		return status.Error(codes.InvalidArgument, msg)
	case AlreadyExists:
		return status.Error(codes.AlreadyExists, msg)
	case NotFound:
		return status.Error(codes.NotFound, msg)
	case InvalidTransition:
		return status.Error(codes.FailedPrecondition, msg)
	default:
		return status.Error(codes.Internal, msg)
	}
}

// HTTPStatus maps an error onto the REST status code. Duplicates and illegal
// transitions are client errors and share 400 with invalid input.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}

	switch KindOf(err) {
	case InvalidValue, AlreadyExists, InvalidTransition:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
