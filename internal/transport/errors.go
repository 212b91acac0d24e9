package transport

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/goodnatureofminers/nameregistry-backend/internal/registry"
)

// reasonKey is the trailer that carries the registry rejection code.
const reasonKey = "reason"

func grpcCode(reason string) codes.Code {
	switch reason {
	case registry.ErrRateLimited.Code:
		return codes.ResourceExhausted
	case registry.ErrGasPriceTooHigh.Code, registry.ErrNameTooShort.Code:
		return codes.InvalidArgument
	case registry.ErrUnauthorized.Code:
		return codes.PermissionDenied
	default:
		return codes.FailedPrecondition
	}
}

// toStatus converts a registry error to a gRPC status and attaches the
// rejection code as a trailer.
func toStatus(ctx context.Context, err error) error {
	reason := registry.Code(err)
	if reason == "" {
		switch {
		case errors.Is(err, context.Canceled):
			return status.Error(codes.Canceled, err.Error())
		case errors.Is(err, context.DeadlineExceeded):
			return status.Error(codes.DeadlineExceeded, err.Error())
		default:
			return status.Error(codes.Internal, "internal error")
		}
	}

	// SetTrailer fails outside a server stream, e.g. when the handler is called directly.
	_ = grpc.SetTrailer(ctx, metadata.Pairs(reasonKey, reason))
	return status.Error(grpcCode(reason), err.Error())
}
