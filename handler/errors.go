package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"hackportal-backend/errs"
)

// Code picks the gRPC code a backend error is reported with.
func Code(err error) codes.Code {
	switch {
	case errs.IsValidation(err),
		errors.Is(err, errs.ErrUsernameRequired),
		errors.Is(err, errs.ErrPasswordRequired),
		errors.Is(err, errs.ErrInvalidID):
		return codes.InvalidArgument
	case errors.Is(err, errs.ErrInvalidCredentials),
		errors.Is(err, errs.ErrUnauthorized),
		errors.Is(err, errs.ErrJWT),
		errors.Is(err, errs.ErrTokenExpired):
		return codes.Unauthenticated
	case errors.Is(err, errs.ErrNotOrganizer):
		return codes.PermissionDenied
	case errors.Is(err, errs.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, errs.ErrTeamNameTaken),
		errors.Is(err, errs.ErrUsernameTaken):
		return codes.AlreadyExists
	case errors.Is(err, errs.ErrWindowClosed):
		return codes.FailedPrecondition
	case errors.Is(err, errs.ErrNotImplemented):
		return codes.Unimplemented
	}
	return codes.Internal
}

func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(Code(err), err.Error())
}

// ErrorInterceptor turns backend errors into gRPC statuses. The message keeps
// the E00NN text.
func ErrorInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		res, err := handler(ctx, req)
		if err != nil {
			return nil, toStatus(err)
		}
		return res, nil
	}
}
