package handler

import (
	"context"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_auth "github.com/grpc-ecosystem/go-grpc-middleware/auth"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"google.golang.org/grpc"
	"hackportal-backend/errs"
	"hackportal-backend/log"
	"hackportal-backend/portal"
	pb "hackportal-backend/proto"
)

// denyAll is used for services that do not override authentication.
func denyAll(context.Context) (context.Context, error) {
	return nil, errs.ErrUnauthorized
}

// NewServer builds a gRPC server with every portal service registered.
func NewServer(svc *portal.Service, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		pb.ServerCodec(),
		grpc.UnaryInterceptor(grpc_middleware.ChainUnaryServer(
			grpc_ctxtags.UnaryServerInterceptor(),
			grpc_zap.UnaryServerInterceptor(log.Logger),
			grpc_recovery.UnaryServerInterceptor(),
			ErrorInterceptor(),
			grpc_auth.UnaryServerInterceptor(denyAll),
		)),
	}, opts...)

	s := grpc.NewServer(opts...)
	pb.RegisterAuthServer(s, NewAuthHandler(svc))
	pb.RegisterSubmissionsServer(s, NewSubmissionsHandler(svc))
	pb.RegisterOrganizerServer(s, NewOrganizerHandler(svc))
	return s
}
