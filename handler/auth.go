package handler

import (
	"context"

	"hackportal-backend/portal"
	pb "hackportal-backend/proto"
)

type authHandler struct {
	svc *portal.Service

	pb.UnimplementedAuthServer
}

// AuthFuncOverride lets Login through without a token.
func (h *authHandler) AuthFuncOverride(ctx context.Context, fullMethodName string) (context.Context, error) {
	return ctx, nil
}

func (h *authHandler) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	token, c, err := h.svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	return &pb.LoginResponse{
		Token:  token,
		TeamId: c.TeamID.Hex(),
	}, nil
}

func NewAuthHandler(svc *portal.Service) *authHandler {
	return &authHandler{svc: svc}
}
