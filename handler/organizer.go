package handler

import (
	"context"

	"go.uber.org/zap"
	"hackportal-backend/entity"
	"hackportal-backend/jwt"
	"hackportal-backend/log"
	"hackportal-backend/portal"
	pb "hackportal-backend/proto"
)

type organizerHandler struct {
	svc *portal.Service
	jwt *jwt.JWT

	pb.UnimplementedOrganizerServer
}

func (h *organizerHandler) AuthFuncOverride(ctx context.Context, fullMethodName string) (context.Context, error) {
	return h.jwt.OrganizerAuthFunc()(ctx)
}

func (h *organizerHandler) RegisterTeam(ctx context.Context, req *pb.RegisterTeamRequest) (*pb.TeamResponse, error) {
	t, err := h.svc.RegisterTeam(ctx, teamFromProto(req.Team), req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	return &pb.TeamResponse{Team: teamToProto(*t)}, nil
}

func (h *organizerHandler) SetTeamStatus(ctx context.Context, req *pb.SetTeamStatusRequest) (*pb.TeamResponse, error) {
	id, err := entity.ParseID(req.TeamId)
	if err != nil {
		return nil, err
	}

	t, err := h.svc.SetTeamStatus(ctx, id, entity.TeamStatus(req.Status))
	if err != nil {
		return nil, err
	}

	log.Logger.Info("team status changed", zap.String("teamID", req.TeamId), zap.String("status", req.Status))
	return &pb.TeamResponse{Team: teamToProto(*t)}, nil
}

func (h *organizerHandler) SetClassification(ctx context.Context, req *pb.SetClassificationRequest) (*pb.SubmissionResponse, error) {
	id, err := entity.ParseID(req.TeamId)
	if err != nil {
		return nil, err
	}

	sub, err := h.svc.SetClassification(ctx, id, entity.Classification(req.Classification))
	if err != nil {
		return nil, err
	}

	return &pb.SubmissionResponse{Submission: submissionToProto(sub)}, nil
}

func (h *organizerHandler) SetAbstract(ctx context.Context, req *pb.SetAbstractRequest) (*pb.SubmissionResponse, error) {
	id, err := entity.ParseID(req.TeamId)
	if err != nil {
		return nil, err
	}

	sub, err := h.svc.SetAbstract(ctx, id, req.Abstract)
	if err != nil {
		return nil, err
	}

	return &pb.SubmissionResponse{Submission: submissionToProto(sub)}, nil
}

func NewOrganizerHandler(svc *portal.Service) *organizerHandler {
	return &organizerHandler{
		svc: svc,
		jwt: svc.Tokens(),
	}
}
