package handler

import (
	"context"

	"go.uber.org/zap"
	"hackportal-backend/auth"
	"hackportal-backend/errs"
	"hackportal-backend/jwt"
	"hackportal-backend/log"
	"hackportal-backend/portal"
	pb "hackportal-backend/proto"
)

type submissionsHandler struct {
	svc *portal.Service
	jwt *jwt.JWT

	pb.UnimplementedSubmissionsServer
}

var publicSubmissionMethods = map[string]bool{
	"/" + pb.SubmissionsService + "/ListSubmissions": true,
	"/" + pb.SubmissionsService + "/GetRankings":     true,
}

func (h *submissionsHandler) AuthFuncOverride(ctx context.Context, fullMethodName string) (context.Context, error) {
	if publicSubmissionMethods[fullMethodName] {
		return ctx, nil
	}

	return h.jwt.TeamAuthFunc()(ctx)
}

func identity(ctx context.Context) (auth.Identity, error) {
	claims, ok := jwt.GetClaimsFromCtx(ctx)
	if !ok {
		return auth.Identity{}, errs.ErrUnauthorized
	}
	return claims.Identity()
}

func (h *submissionsHandler) ListSubmissions(ctx context.Context, _ *pb.Empty) (*pb.ListSubmissionsResponse, error) {
	entries, err := h.svc.PublicSubmissions(ctx)
	if err != nil {
		return nil, err
	}

	res := &pb.ListSubmissionsResponse{Teams: make([]*pb.PublicTeam, 0, len(entries))}
	for _, e := range entries {
		res.Teams = append(res.Teams, publicTeamToProto(e))
	}
	return res, nil
}

func (h *submissionsHandler) GetRankings(ctx context.Context, _ *pb.Empty) (*pb.RankingsResponse, error) {
	s, err := h.svc.Rankings(ctx)
	if err != nil {
		return nil, err
	}

	res := &pb.RankingsResponse{
		Winners:   make([]*pb.RankedTeam, 0, len(s.Winners)),
		Finalists: make([]*pb.PublicTeam, 0, len(s.Finalists)),
		Others:    make([]*pb.PublicTeam, 0, len(s.Others)),
	}
	for _, w := range s.Winners {
		res.Winners = append(res.Winners, &pb.RankedTeam{Rank: int32(w.Rank), Team: publicTeamToProto(w.PublicEntry)})
	}
	for _, e := range s.Finalists {
		res.Finalists = append(res.Finalists, publicTeamToProto(e))
	}
	for _, e := range s.Others {
		res.Others = append(res.Others, publicTeamToProto(e))
	}
	return res, nil
}

func (h *submissionsHandler) GetDashboard(ctx context.Context, _ *pb.Empty) (*pb.DashboardResponse, error) {
	actor, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	d, err := h.svc.Dashboard(ctx, actor)
	if err != nil {
		return nil, err
	}

	links := make(map[string]string, len(d.Links))
	for c, url := range d.Links {
		links[string(c)] = url
	}

	return &pb.DashboardResponse{
		Team:       teamToProto(d.Team),
		Submission: submissionToProto(d.Submission),
		WindowOpen: d.WindowOpen,
		Links:      links,
	}, nil
}

func (h *submissionsHandler) SaveSubmission(ctx context.Context, req *pb.SaveSubmissionRequest) (*pb.SubmissionResponse, error) {
	actor, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	logger := log.Logger.With(zap.String("teamID", actor.TeamID.Hex()))

	sub, err := h.svc.SaveSubmission(ctx, actor, linksFromProto(req.Links))
	if err != nil {
		logger.Debug("submission rejected", zap.Error(err))
		return nil, err
	}

	logger.Info("submission saved", zap.Int("links", len(sub.Links)))
	return &pb.SubmissionResponse{Submission: submissionToProto(sub)}, nil
}

func NewSubmissionsHandler(svc *portal.Service) *submissionsHandler {
	return &submissionsHandler{
		svc: svc,
		jwt: svc.Tokens(),
	}
}
