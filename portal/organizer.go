package portal

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"hackportal-backend/auth"
	"hackportal-backend/entity"
	"hackportal-backend/errs"
	"hackportal-backend/log"
)

// RegisterTeam creates a team together with the credential its members log
// in with. When the team cannot be stored the credential is removed again.
func (s *Service) RegisterTeam(ctx context.Context, team entity.Team, username, password string) (*entity.Team, error) {
	n, err := team.Normalize()
	if err != nil {
		return nil, err
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.ErrUsernameRequired
	}

	hash, err := auth.HashSecret(password)
	if err != nil {
		return nil, err
	}

	now := s.Now().UTC()
	n.ID = primitive.NewObjectID()
	n.CreatedAt = now
	n.UpdatedAt = now

	cred := &entity.Credential{
		Username:  username,
		Password:  hash,
		TeamID:    n.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Credentials.Insert(ctx, cred); err != nil {
		return nil, err
	}

	if err := s.store.Teams.Insert(ctx, &n); err != nil {
		if derr := s.store.Credentials.Delete(ctx, cred.ID); derr != nil {
			log.Logger.Error("failed removing orphan credential", zap.String("username", username), zap.Error(derr))
		}
		return nil, err
	}

	log.Logger.Info("team registered", zap.String("teamID", n.ID.Hex()), zap.String("teamName", n.TeamName))
	return &n, nil
}

func (s *Service) SetTeamStatus(ctx context.Context, teamID primitive.ObjectID, status entity.TeamStatus) (*entity.Team, error) {
	if !status.Valid() {
		return nil, errs.Invalid("status", "unknown status %q", string(status))
	}

	t, err := s.store.Teams.SetStatus(ctx, teamID, status, s.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return t, nil
}

func (s *Service) SetClassification(ctx context.Context, teamID primitive.ObjectID, c entity.Classification) (*entity.Submission, error) {
	sub, err := s.submissions.Classify(ctx, teamID, c)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return sub, nil
}

func (s *Service) SetAbstract(ctx context.Context, teamID primitive.ObjectID, abstract string) (*entity.Submission, error) {
	sub, err := s.submissions.SetAbstract(ctx, teamID, abstract)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return sub, nil
}
