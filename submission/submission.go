// Package submission owns the write rules for team submissions: the window
// gate, team ownership, link validation and full replacement of the links.
package submission

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"hackportal-backend/auth"
	"hackportal-backend/entity"
	"hackportal-backend/errs"
	"hackportal-backend/events"
	"hackportal-backend/log"
	"hackportal-backend/store"
	"hackportal-backend/window"
)

type Publisher interface {
	PublishSubmission(event *events.SubmissionEvent) error
}

type Service struct {
	store  store.Submissions
	gate   window.Gate
	events Publisher
	locks  *teamLocks

	Now func() time.Time
}

func NewService(s store.Submissions, gate window.Gate, p Publisher) *Service {
	if p == nil {
		p = events.Nop{}
	}

	return &Service{
		store:  s,
		gate:   gate,
		events: p,
		locks:  newTeamLocks(),
		Now:    time.Now,
	}
}

func (s *Service) WindowOpen() bool {
	return s.gate.IsOpen()
}

// NormalizeLinks checks every entry and returns the trimmed list. One bad
// entry rejects the whole list.
func NormalizeLinks(links []entity.ArtifactLink) ([]entity.ArtifactLink, error) {
	if len(links) == 0 {
		return nil, errs.Invalid("artifact_links", "at least one submission link is required")
	}

	res := make([]entity.ArtifactLink, 0, len(links))
	for _, l := range links {
		n, err := l.Normalize()
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

// Upsert creates or replaces teamID's links on behalf of actor. Links left out
// of the new list are dropped.
func (s *Service) Upsert(ctx context.Context, teamID primitive.ObjectID, links []entity.ArtifactLink, actor auth.Identity) (*entity.Submission, error) {
	logger := log.Logger.With(zap.String("teamID", teamID.Hex()))

	if !s.gate.IsOpen() {
		logger.Debug("submission window closed")
		return nil, errs.ErrWindowClosed
	}

	if actor.TeamID.IsZero() || actor.TeamID != teamID {
		logger.Debug("identity mismatch", zap.String("actor", actor.TeamID.Hex()))
		return nil, errs.ErrUnauthorized
	}

	normalized, err := NormalizeLinks(links)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(teamID)
	defer unlock()

	sub, err := s.store.SaveLinks(ctx, teamID, normalized, s.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.publish(logger, events.SSaved, sub)
	return sub, nil
}

// GetByTeam returns nil without an error when the team has not submitted.
func (s *Service) GetByTeam(ctx context.Context, teamID primitive.ObjectID) (*entity.Submission, error) {
	sub, err := s.store.FindByTeam(ctx, teamID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return sub, nil
}

// Classify and SetAbstract are organizer operations and ignore the window.
func (s *Service) Classify(ctx context.Context, teamID primitive.ObjectID, c entity.Classification) (*entity.Submission, error) {
	if !c.Valid() {
		return nil, errs.Invalid("classification", "unknown classification %q", string(c))
	}

	unlock := s.locks.lock(teamID)
	defer unlock()

	sub, err := s.store.SetClassification(ctx, teamID, c, s.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.publish(log.Logger.With(zap.String("teamID", teamID.Hex())), events.SClassified, sub)
	return sub, nil
}

func (s *Service) SetAbstract(ctx context.Context, teamID primitive.ObjectID, abstract string) (*entity.Submission, error) {
	unlock := s.locks.lock(teamID)
	defer unlock()

	sub, err := s.store.SetAbstract(ctx, teamID, strings.TrimSpace(abstract), s.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.publish(log.Logger.With(zap.String("teamID", teamID.Hex())), events.SAbstract, sub)
	return sub, nil
}

// publish runs after the write committed, so a broker failure is only logged.
func (s *Service) publish(logger *zap.Logger, t events.SubmissionType, sub *entity.Submission) {
	if err := s.events.PublishSubmission(events.NewSubmissionEvent(t, sub)); err != nil {
		logger.Error("failed publishing submission event", zap.Stringer("type", t), zap.Error(err))
	}
}
