// Package portal is the application layer shared by the gRPC and REST
// transports.
package portal

import (
	"context"
	"time"

	"go.uber.org/zap"
	"hackportal-backend/auth"
	"hackportal-backend/cache"
	"hackportal-backend/entity"
	"hackportal-backend/errs"
	"hackportal-backend/jwt"
	"hackportal-backend/log"
	"hackportal-backend/ranking"
	"hackportal-backend/resolver"
	"hackportal-backend/store"
	"hackportal-backend/submission"
)

type Service struct {
	store       *store.Store
	auth        *auth.Authenticator
	tokens      *jwt.JWT
	submissions *submission.Service
	cache       cache.Cache
	winners     []string

	Now func() time.Time
}

func NewService(s *store.Store, subs *submission.Service, tokens *jwt.JWT, c cache.Cache, winners []string) *Service {
	if c == nil {
		c = cache.Nop{}
	}

	return &Service{
		store:       s,
		auth:        auth.NewAuthenticator(s.Credentials),
		tokens:      tokens,
		submissions: subs,
		cache:       c,
		winners:     append([]string(nil), winners...),
		Now:         time.Now,
	}
}

func (s *Service) Tokens() *jwt.JWT {
	return s.tokens
}

// Login checks the credentials and issues a team token.
func (s *Service) Login(ctx context.Context, username, password string) (string, *entity.Credential, error) {
	c, err := s.auth.Authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.NewTeamToken(c)
	if err != nil {
		return "", nil, err
	}

	log.Logger.Info("team logged in", zap.String("teamID", c.TeamID.Hex()), zap.String("username", c.Username))
	return token, c, nil
}

// WindowOpen reports whether teams may currently write their submissions.
func (s *Service) WindowOpen() bool {
	return s.submissions.WindowOpen()
}

func (s *Service) views(ctx context.Context) ([]resolver.TeamView, error) {
	teams, err := s.store.Teams.List(ctx)
	if err != nil {
		return nil, err
	}

	subs, err := s.store.Submissions.List(ctx)
	if err != nil {
		return nil, err
	}

	return resolver.Join(teams, subs), nil
}

// cached reads key from c, or runs build on a miss and stores the result.
// The key is qualified with the generation seen before build, so a value
// built across an Invalidate is never served. Cache failures are logged and
// fall through to build.
func cached[T any](ctx context.Context, c cache.Cache, key string, build func() (T, error)) (T, error) {
	gen, err := c.Generation(ctx)
	if err != nil {
		log.Logger.Warn("cache generation unavailable", zap.String("key", key), zap.Error(err))
		return build()
	}
	key = cache.Versioned(key, gen)

	var hit T
	ok, err := c.Get(ctx, key, &hit)
	if err != nil {
		log.Logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}
	if ok && err == nil {
		return hit, nil
	}

	v, err := build()
	if err != nil {
		return v, err
	}

	if err := c.Set(ctx, key, v); err != nil {
		log.Logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return v, nil
}

// PublicSubmissions lists every team that has submitted, newest team first.
func (s *Service) PublicSubmissions(ctx context.Context) ([]resolver.PublicEntry, error) {
	return cached(ctx, s.cache, cache.PublicKey, func() ([]resolver.PublicEntry, error) {
		views, err := s.views(ctx)
		if err != nil {
			return nil, err
		}
		return resolver.Render(views), nil
	})
}

func (s *Service) Rankings(ctx context.Context) (ranking.Standings, error) {
	return cached(ctx, s.cache, cache.RankingsKey, func() (ranking.Standings, error) {
		views, err := s.views(ctx)
		if err != nil {
			return ranking.Standings{}, err
		}
		return ranking.Partition(views, s.winners).Render(), nil
	})
}

// Dashboard is available whether or not the team has submitted and whether or
// not the window is open.
func (s *Service) Dashboard(ctx context.Context, actor auth.Identity) (*resolver.Dashboard, error) {
	team, err := s.store.Teams.FindByID(ctx, actor.TeamID)
	if err != nil {
		return nil, err
	}

	sub, err := s.submissions.GetByTeam(ctx, actor.TeamID)
	if err != nil {
		return nil, err
	}

	d := resolver.NewDashboard(*team, sub, s.submissions.WindowOpen())
	return &d, nil
}

// SaveSubmission replaces the caller's links. The caller's team must exist.
func (s *Service) SaveSubmission(ctx context.Context, actor auth.Identity, links []entity.ArtifactLink) (*entity.Submission, error) {
	if !s.WindowOpen() {
		return nil, errs.ErrWindowClosed
	}
	if _, err := s.store.Teams.FindByID(ctx, actor.TeamID); err != nil {
		return nil, err
	}

	sub, err := s.submissions.Upsert(ctx, actor.TeamID, links, actor)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return sub, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Logger.Error("failed invalidating public cache", zap.Error(err))
	}
}
