package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"hackportal-backend/entity"
	"hackportal-backend/errs"
)

type memory struct {
	lock sync.RWMutex

	credentials map[primitive.ObjectID]*entity.Credential
	teams       []*entity.Team
	submissions map[primitive.ObjectID]*entity.Submission
}

// NewMemory returns a Store kept in process memory.
func NewMemory() *Store {
	m := &memory{
		credentials: make(map[primitive.ObjectID]*entity.Credential),
		submissions: make(map[primitive.ObjectID]*entity.Submission),
	}

	return &Store{
		Credentials: &memoryCredentials{m},
		Teams:       &memoryTeams{m},
		Submissions: &memorySubmissions{m},
	}
}

type memoryCredentials struct{ m *memory }

func (s *memoryCredentials) FindByUsername(_ context.Context, username string) (*entity.Credential, error) {
	s.m.lock.RLock()
	defer s.m.lock.RUnlock()

	for _, c := range s.m.credentials {
		if c.Username == username {
			cp := *c
			return &cp, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (s *memoryCredentials) Insert(_ context.Context, c *entity.Credential) error {
	s.m.lock.Lock()
	defer s.m.lock.Unlock()

	for _, v := range s.m.credentials {
		if v.Username == c.Username {
			return errs.ErrUsernameTaken
		}
	}
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}

	cp := *c
	s.m.credentials[c.ID] = &cp
	return nil
}

func (s *memoryCredentials) Delete(_ context.Context, id primitive.ObjectID) error {
	s.m.lock.Lock()
	defer s.m.lock.Unlock()

	if _, ok := s.m.credentials[id]; !ok {
		return errs.ErrNotFound
	}
	delete(s.m.credentials, id)
	return nil
}

type memoryTeams struct{ m *memory }

func copyTeam(t *entity.Team) entity.Team {
	cp := *t
	cp.Participants = append([]entity.Participant(nil), t.Participants...)
	return cp
}

func (s *memoryTeams) List(_ context.Context) ([]entity.Team, error) {
	s.m.lock.RLock()
	defer s.m.lock.RUnlock()

	res := make([]entity.Team, 0, len(s.m.teams))
	for i := len(s.m.teams) - 1; i >= 0; i-- {
		res = append(res, copyTeam(s.m.teams[i]))
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}

func (s *memoryTeams) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Team, error) {
	s.m.lock.RLock()
	defer s.m.lock.RUnlock()

	for _, t := range s.m.teams {
		if t.ID == id {
			cp := copyTeam(t)
			return &cp, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (s *memoryTeams) Insert(_ context.Context, t *entity.Team) error {
	s.m.lock.Lock()
	defer s.m.lock.Unlock()

	for _, v := range s.m.teams {
		if v.TeamName == t.TeamName {
			return errs.ErrTeamNameTaken
		}
	}
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}

	cp := copyTeam(t)
	s.m.teams = append(s.m.teams, &cp)
	return nil
}

func (s *memoryTeams) SetStatus(_ context.Context, id primitive.ObjectID, status entity.TeamStatus, now time.Time) (*entity.Team, error) {
	s.m.lock.Lock()
	defer s.m.lock.Unlock()

	for _, t := range s.m.teams {
		if t.ID == id {
			t.Status = status
			t.UpdatedAt = now
			cp := copyTeam(t)
			return &cp, nil
		}
	}
	return nil, errs.ErrNotFound
}

type memorySubmissions struct{ m *memory }

func (s *memorySubmissions) List(_ context.Context) ([]entity.Submission, error) {
	s.m.lock.RLock()
	defer s.m.lock.RUnlock()

	res := make([]entity.Submission, 0, len(s.m.submissions))
	for _, v := range s.m.submissions {
		res = append(res, *v.Clone())
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.Before(res[j].CreatedAt)
	})
	return res, nil
}

func (s *memorySubmissions) FindByTeam(_ context.Context, teamID primitive.ObjectID) (*entity.Submission, error) {
	s.m.lock.RLock()
	defer s.m.lock.RUnlock()

	v, ok := s.m.submissions[teamID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return v.Clone(), nil
}

func (s *memorySubmissions) SaveLinks(_ context.Context, teamID primitive.ObjectID, links []entity.ArtifactLink, now time.Time) (*entity.Submission, error) {
	s.m.lock.Lock()
	defer s.m.lock.Unlock()

	v, ok := s.m.submissions[teamID]
	if !ok {
		v = &entity.Submission{
			ID:        primitive.NewObjectID(),
			TeamID:    teamID,
			CreatedAt: now,
		}
		s.m.submissions[teamID] = v
	}
	v.Links = append([]entity.ArtifactLink(nil), links...)
	v.UpdatedAt = now

	return v.Clone(), nil
}

func (s *memorySubmissions) update(teamID primitive.ObjectID, now time.Time, f func(*entity.Submission)) (*entity.Submission, error) {
	s.m.lock.Lock()
	defer s.m.lock.Unlock()

	v, ok := s.m.submissions[teamID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	f(v)
	v.UpdatedAt = now
	return v.Clone(), nil
}

func (s *memorySubmissions) SetClassification(_ context.Context, teamID primitive.ObjectID, c entity.Classification, now time.Time) (*entity.Submission, error) {
	return s.update(teamID, now, func(v *entity.Submission) { v.Classification = c })
}

func (s *memorySubmissions) SetAbstract(_ context.Context, teamID primitive.ObjectID, abstract string, now time.Time) (*entity.Submission, error) {
	return s.update(teamID, now, func(v *entity.Submission) { v.Abstract = abstract })
}
