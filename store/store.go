// Package store holds the persistence contracts for credentials, teams and
// submissions, with MongoDB and in-memory implementations. Lookups that find
// nothing return errs.ErrNotFound.
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"hackportal-backend/entity"
)

type Credentials interface {
	FindByUsername(ctx context.Context, username string) (*entity.Credential, error)
	// Insert fails with errs.ErrUsernameTaken when the username exists.
	Insert(ctx context.Context, c *entity.Credential) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type Teams interface {
	// List returns every team, newest first.
	List(ctx context.Context) ([]entity.Team, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Team, error)
	// Insert fails with errs.ErrTeamNameTaken when the name exists.
	Insert(ctx context.Context, t *entity.Team) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status entity.TeamStatus, now time.Time) (*entity.Team, error)
}

type Submissions interface {
	List(ctx context.Context) ([]entity.Submission, error)
	FindByTeam(ctx context.Context, teamID primitive.ObjectID) (*entity.Submission, error)
	// SaveLinks creates the team's submission or overwrites its links. The
	// organizer fields and creation time of an existing record are kept.
	SaveLinks(ctx context.Context, teamID primitive.ObjectID, links []entity.ArtifactLink, now time.Time) (*entity.Submission, error)
	SetClassification(ctx context.Context, teamID primitive.ObjectID, c entity.Classification, now time.Time) (*entity.Submission, error)
	SetAbstract(ctx context.Context, teamID primitive.ObjectID, abstract string, now time.Time) (*entity.Submission, error)
}

type Store struct {
	Credentials Credentials
	Teams       Teams
	Submissions Submissions
}
