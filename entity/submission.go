package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Classification is set by organizers. The zero value means unset.
type Classification string

const (
	ClassificationUnset Classification = ""
	Finalist            Classification = "finalist"
	NotFinalist         Classification = "not-finalist"
)

func (c Classification) Valid() bool {
	switch c {
	case ClassificationUnset, Finalist, NotFinalist:
		return true
	}
	return false
}

type Submission struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	TeamID         primitive.ObjectID `bson:"team_id"`
	Links          []ArtifactLink     `bson:"submission_document_url"`
	Classification Classification     `bson:"status,omitempty"`
	Abstract       string             `bson:"abstract,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

// Clone returns a copy that shares no slices with s.
func (s *Submission) Clone() *Submission {
	if s == nil {
		return nil
	}

	c := *s
	c.Links = append([]ArtifactLink(nil), s.Links...)
	return &c
}
