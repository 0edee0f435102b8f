package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TeamStatus string

const (
	StatusRegistered TeamStatus = "registered"
	StatusApproved   TeamStatus = "approved"
	StatusRejected   TeamStatus = "rejected"
)

func (s TeamStatus) Valid() bool {
	switch s {
	case StatusRegistered, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Role string

const (
	RoleStudent      Role = "student"
	RoleProfessional Role = "professional"
)

const (
	MinTeamSize = 1
	MaxTeamSize = 4

	MinParticipantAge = 1
	MaxParticipantAge = 120
)

// Participant is owned by its Team and has no identity of its own.
type Participant struct {
	Name        string `bson:"name" json:"name"`
	Email       string `bson:"email" json:"email"`
	Age         int    `bson:"age" json:"age"`
	Phone       string `bson:"phone" json:"phone"`
	Role        Role   `bson:"student_or_professional" json:"student_or_professional"`
	Affiliation string `bson:"college_or_company_name" json:"college_or_company_name"`
	GithubURL   string `bson:"github_profile,omitempty" json:"github_profile,omitempty"`
	LinkedinURL string `bson:"linkedin_profile,omitempty" json:"linkedin_profile,omitempty"`
	DevfolioURL string `bson:"devfolio_profile,omitempty" json:"devfolio_profile,omitempty"`
}

type Team struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	TeamName        string             `bson:"team_name"`
	TeamSize        int                `bson:"team_size"`
	Selected        bool               `bson:"selected"`
	IdeaTitle       string             `bson:"idea_title"`
	IdeaDocumentURL string             `bson:"idea_document_url"`
	Participants    []Participant      `bson:"participants"`
	Status          TeamStatus         `bson:"status"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}
