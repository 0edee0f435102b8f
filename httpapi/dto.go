package httpapi

import (
	"time"

	"hackportal-backend/entity"
)

type teamJSON struct {
	ID              string               `json:"_id,omitempty"`
	TeamName        string               `json:"team_name"`
	TeamSize        int                  `json:"team_size"`
	IdeaTitle       string               `json:"idea_title"`
	IdeaDocumentURL string               `json:"idea_document_url"`
	Participants    []entity.Participant `json:"participants"`
	Status          entity.TeamStatus    `json:"status,omitempty"`
	Selected        bool                 `json:"selected"`
	CreatedAt       *time.Time           `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time           `json:"updatedAt,omitempty"`
}

func teamToJSON(t entity.Team) teamJSON {
	return teamJSON{
		ID:              t.ID.Hex(),
		TeamName:        t.TeamName,
		TeamSize:        t.TeamSize,
		IdeaTitle:       t.IdeaTitle,
		IdeaDocumentURL: t.IdeaDocumentURL,
		Participants:    t.Participants,
		Status:          t.Status,
		Selected:        t.Selected,
		CreatedAt:       &t.CreatedAt,
		UpdatedAt:       &t.UpdatedAt,
	}
}

func (t teamJSON) entity() entity.Team {
	return entity.Team{
		TeamName:        t.TeamName,
		TeamSize:        t.TeamSize,
		IdeaTitle:       t.IdeaTitle,
		IdeaDocumentURL: t.IdeaDocumentURL,
		Participants:    t.Participants,
		Selected:        t.Selected,
	}
}

type submissionJSON struct {
	ID             string                `json:"_id"`
	TeamID         string                `json:"team_id"`
	Links          []entity.ArtifactLink `json:"submission_document_url"`
	Classification entity.Classification `json:"status,omitempty"`
	Abstract       string                `json:"abstract,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

func submissionToJSON(s *entity.Submission) *submissionJSON {
	if s == nil {
		return nil
	}

	return &submissionJSON{
		ID:             s.ID.Hex(),
		TeamID:         s.TeamID.Hex(),
		Links:          s.Links,
		Classification: s.Classification,
		Abstract:       s.Abstract,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type saveSubmissionRequest struct {
	Submission []entity.ArtifactLink `json:"submission"`
}

type registerTeamRequest struct {
	Team     teamJSON `json:"team"`
	Username string   `json:"username"`
	Password string   `json:"password"`
}

type statusRequest struct {
	Status entity.TeamStatus `json:"status"`
}

type classificationRequest struct {
	Classification entity.Classification `json:"classification"`
}

type abstractRequest struct {
	Abstract string `json:"abstract"`
}
