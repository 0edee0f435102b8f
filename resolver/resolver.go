// Package resolver joins teams with their submissions and shapes the public
// and dashboard views.
package resolver

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"hackportal-backend/entity"
)

type TeamView struct {
	Team       entity.Team
	Submission *entity.Submission
}

func (v TeamView) HasSubmission() bool {
	return v.Submission != nil
}

// Join attaches to every team the first submission carrying its id. Team
// order is kept.
func Join(teams []entity.Team, subs []entity.Submission) []TeamView {
	byTeam := make(map[primitive.ObjectID]*entity.Submission, len(subs))
	for i := range subs {
		if _, ok := byTeam[subs[i].TeamID]; ok {
			continue
		}
		byTeam[subs[i].TeamID] = &subs[i]
	}

	views := make([]TeamView, 0, len(teams))
	for _, t := range teams {
		views = append(views, TeamView{Team: t, Submission: byTeam[t.ID].Clone()})
	}
	return views
}

// Public drops every team that has not submitted.
func Public(views []TeamView) []TeamView {
	res := make([]TeamView, 0, len(views))
	for _, v := range views {
		if v.HasSubmission() {
			res = append(res, v)
		}
	}
	return res
}

type PublicParticipant struct {
	Name        string `json:"name"`
	GithubURL   string `json:"github_profile,omitempty"`
	LinkedinURL string `json:"linkedin_profile,omitempty"`
	Affiliation string `json:"college_or_company_name,omitempty"`
}

type PublicSubmission struct {
	ArtifactLinks  []entity.ArtifactLink `json:"submission_document_url"`
	CreatedAt      time.Time             `json:"createdAt"`
	Abstract       string                `json:"abstract,omitempty"`
	Classification entity.Classification `json:"status,omitempty"`
}

// PublicEntry is what anonymous visitors see for one team. Contact details
// never leave the backend.
type PublicEntry struct {
	ID              string              `json:"_id"`
	TeamName        string              `json:"team_name"`
	IdeaTitle       string              `json:"idea_title"`
	IdeaDocumentURL string              `json:"idea_document_url"`
	Participants    []PublicParticipant `json:"participants"`
	Submission      PublicSubmission    `json:"submission"`
}

// Entry renders v. It must have a submission.
func Entry(v TeamView) PublicEntry {
	participants := make([]PublicParticipant, 0, len(v.Team.Participants))
	for _, p := range v.Team.Participants {
		participants = append(participants, PublicParticipant{
			Name:        p.Name,
			GithubURL:   p.GithubURL,
			LinkedinURL: p.LinkedinURL,
			Affiliation: p.Affiliation,
		})
	}

	return PublicEntry{
		ID:              v.Team.ID.Hex(),
		TeamName:        v.Team.TeamName,
		IdeaTitle:       v.Team.IdeaTitle,
		IdeaDocumentURL: v.Team.IdeaDocumentURL,
		Participants:    participants,
		Submission: PublicSubmission{
			ArtifactLinks:  append([]entity.ArtifactLink(nil), v.Submission.Links...),
			CreatedAt:      v.Submission.CreatedAt,
			Abstract:       v.Submission.Abstract,
			Classification: v.Submission.Classification,
		},
	}
}

// Render filters views down to public ones and renders them in order.
func Render(views []TeamView) []PublicEntry {
	public := Public(views)

	res := make([]PublicEntry, 0, len(public))
	for _, v := range public {
		res = append(res, Entry(v))
	}
	return res
}
