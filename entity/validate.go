package entity

import (
	"net/mail"
	"strings"

	"hackportal-backend/errs"
)

// Normalize trims and checks a team registration. The number of participants
// must match TeamSize.
func (t Team) Normalize() (Team, error) {
	n := t
	n.TeamName = strings.TrimSpace(t.TeamName)
	n.IdeaTitle = strings.TrimSpace(t.IdeaTitle)
	n.IdeaDocumentURL = strings.TrimSpace(t.IdeaDocumentURL)

	if n.TeamName == "" {
		return Team{}, errs.Invalid("team_name", "is required")
	}
	if n.TeamSize < MinTeamSize || n.TeamSize > MaxTeamSize {
		return Team{}, errs.Invalid("team_size", "must be between %d and %d", MinTeamSize, MaxTeamSize)
	}
	if n.IdeaTitle == "" {
		return Team{}, errs.Invalid("idea_title", "is required")
	}
	if !httpURL.MatchString(n.IdeaDocumentURL) {
		return Team{}, errs.Invalid("idea_document_url", "must be an http/https URL")
	}
	if len(t.Participants) != n.TeamSize {
		return Team{}, errs.Invalid("participants", "expected %d participants, got %d", n.TeamSize, len(t.Participants))
	}

	n.Participants = make([]Participant, 0, len(t.Participants))
	for _, p := range t.Participants {
		np, err := p.Normalize()
		if err != nil {
			return Team{}, err
		}
		n.Participants = append(n.Participants, np)
	}

	if n.Status == "" {
		n.Status = StatusRegistered
	}
	if !n.Status.Valid() {
		return Team{}, errs.Invalid("status", "unknown status %q", string(n.Status))
	}

	return n, nil
}

func (p Participant) Normalize() (Participant, error) {
	n := Participant{
		Name:        strings.TrimSpace(p.Name),
		Email:       strings.ToLower(strings.TrimSpace(p.Email)),
		Age:         p.Age,
		Phone:       strings.TrimSpace(p.Phone),
		Role:        p.Role,
		Affiliation: strings.TrimSpace(p.Affiliation),
		GithubURL:   strings.TrimSpace(p.GithubURL),
		LinkedinURL: strings.TrimSpace(p.LinkedinURL),
		DevfolioURL: strings.TrimSpace(p.DevfolioURL),
	}

	if n.Name == "" {
		return Participant{}, errs.Invalid("participants.name", "is required")
	}
	if _, err := mail.ParseAddress(n.Email); err != nil {
		return Participant{}, errs.Invalid("participants.email", "%q is not an email address", p.Email)
	}
	if n.Age < MinParticipantAge || n.Age > MaxParticipantAge {
		return Participant{}, errs.Invalid("participants.age", "must be between %d and %d", MinParticipantAge, MaxParticipantAge)
	}
	if n.Phone == "" {
		return Participant{}, errs.Invalid("participants.phone", "is required")
	}
	if n.Role != RoleStudent && n.Role != RoleProfessional {
		return Participant{}, errs.Invalid("participants.student_or_professional", "must be %q or %q", RoleStudent, RoleProfessional)
	}
	if n.Affiliation == "" {
		return Participant{}, errs.Invalid("participants.college_or_company_name", "is required")
	}

	profiles := []struct{ field, url string }{
		{"participants.github_profile", n.GithubURL},
		{"participants.linkedin_profile", n.LinkedinURL},
		{"participants.devfolio_profile", n.DevfolioURL},
	}
	for _, v := range profiles {
		if v.url != "" && !httpURL.MatchString(v.url) {
			return Participant{}, errs.Invalid(v.field, "must be an http/https URL")
		}
	}

	return n, nil
}
