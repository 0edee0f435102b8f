package handler

import (
	"time"

	"hackportal-backend/entity"
	pb "hackportal-backend/proto"
	"hackportal-backend/resolver"
)

func timeToProto(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func linksToProto(links []entity.ArtifactLink) []*pb.Link {
	res := make([]*pb.Link, 0, len(links))
	for _, l := range links {
		res = append(res, &pb.Link{
			Platform: l.Platform,
			Url:      l.URL,
			Category: string(l.Category()),
		})
	}
	return res
}

// linksFromProto keeps nil entries as empty links so validation rejects them.
func linksFromProto(links []*pb.Link) []entity.ArtifactLink {
	res := make([]entity.ArtifactLink, 0, len(links))
	for _, l := range links {
		if l == nil {
			res = append(res, entity.ArtifactLink{})
			continue
		}
		res = append(res, entity.Link(l.Platform, l.Url))
	}
	return res
}

func submissionToProto(s *entity.Submission) *pb.Submission {
	if s == nil {
		return nil
	}

	return &pb.Submission{
		TeamId:         s.TeamID.Hex(),
		Links:          linksToProto(s.Links),
		Classification: string(s.Classification),
		Abstract:       s.Abstract,
		CreatedAt:      timeToProto(s.CreatedAt),
		UpdatedAt:      timeToProto(s.UpdatedAt),
	}
}

func publicTeamToProto(e resolver.PublicEntry) *pb.PublicTeam {
	participants := make([]*pb.PublicParticipant, 0, len(e.Participants))
	for _, p := range e.Participants {
		participants = append(participants, &pb.PublicParticipant{
			Name:            p.Name,
			GithubProfile:   p.GithubURL,
			LinkedinProfile: p.LinkedinURL,
			Affiliation:     p.Affiliation,
		})
	}

	return &pb.PublicTeam{
		Id:              e.ID,
		TeamName:        e.TeamName,
		IdeaTitle:       e.IdeaTitle,
		IdeaDocumentUrl: e.IdeaDocumentURL,
		Participants:    participants,
		Submission: &pb.Submission{
			TeamId:         e.ID,
			Links:          linksToProto(e.Submission.ArtifactLinks),
			Classification: string(e.Submission.Classification),
			Abstract:       e.Submission.Abstract,
			CreatedAt:      timeToProto(e.Submission.CreatedAt),
		},
	}
}

func teamToProto(t entity.Team) *pb.Team {
	participants := make([]*pb.Participant, 0, len(t.Participants))
	for _, p := range t.Participants {
		participants = append(participants, &pb.Participant{
			Name:            p.Name,
			Email:           p.Email,
			Age:             int32(p.Age),
			Phone:           p.Phone,
			Role:            string(p.Role),
			Affiliation:     p.Affiliation,
			GithubProfile:   p.GithubURL,
			LinkedinProfile: p.LinkedinURL,
			DevfolioProfile: p.DevfolioURL,
		})
	}

	return &pb.Team{
		Id:              t.ID.Hex(),
		TeamName:        t.TeamName,
		TeamSize:        int32(t.TeamSize),
		IdeaTitle:       t.IdeaTitle,
		IdeaDocumentUrl: t.IdeaDocumentURL,
		Participants:    participants,
		Status:          string(t.Status),
		Selected:        t.Selected,
	}
}

func teamFromProto(t *pb.Team) entity.Team {
	if t == nil {
		return entity.Team{}
	}

	participants := make([]entity.Participant, 0, len(t.Participants))
	for _, p := range t.Participants {
		if p == nil {
			participants = append(participants, entity.Participant{})
			continue
		}
		participants = append(participants, entity.Participant{
			Name:        p.Name,
			Email:       p.Email,
			Age:         int(p.Age),
			Phone:       p.Phone,
			Role:        entity.Role(p.Role),
			Affiliation: p.Affiliation,
			GithubURL:   p.GithubProfile,
			LinkedinURL: p.LinkedinProfile,
			DevfolioURL: p.DevfolioProfile,
		})
	}

	return entity.Team{
		TeamName:        t.TeamName,
		TeamSize:        int(t.TeamSize),
		IdeaTitle:       t.IdeaTitle,
		IdeaDocumentURL: t.IdeaDocumentUrl,
		Participants:    participants,
		Selected:        t.Selected,
	}
}
