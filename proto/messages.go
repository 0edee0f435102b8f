package proto

import "google.golang.org/protobuf/types/known/emptypb"

// Empty is the request of calls that take no arguments.
type Empty = emptypb.Empty

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	TeamId string `json:"team_id"`
}

type Link struct {
	Platform string `json:"platform"`
	Url      string `json:"url"`
	Category string `json:"category,omitempty"`
}

type Submission struct {
	TeamId         string  `json:"team_id"`
	Links          []*Link `json:"links"`
	Classification string  `json:"classification,omitempty"`
	Abstract       string  `json:"abstract,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at,omitempty"`
}

type PublicParticipant struct {
	Name            string `json:"name"`
	GithubProfile   string `json:"github_profile,omitempty"`
	LinkedinProfile string `json:"linkedin_profile,omitempty"`
	Affiliation     string `json:"affiliation,omitempty"`
}

type PublicTeam struct {
	Id              string               `json:"id"`
	TeamName        string               `json:"team_name"`
	IdeaTitle       string               `json:"idea_title"`
	IdeaDocumentUrl string               `json:"idea_document_url"`
	Participants    []*PublicParticipant `json:"participants"`
	Submission      *Submission          `json:"submission"`
}

type ListSubmissionsResponse struct {
	Teams []*PublicTeam `json:"teams"`
}

type RankedTeam struct {
	Rank int32       `json:"rank"`
	Team *PublicTeam `json:"team"`
}

type RankingsResponse struct {
	Winners   []*RankedTeam `json:"winners"`
	Finalists []*PublicTeam `json:"finalists"`
	Others    []*PublicTeam `json:"others"`
}

type Participant struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Age             int32  `json:"age"`
	Phone           string `json:"phone"`
	Role            string `json:"student_or_professional"`
	Affiliation     string `json:"college_or_company_name"`
	GithubProfile   string `json:"github_profile,omitempty"`
	LinkedinProfile string `json:"linkedin_profile,omitempty"`
	DevfolioProfile string `json:"devfolio_profile,omitempty"`
}

type Team struct {
	Id              string         `json:"id,omitempty"`
	TeamName        string         `json:"team_name"`
	TeamSize        int32          `json:"team_size"`
	IdeaTitle       string         `json:"idea_title"`
	IdeaDocumentUrl string         `json:"idea_document_url"`
	Participants    []*Participant `json:"participants"`
	Status          string         `json:"status,omitempty"`
	Selected        bool           `json:"selected"`
}

type DashboardResponse struct {
	Team       *Team             `json:"team"`
	Submission *Submission       `json:"submission,omitempty"`
	WindowOpen bool              `json:"window_open"`
	Links      map[string]string `json:"links"`
}

type SaveSubmissionRequest struct {
	Links []*Link `json:"links"`
}

type SubmissionResponse struct {
	Submission *Submission `json:"submission"`
}

type RegisterTeamRequest struct {
	Team     *Team  `json:"team"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type TeamResponse struct {
	Team *Team `json:"team"`
}

type SetTeamStatusRequest struct {
	TeamId string `json:"team_id"`
	Status string `json:"status"`
}

type SetClassificationRequest struct {
	TeamId         string `json:"team_id"`
	Classification string `json:"classification"`
}

type SetAbstractRequest struct {
	TeamId   string `json:"team_id"`
	Abstract string `json:"abstract"`
}
