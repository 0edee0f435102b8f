package resolver

import "hackportal-backend/entity"

// Dashboard is a team's view of itself. It exists whether or not the team
// has submitted and whether or not the window is open.
type Dashboard struct {
	Team       entity.Team
	Submission *entity.Submission
	WindowOpen bool
	Links      map[entity.LinkCategory]string
}

func NewDashboard(team entity.Team, sub *entity.Submission, windowOpen bool) Dashboard {
	return Dashboard{
		Team:       team,
		Submission: sub.Clone(),
		WindowOpen: windowOpen,
		Links:      Categorize(sub),
	}
}

// Categorize keeps the first url seen for every category.
func Categorize(sub *entity.Submission) map[entity.LinkCategory]string {
	res := make(map[entity.LinkCategory]string)
	if sub == nil {
		return res
	}

	for _, l := range sub.Links {
		c := l.Category()
		if _, ok := res[c]; !ok {
			res[c] = l.URL
		}
	}
	return res
}
