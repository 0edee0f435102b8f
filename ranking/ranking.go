// Package ranking splits the public teams into winners, finalists and
// everyone else.
package ranking

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"hackportal-backend/entity"
	"hackportal-backend/resolver"
)

type Placed struct {
	Rank int
	View resolver.TeamView
}

type Board struct {
	Winners   []Placed
	Finalists []resolver.TeamView
	Others    []resolver.TeamView
}

// Partition never mutates views. Winners follow the order of the curated list
// and override classification. Names in the list with no public team are
// skipped and do not consume a rank.
func Partition(views []resolver.TeamView, winners []string) Board {
	public := resolver.Public(views)

	byName := make(map[string]resolver.TeamView, len(public))
	for _, v := range public {
		if _, ok := byName[v.Team.TeamName]; !ok {
			byName[v.Team.TeamName] = v
		}
	}

	board := Board{
		Winners:   make([]Placed, 0, len(winners)),
		Finalists: make([]resolver.TeamView, 0),
		Others:    make([]resolver.TeamView, 0),
	}

	curated := make(map[string]struct{}, len(winners))
	for _, name := range winners {
		if _, dup := curated[name]; dup {
			continue
		}
		curated[name] = struct{}{}

		v, ok := byName[name]
		if !ok {
			continue
		}
		board.Winners = append(board.Winners, Placed{Rank: len(board.Winners) + 1, View: v})
	}

	for _, v := range public {
		if _, ok := curated[v.Team.TeamName]; ok {
			continue
		}
		if v.Submission.Classification == entity.Finalist {
			board.Finalists = append(board.Finalists, v)
		} else {
			board.Others = append(board.Others, v)
		}
	}

	byTeamName(board.Finalists)
	byTeamName(board.Others)
	return board
}

// byTeamName sorts with English collation and falls back to byte order so
// that names equal under collation still have a fixed order.
func byTeamName(views []resolver.TeamView) {
	c := collate.New(language.English)

	sort.SliceStable(views, func(i, j int) bool {
		a, b := views[i].Team.TeamName, views[j].Team.TeamName
		if r := c.CompareString(a, b); r != 0 {
			return r < 0
		}
		return a < b
	})
}
