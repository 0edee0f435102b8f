package ranking

import "hackportal-backend/resolver"

type RankedEntry struct {
	Rank int `json:"rank"`
	resolver.PublicEntry
}

// Standings is the rendered Board as the public pages receive it.
type Standings struct {
	Winners   []RankedEntry          `json:"winners"`
	Finalists []resolver.PublicEntry `json:"finalists"`
	Others    []resolver.PublicEntry `json:"others"`
}

func (b Board) Render() Standings {
	s := Standings{
		Winners:   make([]RankedEntry, 0, len(b.Winners)),
		Finalists: make([]resolver.PublicEntry, 0, len(b.Finalists)),
		Others:    make([]resolver.PublicEntry, 0, len(b.Others)),
	}

	for _, p := range b.Winners {
		s.Winners = append(s.Winners, RankedEntry{Rank: p.Rank, PublicEntry: resolver.Entry(p.View)})
	}
	for _, v := range b.Finalists {
		s.Finalists = append(s.Finalists, resolver.Entry(v))
	}
	for _, v := range b.Others {
		s.Others = append(s.Others, resolver.Entry(v))
	}
	return s
}
