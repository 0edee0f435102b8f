package ranking_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"hackportal-backend/entity"
	"hackportal-backend/ranking"
	"hackportal-backend/resolver"
)

func view(name string, c entity.Classification, submitted bool) resolver.TeamView {
	v := resolver.TeamView{Team: entity.Team{ID: primitive.NewObjectID(), TeamName: name}}
	if submitted {
		v.Submission = &entity.Submission{
			TeamID:         v.Team.ID,
			Links:          []entity.ArtifactLink{entity.Link("ppt", "https://x")},
			Classification: c,
		}
	}
	return v
}

func names(views []resolver.TeamView) []string {
	res := make([]string, 0, len(views))
	for _, v := range views {
		res = append(res, v.Team.TeamName)
	}
	return res
}

func winnerNames(placed []ranking.Placed) []string {
	res := make([]string, 0, len(placed))
	for _, p := range placed {
		res = append(res, p.View.Team.TeamName)
	}
	return res
}

var _ = Describe("Partition", func() {
	Specify("alpha, beta and gamma without winners", func() {
		views := []resolver.TeamView{
			view("Alpha", entity.ClassificationUnset, true),
			view("Beta", entity.ClassificationUnset, false),
			view("Gamma", entity.Finalist, true),
		}

		board := ranking.Partition(views, nil)
		Expect(board.Winners).To(BeEmpty())
		Expect(names(board.Finalists)).To(Equal([]string{"Gamma"}))
		Expect(names(board.Others)).To(Equal([]string{"Alpha"}))
	})

	Specify("winners come first in curated order regardless of classification", func() {
		views := []resolver.TeamView{
			view("Zeta", entity.NotFinalist, true),
			view("Mu", entity.Finalist, true),
			view("Alpha", entity.ClassificationUnset, true),
			view("Kappa", entity.Finalist, true),
		}

		board := ranking.Partition(views, []string{"Zeta", "Mu"})
		Expect(winnerNames(board.Winners)).To(Equal([]string{"Zeta", "Mu"}))
		Expect(board.Winners[0].Rank).To(Equal(1))
		Expect(board.Winners[1].Rank).To(Equal(2))
		Expect(names(board.Finalists)).To(Equal([]string{"Kappa"}))
		Expect(names(board.Others)).To(Equal([]string{"Alpha"}))
	})

	Specify("unknown and unsubmitted winners are skipped without using a rank", func() {
		views := []resolver.TeamView{
			view("Alpha", entity.ClassificationUnset, true),
			view("Beta", entity.Finalist, false),
			view("Gamma", entity.ClassificationUnset, true),
		}

		board := ranking.Partition(views, []string{"Nobody", "Beta", "Gamma"})
		Expect(board.Winners).To(HaveLen(1))
		Expect(board.Winners[0].Rank).To(Equal(1))
		Expect(board.Winners[0].View.Team.TeamName).To(Equal("Gamma"))
		Expect(board.Finalists).To(BeEmpty())
		Expect(names(board.Others)).To(Equal([]string{"Alpha"}))
	})

	Specify("tiers are ascending by collated team name", func() {
		views := []resolver.TeamView{
			view("zebra", entity.NotFinalist, true),
			view("Beta", entity.ClassificationUnset, true),
			view("alpha", entity.NotFinalist, true),
			view("Échelon", entity.Finalist, true),
			view("delta", entity.Finalist, true),
			view("Foxtrot", entity.Finalist, true),
		}

		board := ranking.Partition(views, nil)
		Expect(names(board.Finalists)).To(Equal([]string{"delta", "Échelon", "Foxtrot"}))
		Expect(names(board.Others)).To(Equal([]string{"alpha", "Beta", "zebra"}))
	})

	Specify("every public team lands in exactly one tier", func() {
		views := []resolver.TeamView{
			view("A", entity.Finalist, true),
			view("B", entity.NotFinalist, true),
			view("C", entity.ClassificationUnset, true),
			view("D", entity.Finalist, true),
			view("E", entity.ClassificationUnset, false),
		}

		board := ranking.Partition(views, []string{"D"})
		total := len(board.Winners) + len(board.Finalists) + len(board.Others)
		Expect(total).To(Equal(4))
	})

	Specify("input is left untouched", func() {
		views := []resolver.TeamView{
			view("b", entity.ClassificationUnset, true),
			view("a", entity.ClassificationUnset, true),
		}

		ranking.Partition(views, nil)
		Expect(names(views)).To(Equal([]string{"b", "a"}))
	})
})

var _ = Describe("Render", func() {
	Specify("keeps ranks and tiers", func() {
		views := []resolver.TeamView{
			view("Alpha", entity.ClassificationUnset, true),
			view("Gamma", entity.Finalist, true),
			view("Omega", entity.NotFinalist, true),
		}

		s := ranking.Partition(views, []string{"Omega"}).Render()
		Expect(s.Winners).To(HaveLen(1))
		Expect(s.Winners[0].Rank).To(Equal(1))
		Expect(s.Winners[0].TeamName).To(Equal("Omega"))
		Expect(s.Finalists).To(HaveLen(1))
		Expect(s.Finalists[0].TeamName).To(Equal("Gamma"))
		Expect(s.Others[0].TeamName).To(Equal("Alpha"))
	})
})
