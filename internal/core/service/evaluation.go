package service

import (
	"cmp"
	"slices"
	"strings"

	"github.com/bornholm/vitrine/internal/core/model"
)

type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

func GradeOf(score int) Grade {
	switch {
	case score >= 85:
		return GradeA
	case score >= 70:
		return GradeB
	case score >= 50:
		return GradeC
	default:
		return GradeD
	}
}

type Evaluation struct {
	Rank   int
	Intern model.Intern
	Grade  Grade
}

// RankInterns orders interns by decreasing score. Ties share the same rank
// and are ordered by name.
func RankInterns(interns []model.Intern) []Evaluation {
	sorted := slices.Clone(interns)
	slices.SortStableFunc(sorted, func(a, b model.Intern) int {
		return cmp.Or(
			cmp.Compare(b.Score, a.Score),
			strings.Compare(a.Name, b.Name),
		)
	})

	evaluations := make([]Evaluation, 0, len(sorted))
	for idx, intern := range sorted {
		rank := idx + 1
		if idx > 0 && sorted[idx-1].Score == intern.Score {
			rank = evaluations[idx-1].Rank
		}

		evaluations = append(evaluations, Evaluation{
			Rank:   rank,
			Intern: intern,
			Grade:  GradeOf(intern.Score),
		})
	}

	return evaluations
}
