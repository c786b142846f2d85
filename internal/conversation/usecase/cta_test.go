package usecase

import (
	"testing"

	"sayyes-srv/internal/model"
)

func TestEvaluateCTA(t *testing.T) {
	seen := func(categories ...model.Category) model.CategorySet {
		s := model.CategorySet{}
		for _, c := range categories {
			s = s.Add(c)
		}
		return s
	}
	allThree := seen(model.CategoryVenues, model.CategoryDresses, model.CategoryHairstyles)

	cases := []struct {
		name  string
		seen  model.CategorySet
		flags model.CTAFlags
		want  ctaKind
	}{
		{"nothing seen", seen(), model.CTAFlags{}, ctaNone},
		{"one category", seen(model.CategoryVenues), model.CTAFlags{}, ctaNone},
		{"two categories", seen(model.CategoryVenues, model.CategoryDresses), model.CTAFlags{}, ctaSoft},
		{"two categories, soft already shown", seen(model.CategoryVenues, model.CategoryDresses), model.CTAFlags{SoftCTAShown: true}, ctaNone},
		{"all three, soft not yet shown", allThree, model.CTAFlags{}, ctaSoft},
		{"all three, soft shown", allThree, model.CTAFlags{SoftCTAShown: true}, ctaFull},
		{"all three, both shown", allThree, model.CTAFlags{SoftCTAShown: true, CTAShown: true}, ctaNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := evaluateCTA(tc.seen, tc.flags); got != tc.want {
				t.Errorf("evaluateCTA mismatch: got %v, want %v", got, tc.want)
			}
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		s := seen(model.CategoryVenues, model.CategoryDresses)
		flags := model.CTAFlags{}
		first := evaluateCTA(s, flags)
		second := evaluateCTA(s, flags)
		if first != second {
			t.Errorf("evaluateCTA not idempotent: %v then %v", first, second)
		}
	})
}
