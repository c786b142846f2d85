package usecase

import "sayyes-srv/internal/model"

type ctaKind int

const (
	ctaNone ctaKind = iota
	ctaSoft
	ctaFull
)

// evaluateCTA classifies the conversion state. Pure function: the caller
// flips the corresponding flag when it actually emits the prompt, so
// repeated calls with the same inputs always agree.
//
// The soft gate is checked first. A user who jumped straight to all three
// categories with softCtaShown still false gets the soft prompt before the
// full one.
func evaluateCTA(seen model.CategorySet, flags model.CTAFlags) ctaKind {
	if seen.Count() >= 2 && !flags.SoftCTAShown {
		return ctaSoft
	}
	if seen.Has(model.CategoryVenues) && seen.Has(model.CategoryDresses) && seen.Has(model.CategoryHairstyles) && !flags.CTAShown {
		return ctaFull
	}
	return ctaNone
}
