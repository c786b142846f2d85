package gallery

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Curate returns the enriched media list for a category. Unknown
	// categories and catalog failures degrade to an apologetic result,
	// never an error.
	Curate(ctx context.Context, input CurateInput) (CurateOutput, error)
}
