package model

// Category of curated wedding media.
type Category string

const (
	CategoryVenues     Category = "venues"
	CategoryDresses    Category = "dresses"
	CategoryHairstyles Category = "hairstyles"
	CategoryCakes      Category = "cakes"
)

// RevealOrder is the fixed order categories are revealed during the
// sneak-peek stage. Cakes are on-demand only and never revealed.
var RevealOrder = []Category{CategoryVenues, CategoryDresses, CategoryHairstyles}

// KnownCategory reports whether c is a curated category.
func KnownCategory(c Category) bool {
	switch c {
	case CategoryVenues, CategoryDresses, CategoryHairstyles, CategoryCakes:
		return true
	}
	return false
}

// CategorySet is the set of categories already shown to a user.
// Monotonically grows, never shrinks.
type CategorySet map[Category]bool

// Has reports membership.
func (cs CategorySet) Has(c Category) bool {
	return cs[c]
}

// Add marks c as seen and returns the set (allocating when nil).
func (cs CategorySet) Add(c Category) CategorySet {
	if cs == nil {
		cs = CategorySet{}
	}
	cs[c] = true
	return cs
}

// Count returns the number of seen categories.
func (cs CategorySet) Count() int {
	n := 0
	for _, seen := range cs {
		if seen {
			n++
		}
	}
	return n
}

// Clone returns a copy of the set.
func (cs CategorySet) Clone() CategorySet {
	if cs == nil {
		return nil
	}
	cp := make(CategorySet, len(cs))
	for c, seen := range cs {
		cp[c] = seen
	}
	return cp
}
