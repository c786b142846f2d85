package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Grand Hall", "the-grand-hall"},
		{"Lace A-Line Gown", "lace-a-line-gown"},
		{"  spaced   out  ", "spaced-out"},
		{"Already-Slugged", "already-slugged"},
		{"Cake #3 (Tiered)", "cake-3-tiered"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"wedding venues/grand_hall.jpg", "Grand Hall"},
		{"rustic_barn_venue.png", "Rustic Barn Venue"},
		{"dresses", "Dresses"},
		{"wedding cakes/naked_cake.jpeg", "Naked Cake"},
	}
	for _, tt := range tests {
		if got := CleanTitle(tt.in); got != tt.want {
			t.Errorf("CleanTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLooksLikeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"jane@example.com", true},
		{"sure, reach me at jane@example.com", true},
		{"jane@example", false},
		{"@example.com", false},
		{"jane.example.com", false},
		{"jane@.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := LooksLikeEmail(tt.in); got != tt.want {
			t.Errorf("LooksLikeEmail(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFirstInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"about 120 guests", 120, true},
		{"150 people, maybe 200", 150, true},
		{"no numbers here", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := FirstInt(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FirstInt(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
