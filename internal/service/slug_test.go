package service

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Gold Ring", "gold-ring"},
		{"  Multi   Space  ", "multi-space"},
		{"Already-Slugged", "already-slugged"},
		{"Snake_case_name", "snake-case-name"},
		{"Émoji & Symbols!?", "moji-symbols"},
		{"---", ""},
		{"UPPER", "upper"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q) want %q got %q", tc.in, tc.want, got)
		}
	}
}
