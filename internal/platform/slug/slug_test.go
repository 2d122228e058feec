package slug_test

import (
	"testing"

	"pustaka/internal/platform/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"Laskar Pelangi", "laskar-pelangi"},
		{"  Matematika: Kelas 7  ", "matematika-kelas-7"},
		{"SMA", "sma"},
		{"---", "tanpa-judul"},
		{"", "tanpa-judul"},
		{"Bahasa   Indonesia!!", "bahasa-indonesia"},
	}
	for _, tc := range cases {
		if got := slug.Make(tc.in); got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
