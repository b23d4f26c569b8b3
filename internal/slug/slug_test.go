package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Luxury Villa SEO Test", "luxury-villa-seo-test"},
		{"Sunset Apartments", "sunset-apartments"},
		{"3 BHK @ Vaishali!!", "3-bhk-vaishali"},
		{"  spaced   out  ", "spaced-out"},
		{"already-valid-slug", "already-valid-slug"},
		{"UPPER", "upper"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Make(tc.in); got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{
		"Luxury Villa SEO Test",
		"2 BHK Flat, Indirapuram",
		"Plot #42 (Corner)",
	}
	for _, in := range inputs {
		once := Make(in)
		if twice := Make(once); twice != once {
			t.Errorf("Make not idempotent on %q: %q != %q", in, twice, once)
		}
	}
}
