package slug

import "strings"

// Make converts a title to a lowercase URL-safe slug.
//
// Letters and digits are kept (uppercase folded to lowercase), every other
// run of characters becomes a single hyphen, and leading/trailing hyphens
// are dropped. The function is pure and idempotent; an input with no
// alphanumeric characters yields the empty string, which callers must
// reject before persisting.
//
//	Make("Luxury Villa SEO Test") // "luxury-villa-seo-test"
//	Make("3 BHK @ Vaishali!!")    // "3-bhk-vaishali"
func Make(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	pending := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
	}
	return b.String()
}
