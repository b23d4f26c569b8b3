package model

// Regions is the fixed set of named areas a listing can belong to. The
// catalog serves a single city, so the set lives in code rather than in a
// table of its own.
var Regions = []string{
	"Vasundhara",
	"Indirapuram",
	"Vaishali",
	"Kaushambi",
	"Crossings Republik",
	"Raj Nagar Extension",
	"Siddharth Vihar",
	"Noida Extension",
}

// ValidRegion reports whether name is one of the known regions.
func ValidRegion(name string) bool {
	for _, r := range Regions {
		if r == name {
			return true
		}
	}
	return false
}
