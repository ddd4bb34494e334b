// Package catalog loads the static ring catalog. All repositories are
// read-only and fail open: a broken source degrades to an empty
// catalog rather than an error.
package catalog

// Images maps the three color variants to image URLs.
type Images struct {
	Yellow string `json:"yellow"`
	Rose   string `json:"rose"`
	White  string `json:"white"`
}

// Entry is one catalog record. JSON tags follow the frontend contract
// and must not change.
type Entry struct {
	Name            string  `json:"name"`
	PopularityScore float64 `json:"popularityScore"`
	Weight          float64 `json:"weight"`
	Images          Images  `json:"images"`
}

// Validate checks an entry against the catalog schema and returns all
// violations together, keyed by field name. Repositories skip entries
// that fail validation instead of propagating bad fields downstream.
func (e Entry) Validate() map[string]string {
	errs := map[string]string{}
	if e.Name == "" {
		errs["name"] = "name is required"
	}
	if e.PopularityScore < 0 || e.PopularityScore > 1 {
		errs["popularityScore"] = "popularityScore must be between 0 and 1"
	}
	if e.Weight <= 0 {
		errs["weight"] = "weight must be a positive number of grams"
	}
	return errs
}
