package entity

// Cat is a catalog entry.
type Cat struct {
	Name  string
	Age   int32
	Breed string
}

// CatFilter narrows a catalog listing. Zero values mean "no filter".
type CatFilter struct {
	Age   int32
	Breed string
	Limit int32
}

// Breeds is the set of breeds the catalog knows about.
var Breeds = []string{"persian", "siamese", "maine_coon", "bengal", "sphynx"}

// FieldError is the error body returned for each rejected request field.
type FieldError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}
