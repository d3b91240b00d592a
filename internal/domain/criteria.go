package domain

import "github.com/go-playground/validator/v10"

// SearchCriteria is what the UI form submits. Empty optional fields are
// omitted from the provider request body rather than sent as empty values.
type SearchCriteria struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	MaxProfiles int    `json:"maxProfiles" validate:"required,gt=0"`
}

var validate = validator.New()

func (c SearchCriteria) Validate() error {
	return validate.Struct(c)
}
