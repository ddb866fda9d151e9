package models

import (
	"strings"
)

// Option is a selectable payment sub-method: a bank, a cryptocurrency,
// a payment method or an account type. All sources share this shape.
// swagger:model Option
type Option struct {
	// Option identifier, sent to the backend as accountTypeId
	// example: 7
	ID int64 `json:"id"`

	// Display name
	// example: Test Bank
	Name string `json:"name"`

	// Optional code or symbol (swift code, crypto symbol)
	// example: TBNKTRIS
	Code string `json:"code,omitempty"`
}

// FilterOptions returns the options whose name contains query, ignoring case.
// An empty query returns all options.
func FilterOptions(options []Option, query string) []Option {
	q := strings.ToLower(strings.TrimSpace(query))
	filtered := make([]Option, 0, len(options))
	for _, o := range options {
		if q == "" || strings.Contains(strings.ToLower(o.Name), q) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// FindOption returns the option with the given id.
func FindOption(options []Option, id int64) (Option, bool) {
	for _, o := range options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// OptionsResponse represents the candidate list of a checkout session
// swagger:model OptionsResponse
type OptionsResponse struct {
	// Options matching the query
	Options []Option `json:"options"`

	// True when no option matches
	// example: false
	Empty bool `json:"empty"`
}

// SelectRequest represents the JSON body for picking an option
// swagger:model SelectRequest
type SelectRequest struct {
	// Chosen option identifier
	// required: true
	// example: 2
	OptionID *int64 `json:"optionId"`
}
