package vies

// CheckResponse is the outcome of one VAT number check.
//
// Name and Address are filled only when the service included them in
// its answer, which it typically does for valid numbers; an empty
// string means the element was absent. The extractor reports whatever
// was found and does not couple their presence to Valid.
type CheckResponse struct {
	Valid   bool   `json:"valid"`
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
}
