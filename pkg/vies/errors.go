package vies

// InvalidArgumentError reports a missing required input. It is returned
// before any envelope is built or any network call is made.
type InvalidArgumentError struct {
	Name string // the offending parameter, "countryCode" or "vatNumber"
}

func (e *InvalidArgumentError) Error() string {
	return "vies: " + e.Name + " must not be empty"
}
