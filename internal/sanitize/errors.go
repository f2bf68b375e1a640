package sanitize

// ValidationError carries a user-facing rejection reason. The reason is
// shown verbatim in the form response, so it stays in the site language.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
