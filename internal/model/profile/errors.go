package profile

import "errors"

// Reasons carried by ValidationError.
const (
	ReasonNameRequired  = "name required"
	ReasonDuplicateName = "duplicate name"
)

// ValidationError reports a rejected Add. The store is left unchanged.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// Message returns the text shown next to the add form for a rejection.
func (e *ValidationError) Message() string {
	switch e.Reason {
	case ReasonNameRequired:
		return "Name is required."
	case ReasonDuplicateName:
		return "This name already exists."
	default:
		return e.Reason
	}
}
