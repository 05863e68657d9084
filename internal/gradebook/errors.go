package gradebook

import "errors"

// Sentinel errors returned by the domain model. Callers match them with
// errors.Is to decide how to surface a failure.
var (
	// ErrInvalidArgument indicates bad constructor or update input: an empty
	// name, a non-positive max score or negative earned points.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound indicates an unknown student, teacher or assignment.
	ErrNotFound = errors.New("not found")

	// ErrNotEnrolled indicates a grade operation against a course the
	// student is not enrolled in.
	ErrNotEnrolled = errors.New("not enrolled")
)
