package errors

// Code classifies an error so callers can decide how to react without
// matching on message text.
type Code string

// Error codes. User-facing failures (bad commands, missing things, full
// inventory) carry the first four codes and are rendered as notices by the
// session; the rest indicate collaborator or programming failures.
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeInternal           Code = "INTERNAL"
)

// String returns the string representation of the code.
func (c Code) String() string {
	return string(c)
}

// UserFacing reports whether the code describes a player mistake rather
// than a system failure.
func (c Code) UserFacing() bool {
	switch c {
	case CodeInvalidArgument, CodeNotFound, CodeFailedPrecondition, CodeResourceExhausted:
		return true
	default:
		return false
	}
}
