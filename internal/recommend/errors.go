package recommend

import "fmt"

// ErrInvalidProfile indicates a profile field could not be parsed or is
// out of range.
type ErrInvalidProfile struct {
	Field string
	Value string
	Err   error
}

func (e *ErrInvalidProfile) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid profile: %v", e.Err)
	}
	return fmt.Sprintf("invalid profile field %s=%q: %v", e.Field, e.Value, e.Err)
}

func (e *ErrInvalidProfile) Unwrap() error { return e.Err }
