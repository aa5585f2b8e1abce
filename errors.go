package randhunt

import "fmt"

// ConfigErrorKind classifies builder validation failures.
type ConfigErrorKind uint8

const (
	// MissingRequiredField means a mandatory builder field was never set.
	MissingRequiredField ConfigErrorKind = iota + 1
	// InvalidValue means a field was set to a value outside its domain.
	InvalidValue
)

// String implements fmt.Stringer.
func (k ConfigErrorKind) String() string {
	switch k {
	case MissingRequiredField:
		return "missing required field"
	case InvalidValue:
		return "invalid value"
	default:
		return "unknown"
	}
}

// ConfigError is returned by RunParallel and RunSequential during
// pre-flight validation, before any worker starts. It is never raised
// mid-run.
type ConfigError struct {
	Kind   ConfigErrorKind
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("config: %s %q: %s", e.Kind, e.Field, e.Reason)
	}
	return fmt.Sprintf("config: %s %q", e.Kind, e.Field)
}
