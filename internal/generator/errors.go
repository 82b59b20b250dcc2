package generator

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrConfig is wrapped by every construction-time error.
	ErrConfig = errors.New("invalid generator configuration")

	// ErrUsage is wrapped by errors caused by calling operations out of order.
	ErrUsage = errors.New("usage error")

	// ErrNotGenerated is returned by Analyze before any Generate.
	ErrNotGenerated = fmt.Errorf("%w: analyze called before generate", ErrUsage)
)

// ConfigError reports an invalid construction parameter.
type ConfigError struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Kind, e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfig
}

func requirePositive(kind Kind, field string, v int) error {
	if v <= 0 {
		return &ConfigError{Kind: kind, Field: field, Message: fmt.Sprintf("must be positive, got %d", v)}
	}
	return nil
}

func requireSource(kind Kind, rng *rand.Rand) error {
	if rng == nil {
		return &ConfigError{Kind: kind, Field: "rng", Message: "random source is required"}
	}
	return nil
}
