package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	if len(c.Generators) == 0 {
		errors = append(errors, ValidationError{
			Field:   "generators",
			Message: "at least one generator must be defined",
		})
	}

	seen := make(map[string]int, len(c.Generators))
	for i, gen := range c.Generators {
		if err := c.validateGenerator(i, &gen); err != nil {
			errors = append(errors, err...)
		}
		if gen.Name == "" {
			continue
		}
		if first, dup := seen[gen.Name]; dup {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("generators[%d].name", i),
				Message: fmt.Sprintf("duplicate name %q (first declared at generators[%d])", gen.Name, first),
			})
			continue
		}
		seen[gen.Name] = i
	}

	if err := c.validateExecution(); err != nil {
		errors = append(errors, err...)
	}

	if err := c.validateOutput(); err != nil {
		errors = append(errors, err...)
	}

	if err := c.validateLogging(); err != nil {
		errors = append(errors, err...)
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateGenerator(index int, gen *GeneratorConfig) ValidationErrors {
	var errors ValidationErrors
	prefix := fmt.Sprintf("generators[%d]", index)

	if gen.Name == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".name",
			Message: "name is required",
		})
	}

	validTypes := map[string]bool{"strings": true, "nested_dict": true, "tuples": true, "sets": true, "grouped": true}
	if !validTypes[gen.Type] {
		errors = append(errors, ValidationError{
			Field:   prefix + ".type",
			Message: "type must be 'strings', 'nested_dict', 'tuples', 'sets', or 'grouped'",
		})
		return errors
	}

	// grouped draws from a fixed alphabet and tolerates an empty run
	if gen.Type == "grouped" {
		if gen.Count < 0 {
			errors = append(errors, ValidationError{
				Field:   prefix + ".count",
				Message: "count cannot be negative",
			})
		}
		return errors
	}

	errors = append(errors, positive(prefix+".count", gen.Count)...)

	switch gen.Type {
	case "strings", "sets":
		errors = append(errors, positive(prefix+".length", gen.Length)...)
	case "nested_dict":
		errors = append(errors, positive(prefix+".nested_size", gen.NestedSize)...)
	case "tuples":
		errors = append(errors, positive(prefix+".string_length", gen.StringLength)...)
	}

	return errors
}

func positive(field string, v int) ValidationErrors {
	if v > 0 {
		return nil
	}
	name := field[strings.LastIndex(field, ".")+1:]
	return ValidationErrors{{
		Field:   field,
		Message: name + " must be positive",
	}}
}

func (c *Config) validateExecution() ValidationErrors {
	var errors ValidationErrors

	if c.Execution.Workers < 0 {
		errors = append(errors, ValidationError{
			Field:   "execution.workers",
			Message: "workers cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateOutput() ValidationErrors {
	var errors ValidationErrors

	validFormats := map[string]bool{"text": true, "json": true, "both": true, "": true}
	if !validFormats[c.Output.Format] {
		errors = append(errors, ValidationError{
			Field:   "output.format",
			Message: "format must be 'text', 'json', or 'both'",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
