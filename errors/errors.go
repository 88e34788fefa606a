/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrInvalidDefinition is returned when a store is constructed without
	// the required database and/or collection name
	ErrInvalidDefinition = errors.New("invalid store definition")

	// ErrMissingEnv is returned when a required environment variable is not set
	ErrMissingEnv = errors.New("required environment variable not set")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// DefinitionError reports a store constructed without a database and/or
// collection name. The message distinguishes which of the two is missing.
type DefinitionError struct {
	Database   string
	Collection string
}

func (e *DefinitionError) Error() string {
	switch {
	case e.Database == "" && e.Collection == "":
		return "database name and collection name are required for creating the store client"
	case e.Collection == "":
		return "collection name is required for creating the store client"
	case e.Database == "":
		return "database name is required for creating the store client"
	default:
		return "store client initialization error"
	}
}

func (e *DefinitionError) Is(target error) bool {
	return target == ErrInvalidDefinition
}

// MissingEnvError reports a required environment variable that was absent
// when configuration was loaded from the process environment.
type MissingEnvError struct {
	Name string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("environment variable %q is not set", e.Name)
}

func (e *MissingEnvError) Is(target error) bool {
	return target == ErrMissingEnv
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewDefinitionError creates a new DefinitionError
func NewDefinitionError(database, collection string) error {
	return &DefinitionError{Database: database, Collection: collection}
}

// NewMissingEnvError creates a new MissingEnvError
func NewMissingEnvError(name string) error {
	return &MissingEnvError{Name: name}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsInvalidDefinition checks if an error is a store definition error
func IsInvalidDefinition(err error) bool {
	return errors.Is(err, ErrInvalidDefinition)
}

// IsMissingEnv checks if an error is a missing environment variable error
func IsMissingEnv(err error) bool {
	return errors.Is(err, ErrMissingEnv)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
