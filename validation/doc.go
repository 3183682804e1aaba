// Package validation provides input validation utilities for chainkit
// packages.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// recommended for parameter and configuration structs.
//
// # Struct Tag Validation
//
//	type Params struct {
//	    A float64 `validate:"gt=0,lt=1"`
//	    M float64 `validate:"gt=1"`
//	}
//	err := validation.Validate(params)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Custom(bit == 0 || bit == 1, "bits", "must be 0 or 1")
//	err := v.Validate()
package validation
