// Package types provides type definitions for structured data used throughout the career-explorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared struct validator with the domain tags registered.
// validator.Validate caches struct metadata and is safe for concurrent use.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("career_category", func(fl validator.FieldLevel) bool {
			return CareerCategory(fl.Field().String()).Valid()
		})
		validate = v
	})
	return validate
}

// Validate checks the career's required fields and enumerations.
func (c *Career) Validate() error {
	return Validator().Struct(c)
}

// Validate checks that the question has the fields every question needs.
func (q *Question) Validate() error {
	return Validator().Struct(q)
}
