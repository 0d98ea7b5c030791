// Package services defines the business logic for recipes, discussion posts,
// and user registration. This file centralizes common service-level error
// values so that they can be consistently returned by service methods and
// checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer.
package services

import "errors"

// Recipe-related errors.
var (
	// ErrRecipeNotFound indicates that the requested recipe does not exist.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrEmptyField is returned when a create or update request carries an
	// empty title, ingredient list, or instruction text.
	ErrEmptyField = errors.New("title, ingredients, and instructions are required")

	// ErrInvalidCategory is returned when a recipe category is outside the
	// allowed set (Vegetarian, Non-Vegetarian).
	ErrInvalidCategory = errors.New("category must be Vegetarian or Non-Vegetarian")
)

// Discussion-related errors.
var (
	// ErrEmptyContent is returned when a forum post has no body.
	ErrEmptyContent = errors.New("post content is empty")
)

// User-related errors.
var (
	// ErrEmptyCredentials is returned when registration is attempted with a
	// blank username or password.
	ErrEmptyCredentials = errors.New("username and password are required")

	// ErrUsernameTaken is returned when the requested username already exists.
	ErrUsernameTaken = errors.New("username already taken")
)
