// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP surface from the store containers and validate
// input before it reaches them.
package dto

import (
	"strings"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
	"github.com/FindTheRhythm/stellar-burgers/internal/store"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrIngredientIDRequired is returned when ingredient_id is missing.
	ErrIngredientIDRequired = &ValidationError{Field: "ingredient_id", Message: "is required"}
	// ErrInvalidDirection is returned for a move direction other than up or down.
	ErrInvalidDirection = &ValidationError{Field: "direction", Message: "must be up or down"}
	// ErrEmailRequired is returned when email is missing or malformed.
	ErrEmailRequired = &ValidationError{Field: "email", Message: "must be a valid email address"}
	// ErrPasswordRequired is returned when password is missing.
	ErrPasswordRequired = &ValidationError{Field: "password", Message: "is required"}
	// ErrNameRequired is returned when name is missing.
	ErrNameRequired = &ValidationError{Field: "name", Message: "is required"}
	// ErrTokenRequired is returned when the reset code is missing.
	ErrTokenRequired = &ValidationError{Field: "token", Message: "is required"}
	// ErrEmptyUpdate is returned when a profile update changes nothing.
	ErrEmptyUpdate = &ValidationError{Field: "body", Message: "at least one of name, email, password is required"}
)

// SetBunRequest puts a bun in the builder. An empty id clears the slot.
//
// @Description Request to set or clear the builder bun
type SetBunRequest struct {
	IngredientID string `json:"ingredient_id" example:"643d69a5c3f7b9001cfa093c"`
} // @name SetBunRequest

// AddIngredientRequest appends an ingredient from the loaded catalog.
//
// @Description Request to add a catalog ingredient to the builder
type AddIngredientRequest struct {
	IngredientID string `json:"ingredient_id" binding:"required" example:"643d69a5c3f7b9001cfa0941"`
} // @name AddIngredientRequest

// Validate performs custom validation on the request.
func (r *AddIngredientRequest) Validate() error {
	if strings.TrimSpace(r.IngredientID) == "" {
		return ErrIngredientIDRequired
	}
	return nil
}

// MoveIngredientRequest moves a filling one position.
//
// @Description Request to move a builder filling up or down
type MoveIngredientRequest struct {
	Direction store.Direction `json:"direction" binding:"required" example:"up" enums:"up,down"`
} // @name MoveIngredientRequest

// Validate performs custom validation on the request.
func (r *MoveIngredientRequest) Validate() error {
	if !r.Direction.Valid() {
		return ErrInvalidDirection
	}
	return nil
}

// RegisterRequest represents the JSON request body for the register endpoint.
//
// @Description Request to register a new account upstream
type RegisterRequest struct {
	Email    string `json:"email" binding:"required" example:"user@example.com"`
	Name     string `json:"name" binding:"required" example:"Ann"`
	Password string `json:"password" binding:"required" example:"password123"`
} // @name RegisterRequest

// Validate performs custom validation on the register request.
func (r *RegisterRequest) Validate() error {
	if !validEmail(r.Email) {
		return ErrEmailRequired
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	if r.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// ToModel converts the request into the upstream payload.
func (r *RegisterRequest) ToModel() model.RegisterData {
	return model.RegisterData{Email: strings.TrimSpace(r.Email), Name: strings.TrimSpace(r.Name), Password: r.Password}
}

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Request to sign in upstream
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
} // @name LoginRequest

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if !validEmail(r.Email) {
		return ErrEmailRequired
	}
	if r.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// ToModel converts the request into the upstream payload.
func (r *LoginRequest) ToModel() model.LoginData {
	return model.LoginData{Email: strings.TrimSpace(r.Email), Password: r.Password}
}

// UpdateProfileRequest changes any subset of the profile fields.
//
// @Description Request to update the signed-in profile
type UpdateProfileRequest struct {
	Name     string `json:"name,omitempty" example:"Ann"`
	Email    string `json:"email,omitempty" example:"user@example.com"`
	Password string `json:"password,omitempty" example:"password123"`
} // @name UpdateProfileRequest

// Validate performs custom validation on the request.
func (r *UpdateProfileRequest) Validate() error {
	if r.Name == "" && r.Email == "" && r.Password == "" {
		return ErrEmptyUpdate
	}
	if r.Email != "" && !validEmail(r.Email) {
		return ErrEmailRequired
	}
	return nil
}

// ToModel converts the request into the upstream payload.
func (r *UpdateProfileRequest) ToModel() model.ProfileUpdate {
	return model.ProfileUpdate{Name: strings.TrimSpace(r.Name), Email: strings.TrimSpace(r.Email), Password: r.Password}
}

// ForgotPasswordRequest asks for a reset code by email.
//
// @Description Request to mail a password reset code
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required" example:"user@example.com"`
} // @name ForgotPasswordRequest

// Validate performs custom validation on the request.
func (r *ForgotPasswordRequest) Validate() error {
	if !validEmail(r.Email) {
		return ErrEmailRequired
	}
	return nil
}

// ResetPasswordRequest sets a new password with the mailed code.
//
// @Description Request to reset the password with a mailed code
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required" example:"newpassword"`
	Token    string `json:"token" binding:"required" example:"123456"`
} // @name ResetPasswordRequest

// Validate performs custom validation on the request.
func (r *ResetPasswordRequest) Validate() error {
	if r.Password == "" {
		return ErrPasswordRequired
	}
	if strings.TrimSpace(r.Token) == "" {
		return ErrTokenRequired
	}
	return nil
}

// MessageResponse carries the upstream confirmation of a password flow step.
//
// @Description Confirmation of a password reset step
type MessageResponse struct {
	Message string `json:"message" example:"Reset email sent"`
} // @name MessageResponse

func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}
