package auth

import "errors"

var (
	ErrInvalidName     = errors.New("Please provide a name")
	ErrInvalidEmail    = errors.New("Please enter a valid email address")
	ErrInvalidPhone    = errors.New("Please enter a valid 10-digit phone number")
	ErrShortPass       = errors.New("password can't be less than 8 characters")
	ErrInvalidPass     = errors.New("Invalid credentials")
	ErrEmailExists     = errors.New("email is already registered")
	ErrBrandNotFound   = errors.New("Brand not found")
	ErrInfNotFound     = errors.New("Influencer not found")
	ErrInvalidCountry  = errors.New("Invalid country ID")
	ErrInvalidCalling  = errors.New("Invalid calling code ID")
	ErrMissingSocial   = errors.New("Please provide a social media handle")
	ErrMissingAudience = errors.New("Please provide an audience range")
	ErrTokenRequired   = errors.New("Token required")
	ErrInvalidToken    = errors.New("Invalid or expired token")
)
