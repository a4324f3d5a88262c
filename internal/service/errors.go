package service

import "errors"

// Error texts are the client-visible messages, so they keep the wording the
// frontend alerts on.
var (
	ErrInternal              = errors.New("Internal server error.")
	ErrInvalidUsernameFormat = errors.New("Username can only contain letters, numbers, underscores, hyphens, and periods.")
	ErrInvalidEmailFormat    = errors.New("Invalid email format.")
	ErrUsernameTaken         = errors.New("Username already exists.")
	ErrEmailTaken            = errors.New("Email already exists.")
	ErrInvalidCredentials    = errors.New("Invalid username or password.")
	ErrUserNotFound          = errors.New("User not found")
	ErrPostNotFound          = errors.New("Post not found")
	ErrEmptyPost             = errors.New("Invalid input data")
	ErrInvalidImage          = errors.New("Error processing profile picture")
	ErrAlreadyFollowing      = errors.New("You are already following this user.")
	ErrNotFollowing          = errors.New("You are not following this user.")
	ErrSelfFollow            = errors.New("You cannot follow yourself.")
)
