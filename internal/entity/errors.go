// Package entity defines the entities and errors shared by the microservices:
// timestamps, request client info, short URLs, users with their exercise logs
// and uploaded file metadata.
package entity

import "errors"

var (
	// ErrInvalidDate is returned when a date string cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidURL is returned when a URL is malformed or uses an unsupported scheme.
	ErrInvalidURL = errors.New("invalid url")
	// ErrUnreachableURL is returned when the host of a URL cannot be resolved.
	ErrUnreachableURL = errors.New("unreachable url")
	// ErrShortURLExists is returned when an allocated short url collides with an existing one.
	ErrShortURLExists = errors.New("short url exists")
	// ErrShortURLNotFound is returned when no record matches the requested short url.
	ErrShortURLNotFound = errors.New("short url not found")
	// ErrUsernameTaken is returned when a user with the same username already exists.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUserNotFound is returned when no user matches the requested id.
	ErrUserNotFound = errors.New("user not found")
	// ErrCacheMiss is returned by caches when the key is absent.
	ErrCacheMiss = errors.New("cache miss")
)
