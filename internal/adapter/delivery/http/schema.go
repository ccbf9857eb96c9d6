package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// validationError represents an individual validation error.
type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse is the JSON error body shared by every API.
type errorResponse struct {
	Error   string            `json:"error"`
	Details []validationError `json:"details,omitempty"`
}

// Plain text answers of the exercise tracker.
const (
	usernameTakenText = "Username already taken"
	unknownUserIDText = "Unknown userId"
)

var (
	invalidDateResponse = errorResponse{
		Error: "Invalid Date",
	}

	invalidURLResponse = errorResponse{
		Error: "invalid url",
	}

	invalidShortURLResponse = errorResponse{
		Error: "invalid short_url",
	}

	invalidRequestBodyResponse = errorResponse{
		Error: "invalid request body",
	}

	missingFileResponse = errorResponse{
		Error: "missing upfile",
	}

	fileTooLargeResponse = errorResponse{
		Error: "file too large",
	}

	serverErrorResponse = errorResponse{
		Error: "server error",
	}
)

func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "url":
		return "invalid url"
	case "numeric":
		return "must be a number"
	case "gt":
		return "must be a positive number"
	case "date":
		return "invalid date"
	default:
		return "invalid value"
	}
}

func getValidationErrors(err error) []validationError {
	var validationErrs []validationError

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		for _, e := range errs {
			validationErrs = append(validationErrs, validationError{
				Field:   e.Field(),
				Message: messageForTag(e.Tag()),
			})
		}
	}

	return validationErrs
}

func validationErrorResponse(err error) errorResponse {
	return errorResponse{
		Error:   "validation error",
		Details: getValidationErrors(err),
	}
}

// fieldErrorResponse reports a single invalid field detected after struct validation.
func fieldErrorResponse(field, tag string) errorResponse {
	return errorResponse{
		Error: "validation error",
		Details: []validationError{
			{Field: field, Message: messageForTag(tag)},
		},
	}
}
