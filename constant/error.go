package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrValidation
	ErrEmptyBody
	ErrInvalidID
	ErrStudentNotFound
	ErrUserNotFound
	ErrStudentExists
	ErrMissingToken
	ErrInvalidToken
	ErrInvalidFile
	ErrFileTooLarge
	ErrMethodNotAllowed
	ErrTooManyRequests
	ErrNoStudentsFound
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:          "success",
	ErrInternal:         "Internal Server Error",
	ErrNotFound:         "Route not found",
	ErrInvalidRequest:   "Invalid request",
	ErrUnauthorize:      "Authorization header missing or malformed",
	ErrCredentialExists: "Email or Username already in use",
	ErrInvalidPassword:  "Invalid credentials",
	ErrValidation:       "Validation failed",
	ErrEmptyBody:        "Request body is missing",
	ErrInvalidID:        "Invalid Id provided",
	ErrStudentNotFound:  "Student not found",
	ErrUserNotFound:     "User not found",
	ErrStudentExists:    "Email already in use",
	ErrMissingToken:     "Verification token is missing",
	ErrInvalidToken:     "Invalid or expired token",
	ErrInvalidFile:      "Only image files are allowed!",
	ErrFileTooLarge:     "File too large",
	ErrMethodNotAllowed: "Method not allowed",
	ErrTooManyRequests:  "Verification email already sent, please wait",
	ErrNoStudentsFound:  "No students found",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:          http.StatusOK,
	ErrInternal:         http.StatusInternalServerError,
	ErrNotFound:         http.StatusNotFound,
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrUnauthorize:      http.StatusUnauthorized,
	ErrCredentialExists: http.StatusConflict,
	ErrInvalidPassword:  http.StatusUnauthorized,
	ErrValidation:       http.StatusBadRequest,
	ErrEmptyBody:        http.StatusBadRequest,
	ErrInvalidID:        http.StatusBadRequest,
	ErrStudentNotFound:  http.StatusNotFound,
	ErrUserNotFound:     http.StatusNotFound,
	ErrStudentExists:    http.StatusConflict,
	ErrMissingToken:     http.StatusBadRequest,
	ErrInvalidToken:     http.StatusBadRequest,
	ErrInvalidFile:      http.StatusBadRequest,
	ErrFileTooLarge:     http.StatusBadRequest,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
	ErrTooManyRequests:  http.StatusTooManyRequests,
	ErrNoStudentsFound:  http.StatusNotFound,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:          "0000",
	ErrInternal:         "0001",
	ErrNotFound:         "0002",
	ErrInvalidRequest:   "0003",
	ErrUnauthorize:      "0004",
	ErrCredentialExists: "0005",
	ErrInvalidPassword:  "0006",
	ErrValidation:       "0007",
	ErrEmptyBody:        "0008",
	ErrInvalidID:        "0009",
	ErrStudentNotFound:  "0010",
	ErrUserNotFound:     "0011",
	ErrStudentExists:    "0012",
	ErrMissingToken:     "0013",
	ErrInvalidToken:     "0014",
	ErrInvalidFile:      "0015",
	ErrFileTooLarge:     "0016",
	ErrMethodNotAllowed: "0017",
	ErrTooManyRequests:  "0018",
	ErrNoStudentsFound:  "0019",
}
