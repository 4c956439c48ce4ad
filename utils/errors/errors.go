package errors

import "github.com/muhammadheryan/student-api/constant"

type CustomError struct {
	errType constant.ErrorType
	details []string
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

// Details returns the field level messages attached to a validation error.
func (c CustomError) Details() []string {
	return c.details
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetValidationError builds an ErrValidation carrying every violation in the order found.
func SetValidationError(messages []string) CustomError {
	return CustomError{
		errType: constant.ErrValidation,
		details: messages,
	}
}
