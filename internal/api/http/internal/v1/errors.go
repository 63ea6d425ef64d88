package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	InternalErrorCode      = 1000
	InternalErrorMessage   = "internal server error"
	InvalidRequestCode     = 1001
	InvalidRequestMessage  = "invalid request body"
	ValidationErrorCode    = 1002
	ValidationErrorMessage = "validation error"

	CityNotFoundCode         = 2001
	CityNotFoundMessage      = "city not found"
	CityAlreadyExistsCode    = 2002
	CityAlreadyExistsMessage = "city already exists"
	CityInvalidIDCode        = 2003
	CityInvalidIDMessage     = "city id must be an integer"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case InternalErrorCode:
		errorStruct.ErrorCode = InternalErrorCode
		errorStruct.ErrorMessage = InternalErrorMessage
	case InvalidRequestCode:
		errorStruct.ErrorCode = InvalidRequestCode
		errorStruct.ErrorMessage = InvalidRequestMessage
	case CityNotFoundCode:
		errorStruct.ErrorCode = CityNotFoundCode
		errorStruct.ErrorMessage = CityNotFoundMessage
	case CityAlreadyExistsCode:
		errorStruct.ErrorCode = CityAlreadyExistsCode
		errorStruct.ErrorMessage = CityAlreadyExistsMessage
	case CityInvalidIDCode:
		errorStruct.ErrorCode = CityInvalidIDCode
		errorStruct.ErrorMessage = CityInvalidIDMessage
	}

	return errorStruct
}
