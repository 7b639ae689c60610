package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Error codes reported to clients
const (
	CodeValidationFailed        = "VALIDATION_FAILED"
	CodeUsernameTaken           = "USERNAME_TAKEN"
	CodeInvalidCredentials      = "INVALID_CREDENTIALS"
	CodeTokenMissingOrMalformed = "TOKEN_MISSING_OR_MALFORMED"
	CodeTokenInvalidOrExpired   = "TOKEN_INVALID_OR_EXPIRED"
	CodeNotFound                = "NOT_FOUND"
	CodeUnknownEndpoint         = "UNKNOWN_ENDPOINT"
	CodeInternal                = "INTERNAL"
)

var validate = newValidator()

type Struct any

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, data any) {
	jsonWithStatus(w, data, http.StatusOK)
}

func JSONWithStatus(w http.ResponseWriter, data any, code int) {
	jsonWithStatus(w, data, code)
}

// Render error with one of the Code* constants and a human readable message
func Error(w http.ResponseWriter, errCode string, message string, status int) {
	jsonWithStatus(w, ErrorResponse{Error: errCode, Message: message}, status)
}

// Render json decoding error.
// The service historically reports body errors as 404, keep it that way.
func DecodeError(w http.ResponseWriter, err error) {
	response := ErrorResponse{
		Error: CodeValidationFailed,
	}

	// Try to provide more specific error message based on error type
	switch err := err.(type) {
	case *json.UnmarshalTypeError:
		response.Message = fmt.Sprintf("Invalid data type for field '%s'", err.Field)
	default:
		response.Message = "Failed to parse JSON request body"
	}

	jsonWithStatus(w, response, http.StatusNotFound)
}

// Render validation errors with per field messages
func ValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	response := ErrorResponse{
		Error:   CodeValidationFailed,
		Message: "Request validation failed",
		Fields:  make(map[string]string, len(errs)),
	}

	// Create user-friendly error messages based on validation tag
	for _, fieldError := range errs {
		var message string
		switch fieldError.Tag() {
		case "required", "notblank":
			message = "This field is required"
		case "min":
			message = fmt.Sprintf("Value is too short (minimum %s)", fieldError.Param())
		case "username":
			message = "Must be at least 3 characters of A-Za-z0-9-_."
		case "password":
			message = "Must be at least 8 characters"
		default:
			message = "Invalid value"
		}

		response.Fields[fieldError.Field()] = message
	}

	jsonWithStatus(w, response, http.StatusNotFound)
}

// BindAndValidate decodes JSON request body into type T and validates it using struct tags.
// Returns the decoded value and writes appropriate error responses for decoding or validation failures.
func BindAndValidate[T Struct](w http.ResponseWriter, r *http.Request) (T, error) {
	var value T

	err := json.NewDecoder(r.Body).Decode(&value)
	if err != nil {
		DecodeError(w, err)
		return value, err
	}

	err = validate.Struct(value)
	if err != nil {
		// pretty sure cast will be ok cause expecting T is valid struct
		errs := err.(validator.ValidationErrors)
		ValidationErrors(w, errs)
		return value, err
	}

	return value, nil
}

// jsonWithStatus sends data as json and enforces status code
func jsonWithStatus(w http.ResponseWriter, data any, code int) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)

	if err := enc.Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(buf.Bytes())
}
