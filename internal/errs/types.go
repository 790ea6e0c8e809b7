package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// NotFoundError signals that a requested member does not exist in the
// current session.
type NotFoundError struct {
	ErrorMessage
}

// ValidationError signals a malformed request (bad filter, bad sort
// column, missing upload).
type ValidationError struct {
	ErrorMessage
}

// WorkbookFormatError signals that the uploaded bytes are not a decodable
// workbook (corrupt, wrong format, or encrypted). Not retryable with the
// same file.
type WorkbookFormatError struct {
	ErrorMessage
}

// EmptyImportError signals that decoding succeeded but produced nothing
// usable: zero rows, zero complete records, or nothing to export.
type EmptyImportError struct {
	ErrorMessage
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewWorkbookFormatError(message string) *WorkbookFormatError {
	return &WorkbookFormatError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewEmptyImportError(message string) *EmptyImportError {
	return &EmptyImportError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}
