package usecase

const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeConflict    = "CONFLICT"
	CodeNotFound    = "NOT_FOUND"
	CodeTransaction = "TRANSACTION_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

func notFound(message string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: message}
}

func conflict(message string) *DomainError {
	return &DomainError{Code: CodeConflict, Message: message}
}

func transactionFailed(message string) *DomainError {
	return &DomainError{Code: CodeTransaction, Message: message}
}
