package domain

type ErrorCode string

const (
	ErrorCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrorCodeForbidden         ErrorCode = "FORBIDDEN"
	ErrorCodeValidation        ErrorCode = "VALIDATION"
	ErrorCodeUserExists        ErrorCode = "USER_EXISTS"
	ErrorCodeInvalidCredential ErrorCode = "INVALID_CREDENTIALS"
	ErrorCodeAssetRetired      ErrorCode = "ASSET_RETIRED"
	ErrorCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	ErrorCodeNotAssigned       ErrorCode = "NOT_ASSIGNED"
)

type DomainError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
}

func (e *DomainError) Error() string {
	return string(e.Code) + ": " + e.Message
}
