package response

const (
	// MessageSuccess is the message attached to successful responses.
	MessageSuccess = "Success"

	// InternalServerErrorCode is the error code for unhandled failures.
	InternalServerErrorCode = 500

	// DefaultErrorMessage hides internal details from API consumers.
	DefaultErrorMessage = "Something went wrong"
)
