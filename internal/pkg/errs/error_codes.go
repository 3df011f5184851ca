/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific business or system errors both internally
and in responses handed to the client UI.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1005
)

// 2xxx: Shop and Economy Errors
const (
	// ErrPurchaseFailed indicates a buy attempt that the store rejected:
	// no active session, already owned, or insufficient balance.
	ErrPurchaseFailed = 2101

	// ErrPurchaseDeclined indicates the confirmation step answered no.
	ErrPurchaseDeclined = 2102
)

// 3xxx: Session, Account, and Moderation Errors
const (
	// ErrNotSignedIn indicates an operation that requires an active session.
	ErrNotSignedIn = 3001

	// ErrNotAllowed indicates an administrative operation attempted by a
	// session other than the reserved owner identity.
	ErrNotAllowed = 3002

	// ErrOwnerPasswordInvalid indicates a failed password check on the reserved owner account.
	ErrOwnerPasswordInvalid = 3101

	// ErrAccountBanned indicates a login attempt on a suspended account.
	ErrAccountBanned = 3102

	// ErrUserNotFound indicates that the username has no directory entry.
	ErrUserNotFound = 3103

	// ErrReservedUsername indicates a signup attempt with the reserved owner name.
	ErrReservedUsername = 3104

	// ErrUsernameTaken indicates a signup attempt with an existing username.
	ErrUsernameTaken = 3105

	// ErrInvalidUsername indicates that the supplied username failed validation.
	ErrInvalidUsername = 3106
)

// 4xxx: Friends and Messaging Errors
const (
	// ErrFriendNotFound indicates that the friend id has no roster entry.
	ErrFriendNotFound = 4101

	// ErrMessageContentTooLong indicates that the message content exceeded the maximum length limit.
	ErrMessageContentTooLong = 4201
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000
)
