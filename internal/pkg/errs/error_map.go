/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the user message and HTTP status code.
// The UI renders these messages verbatim, so the account messages are written
// as user-facing copy.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format."},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Unsupported request format."},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrRateLimitExceeded:    {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Shop and Economy Errors
	ErrPurchaseFailed:   {Code: ErrPurchaseFailed, Message: "Purchase failed. Check your Robux balance."},
	ErrPurchaseDeclined: {Code: ErrPurchaseDeclined, Message: "Purchase cancelled."},

	// 3xxx: Session, Account, and Moderation Errors
	ErrNotSignedIn:          {Code: ErrNotSignedIn, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},
	ErrNotAllowed:           {Code: ErrNotAllowed, Message: "You do not have permission to do that.", Status: http.StatusForbidden},
	ErrOwnerPasswordInvalid: {Code: ErrOwnerPasswordInvalid, Message: "Invalid password for Developer Account."},
	ErrAccountBanned:        {Code: ErrAccountBanned, Message: "Account Banned: %s"},
	ErrUserNotFound:         {Code: ErrUserNotFound, Message: "User not found. Please Sign Up."},
	ErrReservedUsername:     {Code: ErrReservedUsername, Message: "Cannot create account with this restricted name."},
	ErrUsernameTaken:        {Code: ErrUsernameTaken, Message: "Username already taken."},
	ErrInvalidUsername:      {Code: ErrInvalidUsername, Message: "Invalid username."},

	// 4xxx: Friends and Messaging Errors
	ErrFriendNotFound:        {Code: ErrFriendNotFound, Message: "Friend not found."},
	ErrMessageContentTooLong: {Code: ErrMessageContentTooLong, Message: "Message is too long."},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
