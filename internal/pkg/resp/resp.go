/*
Package resp provides helper functions for constructing and sending standardized HTTP JSON responses.

Every facade endpoint answers with the same {code, message, data} envelope:
code 0 with a payload on success, a business code with its user-facing message
on failure. The UI switches on the code and shows the message verbatim.
*/
package resp

import (
	"encoding/json"
	"net/http"

	"bloxclone/internal/pkg/errs"
	"bloxclone/internal/pkg/logx"
)

// JSONResponse is the envelope wrapped around every facade response.
type JSONResponse struct {
	// Code is the business status code: 0 for success, otherwise a code from
	// the errs package.
	Code int `json:"code"`

	// Message is the status description or the user-facing error message.
	Message string `json:"message"`

	// Data is the optional payload (the user record, the catalog, a reply).
	Data any `json:"data,omitempty"`
}

// RespondJSON sets the content headers and sends the encoded payload.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	response, err := json.Marshal(payload)
	if err != nil {
		logx.Error(
			err,
			"Error encoding JSON response",
			"http_status", httpStatus,
		)

		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatus)
	w.Write(response)
}

// RespondSuccess sends the success envelope with HTTP 200 OK.
func RespondSuccess(w http.ResponseWriter, r *http.Request, data any) {
	res := JSONResponse{
		Code:    0,
		Message: "success",
		Data:    data,
	}
	RespondJSON(w, r, http.StatusOK, res)
}

// RespondError sends the error envelope. A nil error is treated as an
// unclassified internal failure rather than a success.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	res := JSONResponse{
		Code:    customErr.Code,
		Message: customErr.Message,
		Data:    nil,
	}
	RespondJSON(w, r, customErr.Status, res)
}
