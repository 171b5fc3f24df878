// Package response defines the JSON envelope every API route answers with.
package response

import (
	deliverycontext "gatehouse/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "STAGE_NOT_FOUND"
	Message string `json:"message"`           // User-facing message
	Details string `json:"details,omitempty"` // Field-level hints, 4xx only
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Success writes data under the success envelope.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.EchoRequestID(c),
		},
	})
}

// Error writes the error envelope. Details are dropped for 401, 403 and every 5xx.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if statusCode >= 500 || statusCode == 401 || statusCode == 403 {
		details = ""
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.EchoRequestID(c),
		},
	})
}
