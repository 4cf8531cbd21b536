// Package response writes the API's JSON envelopes. Every endpoint answers
// either {"success":true,"data":...} or
// {"success":false,"error":{"code":...,"message":...}}.
package response

import "github.com/gin-gonic/gin"

// Success writes a data envelope with the given status code.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes an error envelope. code is a stable machine-readable
// identifier such as VALIDATION_ERROR or SLOT_CONFLICT.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   errorBody(code, message, nil),
	})
}

// ErrorWithDetails is Error with an extra free-form details payload, used for
// per-field validation results.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   errorBody(code, message, details),
	})
}

func errorBody(code, message string, details any) gin.H {
	body := gin.H{
		"code":    code,
		"message": message,
	}
	if details != nil {
		body["details"] = details
	}
	return body
}
