// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Configuration
	OpConfigLoad     Op = "load configuration"
	OpConfigValidate Op = "validate configuration"

	// Data
	OpDatasetLoad  Op = "load table data"
	OpDatasetQuery Op = "query table data"

	// Table
	OpTableBuild Op = "build column window"

	// Startup
	OpLogSetup   Op = "open debug log"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message naming the object the operation
// failed on, such as a file path.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
