package domain

// ActionResult is the uniform outcome record returned by every admin action.
// Operations never return a Go error to their callers; service failures and
// unexpected faults are both absorbed into this shape so callers branch on
// Success only.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// Error carries the underlying service diagnostic; populated whenever
	// Success is false.
	Error string `json:"error,omitempty"`
	// Details carries per-item diagnostics for bulk operations.
	Details []string `json:"details,omitempty"`
}

// Succeed builds a success result with a human-readable message.
func Succeed(message string) *ActionResult {
	return &ActionResult{
		Success: true,
		Message: message,
	}
}

// Fail builds a failure result. The message is the operation's fixed phrase;
// err supplies the diagnostic text.
func Fail(message string, err error) *ActionResult {
	result := &ActionResult{
		Success: false,
		Message: message,
	}
	if err != nil {
		result.Error = err.Error()
	}
	return result
}
