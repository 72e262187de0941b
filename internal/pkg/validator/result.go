package validator

// Result is the outcome of a business rule evaluation. A rejected result
// carries exactly one reason; there is no partially valid state.
type Result struct {
	Accepted   bool   `json:"accepted"`
	ReasonCode string `json:"reason_code,omitempty"`
	Message    string `json:"message"`
}

func Accept(message string) Result {
	return Result{Accepted: true, Message: message}
}

func Reject(code, message string) Result {
	return Result{Accepted: false, ReasonCode: code, Message: message}
}
