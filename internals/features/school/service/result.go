// Package service is the mutation core for the school records: every
// create/update/delete goes through one handler here, which validates the
// payload, authorizes the caller, runs referential guards, provisions
// identity accounts where needed, mutates the store and finally stamps the
// affected listing views.
package service

// Result is the uniform outcome of a mutation handler. Exactly one of
// Success or Error is set; Message is only present when the caller should
// see a specific explanation instead of the generic failure text.
type Result struct {
	Success bool   `json:"success"`
	Error   bool   `json:"error"`
	Message string `json:"message,omitempty"`
}

func ok() Result {
	return Result{Success: true}
}

func fail() Result {
	return Result{Error: true}
}

func failMsg(msg string) Result {
	return Result{Error: true, Message: msg}
}
