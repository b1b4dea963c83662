// Package matching implements quiz scoring: it turns a validated set of quiz
// answers and the breed catalog into exactly five ranked breed matches, using
// the narrative collaborator for ranking and enforcing the output contract
// around that call.
package matching

import "fmt"

// InvalidQuizAnswerError indicates one or more required quiz questions were
// unanswered. Raised before any collaborator call; the caller can resubmit.
type InvalidQuizAnswerError struct {
	Cause error
}

func (e *InvalidQuizAnswerError) Error() string {
	return fmt.Sprintf("invalid quiz answers: %v", e.Cause)
}

func (e *InvalidQuizAnswerError) Unwrap() error {
	return e.Cause
}

// InvalidIdentityError indicates the submission did not carry exactly one of
// an authenticated user id or an anonymous session id.
type InvalidIdentityError struct {
	Reason string
}

func (e *InvalidIdentityError) Error() string {
	return fmt.Sprintf("invalid submission identity: %s", e.Reason)
}

// MalformedResponseError indicates the narrative collaborator returned
// non-JSON, a wrong-length match array, or a field violating its bounds.
// The request was valid; the failure is upstream and retryable.
type MalformedResponseError struct {
	Reason string
	Cause  error
}

func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed collaborator response: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("malformed collaborator response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}

// UnavailableError indicates the narrative collaborator could not be reached
// or timed out. Retryable.
type UnavailableError struct {
	Cause error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("narrative collaborator unavailable: %v", e.Cause)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
