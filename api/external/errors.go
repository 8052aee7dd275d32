/* errors.go
 * Contains the error types returned when talking to Battlefy and Overbuff. Callers need to tell "could not ask"
 * apart from "asked and got nothing", so only transport and decode failures are errors here
 * Authors: Zachary Bower
 */

package external

import (
	"errors"
	"fmt"
)

// NetworkError is returned when a request to an external endpoint could not be completed: transport failures,
// timeouts and non 200 responses
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a response body does not match the expected schema
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error decoding response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err has a NetworkError in its chain
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsDecodeError reports whether err has a DecodeError in its chain
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
