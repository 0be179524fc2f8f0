package cli

import (
	"fmt"

	"github.com/mtmgroup/dashboards-ui/internal/app/types"
)

// RedirectError means the user has to sign in at URL first.
type RedirectError struct {
	URL string
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("sign-in required: %s", e.URL)
}

func (e *RedirectError) Unwrap() error {
	return types.ErrUnauthenticated
}

// formError is a submit that did not go through; Message is what the
// dialog would show inline.
type formError struct {
	Message string
}

func (e formError) Error() string {
	return e.Message
}
