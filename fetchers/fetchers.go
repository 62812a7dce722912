package fetchers

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrClient  = errors.New("client error")
	ErrServer  = errors.New("server error")
	ErrUnknown = errors.New("unknown error")
)

func handleHTTPStatusCode(res *http.Response) error {
	if res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	switch {
	case res.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrServer, res.StatusCode)
	case res.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("%w: status %d", ErrClient, res.StatusCode)
	}

	return fmt.Errorf("%w: status %d", ErrUnknown, res.StatusCode)
}
