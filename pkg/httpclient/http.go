package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

// Response is the raw result of a request. Body is always read fully.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// CheckStatus fails with ErrUnexpectedStatus unless the response is 2xx.
func (r *Response) CheckStatus() error {
	if r.StatusCode >= 200 && r.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnexpectedStatus, r.StatusCode)
}

type Client interface {
	Get(ctx context.Context, endpoint string, queryParams map[string]string, headers map[string]string, result interface{}) (*Response, error)
}
