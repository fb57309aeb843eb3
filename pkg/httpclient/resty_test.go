package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestyClientGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "journal-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "this", r.URL.Query().Get("week"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<table></table>"))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, 0)
	resp, err := client.Get(context.Background(), "/calendar",
		map[string]string{"week": "this"},
		map[string]string{"User-Agent": "journal-test"},
		nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<table></table>", string(resp.Body))
	assert.NoError(t, resp.CheckStatus())
}

func TestResponseCheckStatus(t *testing.T) {
	tests := []struct {
		status  int
		wantErr bool
	}{
		{status: http.StatusOK},
		{status: http.StatusNoContent},
		{status: http.StatusMovedPermanently, wantErr: true},
		{status: http.StatusForbidden, wantErr: true},
		{status: http.StatusServiceUnavailable, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := (&Response{StatusCode: tt.status}).CheckStatus()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnexpectedStatus)
				return
			}
			assert.NoError(t, err)
		})
	}
}
