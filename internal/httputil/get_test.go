// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Success(t *testing.T) {
	var calls int32
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	body, err := Get(context.Background(), ts.Client(), ts.URL, "test/0.1")
	require.NoError(t, err)

	assert.Equal(t, `{"ok":true}`, string(body))
	assert.Equal(t, "test/0.1", gotUA)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGet_StatusErrorNoRetry(t *testing.T) {
	tests := []struct {
		name string
		code int
	}{
		{"429 rate limit", http.StatusTooManyRequests},
		{"403 forbidden", http.StatusForbidden},
		{"500 server error", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(tt.code)
				w.Write([]byte(`{"error":{"message":"nope"}}`))
			}))
			defer ts.Close()

			_, err := Get(context.Background(), ts.Client(), ts.URL, "")
			require.Error(t, err)

			var se *StatusError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.code, se.Code)
			assert.Contains(t, se.Body, "nope")
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		})
	}
}

func TestGet_TruncatesLongErrorBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(strings.Repeat("x", 2000)))
	}))
	defer ts.Close()

	_, err := Get(context.Background(), ts.Client(), ts.URL, "")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Len(t, se.Body, maxErrorBody+3)
	assert.True(t, strings.HasPrefix(err.Error(), "HTTP 400: "))
}

func TestGet_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := Get(context.Background(), http.DefaultClient, url+"?key=secret-key&q=go", "")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-key")

	var se *StatusError
	assert.False(t, errors.As(err, &se))
}

func TestGet_BadURLOmitsQuery(t *testing.T) {
	_, err := Get(context.Background(), http.DefaultClient, "http://bad host/v1?key=secret-key&q=go", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating request")
	assert.Contains(t, err.Error(), "http://bad host/v1")
	assert.NotContains(t, err.Error(), "secret-key")
}

func TestStatusErrorWithoutBody(t *testing.T) {
	err := &StatusError{Code: http.StatusBadGateway}
	assert.Equal(t, "HTTP 502", err.Error())
}
