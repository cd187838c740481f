package appstore

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(ClientOptions{Transport: http.DefaultTransport})
	c.itunesBase = srv.URL
	c.searchBase = srv.URL
	c.webBase = srv.URL
	return c
}
