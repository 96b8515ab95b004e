package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Taishi66/kdash/internal/domain"
	"github.com/Taishi66/kdash/internal/resolve"
	"github.com/Taishi66/kdash/internal/router"
)

// recorder is a fake dashboard API answering with a fixed status and body.
type recorder struct {
	mu     sync.Mutex
	status int
	body   string
	uris   []string
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	r.uris = append(r.uris, req.URL.RequestURI())
	status, body := r.status, r.body
	r.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (r *recorder) requests() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.uris...)
}

func newTestClient(t *testing.T, status int, body string) (*Client, *recorder) {
	t.Helper()
	rec := &recorder{status: status, body: body}
	srv := httptest.NewServer(rec)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	return c, rec
}

func ctxWithTimeout(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func requireType(t *testing.T, err error, want domain.ErrType) {
	t.Helper()
	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	assert.Equal(t, want, apiErr.Type)
}

// --- NewClient ---

func TestNewClient_NoServer(t *testing.T) {
	_, err := NewClient("  ")
	requireType(t, err, domain.ErrNoServer)
}

func TestNewClient_BadURL(t *testing.T) {
	for _, server := range []string{"localhost:9090", "ftp://dash", "http://", "://bad"} {
		t.Run(server, func(t *testing.T) {
			_, err := NewClient(server)
			requireType(t, err, domain.ErrBadServerURL)
		})
	}
}

func TestNewClient_ServerURL(t *testing.T) {
	c, err := NewClient("http://localhost:9090")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9090", c.GetServerURL())
	assert.NoError(t, c.Reconnect())
	assert.Equal(t, "http://localhost:9090", c.GetServerURL())
}

// --- fetch ---

func TestFetch_DecodesPodList(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{
		"listMeta": {"totalItems": 1},
		"pods": [{
			"objectMeta": {"name": "web-1", "namespace": "shop", "creationTimestamp": "2024-01-02T03:04:05Z"},
			"podStatus": {"status": "Running", "podPhase": "Running"},
			"restartCount": 2
		}]
	}`)

	list, err := c.Pods().Get(ctxWithTimeout(t), "api/v1/pod/shop").Await(ctxWithTimeout(t))
	require.NoError(t, err)
	require.Len(t, list.Pods, 1)
	assert.Equal(t, "web-1", list.Pods[0].ObjectMeta.Name)
	assert.Equal(t, int32(2), list.Pods[0].RestartCount)
	assert.Equal(t, 2024, list.Pods[0].ObjectMeta.CreationTimestamp.Year())
	assert.Equal(t, []string{"/api/v1/pod/shop"}, rec.requests())
}

func TestFetch_EmptyNamespaceKeepsTrailingSlash(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{"pods": []}`)

	p := router.NewParams()
	_, err := resolve.PodList(ctxWithTimeout(t), c.Pods(), p).Await(ctxWithTimeout(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"/api/v1/pod/"}, rec.requests())
}

func TestFetch_QueryParams(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{"pods": [{"name": "rc-1-abc", "podContainers": [{"name": "app"}]}]}`)

	got, err := resolve.ReplicationControllerPods(ctxWithTimeout(t), c.ReplicationControllerPods(), "shop", "rc-1", 0).
		Await(ctxWithTimeout(t))
	require.NoError(t, err)
	require.Len(t, got.Pods, 1)
	assert.Equal(t, "app", got.Pods[0].PodContainers[0].Name)
	assert.Equal(t, []string{"/api/v1/replicationcontroller/pod/shop/rc-1?limit=10"}, rec.requests())
}

func TestFetch_StatusErrors(t *testing.T) {
	tests := []struct {
		status int
		want   domain.ErrType
	}{
		{http.StatusUnauthorized, domain.ErrTokenExpired},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusInternalServerError, domain.ErrServerError},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newTestClient(t, tt.status, `not json`)
			_, err := c.Jobs().Get(ctxWithTimeout(t), "api/v1/job/shop").Await(ctxWithTimeout(t))
			requireType(t, err, tt.want)
			assert.Len(t, rec.requests(), 1, "no retry expected")
		})
	}
}

func TestFetch_DecodeError(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `{"deployments": "nope"}`)
	_, err := c.Deployments().Get(ctxWithTimeout(t), "api/v1/deployment/shop").Await(ctxWithTimeout(t))
	requireType(t, err, domain.ErrDecode)
	assert.Contains(t, err.Error(), "decoding api/v1/deployment/shop")
}

func TestFetch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(url)
	require.NoError(t, err)
	_, err = c.Namespaces().Get(ctxWithTimeout(t), "api/v1/namespace").Await(ctxWithTimeout(t))
	requireType(t, err, domain.ErrUnreachable)
}
