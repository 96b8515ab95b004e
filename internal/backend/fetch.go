package backend

import (
	"context"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/Taishi66/kdash/internal/domain"
	"github.com/Taishi66/kdash/internal/future"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// fetcher decodes the body of a GET into T.
type fetcher[T any] struct {
	c *Client
}

// Get issues exactly one GET for path (relative to the server root, query
// string allowed) and returns its pending result. No retry is attempted.
func (f fetcher[T]) Get(ctx context.Context, path string) *future.Future[T] {
	fut := future.New[T]()
	go func() {
		v, err := f.get(ctx, path)
		if err != nil {
			klog.Errorf("GET %s: %v", path, err)
			fut.Reject(err)
			return
		}
		klog.V(2).Infof("GET %s: ok", path)
		fut.Resolve(v)
	}()
	return fut
}

func (f fetcher[T]) get(ctx context.Context, path string) (T, error) {
	var out T

	u, err := url.Parse(path)
	if err != nil {
		return out, &domain.APIError{
			Type:    domain.ErrUnknown,
			Message: err.Error(),
			Err:     err,
		}
	}

	req := f.c.restClient().Get().AbsPath("/" + u.Path).MaxRetries(0)
	for k, vs := range u.Query() {
		for _, v := range vs {
			req = req.Param(k, v)
		}
	}

	body, err := req.Do(ctx).Raw()
	if err != nil {
		return out, classifyError(err, f.c.GetServerURL())
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, decodeError(err, path)
	}
	return out, nil
}

func decodeError(err error, path string) error {
	wrapped := errors.Wrapf(err, "decoding %s", path)
	return &domain.APIError{
		Type:    domain.ErrDecode,
		Message: wrapped.Error(),
		Err:     wrapped,
	}
}
