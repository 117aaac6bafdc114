package client

import (
	"context"
	"encoding/json"
	"net/url"

	payrexhttp "github.com/payrex-community/payrex-go/internal/http"
	"github.com/payrex-community/payrex-go/pkg/payrex"
)

// validatable is implemented by request types with local invariants. The
// facade checks them before any network traffic.
type validatable interface {
	Validate() error
}

func validateBody(body interface{}) error {
	if v, ok := body.(validatable); ok && v != nil {
		return v.Validate()
	}

	return nil
}

func decodeResource[T any](body []byte) (*T, error) {
	var resource T
	if err := json.Unmarshal(body, &resource); err != nil {
		return nil, payrex.WrapError(payrex.ErrorKindDecoding, "parsing response body", err)
	}

	return &resource, nil
}

// createResource POSTs a body and decodes the created resource.
func createResource[T any](ctx context.Context, httpClient *payrexhttp.Client, path string, body interface{}) (*T, error) {
	if err := validateBody(body); err != nil {
		return nil, err
	}

	resp, err := httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, err
	}

	return decodeResource[T](resp.Body)
}

// getResource GETs a single resource by path.
func getResource[T any](ctx context.Context, httpClient *payrexhttp.Client, path string) (*T, error) {
	resp, err := httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	return decodeResource[T](resp.Body)
}

// putResource PUTs a body and decodes the updated resource.
func putResource[T any](ctx context.Context, httpClient *payrexhttp.Client, path string, body interface{}) (*T, error) {
	if err := validateBody(body); err != nil {
		return nil, err
	}

	resp, err := httpClient.Put(ctx, path, body)
	if err != nil {
		return nil, err
	}

	return decodeResource[T](resp.Body)
}

// patchResource PATCHes a body and decodes the updated resource.
func patchResource[T any](ctx context.Context, httpClient *payrexhttp.Client, path string, body interface{}) (*T, error) {
	if err := validateBody(body); err != nil {
		return nil, err
	}

	resp, err := httpClient.Patch(ctx, path, body)
	if err != nil {
		return nil, err
	}

	return decodeResource[T](resp.Body)
}

// listResource GETs a collection page.
func listResource[T any](ctx context.Context, httpClient *payrexhttp.Client, path string, query url.Values) (*payrex.List[T], error) {
	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	return decodeResource[payrex.List[T]](resp.Body)
}

// deleteResource DELETEs a resource; the response body is discarded.
func deleteResource(ctx context.Context, httpClient *payrexhttp.Client, path string) error {
	_, err := httpClient.Delete(ctx, path)

	return err
}
