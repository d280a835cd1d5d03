package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ONSdigital/log.go/v2/log"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

//go:generate moq -out mocks_catalog.go . HTTPClient

const actionPath = "/api/3/action/"

// HTTPClient is the subset of the dp-net http client used to call the catalog
type HTTPClient interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Error is a failed catalog action
type Error struct {
	Action     string
	StatusCode int
	Type       string
	Message    string
}

func (e *Error) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("catalog action %s failed with status %d: %s: %s", e.Action, e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("catalog action %s failed with status %d: %s", e.Action, e.StatusCode, e.Message)
}

// Code returns the http status code of the failed action
func (e *Error) Code() int {
	return e.StatusCode
}

// IsNotFound reports whether err is a catalog not found error
func IsNotFound(err error) bool {
	var catalogErr *Error
	return errors.As(err, &catalogErr) && catalogErr.StatusCode == http.StatusNotFound
}

func isConflict(err error) bool {
	var catalogErr *Error
	return errors.As(err, &catalogErr) && catalogErr.StatusCode == http.StatusConflict
}

// Client calls the CKAN action API of the HDX catalog
type Client struct {
	url      string
	apiKey   string
	client   HTTPClient
	validate *validator.Validate
}

// writeActions change the catalog and must be sent at most once
var writeActions = []string{
	"package_create",
	"package_update",
	"ckanext_showcase_create",
	"ckanext_showcase_update",
	"ckanext_showcase_package_association_create",
	"resource_view_create",
	"resource_view_update",
}

// retryExcluder is implemented by clients that can skip retries for some paths,
// such as the dp-net client
type retryExcluder interface {
	SetPathsWithNoRetries(paths []string)
}

// New creates a catalog client for the catalog at hdxURL. When client supports
// it, write actions are excluded from retries: the client should not be shared
// with other callers.
func New(hdxURL, apiKey string, client HTTPClient) *Client {
	c := &Client{
		url:      strings.TrimSuffix(hdxURL, "/"),
		apiKey:   apiKey,
		client:   client,
		validate: validator.New(),
	}

	if rc, ok := client.(retryExcluder); ok {
		rc.SetPathsWithNoRetries(c.WritePaths())
	}
	return c
}

// WritePaths returns the request paths of the actions that change the catalog
func (c *Client) WritePaths() []string {
	base := ""
	if u, err := url.Parse(c.url); err == nil {
		base = strings.TrimSuffix(u.Path, "/")
	}

	paths := make([]string, 0, len(writeActions))
	for _, action := range writeActions {
		paths = append(paths, base+actionPath+action)
	}
	return paths
}

// URL returns the base url of the catalog
func (c *Client) URL() string {
	return c.url
}

type envelope struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Error   *struct {
		Type    string `json:"__type"`
		Message string `json:"message"`
	} `json:"error"`
}

// action posts payload to the named action and decodes its result into result
func (c *Client) action(ctx context.Context, name string, payload, result interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s payload", name)
	}

	req, err := http.NewRequest(http.MethodPost, c.url+actionPath+name, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(err, "failed to create %s request", name)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		return errors.Wrapf(err, "failed to call catalog action %s", name)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Error(ctx, "error closing http response body", err, log.Data{"action": name})
		}
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s response", name)
	}

	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return &Error{Action: name, StatusCode: resp.StatusCode, Message: "invalid response body"}
	}

	if resp.StatusCode != http.StatusOK || !env.Success {
		catalogErr := &Error{Action: name, StatusCode: resp.StatusCode}
		if env.Error != nil {
			catalogErr.Type = env.Error.Type
			catalogErr.Message = env.Error.Message
		}
		if catalogErr.StatusCode == http.StatusOK {
			catalogErr.StatusCode = http.StatusInternalServerError
		}
		return catalogErr
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(env.Result, result); err != nil {
		return errors.Wrapf(err, "failed to decode %s result", name)
	}
	return nil
}
