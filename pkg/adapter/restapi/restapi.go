// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package restapi implements the repo.Gateway interface by sending
// HTTP requests to the remote REST API. Each method makes exactly one
// round trip, bounded by the caller context. Nothing is retried or
// cached and no client side timeout is configured. Failures are
// reported as *cerr.RemoteError values carrying the response status.
package restapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/log"
	"github.com/momeni/car-dealer/pkg/core/repo"
)

// Paths of the REST API endpoints, relative to the base URL.
const (
	carsPath        = "api/cars/"
	imagePath       = "api/cars/image/"
	imageDeletePath = "api/cars/image-delete/"
	slidesPath      = "api/cars/image-slider/"

	DefaultTokenPath       = "api/token/"
	DefaultCredentialField = "email"
)

// Client is a REST API client which implements repo.Gateway.
type Client struct {
	base            string
	http            *http.Client
	tokenPath       string
	credentialField string
}

var _ repo.Gateway = (*Client)(nil)

// New instantiates a Client for the baseURL REST API. An empty baseURL
// is a configuration error which is reported as cerr.ErrMissingBaseURL.
// A trailing slash is appended to baseURL if it is missing.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, cerr.ErrMissingBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	c := &Client{base: baseURL}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if c.http == nil {
		c.http = http.DefaultClient
	}
	if c.tokenPath == "" {
		c.tokenPath = DefaultTokenPath
	}
	if c.credentialField == "" {
		c.credentialField = DefaultCredentialField
	}
	return c, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.base
}

// call describes one round trip.
type call struct {
	op       cerr.Op
	resource string
	method   string
	path     string
	token    string

	body        io.Reader
	contentType string
}

func (cl call) fail(ctx context.Context, err error) error {
	log.Warn(ctx, "remote call failed", log.Op(cl.op),
		log.Str("path", cl.path), log.Err("err", err))
	return &cerr.RemoteError{Op: cl.op, Resource: cl.resource, Err: err}
}

// ErrIncompleteResponse indicates a successful response which does
// not carry the canonical record, e.g., an empty body or a record
// with no id.
var ErrIncompleteResponse = errors.New("incomplete response")

// incomplete reports a 2xx response which lacked the what field.
func (cl call) incomplete(ctx context.Context, what string) error {
	return cl.fail(ctx, fmt.Errorf("%w: missing %s", ErrIncompleteResponse, what))
}

// do sends the cl request and decodes a non-empty response body into
// out (unless out is nil).
func (c *Client) do(ctx context.Context, cl call, out any) error {
	req, err := http.NewRequestWithContext(
		ctx, cl.method, c.base+cl.path, cl.body,
	)
	if err != nil {
		return cl.fail(ctx, err)
	}
	req.Header.Set("Accept", "application/json")
	if cl.contentType != "" {
		req.Header.Set("Content-Type", cl.contentType)
	}
	if cl.token != "" {
		req.Header.Set("Authorization", "Bearer "+cl.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return cl.fail(ctx, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Warn(ctx, "remote call is rejected", log.Op(cl.op),
			log.Str("path", cl.path), log.Status(resp.StatusCode))
		return &cerr.RemoteError{
			Op:         cl.op,
			Resource:   cl.resource,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return cl.fail(ctx, err)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return cl.fail(ctx, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}

// withJSON sets the in value as the JSON body of cl.
func (cl call) withJSON(in any) (call, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return cl, fmt.Errorf("encoding %s: %w", cl.resource, err)
	}
	cl.body = bytes.NewReader(data)
	cl.contentType = "application/json"
	return cl, nil
}

// withForm sets a multipart form having the fields as the body of cl.
func (cl call) withForm(fields map[string]string) (call, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return cl, fmt.Errorf("writing %q field: %w", k, err)
		}
	}
	if err := w.Close(); err != nil {
		return cl, fmt.Errorf("closing form: %w", err)
	}
	cl.body = buf
	cl.contentType = w.FormDataContentType()
	return cl, nil
}
