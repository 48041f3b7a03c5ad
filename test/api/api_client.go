/*
Copyright 2026 the Petstore E2E Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
)

//go:generate mockgen -source=api_client.go -destination=mock/interfaces.go -package=mock

// HTTPDoer is the transport used by APIClient, satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type APIClient struct {
	baseURL   string
	client    HTTPDoer
	config    *TestConfig
	endpoints *Endpoints
	contract  *Contract
}

func NewAPIClientWithConfig(config *TestConfig) *APIClient {
	return NewAPIClientWithDoer(config, &http.Client{
		Timeout: config.RequestTimeout,
	})
}

// NewAPIClientWithDoer allows the transport to be replaced, e.g. by a mock.
func NewAPIClientWithDoer(config *TestConfig, doer HTTPDoer) *APIClient {
	return &APIClient{
		baseURL:   strings.TrimSuffix(config.BaseURL, "/"),
		client:    doer,
		config:    config,
		endpoints: NewEndpoints(),
	}
}

// SetContract enables OpenAPI validation of every response.
func (c *APIClient) SetContract(contract *Contract) {
	c.contract = contract
}

func (c *APIClient) BaseURL() string {
	return c.baseURL
}

func (c *APIClient) Endpoints() *Endpoints {
	return c.endpoints
}

// Response is a fully read HTTP response.
type Response struct {
	Method     string
	Path       string
	StatusCode int
	Header     http.Header
	Body       []byte
	TraceID    string
	Duration   time.Duration
}

// Text returns the body as a string, used for the literal error bodies.
func (r *Response) Text() string {
	return string(r.Body)
}

// CheckStatus returns a *StatusError if the status code is not the expected one.
func (r *Response) CheckStatus(expected int) error {
	if r.StatusCode == expected {
		return nil
	}

	return &StatusError{
		Method:   r.Method,
		Path:     r.Path,
		Expected: expected,
		Actual:   r.StatusCode,
		Body:     string(r.Body),
		TraceID:  r.TraceID,
	}
}

// JSONKind describes the top level JSON value of a body.
type JSONKind string

const (
	JSONArray   JSONKind = "array"
	JSONObject  JSONKind = "object"
	JSONScalar  JSONKind = "scalar"
	JSONInvalid JSONKind = "invalid"
)

// Kind reports whether the body is a JSON array, object or something else.
// A body that is not exactly one JSON value is JSONInvalid.
func (r *Response) Kind() JSONKind {
	if !json.Valid(r.Body) {
		return JSONInvalid
	}

	token, err := json.NewDecoder(bytes.NewReader(r.Body)).Token()
	if err != nil {
		return JSONInvalid
	}

	switch token {
	case json.Delim('['):
		return JSONArray
	case json.Delim('{'):
		return JSONObject
	default:
		return JSONScalar
	}
}

// Decode unmarshals the body into out.
func (r *Response) Decode(out any) error {
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("%w: %s %s: %w, body: %s", ErrUnexpectedBody, r.Method, r.Path, err, string(r.Body))
	}

	return nil
}

func (r *Response) Pet() (*Pet, error) {
	var pet Pet
	if err := r.Decode(&pet); err != nil {
		return nil, err
	}

	return &pet, nil
}

func (r *Response) Pets() ([]Pet, error) {
	var pets []Pet
	if err := r.Decode(&pets); err != nil {
		return nil, err
	}

	return pets, nil
}

func (r *Response) Order() (*Order, error) {
	var order Order
	if err := r.Decode(&order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *Response) Inventory() (Inventory, error) {
	var inventory Inventory
	if err := r.Decode(&inventory); err != nil {
		return nil, err
	}

	return inventory, nil
}

func (r *Response) ErrorObject() (*ErrorObject, error) {
	var object ErrorObject
	if err := r.Decode(&object); err != nil {
		return nil, err
	}

	return &object, nil
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *APIClient) logErrorWithStatus(method, path string, duration time.Duration, statusCode int, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s status=%d traceparent=%s error=%v\n", method, path, context, duration, statusCode, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s traceparent=%s\n", method, path, expectedStatus, actualStatus, body, traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
func generateTraceID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)

	return hex.EncodeToString(buf)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)

	return hex.EncodeToString(buf)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// classifyTransportError separates timeouts from other transport failures.
func classifyTransportError(err error) error {
	var netErr net.Error

	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", ErrRequestTimeout, err)
	}

	return fmt.Errorf("%w: %w", ErrTransport, err)
}

func encodeBody(payload any) (io.Reader, error) {
	switch t := payload.(type) {
	case nil:
		return nil, nil
	case RawJSON:
		return bytes.NewReader(t), nil
	default:
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		return bytes.NewReader(data), nil
	}
}

// Do issues a request with an optional JSON payload and returns the response
// whatever its status code. Errors are reserved for failures to get a
// response, or a response contradicting the OpenAPI contract when enabled.
func (c *APIClient) Do(ctx context.Context, method, path string, payload any) (*Response, error) {
	return c.doRequest(ctx, method, path, payload, 0)
}

//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, path string, payload any, expectedStatus int) (*Response, error) {
	body, err := encodeBody(payload)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		err = classifyTransportError(err)
		c.logError(method, path, duration, traceParent, err, "http request failed")

		return nil, err
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = classifyTransportError(err)
		c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "reading response body")

		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	result := &Response{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		TraceID:    extractTraceID(traceParent),
		Duration:   duration,
	}

	// The document does not describe itself.
	if c.contract != nil && path != c.endpoints.OpenAPISpec() {
		if err := c.contract.ValidateResponse(ctx, req, result); err != nil {
			c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "contract validation")
			return result, err
		}
	}

	if expectedStatus > 0 {
		if err := result.CheckStatus(expectedStatus); err != nil {
			c.logUnexpectedStatus(method, path, expectedStatus, resp.StatusCode, string(respBody), traceParent)
			return result, err
		}
	}

	return result, nil
}

// AddPet sends POST /pet.
func (c *APIClient) AddPet(ctx context.Context, pet any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, c.endpoints.AddPet(), pet)
}

// UpdatePet sends PUT /pet.
func (c *APIClient) UpdatePet(ctx context.Context, pet any) (*Response, error) {
	return c.Do(ctx, http.MethodPut, c.endpoints.UpdatePet(), pet)
}

// GetPet sends GET /pet/{petId}.
func (c *APIClient) GetPet(ctx context.Context, petID int64) (*Response, error) {
	return c.Do(ctx, http.MethodGet, c.endpoints.GetPet(petID), nil)
}

// DeletePet sends DELETE /pet/{petId}.
func (c *APIClient) DeletePet(ctx context.Context, petID int64) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, c.endpoints.DeletePet(petID), nil)
}

// FindPetsByStatus sends GET /pet/findByStatus?status=.
func (c *APIClient) FindPetsByStatus(ctx context.Context, status string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, c.endpoints.FindPetsByStatus(status), nil)
}

// PlaceOrder sends POST /store/order.
func (c *APIClient) PlaceOrder(ctx context.Context, order any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, c.endpoints.PlaceOrder(), order)
}

// GetOrder sends GET /store/order/{orderId}.
func (c *APIClient) GetOrder(ctx context.Context, orderID int64) (*Response, error) {
	return c.Do(ctx, http.MethodGet, c.endpoints.GetOrder(orderID), nil)
}

// DeleteOrder sends DELETE /store/order/{orderId}.
func (c *APIClient) DeleteOrder(ctx context.Context, orderID int64) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, c.endpoints.DeleteOrder(orderID), nil)
}

// GetInventory sends GET /store/inventory.
func (c *APIClient) GetInventory(ctx context.Context) (*Response, error) {
	return c.Do(ctx, http.MethodGet, c.endpoints.Inventory(), nil)
}

// GetOpenAPISpec fetches the document the service publishes about itself.
func (c *APIClient) GetOpenAPISpec(ctx context.Context) ([]byte, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, c.endpoints.OpenAPISpec(), nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("getting openapi document: %w", err)
	}

	return resp.Body, nil
}

// CreatePet adds a pet and expects the service to accept it.
func (c *APIClient) CreatePet(ctx context.Context, pet *Pet) (*Pet, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, c.endpoints.AddPet(), pet, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("creating pet: %w", err)
	}

	return resp.Pet()
}

// CreateOrder places an order and expects the service to accept it.
func (c *APIClient) CreateOrder(ctx context.Context, order *Order) (*Order, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, c.endpoints.PlaceOrder(), order, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	return resp.Order()
}
