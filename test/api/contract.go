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

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"

	"github.com/petstore-e2e/petstore/pkg/openapi"
)

// Contract validates responses against an OpenAPI document.
type Contract struct {
	router routers.Router
}

// NewContract routes requests for baseURL through the document's operations.
// The document's own servers are replaced, they are usually relative.
func NewContract(doc *openapi3.T, baseURL string) (*Contract, error) {
	routed := *doc
	routed.Servers = openapi3.Servers{
		&openapi3.Server{URL: baseURL},
	}

	router, err := legacy.NewRouter(&routed)
	if err != nil {
		return nil, fmt.Errorf("building openapi router: %w", err)
	}

	return &Contract{
		router: router,
	}, nil
}

// NewPinnedContract uses the document shipped with the suite.
func NewPinnedContract(baseURL string) (*Contract, error) {
	doc, err := openapi.Load()
	if err != nil {
		return nil, err
	}

	return NewContract(doc, baseURL)
}

// LoadRemoteContract uses the document the service publishes about itself.
func LoadRemoteContract(ctx context.Context, client *APIClient) (*Contract, error) {
	data, err := client.GetOpenAPISpec(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := openapi.LoadFromData(data)
	if err != nil {
		return nil, err
	}

	return NewContract(doc, client.BaseURL())
}

// ValidateResponse checks the status code, content type and body of a
// response against the operation matching the request.
func (c *Contract) ValidateResponse(ctx context.Context, req *http.Request, resp *Response) error {
	route, pathParams, err := c.router.FindRoute(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: no matching operation: %w", ErrContractViolation, resp.Method, resp.Path, err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
		},
		Status: resp.StatusCode,
		Header: resp.Header,
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
			MultiError:            true,
		},
	}

	input.SetBodyBytes(resp.Body)

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%w: %s %s (operation %s): %w", ErrContractViolation, resp.Method, resp.Path, route.Operation.OperationID, err)
	}

	return nil
}
