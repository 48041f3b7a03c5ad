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
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedStatus is wrapped by StatusError.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrRequestTimeout is returned when a request exceeds RequestTimeout,
	// it is never confused with a non-success status.
	ErrRequestTimeout = errors.New("request timed out")

	// ErrTransport covers every other failure to get a response.
	ErrTransport = errors.New("http request failed")

	// ErrContractViolation is returned when a response contradicts the
	// service's OpenAPI document.
	ErrContractViolation = errors.New("openapi contract violation")

	// ErrUnexpectedBody is returned when a body cannot be decoded into the
	// requested shape.
	ErrUnexpectedBody = errors.New("unexpected response body")
)

// StatusError reports a response whose status differs from the expectation.
type StatusError struct {
	Method   string
	Path     string
	Expected int
	Actual   int
	Body     string
	TraceID  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code: expected %d, got %d, body: %s (trace ID: %s)", e.Method, e.Path, e.Expected, e.Actual, e.Body, e.TraceID)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
