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

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/gcustom"
	"github.com/onsi/gomega/types"

	"github.com/petstore-e2e/petstore/test/api/schema"
)

// HaveStatus succeeds when a *Response carries the given status code.
func HaveStatus(code int) types.GomegaMatcher {
	return gcustom.MakeMatcher(func(resp *Response) (bool, error) {
		return resp.StatusCode == code, nil
	}).WithTemplate("Expected {{.Actual.Method}} {{.Actual.Path}} {{.To}} return status {{.Data}}, got {{.Actual.StatusCode}} with body: {{printf \"%s\" .Actual.Body}} (trace ID: {{.Actual.TraceID}})", code)
}

// HaveTextBody succeeds when a *Response body is exactly the given text.
func HaveTextBody(text string) types.GomegaMatcher {
	return gcustom.MakeMatcher(func(resp *Response) (bool, error) {
		return string(resp.Body) == text, nil
	}).WithTemplate("Expected {{.Actual.Method}} {{.Actual.Path}} body {{.To}} equal {{printf \"%q\" .Data}}, got {{printf \"%q\" .Actual.Body}}", text)
}

// ConformTo validates a *Response, []byte or string body against a schema.
func ConformTo(s *schema.Schema) types.GomegaMatcher {
	return &conformToMatcher{
		schema: s,
	}
}

type conformToMatcher struct {
	schema *schema.Schema
	err    error
}

func (m *conformToMatcher) Match(actual any) (bool, error) {
	var body []byte

	switch t := actual.(type) {
	case *Response:
		body = t.Body
	case []byte:
		body = t
	case string:
		body = []byte(t)
	default:
		return false, fmt.Errorf("ConformTo expects a *Response, []byte or string, got %T", actual)
	}

	m.err = m.schema.Validate(body)
	if m.err == nil {
		return true, nil
	}

	if !errors.Is(m.err, schema.ErrSchemaViolation) {
		return false, m.err
	}

	return false, nil
}

func (m *conformToMatcher) FailureMessage(actual any) string {
	return format.Message(bodyForMessage(actual), fmt.Sprintf("to conform to the %s schema, violations: %v", m.schema.Name(), m.err))
}

func (m *conformToMatcher) NegatedFailureMessage(actual any) string {
	return format.Message(bodyForMessage(actual), fmt.Sprintf("not to conform to the %s schema", m.schema.Name()))
}

func bodyForMessage(actual any) any {
	if resp, ok := actual.(*Response); ok {
		return string(resp.Body)
	}

	if body, ok := actual.([]byte); ok {
		return string(body)
	}

	return actual
}
