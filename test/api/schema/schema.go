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

// Package schema holds the JSON Schema contracts that pet store responses
// must satisfy, compiled once at package initialisation.
package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrSchemaViolation is wrapped by every validation failure.
var ErrSchemaViolation = errors.New("schema violation")

const baseURL = "https://petstore-e2e.local/schemas/"

//go:embed schemas/*.json
var documents embed.FS

//nolint:gochecknoglobals
var (
	// Pet is the contract for a single pet.
	Pet = mustLoad("pet.json")

	// PetList is the contract for findByStatus results.
	PetList = mustLoad("pet_list.json")

	// Order is the contract for a store order, all six fields required.
	Order = mustLoad("order.json")

	// Inventory allows only the approved, delivered and placed counters.
	Inventory = mustLoad("inventory.json")

	// Error is the contract for error-shaped objects, e.g. a rejected
	// status filter.
	Error = mustLoad("error.json")
)

// Schema is a compiled contract.
type Schema struct {
	name     string
	compiled *jsonschema.Schema
}

// Name returns the name the schema was compiled under.
func (s *Schema) Name() string {
	return s.name
}

// Violation describes one failing keyword.
type Violation struct {
	// InstanceLocation is a JSON pointer into the validated document.
	InstanceLocation string
	// KeywordLocation is a JSON pointer into the schema.
	KeywordLocation string
	Message         string
}

func (v Violation) String() string {
	location := v.InstanceLocation
	if location == "" {
		location = "/"
	}

	return fmt.Sprintf("%s: %s (%s)", location, v.Message, v.KeywordLocation)
}

// ValidationError reports every violation found in a document.
type ValidationError struct {
	Schema     string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	lines := make([]string, len(e.Violations))

	for i := range e.Violations {
		lines[i] = e.Violations[i].String()
	}

	return fmt.Sprintf("document does not conform to %s schema: %s", e.Schema, strings.Join(lines, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrSchemaViolation
}

// Compile compiles a standalone schema document. References to the embedded
// documents by file name (e.g. "pet.json") resolve.
func Compile(name string, document []byte) (*Schema, error) {
	compiler, err := newCompiler()
	if err != nil {
		return nil, err
	}

	url := baseURL + name

	if err := compiler.AddResource(url, bytes.NewReader(document)); err != nil {
		return nil, fmt.Errorf("adding schema %s: %w", name, err)
	}

	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", name, err)
	}

	return &Schema{
		name:     strings.TrimSuffix(name, path.Ext(name)),
		compiled: compiled,
	}, nil
}

// Validate decodes a raw JSON body and validates it. Numbers are decoded
// as json.Number so 64-bit identifiers keep their precision.
func (s *Schema) Validate(body []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return &ValidationError{
			Schema: s.name,
			Violations: []Violation{
				{Message: fmt.Sprintf("body is not valid JSON: %v", err)},
			},
		}
	}

	// A body is exactly one JSON value.
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return &ValidationError{
			Schema: s.name,
			Violations: []Violation{
				{Message: "body is not valid JSON: trailing data after JSON value"},
			},
		}
	}

	return s.ValidateValue(value)
}

// ValidateValue validates an already decoded JSON value.
func (s *Schema) ValidateValue(value any) error {
	err := s.compiled.Validate(value)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("validating against %s schema: %w", s.name, err)
	}

	return &ValidationError{
		Schema:     s.name,
		Violations: flatten(verr, nil),
	}
}

// flatten collects the leaves of the validation error tree, they carry the
// specific keyword that failed.
func flatten(err *jsonschema.ValidationError, out []Violation) []Violation {
	if len(err.Causes) == 0 {
		return append(out, Violation{
			InstanceLocation: err.InstanceLocation,
			KeywordLocation:  err.KeywordLocation,
			Message:          err.Message,
		})
	}

	for _, cause := range err.Causes {
		out = flatten(cause, out)
	}

	return out
}

// newCompiler returns a compiler with every embedded document registered so
// cross-document references resolve without network access.
func newCompiler() (*jsonschema.Compiler, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7

	entries, err := documents.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schemas: %w", err)
	}

	for _, entry := range entries {
		data, err := documents.ReadFile("schemas/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading schema %s: %w", entry.Name(), err)
		}

		if err := compiler.AddResource(baseURL+entry.Name(), bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("adding schema %s: %w", entry.Name(), err)
		}
	}

	return compiler, nil
}

func load(name string) (*Schema, error) {
	compiler, err := newCompiler()
	if err != nil {
		return nil, err
	}

	compiled, err := compiler.Compile(baseURL + name)
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", name, err)
	}

	return &Schema{
		name:     strings.TrimSuffix(name, path.Ext(name)),
		compiled: compiled,
	}, nil
}

func mustLoad(name string) *Schema {
	s, err := load(name)
	if err != nil {
		panic(err)
	}

	return s
}
