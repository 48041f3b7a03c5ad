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

// Package api provides end-to-end test utilities for the pet store API.
//
// # Separate Client Implementation
//
// This package maintains its own HTTP client (APIClient) rather than a
// generated one. Any legitimate change to the service's API must have a
// compensating change here, which makes API drift visible in review.
//
// The client is tailored for end-to-end testing:
//   - W3C trace context propagation for request correlation
//   - request and response logging to GinkgoWriter
//   - a per-request timeout reported separately from status errors
//   - direct access to status codes and raw bodies, so literal error
//     bodies such as "Pet not found" can be asserted exactly
//
// # Fixtures
//
// CreatePetWithCleanup and CreateOrderWithCleanup create a resource and
// register its deletion with DeferCleanup, so nothing is left behind on the
// shared service when a spec fails.
//
// # Contract Conformance
//
// When VALIDATE_OPENAPI is set, every response is additionally checked
// against the service's published OpenAPI document, see Contract.
package api
