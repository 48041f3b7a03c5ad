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
	"fmt"
	"net/url"
	"strconv"
)

// Endpoints contains all API endpoint patterns, relative to the base URL.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Pet endpoints.
func (e *Endpoints) AddPet() string {
	return "/pet"
}

func (e *Endpoints) UpdatePet() string {
	return "/pet"
}

func (e *Endpoints) GetPet(petID int64) string {
	return fmt.Sprintf("/pet/%s", url.PathEscape(strconv.FormatInt(petID, 10)))
}

func (e *Endpoints) DeletePet(petID int64) string {
	return fmt.Sprintf("/pet/%s", url.PathEscape(strconv.FormatInt(petID, 10)))
}

// FindPetsByStatus always sends the status parameter, even when empty, so
// the service sees exactly the filter under test.
func (e *Endpoints) FindPetsByStatus(status string) string {
	query := url.Values{}
	query.Set("status", status)

	return "/pet/findByStatus?" + query.Encode()
}

// Store endpoints.
func (e *Endpoints) PlaceOrder() string {
	return "/store/order"
}

func (e *Endpoints) GetOrder(orderID int64) string {
	return fmt.Sprintf("/store/order/%s", url.PathEscape(strconv.FormatInt(orderID, 10)))
}

func (e *Endpoints) DeleteOrder(orderID int64) string {
	return fmt.Sprintf("/store/order/%s", url.PathEscape(strconv.FormatInt(orderID, 10)))
}

func (e *Endpoints) Inventory() string {
	return "/store/inventory"
}

// Metadata endpoints.
func (e *Endpoints) OpenAPISpec() string {
	return "/openapi.json"
}
