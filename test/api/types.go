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

// Pet lifecycle states accepted by the status filter.
const (
	PetStatusAvailable = "available"
	PetStatusPending   = "pending"
	PetStatusSold      = "sold"
)

// Order states.
const (
	OrderStatusPlaced    = "placed"
	OrderStatusApproved  = "approved"
	OrderStatusDelivered = "delivered"
)

// Literal bodies returned by the service on the error paths.
const (
	PetNotFoundBody   = "Pet not found"
	PetDeletedBody    = "Pet deleted"
	OrderNotFoundBody = "Order not found"
)

// PetStatuses lists every valid pet status.
func PetStatuses() []string {
	return []string{PetStatusAvailable, PetStatusPending, PetStatusSold}
}

// OrderStatuses lists every valid order status, which are also the
// inventory counters.
func OrderStatuses() []string {
	return []string{OrderStatusPlaced, OrderStatusApproved, OrderStatusDelivered}
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Pet struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  *Category `json:"category,omitempty"`
	PhotoURLs []string  `json:"photoUrls,omitempty"`
	Tags      []Tag     `json:"tags,omitempty"`
	Status    string    `json:"status,omitempty"`
}

type Order struct {
	ID       int64  `json:"id"`
	PetID    int64  `json:"petId"`
	Quantity int32  `json:"quantity"`
	ShipDate string `json:"shipDate,omitempty"`
	Status   string `json:"status,omitempty"`
	Complete bool   `json:"complete"`
}

// Inventory maps an order status to the number of orders in it.
type Inventory map[string]int64

// ErrorObject is the error-shaped body returned for rejected input.
type ErrorObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RawJSON is sent verbatim as a request body, allowing malformed payloads.
type RawJSON []byte
