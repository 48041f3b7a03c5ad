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

package order

import (
	"errors"
	"slices"
	"sync"
	"time"
)

var (
	// ErrNotFound is raised when an order does not exist.
	ErrNotFound = errors.New("order not found")

	// ErrInvalid is raised when an order cannot be stored.
	ErrInvalid = errors.New("invalid order")
)

const (
	StatusPlaced    = "placed"
	StatusApproved  = "approved"
	StatusDelivered = "delivered"
)

// Statuses returns every status an order may have.
func Statuses() []string {
	return []string{StatusPlaced, StatusApproved, StatusDelivered}
}

type Order struct {
	ID       int64  `json:"id"`
	PetID    int64  `json:"petId"`
	Quantity int32  `json:"quantity"`
	ShipDate string `json:"shipDate"`
	Status   string `json:"status"`
	Complete bool   `json:"complete"`
}

// Client is an in-memory order repository, safe for concurrent use.
type Client struct {
	lock   sync.RWMutex
	orders map[int64]Order
	nextID int64
	now    func() time.Time
}

// NewClient creates a new client, now provides default ship dates.
func NewClient(now func() time.Time) *Client {
	if now == nil {
		now = time.Now
	}

	return &Client{
		orders: map[int64]Order{},
		nextID: 1,
		now:    now,
	}
}

// Create stores an order. Missing ship dates default to now, and missing
// statuses to placed.
func (c *Client) Create(in *Order) (*Order, error) {
	stored := *in

	if stored.Status == "" {
		stored.Status = StatusPlaced
	}

	if !slices.Contains(Statuses(), stored.Status) {
		return nil, errors.Join(ErrInvalid, errors.New("status is not one of placed, approved, delivered"))
	}

	if stored.ShipDate == "" {
		stored.ShipDate = c.now().UTC().Truncate(time.Millisecond).Format(time.RFC3339Nano)
	} else if _, err := time.Parse(time.RFC3339, stored.ShipDate); err != nil {
		return nil, errors.Join(ErrInvalid, err)
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	if stored.ID == 0 {
		for _, ok := c.orders[c.nextID]; ok; _, ok = c.orders[c.nextID] {
			c.nextID++
		}

		stored.ID = c.nextID
		c.nextID++
	}

	c.orders[stored.ID] = stored

	return &stored, nil
}

func (c *Client) Get(id int64) (*Order, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	stored, ok := c.orders[id]
	if !ok {
		return nil, ErrNotFound
	}

	return &stored, nil
}

func (c *Client) Delete(id int64) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if _, ok := c.orders[id]; !ok {
		return ErrNotFound
	}

	delete(c.orders, id)

	return nil
}

// Inventory counts orders by status, every status is present.
func (c *Client) Inventory() map[string]int64 {
	c.lock.RLock()
	defer c.lock.RUnlock()

	result := map[string]int64{}

	for _, status := range Statuses() {
		result[status] = 0
	}

	for _, stored := range c.orders {
		result[stored.Status]++
	}

	return result
}
