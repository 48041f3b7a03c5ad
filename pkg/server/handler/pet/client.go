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

package pet

import (
	"cmp"
	"errors"
	"slices"
	"sync"
)

var (
	// ErrNotFound is raised when a pet does not exist.
	ErrNotFound = errors.New("pet not found")

	// ErrInvalid is raised when a pet cannot be stored.
	ErrInvalid = errors.New("invalid pet")
)

const (
	StatusAvailable = "available"
	StatusPending   = "pending"
	StatusSold      = "sold"
)

// Statuses returns every status a pet may have.
func Statuses() []string {
	return []string{StatusAvailable, StatusPending, StatusSold}
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
	PhotoURLs []string  `json:"photoUrls"`
	Tags      []Tag     `json:"tags"`
	Status    string    `json:"status,omitempty"`
}

// Client is an in-memory pet repository, safe for concurrent use.
type Client struct {
	lock   sync.RWMutex
	pets   map[int64]*Pet
	nextID int64
}

// NewClient creates a new client.
func NewClient() *Client {
	return &Client{
		pets:   map[int64]*Pet{},
		nextID: 1,
	}
}

func validate(in *Pet) error {
	if in.Name == "" {
		return errors.Join(ErrInvalid, errors.New("name is required"))
	}

	if in.Status != "" && !slices.Contains(Statuses(), in.Status) {
		return errors.Join(ErrInvalid, errors.New("status is not one of available, pending, sold"))
	}

	return nil
}

// normalize deep copies the pet, lists are never rendered as null.
func normalize(in *Pet) *Pet {
	out := *in

	if in.Category != nil {
		category := *in.Category
		out.Category = &category
	}

	out.PhotoURLs = append([]string{}, in.PhotoURLs...)
	out.Tags = append([]Tag{}, in.Tags...)

	return &out
}

// Create stores a pet, replacing any with the same ID. A pet without an ID
// is given one.
func (c *Client) Create(in *Pet) (*Pet, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	stored := normalize(in)

	if stored.ID == 0 {
		for c.pets[c.nextID] != nil {
			c.nextID++
		}

		stored.ID = c.nextID
		c.nextID++
	}

	c.pets[stored.ID] = stored

	return normalize(stored), nil
}

// Update replaces an existing pet.
func (c *Client) Update(in *Pet) (*Pet, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	if _, ok := c.pets[in.ID]; !ok {
		return nil, ErrNotFound
	}

	stored := normalize(in)

	c.pets[stored.ID] = stored

	return normalize(stored), nil
}

func (c *Client) Get(id int64) (*Pet, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	stored, ok := c.pets[id]
	if !ok {
		return nil, ErrNotFound
	}

	return normalize(stored), nil
}

// Delete removes a pet, deleting a missing pet is not an error.
func (c *Client) Delete(id int64) {
	c.lock.Lock()
	defer c.lock.Unlock()

	delete(c.pets, id)
}

// ListByStatus returns every pet with the status, ordered by ID.
func (c *Client) ListByStatus(status string) []Pet {
	c.lock.RLock()
	defer c.lock.RUnlock()

	result := []Pet{}

	for _, stored := range c.pets {
		if stored.Status == status {
			result = append(result, *normalize(stored))
		}
	}

	slices.SortFunc(result, func(a, b Pet) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return result
}
