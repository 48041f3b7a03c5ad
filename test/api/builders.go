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
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mathrand "math/rand/v2"
	"time"

	"k8s.io/utils/ptr"
)

const (
	// ReservedMissingID is used by tests that address a resource that must
	// not exist, generated identifiers never collide with it.
	ReservedMissingID int64 = 9999

	// generated identifiers are drawn from [minGeneratedID, maxGeneratedID).
	minGeneratedID int64 = 100_000
	maxGeneratedID int64 = 1_000_000_000
)

func generateRandomName(prefix string) string {
	buf := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(buf)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(buf))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// GenerateResourceID returns an identifier outside the range used by the
// literal scenarios.
func GenerateResourceID() int64 {
	return minGeneratedID + mathrand.Int64N(maxGeneratedID-minGeneratedID)
}

// PetPayloadBuilder builds pet payloads for testing.
type PetPayloadBuilder struct {
	pet Pet
}

// NewPetPayload creates a builder for a fully populated pet with a unique
// identifier and name.
func NewPetPayload() *PetPayloadBuilder {
	return &PetPayloadBuilder{
		pet: Pet{
			ID:   GenerateResourceID(),
			Name: generateRandomName("testautomation-pet"),
			Category: ptr.To(Category{
				ID:   1,
				Name: "Dogs",
			}),
			PhotoURLs: []string{"https://example.com/photos/testautomation.png"},
			Tags: []Tag{
				{ID: 1, Name: "testautomation"},
			},
			Status: PetStatusAvailable,
		},
	}
}

// NewMinimalPetPayload creates a builder with only identifier, name and status.
func NewMinimalPetPayload() *PetPayloadBuilder {
	return &PetPayloadBuilder{
		pet: Pet{
			ID:     GenerateResourceID(),
			Name:   generateRandomName("testautomation-pet"),
			Status: PetStatusAvailable,
		},
	}
}

func (b *PetPayloadBuilder) WithID(id int64) *PetPayloadBuilder {
	b.pet.ID = id
	return b
}

func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.pet.Name = name
	return b
}

func (b *PetPayloadBuilder) WithStatus(status string) *PetPayloadBuilder {
	b.pet.Status = status
	return b
}

// WithCategory sets the category, pass a nil pointer to omit it.
func (b *PetPayloadBuilder) WithCategory(category *Category) *PetPayloadBuilder {
	b.pet.Category = category
	return b
}

func (b *PetPayloadBuilder) WithPhotoURLs(urls ...string) *PetPayloadBuilder {
	b.pet.PhotoURLs = urls
	return b
}

func (b *PetPayloadBuilder) WithTags(tags ...Tag) *PetPayloadBuilder {
	b.pet.Tags = tags
	return b
}

// Build returns a copy of the completed pet payload.
func (b *PetPayloadBuilder) Build() *Pet {
	out := b.pet

	if b.pet.Category != nil {
		out.Category = ptr.To(*b.pet.Category)
	}

	out.PhotoURLs = append([]string(nil), b.pet.PhotoURLs...)
	out.Tags = append([]Tag(nil), b.pet.Tags...)

	return &out
}

// OrderPayloadBuilder builds order payloads for testing.
type OrderPayloadBuilder struct {
	order Order
}

// NewOrderPayload creates a builder for an order with all six fields set.
func NewOrderPayload() *OrderPayloadBuilder {
	return &OrderPayloadBuilder{
		order: Order{
			ID:       GenerateResourceID(),
			PetID:    GenerateResourceID(),
			Quantity: 1,
			ShipDate: time.Now().UTC().Truncate(time.Second).Format(time.RFC3339),
			Status:   OrderStatusPlaced,
			Complete: true,
		},
	}
}

func (b *OrderPayloadBuilder) WithID(id int64) *OrderPayloadBuilder {
	b.order.ID = id
	return b
}

func (b *OrderPayloadBuilder) WithPetID(petID int64) *OrderPayloadBuilder {
	b.order.PetID = petID
	return b
}

func (b *OrderPayloadBuilder) WithQuantity(quantity int32) *OrderPayloadBuilder {
	b.order.Quantity = quantity
	return b
}

func (b *OrderPayloadBuilder) WithShipDate(shipDate time.Time) *OrderPayloadBuilder {
	b.order.ShipDate = shipDate.UTC().Format(time.RFC3339)
	return b
}

// WithoutShipDate leaves the ship date for the service to decide.
func (b *OrderPayloadBuilder) WithoutShipDate() *OrderPayloadBuilder {
	b.order.ShipDate = ""
	return b
}

func (b *OrderPayloadBuilder) WithStatus(status string) *OrderPayloadBuilder {
	b.order.Status = status
	return b
}

func (b *OrderPayloadBuilder) WithComplete(complete bool) *OrderPayloadBuilder {
	b.order.Complete = complete
	return b
}

// Build returns a copy of the completed order payload.
func (b *OrderPayloadBuilder) Build() *Order {
	out := b.order
	return &out
}
