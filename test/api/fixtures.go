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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"maps"
	"net/http"
	"slices"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/spjmurray/go-util/pkg/set"
)

// CreatePetWithCleanup creates a pet and schedules its deletion, which runs
// whether the spec passes, fails or is interrupted.
func CreatePetWithCleanup(client *APIClient, ctx context.Context, config *TestConfig, payload *Pet) (*Pet, int64) {
	pet, err := client.CreatePet(ctx, payload)
	Expect(err).NotTo(HaveOccurred(), "creating pet fixture")
	Expect(pet.ID).NotTo(BeZero(), "pet fixture has no identifier")

	petID := pet.ID

	GinkgoWriter.Printf("Created pet with ID: %d\n", petID)

	DeletePetAfterSpec(client, config, petID)

	return pet, petID
}

// CreateOrderWithCleanup places an order and schedules its deletion.
func CreateOrderWithCleanup(client *APIClient, ctx context.Context, config *TestConfig, payload *Order) (*Order, int64) {
	order, err := client.CreateOrder(ctx, payload)
	Expect(err).NotTo(HaveOccurred(), "creating order fixture")
	Expect(order.ID).NotTo(BeZero(), "order fixture has no identifier")

	orderID := order.ID

	GinkgoWriter.Printf("Created order with ID: %d\n", orderID)

	DeleteOrderAfterSpec(client, config, orderID)

	return order, orderID
}

// DeletePetAfterSpec schedules deletion of a pet created outside a fixture.
func DeletePetAfterSpec(client *APIClient, config *TestConfig, petID int64) {
	DeferCleanup(func(ctx context.Context) {
		GinkgoWriter.Printf("Cleaning up pet: %d\n", petID)

		resp, err := client.DeletePet(ctx, petID)
		if err != nil {
			GinkgoWriter.Printf("Warning: Failed to delete pet %d: %v\n", petID, err)
			return
		}

		if !releasedStatus(resp.StatusCode) {
			GinkgoWriter.Printf("Warning: Failed to delete pet %d: %v\n", petID, resp.CheckStatus(http.StatusOK))
			return
		}

		GinkgoWriter.Printf("Successfully deleted pet: %d\n", petID)
	}, NodeTimeout(config.RequestTimeout+time.Second))
}

// DeleteOrderAfterSpec schedules deletion of an order placed outside a
// fixture.
func DeleteOrderAfterSpec(client *APIClient, config *TestConfig, orderID int64) {
	DeferCleanup(func(ctx context.Context) {
		GinkgoWriter.Printf("Cleaning up order: %d\n", orderID)

		resp, err := client.DeleteOrder(ctx, orderID)
		if err != nil {
			GinkgoWriter.Printf("Warning: Failed to delete order %d: %v\n", orderID, err)
			return
		}

		if !releasedStatus(resp.StatusCode) {
			GinkgoWriter.Printf("Warning: Failed to delete order %d: %v\n", orderID, resp.CheckStatus(http.StatusOK))
			return
		}

		GinkgoWriter.Printf("Successfully deleted order: %d\n", orderID)
	}, NodeTimeout(config.RequestTimeout+time.Second))
}

// releasedStatus accepts a resource the spec already deleted itself.
func releasedStatus(code int) bool {
	return code == http.StatusOK || code == http.StatusNotFound
}

// VerifyPetMatches compares every field of a pet with the expected value.
func VerifyPetMatches(actual, expected *Pet) {
	GinkgoHelper()

	Expect(actual).NotTo(BeNil(), "pet should not be nil")
	Expect(actual.ID).To(Equal(expected.ID), "pet field 'id' mismatch")
	Expect(actual.Name).To(Equal(expected.Name), "pet field 'name' mismatch")
	Expect(actual.Status).To(Equal(expected.Status), "pet field 'status' mismatch")
	Expect(actual.Category).To(Equal(expected.Category), "pet field 'category' mismatch")

	// An omitted list comes back empty.
	if len(expected.PhotoURLs) == 0 {
		Expect(actual.PhotoURLs).To(BeEmpty(), "pet field 'photoUrls' mismatch")
	} else {
		Expect(actual.PhotoURLs).To(Equal(expected.PhotoURLs), "pet field 'photoUrls' mismatch")
	}

	if len(expected.Tags) == 0 {
		Expect(actual.Tags).To(BeEmpty(), "pet field 'tags' mismatch")
	} else {
		Expect(actual.Tags).To(Equal(expected.Tags), "pet field 'tags' mismatch")
	}
}

// VerifyOrderMatches compares every field of an order with the expected
// value. Ship dates are compared as instants when both parse, the service
// may render the same time differently.
func VerifyOrderMatches(actual, expected *Order) {
	GinkgoHelper()

	Expect(actual).NotTo(BeNil(), "order should not be nil")
	Expect(actual.ID).To(Equal(expected.ID), "order field 'id' mismatch")
	Expect(actual.PetID).To(Equal(expected.PetID), "order field 'petId' mismatch")
	Expect(actual.Quantity).To(Equal(expected.Quantity), "order field 'quantity' mismatch")
	Expect(actual.Status).To(Equal(expected.Status), "order field 'status' mismatch")
	Expect(actual.Complete).To(Equal(expected.Complete), "order field 'complete' mismatch")

	if expected.ShipDate == "" {
		return
	}

	actualTime, actualErr := time.Parse(time.RFC3339, actual.ShipDate)
	expectedTime, expectedErr := time.Parse(time.RFC3339, expected.ShipDate)

	if actualErr == nil && expectedErr == nil {
		Expect(actualTime).To(BeTemporally("==", expectedTime), "order field 'shipDate' mismatch")
		return
	}

	Expect(actual.ShipDate).To(Equal(expected.ShipDate), "order field 'shipDate' mismatch")
}

// VerifyPetsHaveStatus verifies every pet in a findByStatus result carries
// the status that was queried.
func VerifyPetsHaveStatus(pets []Pet, status string) {
	GinkgoHelper()

	for i := range pets {
		Expect(pets[i].Status).To(Equal(status), "pet %d at index %d has status %q, queried %q", pets[i].ID, i, pets[i].Status, status)
	}
}

// VerifyPetPresence verifies a pet identifier is present in a list.
func VerifyPetPresence(pets []Pet, petID int64) {
	GinkgoHelper()

	ids := make([]int64, len(pets))
	for i := range pets {
		ids[i] = pets[i].ID
	}

	Expect(ids).To(ContainElement(petID), "Expected pet ID %d to be present in the list", petID)
}

// VerifyInventoryKeys verifies an inventory carries no counter other than
// the order statuses.
func VerifyInventoryKeys(inventory Inventory) {
	GinkgoHelper()

	allowed := set.New[string](OrderStatuses()...)
	unexpected := set.New[string](slices.Collect(maps.Keys(inventory))...).Difference(allowed)

	var extra []string

	for key := range unexpected.All() {
		extra = append(extra, key)
	}

	Expect(extra).To(BeEmpty(), "inventory has keys other than %v", OrderStatuses())
}
