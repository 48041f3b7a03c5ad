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

//nolint:testpackage,revive // test package in same package for internal access, dot imports standard for Ginkgo
package api

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Fixtures", Ordered, func() {
	var (
		ctx     context.Context
		client  *APIClient
		config  *TestConfig
		petID   int64
		orderID int64
	)

	BeforeAll(func() {
		ctx = context.Background()
		client, config = newDoubleClient()
	})

	It("creates a pet for the duration of a spec", func() {
		var pet *Pet

		pet, petID = CreatePetWithCleanup(client, ctx, config, NewPetPayload().Build())
		Expect(pet.ID).To(Equal(petID))

		resp, err := client.GetPet(ctx, petID)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp).To(HaveStatus(http.StatusOK))
	})

	It("has deleted the pet afterwards", func() {
		resp, err := client.GetPet(ctx, petID)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp).To(HaveStatus(http.StatusNotFound))
		Expect(resp).To(HaveTextBody(PetNotFoundBody))
	})

	It("creates an order for the duration of a spec", func() {
		var order *Order

		order, orderID = CreateOrderWithCleanup(client, ctx, config, NewOrderPayload().Build())
		Expect(order.ID).To(Equal(orderID))

		// Deleting the order early must not fail the cleanup.
		resp, err := client.DeleteOrder(ctx, orderID)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp).To(HaveStatus(http.StatusOK))
	})

	It("has released the order afterwards", func() {
		resp, err := client.GetOrder(ctx, orderID)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp).To(HaveStatus(http.StatusNotFound))
	})

	It("verifies pet fields", func() {
		expected := NewMinimalPetPayload().Build()
		actual := *expected
		actual.PhotoURLs = []string{}
		actual.Tags = []Tag{}

		VerifyPetMatches(&actual, expected)

		failures := InterceptGomegaFailures(func() {
			actual.Name = "someone else"
			VerifyPetMatches(&actual, expected)
		})
		Expect(failures).To(ConsistOf(ContainSubstring("pet field 'name' mismatch")))
	})

	It("compares ship dates as instants", func() {
		expected := NewOrderPayload().Build()
		expected.ShipDate = "2026-05-01T10:00:00Z"

		actual := *expected
		actual.ShipDate = "2026-05-01T10:00:00.000+00:00"

		VerifyOrderMatches(&actual, expected)
	})

	It("flags undocumented inventory keys", func() {
		VerifyInventoryKeys(Inventory{"placed": 1, "approved": 0})

		failures := InterceptGomegaFailures(func() {
			VerifyInventoryKeys(Inventory{"placed": 1, "sold": 3})
		})
		Expect(failures).To(ConsistOf(ContainSubstring("sold")))
	})

	It("checks queried statuses", func() {
		pets := []Pet{{ID: 1, Status: PetStatusSold}, {ID: 2, Status: PetStatusSold}}

		VerifyPetsHaveStatus(pets, PetStatusSold)
		VerifyPetPresence(pets, 2)

		failures := InterceptGomegaFailures(func() {
			VerifyPetsHaveStatus(pets, PetStatusPending)
		})
		Expect(failures).NotTo(BeEmpty())
	})
})
