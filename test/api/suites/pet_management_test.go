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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petstore-e2e/petstore/test/api"
	"github.com/petstore-e2e/petstore/test/api/schema"
)

var _ = Describe("Pet Management", func() {
	Context("When adding a pet", func() {
		It("should store a fully populated pet", func() {
			payload := api.NewPetPayload().Build()

			resp, err := client.AddPet(ctx, payload)
			Expect(err).NotTo(HaveOccurred())

			api.DeletePetAfterSpec(client, config, payload.ID)

			Expect(resp).To(api.HaveStatus(http.StatusOK))
			Expect(resp).To(api.ConformTo(schema.Pet))

			pet, err := resp.Pet()
			Expect(err).NotTo(HaveOccurred())
			api.VerifyPetMatches(pet, payload)
		})

		It("should store a pet with only identifier, name and status", func() {
			payload := api.NewMinimalPetPayload().Build()

			resp, err := client.AddPet(ctx, payload)
			Expect(err).NotTo(HaveOccurred())

			api.DeletePetAfterSpec(client, config, payload.ID)

			Expect(resp).To(api.HaveStatus(http.StatusOK))

			pet, err := resp.Pet()
			Expect(err).NotTo(HaveOccurred())
			Expect(pet.ID).To(Equal(payload.ID))
			Expect(pet.Name).To(Equal(payload.Name))
			Expect(pet.Status).To(Equal(payload.Status))
		})
	})

	Context("When retrieving a pet", func() {
		It("should return the stored pet", func() {
			created, petID := api.CreatePetWithCleanup(client, ctx, config, api.NewPetPayload().Build())

			resp, err := client.GetPet(ctx, petID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(api.HaveStatus(http.StatusOK))
			Expect(resp).To(api.ConformTo(schema.Pet))

			pet, err := resp.Pet()
			Expect(err).NotTo(HaveOccurred())
			api.VerifyPetMatches(pet, created)
		})

		It("should report a missing pet", func() {
			resp, err := client.GetPet(ctx, api.ReservedMissingID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(api.HaveStatus(http.StatusNotFound))
			Expect(resp).To(api.HaveTextBody(api.PetNotFoundBody))
		})
	})

	Context("When updating a pet", func() {
		It("should replace the stored pet", func() {
			created, petID := api.CreatePetWithCleanup(client, ctx, config, api.NewPetPayload().Build())

			updated := *created
			updated.Name = api.GenerateTestID()
			updated.Status = api.PetStatusSold

			By("updating name and status")

			resp, err := client.UpdatePet(ctx, &updated)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(api.HaveStatus(http.StatusOK))
			Expect(resp).To(api.ConformTo(schema.Pet))

			echoed, err := resp.Pet()
			Expect(err).NotTo(HaveOccurred())
			api.VerifyPetMatches(echoed, &updated)

			By("reading the pet back")

			resp, err = client.GetPet(ctx, petID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(api.HaveStatus(http.StatusOK))

			read, err := resp.Pet()
			Expect(err).NotTo(HaveOccurred())
			api.VerifyPetMatches(read, &updated)
		})

		It("should reject a pet that does not exist", func() {
			payload := api.NewPetPayload().WithID(api.ReservedMissingID).Build()

			resp, err := client.UpdatePet(ctx, payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(api.HaveStatus(http.StatusNotFound))
			Expect(resp).To(api.HaveTextBody(api.PetNotFoundBody))
		})
	})

	Context("When deleting a pet", func() {
		It("should remove the stored pet", func() {
			_, petID := api.CreatePetWithCleanup(client, ctx, config, api.NewPetPayload().Build())

			resp, err := client.DeletePet(ctx, petID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(api.HaveStatus(http.StatusOK))
			Expect(resp).To(api.HaveTextBody(api.PetDeletedBody))

			resp, err = client.GetPet(ctx, petID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(api.HaveStatus(http.StatusNotFound))
			Expect(resp).To(api.HaveTextBody(api.PetNotFoundBody))
		})

		// The service acknowledges deletes of pets it never had.
		It("should acknowledge deleting a pet that does not exist", func() {
			resp, err := client.DeletePet(ctx, api.ReservedMissingID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(api.HaveStatus(http.StatusOK))
			Expect(resp).To(api.HaveTextBody(api.PetDeletedBody))
		})
	})

	Context("When finding pets by status", func() {
		DescribeTable("should only accept documented statuses",
			func(status string, expectedStatus int) {
				resp, err := client.FindPetsByStatus(ctx, status)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp).To(api.HaveStatus(expectedStatus))

				if expectedStatus == http.StatusOK {
					Expect(resp.Kind()).To(Equal(api.JSONArray))
					Expect(resp).To(api.ConformTo(schema.PetList))

					pets, err := resp.Pets()
					Expect(err).NotTo(HaveOccurred())
					api.VerifyPetsHaveStatus(pets, status)

					return
				}

				Expect(resp.Kind()).To(Equal(api.JSONObject), "a rejected query must return an error object, not a list")
				Expect(resp).To(api.ConformTo(schema.Error))

				object, err := resp.ErrorObject()
				Expect(err).NotTo(HaveOccurred())
				Expect(object.Code).To(Equal(http.StatusBadRequest))
				Expect(object.Message).NotTo(BeEmpty())
			},
			Entry("available", api.PetStatusAvailable, http.StatusOK),
			Entry("pending", api.PetStatusPending, http.StatusOK),
			Entry("sold", api.PetStatusSold, http.StatusOK),
			Entry("empty", "", http.StatusBadRequest),
			Entry("unknown", "unknown", http.StatusBadRequest),
			Entry("numeric", "123", http.StatusBadRequest),
		)

		DescribeTable("should list a pet under its status",
			func(status string) {
				_, petID := api.CreatePetWithCleanup(client, ctx, config, api.NewPetPayload().WithStatus(status).Build())

				resp, err := client.FindPetsByStatus(ctx, status)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp).To(api.HaveStatus(http.StatusOK))

				pets, err := resp.Pets()
				Expect(err).NotTo(HaveOccurred())
				api.VerifyPetPresence(pets, petID)
			},
			Entry("available", api.PetStatusAvailable),
			Entry("pending", api.PetStatusPending),
			Entry("sold", api.PetStatusSold),
		)
	})
})
