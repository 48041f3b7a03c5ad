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
	"io"
	"net/http"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/petstore-e2e/petstore/test/api/mock"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

var _ = Describe("Contract", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Context("with a conforming service", func() {
		var client *APIClient

		BeforeEach(func() {
			client, _ = newDoubleClient()

			contract, err := LoadRemoteContract(ctx, client)
			Expect(err).NotTo(HaveOccurred())

			client.SetContract(contract)
		})

		It("accepts every documented response", func() {
			pet, err := client.CreatePet(ctx, NewPetPayload().WithID(3).Build())
			Expect(err).NotTo(HaveOccurred())

			resp, err := client.GetPet(ctx, pet.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(HaveStatus(http.StatusOK))

			resp, err = client.FindPetsByStatus(ctx, "unknown")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(HaveStatus(http.StatusBadRequest))

			resp, err = client.UpdatePet(ctx, NewPetPayload().WithID(ReservedMissingID).Build())
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(HaveStatus(http.StatusNotFound))

			resp, err = client.DeletePet(ctx, pet.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(HaveTextBody(PetDeletedBody))

			order, err := client.CreateOrder(ctx, NewOrderPayload().WithID(4).Build())
			Expect(err).NotTo(HaveOccurred())

			resp, err = client.GetInventory(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(HaveStatus(http.StatusOK))

			resp, err = client.DeleteOrder(ctx, order.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(HaveStatus(http.StatusOK))
		})
	})

	Context("with a misbehaving service", func() {
		var (
			client *APIClient
			doer   *mock.MockHTTPDoer
		)

		BeforeEach(func() {
			config := &TestConfig{
				BaseURL:        "http://petstore.invalid/api/v3",
				RequestTimeout: time.Second,
			}

			doer = mock.NewMockHTTPDoer(gomock.NewController(GinkgoT()))
			client = NewAPIClientWithDoer(config, doer)

			contract, err := NewPinnedContract(config.BaseURL)
			Expect(err).NotTo(HaveOccurred())

			client.SetContract(contract)
		})

		It("rejects an undocumented pet status", func() {
			doer.EXPECT().Do(gomock.Any()).Return(jsonResponse(http.StatusOK, `{"id":1,"name":"Rex","photoUrls":[],"status":"lost"}`), nil)

			resp, err := client.GetPet(ctx, 1)
			Expect(err).To(MatchError(ErrContractViolation))
			Expect(err.Error()).To(ContainSubstring("getPetById"))
			Expect(resp).NotTo(BeNil())
		})

		It("rejects an undocumented status code", func() {
			doer.EXPECT().Do(gomock.Any()).Return(jsonResponse(http.StatusTeapot, `{}`), nil)

			_, err := client.GetInventory(ctx)
			Expect(err).To(MatchError(ErrContractViolation))
		})

		It("rejects an undocumented path", func() {
			doer.EXPECT().Do(gomock.Any()).Return(jsonResponse(http.StatusOK, `{}`), nil)

			_, err := client.Do(ctx, http.MethodGet, "/user/login", nil)
			Expect(err).To(MatchError(ErrContractViolation))
		})
	})
})
