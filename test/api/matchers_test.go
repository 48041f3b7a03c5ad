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
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petstore-e2e/petstore/test/api/schema"
)

var _ = Describe("Matchers", func() {
	notFound := &Response{
		Method:     http.MethodGet,
		Path:       "/pet/9999",
		StatusCode: http.StatusNotFound,
		Body:       []byte(PetNotFoundBody),
		TraceID:    "0af7651916cd43dd8448eb211c80319c",
	}

	Describe("HaveStatus", func() {
		It("matches the status code", func() {
			Expect(notFound).To(HaveStatus(http.StatusNotFound))
			Expect(notFound).NotTo(HaveStatus(http.StatusOK))
		})

		It("describes the request on failure", func() {
			matcher := HaveStatus(http.StatusOK)

			success, err := matcher.Match(notFound)
			Expect(err).NotTo(HaveOccurred())
			Expect(success).To(BeFalse())

			message := matcher.FailureMessage(notFound)
			Expect(message).To(ContainSubstring("GET /pet/9999"))
			Expect(message).To(ContainSubstring("status 200, got 404"))
			Expect(message).To(ContainSubstring(PetNotFoundBody))
			Expect(message).To(ContainSubstring(notFound.TraceID))
		})

		It("rejects other types", func() {
			_, err := HaveStatus(http.StatusOK).Match(200)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("HaveTextBody", func() {
		It("matches the exact body", func() {
			Expect(notFound).To(HaveTextBody(PetNotFoundBody))
			Expect(notFound).NotTo(HaveTextBody("Pet not found\n"))
			Expect(notFound).NotTo(HaveTextBody("pet not found"))
		})
	})

	Describe("ConformTo", func() {
		It("accepts responses, bytes and strings", func() {
			body := `{"code":400,"message":"Input error"}`

			Expect(&Response{Body: []byte(body)}).To(ConformTo(schema.Error))
			Expect([]byte(body)).To(ConformTo(schema.Error))
			Expect(body).To(ConformTo(schema.Error))
		})

		It("lists violations on failure", func() {
			matcher := ConformTo(schema.Inventory)

			success, err := matcher.Match(`{"placed":1,"sold":2}`)
			Expect(err).NotTo(HaveOccurred())
			Expect(success).To(BeFalse())
			Expect(matcher.FailureMessage(`{"placed":1,"sold":2}`)).To(ContainSubstring("inventory"))
		})

		It("distinguishes a list from an error object", func() {
			Expect(`[]`).To(ConformTo(schema.PetList))
			Expect(`{"code":400,"message":"bad"}`).NotTo(ConformTo(schema.PetList))
			Expect(`[]`).NotTo(ConformTo(schema.Error))
		})

		It("rejects other types", func() {
			_, err := ConformTo(schema.Pet).Match(42)
			Expect(err).To(HaveOccurred())
		})
	})
})
