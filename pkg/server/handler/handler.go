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

//nolint:revive
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-logr/logr"

	"github.com/petstore-e2e/petstore/pkg/openapi"
	"github.com/petstore-e2e/petstore/pkg/server/handler/order"
	"github.com/petstore-e2e/petstore/pkg/server/handler/pet"
)

const (
	PetNotFound   = "Pet not found"
	PetDeleted    = "Pet deleted"
	OrderNotFound = "Order not found"
	InvalidID     = "Invalid ID supplied"
)

// Options configures request handling.
type Options struct {
	// Now is the clock used for default ship dates, tests pin it.
	// Nil means time.Now.
	Now func() time.Time
}

// ErrorObject is the body of a rejected query.
type ErrorObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Handler struct {
	// pets holds every pet, in memory.
	pets *pet.Client

	// orders holds every order, in memory.
	orders *order.Client

	// logger reports failures to write responses.
	logger logr.Logger
}

func New(options *Options, logger logr.Logger) *Handler {
	return &Handler{
		pets:   pet.NewClient(),
		orders: order.NewClient(options.Now),
		logger: logger,
	}
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		h.logger.Error(err, "failed to marshal response")
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	h.setUncacheable(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(data); err != nil {
		h.logger.Error(err, "failed to write response")
	}
}

func (h *Handler) writeText(w http.ResponseWriter, status int, body string) {
	h.setUncacheable(w)
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)

	if _, err := w.Write([]byte(body)); err != nil {
		h.logger.Error(err, "failed to write response")
	}
}

func (h *Handler) writeInvalid(w http.ResponseWriter, err error) {
	h.writeJSON(w, http.StatusBadRequest, &ErrorObject{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

func decode(r *http.Request, out any) error {
	decoder := json.NewDecoder(r.Body)

	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("malformed request body: %w", err)
	}

	return nil
}

func idParameter(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}

func (h *Handler) PostPet(w http.ResponseWriter, r *http.Request) {
	var in pet.Pet

	if err := decode(r, &in); err != nil {
		h.writeInvalid(w, err)
		return
	}

	result, err := h.pets.Create(&in)
	if err != nil {
		h.writeInvalid(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) PutPet(w http.ResponseWriter, r *http.Request) {
	var in pet.Pet

	if err := decode(r, &in); err != nil {
		h.writeInvalid(w, err)
		return
	}

	result, err := h.pets.Update(&in)
	if err != nil {
		if errors.Is(err, pet.ErrNotFound) {
			h.writeText(w, http.StatusNotFound, PetNotFound)
			return
		}

		h.writeInvalid(w, err)

		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) GetPetPetID(w http.ResponseWriter, r *http.Request) {
	petID, ok := idParameter(r, "petId")
	if !ok {
		h.writeText(w, http.StatusBadRequest, InvalidID)
		return
	}

	result, err := h.pets.Get(petID)
	if err != nil {
		h.writeText(w, http.StatusNotFound, PetNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// DeletePetPetID succeeds whether or not the pet exists, as the public
// service does.
func (h *Handler) DeletePetPetID(w http.ResponseWriter, r *http.Request) {
	petID, ok := idParameter(r, "petId")
	if !ok {
		h.writeText(w, http.StatusBadRequest, InvalidID)
		return
	}

	h.pets.Delete(petID)

	h.writeText(w, http.StatusOK, PetDeleted)
}

func (h *Handler) GetPetFindByStatus(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	if !slices.Contains(pet.Statuses(), status) {
		h.writeJSON(w, http.StatusBadRequest, &ErrorObject{
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Input error: query parameter `status value %s` is not in the allowable values `[%s]`", status, strings.Join(pet.Statuses(), ", ")),
		})

		return
	}

	h.writeJSON(w, http.StatusOK, h.pets.ListByStatus(status))
}

func (h *Handler) PostStoreOrder(w http.ResponseWriter, r *http.Request) {
	var in order.Order

	if err := decode(r, &in); err != nil {
		h.writeInvalid(w, err)
		return
	}

	result, err := h.orders.Create(&in)
	if err != nil {
		h.writeInvalid(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) GetStoreOrderOrderID(w http.ResponseWriter, r *http.Request) {
	orderID, ok := idParameter(r, "orderId")
	if !ok {
		h.writeText(w, http.StatusBadRequest, InvalidID)
		return
	}

	result, err := h.orders.Get(orderID)
	if err != nil {
		h.writeText(w, http.StatusNotFound, OrderNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) DeleteStoreOrderOrderID(w http.ResponseWriter, r *http.Request) {
	orderID, ok := idParameter(r, "orderId")
	if !ok {
		h.writeText(w, http.StatusBadRequest, InvalidID)
		return
	}

	if err := h.orders.Delete(orderID); err != nil {
		h.writeText(w, http.StatusNotFound, OrderNotFound)
		return
	}

	h.setUncacheable(w)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) GetStoreInventory(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.orders.Inventory())
}

func (h *Handler) GetOpenapiJSON(w http.ResponseWriter, r *http.Request) {
	h.setUncacheable(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(openapi.Document()); err != nil {
		h.logger.Error(err, "failed to write response")
	}
}
