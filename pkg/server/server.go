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

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"github.com/petstore-e2e/petstore/pkg/server/handler"
)

const (
	// DefaultBasePath matches the path the public service is mounted on.
	DefaultBasePath = "/api/v3"
)

var (
	// ErrInvalidOptions is raised when the server cannot be configured.
	ErrInvalidOptions = errors.New("invalid server options")
)

// Options allows the server to be configured on the CLI.
type Options struct {
	// ListenAddress is the address the server listens on.
	ListenAddress string

	// BasePath prefixes every route.
	BasePath string

	// ReadTimeout bounds reading a request.
	ReadTimeout time.Duration

	// WriteTimeout bounds writing a response.
	WriteTimeout time.Duration

	// Handler configures request handling, it has no flags.
	Handler handler.Options
}

func NewOptions() *Options {
	return &Options{
		ListenAddress: ":9090",
		BasePath:      DefaultBasePath,
		ReadTimeout:   time.Second,
		WriteTimeout:  10 * time.Second,
	}
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "listen", o.ListenAddress, "Address to listen on.")
	f.StringVar(&o.BasePath, "base-path", o.BasePath, "Path prefix for all routes.")
	f.DurationVar(&o.ReadTimeout, "read-timeout", o.ReadTimeout, "Request read timeout.")
	f.DurationVar(&o.WriteTimeout, "write-timeout", o.WriteTimeout, "Response write timeout.")
}

func (o *Options) Validate() error {
	if o.BasePath != "" && o.BasePath[0] != '/' {
		return fmt.Errorf("%w: base path %q must be absolute", ErrInvalidOptions, o.BasePath)
	}

	return nil
}

// logging reports every request through logr.
func logging(logger logr.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writer := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			start := time.Now()

			next.ServeHTTP(writer, r)

			logger.V(1).Info("request", "method", r.Method, "path", r.URL.Path, "status", writer.Status(), "bytes", writer.BytesWritten(), "duration", time.Since(start), "traceparent", r.Header.Get("Traceparent"))
		})
	}
}

// NewRouter returns the pet store routes mounted on the base path.
func NewRouter(options *Options, logger logr.Logger) (chi.Router, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	h := handler.New(&options.Handler, logger.WithName("handler"))

	routes := chi.NewRouter()
	routes.Post("/pet", h.PostPet)
	routes.Put("/pet", h.PutPet)
	routes.Get("/pet/findByStatus", h.GetPetFindByStatus)
	routes.Get("/pet/{petId}", h.GetPetPetID)
	routes.Delete("/pet/{petId}", h.DeletePetPetID)
	routes.Post("/store/order", h.PostStoreOrder)
	routes.Get("/store/order/{orderId}", h.GetStoreOrderOrderID)
	routes.Delete("/store/order/{orderId}", h.DeleteStoreOrderOrderID)
	routes.Get("/store/inventory", h.GetStoreInventory)
	routes.Get("/openapi.json", h.GetOpenapiJSON)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(logging(logger))

	if options.BasePath == "" || options.BasePath == "/" {
		router.Mount("/", routes)
	} else {
		router.Mount(options.BasePath, routes)
	}

	return router, nil
}

// Server runs the pet store double.
type Server struct {
	options *Options
	logger  logr.Logger
	server  *http.Server
}

func New(options *Options, logger logr.Logger) (*Server, error) {
	router, err := NewRouter(options, logger)
	if err != nil {
		return nil, err
	}

	s := &Server{
		options: options,
		logger:  logger,
		server: &http.Server{
			Addr:              options.ListenAddress,
			Handler:           router,
			ReadTimeout:       options.ReadTimeout,
			ReadHeaderTimeout: options.ReadTimeout,
			WriteTimeout:      options.WriteTimeout,
		},
	}

	return s, nil
}

// Run serves until the context is cancelled, then drains in flight requests.
func (s *Server) Run(ctx context.Context) error {
	errs := make(chan error, 1)

	go func() {
		s.logger.Info("listening", "address", s.options.ListenAddress, "basePath", s.options.BasePath)

		errs <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.options.WriteTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
