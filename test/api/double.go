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
	"net/http/httptest"

	"github.com/go-logr/logr"

	"github.com/petstore-e2e/petstore/pkg/server"
)

// StartDouble serves an in-memory pet store on a loopback port and returns
// its base URL. The caller must call stop.
func StartDouble(logger logr.Logger) (string, func(), error) {
	options := server.NewOptions()

	router, err := server.NewRouter(options, logger)
	if err != nil {
		return "", nil, err
	}

	s := httptest.NewServer(router)

	return s.URL + options.BasePath, s.Close, nil
}
