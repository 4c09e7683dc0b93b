/* Copyright 2026 Libris Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package testutils provides utilities used in tests
package testutils

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/libris/libris/pkg/server/app"
	"github.com/libris/libris/pkg/server/store"
	"github.com/libris/libris/pkg/server/token"
)

func init() {
	// disable rate limiting during tests
	os.Setenv("GO_ENV", "TEST")
}

// SetupUserData creates and returns a new user for testing purposes
func SetupUserData(t *testing.T, a *app.App, name, email, password string) store.User {
	user, err := a.RegisterUser(name, email, password, store.RoleUser)
	if err != nil {
		t.Fatal(errors.Wrap(err, "preparing user"))
	}

	return user
}

// SetupAdminData creates and returns a new admin user for testing purposes
func SetupAdminData(t *testing.T, a *app.App, name, email, password string) store.User {
	user, err := a.RegisterUser(name, email, password, store.RoleAdmin)
	if err != nil {
		t.Fatal(errors.Wrap(err, "preparing admin"))
	}

	return user
}

// HTTPDo makes an HTTP request and returns a response
func HTTPDo(t *testing.T, req *http.Request) *http.Response {
	hc := http.Client{}

	res, err := hc.Do(req)
	if err != nil {
		t.Fatal(errors.Wrap(err, "performing http request"))
	}

	return res
}

// SetReqAuthHeader sets the authorization header in the given request for the given user
func SetReqAuthHeader(t *testing.T, a *app.App, req *http.Request, user store.User) {
	tok, err := token.Create(a.Store, a.Clock, user.ID)
	if err != nil {
		t.Fatal(errors.Wrap(err, "preparing session token"))
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", tok.Value))
}

// HTTPAuthDo makes an HTTP request with an authorization header for the given user
func HTTPAuthDo(t *testing.T, a *app.App, req *http.Request, user store.User) *http.Response {
	SetReqAuthHeader(t, a, req, user)

	return HTTPDo(t, req)
}

// MakeReq makes an HTTP request and returns a response
func MakeReq(endpoint string, method, path, data string) *http.Request {
	u := fmt.Sprintf("%s%s", endpoint, path)

	req, err := http.NewRequest(method, u, strings.NewReader(data))
	if err != nil {
		panic(errors.Wrap(err, "constructing http request"))
	}

	return req
}
