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

package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/libris/libris/pkg/server/app"
	mw "github.com/libris/libris/pkg/server/middleware"
)

// Route represents a single route
type Route struct {
	Method    string
	Pattern   string
	Handler   http.HandlerFunc
	RateLimit bool
}

// NewAPIRoutes returns routes for the API
func NewAPIRoutes(a *app.App, c *Controllers) []Route {
	return []Route{
		{"GET", "/health", c.Health.Index, false},

		{"GET", "/books", c.Books.Index, true},
		{"POST", "/books", mw.Auth(a, c.Books.Create), true},
		{"GET", "/books/{bookID}", c.Books.Show, true},
		{"PUT", "/books/{bookID}", mw.Auth(a, c.Books.Update), true},
		{"DELETE", "/books/{bookID}", mw.Auth(a, c.Books.Delete), true},
		{"GET", "/books/{bookID}/read", c.Books.Read, true},

		{"GET", "/books/{bookID}/reviews", c.Reviews.Index, true},
		{"POST", "/books/{bookID}/reviews", mw.Auth(a, c.Reviews.Create), true},

		{"POST", "/users", c.Users.Register, true},
		{"POST", "/auth/login", c.Users.Login, true},
		{"GET", "/auth/me", mw.Auth(a, c.Users.Me), true},

		{"GET", "/users/me/library", mw.Auth(a, c.Library.Index), true},
		{"POST", "/users/me/library/{bookID}", mw.Auth(a, c.Library.Add), true},
		{"DELETE", "/users/me/library/{bookID}", mw.Auth(a, c.Library.Remove), true},
	}
}

func registerRoutes(router *mux.Router, routes []Route) {
	for _, route := range routes {
		handler := mw.ApplyLimit(route.Handler, route.RateLimit)

		router.
			Handle(route.Pattern, handler).
			Methods(route.Method)
	}
}

// RouteConfig is the configuration for routes
type RouteConfig struct {
	Controllers *Controllers
}

// NewRouter creates and returns a new router
func NewRouter(a *app.App, rc RouteConfig) (http.Handler, error) {
	if err := a.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating app")
	}

	router := mux.NewRouter().StrictSlash(true)

	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	registerRoutes(apiRouter, NewAPIRoutes(a, rc.Controllers))

	return mw.Global(router), nil
}
