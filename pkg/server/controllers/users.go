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

	"github.com/libris/libris/pkg/server/app"
	"github.com/libris/libris/pkg/server/context"
	"github.com/libris/libris/pkg/server/presenters"
)

// NewUsers creates a new Users controller.
func NewUsers(app *app.App) *Users {
	return &Users{
		app: app,
	}
}

// Users is a user controller.
type Users struct {
	app *app.App
}

type registerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates a new account.
func (u *Users) Register(w http.ResponseWriter, r *http.Request) {
	var payload registerPayload
	if err := parseJSON(r, &payload); err != nil {
		handleError(w, err, "registering user")
		return
	}

	user, err := u.app.RegisterUser(payload.Name, payload.Email, payload.Password, payload.Role)
	if err != nil {
		handleError(w, err, "registering user")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentUser(user))
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a user and issues a session token. The response for a
// wrong password is identical to that for an unknown email.
func (u *Users) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := parseJSON(r, &payload); err != nil {
		handleError(w, err, "logging in")
		return
	}

	user, err := u.app.Authenticate(payload.Email, payload.Password)
	if err != nil {
		handleError(w, err, "logging in")
		return
	}
	if user == nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Message: "invalid credentials"})
		return
	}

	session, err := u.app.SignIn(user)
	if err != nil {
		handleError(w, err, "logging in")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentSession(session, *user))
}

// Me returns the account behind the request's session token.
func (u *Users) Me(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	respondJSON(w, http.StatusOK, presenters.PresentUser(*user))
}
