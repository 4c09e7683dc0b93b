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

package app

import (
	stderrors "errors"
	"strings"

	"github.com/libris/libris/pkg/server/crypt"
	"github.com/libris/libris/pkg/server/permissions"
	"github.com/libris/libris/pkg/server/store"
	"github.com/libris/libris/pkg/server/token"
	"github.com/pkg/errors"
)

// RegisterUser creates a user with a hashed password and an empty personal
// library. An empty role defaults to user. Emails are unique ignoring case.
func (a *App) RegisterUser(name, email, password, role string) (store.User, error) {
	if a.DisableRegistration {
		return store.User{}, ErrRegistrationDisabled
	}
	if strings.TrimSpace(name) == "" {
		return store.User{}, ErrNameRequired
	}
	if strings.TrimSpace(email) == "" {
		return store.User{}, ErrEmailRequired
	}
	if len(password) < 6 {
		return store.User{}, ErrPasswordTooShort
	}

	if role == "" {
		role = store.RoleUser
	}
	if role != store.RoleUser && role != store.RoleAdmin {
		return store.User{}, ErrInvalidRole
	}

	user := store.User{
		ID:           a.Store.NextID(store.KindUser),
		Name:         name,
		Email:        strings.TrimSpace(email),
		PasswordHash: crypt.HashPassword(password),
		Role:         role,
		Library:      []int{},
		CreatedAt:    a.Clock.Now(),
	}

	if err := a.Store.InsertUser(user); err != nil {
		if stderrors.Is(err, store.ErrDuplicateEmail) {
			return store.User{}, ErrDuplicateEmail
		}
		return store.User{}, errors.Wrap(err, "inserting user")
	}

	a.Events.Notify(EventUserRegistered, map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	})

	return user, nil
}

// Authenticate checks the given credentials. It returns nil on an unknown
// email and on a wrong password alike, so callers cannot tell which check
// failed.
func (a *App) Authenticate(email, password string) (*store.User, error) {
	user, ok := a.Store.FindUserByEmail(email)
	if !ok {
		return nil, nil
	}

	if !crypt.VerifyPassword(user.PasswordHash, password) {
		return nil, nil
	}

	return &user, nil
}

// SignIn issues a fresh bearer token for the given user
func (a *App) SignIn(user *store.User) (store.Token, error) {
	tok, err := token.Create(a.Store, a.Clock, user.ID)
	if err != nil {
		return store.Token{}, errors.Wrap(err, "creating token")
	}

	return tok, nil
}

// ResolveToken returns the user the given token value maps to. A missing or
// unknown token and a token whose user no longer exists both fail with
// ErrUnauthenticated.
func (a *App) ResolveToken(value string) (store.User, error) {
	if value == "" {
		return store.User{}, errors.Wrap(ErrUnauthenticated, "missing token")
	}

	tok, ok := a.Store.GetToken(value)
	if !ok {
		return store.User{}, errors.Wrap(ErrUnauthenticated, "unknown token")
	}

	user, ok := a.Store.GetUser(tok.UserID)
	if !ok {
		return store.User{}, errors.Wrap(ErrUnauthenticated, "user no longer exists")
	}

	return user, nil
}

// RequireAdmin fails with ErrForbidden unless the given user is an admin. The
// boundary layer calls it before admin-only catalog mutations.
func (a *App) RequireAdmin(user *store.User) error {
	if !permissions.IsAdmin(user) {
		return errors.Wrap(ErrForbidden, "admin only")
	}

	return nil
}
