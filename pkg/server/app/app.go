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

// Package app implements the library facade. Every mutation to books, users,
// reviews and personal libraries goes through the App, which validates inputs
// against the store and publishes one domain event per mutation.
package app

import (
	"github.com/libris/libris/pkg/clock"
	"github.com/libris/libris/pkg/server/event"
	"github.com/libris/libris/pkg/server/store"
	"github.com/pkg/errors"
)

// Event names published by the facade, one per mutation
const (
	EventBookCreated    = "BOOK_CREATED"
	EventBookUpdated    = "BOOK_UPDATED"
	EventBookDeleted    = "BOOK_DELETED"
	EventReviewAdded    = "REVIEW_ADDED"
	EventUserRegistered = "USER_REGISTERED"
	EventLibraryUpdated = "LIBRARY_UPDATED"
)

var (
	// ErrEmptyStore is an error for missing store in the app configuration
	ErrEmptyStore = errors.New("No store was provided")
	// ErrEmptyClock is an error for missing clock in the app configuration
	ErrEmptyClock = errors.New("No clock was provided")
	// ErrEmptyEvents is an error for missing event subject in the app configuration
	ErrEmptyEvents = errors.New("No event subject was provided")
)

// App is an application context
type App struct {
	Store               *store.Store
	Clock               clock.Clock
	Events              *event.Subject
	DisableRegistration bool
}

// Validate validates the app configuration
func (a *App) Validate() error {
	if a.Store == nil {
		return ErrEmptyStore
	}
	if a.Clock == nil {
		return ErrEmptyClock
	}
	if a.Events == nil {
		return ErrEmptyEvents
	}

	return nil
}
