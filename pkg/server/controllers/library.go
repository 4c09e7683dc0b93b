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

// NewLibrary creates a new Library controller.
func NewLibrary(app *app.App) *Library {
	return &Library{
		app: app,
	}
}

// Library is a controller for personal collections.
type Library struct {
	app *app.App
}

// Index lists the authenticated user's collection in catalog order.
func (l *Library) Index(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	books, err := l.app.ListLibrary(user.ID)
	if err != nil {
		handleError(w, err, "listing library")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentBooks(books))
}

// Add puts a catalog book into the authenticated user's collection.
func (l *Library) Add(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	bookID, err := getIntParam(r, "bookID")
	if err != nil {
		handleError(w, err, "adding to library")
		return
	}

	if err := l.app.AddToLibrary(user, user.ID, bookID); err != nil {
		handleError(w, err, "adding to library")
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: "book added to library"})
}

// Remove takes a book out of the authenticated user's collection.
func (l *Library) Remove(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	bookID, err := getIntParam(r, "bookID")
	if err != nil {
		handleError(w, err, "removing from library")
		return
	}

	if err := l.app.RemoveFromLibrary(user, user.ID, bookID); err != nil {
		handleError(w, err, "removing from library")
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: "book removed from library"})
}
