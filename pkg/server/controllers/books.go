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

	"github.com/pkg/errors"

	"github.com/libris/libris/pkg/server/app"
	"github.com/libris/libris/pkg/server/context"
	"github.com/libris/libris/pkg/server/presenters"
	"github.com/libris/libris/pkg/server/store"
)

// NewBooks creates a new Books controller.
func NewBooks(app *app.App) *Books {
	return &Books{
		app: app,
	}
}

// Books is a catalog controller.
type Books struct {
	app *app.App
}

type listBooksQuery struct {
	Page     int    `schema:"page"`
	Limit    int    `schema:"limit"`
	Category string `schema:"category"`
	Search   string `schema:"search"`
}

// Index lists catalog books, filtered and paginated.
func (b *Books) Index(w http.ResponseWriter, r *http.Request) {
	var query listBooksQuery
	if err := queryDecoder.Decode(&query, r.URL.Query()); err != nil {
		handleError(w, errors.Wrap(app.ErrInvalid, "decoding query"), "listing books")
		return
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 || query.Limit > 100 {
		query.Limit = 20
	}

	books := b.app.ListBooks(query.Category, query.Search)
	page := paginateBooks(books, query.Page, query.Limit)

	respondJSON(w, http.StatusOK, presenters.PresentBooks(page))
}

// paginateBooks slices a result set to the requested page. A page past the
// end yields an empty slice rather than an error.
func paginateBooks(books []store.Book, page, limit int) []store.Book {
	start := (page - 1) * limit
	if start >= len(books) {
		return []store.Book{}
	}

	end := start + limit
	if end > len(books) {
		end = len(books)
	}

	return books[start:end]
}

// Show returns a single book by id.
func (b *Books) Show(w http.ResponseWriter, r *http.Request) {
	bookID, err := getIntParam(r, "bookID")
	if err != nil {
		handleError(w, err, "getting book")
		return
	}

	book, err := b.app.GetBook(bookID)
	if err != nil {
		handleError(w, err, "getting book")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentBook(book))
}

// Read returns the text content of a book.
func (b *Books) Read(w http.ResponseWriter, r *http.Request) {
	bookID, err := getIntParam(r, "bookID")
	if err != nil {
		handleError(w, err, "reading book")
		return
	}

	book, err := b.app.GetBook(bookID)
	if err != nil {
		handleError(w, err, "reading book")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentBookContent(book))
}

type createBookPayload struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

// Create adds a book to the catalog. Admin only.
func (b *Books) Create(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	if err := b.app.RequireAdmin(user); err != nil {
		handleError(w, err, "creating book")
		return
	}

	var payload createBookPayload
	if err := parseJSON(r, &payload); err != nil {
		handleError(w, err, "creating book")
		return
	}
	if payload.Title == "" {
		handleError(w, errors.Wrap(app.ErrInvalid, "title is required"), "creating book")
		return
	}
	if payload.Author == "" {
		handleError(w, errors.Wrap(app.ErrInvalid, "author is required"), "creating book")
		return
	}
	if payload.Category == "" {
		handleError(w, errors.Wrap(app.ErrInvalid, "category is required"), "creating book")
		return
	}

	book, err := b.app.CreateBook(payload.Title, payload.Author, payload.Category, payload.Content)
	if err != nil {
		handleError(w, err, "creating book")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentBook(book))
}

type updateBookPayload struct {
	Title    *string `json:"title"`
	Author   *string `json:"author"`
	Category *string `json:"category"`
	Content  *string `json:"content"`
}

// Update modifies the given fields of a book. Admin only.
func (b *Books) Update(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	if err := b.app.RequireAdmin(user); err != nil {
		handleError(w, err, "updating book")
		return
	}

	bookID, err := getIntParam(r, "bookID")
	if err != nil {
		handleError(w, err, "updating book")
		return
	}

	var payload updateBookPayload
	if err := parseJSON(r, &payload); err != nil {
		handleError(w, err, "updating book")
		return
	}

	book, err := b.app.UpdateBook(bookID, app.BookParams{
		Title:    payload.Title,
		Author:   payload.Author,
		Category: payload.Category,
		Content:  payload.Content,
	})
	if err != nil {
		handleError(w, err, "updating book")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentBook(book))
}

// Delete removes a book and its reviews. Admin only.
func (b *Books) Delete(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	if err := b.app.RequireAdmin(user); err != nil {
		handleError(w, err, "deleting book")
		return
	}

	bookID, err := getIntParam(r, "bookID")
	if err != nil {
		handleError(w, err, "deleting book")
		return
	}

	if err := b.app.DeleteBook(bookID); err != nil {
		handleError(w, err, "deleting book")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
