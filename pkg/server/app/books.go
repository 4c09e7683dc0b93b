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
	"strings"

	"github.com/libris/libris/pkg/server/store"
	"github.com/pkg/errors"
)

// BookParams holds a partial change set for a book. Nil fields are left
// untouched.
type BookParams struct {
	Title    *string
	Author   *string
	Category *string
	Content  *string
}

// CreateBook adds a book to the global catalog with a fresh id. Authorization
// is the caller's job; the boundary layer gates this behind RequireAdmin.
func (a *App) CreateBook(title, author, category, content string) (store.Book, error) {
	now := a.Clock.Now()

	book := store.Book{
		ID:        a.Store.NextID(store.KindBook),
		Title:     title,
		Author:    author,
		Category:  category,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	a.Store.InsertBook(book)

	a.Events.Notify(EventBookCreated, map[string]interface{}{
		"id":       book.ID,
		"title":    book.Title,
		"author":   book.Author,
		"category": book.Category,
	})

	return book, nil
}

// UpdateBook applies the non-nil fields of the given change set to the book
// with the given id. The change set is applied inside the store's critical
// section so that concurrent updates to different fields both stick.
func (a *App) UpdateBook(id int, params BookParams) (store.Book, error) {
	now := a.Clock.Now()

	var book store.Book
	ok := a.Store.UpdateBook(id, func(b *store.Book) {
		if params.Title != nil {
			b.Title = *params.Title
		}
		if params.Author != nil {
			b.Author = *params.Author
		}
		if params.Category != nil {
			b.Category = *params.Category
		}
		if params.Content != nil {
			b.Content = *params.Content
		}
		b.UpdatedAt = now

		book = *b
	})
	if !ok {
		return store.Book{}, errors.Wrapf(ErrNotFound, "book %d", id)
	}

	a.Events.Notify(EventBookUpdated, map[string]interface{}{
		"id":       book.ID,
		"title":    book.Title,
		"author":   book.Author,
		"category": book.Category,
	})

	return book, nil
}

// DeleteBook removes the book with the given id from the catalog and purges
// its review sequence with it
func (a *App) DeleteBook(id int) error {
	removed, ok := a.Store.RemoveBook(id)
	if !ok {
		return errors.Wrapf(ErrNotFound, "book %d", id)
	}

	a.Events.Notify(EventBookDeleted, map[string]interface{}{
		"id":     removed.ID,
		"title":  removed.Title,
		"author": removed.Author,
	})

	return nil
}

// GetBook returns the book with the given id
func (a *App) GetBook(id int) (store.Book, error) {
	book, ok := a.Store.GetBook(id)
	if !ok {
		return store.Book{}, errors.Wrapf(ErrNotFound, "book %d", id)
	}

	return book, nil
}

// ListBooks returns the catalog in insertion order. A non-empty category
// filters on exact category equality ignoring case. A non-empty search
// matches as a substring of the title or the author, ignoring case. Both
// filters compose with AND.
func (a *App) ListBooks(category, search string) []store.Book {
	books := a.Store.ListBooks()

	ret := []store.Book{}
	q := strings.ToLower(search)

	for _, b := range books {
		if category != "" && !strings.EqualFold(b.Category, category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(b.Title), q) &&
			!strings.Contains(strings.ToLower(b.Author), q) {
			continue
		}

		ret = append(ret, b)
	}

	return ret
}
