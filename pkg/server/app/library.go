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

	"github.com/libris/libris/pkg/server/permissions"
	"github.com/libris/libris/pkg/server/store"
	"github.com/pkg/errors"
)

// AddToLibrary adds the given book to the library of the user with the given
// id. Only the owner may change a library. The book must exist in the catalog
// and must not already be a member; the store checks both in the same critical
// section as the insert.
func (a *App) AddToLibrary(actor *store.User, userID, bookID int) error {
	if !permissions.OwnsLibrary(actor, userID) {
		return errors.Wrapf(ErrForbidden, "library of user %d", userID)
	}

	if err := a.Store.AddLibraryBook(userID, bookID); err != nil {
		switch {
		case stderrors.Is(err, store.ErrDuplicateLibraryBook):
			return ErrDuplicateLibraryBook
		case stderrors.Is(err, store.ErrBookNotFound):
			return errors.Wrapf(ErrNotFound, "book %d", bookID)
		case stderrors.Is(err, store.ErrUserNotFound):
			return errors.Wrapf(ErrNotFound, "user %d", userID)
		default:
			return errors.Wrap(err, "adding library book")
		}
	}

	a.Events.Notify(EventLibraryUpdated, map[string]interface{}{
		"user_id": userID,
		"book_id": bookID,
		"action":  "add",
	})

	return nil
}

// RemoveFromLibrary removes the given book from the library of the user with
// the given id. Only the owner may change a library.
func (a *App) RemoveFromLibrary(actor *store.User, userID, bookID int) error {
	if !permissions.OwnsLibrary(actor, userID) {
		return errors.Wrapf(ErrForbidden, "library of user %d", userID)
	}

	if err := a.Store.RemoveLibraryBook(userID, bookID); err != nil {
		switch {
		case stderrors.Is(err, store.ErrLibraryBookNotFound):
			return errors.Wrapf(ErrNotFound, "book %d not in library", bookID)
		case stderrors.Is(err, store.ErrUserNotFound):
			return errors.Wrapf(ErrNotFound, "user %d", userID)
		default:
			return errors.Wrap(err, "removing library book")
		}
	}

	a.Events.Notify(EventLibraryUpdated, map[string]interface{}{
		"user_id": userID,
		"book_id": bookID,
		"action":  "remove",
	})

	return nil
}

// ListLibrary returns the books in the user's personal library, in the order
// of the catalog. Ids whose book has since been deleted are skipped.
func (a *App) ListLibrary(userID int) ([]store.Book, error) {
	ids, err := a.Store.ListLibrary(userID)
	if err != nil {
		if stderrors.Is(err, store.ErrUserNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "user %d", userID)
		}
		return nil, errors.Wrap(err, "listing library")
	}

	member := map[int]bool{}
	for _, id := range ids {
		member[id] = true
	}

	ret := []store.Book{}
	for _, b := range a.Store.ListBooks() {
		if member[b.ID] {
			ret = append(ret, b)
		}
	}

	return ret, nil
}
