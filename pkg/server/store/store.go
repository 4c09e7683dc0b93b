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

// Package store provides an in-memory store for the library catalog. All
// collections live in process memory and are guarded by a single lock; nothing
// survives a restart.
package store

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
)

var (
	// ErrBookNotFound is an error for a book id that is not in the catalog
	ErrBookNotFound = errors.New("book not found")
	// ErrUserNotFound is an error for a user id that is not in the store
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is an error for inserting a user with an email that is
	// already taken, compared case-insensitively
	ErrDuplicateEmail = errors.New("email already taken")
	// ErrDuplicateLibraryBook is an error for adding a book id that is already
	// in a user's personal library
	ErrDuplicateLibraryBook = errors.New("book already in library")
	// ErrLibraryBookNotFound is an error for removing a book id that is not in
	// a user's personal library
	ErrLibraryBookNotFound = errors.New("book not in library")
)

// Store holds the in-memory collections of books, users, reviews and tokens.
// One lock serializes every mutation so that concurrent request handlers see
// the most recently committed state.
type Store struct {
	mu sync.RWMutex

	books   []Book
	users   []User
	reviews map[int][]Review
	tokens  map[string]Token
	nextIDs map[Kind]int
}

// New returns an empty store
func New() *Store {
	return &Store{
		books:   []Book{},
		users:   []User{},
		reviews: map[int][]Review{},
		tokens:  map[string]Token{},
		nextIDs: map[Kind]int{},
	}
}

// NextID issues a fresh id for the given kind. Issued ids are strictly
// increasing and are never reused, including after deletions.
func (s *Store) NextID(kind Kind) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextIDs[kind]++

	return s.nextIDs[kind]
}

// InsertBook appends the given book to the catalog
func (s *Store) InsertBook(b Book) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books = append(s.books, b)
}

// GetBook looks up a book by id
func (s *Store) GetBook(id int) (Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.books {
		if b.ID == id {
			return b, true
		}
	}

	return Book{}, false
}

// UpdateBook applies the given mutation to the stored book with the given id,
// in one critical section. Concurrent updates to the same book never observe
// each other's stale reads. It reports whether the book was found.
func (s *Store) UpdateBook(id int, apply func(*Book)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.books {
		if s.books[i].ID == id {
			apply(&s.books[i])
			return true
		}
	}

	return false
}

// RemoveBook deletes the book with the given id along with its review
// sequence, in one critical section. It returns the removed book and reports
// whether the book was found; removing an unknown id is a no-op.
func (s *Store) RemoveBook(id int) (Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.books {
		if b.ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			delete(s.reviews, id)
			return b, true
		}
	}

	return Book{}, false
}

// ListBooks returns all books in insertion order
func (s *Store) ListBooks() []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ret := make([]Book, len(s.books))
	copy(ret, s.books)

	return ret
}

// AppendReview appends a review to the review sequence of its book. The book
// must exist at the time of the append.
func (s *Store) AppendReview(r Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.bookExists(r.BookID) {
		return errors.Wrapf(ErrBookNotFound, "appending review to book %d", r.BookID)
	}

	s.reviews[r.BookID] = append(s.reviews[r.BookID], r)

	return nil
}

// ListReviews returns the reviews for the given book id in append order
func (s *Store) ListReviews(bookID int) []Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ret := make([]Review, len(s.reviews[bookID]))
	copy(ret, s.reviews[bookID])

	return ret
}

// InsertUser appends the given user. Emails are unique across users,
// compared case-insensitively.
func (s *Store) InsertUser(u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return errors.Wrapf(ErrDuplicateEmail, "inserting user %q", u.Email)
		}
	}

	s.users = append(s.users, u)

	return nil
}

// GetUser looks up a user by id
func (s *Store) GetUser(id int) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return cloneUser(u), true
		}
	}

	return User{}, false
}

// FindUserByEmail looks up a user by email, compared case-insensitively
func (s *Store) FindUserByEmail(email string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), true
		}
	}

	return User{}, false
}

// ListUsers returns all users in insertion order
func (s *Store) ListUsers() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ret := make([]User, 0, len(s.users))
	for _, u := range s.users {
		ret = append(ret, cloneUser(u))
	}

	return ret
}

// AddLibraryBook adds the given book id to the user's personal library. The
// book must be in the catalog at the time of the add, so a concurrent delete
// cannot leave a dangling membership. Membership is unique.
func (s *Store) AddLibraryBook(userID, bookID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(userID)
	if u == nil {
		return errors.Wrapf(ErrUserNotFound, "adding book %d to library", bookID)
	}

	if !s.bookExists(bookID) {
		return errors.Wrapf(ErrBookNotFound, "adding book %d to library", bookID)
	}

	for _, id := range u.Library {
		if id == bookID {
			return errors.Wrapf(ErrDuplicateLibraryBook, "adding book %d to library", bookID)
		}
	}

	u.Library = append(u.Library, bookID)

	return nil
}

// RemoveLibraryBook removes the given book id from the user's personal library
func (s *Store) RemoveLibraryBook(userID, bookID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(userID)
	if u == nil {
		return errors.Wrapf(ErrUserNotFound, "removing book %d from library", bookID)
	}

	for i, id := range u.Library {
		if id == bookID {
			u.Library = append(u.Library[:i], u.Library[i+1:]...)
			return nil
		}
	}

	return errors.Wrapf(ErrLibraryBookNotFound, "removing book %d from library", bookID)
}

// ListLibrary returns the book ids in the user's personal library
func (s *Store) ListLibrary(userID int) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.findUser(userID)
	if u == nil {
		return nil, errors.Wrap(ErrUserNotFound, "listing library")
	}

	ret := make([]int, len(u.Library))
	copy(ret, u.Library)

	return ret, nil
}

// InsertToken stores the mapping from the token value to its user id
func (s *Store) InsertToken(t Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[t.Value] = t
}

// GetToken looks up a token by its value
func (s *Store) GetToken(value string) (Token, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tokens[value]

	return t, ok
}

func (s *Store) bookExists(id int) bool {
	for _, b := range s.books {
		if b.ID == id {
			return true
		}
	}

	return false
}

func (s *Store) findUser(id int) *User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}

	return nil
}

func cloneUser(u User) User {
	lib := make([]int, len(u.Library))
	copy(lib, u.Library)
	u.Library = lib

	return u
}
