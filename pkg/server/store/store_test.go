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

package store

import (
	"sync"
	"testing"

	"github.com/libris/libris/pkg/assert"
	"github.com/pkg/errors"
)

func TestNextID(t *testing.T) {
	s := New()

	got1 := s.NextID(KindBook)
	got2 := s.NextID(KindBook)
	got3 := s.NextID(KindUser)

	assert.Equal(t, got1, 1, "first book id mismatch")
	assert.Equal(t, got2, 2, "second book id mismatch")
	assert.Equal(t, got3, 1, "id spaces should be independent per kind")
}

func TestNextIDNeverReused(t *testing.T) {
	s := New()

	id1 := s.NextID(KindBook)
	s.InsertBook(Book{ID: id1, Title: "1984"})

	_, ok := s.RemoveBook(id1)
	assert.Equal(t, ok, true, "removing the book should succeed")

	id2 := s.NextID(KindBook)
	if id2 <= id1 {
		t.Errorf("id issued after a delete should be strictly greater. Got %d after %d.", id2, id1)
	}
}

func TestNextIDConcurrent(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	results := make(chan int, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- s.NextID(KindUser)
		}()
	}

	wg.Wait()
	close(results)

	seen := map[int]bool{}
	for id := range results {
		if seen[id] {
			t.Errorf("id %d was issued twice", id)
		}
		seen[id] = true
	}
}

func TestRemoveBookCascadesReviews(t *testing.T) {
	s := New()

	s.InsertBook(Book{ID: 1, Title: "1984", Author: "Orwell"})
	s.InsertBook(Book{ID: 2, Title: "La Odisea", Author: "Homero"})

	if err := s.AppendReview(Review{BookID: 1, UserID: 1, Text: "Great", Rating: 5}); err != nil {
		t.Fatal(errors.Wrap(err, "appending review"))
	}
	if err := s.AppendReview(Review{BookID: 2, UserID: 1, Text: "Epic", Rating: 4}); err != nil {
		t.Fatal(errors.Wrap(err, "appending review"))
	}

	_, ok := s.RemoveBook(1)
	assert.Equal(t, ok, true, "removing the book should succeed")

	assert.Equal(t, len(s.ListReviews(1)), 0, "reviews of the removed book should be purged")
	assert.Equal(t, len(s.ListReviews(2)), 1, "reviews of other books should be intact")
	assert.Equal(t, len(s.ListBooks()), 1, "book count mismatch")
}

func TestUpdateBook(t *testing.T) {
	s := New()

	s.InsertBook(Book{ID: 1, Title: "1984", Author: "Orwell"})

	ok := s.UpdateBook(1, func(b *Book) {
		b.Title = "Animal Farm"
	})
	assert.Equal(t, ok, true, "updating the book should succeed")

	got, _ := s.GetBook(1)
	assert.Equal(t, got.Title, "Animal Farm", "title mismatch")
	assert.Equal(t, got.Author, "Orwell", "author should be untouched")

	ok = s.UpdateBook(42, func(b *Book) {
		b.Title = "x"
	})
	assert.Equal(t, ok, false, "updating an unknown id should report not found")
}

func TestUpdateBookConcurrent(t *testing.T) {
	s := New()

	s.InsertBook(Book{ID: 1, Title: "t0", Author: "a0"})

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.UpdateBook(1, func(b *Book) {
				b.Title = "t1"
			})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.UpdateBook(1, func(b *Book) {
				b.Author = "a1"
			})
		}
	}()

	wg.Wait()

	got, _ := s.GetBook(1)
	assert.Equal(t, got.Title, "t1", "a title update was lost")
	assert.Equal(t, got.Author, "a1", "an author update was lost")
}

func TestRemoveBookNotFound(t *testing.T) {
	s := New()

	_, ok := s.RemoveBook(42)

	assert.Equal(t, ok, false, "removing an unknown id should report not found")
}

func TestAppendReviewMissingBook(t *testing.T) {
	s := New()

	err := s.AppendReview(Review{BookID: 9, UserID: 1, Text: "Great", Rating: 5})

	assert.Equal(t, errors.Is(err, ErrBookNotFound), true, "error kind mismatch")
}

func TestInsertUserDuplicateEmail(t *testing.T) {
	testCases := []struct {
		first  string
		second string
	}{
		{"a@x.com", "a@x.com"},
		{"a@x.com", "A@X.COM"},
		{"Alice@Example.com", "alice@example.com"},
	}

	for _, tc := range testCases {
		s := New()

		if err := s.InsertUser(User{ID: 1, Email: tc.first}); err != nil {
			t.Fatal(errors.Wrap(err, "inserting the first user"))
		}

		err := s.InsertUser(User{ID: 2, Email: tc.second})
		assert.Equal(t, errors.Is(err, ErrDuplicateEmail), true, "error kind mismatch")
		assert.Equal(t, len(s.ListUsers()), 1, "user count mismatch")
	}
}

func TestFindUserByEmail(t *testing.T) {
	s := New()

	if err := s.InsertUser(User{ID: 1, Email: "alice@example.com"}); err != nil {
		t.Fatal(errors.Wrap(err, "inserting user"))
	}

	got, ok := s.FindUserByEmail("ALICE@EXAMPLE.COM")
	assert.Equal(t, ok, true, "lookup should be case-insensitive")
	assert.Equal(t, got.ID, 1, "user id mismatch")

	_, ok = s.FindUserByEmail("bob@example.com")
	assert.Equal(t, ok, false, "unknown email should not be found")
}

func TestLibraryMembership(t *testing.T) {
	s := New()

	if err := s.InsertUser(User{ID: 1, Email: "alice@example.com"}); err != nil {
		t.Fatal(errors.Wrap(err, "inserting user"))
	}
	s.InsertBook(Book{ID: 7, Title: "Rayuela"})

	if err := s.AddLibraryBook(1, 7); err != nil {
		t.Fatal(errors.Wrap(err, "adding library book"))
	}

	err := s.AddLibraryBook(1, 7)
	assert.Equal(t, errors.Is(err, ErrDuplicateLibraryBook), true, "duplicate add error kind mismatch")

	lib, err := s.ListLibrary(1)
	if err != nil {
		t.Fatal(errors.Wrap(err, "listing library"))
	}
	assert.DeepEqual(t, lib, []int{7}, "library mismatch")

	if err := s.RemoveLibraryBook(1, 7); err != nil {
		t.Fatal(errors.Wrap(err, "removing library book"))
	}

	err = s.RemoveLibraryBook(1, 7)
	assert.Equal(t, errors.Is(err, ErrLibraryBookNotFound), true, "remove error kind mismatch")

	lib, err = s.ListLibrary(1)
	if err != nil {
		t.Fatal(errors.Wrap(err, "listing library"))
	}
	assert.Equal(t, len(lib), 0, "library should be empty")
}

func TestAddLibraryBookMissingBook(t *testing.T) {
	s := New()

	if err := s.InsertUser(User{ID: 1, Email: "alice@example.com"}); err != nil {
		t.Fatal(errors.Wrap(err, "inserting user"))
	}

	err := s.AddLibraryBook(1, 7)
	assert.Equal(t, errors.Is(err, ErrBookNotFound), true, "error kind mismatch")

	lib, err := s.ListLibrary(1)
	if err != nil {
		t.Fatal(errors.Wrap(err, "listing library"))
	}
	assert.Equal(t, len(lib), 0, "a failed add should not change the library")
}

func TestLibraryUnknownUser(t *testing.T) {
	s := New()

	err := s.AddLibraryBook(9, 1)
	assert.Equal(t, errors.Is(err, ErrUserNotFound), true, "add error kind mismatch")

	err = s.RemoveLibraryBook(9, 1)
	assert.Equal(t, errors.Is(err, ErrUserNotFound), true, "remove error kind mismatch")
}

func TestGetUserReturnsCopy(t *testing.T) {
	s := New()

	if err := s.InsertUser(User{ID: 1, Email: "alice@example.com", Library: []int{1}}); err != nil {
		t.Fatal(errors.Wrap(err, "inserting user"))
	}

	got, _ := s.GetUser(1)
	got.Library[0] = 99

	fresh, _ := s.GetUser(1)
	assert.Equal(t, fresh.Library[0], 1, "mutating a returned user should not affect the store")
}

func TestTokens(t *testing.T) {
	s := New()

	s.InsertToken(Token{Value: "tok-1", UserID: 3})

	got, ok := s.GetToken("tok-1")
	assert.Equal(t, ok, true, "token should be found")
	assert.Equal(t, got.UserID, 3, "token user id mismatch")

	_, ok = s.GetToken("tok-2")
	assert.Equal(t, ok, false, "unknown token should not be found")
}

func TestListBooksInsertionOrder(t *testing.T) {
	s := New()

	s.InsertBook(Book{ID: 1, Title: "a"})
	s.InsertBook(Book{ID: 2, Title: "b"})
	s.InsertBook(Book{ID: 3, Title: "c"})
	s.RemoveBook(2)
	s.InsertBook(Book{ID: 4, Title: "d"})

	books := s.ListBooks()

	got := []int{}
	for _, b := range books {
		got = append(got, b.ID)
	}

	assert.DeepEqual(t, got, []int{1, 3, 4}, "insertion order mismatch")
}
