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
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"

	"github.com/libris/libris/pkg/assert"
	"github.com/libris/libris/pkg/server/app"
	"github.com/libris/libris/pkg/server/presenters"
	"github.com/libris/libris/pkg/server/testutils"
)

func TestGetLibrary(t *testing.T) {
	a := app.NewTest()
	server := MustNewServer(t, &a)
	defer server.Close()

	user := testutils.SetupUserData(t, &a, "alice", "alice@example.com", "pass1234")

	b1 := mustCreateBook(t, &a, "Don Quijote", "Miguel de Cervantes", "Novela")
	b2 := mustCreateBook(t, &a, "Rayuela", "Julio Cortázar", "Novela")

	// added out of catalog order
	if err := a.AddToLibrary(&user, user.ID, b2.ID); err != nil {
		t.Fatal(errors.Wrap(err, "preparing library"))
	}
	if err := a.AddToLibrary(&user, user.ID, b1.ID); err != nil {
		t.Fatal(errors.Wrap(err, "preparing library"))
	}

	req := testutils.MakeReq(server.URL, "GET", "/api/v1/users/me/library", "")
	res := testutils.HTTPAuthDo(t, &a, req, user)

	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	var payload []presenters.Book
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatal(errors.Wrap(err, "decoding payload"))
	}

	gotIDs := []int{}
	for _, b := range payload {
		gotIDs = append(gotIDs, b.ID)
	}
	assert.DeepEqual(t, gotIDs, []int{b1.ID, b2.ID}, "library should follow catalog order")
}

func TestAddToLibrary(t *testing.T) {
	a := app.NewTest()
	server := MustNewServer(t, &a)
	defer server.Close()

	user := testutils.SetupUserData(t, &a, "alice", "alice@example.com", "pass1234")
	book := mustCreateBook(t, &a, "Don Quijote", "Miguel de Cervantes", "Novela")

	req := testutils.MakeReq(server.URL, "POST", fmt.Sprintf("/api/v1/users/me/library/%d", book.ID), "")
	res := testutils.HTTPAuthDo(t, &a, req, user)

	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	books, err := a.ListLibrary(user.ID)
	if err != nil {
		t.Fatal(errors.Wrap(err, "listing library"))
	}
	assert.Equal(t, len(books), 1, "library count mismatch")
	assert.Equal(t, books[0].ID, book.ID, "book id mismatch")
}

func TestAddToLibraryDuplicate(t *testing.T) {
	a := app.NewTest()
	server := MustNewServer(t, &a)
	defer server.Close()

	user := testutils.SetupUserData(t, &a, "alice", "alice@example.com", "pass1234")
	book := mustCreateBook(t, &a, "Don Quijote", "Miguel de Cervantes", "Novela")

	if err := a.AddToLibrary(&user, user.ID, book.ID); err != nil {
		t.Fatal(errors.Wrap(err, "preparing library"))
	}

	req := testutils.MakeReq(server.URL, "POST", fmt.Sprintf("/api/v1/users/me/library/%d", book.ID), "")
	res := testutils.HTTPAuthDo(t, &a, req, user)

	assert.StatusCodeEquals(t, res, http.StatusConflict, "")

	books, err := a.ListLibrary(user.ID)
	if err != nil {
		t.Fatal(errors.Wrap(err, "listing library"))
	}
	assert.Equal(t, len(books), 1, "library count mismatch")
}

func TestAddToLibraryMissingBook(t *testing.T) {
	a := app.NewTest()
	server := MustNewServer(t, &a)
	defer server.Close()

	user := testutils.SetupUserData(t, &a, "alice", "alice@example.com", "pass1234")

	req := testutils.MakeReq(server.URL, "POST", "/api/v1/users/me/library/42", "")
	res := testutils.HTTPAuthDo(t, &a, req, user)

	assert.StatusCodeEquals(t, res, http.StatusNotFound, "")
}

func TestRemoveFromLibrary(t *testing.T) {
	a := app.NewTest()
	server := MustNewServer(t, &a)
	defer server.Close()

	user := testutils.SetupUserData(t, &a, "alice", "alice@example.com", "pass1234")
	book := mustCreateBook(t, &a, "Don Quijote", "Miguel de Cervantes", "Novela")

	if err := a.AddToLibrary(&user, user.ID, book.ID); err != nil {
		t.Fatal(errors.Wrap(err, "preparing library"))
	}

	req := testutils.MakeReq(server.URL, "DELETE", fmt.Sprintf("/api/v1/users/me/library/%d", book.ID), "")
	res := testutils.HTTPAuthDo(t, &a, req, user)

	assert.StatusCodeEquals(t, res, http.StatusOK, "")

	books, err := a.ListLibrary(user.ID)
	if err != nil {
		t.Fatal(errors.Wrap(err, "listing library"))
	}
	assert.Equal(t, len(books), 0, "library count mismatch")
}

func TestRemoveFromLibraryNotMember(t *testing.T) {
	a := app.NewTest()
	server := MustNewServer(t, &a)
	defer server.Close()

	user := testutils.SetupUserData(t, &a, "alice", "alice@example.com", "pass1234")
	book := mustCreateBook(t, &a, "Don Quijote", "Miguel de Cervantes", "Novela")

	req := testutils.MakeReq(server.URL, "DELETE", fmt.Sprintf("/api/v1/users/me/library/%d", book.ID), "")
	res := testutils.HTTPAuthDo(t, &a, req, user)

	assert.StatusCodeEquals(t, res, http.StatusNotFound, "")
}

func TestLibraryGuest(t *testing.T) {
	a := app.NewTest()
	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "GET", "/api/v1/users/me/library", "")
	res := testutils.HTTPDo(t, req)

	assert.StatusCodeEquals(t, res, http.StatusUnauthorized, "")
}
