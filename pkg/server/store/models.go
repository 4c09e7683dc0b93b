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
	"time"
)

const (
	// RoleAdmin is the role for administrator users
	RoleAdmin = "admin"
	// RoleUser is the role for regular users
	RoleUser = "user"
)

// Kind identifies an entity kind for id generation
type Kind string

const (
	// KindBook is the id space for books
	KindBook Kind = "book"
	// KindUser is the id space for users
	KindUser Kind = "user"
)

// Book is a record for a book in the global catalog
type Book struct {
	ID        int
	Title     string
	Author    string
	Category  string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// User is a record for a registered user
type User struct {
	ID           int
	Name         string
	Email        string
	PasswordHash string
	Role         string
	// Library holds the ids of the books in the user's personal library
	Library   []int
	CreatedAt time.Time
}

// Review is a record for a review on a book. Reviews are kept in append order
// per book.
type Review struct {
	BookID    int
	UserID    int
	Text      string
	Rating    int
	CreatedAt time.Time
}

// Token is a record for an opaque bearer credential
type Token struct {
	Value     string
	UserID    int
	CreatedAt time.Time
}
