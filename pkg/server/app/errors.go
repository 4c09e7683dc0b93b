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
	"github.com/pkg/errors"
)

// Error kinds returned by the facade. The boundary layer maps each kind to a
// transport status with errors.Is.
var (
	// ErrNotFound is an error for a referenced entity that does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict is an error for a mutation that collides with existing state
	ErrConflict = errors.New("conflict")
	// ErrInvalid is an error for input that fails validation
	ErrInvalid = errors.New("invalid input")
	// ErrForbidden is an error for a non-admin attempting an admin-only mutation
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthenticated is an error for a missing, malformed or unknown token
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Specific failures, each carrying its error kind
var (
	// ErrDuplicateEmail is an error for registering an email that is already taken
	ErrDuplicateEmail = errors.Wrap(ErrConflict, "email already registered")
	// ErrDuplicateLibraryBook is an error for adding a book that is already in
	// the personal library
	ErrDuplicateLibraryBook = errors.Wrap(ErrConflict, "book already in library")
	// ErrNameRequired is an error for registering without a name
	ErrNameRequired = errors.Wrap(ErrInvalid, "name is required")
	// ErrEmailRequired is an error for registering without an email
	ErrEmailRequired = errors.Wrap(ErrInvalid, "email is required")
	// ErrPasswordTooShort is an error for a password that does not meet the
	// minimum length
	ErrPasswordTooShort = errors.Wrap(ErrInvalid, "password must be at least 6 characters")
	// ErrInvalidRole is an error for a role outside admin and user
	ErrInvalidRole = errors.Wrap(ErrInvalid, "role must be admin or user")
	// ErrRegistrationDisabled is an error for registering while registration
	// is turned off
	ErrRegistrationDisabled = errors.Wrap(ErrForbidden, "registration is disabled")
	// ErrReviewTextRequired is an error for a review with empty text
	ErrReviewTextRequired = errors.Wrap(ErrInvalid, "review text is required")
	// ErrRatingOutOfRange is an error for a rating outside 1-5
	ErrRatingOutOfRange = errors.Wrap(ErrInvalid, "rating must be between 1 and 5")
)
