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

// NewReviews creates a new Reviews controller.
func NewReviews(app *app.App) *Reviews {
	return &Reviews{
		app: app,
	}
}

// Reviews is a review controller.
type Reviews struct {
	app *app.App
}

// Index lists the reviews of a book in the order they were added.
func (re *Reviews) Index(w http.ResponseWriter, r *http.Request) {
	bookID, err := getIntParam(r, "bookID")
	if err != nil {
		handleError(w, err, "listing reviews")
		return
	}

	reviews := re.app.ListReviews(bookID)

	respondJSON(w, http.StatusOK, presenters.PresentReviews(reviews))
}

type createReviewPayload struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// Create adds a review to a book on behalf of the authenticated user.
func (re *Reviews) Create(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	bookID, err := getIntParam(r, "bookID")
	if err != nil {
		handleError(w, err, "adding review")
		return
	}

	var payload createReviewPayload
	if err := parseJSON(r, &payload); err != nil {
		handleError(w, err, "adding review")
		return
	}

	review, err := re.app.AddReview(bookID, user.ID, payload.Text, payload.Rating)
	if err != nil {
		handleError(w, err, "adding review")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentReview(review))
}
