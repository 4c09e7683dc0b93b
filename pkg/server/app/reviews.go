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

	"github.com/libris/libris/pkg/server/store"
	"github.com/pkg/errors"
)

// AddReview appends a review to the given book's review sequence. A user may
// review the same book any number of times.
func (a *App) AddReview(bookID, userID int, text string, rating int) (store.Review, error) {
	if text == "" {
		return store.Review{}, ErrReviewTextRequired
	}
	if rating < 1 || rating > 5 {
		return store.Review{}, ErrRatingOutOfRange
	}

	review := store.Review{
		BookID:    bookID,
		UserID:    userID,
		Text:      text,
		Rating:    rating,
		CreatedAt: a.Clock.Now(),
	}

	if err := a.Store.AppendReview(review); err != nil {
		if stderrors.Is(err, store.ErrBookNotFound) {
			return store.Review{}, errors.Wrapf(ErrNotFound, "book %d", bookID)
		}
		return store.Review{}, errors.Wrap(err, "appending review")
	}

	a.Events.Notify(EventReviewAdded, map[string]interface{}{
		"book_id": review.BookID,
		"user_id": review.UserID,
		"text":    review.Text,
		"rating":  review.Rating,
	})

	return review, nil
}

// ListReviews returns the reviews for the given book in append order. A book
// with no reviews yields an empty list, whether or not the book exists.
func (a *App) ListReviews(bookID int) []store.Review {
	return a.Store.ListReviews(bookID)
}
