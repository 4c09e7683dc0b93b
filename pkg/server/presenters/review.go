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

package presenters

import (
	"github.com/libris/libris/pkg/server/store"
)

// Review is a result of PresentReview
type Review struct {
	BookID int    `json:"book_id"`
	UserID int    `json:"user_id"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// PresentReview presents a review
func PresentReview(review store.Review) Review {
	return Review{
		BookID: review.BookID,
		UserID: review.UserID,
		Text:   review.Text,
		Rating: review.Rating,
	}
}

// PresentReviews presents reviews
func PresentReviews(reviews []store.Review) []Review {
	ret := []Review{}

	for _, review := range reviews {
		ret = append(ret, PresentReview(review))
	}

	return ret
}
