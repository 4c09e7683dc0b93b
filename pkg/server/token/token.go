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

package token

import (
	"github.com/libris/libris/pkg/clock"
	"github.com/libris/libris/pkg/server/crypt"
	"github.com/libris/libris/pkg/server/store"
	"github.com/pkg/errors"
)

// Create mints a new opaque bearer token for the user of the given id and
// stores the mapping. Tokens do not expire; a user may hold any number of
// concurrent tokens.
func Create(s *store.Store, c clock.Clock, userID int) (store.Token, error) {
	val, err := crypt.GetRandomStr(32)
	if err != nil {
		return store.Token{}, errors.Wrap(err, "generating token value")
	}

	t := store.Token{
		UserID:    userID,
		Value:     val,
		CreatedAt: c.Now(),
	}
	s.InsertToken(t)

	return t, nil
}
