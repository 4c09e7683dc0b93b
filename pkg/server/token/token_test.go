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
	"testing"

	"github.com/libris/libris/pkg/assert"
	"github.com/libris/libris/pkg/clock"
	"github.com/libris/libris/pkg/server/store"
	"github.com/pkg/errors"
)

func TestCreate(t *testing.T) {
	s := store.New()
	c := clock.NewMock()

	tok, err := Create(s, c, 3)
	if err != nil {
		t.Fatal(errors.Wrap(err, "creating token"))
	}

	assert.Equal(t, tok.UserID, 3, "token user id mismatch")
	assert.NotEqual(t, tok.Value, "", "token value should be set")
	assert.Equal(t, tok.CreatedAt, c.Now(), "token timestamp mismatch")

	stored, ok := s.GetToken(tok.Value)
	assert.Equal(t, ok, true, "token should be stored")
	assert.Equal(t, stored.UserID, 3, "stored token user id mismatch")
}

func TestCreateConcurrentTokens(t *testing.T) {
	s := store.New()
	c := clock.NewMock()

	t1, err := Create(s, c, 3)
	if err != nil {
		t.Fatal(errors.Wrap(err, "creating first token"))
	}
	t2, err := Create(s, c, 3)
	if err != nil {
		t.Fatal(errors.Wrap(err, "creating second token"))
	}

	assert.NotEqual(t, t1.Value, t2.Value, "tokens should be distinct")

	_, ok1 := s.GetToken(t1.Value)
	_, ok2 := s.GetToken(t2.Value)
	assert.Equal(t, ok1 && ok2, true, "both tokens should resolve")
}
