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

package crypt

import (
	"testing"

	"github.com/libris/libris/pkg/assert"
	"github.com/pkg/errors"
)

func TestHashPassword(t *testing.T) {
	h1 := HashPassword("admin123")
	h2 := HashPassword("admin123")
	h3 := HashPassword("Admin123")

	assert.Equal(t, h1, h2, "digest should be deterministic")
	assert.NotEqual(t, h1, h3, "digest should be case-sensitive")
	assert.Equal(t, len(h1), 64, "digest should be a hex-encoded sha256")
}

func TestVerifyPassword(t *testing.T) {
	hash := HashPassword("pass1234")

	assert.Equal(t, VerifyPassword(hash, "pass1234"), true, "matching password should verify")
	assert.Equal(t, VerifyPassword(hash, "pass12345"), false, "wrong password should not verify")
	assert.Equal(t, VerifyPassword(hash, "PASS1234"), false, "verification should be case-sensitive")
}

func TestGetRandomStr(t *testing.T) {
	seen := map[string]bool{}

	for i := 0; i < 50; i++ {
		val, err := GetRandomStr(32)
		if err != nil {
			t.Fatal(errors.Wrap(err, "generating random string"))
		}

		if len(val) < 32 {
			t.Errorf("value too short to be unguessable: %d chars", len(val))
		}
		if seen[val] {
			t.Errorf("value %s was generated twice", val)
		}
		seen[val] = true
	}
}
