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

// User is a result of PresentUser. The password hash and the library
// membership are not exposed.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the result of a successful sign-in
type Session struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// PresentUser presents a user
func PresentUser(user store.User) User {
	return User{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

// PresentSession presents a token issued for the given user
func PresentSession(tok store.Token, user store.User) Session {
	return Session{
		Token: tok.Value,
		Role:  user.Role,
	}
}
