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

package permissions

import (
	"github.com/libris/libris/pkg/server/store"
)

// IsAdmin checks if the given user can perform catalog mutations
func IsAdmin(user *store.User) bool {
	if user == nil {
		return false
	}

	return user.Role == store.RoleAdmin
}

// OwnsLibrary checks if the given user can mutate the personal library of the
// user with the given id. Library membership is strictly self-service.
func OwnsLibrary(user *store.User, userID int) bool {
	if user == nil {
		return false
	}

	return user.ID == userID
}
