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
	"github.com/libris/libris/pkg/server/crypt"
	"github.com/libris/libris/pkg/server/log"
	"github.com/libris/libris/pkg/server/store"
	"github.com/pkg/errors"
)

const (
	// AdminEmail is the well-known email of the bootstrap admin account
	AdminEmail = "admin@biblioteca.com"
	// AdminPassword is the well-known password of the bootstrap admin account
	AdminPassword = "admin123"
)

var seedBooks = []store.Book{
	{Title: "Cien Años de Soledad", Author: "Gabriel García Márquez", Category: "Novela", Content: "Contenido..."},
	{Title: "El libro troll", Author: "el rubius", Category: "Historico", Content: "Contenido..."},
	{Title: "1984", Author: "George Orwell", Category: "Distopía", Content: "Contenido..."},
	{Title: "Don Quijote de la Mancha", Author: "Miguel de Cervantes", Category: "Clásico", Content: "Contenido..."},
	{Title: "La Odisea", Author: "Homero", Category: "Épica", Content: "Contenido..."},
}

// Seed loads the initial catalog and the bootstrap admin account into the
// store. Seeding inserts directly, without publishing events. It is a no-op
// if the admin account already exists.
func (a *App) Seed() error {
	if _, ok := a.Store.FindUserByEmail(AdminEmail); ok {
		return nil
	}

	now := a.Clock.Now()

	for _, b := range seedBooks {
		b.ID = a.Store.NextID(store.KindBook)
		b.CreatedAt = now
		b.UpdatedAt = now
		a.Store.InsertBook(b)
	}

	admin := store.User{
		ID:           a.Store.NextID(store.KindUser),
		Name:         "Administrador",
		Email:        AdminEmail,
		PasswordHash: crypt.HashPassword(AdminPassword),
		Role:         store.RoleAdmin,
		Library:      []int{},
		CreatedAt:    now,
	}
	if err := a.Store.InsertUser(admin); err != nil {
		return errors.Wrap(err, "inserting bootstrap admin")
	}

	log.WithFields(log.Fields{
		"email": admin.Email,
	}).Info("bootstrap admin account created")

	return nil
}
