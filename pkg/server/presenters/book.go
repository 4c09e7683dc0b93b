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

// Package presenters translates store records into transport payloads
package presenters

import (
	"github.com/libris/libris/pkg/server/store"
)

// Book is a result of PresentBook
type Book struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

// BookContent is the readable content of a book
type BookContent struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PresentBook presents a book
func PresentBook(book store.Book) Book {
	return Book{
		ID:       book.ID,
		Title:    book.Title,
		Author:   book.Author,
		Category: book.Category,
		Content:  book.Content,
	}
}

// PresentBooks presents books
func PresentBooks(books []store.Book) []Book {
	ret := []Book{}

	for _, book := range books {
		ret = append(ret, PresentBook(book))
	}

	return ret
}

// PresentBookContent presents the readable content of a book
func PresentBookContent(book store.Book) BookContent {
	return BookContent{
		Title:   book.Title,
		Content: book.Content,
	}
}
