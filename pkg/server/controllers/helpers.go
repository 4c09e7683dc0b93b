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
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/libris/libris/pkg/server/app"
	"github.com/libris/libris/pkg/server/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var queryDecoder = schema.NewDecoder()

func init() {
	queryDecoder.IgnoreUnknownKeys(true)
}

type errorResponse struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// respondJSON writes the given payload as a JSON response
func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.ErrorWrap(err, "marshalling payload")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(response); err != nil {
		log.ErrorWrap(err, "writing response")
	}
}

// parseJSON decodes the request body into the given value
func parseJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(app.ErrInvalid, "decoding request body")
	}

	return nil
}

// getIntParam reads a path variable as an integer
func getIntParam(r *http.Request, name string) (int, error) {
	vars := mux.Vars(r)

	val, err := strconv.Atoi(vars[name])
	if err != nil {
		return 0, errors.Wrapf(app.ErrInvalid, "invalid %s", name)
	}

	return val, nil
}

// statusForError maps a facade error kind to an HTTP status code
func statusForError(err error) int {
	switch {
	case errors.Is(err, app.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, app.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, app.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, app.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// handleError logs the error and responds with a status matching its kind
func handleError(w http.ResponseWriter, err error, msg string) {
	statusCode := statusForError(err)

	if statusCode == http.StatusInternalServerError {
		log.ErrorWrap(err, msg)
		respondJSON(w, statusCode, errorResponse{Message: "internal server error"})
		return
	}

	log.WithFields(log.Fields{
		"statusCode": statusCode,
	}).Debug(errors.Wrap(err, msg).Error())

	respondJSON(w, statusCode, errorResponse{Message: err.Error()})
}
