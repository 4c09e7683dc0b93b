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
	"github.com/libris/libris/pkg/server/event"
)

// eventRecorder captures every published event for assertions
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) Update(e event.Event) error {
	r.events = append(r.events, e)

	return nil
}

func (r *eventRecorder) names() []string {
	ret := []string{}
	for _, e := range r.events {
		ret = append(ret, e.Name)
	}

	return ret
}

// newTestWithRecorder returns a test app with an event recorder subscribed
func newTestWithRecorder() (App, *eventRecorder) {
	a := NewTest()

	rec := &eventRecorder{}
	a.Events.Subscribe(rec)

	return a, rec
}
