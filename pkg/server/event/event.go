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

// Package event provides a synchronous publish/subscribe channel for domain
// events. It is a diagnostic side-channel: observer failures are logged and
// never surface to the publisher.
package event

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/libris/libris/pkg/clock"
	"github.com/libris/libris/pkg/server/log"
)

// Event is a domain event delivered to observers
type Event struct {
	ID        string
	Name      string
	Data      map[string]interface{}
	Timestamp time.Time
}

// Observer handles published events. Returning an error marks the delivery as
// failed for this observer only.
type Observer interface {
	Update(e Event) error
}

// Subject is a registry of observers. Observers are notified synchronously in
// subscription order.
type Subject struct {
	mu        sync.RWMutex
	clock     clock.Clock
	observers []Observer
}

// NewSubject returns a subject with no observers
func NewSubject(c clock.Clock) *Subject {
	return &Subject{clock: c}
}

// Subscribe registers an observer
func (s *Subject) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers = append(s.observers, o)
}

// Notify delivers the event with the given name and payload to every
// registered observer. Each observer receives its own copy of the payload. A
// failing or panicking observer is logged and does not block the remaining
// observers; Notify always returns after all observers have been attempted.
func (s *Subject) Notify(name string, data map[string]interface{}) {
	s.mu.RLock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	e := Event{
		ID:        uuid.NewString(),
		Name:      name,
		Timestamp: s.clock.Now(),
	}

	for _, o := range observers {
		e.Data = cloneData(data)
		notifyOne(o, e)
	}
}

func notifyOne(o Observer, e Event) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{
				"event":    e.Name,
				"event_id": e.ID,
			}).Error(fmt.Sprintf("observer panicked: %v", r))
		}
	}()

	if err := o.Update(e); err != nil {
		log.WithFields(log.Fields{
			"event":    e.Name,
			"event_id": e.ID,
			"err":      err,
		}).Error("notifying observer")
	}
}

func cloneData(data map[string]interface{}) map[string]interface{} {
	ret := make(map[string]interface{}, len(data))
	for k, v := range data {
		ret[k] = v
	}

	return ret
}
