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

package event

import (
	"github.com/libris/libris/pkg/server/log"
)

// LogObserver writes every event to the structured log
type LogObserver struct{}

// Update logs the event
func (o LogObserver) Update(e Event) error {
	log.WithFields(log.Fields{
		"event":    e.Name,
		"event_id": e.ID,
		"data":     e.Data,
	}).Info("domain event")

	return nil
}

// EmailObserver records events that would trigger an email notification.
// Delivery is out of scope; the notification is a logged side effect.
type EmailObserver struct{}

// Update logs the notification
func (o EmailObserver) Update(e Event) error {
	log.WithFields(log.Fields{
		"event":    e.Name,
		"event_id": e.ID,
		"data":     e.Data,
	}).Info("email notification sent")

	return nil
}
