/*
	Copyright 2023 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package pickerstate

import "fmt"

// Event is a notification a picker delivers to its listener.
type Event int

// Events.
const (
	// Open is delivered when a hidden picker is shown.
	Open Event = iota
	// Close is delivered when a visible picker is hidden.
	Close
	// Save is delivered when the current color is committed.
	Save
	// Cancel is delivered when the current color is reverted.
	Cancel
	// Changed is delivered when the current color changes.
	Changed
)

var eventNames = []string{"open", "close", "save", "cancel", "changed"}

func (e Event) String() string {
	if int(e) < 0 || int(e) >= len(eventNames) {
		return fmt.Sprintf("Event(%d)", int(e))
	}
	return eventNames[e]
}

// Listener receives a picker's events.  It is invoked synchronously, at the
// state transition, on the goroutine that caused it.
type Listener func(Event)
