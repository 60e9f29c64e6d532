// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package notifications

import (
	"fmt"

	"github.com/jetsetilly/tvsurface/logger"
)

// Notice describes events that somehow change the presentation of the
// TV surface. These notifications can be used to present additional
// information to the user
type Notice string

// List of defined notifications.
const (
	// a snapshot has been requested and will be taken at the end of the next
	// render
	NotifySnapshot Notice = "NotifySnapshot"

	// the active filter has changed
	NotifyFilterChanged Notice = "NotifyFilterChanged"

	// the scanline mask surface has been rebuilt
	NotifyMaskRebuilt Notice = "NotifyMaskRebuilt"
)

// Notify is implemented by types that want to be told about events.
type Notify interface {
	Notify(notice Notice) error
}

// Messenger is implemented by types that can show messages to the user. Text
// messages are short status strings. Gauge messages show the label and value
// of an adjustable along with the value as a percentage (0 to 100).
type Messenger interface {
	ShowTextMessage(msg string)
	ShowGaugeMessage(label string, value string, gauge int)
}

// LogMessenger is an implementation of Messenger that sends messages to the
// central logger.
type LogMessenger struct {
	// the tag used for all log entries. defaults to "message"
	Tag string
}

func (m LogMessenger) tag() string {
	if m.Tag == "" {
		return "message"
	}
	return m.Tag
}

// ShowTextMessage implements the Messenger interface.
func (m LogMessenger) ShowTextMessage(msg string) {
	logger.Log(logger.Allow, m.tag(), msg)
}

// ShowGaugeMessage implements the Messenger interface.
func (m LogMessenger) ShowGaugeMessage(label string, value string, gauge int) {
	logger.Log(logger.Allow, m.tag(), fmt.Sprintf("%s: %s", label, value))
}

// Notify implements the Notify interface.
func (m LogMessenger) Notify(notice Notice) error {
	logger.Log(logger.Allow, m.tag(), string(notice))
	return nil
}
