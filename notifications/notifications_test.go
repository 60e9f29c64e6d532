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

package notifications_test

import (
	"testing"

	"github.com/jetsetilly/tvsurface/logger"
	"github.com/jetsetilly/tvsurface/notifications"
	"github.com/jetsetilly/tvsurface/test"
)

func TestLogMessenger(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	var m notifications.Messenger = notifications.LogMessenger{Tag: "tv"}
	m.ShowTextMessage("Scanline pattern 'MAME'")
	m.ShowGaugeMessage("Scanline intensity", "40%", 40)

	tw := &test.Writer{}
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "tv: Scanline pattern 'MAME'\ntv: Scanline intensity: 40%\n")

	tw.Clear()
	logger.Clear()
	n := notifications.LogMessenger{}
	test.ExpectSuccess(t, n.Notify(notifications.NotifySnapshot))
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "message: NotifySnapshot\n")
}
