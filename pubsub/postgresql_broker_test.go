// Copyright (C) 2025 tracetier GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pubsub

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tracetier-dev/tracetier/shared"
)

func TestPostgreSQLMessageWireFormat(t *testing.T) {
	t.Run("should survive the notify payload round trip", func(t *testing.T) {
		sent := PostgreSQLMessage{
			ID:        "msg-1",
			Channel:   shared.PolicyChange,
			Payload:   map[string]any{"domain": "org-1"},
			Timestamp: time.Now().UTC().Truncate(time.Second),
			SenderID:  "instance-a",
		}

		data, err := json.Marshal(sent)
		assert.NoError(t, err)

		var received PostgreSQLMessage
		assert.NoError(t, json.Unmarshal(data, &received))

		assert.Equal(t, sent.Channel, received.GetChannel())
		assert.Equal(t, sent.Payload, received.GetPayload())
		assert.Equal(t, "instance-a", received.SenderID)
	})

	t.Run("should keep the topic under its wire name", func(t *testing.T) {
		// other instances decode on the "topic" key, renaming it would
		// silently break cross instance policy sync
		data, err := json.Marshal(PostgreSQLMessage{Channel: shared.PolicyChange})
		assert.NoError(t, err)
		assert.Contains(t, string(data), `"topic"`)
	})
}

func TestNewPostgreSQLBroker(t *testing.T) {
	t.Run("should give every instance its own sender identity", func(t *testing.T) {
		first, err := NewPostgreSQLBroker(nil)
		assert.NoError(t, err)
		second, err := NewPostgreSQLBroker(nil)
		assert.NoError(t, err)

		assert.NotEmpty(t, first.id)
		assert.NotEqual(t, first.id, second.id)
	})

	t.Run("should report healthy without any listening connections", func(t *testing.T) {
		broker, err := NewPostgreSQLBroker(nil)
		assert.NoError(t, err)
		assert.True(t, broker.IsHealthy())
	})
}
