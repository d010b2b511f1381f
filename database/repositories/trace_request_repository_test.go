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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/tracetier-dev/tracetier/database/models"
	"github.com/tracetier-dev/tracetier/shared"
)

func TestTraceRequestCreateInvariants(t *testing.T) {
	t.Run("should reject a request pointing at its own org before touching the database", func(t *testing.T) {
		orgID := uuid.New()
		repository := NewTraceRequestRepository(nil)

		err := repository.Create(nil, &models.TraceRequest{
			RequestingOrgID: orgID,
			TargetOrgID:     orgID,
		})

		assert.ErrorIs(t, err, shared.ErrInvalidReference)
	})

	t.Run("should reject a child whose requesting org was not the parent target", func(t *testing.T) {
		parent := models.TraceRequest{
			RequestingOrgID: uuid.New(),
			TargetOrgID:     uuid.New(),
		}
		child := models.TraceRequest{
			RequestingOrgID: uuid.New(),
			TargetOrgID:     uuid.New(),
		}

		err := validateParentLink(parent, &child)

		assert.ErrorIs(t, err, shared.ErrInvalidReference)
	})

	t.Run("should accept a child hanging below the parent target org", func(t *testing.T) {
		parent := models.TraceRequest{
			RequestingOrgID: uuid.New(),
			TargetOrgID:     uuid.New(),
		}
		child := models.TraceRequest{
			RequestingOrgID: parent.TargetOrgID,
			TargetOrgID:     uuid.New(),
		}

		assert.NoError(t, validateParentLink(parent, &child))
	})
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Run("should recognize a wrapped postgres foreign key error", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503"}
		assert.True(t, isForeignKeyViolation(pgErr))
		assert.True(t, isForeignKeyViolation(fmt.Errorf("%w", pgErr)))
	})

	t.Run("should ignore other errors", func(t *testing.T) {
		assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
		assert.False(t, isForeignKeyViolation(errors.New("connection refused")))
		assert.False(t, isForeignKeyViolation(nil))
	})
}
