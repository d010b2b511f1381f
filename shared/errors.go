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

package shared

import (
	"github.com/pkg/errors"
)

// Sentinel errors of the trace request core. Services wrap these with
// context via pkg/errors; controllers map them onto HTTP status codes.
// None of them may be silently swallowed.
var (
	ErrNotFound              = errors.New("not found")
	ErrAccessDenied          = errors.New("access denied")
	ErrInvalidReference      = errors.New("invalid reference")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrConflict              = errors.New("conflict")
	ErrCascadeExhausted      = errors.New("cascade exhausted - no lower tier remains")
	ErrAlreadyTerminal       = errors.New("request is already in a terminal state")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrMalformedTree         = errors.New("malformed cascade tree")
)
