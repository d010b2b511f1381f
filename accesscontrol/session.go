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
package accesscontrol

import "github.com/tracetier-dev/tracetier/shared"

type session struct {
	userID string
	scopes []string
}

var _ shared.AuthSession = session{}

// NoSession marks an unauthenticated request. The request may still pass
// if the route does not require a membership.
var NoSession = session{}

func NewSession(userID string, scopes []string) shared.AuthSession {
	return session{
		userID: userID,
		scopes: scopes,
	}
}

func (s session) GetUserID() string {
	return s.userID
}

func (s session) GetScopes() []string {
	return s.scopes
}
