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

import (
	"go.uber.org/fx"

	"github.com/tracetier-dev/tracetier/shared"
)

var AccessControlModule = fx.Options(
	fx.Provide(func(db shared.DB, broker shared.PubSubBroker) (shared.RBACProvider, error) {
		return NewCasbinRBACProvider(db, broker)
	}),
	fx.Provide(fx.Annotate(NewRequestGuard, fx.As(new(shared.RequestGuard)))),
)
