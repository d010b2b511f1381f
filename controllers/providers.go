// Copyright 2025 tracetier UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package controllers

import (
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		NewOrgController,
		NewTraceRequestController,
	),
)
