// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fixgen/internal/adapters/buildgraph"
	_ "go.trai.ch/fixgen/internal/adapters/cas"
	_ "go.trai.ch/fixgen/internal/adapters/config"
	_ "go.trai.ch/fixgen/internal/adapters/console"
	_ "go.trai.ch/fixgen/internal/adapters/fs"
	_ "go.trai.ch/fixgen/internal/adapters/logger"
	_ "go.trai.ch/fixgen/internal/adapters/resolver"
	_ "go.trai.ch/fixgen/internal/adapters/sandbox"
	_ "go.trai.ch/fixgen/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/fixgen/internal/app"
	_ "go.trai.ch/fixgen/internal/engine/fixtures"
)
