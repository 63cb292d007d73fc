// Package build holds build-time information.
package build

// BinName is the installed binary name, stamped into lockfile headers as
// part of the regeneration command.
const BinName = "fixgen"

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"
