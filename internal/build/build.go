// Package build holds build-time information about winebuild itself.
package build

// Version is the application version. It defaults to "dev" and is overwritten
// by linker flags in release builds.
var Version = "dev"
