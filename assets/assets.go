// Package assets embeds game data files into the binary.
package assets

import "embed"

// Missions holds the mission definition files.
//
//go:embed missions
var Missions embed.FS
