// Package gamedata provides the embedded game data files and utilities for
// loading them: classes, skills, items, enemies, scenes, and NPCs.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
