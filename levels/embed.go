// Package levels embeds the demo's level specs, level scripts and player
// tuning.
package levels

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed *.yaml *.tengo
var embedded embed.FS

// Order lists the platform levels in play order.
var Order = []string{"level1.yaml", "level2.yaml"}

// PlayerConfig is the default player tuning file.
const PlayerConfig = "player.yaml"

// FS returns the level files, read from dir when it is set and from the
// embedded copies otherwise.
func FS(dir string) fs.FS {
	if dir == "" {
		return embedded
	}
	return os.DirFS(dir)
}
