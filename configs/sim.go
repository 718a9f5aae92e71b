package configs

import (
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/cmds"
)

type Module struct {
	dscope.Module
}

var configPaths = cmds.Collect[string]("-config")

// SimConfig holds runner defaults. Command line arguments override these.
type SimConfig struct {
	// MaxSteps bounds a run; 0 means no bound.
	MaxSteps int `json:"maxSteps"`
	// Tap is the path of a starlark step tap script.
	Tap string `json:"tap"`
}

const simSchema = `
sim?: {
	maxSteps?: int & >=0
	tap?: string
}
`

func (Module) Loader() Loader {
	paths := *configPaths
	if len(paths) == 0 {
		if home, err := os.UserHomeDir(); err == nil {
			defaultPath := filepath.Join(home, ".config", "turing", "config.cue")
			if _, err := os.Stat(defaultPath); err == nil {
				paths = append(paths, defaultPath)
			}
		}
	}
	return NewLoader(paths, simSchema)
}

func (Module) SimConfig(
	loader Loader,
) SimConfig {
	return First[SimConfig](loader, "sim")
}
