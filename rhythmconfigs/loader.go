package rhythmconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/nibblers/configs"
	"github.com/reusee/nibblers/logs"
	"github.com/reusee/nibblers/modes"
)

//go:embed schema.cue
var schema string

var fileNames = []string{
	"nibblers.cue",
	".nibblers.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, schema)
	}

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range fileNames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, schema)
}

// Schema returns the cue schema config files are validated against.
func Schema() string {
	return schema
}
