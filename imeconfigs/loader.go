package imeconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/imefix/cmds"
	"github.com/reusee/imefix/configs"
	"github.com/reusee/imefix/logs"
)

//go:embed schema.cue
var schema string

var configFlag = cmds.Collect[string]("-config")

// ConfigPaths lists config files in lookup order: files named by -config,
// then the working directory, the user config dir and /etc.
type ConfigPaths []string

func (Module) ConfigPaths() ConfigPaths {
	paths := append(ConfigPaths(nil), *configFlag...)

	filenames := []string{
		"imefix.cue",
		".imefix.cue",
	}

	var dirs []string
	// working directory
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	// user config dir
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	// system wide dir
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return paths
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	paths ConfigPaths,
) configs.Loader {
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", []string(paths),
		)
	}
	return configs.NewLoader(paths, schema)
}
