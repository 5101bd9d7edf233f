package imeconfigs

import (
	"slices"

	"github.com/reusee/imefix/blocks"
	"github.com/reusee/imefix/configs"
	"github.com/reusee/imefix/roles"
)

func firstInt(loader configs.Loader, key string, def int) int {
	if v := configs.First[*int](loader, key); v != nil {
		return *v
	}
	return def
}

func (Module) Resolver(
	loader configs.Loader,
) roles.Resolver {
	return roles.Resolver{
		Lookbehind: firstInt(loader, "lookbehind", roles.DefaultLookbehind),
		Lookahead:  firstInt(loader, "lookahead", roles.DefaultLookahead),
	}
}

// RetreatMethods is the union of retreat_methods across all config files,
// or the built-in list when none is configured.
type RetreatMethods []string

func (Module) RetreatMethods(
	loader configs.Loader,
) (ret RetreatMethods) {
	for methods := range configs.All[[]string](loader, "retreat_methods") {
		for _, method := range methods {
			if !slices.Contains(ret, method) {
				ret = append(ret, method)
			}
		}
	}
	if len(ret) == 0 {
		ret = slices.Clone(blocks.DefaultRetreatMethods)
	}
	return
}

func (Module) Locator(
	loader configs.Loader,
	methods RetreatMethods,
) blocks.Locator {
	return blocks.Locator{
		RetreatMethods: methods,
		Before:         firstInt(loader, "neighbor_before", blocks.DefaultNeighborBefore),
		After:          firstInt(loader, "neighbor_after", blocks.DefaultNeighborAfter),
	}
}

// BackupLayout is the time layout used in backup file names.
type BackupLayout string

const DefaultBackupLayout BackupLayout = "20060102_150405"

func (Module) BackupLayout(
	loader configs.Loader,
) BackupLayout {
	if layout := configs.First[string](loader, "backup_layout"); layout != "" {
		return BackupLayout(layout)
	}
	return DefaultBackupLayout
}
