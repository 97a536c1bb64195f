package config

import (
	"errors"
	"strings"

	engineopts "github.com/phyten/aliasfix/internal/engine/opts"
)

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "ALIASFIX_"

func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		list := engineopts.SplitMulti([]string{raw})
		if len(list) == 0 {
			empty := make([]string, 0)
			*target = &empty
			return
		}
		copyVals := make([]string, len(list))
		copy(copyVals, list)
		*target = &copyVals
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setSize := func(target **int64, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseByteSize(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}

	setString(&cfg.Engine.Root, EnvPrefix+"ROOT")
	setList(&cfg.Engine.Langs, EnvPrefix+"LANGS")
	setList(&cfg.Engine.Excludes, EnvPrefix+"EXCLUDE")
	setList(&cfg.Engine.PathRegex, EnvPrefix+"PATH_REGEX")
	setBool(&cfg.Engine.ExcludeTypical, EnvPrefix+"EXCLUDE_TYPICAL")
	setBool(&cfg.Engine.Gitignore, EnvPrefix+"GITIGNORE")
	setSize(&cfg.Engine.MaxFileBytes, EnvPrefix+"MAX_FILE_BYTES")
	setString(&cfg.Engine.BackupDir, EnvPrefix+"BACKUP_DIR")
	setBool(&cfg.Engine.DryRun, EnvPrefix+"DRY_RUN")

	setString(&cfg.UI.Report, EnvPrefix+"REPORT")
	setString(&cfg.UI.Output, EnvPrefix+"OUTPUT")
	setString(&cfg.UI.Color, EnvPrefix+"COLOR")
	setBool(&cfg.UI.Pause, EnvPrefix+"PAUSE")
	setBool(&cfg.UI.Open, EnvPrefix+"OPEN")
	setBool(&cfg.UI.Progress, EnvPrefix+"PROGRESS")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
