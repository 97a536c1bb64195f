package config

import "strings"

func MergeEngine(base EngineSettings, layers ...EngineConfig) EngineSettings {
	out := base
	for _, layer := range layers {
		out.Root = ResolveAndTrim(out.Root, layer.Root)
		out.Langs = ResolveStrings(out.Langs, layer.Langs)
		out.Excludes = ResolveStrings(out.Excludes, layer.Excludes)
		out.PathRegex = ResolveStrings(out.PathRegex, layer.PathRegex)
		out.ExcludeTypical = ResolveBool(out.ExcludeTypical, layer.ExcludeTypical)
		out.Gitignore = ResolveBool(out.Gitignore, layer.Gitignore)
		out.MaxFileBytes = ResolveInt64(out.MaxFileBytes, layer.MaxFileBytes)
		out.BackupDir = ResolveAndTrim(out.BackupDir, layer.BackupDir)
		out.DryRun = ResolveBool(out.DryRun, layer.DryRun)
	}
	if strings.TrimSpace(out.Root) == "" {
		out.Root = "."
	}
	return out
}

func MergeUI(base UISettings, layers ...UIConfig) UISettings {
	out := base
	for _, layer := range layers {
		out.Report = ResolveAndTrim(out.Report, layer.Report)
		out.Output = ResolveAndTrim(out.Output, layer.Output)
		out.Color = ResolveAndTrim(out.Color, layer.Color)
		out.Pause = ResolveBool(out.Pause, layer.Pause)
		out.Open = ResolveBool(out.Open, layer.Open)
		out.Progress = ResolveBool(out.Progress, layer.Progress)
	}
	if out.Output == "" {
		out.Output = "text"
	}
	if out.Color == "" {
		out.Color = "auto"
	}
	return out
}
