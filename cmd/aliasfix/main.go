package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pkg/browser"

	"github.com/phyten/aliasfix/internal/config"
	"github.com/phyten/aliasfix/internal/engine"
	engineopts "github.com/phyten/aliasfix/internal/engine/opts"
	"github.com/phyten/aliasfix/internal/output"
	"github.com/phyten/aliasfix/internal/report"
	"github.com/phyten/aliasfix/internal/termcolor"
	"github.com/phyten/aliasfix/internal/util"
)

// openReport is swapped out in tests.
var openReport = browser.OpenFile

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Environ())
	stop()
	os.Exit(code)
}

// run executes one command and returns the process exit code. environ holds
// KEY=VALUE entries as returned by os.Environ.
func run(ctx context.Context, args []string, stdin *os.File, stdout, stderr io.Writer, environ []string) int {
	cli, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "aliasfix: %v\n\n", err)
		printUsage(stderr)
		return 2
	}
	if cli.showHelp {
		printUsage(stdout)
		return 0
	}

	level := slog.LevelInfo
	if cli.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	env := termcolor.EnvMap(environ)
	getenv := func(key string) string { return env[key] }
	opts, ui, err := resolveSettings(cli, getenv)
	if err != nil {
		fmt.Fprintf(stderr, "aliasfix: %v\n", err)
		return 2
	}

	code := execute(ctx, cli.command, opts, ui, stdout, stderr, environ)
	if ui.Pause {
		if err := util.WaitForKey(stdin, stderr); err != nil {
			slog.Warn("pause failed", "error", err)
		}
	}
	return code
}

// resolveSettings layers defaults, config file, environment and flags.
func resolveSettings(cli *cliConfig, getenv func(string) string) (engine.Options, config.UISettings, error) {
	envCfg, err := config.FromEnv(getenv)
	if err != nil {
		return engine.Options{}, config.UISettings{}, fmt.Errorf("environment: %w", err)
	}

	startDir := config.ResolveString(".", envCfg.Engine.Root, cli.engine.Root)
	explicit := cli.configPath
	if explicit == "" {
		explicit = getenv("ALIASFIX_CONFIG")
	}
	path, where, err := config.Find(startDir, explicit, getenv("XDG_CONFIG_HOME"), getenv("HOME"))
	if err != nil {
		return engine.Options{}, config.UISettings{}, fmt.Errorf("find config: %w", err)
	}
	fileCfg, err := config.Load(path)
	if err != nil {
		return engine.Options{}, config.UISettings{}, fmt.Errorf("load config: %w", err)
	}
	if path != "" {
		slog.Debug("config loaded", "path", path, "where", where)
	}

	opts := engineopts.Defaults(".")
	settings := config.MergeEngine(config.EngineSettingsFromOptions(opts), fileCfg.Engine, envCfg.Engine, cli.engine)
	settings.ApplyToOptions(&opts)
	if err := engineopts.NormalizeAndValidate(&opts); err != nil {
		return engine.Options{}, config.UISettings{}, err
	}

	ui, err := config.NormalizeUI(config.MergeUI(config.DefaultUISettings(), fileCfg.UI, envCfg.UI, cli.ui))
	if err != nil {
		return engine.Options{}, config.UISettings{}, err
	}
	opts.Progress = util.ShouldShowProgress(ui.Progress, false)
	return opts, ui, nil
}

func execute(ctx context.Context, command string, opts engine.Options, ui config.UISettings, stdout, stderr io.Writer, environ []string) int {
	// text output goes to stdout; other formats keep stdout clean and surface
	// skipped files through the logger instead
	var console io.Writer
	errLevel := slog.LevelDebug
	if ui.Output == "text" {
		console = stdout
	} else {
		errLevel = slog.LevelWarn
	}
	colors, err := termcolor.Detect(ui.Color, console, environ)
	if err != nil {
		fmt.Fprintf(stderr, "aliasfix: %v\n", err)
		return 2
	}
	text, err := report.NewText(console, ui.Report, report.TextOptions{
		Color:   colors.Enabled,
		Scheme:  colors.Scheme,
		Profile: colors.Profile,
	})
	if err != nil {
		fmt.Fprintf(stderr, "aliasfix: %v\n", err)
		return 1
	}
	sink := report.Multi(text, report.NewLog(slog.Default(), errLevel))

	slog.Debug("run", "command", command, "root", opts.Root, "report", ui.Report, "output", ui.Output)
	var res *engine.Result
	if command == "fix" {
		res, err = engine.Fix(ctx, opts, sink)
	} else {
		res, err = engine.Check(ctx, opts, sink)
	}
	if closeErr := sink.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(stderr, "aliasfix: %v\n", err)
		return 1
	}

	if err := writeResult(stdout, ui.Output, *res); err != nil {
		fmt.Fprintf(stderr, "aliasfix: write output: %v\n", err)
		return 1
	}
	if res.BackupDir != "" && !res.DryRun && len(res.Changed) > 0 {
		slog.Info("originals saved", "dir", res.BackupDir, "files", len(res.Changed))
	}
	if ui.Open && ui.Report != "" {
		browser.Stdout = stderr
		browser.Stderr = stderr
		if err := openReport(ui.Report); err != nil {
			slog.Warn("could not open report", "path", ui.Report, "error", err)
		}
	}
	if res.ErrorCount > 0 {
		return 1
	}
	return 0
}

func writeResult(w io.Writer, format string, res engine.Result) error {
	switch format {
	case "json":
		return output.WriteJSON(w, res)
	case "ndjson":
		return output.WriteNDJSON(w, res)
	case "csv":
		return output.WriteCSV(w, res)
	case "markdown":
		return output.WriteMarkdownTable(w, res)
	}
	// text already went through the report sink
	return nil
}
