package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/phyten/aliasfix/internal/config"
	engineopts "github.com/phyten/aliasfix/internal/engine/opts"
)

// stringList collects repeated (and comma separated) flag values.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, engineopts.SplitMulti([]string{v})...)
	return nil
}

// cliConfig は 1 回の実行に必要なフラグの解析結果です。
// 未指定のフラグは nil のまま残り、設定ファイルや環境変数の値が使われます。
type cliConfig struct {
	command    string
	showHelp   bool
	verbose    bool
	configPath string
	engine     config.EngineConfig
	ui         config.UIConfig
}

var errUsage = errors.New("usage")

// splitCommand pulls the optional sub-command off the front of args.
func splitCommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "check", args
	}
	switch args[0] {
	case "check", "fix", "help":
		return args[0], args[1:]
	}
	return "check", args
}

func parseArgs(args []string) (*cliConfig, error) {
	command, rest := splitCommand(args)
	cfg := &cliConfig{command: command}
	if command == "help" {
		cfg.showHelp = true
		return cfg, nil
	}

	fs := flag.NewFlagSet("aliasfix "+command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	var (
		root           = fs.String("root", ".", "directory to scan")
		langs          stringList
		excludes       stringList
		pathRegex      stringList
		excludeTypical = fs.Bool("exclude-typical", true, "skip bin/obj/.git and similar directories")
		gitignore      = fs.Bool("gitignore", true, "honour the root .gitignore")
		maxFileBytes   = fs.String("max-file-bytes", "0", "skip files larger than this (0 = no limit, K/M/G suffixes)")
		backupDir      = fs.String("backup-dir", "", "where fix copies originals")
		dryRun         = fs.Bool("dry-run", false, "fix: report changes without writing")
		report         = fs.String("report", "", "report file (empty string disables it)")
		output         = fs.String("output", "text", "text|json|ndjson|csv|markdown")
		color          = fs.String("color", "auto", "auto|always|never")
		pause          = fs.Bool("pause", false, "wait for a key before exiting")
		open           = fs.Bool("open", false, "open the report file when done")
		progress       = fs.Bool("progress", false, "force the progress line even when piped")
	)
	fs.Var(&langs, "langs", "languages to scan (repeatable, comma separated)")
	fs.Var(&excludes, "exclude", "glob to exclude (repeatable, comma separated)")
	fs.Var(&pathRegex, "path-regex", "only scan paths matching any regex (repeatable)")
	fs.BoolVar(&cfg.verbose, "verbose", false, "debug logging on stderr")
	fs.BoolVar(&cfg.verbose, "v", false, "shorthand for -verbose")
	fs.StringVar(&cfg.configPath, "config", "", "config file (overrides ALIASFIX_CONFIG)")
	fs.StringVar(output, "o", "text", "shorthand for -output")

	if err := fs.Parse(rest); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cfg.showHelp = true
			return cfg, nil
		}
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}

	var visitErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "root":
			cfg.engine.Root = root
		case "langs":
			cfg.engine.Langs = listPtr(langs)
		case "exclude":
			cfg.engine.Excludes = listPtr(excludes)
		case "path-regex":
			cfg.engine.PathRegex = listPtr(pathRegex)
		case "exclude-typical":
			cfg.engine.ExcludeTypical = excludeTypical
		case "gitignore":
			cfg.engine.Gitignore = gitignore
		case "max-file-bytes":
			n, err := engineopts.ParseByteSize(*maxFileBytes, "-max-file-bytes")
			if err != nil {
				visitErr = err
				return
			}
			cfg.engine.MaxFileBytes = &n
		case "backup-dir":
			cfg.engine.BackupDir = backupDir
		case "dry-run":
			cfg.engine.DryRun = dryRun
		case "report":
			cfg.ui.Report = report
		case "output", "o":
			cfg.ui.Output = output
		case "color":
			cfg.ui.Color = color
		case "pause":
			cfg.ui.Pause = pause
		case "open":
			cfg.ui.Open = open
		case "progress":
			cfg.ui.Progress = progress
		}
	})
	if visitErr != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, visitErr)
	}
	return cfg, nil
}

func listPtr(values []string) *[]string {
	out := append([]string{}, values...)
	return &out
}

const usageText = `Usage:
  aliasfix [check] [flags]   report C# type aliases (int, string, ...) in code
  aliasfix fix [flags]       rewrite them to framework names (Int32, String, ...)
  aliasfix help              show this help

Flags:
  -root DIR              directory to scan (default ".")
  -langs LIST            languages to scan (default csharp)
  -exclude GLOB          exclude paths matching GLOB (repeatable)
  -path-regex RE         only scan paths matching RE (repeatable)
  -exclude-typical       skip bin, obj, .git, .vs and similar (default true)
  -gitignore             honour the root .gitignore (default true)
  -max-file-bytes N      skip files larger than N, e.g. 512K (default 0 = no limit)
  -backup-dir DIR        fix: originals are copied here (default ./AliasRemoverBackups)
  -dry-run               fix: report changes without writing anything
  -report FILE           report file (default ./AliasRemoverReport.txt, "" disables)
  -o, -output FORMAT     text|json|ndjson|csv|markdown (default text)
  -color MODE            auto|always|never (default auto)
  -progress              show progress even when output is piped
  -pause                 wait for a key before exiting
  -open                  open the report file when done
  -config FILE           config file (default: ALIASFIX_CONFIG, .aliasfix.*, XDG, home)
  -v, -verbose           debug logging on stderr

Every flag can also be set in the config file or through ALIASFIX_<NAME>
environment variables (for example ALIASFIX_DRY_RUN=1).
`

func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
