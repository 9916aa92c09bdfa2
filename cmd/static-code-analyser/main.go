package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"github.com/RomanSafe/static-code-analyser/internal/config"
	"github.com/RomanSafe/static-code-analyser/internal/engine"
	"github.com/RomanSafe/static-code-analyser/internal/lint"
	"github.com/RomanSafe/static-code-analyser/internal/log"
	"github.com/RomanSafe/static-code-analyser/internal/output"
	"github.com/RomanSafe/static-code-analyser/internal/rule"
	"github.com/RomanSafe/static-code-analyser/internal/rules"

	// Import all rule packages so their init() functions register rules.
	_ "github.com/RomanSafe/static-code-analyser/internal/rules/argcase"
	_ "github.com/RomanSafe/static-code-analyser/internal/rules/blankruns"
	_ "github.com/RomanSafe/static-code-analyser/internal/rules/classcase"
	_ "github.com/RomanSafe/static-code-analyser/internal/rules/commentspacing"
	_ "github.com/RomanSafe/static-code-analyser/internal/rules/defspacing"
	_ "github.com/RomanSafe/static-code-analyser/internal/rules/funccase"
	_ "github.com/RomanSafe/static-code-analyser/internal/rules/indentwidth"
	_ "github.com/RomanSafe/static-code-analyser/internal/rules/linelength"
	_ "github.com/RomanSafe/static-code-analyser/internal/rules/localvarcase"
	_ "github.com/RomanSafe/static-code-analyser/internal/rules/mutabledefault"
	_ "github.com/RomanSafe/static-code-analyser/internal/rules/straysemicolon"
	_ "github.com/RomanSafe/static-code-analyser/internal/rules/todocomment"
)

const prog = "static-code-analyser"

func main() {
	os.Exit(run())
}

const usageText = `Usage: static-code-analyser <command> [flags] <path>

Commands:
  check     Check Python files for style issues (default when given a path)
  help      Show help for rules and topics
  init      Generate a default .analyser.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'static-code-analyser <command> --help' for more information on a command.
`

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch os.Args[1] {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	case "check":
		return runCheck(os.Args[2:])
	case "help":
		return runHelp(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		// A bare path argument is shorthand for "check".
		return runCheck(os.Args[1:])
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("%s %s\n", prog, version)
}

// runCheck implements the "check" subcommand.
func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	var (
		configPath string
		format     string
		noColor    bool
		quiet      bool
		verbose    bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	fs.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&quiet, "quiet", "q", false, "Suppress diagnostic output")
	fs.BoolVar(&verbose, "verbose", false, "Log processing details to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s check [flags] <path>\n\n"+
			"Check a Python file, or the files of a directory, for style issues.\n\n"+
			"A file path is checked as-is; a directory contributes its immediate\n"+
			"entries matching the configured extensions (default .py), in name\n"+
			"order.\n\n"+
			"Flags:\n", prog)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "%s: expected exactly one path argument, got %d\n\n", prog, fs.NArg())
		fs.Usage()
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", prog, err)
		return 2
	}

	files, err := lint.ResolveFiles(fs.Arg(0), cfg.Extensions, cfg.Ignore)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", prog, err)
		return 2
	}
	if len(files) == 0 {
		return 0
	}

	runner := &engine.Runner{
		Config:    cfg,
		LineRules: rule.Lines(),
		TreeRules: rule.Trees(),
		Log:       &log.Logger{Enabled: verbose, W: os.Stderr},
	}

	result := runner.Run(files)

	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "%s: %v\n", prog, e)
	}

	if len(result.Errors) > 0 && len(result.Diagnostics) == 0 {
		return 2
	}

	if !quiet && len(result.Diagnostics) > 0 {
		var formatter output.Formatter
		switch format {
		case "json":
			formatter = &output.JSONFormatter{}
		default:
			useColor := !noColor && isatty.IsTerminal(os.Stdout.Fd())
			formatter = &output.TextFormatter{Color: useColor}
		}

		if err := formatter.Format(os.Stdout, result.Diagnostics); err != nil {
			fmt.Fprintf(os.Stderr, "%s: error writing output: %v\n", prog, err)
			return 2
		}
	}

	if len(result.Diagnostics) > 0 {
		return 1
	}

	return 0
}

// runInit implements the "init" subcommand: generate .analyser.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s init\n\n"+
			"Generate a default %s config file in the current directory.\n", prog, config.FileName)
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "%s: init takes no arguments\n", prog)
		return 2
	}

	if _, err := os.Stat(config.FileName); err == nil {
		fmt.Fprintf(os.Stderr, "%s: %s already exists\n", prog, config.FileName)
		return 2
	}

	data, err := config.Dump(config.Defaults())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", prog, err)
		return 2
	}
	if err := os.WriteFile(config.FileName, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "%s: writing %s: %v\n", prog, config.FileName, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "%s: created %s\n", prog, config.FileName)
	return 0
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from the current directory.
func loadConfig(configPath string) (*config.Config, error) {
	defaults := config.Defaults()

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		return config.Merge(defaults, loaded), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Merge(defaults, nil), nil
	}

	discovered, err := config.Discover(cwd)
	if err != nil || discovered == "" {
		return config.Merge(defaults, nil), nil
	}

	loaded, err := config.Load(discovered)
	if err != nil {
		return nil, err
	}
	return config.Merge(defaults, loaded), nil
}

const helpUsageText = `Usage: static-code-analyser help <topic>

Topics:
  rule [id|name]   Show rule documentation
`

// runHelp implements the "help" subcommand.
func runHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, helpUsageText)
		return 0
	}

	switch args[0] {
	case "rule":
		return runHelpRule(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "%s: help: unknown topic %q\n", prog, args[0])
		return 2
	}
}

// runHelpRule implements "help rule [id|name]".
func runHelpRule(args []string) int {
	if len(args) == 0 {
		return listAllRules()
	}
	return showRule(args[0])
}

func listAllRules() int {
	infos, err := rules.ListRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", prog, err)
		return 2
	}

	for _, r := range infos {
		fmt.Printf("%-6s %-30s %s\n", r.ID, r.Name, r.Description)
	}
	return 0
}

func showRule(query string) int {
	content, err := rules.LookupRule(query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", prog, err)
		return 2
	}
	fmt.Print(content)
	return 0
}
