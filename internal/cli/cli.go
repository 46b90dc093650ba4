package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/fragsplice/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
// Reported is set when the message was already written to the parser's
// output, so callers should not print it again.
type ExitError struct {
	Code     int
	Message  string
	Reported bool
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("fragsplice", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
fragsplice - expands template fragments into marked regions of source files.

Usage:
  fragsplice [options] [TARGET_FILE ...]

Arguments:
  TARGET_FILE
    A file containing marker comments, rewritten in place. Targets given
    here replace the targets listed in the config file.

Markers:
  // __GENERATED__ template name1,name2 KEY=value ...
  ... replaced region ...
  // __GENERATED__ template

Options:
`)
		flagSet.PrintDefaults()
	}

	var templates stringList
	configFlag := flagSet.String("config", "", "Path to an .hcl, .yaml or .yml config file.")
	cFlag := flagSet.String("c", "", "Path to a config file (shorthand).")
	flagSet.Var(&templates, "templates", "Directory searched recursively for fragments. Repeatable. Defaults to '.'.")
	suffixFlag := flagSet.String("suffix", "", "Fragment file suffix (default \""+app.DefaultSuffix+"\").")
	markerFlag := flagSet.String("marker", "", "Marker line prefix (default \"// __GENERATED__ template\").")
	regionBeginFlag := flagSet.String("region-begin", "", "Line inserted before generated content (default \"#pragma region generated\").")
	regionEndFlag := flagSet.String("region-end", "", "Line inserted after generated content (default \"#pragma endregion\").")
	allowDupFlag := flagSet.Bool("allow-duplicates", false, "Resolve an ambiguous fragment name to the first match instead of failing.")
	checkFlag := flagSet.Bool("check", false, "Report out-of-date targets without writing them.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error(), Reported: true}
	}
	slog.Debug("Arguments parsed successfully.")

	if *configFlag != "" && *cFlag != "" {
		return nil, false, &ExitError{Code: 2, Message: "conflicting flags: use only one of -config and -c"}
	}
	configPath := *configFlag
	if configPath == "" {
		configPath = *cFlag
	}
	targets := flagSet.Args()

	if configPath == "" && len(targets) == 0 {
		slog.Debug("No targets or config provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	duplicates := ""
	if *allowDupFlag {
		duplicates = "first"
	}

	config, err := app.NewConfig(app.Config{
		ConfigPath:    configPath,
		Targets:       targets,
		TemplateRoots: templates,
		Suffix:        *suffixFlag,
		Marker:        *markerFlag,
		RegionBegin:   *regionBeginFlag,
		RegionEnd:     *regionEndFlag,
		Duplicates:    duplicates,
		Check:         *checkFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
