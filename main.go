package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/boolean-maybe/tagq/config"
	"github.com/boolean-maybe/tagq/expr"
	"github.com/boolean-maybe/tagq/filterset"
	"github.com/boolean-maybe/tagq/format"
	"github.com/boolean-maybe/tagq/internal/bootstrap"
)

const usage = `usage: tagq [flags] <expression>
       tagq [flags] -            read the expression from stdin
       tagq [flags] --file PATH  compile a named filter file
       tagq [flags]              compile the default filters.yaml, if one exists

flags:
`

// main parses one filter expression (or a filter file) and prints its tree.
func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("tagq", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		_, _ = fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}

	config.RegisterFlags(flags)
	filePath := flags.StringP("file", "f", "", "Compile every filter in a filters.yaml file")
	showTokens := flags.Bool("tokens", false, "Print the token stream instead of the tree")
	showLabels := flags.Bool("labels", false, "Print the labels referenced by the expression")
	showVersion := flags.BoolP("version", "v", false, "Print version information")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		_, _ = fmt.Fprintf(stdout, "tagq version %s\ncommit: %s\nbuilt: %s\n",
			config.Version, config.GitCommit, config.BuildDate)
		return 0
	}

	result, err := bootstrap.Bootstrap(flags)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	path := ""
	if *filePath != "" {
		if flags.NArg() > 0 {
			_, _ = fmt.Fprintln(stderr, "error: --file does not take an expression argument")
			return 2
		}
		if path = filterset.Find(*filePath); path == "" {
			_, _ = fmt.Fprintf(stderr, "error: filter file %q not found\n", *filePath)
			return 1
		}
	} else if flags.NArg() == 0 {
		// no expression: fall back to the default filters.yaml
		path = config.FindFilterFile()
	}

	if path != "" {
		if *showTokens || *showLabels {
			_, _ = fmt.Fprintln(stderr, "error: --tokens and --labels apply to a single expression, not a filter file")
			return 2
		}
		return runFile(path, result, stdout, stderr)
	}

	input, err := readExpression(flags.Args(), stdin)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		flags.Usage()
		return 2
	}

	if *showTokens {
		if err := format.Tokens(stdout, expr.Tokenize(input)); err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", err)
			return 1
		}
		return 0
	}

	tree, err := expr.ParseString(input, result.ParseOptions...)
	if err != nil {
		slog.Debug("rejected filter expression", "input", input, "error", err)
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	if *showLabels {
		for _, name := range expr.Labels(tree) {
			_, _ = fmt.Fprintln(stdout, name)
		}
		return 0
	}

	if err := format.Write(stdout, tree, result.Format); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

// readExpression joins positional arguments, or reads stdin for a lone "-"
func readExpression(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 {
		return "", errors.New("no expression given")
	}

	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	return strings.Join(args, " "), nil
}

// runFile compiles every filter in the file at path and prints each one under a "# name" header
func runFile(path string, result *bootstrap.BootstrapResult, stdout, stderr io.Writer) int {
	slog.Debug("compiling filter file", "path", path)
	set, loadErr := filterset.Load(path, result.ParseOptions...)
	if set != nil {
		for _, f := range set.Filters {
			_, _ = fmt.Fprintf(stdout, "# %s\n", f.Name)
			if err := format.Write(stdout, f.Expr, result.Format); err != nil {
				_, _ = fmt.Fprintln(stderr, "error:", err)
				return 1
			}
		}
	}

	if loadErr != nil {
		_, _ = fmt.Fprintln(stderr, "error:", loadErr)
		return 1
	}
	return 0
}
