// Command sqlrender renders AST documents as SQL text.
//
// Configuration (flags override env vars):
//
//	--indent, SQLRENDER_INDENT          clause indent unit, e.g. "\t" (default: single line)
//	--log-level, SQLRENDER_LOG_LEVEL    debug|info|warn|error (default: warn)
//	--engine, SQLRENDER_ENGINE          postgres|mysql|sqlite|sqlserver (check only)
//	--dsn, DATABASE_URL                 connection string (check only)
//
// Usage:
//
//	sqlrender render query.yaml
//	sqlrender repl
//	sqlrender check --engine sqlite --dsn :memory: query.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/johnathonlee/sqltext/visitors"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// app holds the settings shared by every subcommand once flags and
// environment are resolved.
type app struct {
	indent   string
	logLevel string
	logger   *slog.Logger
}

func (a *app) renderOptions() []visitors.Option {
	if a.indent == "" {
		return nil
	}
	return []visitors.Option{visitors.WithIndent(a.indent)}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:           "sqlrender",
		Short:         "Render SQL syntax trees as SQL text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Precedence: flag > env > default.
			resolve(cmd, "indent", "SQLRENDER_INDENT", &a.indent)
			resolve(cmd, "log-level", "SQLRENDER_LOG_LEVEL", &a.logLevel)

			var level slog.Level
			if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
				return fmt.Errorf("invalid log level %q: %w", a.logLevel, err)
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			a.indent = unescape(a.indent)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.indent, "indent", "", `clause indent unit, e.g. "\t" or "  "`)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newReplCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

// resolve applies the environment variable env to dst unless the flag was
// set explicitly.
func resolve(cmd *cobra.Command, flag, env string, dst *string) {
	if cmd.Flags().Changed(flag) {
		return
	}
	if v, ok := os.LookupEnv(env); ok {
		*dst = v
	}
}

// unescape interprets Go escapes such as \t so indent units can be typed on
// a command line. Invalid escapes are kept verbatim.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	u, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
	if err != nil {
		return s
	}
	return u
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sqlrender version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "sqlrender version %s (commit: %s)\n", version, commit)
			return err
		},
	}
}
