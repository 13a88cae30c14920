package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/johnathonlee/sqltext/astdoc"
	"github.com/johnathonlee/sqltext/visitors"
)

const stdinName = "-"

func newRenderCmd(a *app) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "render [FILE...]",
		Short: "Render every document in the given files as SQL",
		Long: "Render decodes each YAML or JSON document in the given files (stdin when none\n" +
			"or \"-\") and prints one statement per document, each terminated by \";\".",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{stdinName}
			}
			out := cmd.OutOrStdout()
			results, err := renderFiles(cmd.Context(), args, cmd.InOrStdin(), a.renderOptions())
			if err != nil {
				return err
			}
			for _, stmts := range results {
				if err := writeStatements(out, stmts); err != nil {
					return err
				}
			}
			if !watch {
				return nil
			}

			w, err := newFileWatcher(a.logger, args)
			if err != nil {
				return err
			}
			defer func() { _ = w.close() }()
			return w.run(cmd.Context(), func(path string) {
				stmts, err := renderFile(path, nil, a.renderOptions())
				if err != nil {
					a.logger.Error("render failed", "file", path, "err", err)
					return
				}
				a.logger.Info("rendered", "file", path, "statements", len(stmts))
				if err := writeStatements(out, stmts); err != nil {
					a.logger.Error("write failed", "err", err)
				}
			})
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-render files when they change")
	return cmd
}

// errStdinTwice rejects a second "-": stdin can only be read once.
var errStdinTwice = errors.New(`stdin ("-") given more than once`)

// renderFiles renders the files concurrently. Results keep the order of
// paths.
func renderFiles(ctx context.Context, paths []string, stdin io.Reader, opts []visitors.Option) ([][]string, error) {
	stdinCount := 0
	for _, p := range paths {
		if p == stdinName {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return nil, errStdinTwice
	}
	results := make([][]string, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stmts, err := renderFile(path, stdin, opts)
			if err != nil {
				return err
			}
			results[i] = stmts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func renderFile(path string, stdin io.Reader, opts []visitors.Option) ([]string, error) {
	if path == stdinName {
		stmts, err := renderDocuments(stdin, opts)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return stmts, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()
	stmts, err := renderDocuments(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return stmts, nil
}

// renderDocuments renders each document of a stream.
func renderDocuments(r io.Reader, opts []visitors.Option) ([]string, error) {
	docs, err := astdoc.DecodeAll(r)
	if err != nil {
		return nil, err
	}
	stmts := make([]string, len(docs))
	for i, doc := range docs {
		stmts[i] = visitors.Render(doc, opts...)
	}
	return stmts, nil
}

func writeStatements(w io.Writer, stmts []string) error {
	var sb strings.Builder
	for _, s := range stmts {
		sb.WriteString(s)
		sb.WriteString(";\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
