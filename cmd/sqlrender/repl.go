package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
	"github.com/spf13/cobra"

	"github.com/johnathonlee/sqltext/astdoc"
	"github.com/johnathonlee/sqltext/visitors"
)

const (
	prompt         = "sqlrender> "
	continuePrompt = "       ... "
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Render documents typed interactively",
		Long: "Type a YAML or JSON document and finish it with an empty line to see its SQL.\n" +
			"Commands (at the start of a document): indent [UNIT|off], help, exit, quit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rl, err := readline.NewFromConfig(&readline.Config{
				Prompt:          prompt,
				HistoryFile:     historyPath(),
				HistoryLimit:    500,
				AutoComplete:    &replCompleter{kinds: astdoc.Kinds()},
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
			})
			if err != nil {
				return fmt.Errorf("readline init: %w", err)
			}
			defer func() { _ = rl.Close() }()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "sqlrender REPL: end a document with an empty line, 'help' for commands, 'exit' to quit")
			sh := &shell{in: rl, out: out, indent: a.indent}
			return sh.run()
		},
	}
}

// lineReader is the part of readline the shell needs.
type lineReader interface {
	ReadLine() (string, error)
}

// shell accumulates document lines and renders them on an empty line.
type shell struct {
	in     lineReader
	out    io.Writer
	indent string
	buf    strings.Builder
}

func (s *shell) run() error {
	for {
		line, err := s.in.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			s.buf.Reset()
			s.setPrompt()
			continue
		}
		if errors.Is(err, io.EOF) {
			s.flush()
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}

		trimmed := strings.TrimSpace(line)
		if s.buf.Len() == 0 {
			if trimmed == "" {
				continue
			}
			done, handled := s.command(trimmed)
			if done {
				return nil
			}
			if handled {
				continue
			}
		}
		if trimmed == "" {
			s.flush()
			continue
		}
		s.buf.WriteString(line)
		s.buf.WriteByte('\n')
		s.setPrompt()
	}
}

// command runs a shell command. It reports whether the shell should exit
// and whether line was a command at all.
func (s *shell) command(line string) (done, handled bool) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "exit", "quit":
		return len(fields) == 1, len(fields) == 1
	case "help":
		fmt.Fprintln(s.out, "  indent        show the indent unit")
		fmt.Fprintln(s.out, "  indent UNIT   indent clauses by UNIT, e.g. indent \\t")
		fmt.Fprintln(s.out, "  indent off    render on a single line")
		fmt.Fprintln(s.out, "  exit, quit    leave the shell")
		fmt.Fprintln(s.out, "  kinds         list document kinds")
		return false, true
	case "kinds":
		fmt.Fprintln(s.out, "  "+strings.Join(astdoc.Kinds(), ", "))
		return false, true
	case "indent":
		switch {
		case len(fields) == 1 && s.indent == "":
			fmt.Fprintln(s.out, "  indent: off")
		case len(fields) == 1:
			fmt.Fprintf(s.out, "  indent: %q\n", s.indent)
		case len(fields) == 2 && strings.EqualFold(fields[1], "off"):
			s.indent = ""
		case len(fields) == 2:
			s.indent = unescape(fields[1])
		default:
			fmt.Fprintln(s.out, "  Error: usage: indent [UNIT|off]")
		}
		return false, true
	}
	return false, false
}

func (s *shell) flush() {
	defer s.setPrompt()
	if s.buf.Len() == 0 {
		return
	}
	doc := s.buf.String()
	s.buf.Reset()

	var opts []visitors.Option
	if s.indent != "" {
		opts = append(opts, visitors.WithIndent(s.indent))
	}
	stmts, err := renderDocuments(strings.NewReader(doc), opts)
	if err != nil {
		fmt.Fprintf(s.out, "  Error: %v\n", err)
		return
	}
	_ = writeStatements(s.out, stmts)
}

func (s *shell) setPrompt() {
	p, ok := s.in.(interface{ SetPrompt(string) })
	if !ok {
		return
	}
	if s.buf.Len() > 0 {
		p.SetPrompt(continuePrompt)
	} else {
		p.SetPrompt(prompt)
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sqlrender_history")
}

var shellCommands = []string{"exit", "help", "indent", "kinds", "quit"}

// replCompleter completes shell commands at the start of a line and kind
// names after "kind:".
type replCompleter struct {
	kinds []string
}

func (c *replCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	prefix, candidates := c.candidates(string(line[:pos]))
	for _, cand := range candidates {
		newLine = append(newLine, []rune(cand[len(prefix):]))
	}
	return newLine, len([]rune(prefix))
}

func (c *replCompleter) candidates(line string) (string, []string) {
	if i := strings.LastIndex(line, "kind:"); i >= 0 {
		prefix := strings.TrimLeft(line[i+len("kind:"):], " ")
		if strings.ContainsAny(prefix, " ,}]") {
			return "", nil
		}
		return prefix, filterPrefix(c.kinds, prefix)
	}
	if strings.ContainsAny(line, " :{[-") {
		return "", nil
	}
	return line, filterPrefix(shellCommands, line)
}

func filterPrefix(items []string, prefix string) []string {
	if prefix == "" {
		result := make([]string, len(items))
		copy(result, items)
		return result
	}
	var result []string
	for _, item := range items {
		if strings.HasPrefix(item, prefix) {
			result = append(result, item)
		}
	}
	return result
}
