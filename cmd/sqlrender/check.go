package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/microsoft/go-mssqldb"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

var driverName = map[string]string{
	"postgres":  "pgx",
	"mysql":     "mysql",
	"sqlite":    "sqlite",
	"sqlserver": "sqlserver",
}

var errCheckFailed = errors.New("one or more statements failed to prepare")

func newCheckCmd(a *app) *cobra.Command {
	var engine, dsn string
	cmd := &cobra.Command{
		Use:   "check [FILE...]",
		Short: "Prepare rendered statements on a database to confirm they parse",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			resolve(cmd, "engine", "SQLRENDER_ENGINE", &engine)
			resolve(cmd, "dsn", "DATABASE_URL", &dsn)
			engine = strings.ToLower(strings.TrimSpace(engine))
			if engine == "" {
				return errors.New("no engine: set --engine or SQLRENDER_ENGINE")
			}
			if _, ok := driverName[engine]; !ok {
				return fmt.Errorf("unknown engine %q (postgres, mysql, sqlite, sqlserver)", engine)
			}
			if dsn == "" {
				return errors.New("no connection: set --dsn or DATABASE_URL")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{stdinName}
			}
			ctx := cmd.Context()
			results, err := renderFiles(ctx, args, cmd.InOrStdin(), a.renderOptions())
			if err != nil {
				return err
			}

			a.logger.Info("connecting", "engine", engine, "dsn", sanitizeDSN(dsn))
			c, err := openChecker(ctx, engine, dsn)
			if err != nil {
				return err
			}
			defer func() { _ = c.close() }()

			var rows [][]string
			failed := 0
			for i, stmts := range results {
				for _, stmt := range stmts {
					status, detail := "ok", ""
					if err := c.check(ctx, stmt); err != nil {
						status, detail = "error", err.Error()
						failed++
						a.logger.Debug("prepare failed", "file", args[i], "sql", stmt, "err", err)
					}
					rows = append(rows, []string{strconv.Itoa(len(rows) + 1), status, oneLine(stmt), detail})
				}
			}
			if _, err := fmt.Fprint(cmd.OutOrStdout(), formatTable([]string{"#", "status", "statement", "detail"}, rows)); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%w (%d of %d)", errCheckFailed, failed, len(rows))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&engine, "engine", "", "database engine (postgres, mysql, sqlite, sqlserver)")
	cmd.Flags().StringVar(&dsn, "dsn", "", "connection string")
	return cmd
}

// checker prepares statements on a live connection without executing them.
type checker struct {
	db     *sql.DB
	engine string
}

func openChecker(ctx context.Context, engine, dsn string) (*checker, error) {
	driver, ok := driverName[engine]
	if !ok {
		return nil, fmt.Errorf("no driver for engine %q", engine)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &checker{db: db, engine: engine}, nil
}

func (c *checker) close() error {
	return c.db.Close()
}

// check reports whether the engine accepts stmt. SQL Server prepares
// lazily, so there the statement is compiled under PARSEONLY instead.
func (c *checker) check(ctx context.Context, stmt string) error {
	if c.engine == "sqlserver" {
		_, err := c.db.ExecContext(ctx, "SET PARSEONLY ON;\n"+stmt+"\nSET PARSEONLY OFF;")
		return err
	}
	st, err := c.db.PrepareContext(ctx, stmt)
	if err != nil {
		return err
	}
	return st.Close()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func formatTable(columns []string, rows [][]string) string {
	if len(columns) == 0 {
		return "(0 rows)\n"
	}

	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	sep := buildSeparator(widths)

	b.WriteString(sep)
	b.WriteByte('|')
	for i, c := range columns {
		fmt.Fprintf(&b, " %-*s |", widths[i], c)
	}
	b.WriteByte('\n')
	b.WriteString(sep)

	for _, row := range rows {
		b.WriteByte('|')
		for i, cell := range row {
			fmt.Fprintf(&b, " %-*s |", widths[i], cell)
		}
		b.WriteByte('\n')
	}

	b.WriteString(sep)

	if n := len(rows); n == 1 {
		b.WriteString("(1 statement)\n")
	} else {
		fmt.Fprintf(&b, "(%d statements)\n", n)
	}
	return b.String()
}

func buildSeparator(widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('+')
	}
	b.WriteByte('\n')
	return b.String()
}

// sanitizeDSN masks the password of URL and MySQL style DSNs for logging.
func sanitizeDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err == nil && u.Scheme != "" && u.User != nil {
		if _, hasPass := u.User.Password(); hasPass {
			// Rebuilt by hand so the mask is not percent-encoded.
			masked := u.Scheme + "://" + u.User.Username() + ":****@" + u.Host + u.Path
			if u.RawQuery != "" {
				masked += "?" + u.RawQuery
			}
			return masked
		}
		return dsn
	}

	// user:pass@tcp(host)/db
	if atIdx := strings.Index(dsn, "@"); atIdx > 0 {
		userPass := dsn[:atIdx]
		if colonIdx := strings.Index(userPass, ":"); colonIdx >= 0 {
			return userPass[:colonIdx+1] + "****" + dsn[atIdx:]
		}
	}
	return dsn
}
