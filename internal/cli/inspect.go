package cli

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/syssam/recordgen/compiler/load"
)

func newInspectCmd(a *app) *cobra.Command {
	var (
		driver string
		dsn    string
		out    string
		tables []string
	)
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Write the schema file of a live database",
		Long: `Read the table definitions of a sqlite, mysql or postgres database
and write them as a schema file, to stdout unless --out is given.`,
		Example: `  recordgen inspect --driver sqlite --dsn ./shop.db --out schema.yaml
  recordgen inspect --driver postgres --dsn "postgres://localhost/shop?sslmode=disable" --table author`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := load.ParseDialect(driver)
			if err != nil {
				return err
			}
			db, err := sql.Open(d.Driver(), dsn)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer func() { _ = db.Close() }()

			q := load.NewStatsQuerier(db, load.WithLogger(a.log))
			defs, err := load.Inspect(cmd.Context(), q, d, tables...)
			if err != nil {
				return err
			}
			f := load.FromTables(defs)
			f.Package = a.cfg.Package
			f.DefaultFormat = a.cfg.DefaultFormat
			data, err := f.Marshal()
			if err != nil {
				return err
			}
			a.log.Debug("inspected database", "driver", driver, "tables", len(defs), "stats", q.QueryStats().Stats())
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(out, data, 0o644)
		},
	}
	cmd.Flags().StringVar(&driver, "driver", "sqlite", "Database driver (sqlite|mysql|postgres)")
	cmd.Flags().StringVar(&dsn, "dsn", "", "Data source name")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringSliceVar(&tables, "table", nil, "Tables to inspect (default: all)")
	_ = cmd.MarkFlagRequired("dsn")
	return cmd
}
