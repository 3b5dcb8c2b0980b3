package load

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/syssam/recordgen/schema"
)

// Dialect selects the catalog queries of a database.
type Dialect string

// Supported dialects.
const (
	SQLite   Dialect = "sqlite"
	MySQL    Dialect = "mysql"
	Postgres Dialect = "postgres"
)

// ParseDialect returns the dialect of a database/sql driver name.
func ParseDialect(driver string) (Dialect, error) {
	switch strings.ToLower(driver) {
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "mysql", "mariadb":
		return MySQL, nil
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	}
	return "", fmt.Errorf("load: unsupported driver %q", driver)
}

// Driver returns the database/sql driver name registered for the dialect
// by modernc.org/sqlite, github.com/go-sql-driver/mysql and github.com/lib/pq.
func (d Dialect) Driver() string { return string(d) }

// catalog holds the queries listing the tables of the current database
// and the columns of one table. Column queries select, in order: name,
// type, nullable, default, primary key, scale, size and comment.
type catalog struct {
	tables  string
	columns string
}

var catalogs = map[Dialect]catalog{
	SQLite: {
		tables: `SELECT name FROM sqlite_master
			WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
			ORDER BY name`,
		columns: `SELECT name, type, "notnull" = 0, dflt_value, pk > 0, NULL, NULL, ''
			FROM pragma_table_info(?)
			ORDER BY cid`,
	},
	MySQL: {
		tables: `SELECT table_name FROM information_schema.tables
			WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'
			ORDER BY table_name`,
		columns: `SELECT column_name, column_type, is_nullable = 'YES', column_default,
				column_key = 'PRI', numeric_scale, character_maximum_length, column_comment
			FROM information_schema.columns
			WHERE table_schema = DATABASE() AND table_name = ?
			ORDER BY ordinal_position`,
	},
	Postgres: {
		tables: `SELECT table_name FROM information_schema.tables
			WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
			ORDER BY table_name`,
		columns: `SELECT c.column_name, c.data_type, c.is_nullable = 'YES', c.column_default,
				EXISTS (
					SELECT 1 FROM information_schema.table_constraints tc
					JOIN information_schema.key_column_usage kcu
						ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema
					WHERE tc.constraint_type = 'PRIMARY KEY' AND tc.table_schema = c.table_schema
						AND tc.table_name = c.table_name AND kcu.column_name = c.column_name
				),
				c.numeric_scale, c.character_maximum_length,
				COALESCE(col_description(format('%I.%I', c.table_schema, c.table_name)::regclass, c.ordinal_position::int), '')
			FROM information_schema.columns c
			WHERE c.table_schema = current_schema() AND c.table_name = $1
			ORDER BY c.ordinal_position`,
	},
}

// Inspect reads the definitions of the named tables from the catalog of
// the database, or of all its tables when no name is given.
func Inspect(ctx context.Context, db Querier, d Dialect, names ...string) ([]*schema.Table, error) {
	if db == nil {
		return nil, fmt.Errorf("load: database connection not established")
	}
	cat, ok := catalogs[d]
	if !ok {
		return nil, fmt.Errorf("load: unsupported dialect %q", d)
	}
	if len(names) == 0 {
		var err error
		if names, err = listTables(ctx, db, cat); err != nil {
			return nil, err
		}
	}
	tables := make([]*schema.Table, 0, len(names))
	for _, name := range names {
		cols, err := inspectColumns(ctx, db, d, cat, name)
		if err != nil {
			return nil, err
		}
		tables = append(tables, schema.NewTable(name, cols))
	}
	return tables, nil
}

func listTables(ctx context.Context, db Querier, cat catalog) ([]string, error) {
	rows, err := db.QueryContext(ctx, cat.tables)
	if err != nil {
		return nil, fmt.Errorf("load: list tables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("load: scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load: list tables: %w", err)
	}
	return names, nil
}

func inspectColumns(ctx context.Context, db Querier, d Dialect, cat catalog, table string) ([]*schema.Column, error) {
	rows, err := db.QueryContext(ctx, cat.columns, table)
	if err != nil {
		return nil, fmt.Errorf("load: query columns of %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	var cols []*schema.Column
	for rows.Next() {
		var (
			name, typ, comment string
			nullable, pk       bool
			def                sql.NullString
			scale, size        sql.NullInt64
		)
		if err := rows.Scan(&name, &typ, &nullable, &def, &pk, &scale, &size, &comment); err != nil {
			return nil, fmt.Errorf("load: scan column of %s: %w", table, err)
		}
		var opts []schema.ColumnOption
		if !nullable || pk {
			opts = append(opts, schema.NotNull())
		}
		if pk {
			opts = append(opts, schema.PrimaryKey())
		}
		if scale.Valid {
			opts = append(opts, schema.Scale(int(scale.Int64)))
		}
		if size.Valid && size.Int64 > 0 {
			opts = append(opts, schema.Size(int(size.Int64)))
		}
		if v, ok := normalizeDefault(def); ok {
			opts = append(opts, schema.Default(v))
		}
		if comment != "" {
			opts = append(opts, schema.Comment(comment))
		}
		cols = append(cols, schema.NewColumn(name, normalizeType(d, typ), opts...))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load: query columns of %s: %w", table, err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("load: table %s not found", table)
	}
	return cols, nil
}

// normalizeType maps dialect specific spellings to the common type names.
func normalizeType(d Dialect, typ string) string {
	typ = strings.TrimSpace(typ)
	if d == MySQL && strings.EqualFold(typ, "tinyint(1)") {
		return "BOOLEAN"
	}
	return typ
}

// normalizeDefault returns the literal value of a catalog default
// expression. Expressions that are evaluated by the database, such as
// sequences or the current time, are not literals and yield no default.
func normalizeDefault(def sql.NullString) (string, bool) {
	if !def.Valid {
		return "", false
	}
	s := strings.TrimSpace(def.String)
	for len(s) > 1 && s[0] == '(' && s[len(s)-1] == ')' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	// Postgres casts: 'Penguin'::character varying.
	if i := strings.LastIndex(s, "::"); i > 0 && !strings.Contains(s[i:], "'") {
		s = strings.TrimSpace(s[:i])
	}
	switch upper := strings.ToUpper(s); {
	case s == "", upper == "NULL":
		return "", false
	case len(s) > 1 && s[0] == '\'' && s[len(s)-1] == '\'':
		return strings.ReplaceAll(s[1:len(s)-1], "''", "'"), true
	case strings.HasPrefix(upper, "CURRENT_"), strings.ContainsAny(s, "()"):
		return "", false
	}
	return s, true
}
