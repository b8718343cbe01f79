package database

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect holds what differs between the SQLite and PostgreSQL save stores.
type Dialect struct {
	Driver    string // name passed to sql.Open
	Blob      string
	Timestamp string
	Numbered  bool     // $1, $2 placeholders instead of ?
	Init      []string // run once after opening
}

var (
	SQLite = Dialect{
		Driver:    "sqlite",
		Blob:      "BLOB",
		Timestamp: "TIMESTAMP",
		Init: []string{
			"PRAGMA journal_mode = WAL",
			"PRAGMA busy_timeout = 5000",
		},
	}
	Postgres = Dialect{
		Driver:    "postgres",
		Blob:      "BYTEA",
		Timestamp: "TIMESTAMPTZ",
		Numbered:  true,
	}
)

// DialectFor maps a configured driver name to its dialect. An empty name
// means SQLite.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "", SQLite.Driver:
		return SQLite, nil
	case Postgres.Driver:
		return Postgres, nil
	}
	return Dialect{}, fmt.Errorf("unknown database driver %q", driver)
}

// Rebind rewrites ? placeholders into the dialect's form.
//
//	input:    "DELETE FROM saves WHERE name = ?"
//	Postgres: "DELETE FROM saves WHERE name = $1"
func (d Dialect) Rebind(query string) string {
	if !d.Numbered {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r != '?' {
			b.WriteRune(r)
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
