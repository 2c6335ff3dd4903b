// Package datastore persists imported collections either to a local
// SQLite file or to a remote Datasette instance.
package datastore

// Store is the destination for imported collection rows.
type Store interface {
	// Connect establishes a connection to the data store
	Connect() error

	// CreateTable creates a new table with the given schema if it doesn't exist
	CreateTable(schema string) error

	// BatchInsert inserts multiple rows into the specified table
	BatchInsert(database string, table string, rows []map[string]any) error

	// Close closes the connection to the data store
	Close() error
}
