package config

const (
	// DefaultDatabasePath is the default path for the sqlite database file
	DefaultDatabasePath = "./bookreviews.db"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)
