package storage

// Config holds database settings.
type Config struct {
	// Path is the SQLite database file location.
	Path string `yaml:"path" envconfig:"DB_PATH"`
}
