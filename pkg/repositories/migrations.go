package repositories

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations
var migrationsFS embed.FS

// readMigrations returns the SQL files of a migrations subdirectory in name order.
func readMigrations(dialect string) ([]string, error) {
	dir := "migrations/" + dialect
	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var migrations []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		migrationPath := dir + "/" + entry.Name()
		migration, err := fs.ReadFile(migrationsFS, migrationPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}
		migrations = append(migrations, string(migration))
	}

	return migrations, nil
}
