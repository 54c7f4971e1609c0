package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	log "github.com/sirupsen/logrus"
)

type Config struct {
    Host     string
    Port     string
    User     string
    Password string
    DBName   string
}

func NewDB(config Config) (*sql.DB, error) {
    dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&multiStatements=true",
        config.User,
        config.Password,
        config.Host,
        config.Port,
        config.DBName,
    )

    db, err := sql.Open("mysql", dsn)
    if err != nil {
        return nil, fmt.Errorf("error opening database: %v", err)
    }

    if err := db.Ping(); err != nil {
        return nil, fmt.Errorf("error connecting to the database: %v", err)
    }

    return db, nil
}

func RunMigrations(db *sql.DB, migrationsPath string) error {
    _, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS schema_migrations (
            version INT PRIMARY KEY,
            applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            dirty BOOLEAN NOT NULL DEFAULT FALSE
        )
    `)
    if err != nil {
        return fmt.Errorf("error creating migrations table: %v", err)
    }

    entries, err := os.ReadDir(migrationsPath)
    if err != nil {
        return fmt.Errorf("error reading migrations directory: %v", err)
    }

    var migrations []string
    for _, entry := range entries {
        if strings.HasSuffix(entry.Name(), ".up.sql") {
            migrations = append(migrations, entry.Name())
        }
    }
    sort.Strings(migrations)

    for _, migration := range migrations {
        var version int
        fmt.Sscanf(migration, "%d", &version)

        // Skip migrations that already ran cleanly
        var dirty bool
        err := db.QueryRow("SELECT dirty FROM schema_migrations WHERE version = ?", version).Scan(&dirty)
        if err == nil && !dirty {
            continue
        }
        if err != nil && err != sql.ErrNoRows {
            return fmt.Errorf("error checking migration %s: %v", migration, err)
        }

        content, err := os.ReadFile(filepath.Join(migrationsPath, migration))
        if err != nil {
            return fmt.Errorf("error reading migration file %s: %v", migration, err)
        }

        tx, err := db.Begin()
        if err != nil {
            return fmt.Errorf("error starting transaction: %v", err)
        }

        if _, err := tx.Exec("REPLACE INTO schema_migrations (version, dirty) VALUES (?, true)", version); err != nil {
            tx.Rollback()
            return fmt.Errorf("error marking migration as dirty %s: %v", migration, err)
        }

        if _, err := tx.Exec(string(content)); err != nil {
            tx.Rollback()
            return fmt.Errorf("error executing migration %s: %v", migration, err)
        }

        if _, err := tx.Exec("UPDATE schema_migrations SET dirty = false WHERE version = ?", version); err != nil {
            tx.Rollback()
            return fmt.Errorf("error marking migration as clean %s: %v", migration, err)
        }

        if err := tx.Commit(); err != nil {
            return fmt.Errorf("error committing migration %s: %v", migration, err)
        }

        log.Infof("Applied migration: %s", migration)
    }

    return nil
}
