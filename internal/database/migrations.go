package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/bookreviews/internal/entities"
)

// Migration is one versioned schema step. Up and Down run inside a
// transaction together with the bookkeeping row in schema_migrations.
type Migration struct {
	Version string
	Name    string
	Up      func(tx *gorm.DB) error
	Down    func(tx *gorm.DB) error
}

// ID returns the "<version>_<name>" identifier used in logs.
func (m Migration) ID() string {
	return m.Version + "_" + m.Name
}

type MigrationStatus struct {
	Version   string
	Name      string
	Applied   bool
	AppliedAt time.Time
}

// Migrator applies and reverts migrations in version order. Applied steps
// are detected through schema_migrations, so running Up twice is a no-op.
type Migrator struct {
	db         *gorm.DB
	migrations []Migration
}

// NewMigrator returns a migrator over the application's schema history.
func NewMigrator(db *gorm.DB) *Migrator {
	return newMigrator(db, migrations)
}

func newMigrator(db *gorm.DB, steps []Migration) *Migrator {
	return &Migrator{db: db, migrations: steps}
}

// Up applies every pending migration and returns the identifiers applied.
func (m *Migrator) Up(ctx context.Context) ([]string, error) {
	applied, err := m.prepare(ctx)
	if err != nil {
		return nil, err
	}

	var done []string
	for _, mig := range m.migrations {
		if _, ok := applied[mig.Version]; ok {
			continue
		}
		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := mig.Up(tx); err != nil {
				return err
			}
			return tx.Create(&entities.SchemaMigration{
				Version:   mig.Version,
				Name:      mig.Name,
				AppliedAt: time.Now().UTC(),
			}).Error
		})
		if err != nil {
			return done, fmt.Errorf("apply migration %s: %w", mig.ID(), err)
		}
		log.Printf("Applied migration %s", mig.ID())
		done = append(done, mig.ID())
	}
	return done, nil
}

// Down reverts the most recently applied migrations, at most steps of them.
func (m *Migrator) Down(ctx context.Context, steps int) ([]string, error) {
	if steps <= 0 {
		return nil, nil
	}
	applied, err := m.prepare(ctx)
	if err != nil {
		return nil, err
	}

	var done []string
	for i := len(m.migrations) - 1; i >= 0 && len(done) < steps; i-- {
		mig := m.migrations[i]
		if _, ok := applied[mig.Version]; !ok {
			continue
		}
		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := mig.Down(tx); err != nil {
				return err
			}
			return tx.Delete(&entities.SchemaMigration{}, "version = ?", mig.Version).Error
		})
		if err != nil {
			return done, fmt.Errorf("revert migration %s: %w", mig.ID(), err)
		}
		log.Printf("Reverted migration %s", mig.ID())
		done = append(done, mig.ID())
	}
	return done, nil
}

// Status lists every known migration and whether it has been applied.
func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	applied, err := m.prepare(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]MigrationStatus, 0, len(m.migrations))
	for _, mig := range m.migrations {
		status := MigrationStatus{Version: mig.Version, Name: mig.Name}
		if row, ok := applied[mig.Version]; ok {
			status.Applied = true
			status.AppliedAt = row.AppliedAt
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func (m *Migrator) prepare(ctx context.Context) (map[string]entities.SchemaMigration, error) {
	for i := 1; i < len(m.migrations); i++ {
		if m.migrations[i-1].Version >= m.migrations[i].Version {
			return nil, fmt.Errorf("migration %s is out of order", m.migrations[i].ID())
		}
	}

	db := m.db.WithContext(ctx)
	if err := db.AutoMigrate(&entities.SchemaMigration{}); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	var rows []entities.SchemaMigration
	if err := db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load applied migrations: %w", err)
	}
	applied := make(map[string]entities.SchemaMigration, len(rows))
	for _, row := range rows {
		applied[row.Version] = row
	}
	return applied, nil
}
