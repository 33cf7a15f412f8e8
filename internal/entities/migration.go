package entities

import "time"

// SchemaMigration records one applied migration step.
type SchemaMigration struct {
	Version   string    `gorm:"primaryKey;size:64" json:"version"`
	Name      string    `gorm:"size:255" json:"name"`
	AppliedAt time.Time `json:"applied_at"`
}

func (SchemaMigration) TableName() string {
	return "schema_migrations"
}
