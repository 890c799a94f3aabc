// Package seeders fills the database with demo data for local development.
package seeders

import (
	"fmt"

	"gorm.io/gorm"
)

// Seeder is one named seeding step.
type Seeder struct {
	Name string
	Run  func(db *gorm.DB) error
}

var registry []Seeder

// Register adds a seeder to the registry. Seeders run in registration order.
func Register(name string, run func(db *gorm.DB) error) {
	registry = append(registry, Seeder{Name: name, Run: run})
}

// RunAll executes every registered seeder.
func RunAll(db *gorm.DB) error {
	for _, s := range registry {
		fmt.Printf("  Seeding: %s\n", s.Name)
		if err := s.Run(db); err != nil {
			return fmt.Errorf("seeder %s: %w", s.Name, err)
		}
		fmt.Printf("  Seeded:  %s\n", s.Name)
	}
	return nil
}
