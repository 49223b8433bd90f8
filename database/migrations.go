package database

import "embed"

// Migrations holds the catalog schema and seed, applied by config.RunMigrations.
//
//go:embed migration/*.sql
var Migrations embed.FS
