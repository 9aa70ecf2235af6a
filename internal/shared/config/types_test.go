package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfig_GetDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{"sqlite file", DatabaseConfig{Driver: "sqlite", Database: "./potluck.db"}, "./potluck.db?_foreign_keys=on"},
		{"sqlite memory", DatabaseConfig{Driver: "sqlite", Database: ":memory:"}, ":memory:?_foreign_keys=on"},
		{"empty driver is sqlite", DatabaseConfig{Database: "a.db"}, "a.db?_foreign_keys=on"},
		{"sqlite dsn with params", DatabaseConfig{Driver: "sqlite", DSN: "file:a.db?cache=shared"}, "file:a.db?cache=shared&_foreign_keys=on"},
		{"sqlite dsn already decides", DatabaseConfig{Driver: "sqlite", DSN: "a.db?_fk=0"}, "a.db?_fk=0"},
		{"mysql", DatabaseConfig{Driver: "mysql", Host: "db", Port: 3306, Username: "u", Password: "p", Database: "potluck"},
			"u:p@tcp(db:3306)/potluck?charset=utf8mb4&parseTime=True&loc=Local"},
		{"postgres dsn verbatim", DatabaseConfig{Driver: "postgres", DSN: "postgres://u@db/potluck"}, "postgres://u@db/potluck"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.GetDSN())
		})
	}
}
