package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN_CaracteresEspeciales(t *testing.T) {
	cfg := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:w/ord#123",
		DBName:   "supermercado",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()

	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "/supermercado")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss:w/ord#123", "la contraseña debe ir URL-encoded")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	cfg := DBConfig{
		DatabaseURL: "postgresql://u:p@db.example.com:5432/prod?sslmode=require",
		Host:        "localhost",
		Port:        5432,
	}

	assert.Equal(t, cfg.DatabaseURL, cfg.ConnectionString())
}

func TestHTTPAddr(t *testing.T) {
	cfg := HTTPConfig{Host: "0.0.0.0", Port: 8080}

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}
