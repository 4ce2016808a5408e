package db

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const migrationsDir = "../../migrations"

func TestMigrationFilesExist(t *testing.T) {
	for _, filename := range []string{
		"000001_initial_schema.up.sql",
		"000001_initial_schema.down.sql",
		"000002_widen_capacity.up.sql",
		"000002_widen_capacity.down.sql",
	} {
		_, err := os.Stat(filepath.Join(migrationsDir, filename))
		assert.NoError(t, err, "migration file %s should exist", filename)
	}
}

func TestMigrationFilesDeclareSurveyTables(t *testing.T) {
	up, err := os.ReadFile(filepath.Join(migrationsDir, "000001_initial_schema.up.sql"))
	require.NoError(t, err)
	down, err := os.ReadFile(filepath.Join(migrationsDir, "000001_initial_schema.down.sql"))
	require.NoError(t, err)

	for _, table := range []string{"general_surveys", "lawyer_surveys"} {
		assert.True(t, strings.Contains(string(up), "CREATE TABLE IF NOT EXISTS "+table), table)
		assert.True(t, strings.Contains(string(down), "DROP TABLE IF EXISTS "+table), table)
	}
	assert.Contains(t, string(up), "lawyer_surveys_email_unique")
}

func TestMigrationWidensCapacityColumn(t *testing.T) {
	up, err := os.ReadFile(filepath.Join(migrationsDir, "000002_widen_capacity.up.sql"))
	require.NoError(t, err)

	assert.Contains(t, string(up), "total_monthly_capacity TYPE BIGINT")
}

func TestConfigureTLS_PlaintextURL(t *testing.T) {
	cfg, err := configureTLS("postgres://localhost:5432/surveys", TLSConfig{CACertPath: "missing.crt"})

	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestConfigureTLS_MissingCertificate(t *testing.T) {
	_, err := configureTLS("postgres://db:5432/surveys?sslmode=verify-full", TLSConfig{CACertPath: "missing.crt"})

	assert.Error(t, err)
}
