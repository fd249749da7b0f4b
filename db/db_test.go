package db

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/nutritrack-go/apperror"
	"github.com/user/nutritrack-go/config"
)

func TestPostgresDSN(t *testing.T) {
	dsn := PostgresDSN(&config.PoolConfig{
		Host: "db", Port: 5433, User: "nutri", Password: "pw", DBName: "tracker",
	})
	assert.Equal(t, "postgres://nutri:pw@db:5433/tracker?sslmode=disable", dsn)
}

func TestRunMigrations_UnknownDirection(t *testing.T) {
	cfg := &config.PoolConfig{
		Host: "127.0.0.1", Port: 1, User: "u", Password: "p", DBName: "n",
		MigrationsPath: "../migrations",
	}
	err := RunMigrations(cfg, Direction("sideways"), logrus.New())
	require.Error(t, err)
	ae, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.MigrationError, ae.Type)
}
