package db

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_EmptyURL(t *testing.T) {
	db, err := Connect(context.Background(), "")
	assert.Nil(t, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database URL is empty")
}

func TestConnect_InvalidURL(t *testing.T) {
	db, err := Connect(context.Background(), "postgres://%zz")
	assert.Nil(t, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to database")
}

func TestSchemaStatements_CreateBothTables(t *testing.T) {
	joined := strings.Join(schemaStatements, "\n")
	assert.Contains(t, joined, "CREATE TABLE IF NOT EXISTS careers")
	assert.Contains(t, joined, "CREATE TABLE IF NOT EXISTS questionnaire_sessions")
}

func TestClose_NilPool(t *testing.T) {
	db := &DB{}
	assert.NotPanics(t, db.Close)
}
