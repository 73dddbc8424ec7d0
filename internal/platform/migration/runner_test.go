// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/internal/platform/migration"
)

func TestMigrateURL(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"postgres://folio:pw@db:5432/folio?sslmode=disable", "pgx5://folio:pw@db:5432/folio?sslmode=disable"},
		{"postgresql://db/folio", "pgx5://db/folio"},
		{"pgx5://db/folio", "pgx5://db/folio"},
		{"host=db dbname=folio", "host=db dbname=folio"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, migration.MigrateURL(tt.dsn))
	}
}
