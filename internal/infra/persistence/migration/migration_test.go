package migration

import (
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var migrationName = regexp.MustCompile(`^\d{6}_[a-z0-9_]+\.(up|down)\.sql$`)

func TestMigrationsFS_EmbeddedFiles(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, entry := range entries {
		name := entry.Name()
		assert.Regexp(t, migrationName, name)

		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}

		body, err := fs.ReadFile(migrationsFS, "migrations/"+name)
		require.NoError(t, err)
		assert.NotEmpty(t, strings.TrimSpace(string(body)), name)
	}

	assert.Equal(t, ups, downs, "every up migration needs a matching down migration")
}

func TestMigrationsFS_BioLimitMatchesDomain(t *testing.T) {
	body, err := fs.ReadFile(migrationsFS, "migrations/000001_create_accounts.up.sql")
	require.NoError(t, err)

	assert.Contains(t, string(body), "char_length(bio) <= 500")
}
