package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	names, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)
	require.Len(t, names, 5)

	for _, name := range names {
		b, err := fs.ReadFile(Migrations, name)
		require.NoError(t, err)
		s := string(b)
		assert.True(t, strings.Contains(s, "-- +goose Up"), name)
		assert.True(t, strings.Contains(s, "-- +goose Down"), name)
	}
}
