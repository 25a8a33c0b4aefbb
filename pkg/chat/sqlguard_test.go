package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckReadOnlyAllowsSelects(t *testing.T) {
	queries := []string{
		"SELECT * FROM plant_batches",
		"select id, name from fields where user_id = 'u1'",
		"  \n\tSELECT count(*) FROM notes",
		// Identifiers containing a blocked word are fine.
		"SELECT * FROM plant_batches WHERE deleted_at IS NULL",
		"SELECT created_at, updated_at FROM fields",
	}
	for _, q := range queries {
		assert.NoError(t, CheckReadOnly(q), q)
	}
}

func TestCheckReadOnlyRejectsNonSelect(t *testing.T) {
	queries := []string{
		"DROP TABLE users;",
		"DELETE FROM fields",
		"UPDATE plant_batches SET current_status = 'healthy'",
		"insert into notes (id) values ('x')",
		"PRAGMA table_info(fields)",
		"",
	}
	for _, q := range queries {
		err := CheckReadOnly(q)
		require.Error(t, err, q)
		var uErr *UnsafeQueryError
		require.ErrorAs(t, err, &uErr, q)
		assert.Equal(t, "Only SELECT queries are allowed", uErr.Error())
	}
}

func TestCheckReadOnlyRejectsEmbeddedKeywords(t *testing.T) {
	tests := []struct {
		query   string
		keyword string
	}{
		{"SELECT * FROM fields; DROP TABLE users", "DROP"},
		{"SELECT * FROM fields; delete from notes", "DELETE"},
		{"SELECT * FROM fields UNION SELECT * FROM x; UPDATE fields SET name='x'", "UPDATE"},
		{"SELECT 1; INSERT INTO notes VALUES ('x')", "INSERT"},
		{"SELECT 1; ALTER TABLE fields ADD COLUMN x", "ALTER"},
		{"SELECT 1; TRUNCATE TABLE fields", "TRUNCATE"},
		{"SELECT 1; CREATE TABLE evil (id)", "CREATE"},
	}
	for _, tt := range tests {
		err := CheckReadOnly(tt.query)
		require.Error(t, err, tt.query)
		var uErr *UnsafeQueryError
		require.ErrorAs(t, err, &uErr, tt.query)
		assert.Equal(t, tt.keyword, uErr.Keyword, tt.query)
		assert.Equal(t, tt.keyword+" operations are not allowed", uErr.Error())
	}
}
