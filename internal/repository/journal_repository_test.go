package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatestEntryQuery(t *testing.T) {
	sql, args := LatestEntryQuery(12).Build()
	assert.Equal(t, "SELECT * FROM journal_entries WHERE user_id = ? ORDER BY timestamp DESC, id DESC LIMIT 1", sql)
	assert.Equal(t, []interface{}{uint(12)}, args)
}
