package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSearchQuery(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name   string
		filter TherapistFilter
		sql    string
		args   []interface{}
	}{
		{
			name:   "no filter",
			filter: TherapistFilter{},
			sql:    "SELECT * FROM therapists WHERE (suspended_until IS NULL OR NOT suspended_until > ?) ORDER BY name ASC",
			args:   []interface{}{now},
		},
		{
			name:   "location and gender",
			filter: TherapistFilter{Location: "Colombo", Gender: "Female"},
			sql:    "SELECT * FROM therapists WHERE (LOWER(location) LIKE ? AND LOWER(gender) = ?) AND (suspended_until IS NULL OR NOT suspended_until > ?) ORDER BY name ASC",
			args:   []interface{}{"%colombo%", "female", now},
		},
		{
			name:   "gender only",
			filter: TherapistFilter{Gender: "male"},
			sql:    "SELECT * FROM therapists WHERE (LOWER(gender) = ?) AND (suspended_until IS NULL OR NOT suspended_until > ?) ORDER BY name ASC",
			args:   []interface{}{"male", now},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := SearchQuery(tt.filter, now).Build()
			assert.Equal(t, tt.sql, sql)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestSuspendQuery(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	until := now.Add(30 * 24 * time.Hour)

	sql, args := SuspendQuery(4, until, now).Build()
	assert.Equal(t, "UPDATE therapists SET suspended_until = ?, updated_at = ? WHERE (id = ? AND (suspended_until IS NULL OR NOT suspended_until > ?))", sql)
	assert.Equal(t, []interface{}{until, now, uint(4), now}, args)
}
