package db

import (
	"gorm.io/gorm"

	"serenity-backend/internal/db/query"
)

// QueryExecutor runs built queries against a gorm connection.
type QueryExecutor struct {
	DB *gorm.DB
}

// NewQueryExecutor creates a new instance of QueryExecutor.
func NewQueryExecutor(db *gorm.DB) *QueryExecutor {
	return &QueryExecutor{DB: db}
}

// Find scans the rows selected by qb into dest.
func (qe *QueryExecutor) Find(qb *query.QueryBuilder, dest interface{}) error {
	sql, args := qb.Build()
	return qe.DB.Raw(sql, args...).Scan(dest).Error
}

// Exec runs an UPDATE or DELETE built by qb and returns the affected rows.
func (qe *QueryExecutor) Exec(qb *query.QueryBuilder) (int64, error) {
	sql, args := qb.Build()
	result := qe.DB.Exec(sql, args...)
	return result.RowsAffected, result.Error
}

// Count returns the number of rows that match the given conditions.
func (qe *QueryExecutor) Count(table string, conditions map[string]interface{}) (int64, error) {
	var count int64
	result := qe.DB.Table(table).Where(conditions).Count(&count)
	return count, result.Error
}

// Exists checks if a record matching the conditions exists.
func (qe *QueryExecutor) Exists(table string, conditions map[string]interface{}) (bool, error) {
	n, err := qe.Count(table, conditions)
	return n > 0, err
}

// Transaction runs txFunc with an executor bound to a single transaction.
func (qe *QueryExecutor) Transaction(txFunc func(tx *QueryExecutor) error) error {
	return qe.DB.Transaction(func(tx *gorm.DB) error {
		return txFunc(NewQueryExecutor(tx))
	})
}
