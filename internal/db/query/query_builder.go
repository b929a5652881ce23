package query

import (
	"fmt"
	"sort"
	"strings"
)

type QueryBuilder struct {
	query      strings.Builder
	table      string
	conditions []string
	columns    []string
	values     []interface{}
	orderBy    []string
	limit      int
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

func (qb *QueryBuilder) Select(columns ...string) *QueryBuilder {
	qb.columns = append(qb.columns, columns...)
	return qb
}

func (qb *QueryBuilder) From(table string) *QueryBuilder {
	qb.table = table
	return qb
}

func (qb *QueryBuilder) Where(condition string, args ...interface{}) *QueryBuilder {
	qb.conditions = append(qb.conditions, condition)
	qb.values = append(qb.values, args...)
	return qb
}

// WherePredicate adds a built FilterPredicate; an empty one is skipped.
func (qb *QueryBuilder) WherePredicate(fp *FilterPredicate) *QueryBuilder {
	if fp == nil || fp.Empty() {
		return qb
	}
	cond, args := fp.Build()
	return qb.Where("("+cond+")", args...)
}

func (qb *QueryBuilder) OrderBy(clauses ...string) *QueryBuilder {
	qb.orderBy = append(qb.orderBy, clauses...)
	return qb
}

func (qb *QueryBuilder) Limit(n int) *QueryBuilder {
	qb.limit = n
	return qb
}

func (qb *QueryBuilder) Update(table string) *QueryBuilder {
	qb.table = table
	qb.query.WriteString(fmt.Sprintf("UPDATE %s SET ", table))
	return qb
}

// Set assigns columns in name order so the generated SQL is stable.
func (qb *QueryBuilder) Set(assignments map[string]interface{}) *QueryBuilder {
	cols := make([]string, 0, len(assignments))
	for col := range assignments {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	sets := make([]string, 0, len(cols))
	for _, col := range cols {
		sets = append(sets, fmt.Sprintf("%s = ?", col))
		qb.values = append(qb.values, assignments[col])
	}
	qb.query.WriteString(strings.Join(sets, ", "))
	return qb
}

func (qb *QueryBuilder) DeleteFrom(table string) *QueryBuilder {
	qb.table = table
	qb.query.WriteString(fmt.Sprintf("DELETE FROM %s", table))
	return qb
}

func (qb *QueryBuilder) Build() (string, []interface{}) {
	if qb.query.Len() > 0 {
		if len(qb.conditions) > 0 {
			qb.query.WriteString(" WHERE " + strings.Join(qb.conditions, " AND "))
		}
		return qb.query.String(), qb.values
	}

	if len(qb.columns) > 0 {
		qb.query.WriteString(fmt.Sprintf("SELECT %s FROM %s", strings.Join(qb.columns, ", "), qb.table))
	} else {
		qb.query.WriteString(fmt.Sprintf("SELECT * FROM %s", qb.table))
	}

	if len(qb.conditions) > 0 {
		qb.query.WriteString(" WHERE " + strings.Join(qb.conditions, " AND "))
	}
	if len(qb.orderBy) > 0 {
		qb.query.WriteString(" ORDER BY " + strings.Join(qb.orderBy, ", "))
	}
	if qb.limit > 0 {
		qb.query.WriteString(fmt.Sprintf(" LIMIT %d", qb.limit))
	}

	return qb.query.String(), qb.values
}
