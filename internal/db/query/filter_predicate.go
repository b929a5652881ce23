package query

import (
	"fmt"
	"strings"
)

// FilterPredicate builds a WHERE expression with positional placeholders.
// Values never end up in the SQL text.
type FilterPredicate struct {
	predicate strings.Builder
	args      []interface{}
}

func NewFilterPredicate() *FilterPredicate {
	return &FilterPredicate{}
}

func (fp *FilterPredicate) Open() *FilterPredicate {
	fp.predicate.WriteString("(")
	return fp
}

func (fp *FilterPredicate) Close() *FilterPredicate {
	fp.predicate.WriteString(")")
	return fp
}

func (fp *FilterPredicate) And() *FilterPredicate {
	fp.predicate.WriteString(" AND ")
	return fp
}

func (fp *FilterPredicate) Or() *FilterPredicate {
	fp.predicate.WriteString(" OR ")
	return fp
}

func (fp *FilterPredicate) Not() *FilterPredicate {
	fp.predicate.WriteString("NOT ")
	return fp
}

func (fp *FilterPredicate) Equal(column string, value interface{}) *FilterPredicate {
	return fp.compare(column, "=", value)
}

func (fp *FilterPredicate) GreaterThan(column string, value interface{}) *FilterPredicate {
	return fp.compare(column, ">", value)
}

// Like matches pattern anywhere in column, ignoring case.
func (fp *FilterPredicate) Like(column, pattern string) *FilterPredicate {
	fmt.Fprintf(&fp.predicate, "LOWER(%s) LIKE ?", column)
	fp.args = append(fp.args, "%"+strings.ToLower(escapeLike(pattern))+"%")
	return fp
}

func (fp *FilterPredicate) IsNull(column string) *FilterPredicate {
	fmt.Fprintf(&fp.predicate, "%s IS NULL", column)
	return fp
}

// Empty reports whether nothing has been added yet.
func (fp *FilterPredicate) Empty() bool {
	return fp.predicate.Len() == 0
}

func (fp *FilterPredicate) Build() (string, []interface{}) {
	return fp.predicate.String(), fp.args
}

func (fp *FilterPredicate) compare(column, op string, value interface{}) *FilterPredicate {
	fmt.Fprintf(&fp.predicate, "%s %s ?", column, op)
	fp.args = append(fp.args, value)
	return fp
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
