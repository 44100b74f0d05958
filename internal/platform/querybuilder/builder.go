// Package querybuilder renders the small set of postgres statements the
// snapshot repositories need: filtered selects and multi-row upserts.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

type Condition interface {
	appendSQL(buf *strings.Builder, args *[]any)
}

type compareCondition struct {
	column string
	op     string
	value  any
}

func Eq(column string, value any) Condition {
	return compareCondition{column: column, op: "=", value: value}
}

func Gte(column string, value any) Condition {
	return compareCondition{column: column, op: ">=", value: value}
}

func Lt(column string, value any) Condition {
	return compareCondition{column: column, op: "<", value: value}
}

func (c compareCondition) appendSQL(buf *strings.Builder, args *[]any) {
	*args = append(*args, c.value)
	fmt.Fprintf(buf, "%s %s $%d", c.column, c.op, len(*args))
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var buf strings.Builder
	buf.WriteString("SELECT ")
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(" FROM ")
	buf.WriteString(b.table)

	args := make([]any, 0, len(b.where))
	for i, c := range b.where {
		if i == 0 {
			buf.WriteString(" WHERE ")
		} else {
			buf.WriteString(" AND ")
		}
		c.appendSQL(&buf, &args)
	}
	if len(b.orderBy) > 0 {
		buf.WriteString(" ORDER BY ")
		buf.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		buf.WriteString(" LIMIT ")
		buf.WriteString(strconv.Itoa(b.limit))
	}

	return buf.String(), args, nil
}

type InsertBuilder struct {
	table        string
	columns      []string
	rows         [][]any
	conflictCols []string
	changedCols  []string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// OnConflict turns the insert into an upsert keyed by columns.
func (b *InsertBuilder) OnConflict(columns ...string) *InsertBuilder {
	b.conflictCols = append([]string(nil), columns...)
	return b
}

// UpdateWhen restricts the conflict update to rows where at least one of
// columns differs from the incoming value. Unchanged rows keep their
// updated_at.
func (b *InsertBuilder) UpdateWhen(columns ...string) *InsertBuilder {
	b.changedCols = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "INSERT INTO %s (%s) VALUES ", b.table, strings.Join(b.columns, ", "))

	args := make([]any, 0, len(b.rows)*len(b.columns))
	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				buf.WriteString(", ")
			}
			args = append(args, value)
			buf.WriteString("$" + strconv.Itoa(len(args)))
		}
		buf.WriteString(")")
	}

	if len(b.conflictCols) > 0 {
		b.appendConflictClause(&buf)
	}

	return buf.String(), args, nil
}

func (b *InsertBuilder) appendConflictClause(buf *strings.Builder) {
	keys := make(map[string]struct{}, len(b.conflictCols))
	for _, col := range b.conflictCols {
		keys[col] = struct{}{}
	}
	var updates []string
	for _, col := range b.columns {
		if _, isKey := keys[col]; !isKey {
			updates = append(updates, col)
		}
	}

	fmt.Fprintf(buf, " ON CONFLICT (%s)", strings.Join(b.conflictCols, ", "))
	if len(updates) == 0 {
		buf.WriteString(" DO NOTHING")
		return
	}
	sets := make([]string, 0, len(updates))
	for _, col := range updates {
		sets = append(sets, col+" = EXCLUDED."+col)
	}
	buf.WriteString(" DO UPDATE SET ")
	buf.WriteString(strings.Join(sets, ", "))

	if len(b.changedCols) == 0 {
		return
	}
	guards := make([]string, 0, len(b.changedCols))
	for _, col := range b.changedCols {
		guards = append(guards, b.table+"."+col+" IS DISTINCT FROM EXCLUDED."+col)
	}
	buf.WriteString(" WHERE ")
	buf.WriteString(strings.Join(guards, " OR "))
}
