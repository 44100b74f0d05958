package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// UpsertModels prepares a multi-row upsert from db-tagged structs of the
// same type. Fields tagged readonly are left to column defaults.
func UpsertModels[T any](table string, models []T, conflictColumns ...string) (*InsertBuilder, error) {
	if len(models) == 0 {
		return nil, fmt.Errorf("upsert models are required")
	}

	builder := InsertInto(table).OnConflict(conflictColumns...)
	for i, model := range models {
		cols, vals, err := columnsAndValues(model)
		if err != nil {
			return nil, fmt.Errorf("model %d: %w", i, err)
		}
		if i == 0 {
			builder.Columns(cols...)
		}
		builder.Values(vals...)
	}
	return builder, nil
}

func columnsAndValues(model any) ([]string, []any, error) {
	value := reflect.Indirect(reflect.ValueOf(model))
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be a struct, got %s", value.Kind())
	}

	typ := value.Type()
	var cols []string
	var vals []any
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		col, opts, _ := strings.Cut(field.Tag.Get("db"), ",")
		col = strings.TrimSpace(col)
		if col == "" || col == "-" || strings.Contains(opts, "readonly") {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}
