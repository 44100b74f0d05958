package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	sonic "github.com/bytedance/sonic"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// encodeSnapshot stores canonical values as JSONB so the schema does not
// track every optional field.
func encodeSnapshot(value any) (string, error) {
	raw, err := sonic.MarshalString(value)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return raw, nil
}

func decodeSnapshot[T any](raw string) (T, error) {
	var out T
	if err := sonic.UnmarshalString(raw, &out); err != nil {
		return out, fmt.Errorf("decode snapshot: %w", err)
	}
	return out, nil
}

func decodeRows[R any, T any](rows []R, snapshot func(R) string) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		item, err := decodeSnapshot[T](snapshot(row))
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// lastByKey drops earlier duplicates; one upsert statement cannot touch a row twice.
func lastByKey[T any](items []T, key func(T) string) []T {
	index := make(map[string]int, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if k == "" {
			continue
		}
		if pos, ok := index[k]; ok {
			out[pos] = item
			continue
		}
		index[k] = len(out)
		out = append(out, item)
	}
	return out
}

func nullableString(value string) *string {
	if value == "" {
		return nil
	}
	v := value
	return &v
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}
