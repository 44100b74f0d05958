package sportradar

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// Number is a loosely typed numeric field. It accepts a JSON number, a
// numeric string, or null. Anything that cannot be coerced leaves the value
// unset instead of failing the surrounding record.
type Number struct {
	Value float64
	Set   bool
}

func NewNumber(v float64) Number {
	return Number{Value: v, Set: true}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '"' {
		var text string
		if err := sonic.Unmarshal(trimmed, &text); err != nil {
			return nil
		}
		if parsed, ok := parseNumeric(text); ok {
			*n = NewNumber(parsed)
		}
		return nil
	}

	var direct float64
	if err := sonic.Unmarshal(trimmed, &direct); err != nil {
		return nil
	}
	*n = NewNumber(direct)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Set {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.Value, 'f', -1, 64)), nil
}

func (n Number) Float() *float64 {
	if !n.Set {
		return nil
	}
	v := n.Value
	return &v
}

// Int truncates toward zero. Fractional values such as 23.0 are accepted.
func (n Number) Int() *int {
	if !n.Set || math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
		return nil
	}
	v := int(n.Value)
	return &v
}

// Text is a string field the provider sometimes sends as a number.
type Text struct {
	Value string
	Set   bool
}

func NewText(v string) Text {
	return Text{Value: v, Set: true}
}

func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '"' {
		var text string
		if err := sonic.Unmarshal(trimmed, &text); err != nil {
			return nil
		}
		*t = NewText(text)
		return nil
	}

	var direct float64
	if err := sonic.Unmarshal(trimmed, &direct); err != nil {
		return nil
	}
	*t = NewText(strconv.FormatFloat(direct, 'f', -1, 64))
	return nil
}

func (t Text) MarshalJSON() ([]byte, error) {
	if !t.Set {
		return []byte("null"), nil
	}
	return sonic.Marshal(t.Value)
}

func (t Text) Ptr() *string {
	if !t.Set {
		return nil
	}
	v := t.Value
	return &v
}

// Int parses the text as an integer, returning nil when it is not one.
func (t Text) Int() *int {
	if !t.Set {
		return nil
	}
	parsed, ok := parseNumeric(t.Value)
	if !ok || parsed != math.Trunc(parsed) {
		return nil
	}
	v := int(parsed)
	return &v
}

func parseNumeric(raw string) (float64, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, false
	}
	return parsed, true
}
