package models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringArray is an ordered list of strings stored as a native text[] column
// on PostgreSQL and as its literal representation on SQLite. Element order is
// preserved verbatim on read.
type StringArray []string

// GormDBDataType implements schema.GormDBDataTypeInterface
func (StringArray) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "text[]"
	default:
		return "text"
	}
}

// Value implements driver.Valuer using the PostgreSQL array literal format,
// which the server casts to text[] on insert.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, s := range a {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `"`, `\"`))
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String(), nil
}

// Scan implements sql.Scanner
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into StringArray", value)
	}
	*a = parseArrayLiteral(raw)
	return nil
}

func parseArrayLiteral(raw string) StringArray {
	raw = strings.TrimSpace(raw)
	if len(raw) < 2 || raw[0] != '{' || raw[len(raw)-1] != '}' {
		return StringArray{}
	}
	inner := raw[1 : len(raw)-1]
	if inner == "" {
		return StringArray{}
	}
	var (
		out     StringArray
		cur     strings.Builder
		quoted  bool
		escaped bool
	)
	flush := func() {
		out = append(out, cur.String())
		cur.Reset()
	}
	for _, r := range inner {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
		case r == ',' && !quoted:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}
