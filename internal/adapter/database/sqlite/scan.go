package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"
)

// Scanner maps sql rows onto structs by column name. Columns are matched
// against field names and `db` tags, with snake_case translated to
// CamelCase. Nullable columns map to pointer fields.
type Scanner struct{}

func NewScanner() *Scanner {
	return &Scanner{}
}

func (s *Scanner) ScanRowToStruct(rows *sql.Rows, dest interface{}) error {
	destValue := reflect.ValueOf(dest)

	if destValue.Kind() != reflect.Ptr || destValue.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("dest must be a pointer to struct")
	}

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}

		return sql.ErrNoRows
	}

	return s.scanCurrentRow(rows, destValue.Elem())
}

func (s *Scanner) ScanRowsToSlice(rows *sql.Rows, dest interface{}) error {
	destValue := reflect.ValueOf(dest)

	if destValue.Kind() != reflect.Ptr || destValue.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("dest must be a pointer to slice")
	}

	sliceValue := destValue.Elem()
	elemType := sliceValue.Type().Elem()

	isPtr := elemType.Kind() == reflect.Ptr

	if isPtr {
		elemType = elemType.Elem()
	}

	if elemType.Kind() != reflect.Struct {
		return fmt.Errorf("slice elements must be structs or pointers to structs")
	}

	for rows.Next() {
		elemValue := reflect.New(elemType)

		if err := s.scanCurrentRow(rows, elemValue.Elem()); err != nil {
			return err
		}

		if isPtr {
			sliceValue.Set(reflect.Append(sliceValue, elemValue))
		} else {
			sliceValue.Set(reflect.Append(sliceValue, elemValue.Elem()))
		}
	}

	return rows.Err()
}

func (s *Scanner) scanCurrentRow(rows *sql.Rows, destElem reflect.Value) error {
	columns, err := rows.Columns()

	if err != nil {
		return err
	}

	scanArgs := make([]interface{}, len(columns))

	for i := range scanArgs {
		scanArgs[i] = new(interface{})
	}

	if err := rows.Scan(scanArgs...); err != nil {
		return err
	}

	destType := destElem.Type()

	for i, colName := range columns {
		val := *(scanArgs[i].(*interface{}))

		field, ok := s.findStructField(destType, colName)

		if !ok {
			continue
		}

		if err := s.setFieldValue(destElem.FieldByIndex(field.Index), val); err != nil {
			slog.Warn("Failed to set field", "field", field.Name, "error", err)
		}
	}

	return nil
}

func (s *Scanner) findStructField(structType reflect.Type, colName string) (reflect.StructField, bool) {
	colNameLower := strings.ToLower(colName)

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if tag := field.Tag.Get("db"); tag != "" && strings.ToLower(tag) == colNameLower {
			return field, true
		}
	}

	colNameFlat := strings.ReplaceAll(colNameLower, "_", "")

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if name := strings.ToLower(field.Name); name == colNameLower || name == colNameFlat {
			return field, true
		}
	}

	if field, found := structType.FieldByName(snakeToCamel(colName)); found {
		return field, true
	}

	return reflect.StructField{}, false
}

func snakeToCamel(snake string) string {
	parts := strings.Split(snake, "_")

	for i := range parts {
		if len(parts[i]) > 0 {
			parts[i] = strings.ToUpper(parts[i][:1]) + strings.ToLower(parts[i][1:])
		}
	}

	return strings.Join(parts, "")
}

func (s *Scanner) setFieldValue(field reflect.Value, val interface{}) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	if val == nil {
		return nil
	}

	fieldType := field.Type()

	// Nullable columns map to pointer fields.
	if fieldType.Kind() == reflect.Ptr {
		target := reflect.New(fieldType.Elem())

		if err := s.setFieldValue(target.Elem(), val); err != nil {
			return err
		}

		field.Set(target)

		return nil
	}

	valValue := reflect.ValueOf(val)

	if valValue.Type().AssignableTo(fieldType) {
		field.Set(valValue)
		return nil
	}

	switch fieldType.Kind() {
	case reflect.String:
		switch v := val.(type) {
		case string:
			field.SetString(v)
		case []byte:
			field.SetString(string(v))
		}

		return nil
	case reflect.Bool:
		switch v := val.(type) {
		case bool:
			field.SetBool(v)
		case int64:
			field.SetBool(v != 0)
		}

		return nil
	case reflect.Int, reflect.Int64:
		if v, ok := val.(int64); ok {
			field.SetInt(v)
		}

		return nil
	}

	if fieldType == reflect.TypeOf(time.Time{}) {
		if str, ok := val.(string); ok {
			if parsed, err := parseTime(str); err == nil {
				field.Set(reflect.ValueOf(parsed))
			} else {
				slog.Warn("Failed to parse time", "value", str, "error", err)
			}
		}

		return nil
	}

	return fmt.Errorf("unsupported column type %T for field %s", val, fieldType)
}

func parseTime(str string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, str); err == nil {
		return parsed, nil
	}

	return time.Parse("2006-01-02 15:04:05", str)
}
