package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

var (
	decimalType    = reflect.TypeOf(decimal.Decimal{})
	decimalPtrType = reflect.TypeOf(&decimal.Decimal{})
	timeType       = reflect.TypeOf(time.Time{})
	timePtrType    = reflect.TypeOf(&time.Time{})
	int64Type      = reflect.TypeOf(int64(0))
)

// dateLayouts are tried in order for date fields.
var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// Decode normalizes a raw JSON request body into out and validates it.
//
// Keys match struct json tags regardless of camelCase, snake_case or kebab-case.
// Numbers may arrive as JSON numbers or numeric strings; missing or non-numeric
// amounts and quantities become zero. Dates accept RFC 3339 or YYYY-MM-DD.
func Decode(body io.Reader, out any) error {
	raw, err := io.ReadAll(body)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrValidation, "could not read request body", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return apperrors.NewAppError(apperrors.ErrValidation, "request body must be a JSON object", err)
	}

	if err := DecodeMap(fields, out); err != nil {
		return err
	}
	return Validate(out)
}

// DecodeMap maps an already parsed JSON object onto out without validating it.
func DecodeMap(fields map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
		MatchName:        matchFieldName,
		DecodeHook:       normalizeHook,
	})
	if err != nil {
		return fmt.Errorf("failed to build request decoder: %w", err)
	}
	if err := decoder.Decode(fields); err != nil {
		return apperrors.NewAppError(apperrors.ErrValidation, "malformed request body", err)
	}
	return nil
}

func matchFieldName(mapKey, fieldName string) bool {
	return canonicalKey(mapKey) == canonicalKey(fieldName)
}

func canonicalKey(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer("_", "", "-", "").Replace(s)
}

// normalizeHook coerces loosely typed JSON values into the request field types.
// Pointer targets receive the element value; mapstructure allocates the pointer.
func normalizeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	switch to {
	case decimalType:
		return toDecimal(data), nil
	case decimalPtrType:
		if isBlank(data) {
			return nil, nil
		}
		return toDecimal(data), nil
	case int64Type:
		return toInt64(data), nil
	case timePtrType:
		if isBlank(data) {
			return nil, nil
		}
		return toTime(data)
	case timeType:
		if isBlank(data) {
			return time.Time{}, nil
		}
		return toTime(data)
	}
	return data, nil
}

func isBlank(data any) bool {
	s, ok := data.(string)
	return ok && strings.TrimSpace(s) == ""
}

func toDecimal(data any) decimal.Decimal {
	switch v := data.(type) {
	case json.Number:
		if d, err := decimal.NewFromString(v.String()); err == nil {
			return d
		}
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil {
			return d
		}
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Zero
}

func toInt64(data any) int64 {
	var s string
	switch v := data.(type) {
	case json.Number:
		s = v.String()
	case string:
		s = strings.TrimSpace(v)
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	default:
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}

func toTime(data any) (time.Time, error) {
	switch v := data.(type) {
	case time.Time:
		return v.UTC(), nil
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return time.Time{}, errors.New("date must be a string")
}
