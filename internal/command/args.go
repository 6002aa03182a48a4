package command

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Args 命令参数对象
type Args map[string]interface{}

// Has 判断键是否存在且非空
func (a Args) Has(key string) bool {
	value, ok := a[key]
	return ok && value != nil
}

// String 读取字符串参数，缺省为空串
func (a Args) String(key string) (string, error) {
	value, ok := a[key]
	if !ok || value == nil {
		return "", nil
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string", key)
	}
	return s, nil
}

// StringPtr 读取可选字符串参数
func (a Args) StringPtr(key string) (*string, error) {
	if !a.Has(key) {
		return nil, nil
	}
	s, err := a.String(key)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Int 读取整数参数，缺省为 0
func (a Args) Int(key string) (int, error) {
	value, ok := a[key]
	if !ok || value == nil {
		return 0, nil
	}
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("argument %q must be an integer", key)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("argument %q must be an integer", key)
	}
}

// IntPtr 读取可选整数参数
func (a Args) IntPtr(key string) (*int, error) {
	if !a.Has(key) {
		return nil, nil
	}
	n, err := a.Int(key)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Uint 读取非负整数参数，缺省为 0
func (a Args) Uint(key string) (uint, error) {
	n, err := a.Int(key)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("argument %q must not be negative", key)
	}
	return uint(n), nil
}

// UintPtr 读取可选非负整数参数
func (a Args) UintPtr(key string) (*uint, error) {
	if !a.Has(key) {
		return nil, nil
	}
	n, err := a.Uint(key)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Bool 读取布尔参数，缺省为 false
func (a Args) Bool(key string) (bool, error) {
	value, ok := a[key]
	if !ok || value == nil {
		return false, nil
	}
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("argument %q must be a boolean", key)
	}
	return b, nil
}

// BoolPtr 读取可选布尔参数
func (a Args) BoolPtr(key string) (*bool, error) {
	if !a.Has(key) {
		return nil, nil
	}
	b, err := a.Bool(key)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Decimal 读取十进制数参数，缺省为 0
func (a Args) Decimal(key string) (decimal.Decimal, error) {
	value, ok := a[key]
	if !ok || value == nil {
		return decimal.Zero, nil
	}
	switch v := value.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("argument %q must be a decimal number", key)
		}
		return d, nil
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("argument %q must be a decimal number", key)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("argument %q must be a decimal number", key)
	}
}

// DecimalPtr 读取可选十进制数参数
func (a Args) DecimalPtr(key string) (*decimal.Decimal, error) {
	if !a.Has(key) {
		return nil, nil
	}
	d, err := a.Decimal(key)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Time 读取时间参数（RFC3339 或 2006-01-02），缺省为零值
func (a Args) Time(key string) (time.Time, error) {
	s, err := a.String(key)
	if err != nil {
		return time.Time{}, err
	}
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("argument %q must be an RFC3339 or YYYY-MM-DD timestamp", key)
}

// TimePtr 读取可选时间参数
func (a Args) TimePtr(key string) (*time.Time, error) {
	if !a.Has(key) {
		return nil, nil
	}
	t, err := a.Time(key)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// StringSlice 读取字符串数组参数
func (a Args) StringSlice(key string) ([]string, error) {
	value, ok := a[key]
	if !ok || value == nil {
		return nil, nil
	}
	raw, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("argument %q must be an array of strings", key)
	}
	result := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("argument %q must be an array of strings", key)
		}
		result = append(result, s)
	}
	return result, nil
}

// UintSlice 读取非负整数数组参数
func (a Args) UintSlice(key string) ([]uint, error) {
	value, ok := a[key]
	if !ok || value == nil {
		return nil, nil
	}
	raw, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("argument %q must be an array of ids", key)
	}
	result := make([]uint, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case float64:
			if v < 0 {
				return nil, fmt.Errorf("argument %q must not contain negative ids", key)
			}
			result = append(result, uint(v))
		case int:
			if v < 0 {
				return nil, fmt.Errorf("argument %q must not contain negative ids", key)
			}
			result = append(result, uint(v))
		case json.Number:
			n, err := v.Int64()
			if err != nil || n < 0 {
				return nil, fmt.Errorf("argument %q must be an array of ids", key)
			}
			result = append(result, uint(n))
		default:
			return nil, fmt.Errorf("argument %q must be an array of ids", key)
		}
	}
	return result, nil
}

// Object 读取对象参数
func (a Args) Object(key string) (map[string]interface{}, error) {
	value, ok := a[key]
	if !ok || value == nil {
		return nil, nil
	}
	obj, ok := value.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("argument %q must be an object", key)
	}
	return obj, nil
}

// ObjectList 读取对象数组参数
func (a Args) ObjectList(key string) ([]map[string]interface{}, error) {
	value, ok := a[key]
	if !ok || value == nil {
		return nil, nil
	}
	raw, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("argument %q must be an array of objects", key)
	}
	result := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("argument %q must be an array of objects", key)
		}
		result = append(result, obj)
	}
	return result, nil
}
