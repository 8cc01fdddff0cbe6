package dom

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// ClassNames joins a composable class-list value into a single class string.
//
// Strings and non-zero numbers are kept, slices and arrays are flattened,
// maps keep the keys whose values are truthy (in sorted key order), and nil,
// false, zero and empty strings are dropped.
func ClassNames(values ...any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = appendClass(parts, v)
	}
	return strings.Join(parts, " ")
}

// IsClassList reports whether v needs ClassNames normalization rather than
// direct assignment.
func IsClassList(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

func appendClass(parts []string, v any) []string {
	switch x := v.(type) {
	case nil:
		return parts
	case string:
		if x != "" {
			parts = append(parts, x)
		}
		return parts
	case bool:
		return parts
	case int:
		if x != 0 {
			parts = append(parts, strconv.Itoa(x))
		}
		return parts
	case float64:
		if x != 0 {
			parts = append(parts, strconv.FormatFloat(x, 'f', -1, 64))
		}
		return parts
	case []string:
		for _, s := range x {
			parts = appendClass(parts, s)
		}
		return parts
	case []any:
		for _, e := range x {
			parts = appendClass(parts, e)
		}
		return parts
	case map[string]bool:
		for _, k := range sortedKeys(x) {
			if x[k] {
				parts = append(parts, k)
			}
		}
		return parts
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if truthy(x[k]) {
				parts = append(parts, k)
			}
		}
		return parts
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			parts = appendClass(parts, rv.Index(i).Interface())
		}
		return parts
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Float32:
		if !rv.IsZero() {
			parts = append(parts, fmt.Sprint(v))
		}
		return parts
	}
	if s := fmt.Sprint(v); s != "" {
		parts = append(parts, s)
	}
	return parts
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case float64:
		return x != 0
	}
	return !reflect.ValueOf(v).IsZero()
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
