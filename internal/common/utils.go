package common

import (
	"reflect"
	"strings"
	"unicode"
)

// EmbeddedFieldTags returns selected struct tags from the first anonymous
// field of the named type in t. Group metadata (name, desc) is declared as
// tags on the embedded marker field, so the tags live on the outer struct.
func EmbeddedFieldTags(t reflect.Type, typeName string, keys ...string) map[string]string {
	tags := make(map[string]string)
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.Anonymous || field.Type.Name() != typeName {
			continue
		}
		for _, key := range keys {
			if val := field.Tag.Get(key); val != "" {
				tags[key] = val
			}
		}
		break
	}
	return tags
}

// ArgsIndexOf returns the index of the first occurrence of s in args, or -1 if not found.
func ArgsIndexOf(args []string, s string) int {
	for i, arg := range args {
		if arg == s {
			return i
		}
	}
	return -1
}

// IsStructPtr checks if the provided value is a pointer to a struct.
func IsStructPtr(v any) bool {
	t := reflect.TypeOf(v)
	return t != nil && t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct
}

// GetStructType returns the reflect.Type of the underlying struct pointer.
func GetStructType(v any) reflect.Type {
	return reflect.TypeOf(v).Elem()
}

// KebabCase converts a CamelCase method name to its kebab-case display name,
// so ReturnNonZero becomes return-non-zero and HTTPServer becomes http-server.
func KebabCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FieldName converts a kebab-case option name to the exported Go field name
// it binds to, so dry-run becomes DryRun.
func FieldName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if r == '-' || r == '_' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
