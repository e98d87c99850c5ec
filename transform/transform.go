// Package transform mutates string content recursively within message
// structs. Its main use is applying XML whitespace collapsing to a
// whole document before validation.
package transform

import (
	"encoding/xml"
	"reflect"
	"strings"
)

var xmlNameType = reflect.TypeOf(xml.Name{})

// Collapse applies XML Schema whiteSpace="collapse" semantics: leading
// and trailing whitespace is removed and internal runs are squeezed to
// a single space.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StructCollapse runs [Collapse] on all string fields in the struct
// recursively, including nested structs, pointer fields and slices.
func StructCollapse(v any) {
	stringFunc(v, Collapse)
}

// StructTrimSpace runs [strings.TrimSpace] on all string fields in the
// struct recursively.
func StructTrimSpace(v any) {
	stringFunc(v, strings.TrimSpace)
}

// StructStringFunc applies f to every string field in the struct
// recursively.
func StructStringFunc(v any, f func(string) string) {
	stringFunc(v, f)
}

func stringFunc(a any, f func(string) string) {
	v := reflect.ValueOf(a)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	// xml.Name carries namespace bookkeeping, not message content.
	if v.Type() == xmlNameType {
		return
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}
		switch field.Kind() {
		case reflect.String:
			field.SetString(f(field.String()))
		case reflect.Struct:
			stringFunc(field.Addr().Interface(), f)
		case reflect.Pointer:
			if field.IsNil() {
				continue
			}
			switch field.Elem().Kind() {
			case reflect.String:
				field.Elem().SetString(f(field.Elem().String()))
			case reflect.Struct:
				stringFunc(field.Interface(), f)
			}
		case reflect.Slice:
			for j := 0; j < field.Len(); j++ {
				elem := field.Index(j)
				switch elem.Kind() {
				case reflect.String:
					elem.SetString(f(elem.String()))
				case reflect.Struct:
					stringFunc(elem.Addr().Interface(), f)
				case reflect.Pointer:
					if !elem.IsNil() {
						switch elem.Elem().Kind() {
						case reflect.String:
							elem.Elem().SetString(f(elem.Elem().String()))
						case reflect.Struct:
							stringFunc(elem.Interface(), f)
						}
					}
				}
			}
		}
	}
}
