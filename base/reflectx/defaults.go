// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides reflection helpers for configuration structs.
package reflectx

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// NonPointerValue returns a non-pointer version of the given value.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// SetFromDefaultTags sets the values of the fields of the given struct
// pointer from their `default:` struct field tags. Fields without a tag
// are left unchanged, and struct fields without a tag are set
// recursively. Defaults starting with [ or { are parsed as JSON, with
// single quotes allowed in place of double quotes. It returns an error
// for the first field that could not be set, after setting all others.
func SetFromDefaultTags(obj any) error {
	ov := reflect.ValueOf(obj)
	if !ov.IsValid() || (ov.Kind() == reflect.Pointer && ov.IsNil()) {
		return nil
	}
	if ov.Kind() != reflect.Pointer {
		return fmt.Errorf("reflectx.SetFromDefaultTags: need a pointer, not %T", obj)
	}
	val := NonPointerValue(ov)
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: need a struct, not %T", obj)
	}
	typ := val.Type()
	var err error
	for i := range typ.NumField() {
		f := typ.Field(i)
		fv := val.Field(i)
		if !f.IsExported() {
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if f.Type.Kind() == reflect.Struct && def == "" {
			if serr := SetFromDefaultTags(fv.Addr().Interface()); err == nil {
				err = serr
			}
			continue
		}
		if !ok {
			continue
		}
		if serr := SetFromString(fv, def); serr != nil && err == nil {
			err = fmt.Errorf("reflectx.SetFromDefaultTags: field %s of %s from %q: %w", f.Name, typ.Name(), def, serr)
		}
	}
	return err
}

// SetFromString sets the given settable value from the given string.
// Values implementing [encoding.TextUnmarshaler] use it, basic kinds
// are parsed with [strconv], and defaults starting with [ or { are
// parsed as JSON.
func SetFromString(v reflect.Value, s string) error {
	if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	if s != "" && (s[0] == '[' || s[0] == '{') {
		s = strings.ReplaceAll(s, `'`, `"`)
		return json.Unmarshal([]byte(s), v.Addr().Interface())
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("unsupported kind %s", v.Kind())
	}
	return nil
}
