// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// SetFromDefaults sets the values of the given settings struct
// from `default:` struct field tag values.
func SetFromDefaults(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config.SetFromDefaults: need a pointer to a struct, got %T", cfg)
	}
	v = v.Elem()
	typ := v.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok || !f.IsExported() {
			continue
		}
		if err := setFromString(v.Field(i), def); err != nil {
			return fmt.Errorf("config.SetFromDefaults: field %s: %w", f.Name, err)
		}
	}
	return nil
}

// setFromString sets the value from its string form.
// Slices are given as space or comma separated elements, with
// shell quoting for elements that contain either.
func setFromString(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		v.SetFloat(n)
	case reflect.Slice:
		words, err := shellwords.Parse(s)
		if err != nil {
			return err
		}
		var fs []string
		for _, w := range words {
			if strings.ContainsAny(w, " ") {
				fs = append(fs, w)
				continue
			}
			for _, e := range strings.Split(w, ",") {
				if e != "" {
					fs = append(fs, e)
				}
			}
		}
		sl := reflect.MakeSlice(v.Type(), len(fs), len(fs))
		for i, e := range fs {
			if err := setFromString(sl.Index(i), e); err != nil {
				return err
			}
		}
		v.Set(sl)
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}
