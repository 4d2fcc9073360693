// File: reflectx.go
// Title: Reflection Helpers
// Description: Method invocation by name, default tag initialization and
//              small type inspection helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package reflectx

import (
	"fmt"
	"reflect"
	"strings"

	exterr "github.com/msto63/extkit/core/error"
	"github.com/msto63/extkit/core/errors"
	"github.com/msto63/extkit/utils/convx"
)

// DefaultTag is the struct tag read by AutoInitialize
const DefaultTag = "default"

// TypeName returns the Go type of v as written in source, "<nil>" for nil
func TypeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}

// IsNil reports whether v is nil or a nil pointer, map, slice, channel,
// function or interface
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// InvokeMethod calls the exported method name on obj with args and returns
// its results. A nil arg passes the zero value of the parameter type. Errors
// returned by the method itself are part of the results, not of the error.
func InvokeMethod(obj any, name string, args ...any) ([]any, error) {
	if obj == nil {
		return nil, errors.NilArgument(errors.ModuleReflectx, "InvokeMethod", "obj")
	}
	method := reflect.ValueOf(obj).MethodByName(name)
	if !method.IsValid() {
		return nil, errors.ReflectxMethodNotFound(TypeName(obj), name)
	}

	mt := method.Type()
	if (!mt.IsVariadic() && len(args) != mt.NumIn()) || (mt.IsVariadic() && len(args) < mt.NumIn()-1) {
		return nil, errors.InvalidArgument(errors.ModuleReflectx, "InvokeMethod", "args", len(args),
			fmt.Sprintf("%s.%s takes %d arguments", TypeName(obj), name, mt.NumIn()))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if mt.IsVariadic() && i >= mt.NumIn()-1 {
			pt = mt.In(mt.NumIn() - 1).Elem()
		} else {
			pt = mt.In(i)
		}
		if arg == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(arg)
		switch {
		case av.Type().AssignableTo(pt):
			in[i] = av
		case av.Type().ConvertibleTo(pt) && pt.Kind() != reflect.String:
			in[i] = av.Convert(pt)
		default:
			return nil, errors.InvalidArgument(errors.ModuleReflectx, "InvokeMethod", fmt.Sprintf("args[%d]", i),
				TypeName(arg), "want "+pt.String())
		}
	}

	out := method.Call(in)
	results := make([]any, len(out))
	for i, r := range out {
		results[i] = r.Interface()
	}
	return results, nil
}

// AutoInitialize walks the struct behind ptr and sets every zero-valued
// exported field carrying a `default:"..."` tag. Values are parsed with
// convx; slice fields take a comma-separated list. Nested structs and
// non-nil struct pointers are initialized recursively.
//
//	type Server struct {
//		Host    string        `default:"localhost"`
//		Timeout time.Duration `default:"30s"`
//		Tags    []string      `default:"a,b"`
//	}
func AutoInitialize(ptr any) error {
	v := reflect.ValueOf(ptr)
	if ptr == nil || v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return errors.InvalidArgument(errors.ModuleReflectx, "AutoInitialize", "ptr", TypeName(ptr), "must be a non-nil pointer to a struct")
	}
	return initStruct(v.Elem(), v.Elem().Type().Name())
}

func initStruct(v reflect.Value, prefix string) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		field := v.Field(i)
		path := prefix + "." + sf.Name

		tag, hasTag := sf.Tag.Lookup(DefaultTag)
		if hasTag && field.IsZero() {
			if err := setDefault(field, tag); err != nil {
				return exterr.Wrapf(err, "default for %s", path)
			}
			continue
		}

		switch {
		case field.Kind() == reflect.Struct:
			if err := initStruct(field, path); err != nil {
				return err
			}
		case field.Kind() == reflect.Pointer && !field.IsNil() && field.Elem().Kind() == reflect.Struct:
			if err := initStruct(field.Elem(), path); err != nil {
				return err
			}
		}
	}
	return nil
}

func setDefault(field reflect.Value, tag string) error {
	if field.Kind() != reflect.Slice {
		converted, err := convx.ToType(tag, field.Type())
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(converted).Convert(field.Type()))
		return nil
	}

	parts := strings.Split(tag, ",")
	slice := reflect.MakeSlice(field.Type(), 0, len(parts))
	for _, p := range parts {
		elem, err := convx.ToType(strings.TrimSpace(p), field.Type().Elem())
		if err != nil {
			return err
		}
		slice = reflect.Append(slice, reflect.ValueOf(elem).Convert(field.Type().Elem()))
	}
	field.Set(slice)
	return nil
}
