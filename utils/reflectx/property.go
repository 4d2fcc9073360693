// File: property.go
// Title: Property Access
// Description: Reading and writing struct fields and map entries by dotted
//              path, with an explicit accessor interface that takes
//              precedence over reflection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package reflectx

import (
	"reflect"
	"strings"

	"github.com/msto63/extkit/core/errors"
	"github.com/msto63/extkit/utils/convx"
)

// PropertyAccessor lets a type expose named properties without reflection.
// GetPropertyValue and SetPropertyValue consult it before falling back to
// exported struct fields.
type PropertyAccessor interface {
	GetProperty(name string) (any, bool)
	SetProperty(name string, value any) error
}

// GetPropertyValue resolves a dotted path such as "Server.Port" against obj.
// Each segment is looked up through PropertyAccessor, an exported struct
// field or a string-keyed map entry. Nil pointers along the way are reported
// as nil argument errors.
func GetPropertyValue(obj any, path string) (any, error) {
	if obj == nil {
		return nil, errors.NilArgument(errors.ModuleReflectx, "GetPropertyValue", "obj")
	}
	segments, err := splitPath("GetPropertyValue", path)
	if err != nil {
		return nil, err
	}

	current := obj
	for _, name := range segments {
		next, err := property(current, name)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// HasProperty reports whether GetPropertyValue would succeed
func HasProperty(obj any, path string) bool {
	_, err := GetPropertyValue(obj, path)
	return err == nil
}

// SetPropertyValue assigns value to the property at path. obj must be a
// pointer (or a PropertyAccessor) so the change is visible to the caller.
// Nil pointers to structs along the path are allocated. String values are
// converted to the target type with convx; other values must be assignable
// or convertible.
func SetPropertyValue(obj any, path string, value any) error {
	if obj == nil {
		return errors.NilArgument(errors.ModuleReflectx, "SetPropertyValue", "obj")
	}
	segments, err := splitPath("SetPropertyValue", path)
	if err != nil {
		return err
	}

	if pa, ok := obj.(PropertyAccessor); ok && !IsNil(obj) {
		return setViaAccessor(pa, segments, value)
	}

	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return errors.InvalidArgument(errors.ModuleReflectx, "SetPropertyValue", "obj", TypeName(obj), "must be a non-nil pointer")
	}

	for i, name := range segments {
		last := i == len(segments)-1

		if i > 0 {
			if pa, ok := accessorOf(v); ok {
				return setViaAccessor(pa, segments[i:], value)
			}
		}

		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !v.CanSet() {
					return errors.NilArgument(errors.ModuleReflectx, "SetPropertyValue", strings.Join(segments[:i], "."))
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}

		switch v.Kind() {
		case reflect.Struct:
			field, ok := exportedField(v, name)
			if !ok {
				return errors.ReflectxPropertyNotFound(v.Type().String(), name)
			}
			if last {
				return assign(field, value, path)
			}
			v = field
		case reflect.Map:
			if v.Type().Key().Kind() != reflect.String {
				return errors.ReflectxPropertyNotFound(v.Type().String(), name)
			}
			key := reflect.ValueOf(name).Convert(v.Type().Key())
			if !last {
				entry := v.MapIndex(key)
				if !entry.IsValid() {
					return errors.ReflectxPropertyNotFound(v.Type().String(), name)
				}
				return SetPropertyValue(entry.Interface(), strings.Join(segments[i+1:], "."), value)
			}
			if v.IsNil() {
				return errors.NilArgument(errors.ModuleReflectx, "SetPropertyValue", path)
			}
			elem := reflect.New(v.Type().Elem()).Elem()
			if err := assign(elem, value, path); err != nil {
				return err
			}
			v.SetMapIndex(key, elem)
			return nil
		default:
			return errors.ReflectxPropertyNotFound(v.Type().String(), name)
		}
	}
	return nil
}

// accessorOf returns v (or its address) as a PropertyAccessor
func accessorOf(v reflect.Value) (PropertyAccessor, bool) {
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, false
	}
	if v.Kind() != reflect.Pointer && v.CanAddr() {
		v = v.Addr()
	}
	if !v.CanInterface() {
		return nil, false
	}
	pa, ok := v.Interface().(PropertyAccessor)
	return pa, ok
}

func setViaAccessor(pa PropertyAccessor, segments []string, value any) error {
	if len(segments) == 1 {
		return pa.SetProperty(segments[0], value)
	}
	next, found := pa.GetProperty(segments[0])
	if !found {
		return errors.ReflectxPropertyNotFound(TypeName(pa), segments[0])
	}
	return SetPropertyValue(next, strings.Join(segments[1:], "."), value)
}

func splitPath(operation, path string) ([]string, error) {
	segments := strings.Split(path, ".")
	for _, s := range segments {
		if s == "" {
			return nil, errors.InvalidArgument(errors.ModuleReflectx, operation, "path", path, "must be a dotted list of non-empty names")
		}
	}
	return segments, nil
}

func property(obj any, name string) (any, error) {
	if pa, ok := obj.(PropertyAccessor); ok {
		if v, found := pa.GetProperty(name); found {
			return v, nil
		}
		return nil, errors.ReflectxPropertyNotFound(TypeName(obj), name)
	}

	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, errors.NilArgument(errors.ModuleReflectx, "GetPropertyValue", name)
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		if field, ok := exportedField(v, name); ok {
			return field.Interface(), nil
		}
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			entry := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
			if entry.IsValid() {
				return entry.Interface(), nil
			}
		}
	}
	return nil, errors.ReflectxPropertyNotFound(TypeName(obj), name)
}

func exportedField(v reflect.Value, name string) (reflect.Value, bool) {
	sf, ok := v.Type().FieldByName(name)
	if !ok || !sf.IsExported() {
		return reflect.Value{}, false
	}
	field, err := v.FieldByIndexErr(sf.Index)
	if err != nil {
		return reflect.Value{}, false
	}
	return field, true
}

// assign stores value into target, converting strings with convx
func assign(target reflect.Value, value any, path string) error {
	if !target.CanSet() {
		return errors.InvalidArgument(errors.ModuleReflectx, "SetPropertyValue", "path", path, "property is not settable")
	}
	if value == nil {
		target.SetZero()
		return nil
	}

	src := reflect.ValueOf(value)
	switch {
	case src.Type().AssignableTo(target.Type()):
		target.Set(src)
	case src.Kind() == reflect.String && target.Kind() != reflect.String:
		converted, err := convx.ToType(src.String(), target.Type())
		if err != nil {
			return err
		}
		target.Set(reflect.ValueOf(converted))
	case src.Type().ConvertibleTo(target.Type()) && !lossyConversion(src, target.Type()):
		target.Set(src.Convert(target.Type()))
	default:
		return errors.InvalidArgument(errors.ModuleReflectx, "SetPropertyValue", "value", TypeName(value),
			"not assignable to "+target.Type().String())
	}
	return nil
}

// lossyConversion rejects reflect conversions that reinterpret rather than
// convert, such as int to string
func lossyConversion(src reflect.Value, target reflect.Type) bool {
	return target.Kind() == reflect.String && src.Kind() != reflect.String
}
