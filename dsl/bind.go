package dsl

import (
	"fmt"
	"reflect"

	punt "github.com/maartenvanvliet/punt"
)

// Bind builds an OfMap over fields and binds the assembled map onto struct
// type T, resolving external keys per punt.ResolveStructKey. Map entries
// without a matching struct field are dropped; struct fields without a
// matching entry keep their zero value (free function for Go version
// compatibility).
func Bind[T any](fields ...FieldSpec) (punt.Parser[T], error) {
	var zero punt.Parser[T]
	var t T
	rt := reflect.TypeOf(t)
	isPtr := false
	if rt != nil && rt.Kind() == reflect.Pointer {
		isPtr = true
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return zero, fmt.Errorf("punt: Bind[T] requires a struct type, got %v", reflect.TypeOf(t))
	}
	idxByKey := make(map[string]int)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := punt.ResolveStructKey(sf)
		if name == "-" || name == "" {
			continue
		}
		idxByKey[name] = i
	}
	base := OfMap(fields...)
	parse := func(in punt.Value) (T, error) {
		var zeroT T
		m, err := base.Parse(in)
		if err != nil {
			return zeroT, err
		}
		ptr := reflect.New(rt)
		rv := ptr.Elem()
		for key, val := range m {
			idx, ok := idxByKey[key]
			if !ok {
				continue
			}
			fv := rv.Field(idx)
			if !fv.CanSet() {
				continue
			}
			// Gracefully handle nulls for nillable fields.
			if val == nil {
				switch fv.Kind() {
				case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
					fv.Set(reflect.Zero(fv.Type()))
				default:
					// leave zero value for non-nillable fields
				}
				continue
			}
			vv := reflect.ValueOf(val)
			if vv.Type().AssignableTo(fv.Type()) {
				fv.Set(vv)
			} else if vv.Type().ConvertibleTo(fv.Type()) {
				fv.Set(vv.Convert(fv.Type()))
			} else {
				return zeroT, &punt.CustomError{
					Reason: fmt.Sprintf("field %q: cannot assign %T to %s", key, val, fv.Type()),
				}
			}
		}
		if isPtr {
			return ptr.Interface().(T), nil
		}
		return rv.Interface().(T), nil
	}
	if base.HasGenerator() {
		return punt.Build(parse, base.Generate()), nil
	}
	return punt.Build(parse), nil
}

// MustBind is like Bind but panics on error.
func MustBind[T any](fields ...FieldSpec) punt.Parser[T] {
	p, err := Bind[T](fields...)
	if err != nil {
		panic(err)
	}
	return p
}
