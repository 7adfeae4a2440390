// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwfft

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Updater is the interface that custom components built using reflection must implement.
// See MakePart.
//
type Updater interface {
	Update(*Circuit)
}

// MakePart wraps an Updater into a custom component.
// Input/output pins are identified by field tags.
//
// The field tag must be `hw:"in"` or `hw:"out"` to identify input and output
// pins. By default, the pin name is the field name in lowercase. A specific
// pin name can be forced by adding it in the tag: `hw:"in,pin_name"`.
//
// Pin fields must be of type int, buses arrays of int. Each mounted instance
// starts as a copy of t, so untagged fields can carry configuration.
//
func MakePart(t Updater) *PartSpec {
	proto := reflect.ValueOf(t)
	typ := proto.Type()
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
		if proto.IsNil() {
			proto = reflect.Zero(typ)
		} else {
			proto = proto.Elem()
		}
	}
	if k := typ.Kind(); k != reflect.Struct {
		panic(errors.Errorf("unsupported type %q for %q", k, typ.Name()))
	}

	sp := &PartSpec{
		Name: typ.Name(),
	}
	fields := pinFields(typ)
	for _, f := range fields {
		pins := f.pins()
		if f.input {
			sp.Inputs = append(sp.Inputs, pins...)
		} else {
			sp.Outputs = append(sp.Outputs, pins...)
		}
	}
	sp.Mount = func(s *Socket) []Component {
		v := reflect.New(typ)
		e := v.Elem()
		e.Set(proto)
		for _, f := range fields {
			fv := e.Field(f.index)
			if f.size < 0 {
				fv.SetInt(int64(s.Pin(f.name)))
				continue
			}
			for i := 0; i < f.size; i++ {
				fv.Index(i).SetInt(int64(s.Pin(busPinName(f.name, i))))
			}
		}
		u := v.Interface().(Updater)
		return []Component{u.Update}
	}
	return sp
}

type pinField struct {
	index int
	name  string
	input bool
	size  int // bus size, -1 for a single pin
}

func (f *pinField) pins() []string {
	if f.size < 0 {
		return []string{f.name}
	}
	pins := make([]string, f.size)
	for i := range pins {
		pins[i] = busPinName(f.name, i)
	}
	return pins
}

func pinFields(typ reflect.Type) []pinField {
	var fields []pinField
	n := typ.NumField()
	for i := 0; i < n; i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("hw")
		if !ok {
			continue
		}
		pf := pinField{index: i, name: strings.ToLower(f.Name), size: -1}
		tv := strings.Split(tag, ",")
		if len(tv) > 1 && tv[1] != "" {
			pf.name = tv[1]
		}
		switch tv[0] {
		case "in":
			pf.input = true
		case "out":
		default:
			panic(errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name()))
		}
		if f.PkgPath != "" {
			panic(errors.Errorf("unexported pin field %q in %q", f.Name, typ.Name()))
		}

		ft := f.Type
		switch k := ft.Kind(); {
		case k == reflect.Array && ft.Elem().Kind() == reflect.Int:
			pf.size = ft.Len()
		case k == reflect.Int:
		default:
			panic(errors.Errorf("unsupported type %q for field %q in %q", k, f.Name, typ.Name()))
		}
		fields = append(fields, pf)
	}
	return fields
}
