// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl_test

import (
	"reflect"
	"testing"

	"github.com/db47h/hwfft/internal/hdl"
)

func parseAll(in string, conns bool) ([]interface{}, error) {
	var out []interface{}
	p := hdl.Parser{Input: in}
	for {
		v, err := p.Next(conns)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return out, nil
		}
		out = append(out, v)
	}
}

func TestParser(t *testing.T) {
	data := []struct {
		in    string
		conns bool
		res   []interface{}
		err   bool
	}{
		{"", false, nil, false},
		{"  ", true, nil, false},
		{"a, b[4], c", false, []interface{}{
			hdl.Pin{"a", 0},
			hdl.PinIndex{hdl.Pin{"b", 3}, 4},
			hdl.Pin{"c", 9},
		}, false},
		{"a=x,b[0..3]=bus[4..7]", true, []interface{}{
			hdl.PinAssignment{hdl.Pin{"a", 0}, hdl.Pin{"x", 2}},
			hdl.PinAssignment{hdl.PinRange{hdl.Pin{"b", 4}, 0, 3}, hdl.PinRange{hdl.Pin{"bus", 12}, 4, 7}},
		}, false},
		{"tr=0x7f, ti=-128, en=true", true, []interface{}{
			hdl.PinAssignment{hdl.Pin{"tr", 0}, hdl.Literal{127, 3}},
			hdl.PinAssignment{hdl.Pin{"ti", 9}, hdl.Literal{-128, 12}},
			hdl.PinAssignment{hdl.Pin{"en", 18}, hdl.Pin{"true", 21}},
		}, false},
		{"a=x", false, nil, true},
		{"3=a", true, nil, true},
		{"a[", false, nil, true},
		{"a[1..]", false, nil, true},
		{"a[-1]", false, nil, true},
		{"a, ", false, nil, true},
		{"a; b", false, nil, true},
		{"a=0xZZ", true, nil, true},
	}
	for _, d := range data {
		res, err := parseAll(d.in, d.conns)
		if d.err {
			if err == nil {
				t.Errorf("%q: expected error, got %v", d.in, res)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", d.in, err)
			continue
		}
		if !reflect.DeepEqual(res, d.res) {
			t.Errorf("%q: expected %v, got %v", d.in, d.res, res)
		}
	}
}

func TestLexer_eof(t *testing.T) {
	l := hdl.NewLexer("a $ b")
	for _, typ := range []hdl.Type{hdl.Ident, hdl.Raw, hdl.EOF, hdl.EOF} {
		if i := l.Lex(); i.Type != typ {
			t.Fatalf("expected %v, got %v", typ, i)
		}
	}
}
