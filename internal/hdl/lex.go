// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Pos is a byte offset in the input.
//
type Pos int

// Type is a token type.
//
type Type int

// Tokens
const (
	EOF Type = iota
	Raw
	Ident
	BracketOpen
	BracketClose
	Comma
	Int
	Range
	Equal
)

var typeNames = [...]string{
	EOF:          "end of input",
	Raw:          "character",
	Ident:        "identifier",
	BracketOpen:  "'['",
	BracketClose: "']'",
	Comma:        "','",
	Int:          "integer",
	Range:        "'..'",
	Equal:        "'='",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Item is a lexed token. Value is a string for identifiers and raw
// characters, an int64 for integers.
//
type Item struct {
	Type  Type
	Pos   Pos
	Value interface{}
}

func (i Item) String() string {
	switch i.Type {
	case Ident:
		return "identifier " + strconv.Quote(i.Value.(string))
	case Raw:
		return "character " + strconv.Quote(i.Value.(string))
	case Int:
		return "integer " + strconv.FormatInt(i.Value.(int64), 10)
	}
	return i.Type.String()
}

type stateFn func(l *Lexer) stateFn

// Lexer splits i/o specs and connection descriptions into tokens.
//
type Lexer struct {
	input string
	pos   int // next rune
	start int // start of current token
	items []Item
	state stateFn
}

// NewLexer returns a new lexer for input.
//
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, state: lexInit}
}

// Lex returns the next token. Once the end of input or an invalid
// character has been reached, Lex keeps returning EOF.
//
func (l *Lexer) Lex() Item {
	for len(l.items) == 0 {
		l.state = l.state(l)
		if l.state == nil {
			l.state = lexInit
		}
	}
	i := l.items[0]
	l.items = l.items[1:]
	return i
}

const eof = -1

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.pos = len(l.input) + 1
		return eof
	}
	r, sz := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += sz
	return r
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

func (l *Lexer) emit(t Type, v interface{}) {
	l.items = append(l.items, Item{t, Pos(l.start), v})
}

func lexInit(l *Lexer) stateFn {
	l.start = l.pos
	r := l.next()
	switch {
	case r == eof:
		return lexEOF
	case unicode.IsSpace(r):
		for unicode.IsSpace(l.peek()) {
			l.next()
		}
	case unicode.IsLetter(r) || r == '_':
		return lexIdent
	case r == '[':
		l.emit(BracketOpen, "[")
	case r == ']':
		l.emit(BracketClose, "]")
	case r == ',':
		l.emit(Comma, ",")
	case '0' <= r && r <= '9', r == '-' && isDigit(l.peek()):
		return lexNumber
	case r == '=':
		l.emit(Equal, "=")
	case r == '.' && l.peek() == '.':
		l.next()
		l.emit(Range, "..")
	default:
		l.emit(Raw, string(r))
		return lexEOF
	}
	return nil
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

// lexNumber accepts decimal, 0x hexadecimal and 0b binary literals, with an
// optional leading minus sign.
//
func lexNumber(l *Lexer) stateFn {
	for r := l.peek(); isDigit(r) || unicode.IsLetter(r) || r == '_'; r = l.peek() {
		l.next()
	}
	lit := l.input[l.start:l.pos]
	v, err := strconv.ParseInt(lit, 0, 64)
	if err != nil {
		l.emit(Raw, lit)
		return lexEOF
	}
	l.emit(Int, v)
	return nil
}

func lexIdent(l *Lexer) stateFn {
	for r := l.peek(); unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'; r = l.peek() {
		l.next()
	}
	l.emit(Ident, l.input[l.start:l.pos])
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *Lexer) stateFn {
	l.start = len(l.input)
	l.emit(EOF, "end of input")
	return lexEOF
}
