// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Type is a token type.
//
type Type int

// Tokens
const (
	EOF Type = iota
	Error
	Directive // .hardware, .inputs, ...
	Ident
	Bits // 0101
	Arrow
	Equal
	Not
	And
	Or
	ParenOpen
	ParenClose
)

var typeNames = [...]string{
	EOF:        "end of input",
	Error:      "error",
	Directive:  "directive",
	Ident:      "identifier",
	Bits:       "bit string",
	Arrow:      "'->'",
	Equal:      "'='",
	Not:        "'!'",
	And:        "'&&'",
	Or:         "'||'",
	ParenOpen:  "'('",
	ParenClose: "')'",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// Pos is a position in the input.
//
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

// Item is a lexed token.
//
type Item struct {
	Type  Type
	Value string
	Pos   Pos
}

func (i Item) String() string {
	switch i.Type {
	case Directive, Ident, Bits:
		return i.Type.String() + " " + strconv.Quote(i.Value)
	case Error:
		return i.Value
	}
	return i.Type.String()
}

type stateFn func(l *lexer) stateFn

type lexer struct {
	input string
	start int // start of the current item
	pos   int // current position
	width int // width of the last rune read
	line  int
	col   int
	pLine int // line before the last rune read
	pCol  int // column before the last rune read
	sLine int // line of start
	sCol  int // column of start
	items []Item
}

// Lex splits input into items. The last item is always of type EOF or Error.
//
func Lex(input string) []Item {
	l := &lexer{input: input, line: 1, col: 1}
	l.sLine, l.sCol = 1, 1
	for state := lexInit; state != nil; {
		state = state(l)
	}
	return l.items
}

const eof = -1

func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pLine, l.pCol = l.line, l.col
	l.width = w
	l.pos += w
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *lexer) backup() {
	if l.width > 0 {
		l.pos -= l.width
		l.line, l.col = l.pLine, l.pCol
	}
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) acceptWhile(f func(rune) bool) {
	for {
		r := l.next()
		if r == eof {
			return
		}
		if !f(r) {
			l.backup()
			return
		}
	}
}

func (l *lexer) ignore() {
	l.start = l.pos
	l.sLine, l.sCol = l.line, l.col
}

func (l *lexer) emit(t Type) {
	l.items = append(l.items, Item{t, l.input[l.start:l.pos], Pos{l.sLine, l.sCol}})
	l.ignore()
}

func (l *lexer) errorf(msg string) stateFn {
	l.items = append(l.items, Item{Error, msg, Pos{l.sLine, l.sCol}})
	return nil
}

func isIdentStart(r rune) bool { return unicode.IsLetter(r) || r == '_' }
func isIdent(r rune) bool      { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' }
func isBit(r rune) bool        { return r == '0' || r == '1' }

func lexInit(l *lexer) stateFn {
	for {
		r := l.next()
		switch {
		case r == eof:
			l.emit(EOF)
			return nil
		case unicode.IsSpace(r):
			l.ignore()
		case r == '/':
			switch l.peek() {
			case '/':
				return lexLineComment
			case '*':
				l.next()
				return lexBlockComment
			}
			l.emit(Not)
		case r == '!':
			l.emit(Not)
		case r == '.':
			if !isIdentStart(l.peek()) {
				return l.errorf("expected directive name after '.'")
			}
			l.acceptWhile(isIdent)
			l.emit(Directive)
		case isIdentStart(r):
			l.acceptWhile(isIdent)
			l.emit(Ident)
		case isBit(r):
			l.acceptWhile(isBit)
			if isIdent(l.peek()) {
				return l.errorf("invalid bit string")
			}
			l.emit(Bits)
		case r == '-':
			if l.next() != '>' {
				return l.errorf("expected '->'")
			}
			l.emit(Arrow)
		case r == '=':
			l.emit(Equal)
		case r == '&':
			if l.next() != '&' {
				return l.errorf("expected '&&'")
			}
			l.emit(And)
		case r == '|':
			if l.next() != '|' {
				return l.errorf("expected '||'")
			}
			l.emit(Or)
		case r == '(':
			l.emit(ParenOpen)
		case r == ')':
			l.emit(ParenClose)
		default:
			return l.errorf("unexpected character " + strconv.QuoteRune(r))
		}
	}
}

func lexLineComment(l *lexer) stateFn {
	for {
		r := l.next()
		if r == '\n' || r == eof {
			l.ignore()
			return lexInit
		}
	}
}

func lexBlockComment(l *lexer) stateFn {
	for {
		switch l.next() {
		case eof:
			return l.errorf("unterminated comment")
		case '*':
			if l.peek() == '/' {
				l.next()
				l.ignore()
				return lexInit
			}
		}
	}
}
