// Copyright 2020 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package yang

// This file implements the lexical tokenization of YANG.  The lexer returns
// a series of tokens with one of the following codes:
//
//    tError     // an error was encountered, lexing stops
//    tEOF       // end of input
//    tString    // a quoted string, already de-quoted and de-escaped
//    tUnquoted  // an unquoted string
//    '{'
//    ';'
//    '}'
//
// Quoted and unquoted strings are distinct codes because only quoted
// operands participate in '+' concatenation; the parser needs to tell them
// apart.

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	eof = 0x7fffffff // end of input, also an invalid rune

	openBrace  = '{'
	closeBrace = '}'

	bom = "\xef\xbb\xbf"
)

// stateFn represents a state in the lexer as a function, returning the next
// state the lexer should move to.
type stateFn func(*lexer) stateFn

// A code is a token code.  Single character tokens (i.e., punctuation)
// are represented by their unicode code point.
type code int

const (
	tEOF      = code(-1 - iota) // reached end of input
	tError                      // an error
	tString                     // a de-quoted string
	tUnquoted                   // an unquoted string
)

// String returns c as a string.
func (c code) String() string {
	switch c {
	case tEOF:
		return "EOF"
	case tError:
		return "Error"
	case tString:
		return "String"
	case tUnquoted:
		return "Unquoted"
	}
	if c < 0 || c > '~' {
		return fmt.Sprintf("%d", c)
	}
	return fmt.Sprintf("'%c'", c)
}

// A token represents one lexical unit read from the input.
// Line and Col are both 1 based, Off is a byte offset into the input.
type token struct {
	code code
	Text string // the decoded text of the token
	Line int
	Col  int
	Off  int
}

// Code returns the code of t.  If t is nil, tEOF is returned.
func (t *token) Code() code {
	if t == nil {
		return tEOF
	}
	return t.code
}

// String returns the location, code, and text of t as a string.
func (t *token) String() string {
	var s []string
	if t.Line != 0 {
		s = append(s, fmt.Sprintf("%d:%d:", t.Line, t.Col))
	}
	if t.Text == "" {
		s = append(s, fmt.Sprintf(" %v", t.code))
	} else {
		s = append(s, " ", t.Text)
	}
	return strings.Join(s, "")
}

// A lexer holds the internal state of the lexer.
type lexer struct {
	name  string // name of the source we are processing
	input string // contents of the source
	start int    // start position in input of unconsumed data
	pos   int    // current position in the input
	line  int    // the current line number (1 based)
	col   int    // the current column number (0 based, add 1 before displaying)

	soff  int     // byte offset of the current token
	scol  int     // starting col of the current token
	sline int     // starting line of the current token
	width int     // width of last rune read from input
	state stateFn // current state of the lexer

	items []*token    // tokens ready to be returned by NextToken
	err   *ParseError // the first (and only) error encountered
}

// newLexer returns a lexer over input.  The provided name should indicate
// where the source originated and may be empty.  A leading byte-order mark
// is accepted and ignored, though it still counts towards byte offsets.
func newLexer(input, name string) *lexer {
	l := &lexer{
		name:  name,
		input: input,
		line:  1, // humans start with 1
		state: lexGround,
	}
	if strings.HasPrefix(input, bom) {
		l.pos = len(bom)
		l.start = l.pos
	}
	return l
}

// NextToken returns the next token from the input, returning nil once the
// input is exhausted or an error token has been delivered.
func (l *lexer) NextToken() *token {
	for {
		if len(l.items) > 0 {
			t := l.items[0]
			l.items = l.items[1:]
			return t
		}
		if l.state == nil {
			return nil
		}
		l.state = l.state(l)
	}
}

// emit emits the currently parsed token marked with code c using emitText.
func (l *lexer) emit(c code) {
	l.emitText(c, l.input[l.start:l.pos])
}

// emitText emits text as a token marked with c.
// All input up to the current cursor (pos) is consumed.
func (l *lexer) emitText(c code, text string) {
	l.items = append(l.items, &token{
		code: c,
		Text: text,
		Line: l.sline,
		Col:  l.scol + 1,
		Off:  l.soff,
	})
	l.consume()
}

// consume consumes all input to the current cursor.
func (l *lexer) consume() {
	l.start = l.pos
}

// mark records the current cursor as the start of the next token.
func (l *lexer) mark() {
	l.sline = l.line
	l.scol = l.col
	l.soff = l.pos
}

// backup steps back one rune.  It can be called only immediately after a
// call of next.
func (l *lexer) backup() {
	l.pos -= l.width
	if l.width > 0 {
		l.col--
		if l.col < 0 {
			// We backed up over a newline.  The next call to next
			// will reset the column, so an approximation is fine.
			l.line--
			l.col = 0
		}
	}
}

// peek returns but does not move past the next rune in the input.  backup
// is not supported over peeked characters.
func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// peek2 returns the rune following the next rune without moving the cursor.
func (l *lexer) peek2() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	_, w := utf8.DecodeRuneInString(l.input[l.pos:])
	if l.pos+w >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos+w:])
	return r
}

// next returns the next rune in the input.  If next encounters the end of
// input then it returns eof.
func (l *lexer) next() (r rune) {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	// l.width is what limits more than a single backup.
	r, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	if r == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return r
}

// acceptRun moves the cursor forward up to, but not including, the first rune
// not found in the valid set.  It returns true if any runes were accepted.
func (l *lexer) acceptRun(valid string) bool {
	ret := false
	for strings.IndexRune(valid, l.next()) >= 0 {
		ret = true
	}
	l.backup()
	return ret
}

// skipTo moves the cursor up to, but not including, s.  It returns false if
// s does not occur in the remaining input (the cursor is not moved).
func (l *lexer) skipTo(s string) bool {
	if x := strings.Index(l.input[l.pos:], s); x >= 0 {
		l.updateCursor(x)
		return true
	}
	return false
}

// updateCursor moves the cursor forward n bytes, updating the line and
// column accounting.
func (l *lexer) updateCursor(n int) {
	s := l.input[l.pos : l.pos+n]
	l.pos += n
	l.width = n

	if c := strings.Count(s, "\n"); c > 0 {
		l.line += c
		l.col = 0
	}
	l.col += utf8.RuneCountInString(s[strings.LastIndex(s, "\n")+1:])
}

// Errorf records the error at the current cursor, emits a tError token, and
// stops the lexer.  Parsing terminates at the first error.
func (l *lexer) Errorf(f string, v ...interface{}) stateFn {
	l.ErrorfAt(l.line, l.col+1, l.pos, f, v...)
	return nil
}

// ErrorfAt is Errorf reported at an explicit location.
func (l *lexer) ErrorfAt(line, col, off int, f string, v ...interface{}) stateFn {
	if l.err == nil {
		l.err = &ParseError{
			Name: l.name,
			Line: line,
			Col:  col,
			Off:  off,
			Msg:  fmt.Sprintf(f, v...),
		}
	}
	l.items = append(l.items, &token{code: tError, Line: line, Col: col, Off: off})
	l.state = nil
	return nil
}

// Below are all the states.

// lexGround is the state when the lexer is not in the middle of a token.
// The ground state is left once the start of a token is found.  Comments
// are treated as whitespace and leave the lexer in the ground state.
func lexGround(l *lexer) stateFn {
	l.acceptRun(" \t\r\n") // skip leading whitespace
	l.consume()
	l.mark()

	switch c := l.peek(); c {
	case eof:
		return nil
	case ';', openBrace, closeBrace:
		l.next()
		l.emit(code(c))
		return lexGround
	case '\'':
		l.next()
		l.consume() // toss the leading '
		if !l.skipTo("'") {
			return l.ErrorfAt(l.sline, l.scol+1, l.soff, `missing closing '`)
		}
		// Every byte between the quotes is literal.
		l.emit(tString)
		l.next() // the matching '
		l.consume()
		return lexGround
	case '"':
		l.next()
		return lexDoubleQuoted
	case '/':
		switch l.peek2() {
		case '/':
			// A // comment runs to the next line terminator or
			// the end of input.
			if !l.skipTo("\n") {
				l.updateCursor(len(l.input) - l.pos)
			}
			return lexGround
		case '*':
			// A /* comment runs to the matching */ and does not
			// nest.
			l.next()
			l.next()
			if !l.skipTo("*/") {
				return l.ErrorfAt(l.sline, l.scol+1, l.soff, "unterminated block comment")
			}
			l.next()
			l.next()
			return lexGround
		}
		return lexUnquoted
	default:
		return lexUnquoted
	}
}

// lexDoubleQuoted handles double quoted strings.  The leading " has already
// been consumed.  Exactly four escape sequences are recognized: \n, \t, \",
// and \\.  Any other backslash sequence is an error.
func lexDoubleQuoted(l *lexer) stateFn {
	// Keep track of where the opening quote was for error reporting.
	line, col, off := l.sline, l.scol+1, l.soff

	var text []byte
	for {
		switch c := l.next(); c {
		case eof:
			return l.ErrorfAt(line, col, off, `missing closing "`)
		case '"':
			l.emitText(tString, string(text))
			return lexGround
		case '\\':
			switch c = l.next(); c {
			case eof:
				return l.ErrorfAt(line, col, off, `missing closing "`)
			case 'n':
				c = '\n'
			case 't':
				c = '\t'
			case '"', '\\':
			default:
				return l.Errorf(`invalid escape sequence: \%c`, c)
			}
			text = append(text, []byte(string(c))...)
		default:
			text = append(text, []byte(string(c))...)
		}
	}
}

// lexUnquoted reads one unquoted string: a maximal non-empty run of
// characters excluding whitespace, quotes, ';', '{', '}', and the
// two-character sequences "//", "/*", and "*/".
func lexUnquoted(l *lexer) stateFn {
	for {
		switch c := l.peek(); c {
		case ' ', '\r', '\n', '\t', ';', '"', '\'', openBrace, closeBrace, eof:
			l.emit(tUnquoted)
			return lexGround
		case '/':
			if c2 := l.peek2(); c2 == '/' || c2 == '*' {
				l.emit(tUnquoted)
				return lexGround
			}
			l.next()
		case '*':
			if l.peek2() == '/' {
				if l.pos == l.start {
					return l.Errorf(`unexpected "*/"`)
				}
				l.emit(tUnquoted)
				return lexGround
			}
			l.next()
		default:
			l.next()
		}
	}
}
