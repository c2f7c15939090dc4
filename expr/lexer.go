package expr

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokComma
	tokInvalid
)

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	for l.i < len(l.s) && unicode.IsSpace(rune(l.s[l.i])) {
		l.i++
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF, pos: l.i}
	}

	start := l.i
	single := func(kind tokenKind) token {
		l.i++
		return token{kind: kind, text: l.s[start:l.i], pos: start}
	}

	switch l.s[l.i] {
	case '+':
		return single(tokPlus)
	case '-':
		return single(tokMinus)
	case '*':
		return single(tokStar)
	case '/':
		return single(tokSlash)
	case '^':
		return single(tokCaret)
	case '(', '[':
		return single(tokLParen)
	case ')', ']':
		return single(tokRParen)
	case ',':
		return single(tokComma)
	}

	ch := rune(l.s[l.i])
	if isIdentStart(ch) {
		l.i++
		// A variable glued to a number (`x2`, `X.5`) is the variable followed by the number.
		if isVariable(ch) && l.i < len(l.s) && (l.s[l.i] == '.' || isDigit(l.s[l.i])) {
			return token{kind: tokIdent, text: l.s[start:l.i], pos: start}
		}
		for l.i < len(l.s) && isIdentContinue(rune(l.s[l.i])) {
			l.i++
		}
		return token{kind: tokIdent, text: l.s[start:l.i], pos: start}
	}
	if ch == '.' || isDigit(l.s[l.i]) {
		l.i = scanNumber(l.s, l.i)
		txt := l.s[start:l.i]
		if txt == "" || txt == "." {
			l.i = start + 1
			return token{kind: tokInvalid, text: l.s[start:l.i], pos: start}
		}
		f, err := strconv.ParseFloat(txt, 64)
		if err != nil {
			return token{kind: tokInvalid, text: txt, pos: start}
		}
		return token{kind: tokNumber, text: txt, num: f, pos: start}
	}

	_, size := utf8.DecodeRuneInString(l.s[l.i:])
	l.i += size
	return token{kind: tokInvalid, text: l.s[start:l.i], pos: start}
}

func scanNumber(s string, i int) int {
	sawDot := false
	if i < len(s) && s[i] == '.' {
		sawDot = true
		i++
	}
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if !sawDot && i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isVariable(r rune) bool { return r == 'x' || r == 'X' }

func isIdentStart(r rune) bool {
	return r == '_' || (r < 0x80 && unicode.IsLetter(r))
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}
