package expr

import (
	"fmt"
	"strings"
)

type node interface {
	isNode()
}

type nodeNumber struct{ v float64 }

type nodeIdent struct {
	name string
	pos  int
}

type nodeUnary struct {
	op byte
	x  node
}

type nodeBinary struct {
	op    byte
	left  node
	right node
}

type nodeCall struct {
	name string
	pos  int
	args []node
}

func (nodeNumber) isNode() {}
func (nodeIdent) isNode()  {}
func (nodeUnary) isNode()  {}
func (nodeBinary) isNode() {}
func (nodeCall) isNode()   {}

type parser struct {
	l   lexer
	cur token
}

// parse reads a single expression. Juxtaposed operands (`2x`, `x(x+1)`, `(a)(b)`, `2sin(x)`)
// are joined with an explicit multiplication.
func parse(s string) (node, error) {
	p := &parser{l: lexer{s: s}}
	p.next()
	if p.cur.kind == tokEOF {
		return nil, parseErrorAt(p.cur, "empty expression")
	}
	ex, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, parseErrorAt(p.cur, fmt.Sprintf("unexpected %q", p.cur.text))
	}
	return ex, nil
}

func (p *parser) next() { p.cur = p.l.next() }

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur.kind {
		case tokStar, tokSlash:
			op := p.cur.text[0]
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = nodeBinary{op: op, left: left, right: right}
		case tokNumber, tokIdent, tokLParen:
			right, err := p.parsePower()
			if err != nil {
				return nil, err
			}
			left = nodeBinary{op: '*', left: left, right: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseUnary() (node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			return x, nil
		}
		return nodeUnary{op: op, x: x}, nil
	}
	return p.parsePower()
}

// parsePower is right-associative and lets the exponent carry its own sign: `2^-x^2` is
// 2^(-(x^2)), while `-2^2` negates the power.
func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokCaret {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return nodeCall{name: "pow", pos: -1, args: []node{base, exp}}, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch p.cur.kind {
	case tokNumber:
		v := p.cur.num
		p.next()
		return nodeNumber{v: v}, nil
	case tokIdent:
		tok := p.cur
		p.next()
		if p.cur.kind == tokLParen && !isVariableName(tok.text) {
			return p.parseCall(tok)
		}
		name := tok.text
		if isVariableName(name) {
			name = strings.ToLower(name)
		}
		return nodeIdent{name: name, pos: tok.pos}, nil
	case tokLParen:
		p.next()
		ex, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, parseErrorAt(p.cur, "expected ')'")
		}
		p.next()
		return ex, nil
	case tokEOF:
		return nil, parseErrorAt(p.cur, "unexpected end of expression")
	default:
		return nil, parseErrorAt(p.cur, fmt.Sprintf("unexpected %q", p.cur.text))
	}
}

func (p *parser) parseCall(name token) (node, error) {
	p.next()
	var args []node
	if p.cur.kind != tokRParen {
		for {
			ex, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			args = append(args, ex)
			if p.cur.kind == tokComma {
				p.next()
				continue
			}
			break
		}
	}
	if p.cur.kind != tokRParen {
		return nil, parseErrorAt(p.cur, "expected ')'")
	}
	p.next()
	return nodeCall{name: name.text, pos: name.pos, args: args}, nil
}

func isVariableName(s string) bool { return s == "x" || s == "X" }
