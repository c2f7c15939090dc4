package expr

import (
	"strconv"
	"strings"
)

// Normalize rewrites user input into the canonical form accepted by Compile.
//
// Implicit multiplication is made explicit, X becomes x, every `a^b` becomes pow(a,b), and the
// result is wrapped as `(<expr>)+0*x` so even a constant compiles as a function of x. Input the
// parser rejects is passed through unchanged (still wrapped); Compile reports the problem.
func Normalize(raw string) string {
	body := strings.TrimSpace(raw)
	if n, err := parse(body); err == nil {
		body = nodeString(n)
	}
	return "(" + body + ")+0*x"
}

// nodeString prints n without spaces, with every negation and anything it negates parenthesized:
// govaluate reads a run of operator characters such as `*-` as one unknown symbol.
func nodeString(n node) string {
	var b strings.Builder
	writeNode(&b, n, 0)
	return b.String()
}

func writeNode(b *strings.Builder, n node, parentPrec int) {
	switch nn := n.(type) {
	case nodeNumber:
		b.WriteString(strconv.FormatFloat(nn.v, 'f', -1, 64))
	case nodeIdent:
		b.WriteString(nn.name)
	case nodeUnary:
		b.WriteByte('(')
		b.WriteByte(nn.op)
		switch nn.x.(type) {
		case nodeNumber, nodeIdent:
			writeNode(b, nn.x, 0)
		default:
			b.WriteByte('(')
			writeNode(b, nn.x, 0)
			b.WriteByte(')')
		}
		b.WriteByte(')')
	case nodeBinary:
		prec := binPrec(nn.op)
		if prec < parentPrec {
			b.WriteByte('(')
		}
		writeNode(b, nn.left, prec)
		b.WriteByte(nn.op)
		// Operators are left-associative, so an equal-precedence right operand keeps its parens.
		writeNode(b, nn.right, prec+1)
		if prec < parentPrec {
			b.WriteByte(')')
		}
	case nodeCall:
		b.WriteString(nn.name)
		b.WriteByte('(')
		for i, a := range nn.args {
			if i > 0 {
				b.WriteByte(',')
			}
			writeNode(b, a, 0)
		}
		b.WriteByte(')')
	}
}

func binPrec(op byte) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	default:
		return 0
	}
}
