// Package expr turns user-typed function text into something that can be evaluated at a given x.
//
// Normalize rewrites loose input (implicit multiplication, `^` exponents, upper-case X) into a
// canonical infix form, and Compile binds that form to a govaluate expression with a private x
// parameter. A Compiled expression is not safe for concurrent use; Clone gives each caller its own.
package expr
