// Package arith implements an arbitrary-precision arithmetic calculator.
//
// An expression is a line of math over numeric literals: "2 + 3*4",
// "(2+3)*4", "-2^2", "10 % 3". The operators are + - * / % ^ with the
// usual precedence; ^ is exponentiation and binds right-to-left, so
// "2^3^2" is "2^(3^2)". Unary minus binds looser than ^, so "-2^2" is
// "-(2^2)".
//
// Parsing and evaluation are separate: Parse produces an immutable Expr,
// and a Context evaluates it. Each failure mode has its own error type,
// and every error from invalid input carries the column it occurred at.
//
// The parser recurses once per parenthesis nesting level and imposes no
// depth limit, so pathologically nested input can exhaust the stack.
package arith
