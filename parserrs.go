package arith

import "strconv"

// OperatorError is an error indicating an operator token that is not
// understood by the parser, such as a binary-only operator where an operand
// belongs. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the token that revealed the imbalance.
	Col int
	// Left is the open parenthesis, or the empty string if there was none.
	Left string
	// Right is the token found where a close parenthesis belonged, or the
	// empty string if the input ended first.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close parenthesis with no open parenthesis")
	}
	if err.Right == "" {
		return errpos(err.Col, "open parenthesis with no close parenthesis")
	}
	return errpos(err.Col, "expected close parenthesis before "+strconv.Quote(err.Right))
}

func (err *BracketError) Pos() int {
	return err.Col
}

// TrailingTokenError is an error indicating input remaining after a complete
// expression, like the second literal in "1 2". It implements InputError.
type TrailingTokenError struct {
	// Col is the position of the first trailing token.
	Col int
	// Token is the first trailing token.
	Token string
}

func (err *TrailingTokenError) Error() string {
	return errpos(err.Col, "trailing "+strconv.Quote(err.Token)+" after expression")
}

func (err *TrailingTokenError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression where an
// operand was required. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TrailingTokenError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
)
