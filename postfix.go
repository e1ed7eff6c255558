package graphcalc

// ToPostfix converts a token sequence in infix order to postfix order using
// the shunting-yard algorithm. A minus that does not follow an operand is
// converted to Negate. Right-associative operators, which include Negate, ^,
// and every function, never pop operators of equal precedence, so 2^3^4
// groups as 2^(3^4).
//
// If the tokens are malformed, the error implements InputError.
func ToPostfix(tokens []Token) ([]Token, error) {
	if len(tokens) == 0 {
		return nil, &EmptyExpressionError{Col: 1}
	}
	out := make([]Token, 0, len(tokens))
	ops := make([]Token, 0, len(tokens)/2)
	// operand is whether the previous token ended an operand.
	operand := false
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNum, TokenVar:
			out = append(out, tok)
			operand = true
		case TokenOp, TokenFunc:
			if tok.Text == "-" && !operand {
				tok.Text = Negate
			}
			cur, ok := lookupOp(tok.Text)
			if !ok {
				return nil, &LexError{Text: tok.Text, Col: tok.Pos}
			}
			if cur.class == opBinary && !operand {
				return nil, &OperatorError{Col: tok.Pos, Operator: tok.Text}
			}
			for len(ops) > 0 {
				top, ok := lookupOp(ops[len(ops)-1].Text)
				if !ok || cur.right || cur.prec > top.prec {
					break
				}
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
			operand = false
		case TokenOpen:
			ops = append(ops, tok)
			operand = false
		case TokenClose:
			for {
				if len(ops) == 0 {
					return nil, &BracketError{Col: tok.Pos, Right: tok.Text}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == TokenOpen {
					break
				}
				out = append(out, top)
			}
			operand = true
		case TokenUnknown:
			return nil, &LexError{Text: tok.Text, Col: tok.Pos}
		default:
			panic("graphcalc: unknown token: " + tok.String())
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Kind == TokenOpen {
			return nil, &BracketError{Col: top.Pos, Left: top.Text}
		}
		out = append(out, top)
	}
	return out, nil
}
