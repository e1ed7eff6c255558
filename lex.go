package graphcalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical unit of a normalized formula.
type Token struct {
	// Text is the token as it appears in the formula, except that a unary
	// minus in postfix output is spelled Negate.
	Text string
	// Kind is the kind of token.
	Kind TokenKind
	// Pos is the 1-based rune column of the token in the normalized formula.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind classifies tokens.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNum is a number literal, including Infinity.
	TokenNum
	// TokenVar is the free variable.
	TokenVar
	// TokenOp is an arithmetic operator, including the synthetic Negate.
	TokenOp
	// TokenFunc is a function name.
	TokenFunc
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
	// TokenUnknown is anything else. Compiling a formula that contains an
	// unknown token fails.
	TokenUnknown
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenVar:
		return "Var"
	case TokenOp:
		return "Op"
	case TokenFunc:
		return "Func"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	case TokenUnknown:
		return "Unknown"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are lexed as binary operators.
const Operators = "+-*/^"

// Infinity is the literal spelling of positive infinity.
const Infinity = "Infinity"

type lexer struct {
	src   io.RuneScanner
	buf   strings.Builder
	rune  int
	words []string
	// pend holds tokens split from a single run of letters.
	pend []Token
}

func lex(src io.RuneScanner, variable string) *lexer {
	return &lexer{
		src: src,
		// Longer names first so that the greedy split prefers them.
		words: []string{Infinity, "sqrt", "sin", "cos", "tan", "log", "ln", variable},
	}
}

// Tokenize splits a normalized formula into tokens. Whitespace is dropped.
// Tokenize does not fail: anything it does not recognize becomes a
// TokenUnknown, which ToPostfix rejects.
func Tokenize(s string, opts ...Option) []Token {
	c := newConfig(opts)
	return tokenize(s, c.variable)
}

func tokenize(s, variable string) []Token {
	l := lex(strings.NewReader(s), variable)
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			// Reading from a strings.Reader only fails at EOF.
			return toks
		}
		toks = append(toks, tok)
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of the input, the
// result is io.EOF.
func (l *lexer) next() (Token, error) {
	if len(l.pend) > 0 {
		tok := l.pend[0]
		l.pend = l.pend[1:]
		return tok, nil
	}
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		tok := Token{Pos: l.rune}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil && !errors.Is(err, io.EOF) {
				return tok, err
			}
			tok.Text = l.buf.String()
			tok.Kind = TokenNum
			return tok, nil
		case unicode.IsLetter(r):
			l.unreadRune()
			if err := l.scanWord(); err != nil && !errors.Is(err, io.EOF) {
				return tok, err
			}
			l.pend = l.split(l.buf.String(), tok.Pos)
			tok = l.pend[0]
			l.pend = l.pend[1:]
			return tok, nil
		case r == '(':
			tok.Text = "("
			tok.Kind = TokenOpen
			return tok, nil
		case r == ')':
			tok.Text = ")"
			tok.Kind = TokenClose
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.Text = string(r)
			tok.Kind = TokenOp
			return tok, nil
		default:
			tok.Text = string(r)
			tok.Kind = TokenUnknown
			return tok, nil
		}
	}
}

// scanNum scans a run of digits and points. Whether the result is a valid
// number is decided when it is compiled.
func (l *lexer) scanNum() error {
	for {
		r, err := l.readRune()
		if err != nil {
			return err
		}
		if r != '.' && (r < '0' || r > '9') {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// scanWord scans a run of letters.
func (l *lexer) scanWord() error {
	for {
		r, err := l.readRune()
		if err != nil {
			return err
		}
		if !unicode.IsLetter(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// split breaks a run of letters into known words, preferring the longest
// match at each position, e.g. "sinx" is sin followed by x. Once no known
// word matches, the rest of the run is a single unknown token.
func (l *lexer) split(run string, pos int) []Token {
	var toks []Token
	for run != "" {
		w := l.match(run)
		if w == "" {
			return append(toks, Token{Text: run, Kind: TokenUnknown, Pos: pos})
		}
		tok := Token{Text: w, Pos: pos}
		switch {
		case w == Infinity:
			tok.Kind = TokenNum
		case isFunc(w):
			tok.Kind = TokenFunc
		default:
			tok.Kind = TokenVar
		}
		toks = append(toks, tok)
		run = run[len(w):]
		pos += len([]rune(w))
	}
	return toks
}

func (l *lexer) match(run string) string {
	var best string
	for _, w := range l.words {
		if len(w) > len(best) && strings.HasPrefix(run, w) {
			best = w
		}
	}
	return best
}
