// Package rat holds exact durations and time signatures.
//
// A Rat is always stored in reduced form with a positive denominator, and
// zero is always the zero value, so two Rats are equal exactly when == says
// so and Rats can be used as map keys.
package rat

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/jsphweid/sheetmusic/util"
	"github.com/pkg/errors"
)

var (
	ErrSyntax = errors.New("invalid rational")
	ErrRange  = errors.New("rational out of range")
)

// Resolution is the finest subdivision of a whole note that Parse accepts.
// Every parsed denominator divides it, and so do the denominators of their
// sums and differences.
const Resolution = 64 * 9 * 5 * 7

type Rat struct {
	num int64
	den int64
}

var (
	Zero = Rat{}
	One  = New(1, 1)
)

// New panics on a zero denominator.
func New(num, den int64) Rat {
	if den == 0 {
		panic("rat: zero denominator")
	}
	if num == 0 {
		return Rat{}
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := util.Gcd(num, den)
	return Rat{num: num / g, den: den / g}
}

func Int(n int64) Rat {
	return New(n, 1)
}

func (r Rat) Num() int64 {
	return r.num
}

func (r Rat) Den() int64 {
	if r.den == 0 {
		return 1
	}
	return r.den
}

func (r Rat) Add(o Rat) Rat {
	a, ok1 := mul64(r.num, o.Den())
	b, ok2 := mul64(o.num, r.Den())
	d, ok3 := mul64(r.Den(), o.Den())
	if ok1 && ok2 && ok3 {
		if n, ok := add64(a, b); ok {
			return New(n, d)
		}
	}
	return fromBig(new(big.Rat).Add(r.big(), o.big()))
}

func (r Rat) Sub(o Rat) Rat {
	a, ok1 := mul64(r.num, o.Den())
	b, ok2 := mul64(o.num, r.Den())
	d, ok3 := mul64(r.Den(), o.Den())
	if ok1 && ok2 && ok3 {
		if n, ok := sub64(a, b); ok {
			return New(n, d)
		}
	}
	return fromBig(new(big.Rat).Sub(r.big(), o.big()))
}

func (r Rat) Mul(o Rat) Rat {
	n, ok1 := mul64(r.num, o.num)
	d, ok2 := mul64(r.Den(), o.Den())
	if ok1 && ok2 {
		return New(n, d)
	}
	return fromBig(new(big.Rat).Mul(r.big(), o.big()))
}

// Cmp returns -1, 0 or +1.
func (r Rat) Cmp(o Rat) int {
	left, ok1 := mul64(r.num, o.Den())
	right, ok2 := mul64(o.num, r.Den())
	if !ok1 || !ok2 {
		return r.big().Cmp(o.big())
	}
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	}
	return 0
}

func (r Rat) big() *big.Rat {
	return new(big.Rat).SetFrac64(r.num, r.Den())
}

// fromBig panics when x does not fit in int64 terms, like New does on a
// zero denominator.
func fromBig(x *big.Rat) Rat {
	if !x.Num().IsInt64() || !x.Denom().IsInt64() {
		panic("rat: overflow")
	}
	return New(x.Num().Int64(), x.Denom().Int64())
}

func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	return c, c/b == a
}

func add64(a, b int64) (int64, bool) {
	c := a + b
	return c, (c > a) == (b > 0)
}

func sub64(a, b int64) (int64, bool) {
	c := a - b
	return c, (c < a) == (b > 0)
}

func (r Rat) Less(o Rat) bool      { return r.Cmp(o) < 0 }
func (r Rat) LessEq(o Rat) bool    { return r.Cmp(o) <= 0 }
func (r Rat) Greater(o Rat) bool   { return r.Cmp(o) > 0 }
func (r Rat) GreaterEq(o Rat) bool { return r.Cmp(o) >= 0 }

func (r Rat) IsZero() bool {
	return r.num == 0
}

func (r Rat) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	}
	return 0
}

func (r Rat) String() string {
	if r.Den() == 1 {
		return strconv.FormatInt(r.num, 10)
	}
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Den(), 10)
}

// Parse accepts "N/D", integers and plain decimals such as "0.75" or ".5".
// Decimals are read exactly, not through a float. Values finer than
// 1/Resolution are ErrRange.
func Parse(s string) (Rat, error) {
	r, err := parse(s)
	if err != nil {
		return Rat{}, err
	}
	if Resolution%r.Den() != 0 {
		return Rat{}, errors.Wrapf(ErrRange, "%q is finer than 1/%d", s, Resolution)
	}
	return r, nil
}

func parse(s string) (Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rat{}, errors.Wrap(ErrSyntax, "empty value")
	}

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := parseDecimal(strings.TrimSpace(num))
		if err != nil {
			return Rat{}, errors.Wrapf(ErrSyntax, "%q", s)
		}
		d, err := parseDecimal(strings.TrimSpace(den))
		if err != nil || d.IsZero() {
			return Rat{}, errors.Wrapf(ErrSyntax, "%q", s)
		}
		x := new(big.Rat).Quo(n.big(), d.big())
		if !x.Num().IsInt64() || !x.Denom().IsInt64() {
			return Rat{}, errors.Wrapf(ErrRange, "%q", s)
		}
		return fromBig(x), nil
	}

	r, err := parseDecimal(s)
	if err != nil {
		return Rat{}, errors.Wrapf(ErrSyntax, "%q", s)
	}
	return r, nil
}

func parseDecimal(s string) (Rat, error) {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return Rat{}, ErrSyntax
	}
	digits := whole + frac
	if len(digits) > 15 || strings.ContainsAny(digits, "+-") {
		return Rat{}, ErrSyntax
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Rat{}, ErrSyntax
	}
	r := New(n, int64(math.Pow10(len(frac))))
	if neg {
		r = New(-r.num, r.Den())
	}
	return r, nil
}
