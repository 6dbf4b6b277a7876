// Package bignum provides arbitrary-precision reference evaluations of the
// circular functions, used to bound the error of the integer kernel and of
// its table builders.
package bignum

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a new big.Float element with prec bits of mantissa.
func NewFloat(x float64, prec uint) (y *big.Float) {
	y = new(big.Float)
	y.SetPrec(prec)
	y.SetFloat64(x)
	return
}

// Cos is an iterative arbitrary-precision computation of cos(x), by repeated
// application of the double-angle identity on a halved argument.
// ref: Johansson, B. Tomas, An elementary algorithm to evaluate trigonometric
// functions to high precision, 2018
func Cos(x *big.Float) (cosx *big.Float) {
	prec := x.Prec() + 32
	k := int(prec)/2 + 16

	t := new(big.Float).SetPrec(prec).SetMantExp(
		new(big.Float).SetPrec(prec).SetInt64(1), -(k - 1))

	s := new(big.Float).SetPrec(prec).Mul(x, t)
	s.Mul(s, s)

	four := new(big.Float).SetPrec(prec).SetInt64(4)
	tmp := new(big.Float).SetPrec(prec)

	for i := 1; i < k; i++ {
		tmp.Sub(four, s)
		s.Mul(s, tmp)
	}

	cosx = new(big.Float).SetPrec(prec).Quo(s, four)
	cosx.Add(cosx, cosx)
	cosx.Sub(new(big.Float).SetPrec(prec).SetInt64(1), cosx)
	return cosx.SetPrec(x.Prec())
}

// Sin is the arbitrary-precision computation of sin(x), evaluated as the
// cosine of the argument shifted back a quarter period.
func Sin(x *big.Float) (sinx *big.Float) {
	prec := x.Prec() + 32
	half := Pi(prec)
	half.Quo(half, new(big.Float).SetPrec(prec).SetInt64(2))
	arg := new(big.Float).SetPrec(prec).Sub(x, half)
	return Cos(arg).SetPrec(x.Prec())
}

// Pi returns pi with prec bits of mantissa, from Machin's arctangent formula.
func Pi(prec uint) *big.Float {
	p := prec + 64
	pi := atanRecip(5, p)
	pi.Mul(pi, new(big.Float).SetPrec(p).SetInt64(16))
	t := atanRecip(239, p)
	t.Mul(t, new(big.Float).SetPrec(p).SetInt64(4))
	pi.Sub(pi, t)
	return pi.SetPrec(prec)
}

// Hypot returns sqrt(x^2 + y^2) at the larger precision of its arguments.
func Hypot(x, y *big.Float) *big.Float {
	prec := x.Prec()
	if p := y.Prec(); p > prec {
		prec = p
	}
	s := new(big.Float).SetPrec(prec).Mul(x, x)
	t := new(big.Float).SetPrec(prec).Mul(y, y)
	s.Add(s, t)
	if s.Sign() == 0 {
		return s
	}
	return bigfloat.Sqrt(s)
}

// atanRecip evaluates arctan(1/m) by its Maclaurin series.
func atanRecip(m int64, prec uint) *big.Float {
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	mf := new(big.Float).SetPrec(prec).SetInt64(m)

	inv2 := new(big.Float).SetPrec(prec).Mul(mf, mf)
	inv2.Quo(one, inv2)

	pow := new(big.Float).SetPrec(prec).Quo(one, mf)
	sum := new(big.Float).SetPrec(prec)
	term := new(big.Float).SetPrec(prec)
	den := new(big.Float).SetPrec(prec)

	for n, add := int64(0), true; ; n, add = n+1, !add {
		term.Quo(pow, den.SetInt64(2*n+1))
		if add {
			sum.Add(sum, term)
		} else {
			sum.Sub(sum, term)
		}
		if term.MantExp(nil) < -int(prec) {
			break
		}
		pow.Mul(pow, inv2)
	}
	return sum
}
