// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigmath

import (
	"math/big"
	"sync"
)

// constCache holds the most precise value of a constant computed so far.
// Published values are never modified.
type constCache struct {
	mu sync.Mutex
	v  *big.Float
}

// get returns the cached constant with at least prec bits of precision,
// computing it with compute if necessary.
func (c *constCache) get(prec uint, compute func(prec uint) *big.Float) *big.Float {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.v == nil || c.v.Prec() < prec {
		// over-allocate a bit so that slowly increasing precisions do not
		// trigger a computation each time.
		c.v = compute(prec + prec/4)
	}
	return c.v
}

var _pi constCache

// Pi sets z to π rounded to z's precision and rounding mode and returns z.
// If z's precision is 0, it is set to 64.
func Pi(z *big.Float) *big.Float {
	if z.Prec() == 0 {
		z.SetPrec(64)
	}
	return z.Set(_pi.get(z.Prec()+guardBits, pi))
}

// pi computes π with the Gauss-Legendre algorithm to prec bits of precision.
func pi(prec uint) *big.Float {
	var (
		// Increase precision: the last bits of a and b may oscillate once the
		// iteration has converged, so we stop a few bits short of pp.
		pp = prec + guardBits
		a  = newFloat(pp).SetInt64(1)
		b  = newFloat(pp).Sqrt(half) // 1/√2
		t  = newFloat(pp).Set(quarter)
		p  = newFloat(pp).SetInt64(1)
		u  = newFloat(pp)
		z  = newFloat(pp)
	)

	for i := 0; i < 64; i++ {
		u.Set(a)                 // a_n
		a.Mul(z.Add(a, b), half) // a_n+1
		b.Sqrt(z.Mul(u, b))      // b_n+1

		// t = t - p×(a_n - a_n+1)²
		z.Sub(u, a)
		z.Mul(z, z)
		t.Sub(t, z.Mul(z, p))

		if z.Sub(a, b).Sign() == 0 || z.MantExp(nil) < 8-int(pp) {
			break
		}
		p.Add(p, p)
	}
	z.Add(a, b)
	a.Mul(z, z)
	t.Mul(t, four)
	return z.Quo(a, t).SetPrec(prec)
}
