// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigmath implements elementary functions for *big.Float values.
//
// All functions of the form
//
//	func F(z, x *big.Float) *big.Float
//
// set z to f(x) and return z. If z's precision is 0, it is changed to x's
// precision before the operation. The computation is carried out in
// round-to-nearest-even with guard bits and rounded once into z according to
// z's precision and rounding mode; z's rounding mode is left unchanged. The
// relative error of the result before that final rounding is below 2**-prec.
//
// Functions panic with ErrNaN on arguments outside of their domain, like the
// corresponding operations of math/big. The value of z is undefined in that
// case.
//
// Constants (π and ln 2) are cached at the highest precision computed so far;
// the caches are safe for concurrent use.
package bigmath
