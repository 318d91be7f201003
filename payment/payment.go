// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payment models payment requests and resolves them against
// concrete pool receivers.
package payment

import "github.com/zcash-community/shieldedplan/pool"

// Payment is a single requested payment: an amount sent to a logical
// address, optionally carrying a memo.
//
// Memo is only meaningful for shielded recipients; attaching one to a bare
// transparent address is an error at resolution time, not at construction
// time. A unified address that resolves to a transparent receiver drops the
// memo instead.
type Payment struct {
	Recipient pool.Address
	Amount    pool.Amount
	Memo      *pool.Memo
}

// Payments is an ordered list of payment requests.
type Payments []Payment

// Total sums the requested amounts.
func (p Payments) Total() pool.Amount {
	var total pool.Amount
	for _, payment := range p {
		total += payment.Amount
	}
	return total
}
