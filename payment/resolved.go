// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment

import "github.com/zcash-community/shieldedplan/pool"

// ResolvedPayment is a Payment after its recipient has been narrowed down
// to one concrete pool receiver. Sprout is spend-only and never appears
// here: resolving a payment to a Sprout address fails outright.
type ResolvedPayment struct {
	Receiver pool.Receiver
	Amount   pool.Amount
	Memo     pool.Memo
	// IsInternal is true only for change: it selects the internal OVK
	// rather than the external one when a shielded output is encrypted.
	IsInternal bool
}

// Pool reports the value pool this resolved payment draws on.
func (r ResolvedPayment) Pool() pool.Pool {
	return r.Receiver.Pool()
}

// Resolved is an ordered list of resolved payments.
type Resolved []ResolvedPayment

// Total sums the resolved amounts.
func (r Resolved) Total() pool.Amount {
	var total pool.Amount
	for _, p := range r {
		total += p.Amount
	}
	return total
}

// Pools returns the set of pools touched by at least one resolved payment.
func (r Resolved) Pools() pool.Set {
	set := pool.NewSet()
	for _, p := range r {
		set.Add(p.Pool())
	}
	return set
}
