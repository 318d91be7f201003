// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package spendable models a wallet's candidate inputs across the four
// value pools, and the greedy selection used to limit them to a target
// amount.
package spendable

import (
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btclog"
	"github.com/zcash-community/shieldedplan/pool"
)

// log is this package's logger, disabled by default. Call UseLogger to wire
// it to a host application's logging backend.
var log btclog.Logger

func init() { DisableLog() }

// DisableLog disables all library log output.
func DisableLog() { UseLogger(btclog.Disabled) }

// UseLogger sets the logger used by this package.
func UseLogger(logger btclog.Logger) { log = logger }

// OutPoint identifies a single transparent, Sapling or Orchard output.
type OutPoint struct {
	TxID  chainhash.Hash
	Index uint32
}

// JSOutPoint identifies a single Sprout JoinSplit output.
type JSOutPoint struct {
	TxID        chainhash.Hash
	JSIndex     uint8
	OutputIndex uint8
}

// UTXO is a spendable transparent output.
type UTXO struct {
	OutPoint     OutPoint
	Amount       pool.Amount
	PKScript     []byte
	Address      pool.Receiver
	FromCoinbase bool
}

// SproutNote is a spendable Sprout note.
type SproutNote struct {
	OutPoint JSOutPoint
	Address  pool.SproutAddress
	Amount   pool.Amount
}

// SaplingNote is a spendable Sapling note.
type SaplingNote struct {
	OutPoint OutPoint
	Address  pool.SaplingReceiver
	Amount   pool.Amount
}

// OrchardNote is spendable Orchard note metadata.
type OrchardNote struct {
	OutPoint OutPoint
	Amount   pool.Amount
}

// Inputs is a snapshot of a wallet's candidate inputs across all four
// pools.
type Inputs struct {
	UTXOs   []UTXO
	Sprout  []SproutNote
	Sapling []SaplingNote
	Orchard []OrchardNote
}

// TransparentTotal sums the transparent UTXOs.
func (s *Inputs) TransparentTotal() pool.Amount {
	var total pool.Amount
	for _, u := range s.UTXOs {
		total += u.Amount
	}
	return total
}

// SproutTotal sums the Sprout notes.
func (s *Inputs) SproutTotal() pool.Amount {
	var total pool.Amount
	for _, n := range s.Sprout {
		total += n.Amount
	}
	return total
}

// SaplingTotal sums the Sapling notes.
func (s *Inputs) SaplingTotal() pool.Amount {
	var total pool.Amount
	for _, n := range s.Sapling {
		total += n.Amount
	}
	return total
}

// OrchardTotal sums the Orchard notes.
func (s *Inputs) OrchardTotal() pool.Amount {
	var total pool.Amount
	for _, n := range s.Orchard {
		total += n.Amount
	}
	return total
}

// Total sums every pool's contribution.
func (s *Inputs) Total() pool.Amount {
	return s.TransparentTotal() + s.SproutTotal() + s.SaplingTotal() + s.OrchardTotal()
}

// HasTransparentCoinbase reports whether any selected UTXO originates from
// a coinbase transaction.
func (s *Inputs) HasTransparentCoinbase() bool {
	for _, u := range s.UTXOs {
		if u.FromCoinbase {
			return true
		}
	}
	return false
}

type candidate struct {
	amount pool.Amount
	pool   pool.Pool
	index  int
}

// LimitToAmount reduces s in place to a subset of its inputs whose total is
// at least target, preferring inputs whose pool is in preferred, and
// avoiding a selection whose residual change would fall strictly between
// zero and dustThreshold. It reports whether a valid selection was found; on
// failure s is left unmodified.
func (s *Inputs) LimitToAmount(target, dustThreshold pool.Amount, preferred pool.Set) bool {
	var candidates []candidate
	for i, u := range s.UTXOs {
		candidates = append(candidates, candidate{u.Amount, pool.Transparent, i})
	}
	for i, n := range s.Sprout {
		candidates = append(candidates, candidate{n.Amount, pool.Sprout, i})
	}
	for i, n := range s.Sapling {
		candidates = append(candidates, candidate{n.Amount, pool.Sapling, i})
	}
	for i, n := range s.Orchard {
		candidates = append(candidates, candidate{n.Amount, pool.Orchard, i})
	}

	// Prefer notes in a recipient pool (keeps the transaction's footprint
	// within the pools it already touches), then largest-first within each
	// group — the same "pick largest outputs first" compatibility choice
	// the teacher's makeInputSource uses.
	sort.SliceStable(candidates, func(i, j int) bool {
		pi, pj := preferred.Has(candidates[i].pool), preferred.Has(candidates[j].pool)
		if pi != pj {
			return pi
		}
		return candidates[i].amount > candidates[j].amount
	})

	var total pool.Amount
	used := 0
	for used < len(candidates) && total < target {
		total += candidates[used].amount
		used++
	}
	if total < target {
		return false
	}

	// Keep adding candidates while the residual would be unspendable dust.
	for residual := total - target; residual > 0 && residual < dustThreshold; residual = total - target {
		if used >= len(candidates) {
			return false
		}
		total += candidates[used].amount
		used++
	}

	s.applySelection(candidates[:used])
	log.Debugf("selected %d of %d candidate inputs totaling %v for target %v", used, len(candidates), total, target)
	return true
}

func (s *Inputs) applySelection(chosen []candidate) {
	var utxoIdx, sproutIdx, saplingIdx, orchardIdx []int
	for _, c := range chosen {
		switch c.pool {
		case pool.Transparent:
			utxoIdx = append(utxoIdx, c.index)
		case pool.Sprout:
			sproutIdx = append(sproutIdx, c.index)
		case pool.Sapling:
			saplingIdx = append(saplingIdx, c.index)
		case pool.Orchard:
			orchardIdx = append(orchardIdx, c.index)
		}
	}
	sort.Ints(utxoIdx)
	sort.Ints(sproutIdx)
	sort.Ints(saplingIdx)
	sort.Ints(orchardIdx)

	s.UTXOs = pickIndices(s.UTXOs, utxoIdx)
	s.Sprout = pickIndices(s.Sprout, sproutIdx)
	s.Sapling = pickIndices(s.Sapling, saplingIdx)
	s.Orchard = pickIndices(s.Orchard, orchardIdx)
}

func pickIndices[T any](items []T, idx []int) []T {
	out := make([]T, 0, len(idx))
	for _, i := range idx {
		out = append(out, items[i])
	}
	return out
}
