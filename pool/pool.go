// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pool models the four Zcash value pools and the tagged-variant
// address, selector and key types that the planner packages pass between
// each other. Nothing here touches cryptography or wire formats; every type
// is either a plain value or an opaque collaborator-supplied interface.
package pool

import "github.com/btcsuite/btcd/btcutil"

// Amount is a zatoshi-denominated quantity, reusing the teacher's Bitcoin
// money type rather than inventing a parallel one.
type Amount = btcutil.Amount

// MaxMoney is the maximum possible value of any amount in the system.
const MaxMoney Amount = 21_000_000 * 1e8

// Pool identifies one of the four value pools a note or UTXO belongs to.
type Pool int

const (
	Transparent Pool = iota
	Sprout
	Sapling
	Orchard
)

func (p Pool) String() string {
	switch p {
	case Transparent:
		return "transparent"
	case Sprout:
		return "sprout"
	case Sapling:
		return "sapling"
	case Orchard:
		return "orchard"
	default:
		return "unknown pool"
	}
}

// ReceiverType identifies the kind of concrete receiver a unified address
// may embed. Each receiver type belongs to exactly one pool.
type ReceiverType int

const (
	ReceiverP2PKH ReceiverType = iota
	ReceiverP2SH
	ReceiverSapling
	ReceiverOrchard
)

// Pool reports the value pool a receiver type spends from.
func (r ReceiverType) Pool() Pool {
	switch r {
	case ReceiverP2PKH, ReceiverP2SH:
		return Transparent
	case ReceiverSapling:
		return Sapling
	case ReceiverOrchard:
		return Orchard
	default:
		panic("pool: unknown receiver type")
	}
}

// Set is a small, unordered collection of pools.
type Set map[Pool]struct{}

// NewSet builds a Set from the given pools.
func NewSet(pools ...Pool) Set {
	s := make(Set, len(pools))
	for _, p := range pools {
		s[p] = struct{}{}
	}
	return s
}

// Add returns s with p included, mutating s in place.
func (s Set) Add(p Pool) Set {
	s[p] = struct{}{}
	return s
}

// Has reports whether p is a member of s.
func (s Set) Has(p Pool) bool {
	_, ok := s[p]
	return ok
}

// Union returns a new Set containing every pool in s or other.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for p := range s {
		out[p] = struct{}{}
	}
	for p := range other {
		out[p] = struct{}{}
	}
	return out
}

// ReceiverSet is a small, unordered collection of receiver types.
type ReceiverSet map[ReceiverType]struct{}

// NewReceiverSet builds a ReceiverSet from the given receiver types.
func NewReceiverSet(types ...ReceiverType) ReceiverSet {
	s := make(ReceiverSet, len(types))
	for _, t := range types {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether t is a member of s.
func (s ReceiverSet) Has(t ReceiverType) bool {
	_, ok := s[t]
	return ok
}
