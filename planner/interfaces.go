// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package planner

import (
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/zcash-community/shieldedplan/change"
	"github.com/zcash-community/shieldedplan/ovk"
	"github.com/zcash-community/shieldedplan/pool"
	"github.com/zcash-community/shieldedplan/spendable"
)

// Anchor is a note-commitment tree root binding a shielded spend to a
// historical tree state.
type Anchor = chainhash.Hash

// Chain is the planner's read-only view of the block chain. Its Locker
// guards cs_main: callers hold it across the contiguous critical section
// described in the concurrency model, released on every exit path.
type Chain interface {
	sync.Locker

	// Height returns the chain tip's height.
	Height() int

	// FinalOrchardRootAt returns the finalized Orchard note-commitment
	// root at the given height, if the chain has a block there.
	FinalOrchardRootAt(height int) (Anchor, bool)
}

// NetworkUpgrade identifies a consensus network upgrade the planner must
// gate behavior on.
type NetworkUpgrade int

// NU5 is the network upgrade that activated the Orchard pool and ZIP-225
// transaction versioning.
const NU5 NetworkUpgrade = iota

// Consensus answers activation questions that gate which pools and
// transaction shapes are available at a given height.
type Consensus interface {
	// NetworkUpgradeActive reports whether upgrade is active at height.
	NetworkUpgradeActive(height int, upgrade NetworkUpgrade) bool

	// PreferredTxVersionAtLeastZIP225 reports whether the preferred
	// transaction version at height is ZIP-225 or later.
	PreferredTxVersionAtLeastZIP225(height int) bool
}

// SaplingWitness is an opaque Merkle-path witness for a Sapling note,
// passed through to the transaction builder unexamined.
type SaplingWitness interface{ saplingWitnessTag() }

// SproutWitness is an opaque Merkle-path witness for a Sprout note.
type SproutWitness interface{ sproutWitnessTag() }

// OrchardSpendInfo pairs an Orchard note's spending key with the opaque
// spend-proof information the builder needs.
type OrchardSpendInfo struct {
	Key  pool.OrchardSpendingKey
	Info interface{}
}

// Wallet is the full set of wallet operations the planner and the
// packages it orchestrates need. Its Locker guards cs_wallet.
type Wallet interface {
	sync.Locker
	change.Wallet
	ovk.Wallet

	// FindSpendableInputs returns the candidate inputs a selector may
	// draw on, at the given minimum confirmation depth and as of height.
	FindSpendableInputs(selector pool.Selector, minDepth int, asOfHeight int) (spendable.Inputs, error)

	// GetSproutSpendingKey looks up the spending key for a Sprout
	// address, if the wallet owns it.
	GetSproutSpendingKey(addr pool.SproutAddress) (pool.SproutSpendingKey, bool)

	// GetSaplingNoteWitnesses fetches Merkle witnesses for the given
	// Sapling note outpoints at the given depth, and the anchor they
	// were computed against. ok is false if any witness is missing.
	GetSaplingNoteWitnesses(outpoints []spendable.OutPoint, depth int) (witnesses []SaplingWitness, anchor Anchor, ok bool)

	// GetSproutNoteWitnesses fetches Merkle witnesses for the given
	// Sprout JoinSplit outpoints at the given depth.
	GetSproutNoteWitnesses(outpoints []spendable.JSOutPoint, depth int) (witnesses []SproutWitness, anchor Anchor, ok bool)

	// GetOrchardSpendInfo builds spend info for the given Orchard notes
	// against anchor.
	GetOrchardSpendInfo(notes []spendable.OrchardNote, anchor Anchor) ([]OrchardSpendInfo, error)

	// LockCoin/UnlockCoin mark a transparent UTXO as reserved by a
	// pending plan.
	LockCoin(op spendable.OutPoint)
	UnlockCoin(op spendable.OutPoint)

	// LockNote/UnlockNote mark a Sapling note, and
	// LockJSOutPoint/UnlockJSOutPoint a Sprout note, as reserved by a
	// pending plan. There is deliberately no Orchard equivalent: Orchard
	// notes are never locked or unlocked by a plan.
	LockNote(op spendable.OutPoint)
	UnlockNote(op spendable.OutPoint)
	LockJSOutPoint(op spendable.JSOutPoint)
	UnlockJSOutPoint(op spendable.JSOutPoint)
}

// Builder is the external transaction-building collaborator a plan is
// handed off to once approved.
type Builder interface {
	SetFee(fee pool.Amount)
	AddOrchardSpend(info OrchardSpendInfo)
	AddSaplingSpend(note spendable.SaplingNote, witness SaplingWitness, key pool.SaplingSpendingKey)
	AddSproutInput(note spendable.SproutNote, witness SproutWitness, key pool.SproutSpendingKey)
	AddTransparentInput(utxo spendable.UTXO)
	AddTransparentOutput(receiver pool.Receiver, amount pool.Amount)
	AddSaplingOutput(receiver pool.SaplingReceiver, amount pool.Amount, memo pool.Memo, ovk pool.OVK)
	AddOrchardOutput(receiver pool.OrchardReceiver, amount pool.Amount, memo *pool.Memo, ovk pool.OVK)
	SendChangeToSprout(addr pool.SproutAddress)
	GetOrchardAnchor() (Anchor, bool)
	Build() (BuildResult, error)
}

// BuildResult is whatever the external builder hands back on success: an
// opaque signed transaction payload the planner never inspects.
type BuildResult struct {
	SignedTransaction interface{}
}

// BuilderFactory constructs a Builder for a given consensus view, target
// height and optional Orchard anchor.
type BuilderFactory interface {
	NewBuilder(consensus Consensus, nextBlockHeight int, orchardAnchor *Anchor) Builder
}
