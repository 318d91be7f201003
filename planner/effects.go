// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package planner

import (
	"github.com/zcash-community/shieldedplan/payment"
	"github.com/zcash-community/shieldedplan/policy"
	"github.com/zcash-community/shieldedplan/pool"
	"github.com/zcash-community/shieldedplan/spendable"
)

// PlanState is a plan's position in its Draft → Planned → Built | Aborted
// lifecycle.
type PlanState int

const (
	// Planned is the state a TransactionEffects is constructed in:
	// PrepareTransaction has succeeded and inputs are locked.
	Planned PlanState = iota
	// Built is reached once ApproveAndBuild has returned a signed
	// transaction.
	Built
	// Aborted is reached if ApproveAndBuild fails; inputs remain locked
	// until the caller releases them.
	Aborted
)

// TransactionEffects is the immutable output of PrepareTransaction: a fully
// planned, but not yet built, transaction. Plans are single-use.
type TransactionEffects struct {
	Selector             pool.Selector
	Spendable            spendable.Inputs
	Payments             payment.Resolved
	ChangeAddress        pool.ChangeAddress
	Fee                  pool.Amount
	InternalOVK          pool.OVK
	ExternalOVK          pool.OVK
	AnchorHeight         int
	AnchorConfirmations  int
	MaxOrchardActions    int

	state  PlanState
	locked bool
}

// State reports the plan's current lifecycle state.
func (e *TransactionEffects) State() PlanState { return e.state }

// RequiredPrivacyPolicy computes the minimum privacy policy this plan's
// shape demands, per the priority order:
//
//  1. any transparent input present → AllowRevealedSenders, regardless of
//     whether a transparent recipient also exists.
//  2. no transparent input, but a transparent recipient → AllowRevealedRecipients.
//  3. no transparent input or recipient, but a cross-pool combination that
//     necessarily reveals a non-zero value balance → AllowRevealedAmounts.
//  4. otherwise → FullPrivacy.
//
// Case 1 is preserved exactly as implemented upstream even though, absent a
// transparent recipient, AllowFullyTransparent would seem the more precise
// answer; this function intentionally does not "fix" that.
func (e *TransactionEffects) RequiredPrivacyPolicy() policy.Strategy {
	if len(e.Spendable.UTXOs) > 0 {
		return policy.AllowRevealedSenders
	}
	if e.Payments.Pools().Has(pool.Transparent) {
		return policy.AllowRevealedRecipients
	}

	inputOrchard := len(e.Spendable.Orchard) > 0
	inputSapling := len(e.Spendable.Sapling) > 0
	inputSprout := len(e.Spendable.Sprout) > 0
	outputSapling := e.Payments.Pools().Has(pool.Sapling)
	outputOrchard := e.Payments.Pools().Has(pool.Orchard)

	revealsAmount := (inputOrchard && outputSapling) ||
		(inputSapling && outputOrchard) ||
		(inputSprout && outputSapling)
	if revealsAmount {
		return policy.AllowRevealedAmounts
	}
	return policy.FullPrivacy
}

// LockSpendable reserves every selected input against concurrent use by
// another plan. Orchard notes are deliberately left unlocked: the wallet
// collaborator this plan is built against never grew a LockNote/UnlockNote
// path for the Orchard pool, and that gap is preserved rather than papered
// over here.
func (e *TransactionEffects) LockSpendable(wallet Wallet) {
	if e.locked {
		return
	}
	for _, u := range e.Spendable.UTXOs {
		wallet.LockCoin(u.OutPoint)
	}
	for _, n := range e.Spendable.Sapling {
		wallet.LockNote(n.OutPoint)
	}
	for _, n := range e.Spendable.Sprout {
		wallet.LockJSOutPoint(n.OutPoint)
	}
	e.locked = true
}

// UnlockSpendable releases every lock LockSpendable took. Calling it twice,
// or calling it before ever locking, is a no-op.
func (e *TransactionEffects) UnlockSpendable(wallet Wallet) {
	if !e.locked {
		return
	}
	for _, u := range e.Spendable.UTXOs {
		wallet.UnlockCoin(u.OutPoint)
	}
	for _, n := range e.Spendable.Sapling {
		wallet.UnlockNote(n.OutPoint)
	}
	for _, n := range e.Spendable.Sprout {
		wallet.UnlockJSOutPoint(n.OutPoint)
	}
	e.locked = false
}
