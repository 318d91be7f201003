// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment

import (
	"fmt"

	"github.com/zcash-community/shieldedplan/policy"
	"github.com/zcash-community/shieldedplan/pool"
)

// Budget carries the resolver's mutable per-pool amount-revealing budgets
// and Orchard eligibility, computed by the caller from the wallet's
// unfiltered spendable inputs before any input selection has occurred.
type Budget struct {
	// MaxSaplingAvailable bounds how much value may be sent to Sapling
	// receivers before the resolver must fall back on the strategy's
	// consent to reveal amounts.
	MaxSaplingAvailable pool.Amount
	// MaxOrchardAvailable bounds how much value may be sent to Orchard
	// receivers before the resolver must fall back on the strategy's
	// consent to reveal amounts.
	MaxOrchardAvailable pool.Amount
	// CanResolveOrchard reports whether Orchard receivers may be targeted
	// at all: NU5 must be active at the anchor height, and the spendable
	// set's non-Sprout total must cover the transaction's target amount,
	// since Sprout can only unify with Orchard through Sapling
	// intermediation in the builder.
	CanResolveOrchard bool
}

// MemoNotAllowedError is returned when a payment to a transparent receiver
// carries a memo, which transparent outputs have no room to encode.
type MemoNotAllowedError struct {
	Index int
}

func (e *MemoNotAllowedError) Error() string {
	return fmt.Sprintf("payment %d: memo not allowed for a transparent recipient", e.Index)
}

// CouldNotResolveReceiverError is returned when the strategy permits
// revealing recipients but none of a unified address's receivers can be
// targeted: its Orchard receiver cannot be resolved (pre-NU5 or
// insufficient non-Sprout funds) and it has no transparent receiver to fall
// back on.
type CouldNotResolveReceiverError struct {
	Index int
}

func (e *CouldNotResolveReceiverError) Error() string {
	return fmt.Sprintf("payment %d: could not resolve a usable receiver from the unified address", e.Index)
}

// RevealedRecipientError is returned when resolving a payment would reveal
// the recipient's address, but the governing privacy policy forbids it.
type RevealedRecipientError struct {
	Index int
}

func (e *RevealedRecipientError) Error() string {
	return fmt.Sprintf("payment %d: resolving to a transparent receiver would reveal the recipient, which the privacy policy forbids", e.Index)
}

// SproutRecipientsNotSupportedError is returned for any payment addressed
// to a Sprout address: Sprout is spend-only and can never be a payment
// recipient, regardless of strategy.
type SproutRecipientsNotSupportedError struct {
	Index int
}

func (e *SproutRecipientsNotSupportedError) Error() string {
	return fmt.Sprintf("payment %d: Sprout addresses are not supported as payment recipients", e.Index)
}

// RevealingSaplingAmountNotAllowedError is returned when a payment directly
// addressed to a Sapling receiver would exceed the Sapling amount-revealing
// budget, and the strategy does not otherwise permit revealing amounts.
type RevealingSaplingAmountNotAllowedError struct {
	Index int
}

func (e *RevealingSaplingAmountNotAllowedError) Error() string {
	return fmt.Sprintf("payment %d: revealing the Sapling payment amount is not allowed", e.Index)
}

// TransparentReceiverNotAllowedError is returned when a unified address's
// shielded receivers are all unusable and the strategy permits revealing
// amounts but not recipients, so falling back to a transparent receiver is
// not an option.
type TransparentReceiverNotAllowedError struct {
	Index int
}

func (e *TransparentReceiverNotAllowedError) Error() string {
	return fmt.Sprintf("payment %d: falling back to a transparent receiver is not allowed", e.Index)
}

// RevealingReceiverAmountsNotAllowedError is returned when a unified
// address's shielded receivers are all unusable and the strategy permits
// neither revealing amounts nor recipients.
type RevealingReceiverAmountsNotAllowedError struct {
	Index int
}

func (e *RevealingReceiverAmountsNotAllowedError) Error() string {
	return fmt.Sprintf("payment %d: revealing the receiver amount is not allowed", e.Index)
}

// Resolve narrows each payment's recipient address down to one concrete
// pool receiver, preferring the most private receiver a unified address
// offers that is both consensus-active and permitted under strategy and
// budget. It fails on the first unresolvable payment, preserving recipient
// order, and rejects the whole batch if it would create more Orchard
// outputs than maxOrchardActions allows.
func Resolve(payments Payments, strategy policy.Strategy, budget Budget, maxOrchardActions int) (Resolved, error) {
	maxSapling := budget.MaxSaplingAvailable
	maxOrchard := budget.MaxOrchardAvailable

	resolved := make(Resolved, 0, len(payments))
	orchardOutputs := 0
	for i, p := range payments {
		r, isOrchard, err := resolveOne(i, p, strategy, budget.CanResolveOrchard, &maxSapling, &maxOrchard)
		if err != nil {
			return nil, err
		}
		if isOrchard {
			orchardOutputs++
		}
		resolved = append(resolved, r)
	}
	if orchardOutputs > maxOrchardActions {
		return nil, &pool.ExcessOrchardActionsError{Side: pool.ActionOutput, Count: orchardOutputs, Limit: maxOrchardActions}
	}
	return resolved, nil
}

func resolveOne(index int, p Payment, strategy policy.Strategy, canResolveOrchard bool, maxSapling, maxOrchard *pool.Amount) (ResolvedPayment, bool, error) {
	switch addr := p.Recipient.(type) {
	case pool.P2PKHReceiver:
		r, err := transparentResolved(index, addr, p, strategy)
		return r, false, err
	case pool.P2SHReceiver:
		r, err := transparentResolved(index, addr, p, strategy)
		return r, false, err
	case pool.SaplingReceiver:
		r, err := saplingDirectResolved(index, addr, p, strategy, maxSapling)
		return r, false, err
	case pool.SproutAddress:
		return ResolvedPayment{}, false, &SproutRecipientsNotSupportedError{Index: index}
	case *pool.UnifiedAddress:
		return resolveUnified(index, addr, p, strategy, canResolveOrchard, maxSapling, maxOrchard)
	default:
		return ResolvedPayment{}, false, fmt.Errorf("payment %d: unrecognized recipient address type %T", index, p.Recipient)
	}
}

func transparentResolved(index int, receiver pool.Receiver, p Payment, strategy policy.Strategy) (ResolvedPayment, error) {
	if p.Memo != nil {
		return ResolvedPayment{}, &MemoNotAllowedError{Index: index}
	}
	if !strategy.AllowRevealedRecipients() {
		return ResolvedPayment{}, &RevealedRecipientError{Index: index}
	}
	return ResolvedPayment{Receiver: receiver, Amount: p.Amount, Memo: pool.NoMemo}, nil
}

func shieldedResolved(receiver pool.Receiver, p Payment) ResolvedPayment {
	memo := pool.NoMemo
	if p.Memo != nil {
		memo = *p.Memo
	}
	return ResolvedPayment{Receiver: receiver, Amount: p.Amount, Memo: memo}
}

// saplingDirectResolved resolves a payment addressed directly to a Sapling
// receiver, gating on the amount-revealing budget and decrementing it only
// when the gate was the budget rather than the strategy's own consent.
func saplingDirectResolved(index int, receiver pool.SaplingReceiver, p Payment, strategy policy.Strategy, maxSapling *pool.Amount) (ResolvedPayment, error) {
	if !strategy.AllowRevealedAmounts() && p.Amount > *maxSapling {
		return ResolvedPayment{}, &RevealingSaplingAmountNotAllowedError{Index: index}
	}
	if !strategy.AllowRevealedAmounts() {
		*maxSapling -= p.Amount
	}
	return shieldedResolved(receiver, p), nil
}

// resolveUnified dispatches a unified-address payment to the most private
// receiver that is present on the address, consensus-active, and
// permitted under strategy and budget: Orchard, then Sapling, then P2SH,
// then P2PKH. It reports whether the payment landed on Orchard, for the
// caller's action-count bookkeeping.
func resolveUnified(index int, ua *pool.UnifiedAddress, p Payment, strategy policy.Strategy, canResolveOrchard bool, maxSapling, maxOrchard *pool.Amount) (ResolvedPayment, bool, error) {
	if orchard, ok := ua.OrchardReceiver(); ok && canResolveOrchard && (strategy.AllowRevealedAmounts() || p.Amount <= *maxOrchard) {
		if !strategy.AllowRevealedAmounts() {
			*maxOrchard -= p.Amount
		}
		return shieldedResolved(orchard, p), true, nil
	}
	if sapling, ok := ua.SaplingReceiver(); ok && (strategy.AllowRevealedAmounts() || p.Amount <= *maxSapling) {
		if !strategy.AllowRevealedAmounts() {
			*maxSapling -= p.Amount
		}
		return shieldedResolved(sapling, p), false, nil
	}

	// Neither shielded receiver qualified: this is either a shielded-only
	// receiver whose pool is unavailable or over budget, or a unified
	// address that only carries transparent receivers.
	if strategy.AllowRevealedRecipients() {
		if p2sh, ok := ua.P2SHReceiver(); ok {
			return ResolvedPayment{Receiver: p2sh, Amount: p.Amount, Memo: pool.NoMemo}, false, nil
		}
		if p2pkh, ok := ua.P2PKHReceiver(); ok {
			return ResolvedPayment{Receiver: p2pkh, Amount: p.Amount, Memo: pool.NoMemo}, false, nil
		}
		// An Orchard-only unified address whose Orchard receiver could
		// not be resolved (insufficient non-Sprout funds or pre-NU5),
		// with no transparent receiver to fall back on.
		return ResolvedPayment{}, false, &CouldNotResolveReceiverError{Index: index}
	}
	if strategy.AllowRevealedAmounts() {
		return ResolvedPayment{}, false, &TransparentReceiverNotAllowedError{Index: index}
	}
	return ResolvedPayment{}, false, &RevealingReceiverAmountsNotAllowedError{Index: index}
}
