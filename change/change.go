// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package change chooses a transaction's change destination and the pools
// it may draw on, given the selector that funded the transaction.
package change

import (
	"fmt"

	"github.com/zcash-community/shieldedplan/payment"
	"github.com/zcash-community/shieldedplan/policy"
	"github.com/zcash-community/shieldedplan/pool"
)

// Wallet is the subset of wallet operations the change planner needs to
// materialize a change destination.
type Wallet interface {
	// FindAccountForSelector reports the account a selector belongs to, if
	// the wallet can determine one.
	FindAccountForSelector(selector pool.Selector) (pool.AccountID, bool)

	// GenerateChangeAddressForAccount mints a fresh change receiver for the
	// given account, restricted to the allowed pools.
	GenerateChangeAddressForAccount(account pool.AccountID, allowed pool.Set) (pool.Receiver, bool)

	// GetUFVKForAddress looks up the unified full viewing key backing a
	// unified address the wallet recognizes as its own.
	GetUFVKForAddress(ua *pool.UnifiedAddress) (pool.UFVK, bool)
}

// InputPresence reports which pools the selected inputs actually draw on,
// used to decide which change pools are allowed without revealing new
// information the strategy wouldn't otherwise permit.
type InputPresence struct {
	Transparent bool
	Sapling     bool
	Orchard     bool
}

// Result is the outcome of planning change: always a ChangeAddress, plus a
// ResolvedPayment to append to the transaction's outputs unless the
// selector is a Sprout selector, in which case the builder derives the
// change amount itself and no payment is appended.
type Result struct {
	Address pool.ChangeAddress
	Payment *payment.ResolvedPayment
}

// Plan chooses a change destination consistent with selector, the pools the
// resolved payments already touch, and the pools the selected inputs draw
// on. changeAmount must be strictly positive; callers skip planning
// entirely when there is no change to send.
func Plan(
	selector pool.Selector,
	wallet Wallet,
	recipientPools pool.Set,
	inputs InputPresence,
	orchardActive bool,
	strategy policy.Strategy,
	changeAmount pool.Amount,
) (Result, error) {
	account, ok := wallet.FindAccountForSelector(selector)
	if !ok {
		account = pool.LegacyAccount
	}

	allowed := allowedChangePools(selector, account, recipientPools, inputs, orchardActive, strategy)

	switch sel := selector.(type) {
	case pool.TransparentKeyHashSelector:
		return generated(wallet, account, allowed, changeAmount)
	case pool.TransparentScriptHashSelector:
		return generated(wallet, account, allowed, changeAmount)

	case pool.SproutAddressSelector:
		return Result{Address: sel.Addr}, nil
	case pool.SproutViewingKeySelector:
		return Result{Address: sel.VK.Address()}, nil

	case pool.SaplingAddressSelector:
		if account == pool.LegacyAccount {
			return withPayment(pool.RecipientChange{Receiver: sel.Addr}, sel.Addr, changeAmount), nil
		}
		return generated(wallet, account, allowed, changeAmount)
	case pool.SaplingFVKSelector:
		if account == pool.LegacyAccount {
			addr := sel.FVK.DefaultAddress()
			return withPayment(pool.RecipientChange{Receiver: addr}, addr, changeAmount), nil
		}
		return generated(wallet, account, allowed, changeAmount)

	case pool.UnifiedAddressSelector:
		ufvk, ok := wallet.GetUFVKForAddress(sel.UA)
		if !ok {
			return generated(wallet, account, allowed, changeAmount)
		}
		return fromUFVK(ufvk, allowed, changeAmount)
	case pool.UnifiedFVKSelector:
		return fromUFVK(sel.UFVK, allowed, changeAmount)

	case pool.AccountSelector:
		return generated(wallet, sel.Account, allowed, changeAmount)

	default:
		return Result{}, fmt.Errorf("change: unrecognized selector type %T", selector)
	}
}

func generated(wallet Wallet, account pool.AccountID, allowed pool.Set, changeAmount pool.Amount) (Result, error) {
	receiver, ok := wallet.GenerateChangeAddressForAccount(account, allowed)
	if !ok {
		return Result{}, fmt.Errorf("change: wallet could not generate a change address for account %d over pools %v", account, allowed)
	}
	return withPayment(pool.RecipientChange{Receiver: receiver}, receiver, changeAmount), nil
}

func fromUFVK(ufvk pool.UFVK, allowed pool.Set, changeAmount pool.Amount) (Result, error) {
	receiver, ok := ufvk.ChangeAddress(allowed)
	if !ok {
		return Result{}, fmt.Errorf("change: unified key could not produce a change address over pools %v", allowed)
	}
	return withPayment(pool.RecipientChange{Receiver: receiver}, receiver, changeAmount), nil
}

func withPayment(addr pool.ChangeAddress, receiver pool.Receiver, changeAmount pool.Amount) Result {
	p := &payment.ResolvedPayment{
		Receiver:   receiver,
		Amount:     changeAmount,
		Memo:       pool.NoMemo,
		IsInternal: true,
	}
	return Result{Address: addr, Payment: p}
}

// allowedChangePools computes the set of pools change is allowed to land
// in, per spec: always the recipient pools already in use, plus any pool a
// selector's receiver types and the selected inputs jointly justify without
// revealing more than strategy permits.
func allowedChangePools(selector pool.Selector, account pool.AccountID, recipientPools pool.Set, inputs InputPresence, orchardActive bool, strategy policy.Strategy) pool.Set {
	allowed := pool.NewSet()
	for p := range recipientPools {
		allowed.Add(p)
	}
	if account != pool.LegacyAccount {
		allowed.Add(pool.Sapling)
	}

	receiverTypes := selectorReceiverTypes(selector)

	if receiverTypes.Has(pool.ReceiverP2PKH) || receiverTypes.Has(pool.ReceiverP2SH) {
		if inputs.Transparent || strategy.AllowRevealedRecipients() {
			allowed.Add(pool.Transparent)
		}
	}
	if receiverTypes.Has(pool.ReceiverSapling) {
		if inputs.Sapling || strategy.AllowRevealedAmounts() {
			allowed.Add(pool.Sapling)
		}
	}
	if receiverTypes.Has(pool.ReceiverOrchard) {
		if orchardActive && (inputs.Orchard || strategy.AllowRevealedAmounts()) {
			allowed.Add(pool.Orchard)
		}
	}
	return allowed
}

// selectorReceiverTypes reports the receiver types a selector's own address
// material implies, used only to gate which change pools are eligible.
func selectorReceiverTypes(selector pool.Selector) pool.ReceiverSet {
	switch sel := selector.(type) {
	case pool.TransparentKeyHashSelector:
		return pool.NewReceiverSet(pool.ReceiverP2PKH)
	case pool.TransparentScriptHashSelector:
		return pool.NewReceiverSet(pool.ReceiverP2SH)
	case pool.SaplingAddressSelector, pool.SaplingFVKSelector:
		return pool.NewReceiverSet(pool.ReceiverSapling)
	case pool.UnifiedAddressSelector:
		return sel.UA.KnownReceiverTypes()
	case pool.UnifiedFVKSelector:
		return sel.UFVK.KnownReceiverTypes()
	case pool.AccountSelector:
		return sel.ReceiverTypes
	default:
		return pool.NewReceiverSet()
	}
}
