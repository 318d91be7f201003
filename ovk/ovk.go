// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ovk selects the outgoing viewing keys a transaction's internal
// (change) and external outputs are encrypted to.
package ovk

import (
	"fmt"

	"github.com/zcash-community/shieldedplan/pool"
)

// Wallet is the subset of wallet operations the OVK selector needs.
type Wallet interface {
	// GetLegacyAccountKey returns the legacy account's transparent
	// shielding keys, used by transparent and Sprout selectors.
	GetLegacyAccountKey() pool.AccountKey

	// GetSaplingExtendedSpendingKey looks up the extended spending key
	// backing a Sapling payment address, if the wallet owns it.
	GetSaplingExtendedSpendingKey(addr pool.SaplingReceiver) (pool.SaplingSpendingKey, bool)

	// GetUFVKForAddress looks up the unified full viewing key backing a
	// unified address the wallet recognizes as its own.
	GetUFVKForAddress(ua *pool.UnifiedAddress) (pool.UFVK, bool)

	// GetUnifiedFullViewingKeyByAccount looks up the wallet's unified full
	// viewing key for a non-legacy account.
	GetUnifiedFullViewingKeyByAccount(account pool.AccountID) (pool.UFVK, bool)
}

// InputPresence reports which pools the transaction's selected inputs
// actually draw on, used to pick which of a unified key's OVKs to encrypt
// outputs to: the pool doing the spending is the pool whose OVKs apply.
type InputPresence struct {
	Transparent bool
	Sapling     bool
	Orchard     bool
}

// NotFoundError is returned when the wallet does not hold the key material
// a selector requires in order to derive outgoing viewing keys.
type NotFoundError struct {
	Selector pool.Selector
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("ovk: no key material found for selector %T", e.Selector)
}

// Select returns the (internal, external) outgoing viewing keys a
// transaction drawn from selector should encrypt its outputs to. inputs
// reports which pools the transaction's selected inputs actually draw on,
// which for a unified key decides which of its per-pool OVKs apply.
func Select(selector pool.Selector, wallet Wallet, inputs InputPresence) (pool.OVKPair, error) {
	switch sel := selector.(type) {
	case pool.TransparentKeyHashSelector:
		return wallet.GetLegacyAccountKey().ShieldingOVKs(), nil
	case pool.TransparentScriptHashSelector:
		return wallet.GetLegacyAccountKey().ShieldingOVKs(), nil
	case pool.SproutAddressSelector:
		return wallet.GetLegacyAccountKey().ShieldingOVKs(), nil
	case pool.SproutViewingKeySelector:
		return wallet.GetLegacyAccountKey().ShieldingOVKs(), nil

	case pool.SaplingAddressSelector:
		xsk, ok := wallet.GetSaplingExtendedSpendingKey(sel.Addr)
		if !ok {
			return pool.OVKPair{}, &NotFoundError{Selector: selector}
		}
		return xsk.ToXFVK().OVKs(), nil
	case pool.SaplingFVKSelector:
		return sel.FVK.OVKs(), nil

	case pool.UnifiedAddressSelector:
		ufvk, ok := wallet.GetUFVKForAddress(sel.UA)
		if !ok {
			return pool.OVKPair{}, &NotFoundError{Selector: selector}
		}
		return forUFVK(ufvk, inputs)
	case pool.UnifiedFVKSelector:
		return forUFVK(sel.UFVK, inputs)

	case pool.AccountSelector:
		if sel.Account == pool.LegacyAccount {
			return wallet.GetLegacyAccountKey().ShieldingOVKs(), nil
		}
		ufvk, ok := wallet.GetUnifiedFullViewingKeyByAccount(sel.Account)
		if !ok {
			return pool.OVKPair{}, &NotFoundError{Selector: selector}
		}
		return forUFVK(ufvk, inputs)

	default:
		return pool.OVKPair{}, fmt.Errorf("ovk: unrecognized selector type %T", selector)
	}
}

// forUFVK implements GetOVKsForUFVK: the OVKs used are the ones belonging
// to whichever pool the transaction's inputs actually draw on. When a
// transaction draws from more than one pool, Orchard takes priority over
// Sapling, which takes priority over transparent.
func forUFVK(ufvk pool.UFVK, inputs InputPresence) (pool.OVKPair, error) {
	switch {
	case inputs.Orchard:
		pair, ok := ufvk.OrchardOVKs()
		if !ok {
			return pool.OVKPair{}, fmt.Errorf("ovk: unified key has no Orchard OVKs for an Orchard-funded transaction")
		}
		return pair, nil
	case inputs.Sapling:
		pair, ok := ufvk.SaplingOVKs()
		if !ok {
			return pool.OVKPair{}, fmt.Errorf("ovk: unified key has no Sapling OVKs for a Sapling-funded transaction")
		}
		return pair, nil
	case inputs.Transparent:
		pair, ok := ufvk.TransparentShieldingOVKs()
		if !ok {
			return pool.OVKPair{}, fmt.Errorf("ovk: unified key has no transparent shielding OVKs for a transparent-funded transaction")
		}
		return pair, nil
	default:
		return pool.OVKPair{}, fmt.Errorf("ovk: unified key could not select OVKs: no recognized input pool is present")
	}
}
