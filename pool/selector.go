// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool

// AccountID identifies a wallet account. LegacyAccount is the sentinel for
// the original, pre-unified-address account.
type AccountID uint32

// LegacyAccount is the account used by selectors and addresses that predate
// unified accounts.
const LegacyAccount AccountID = 0

// Selector (ZTXOSelector) describes where a transaction's inputs may be
// drawn from.
type Selector interface {
	selectorTag()
}

// TransparentKeyHashSelector draws from a single transparent key-hash
// address's UTXOs.
type TransparentKeyHashSelector struct{ Hash [20]byte }

func (TransparentKeyHashSelector) selectorTag() {}

// TransparentScriptHashSelector draws from a single transparent
// script-hash address's UTXOs.
type TransparentScriptHashSelector struct{ Hash [20]byte }

func (TransparentScriptHashSelector) selectorTag() {}

// SproutAddressSelector draws from a single Sprout address's notes.
type SproutAddressSelector struct{ Addr SproutAddress }

func (SproutAddressSelector) selectorTag() {}

// SproutViewingKeySelector draws from every Sprout note a viewing key
// decrypts.
type SproutViewingKeySelector struct{ VK SproutViewingKey }

func (SproutViewingKeySelector) selectorTag() {}

// SaplingAddressSelector draws from a single Sapling address's notes.
type SaplingAddressSelector struct{ Addr SaplingReceiver }

func (SaplingAddressSelector) selectorTag() {}

// SaplingFVKSelector draws from every Sapling note an extended full viewing
// key can see.
type SaplingFVKSelector struct{ FVK SaplingExtendedFVK }

func (SaplingFVKSelector) selectorTag() {}

// UnifiedAddressSelector draws from every pool a unified address has a
// receiver for.
type UnifiedAddressSelector struct{ UA *UnifiedAddress }

func (UnifiedAddressSelector) selectorTag() {}

// UnifiedFVKSelector draws from every pool a unified full viewing key can
// see.
type UnifiedFVKSelector struct{ UFVK UFVK }

func (UnifiedFVKSelector) selectorTag() {}

// AccountSelector draws from an entire account, restricted to the given
// receiver types.
type AccountSelector struct {
	Account       AccountID
	ReceiverTypes ReceiverSet
}

func (AccountSelector) selectorTag() {}
