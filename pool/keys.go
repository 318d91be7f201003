// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool

// OVK is a 32-byte outgoing viewing key: it lets its holder decrypt outputs
// they sent, without granting spend authority.
type OVK [32]byte

// OVKPair is the (internal, external) outgoing viewing key pair a wallet
// uses for change and for payments to other parties respectively.
type OVKPair struct {
	Internal OVK
	External OVK
}

// SaplingExtendedFVK exposes the narrow view of a Sapling extended full
// viewing key the planner needs: its outgoing viewing keys and its default
// address for legacy-account change.
type SaplingExtendedFVK interface {
	OVKs() OVKPair
	DefaultAddress() SaplingReceiver
}

// SaplingSpendingKey is an opaque Sapling extended spending key. Its only
// operation visible to the planner is narrowing to a full viewing key; the
// secret material itself is never inspected here and is passed through to
// the transaction builder collaborator unexamined.
type SaplingSpendingKey interface {
	ToXFVK() SaplingExtendedFVK
}

// SproutSpendingKey is an opaque Sprout spending key, passed through to the
// transaction builder without ever being inspected by the planner.
type SproutSpendingKey interface {
	sproutSpendingKeyTag()
}

// OrchardSpendingKey is an opaque Orchard spending key, likewise passed
// through to the transaction builder unexamined.
type OrchardSpendingKey interface {
	orchardSpendingKeyTag()
}

// UFVK is a unified full viewing key: a bundle of per-pool viewing keys
// under one account identity.
type UFVK interface {
	OrchardOVKs() (OVKPair, bool)
	SaplingOVKs() (OVKPair, bool)
	TransparentShieldingOVKs() (OVKPair, bool)
	KnownReceiverTypes() ReceiverSet
	// ChangeAddress picks the most-private receiver within allowed that
	// this key can target, preferring the most recently added pool.
	ChangeAddress(allowed Set) (Receiver, bool)
}

// AccountKey exposes the legacy (non-unified) account's transparent
// shielding outgoing viewing keys.
type AccountKey interface {
	ShieldingOVKs() OVKPair
}
