// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool

import "fmt"

// Receiver is a concrete, single-pool receiver: the result of resolving a
// Payment's recipient, or a member of a UnifiedAddress.
type Receiver interface {
	Pool() Pool
	receiverTag()
}

// P2PKHReceiver is a transparent pay-to-pubkey-hash receiver.
type P2PKHReceiver struct{ Hash [20]byte }

func (P2PKHReceiver) Pool() Pool      { return Transparent }
func (P2PKHReceiver) receiverTag()    {}
func (P2PKHReceiver) addressTag()     {}

// P2SHReceiver is a transparent pay-to-script-hash receiver.
type P2SHReceiver struct{ Hash [20]byte }

func (P2SHReceiver) Pool() Pool   { return Transparent }
func (P2SHReceiver) receiverTag() {}
func (P2SHReceiver) addressTag()  {}

// SaplingReceiver is a Sapling shielded payment receiver.
type SaplingReceiver struct{ Raw [43]byte }

func (SaplingReceiver) Pool() Pool   { return Sapling }
func (SaplingReceiver) receiverTag() {}
func (SaplingReceiver) addressTag()  {}

// OrchardReceiver is an Orchard shielded payment receiver. Orchard receivers
// are never a bare top-level Address; they only ever appear embedded in a
// UnifiedAddress.
type OrchardReceiver struct{ Raw [43]byte }

func (OrchardReceiver) Pool() Pool   { return Orchard }
func (OrchardReceiver) receiverTag() {}

// SproutAddress is a legacy Sprout payment address. Sprout is spend-only: it
// is never a valid payment recipient, but it still needs representing, both
// as a selector and as a change destination.
type SproutAddress struct{ Raw [64]byte }

func (SproutAddress) addressTag() {}
func (SproutAddress) changeTag()  {}

// SproutViewingKey identifies a Sprout note owner for selector purposes.
type SproutViewingKey struct {
	Raw  [65]byte
	Addr SproutAddress
}

// Address returns the Sprout payment address this viewing key decrypts
// notes for.
func (v SproutViewingKey) Address() SproutAddress { return v.Addr }

// Address is the recipient variant: a Payment's destination before
// resolution to a concrete pool.
type Address interface {
	addressTag()
}

// UnifiedAddress bundles at most one receiver per ReceiverType under a
// single logical address.
type UnifiedAddress struct {
	receivers map[ReceiverType]Receiver
}

func (*UnifiedAddress) addressTag() {}

// NewUnifiedAddress builds a UnifiedAddress from its component receivers.
// It rejects more than one receiver of the same type.
func NewUnifiedAddress(receivers ...Receiver) (*UnifiedAddress, error) {
	m := make(map[ReceiverType]Receiver, len(receivers))
	for _, r := range receivers {
		rt, err := receiverTypeOf(r)
		if err != nil {
			return nil, err
		}
		if _, ok := m[rt]; ok {
			return nil, fmt.Errorf("pool: duplicate receiver type %v in unified address", rt)
		}
		m[rt] = r
	}
	return &UnifiedAddress{receivers: m}, nil
}

func receiverTypeOf(r Receiver) (ReceiverType, error) {
	switch r.(type) {
	case P2PKHReceiver:
		return ReceiverP2PKH, nil
	case P2SHReceiver:
		return ReceiverP2SH, nil
	case SaplingReceiver:
		return ReceiverSapling, nil
	case OrchardReceiver:
		return ReceiverOrchard, nil
	default:
		return 0, fmt.Errorf("pool: unsupported receiver type %T", r)
	}
}

// OrchardReceiver returns the address's Orchard receiver, if any.
func (ua *UnifiedAddress) OrchardReceiver() (OrchardReceiver, bool) {
	r, ok := ua.receivers[ReceiverOrchard]
	if !ok {
		return OrchardReceiver{}, false
	}
	return r.(OrchardReceiver), true
}

// SaplingReceiver returns the address's Sapling receiver, if any.
func (ua *UnifiedAddress) SaplingReceiver() (SaplingReceiver, bool) {
	r, ok := ua.receivers[ReceiverSapling]
	if !ok {
		return SaplingReceiver{}, false
	}
	return r.(SaplingReceiver), true
}

// P2SHReceiver returns the address's transparent script-hash receiver, if any.
func (ua *UnifiedAddress) P2SHReceiver() (P2SHReceiver, bool) {
	r, ok := ua.receivers[ReceiverP2SH]
	if !ok {
		return P2SHReceiver{}, false
	}
	return r.(P2SHReceiver), true
}

// P2PKHReceiver returns the address's transparent key-hash receiver, if any.
func (ua *UnifiedAddress) P2PKHReceiver() (P2PKHReceiver, bool) {
	r, ok := ua.receivers[ReceiverP2PKH]
	if !ok {
		return P2PKHReceiver{}, false
	}
	return r.(P2PKHReceiver), true
}

// KnownReceiverTypes returns the set of receiver types this address embeds.
func (ua *UnifiedAddress) KnownReceiverTypes() ReceiverSet {
	s := make(ReceiverSet, len(ua.receivers))
	for rt := range ua.receivers {
		s[rt] = struct{}{}
	}
	return s
}

// ChangeAddress is the destination for a transaction's change output: either
// the originating Sprout address (handled specially by the builder) or a
// concrete single-pool receiver.
type ChangeAddress interface {
	changeTag()
}

// RecipientChange wraps a concrete Receiver as a ChangeAddress.
type RecipientChange struct{ Receiver Receiver }

func (RecipientChange) changeTag() {}
