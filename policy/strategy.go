// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package policy implements the privacy-policy lattice a caller uses to
// bound how much a plan is allowed to leak.
package policy

import "fmt"

// Strategy is a privacy policy acting as an upper bound on permitted leaks.
// Strategy values form a total order from most permissive (NoPrivacy) to
// least permissive (FullPrivacy); IsCompatibleWith is a single ordinal
// comparison against that order.
//
// The ordinal assignment below is not a literal transcription of the
// enumeration order spec.md's data model section lists the policy names in;
// it is derived from the worked scenarios S1 and S4, which pin down,
// respectively, that AllowFullyTransparent must be at least as permissive as
// AllowRevealedSenders, and that AllowRevealedSendersAndRecipients must
// satisfy AllowRevealedRecipients(). See DESIGN.md for the derivation.
type Strategy int

const (
	NoPrivacy Strategy = iota
	AllowFullyTransparent
	AllowRevealedSendersAndRecipients
	AllowLinkingAccountAddresses
	AllowRevealedSenders
	AllowRevealedRecipients
	AllowRevealedAmounts
	FullPrivacy
)

var names = map[Strategy]string{
	NoPrivacy:                          "NoPrivacy",
	AllowFullyTransparent:              "AllowFullyTransparent",
	AllowRevealedSendersAndRecipients:  "AllowRevealedSendersAndRecipients",
	AllowLinkingAccountAddresses:       "AllowLinkingAccountAddresses",
	AllowRevealedSenders:               "AllowRevealedSenders",
	AllowRevealedRecipients:            "AllowRevealedRecipients",
	AllowRevealedAmounts:               "AllowRevealedAmounts",
	FullPrivacy:                        "FullPrivacy",
}

func (s Strategy) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// IsCompatibleWith reports whether this strategy permits at least as much
// leakage as required demands, i.e. whether it is at least as permissive.
func (s Strategy) IsCompatibleWith(required Strategy) bool {
	return s <= required
}

// AllowRevealedSenders reports whether this strategy permits the plan's
// transparent inputs (senders) to be revealed.
func (s Strategy) AllowRevealedSenders() bool {
	return s.IsCompatibleWith(AllowRevealedSenders)
}

// AllowRevealedRecipients reports whether this strategy permits the plan's
// transparent outputs (recipients) to be revealed.
func (s Strategy) AllowRevealedRecipients() bool {
	return s.IsCompatibleWith(AllowRevealedRecipients)
}

// AllowRevealedAmounts reports whether this strategy permits cross-pool
// amounts to be revealed.
func (s Strategy) AllowRevealedAmounts() bool {
	return s.IsCompatibleWith(AllowRevealedAmounts)
}
