// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package policy

import "testing"

// TestScenarioS1Compatibility pins AllowFullyTransparent as compatible with
// a required policy of AllowRevealedSenders, per spec.md scenario S1.
func TestScenarioS1Compatibility(t *testing.T) {
	if !AllowFullyTransparent.IsCompatibleWith(AllowRevealedSenders) {
		t.Fatal("AllowFullyTransparent must be compatible with AllowRevealedSenders (S1)")
	}
}

// TestScenarioS4RecipientsAllowance pins AllowRevealedSendersAndRecipients
// as permitting revealed recipients, per spec.md scenario S4.
func TestScenarioS4RecipientsAllowance(t *testing.T) {
	if !AllowRevealedSendersAndRecipients.AllowRevealedRecipients() {
		t.Fatal("AllowRevealedSendersAndRecipients must allow revealed recipients (S4)")
	}
}

func TestLatticeIsTotallyOrdered(t *testing.T) {
	order := []Strategy{
		NoPrivacy, AllowFullyTransparent, AllowRevealedSendersAndRecipients,
		AllowLinkingAccountAddresses, AllowRevealedSenders, AllowRevealedRecipients,
		AllowRevealedAmounts, FullPrivacy,
	}
	for i := range order {
		for j := range order {
			want := i <= j
			got := order[i].IsCompatibleWith(order[j])
			if got != want {
				t.Fatalf("%v.IsCompatibleWith(%v) = %v, want %v", order[i], order[j], got, want)
			}
		}
	}
}

func TestAllowancesAreNested(t *testing.T) {
	// Anything that allows revealed senders must also allow revealed
	// recipients and revealed amounts: senders is the strictest gate.
	for s := NoPrivacy; s <= FullPrivacy; s++ {
		if s.AllowRevealedSenders() && !s.AllowRevealedRecipients() {
			t.Fatalf("%v allows revealed senders but not recipients", s)
		}
		if s.AllowRevealedRecipients() && !s.AllowRevealedAmounts() {
			t.Fatalf("%v allows revealed recipients but not amounts", s)
		}
	}
	if FullPrivacy.AllowRevealedAmounts() {
		t.Fatal("FullPrivacy must not allow revealed amounts")
	}
}
