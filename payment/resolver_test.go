// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zcash-community/shieldedplan/policy"
	"github.com/zcash-community/shieldedplan/pool"
)

// unlimited is a budget with no amount-revealing pressure and Orchard
// available, used by tests that aren't exercising the budget itself.
var unlimited = Budget{
	MaxSaplingAvailable: pool.MaxMoney,
	MaxOrchardAvailable: pool.MaxMoney,
	CanResolveOrchard:   true,
}

const noOrchardLimit = 1 << 20

// TestScenarioS1TransparentToTransparent covers spec.md scenario S1: a
// payment to a bare P2PKH address resolves to a transparent receiver under
// a strategy that allows it.
func TestScenarioS1TransparentToTransparent(t *testing.T) {
	recipient := pool.P2PKHReceiver{Hash: [20]byte{1}}
	payments := Payments{{Recipient: recipient, Amount: 90000000}}

	resolved, err := Resolve(payments, policy.AllowFullyTransparent, unlimited, noOrchardLimit)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	require.Equal(t, pool.Transparent, resolved[0].Pool())
}

// TestScenarioS2UnifiedAddressPrefersOrchardWhenActive covers spec.md
// scenario S2: a unified address with both Orchard and Sapling receivers
// resolves to Orchard once Orchard can be resolved.
func TestScenarioS2UnifiedAddressPrefersOrchardWhenActive(t *testing.T) {
	ua, err := pool.NewUnifiedAddress(pool.OrchardReceiver{Raw: [43]byte{1}}, pool.SaplingReceiver{Raw: [43]byte{2}})
	require.NoError(t, err)
	payments := Payments{{Recipient: ua, Amount: 100000000}}

	resolved, err := Resolve(payments, policy.FullPrivacy, unlimited, noOrchardLimit)
	require.NoError(t, err)
	require.Equal(t, pool.Orchard, resolved[0].Pool())
}

// TestScenarioS3UnifiedAddressFallsBackToSaplingPreNU5 covers spec.md
// scenario S3: the same unified address resolves to Sapling when Orchard
// cannot be resolved (e.g. pre-NU5 or insufficient non-Sprout funds).
func TestScenarioS3UnifiedAddressFallsBackToSaplingPreNU5(t *testing.T) {
	ua, err := pool.NewUnifiedAddress(pool.OrchardReceiver{Raw: [43]byte{1}}, pool.SaplingReceiver{Raw: [43]byte{2}})
	require.NoError(t, err)
	payments := Payments{{Recipient: ua, Amount: 100000000}}

	budget := unlimited
	budget.CanResolveOrchard = false
	resolved, err := Resolve(payments, policy.FullPrivacy, budget, noOrchardLimit)
	require.NoError(t, err)
	require.Equal(t, pool.Sapling, resolved[0].Pool())
}

// TestScenarioS4OrchardOnlyUnavailableFails covers spec.md scenario S4: a
// unified address with only an Orchard receiver cannot resolve when Orchard
// is unavailable, regardless of how permissive the strategy is.
func TestScenarioS4OrchardOnlyUnavailableFails(t *testing.T) {
	ua, err := pool.NewUnifiedAddress(pool.OrchardReceiver{Raw: [43]byte{1}})
	require.NoError(t, err)
	payments := Payments{{Recipient: ua, Amount: 100000000}}

	budget := unlimited
	budget.CanResolveOrchard = false
	_, err = Resolve(payments, policy.AllowRevealedSendersAndRecipients, budget, noOrchardLimit)
	var target *CouldNotResolveReceiverError
	require.ErrorAs(t, err, &target)
}

func TestMemoToTransparentRejected(t *testing.T) {
	memo := pool.NoMemo
	payments := Payments{{Recipient: pool.P2PKHReceiver{}, Amount: 1, Memo: &memo}}

	_, err := Resolve(payments, policy.AllowFullyTransparent, unlimited, noOrchardLimit)
	var target *MemoNotAllowedError
	require.ErrorAs(t, err, &target)
}

func TestRevealedRecipientRejectedUnderStrictStrategy(t *testing.T) {
	payments := Payments{{Recipient: pool.P2PKHReceiver{}, Amount: 1}}

	_, err := Resolve(payments, policy.FullPrivacy, unlimited, noOrchardLimit)
	var target *RevealedRecipientError
	require.ErrorAs(t, err, &target)
}

// TestSproutRecipientAlwaysRejected covers spec.md's rule that a Sprout
// address can never be a payment recipient, regardless of strategy.
func TestSproutRecipientAlwaysRejected(t *testing.T) {
	payments := Payments{{Recipient: pool.SproutAddress{Raw: [64]byte{1}}, Amount: 1}}

	_, err := Resolve(payments, policy.NoPrivacy, unlimited, noOrchardLimit)
	var target *SproutRecipientsNotSupportedError
	require.ErrorAs(t, err, &target)
}

// TestSaplingAmountOverBudgetRejectedUnderStrictStrategy covers the
// amount-revealing budget on a direct Sapling payment: a strategy that
// doesn't already allow revealed amounts can still fund a payment at or
// under the Sapling budget, but not over it.
func TestSaplingAmountOverBudgetRejectedUnderStrictStrategy(t *testing.T) {
	addr := pool.SaplingReceiver{Raw: [43]byte{1}}
	payments := Payments{{Recipient: addr, Amount: 100}}

	budget := Budget{MaxSaplingAvailable: 99}
	_, err := Resolve(payments, policy.FullPrivacy, budget, noOrchardLimit)
	var target *RevealingSaplingAmountNotAllowedError
	require.ErrorAs(t, err, &target)
}

// TestSaplingBudgetDecrementsAcrossPayments covers spec.md's rule that the
// Sapling budget is shared and decremented across the whole batch: a
// second payment that would have fit alone fails once an earlier payment
// has consumed the budget.
func TestSaplingBudgetDecrementsAcrossPayments(t *testing.T) {
	addr := pool.SaplingReceiver{Raw: [43]byte{1}}
	payments := Payments{
		{Recipient: addr, Amount: 60},
		{Recipient: addr, Amount: 60},
	}

	budget := Budget{MaxSaplingAvailable: 100}
	_, err := Resolve(payments, policy.FullPrivacy, budget, noOrchardLimit)
	var target *RevealingSaplingAmountNotAllowedError
	require.ErrorAs(t, err, &target)
}

// TestSaplingAmountWithinBudgetSucceedsUnderFullPrivacy covers the
// accepting branch of the same budget gate.
func TestSaplingAmountWithinBudgetSucceedsUnderFullPrivacy(t *testing.T) {
	addr := pool.SaplingReceiver{Raw: [43]byte{1}}
	payments := Payments{{Recipient: addr, Amount: 100}}

	budget := Budget{MaxSaplingAvailable: 100}
	resolved, err := Resolve(payments, policy.FullPrivacy, budget, noOrchardLimit)
	require.NoError(t, err)
	require.Equal(t, pool.Sapling, resolved[0].Pool())
}

// TestOrchardOutOfBudgetFallsBackToSapling covers the unified-address
// Orchard-to-Sapling fallback when Orchard is resolvable in principle but
// the payment would exceed the Orchard amount budget.
func TestOrchardOutOfBudgetFallsBackToSapling(t *testing.T) {
	ua, err := pool.NewUnifiedAddress(pool.OrchardReceiver{Raw: [43]byte{1}}, pool.SaplingReceiver{Raw: [43]byte{2}})
	require.NoError(t, err)
	payments := Payments{{Recipient: ua, Amount: 100}}

	budget := Budget{MaxSaplingAvailable: 100, MaxOrchardAvailable: 50, CanResolveOrchard: true}
	resolved, err := Resolve(payments, policy.FullPrivacy, budget, noOrchardLimit)
	require.NoError(t, err)
	require.Equal(t, pool.Sapling, resolved[0].Pool())
}

// TestUnifiedAddressFallbackToTransparentDiscardsMemo covers spec.md's
// rule that a unified address's transparent fallback receiver discards any
// memo rather than rejecting the payment outright.
func TestUnifiedAddressFallbackToTransparentDiscardsMemo(t *testing.T) {
	ua, err := pool.NewUnifiedAddress(pool.P2PKHReceiver{Hash: [20]byte{9}})
	require.NoError(t, err)
	memo := pool.Memo{1, 2, 3}
	payments := Payments{{Recipient: ua, Amount: 1, Memo: &memo}}

	budget := Budget{CanResolveOrchard: false}
	resolved, err := Resolve(payments, policy.AllowRevealedSendersAndRecipients, budget, noOrchardLimit)
	require.NoError(t, err)
	require.Equal(t, pool.NoMemo, resolved[0].Memo)
}

// TestUnifiedAddressExhaustedErrorSelection covers spec.md's three-way
// error selection when none of a unified address's receivers qualify: the
// error depends on exactly which freedoms the strategy grants.
func TestUnifiedAddressExhaustedErrorSelection(t *testing.T) {
	ua, err := pool.NewUnifiedAddress(pool.SaplingReceiver{Raw: [43]byte{1}})
	require.NoError(t, err)
	payments := Payments{{Recipient: ua, Amount: 100}}
	budget := Budget{MaxSaplingAvailable: 0}

	t.Run("amounts allowed but not recipients yields TransparentReceiverNotAllowed", func(t *testing.T) {
		// AllowRevealedAmounts lifts the Sapling budget, so under this
		// strategy only an Orchard receiver that cannot be resolved leaves
		// the address without a usable shielded receiver.
		orchardOnly, err := pool.NewUnifiedAddress(pool.OrchardReceiver{Raw: [43]byte{1}})
		require.NoError(t, err)
		orchardPayments := Payments{{Recipient: orchardOnly, Amount: 100}}
		_, err = Resolve(orchardPayments, policy.AllowRevealedAmounts, Budget{CanResolveOrchard: false}, noOrchardLimit)
		var target *TransparentReceiverNotAllowedError
		require.ErrorAs(t, err, &target)
	})

	t.Run("neither allowed yields RevealingReceiverAmountsNotAllowed", func(t *testing.T) {
		_, err := Resolve(payments, policy.FullPrivacy, budget, noOrchardLimit)
		var target *RevealingReceiverAmountsNotAllowedError
		require.ErrorAs(t, err, &target)
	})
}

// TestExcessOrchardOutputsRejected covers spec.md's rule that the resolver
// rejects a batch that would create more Orchard outputs than the
// configured limit allows, even though each individual payment resolves.
func TestExcessOrchardOutputsRejected(t *testing.T) {
	ua, err := pool.NewUnifiedAddress(pool.OrchardReceiver{Raw: [43]byte{1}})
	require.NoError(t, err)
	payments := Payments{
		{Recipient: ua, Amount: 1},
		{Recipient: ua, Amount: 1},
	}

	_, err = Resolve(payments, policy.FullPrivacy, unlimited, 1)
	var target *pool.ExcessOrchardActionsError
	require.ErrorAs(t, err, &target)
}
