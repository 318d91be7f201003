// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package planner orchestrates payment resolution, input selection, change
// planning and OVK selection into an immutable transaction plan, and hands
// approved plans off to an external transaction builder.
package planner

import (
	"fmt"

	"github.com/zcash-community/shieldedplan/change"
	"github.com/zcash-community/shieldedplan/feeaction"
	"github.com/zcash-community/shieldedplan/ovk"
	"github.com/zcash-community/shieldedplan/payment"
	"github.com/zcash-community/shieldedplan/policy"
	"github.com/zcash-community/shieldedplan/pool"
)

// Planner holds the policy knobs that are constant across many plans within
// a process: the Orchard action cap and the relay fee used to derive the
// dust threshold.
type Planner struct {
	MaxOrchardActions int
	RelayFeePerKb     pool.Amount
	MinDepth          int
}

// NewPlanner constructs a Planner with the given Orchard action cap and
// relay fee policy.
func NewPlanner(maxOrchardActions int, relayFeePerKb pool.Amount, minDepth int) *Planner {
	return &Planner{
		MaxOrchardActions: maxOrchardActions,
		RelayFeePerKb:     relayFeePerKb,
		MinDepth:          minDepth,
	}
}

// PrepareTransaction plans a transaction drawing on selector's inputs to
// satisfy payments, under strategy, and moves the resulting plan from Draft
// to Planned: on success, the selected inputs are locked and must
// eventually be released via TransactionEffects.UnlockSpendable, whether or
// not the caller goes on to build the transaction.
//
// On any error, no inputs are locked.
func (p *Planner) PrepareTransaction(
	wallet Wallet,
	chain Chain,
	consensus Consensus,
	selector pool.Selector,
	payments payment.Payments,
	strategy policy.Strategy,
	fee pool.Amount,
	anchorConfirmations int,
) (*TransactionEffects, error) {
	if fee >= pool.MaxMoney {
		return nil, fmt.Errorf("planner: fee %v exceeds MAX_MONEY", fee)
	}

	anchorHeight := chain.Height() + 1 - anchorConfirmations

	chain.Lock()
	defer chain.Unlock()
	wallet.Lock()
	defer wallet.Unlock()

	orchardActive := consensus.NetworkUpgradeActive(anchorHeight, NU5)

	inputs, err := wallet.FindSpendableInputs(selector, p.MinDepth, chain.Height())
	if err != nil {
		return nil, err
	}
	available := inputs.Total()

	// Orchard may only be selected as a payment recipient if there are
	// sufficient non-Sprout funds to cover the full target amount: Sprout
	// cannot unify with Orchard directly, so drawing any Sprout value
	// forecloses Orchard outputs.
	rawTargetAmount := payments.Total() + fee
	canResolveOrchard := orchardActive && available-inputs.SproutTotal() >= rawTargetAmount

	budget := payment.Budget{
		MaxSaplingAvailable: inputs.SaplingTotal(),
		MaxOrchardAvailable: inputs.OrchardTotal(),
		CanResolveOrchard:   canResolveOrchard,
	}
	resolvedPayments, err := payment.Resolve(payments, strategy, budget, p.MaxOrchardActions)
	if err != nil {
		return nil, err
	}

	recipientPools := resolvedPayments.Pools()
	targetAmount := resolvedPayments.Total() + fee

	dustThreshold := feeaction.DustThreshold(p.RelayFeePerKb)
	if !inputs.LimitToAmount(targetAmount, dustThreshold, recipientPools) {
		if available < targetAmount {
			return nil, &InvalidFundsError{Available: available, Reason: &InsufficientFundsError{Target: targetAmount}}
		}
		return nil, &InvalidFundsError{Available: available, Reason: &DustThresholdError{Dust: dustThreshold, Change: available - targetAmount}}
	}

	if len(inputs.Sprout) > 0 && (len(inputs.Orchard) > 0 || recipientPools.Has(pool.Orchard)) {
		return nil, &SproutExclusivityError{}
	}

	if inputs.HasTransparentCoinbase() {
		if inputs.Total() != targetAmount {
			return nil, &ChangeNotAllowedError{Available: inputs.Total(), Target: targetAmount}
		}
		if recipientPools.Has(pool.Transparent) {
			return nil, &TransparentRecipientNotAllowedError{}
		}
	}

	if len(inputs.Orchard) > p.MaxOrchardActions {
		return nil, &pool.ExcessOrchardActionsError{Side: pool.ActionInput, Count: len(inputs.Orchard), Limit: p.MaxOrchardActions}
	}

	var changeAddr pool.ChangeAddress
	changeAmount := inputs.Total() - resolvedPayments.Total() - fee
	if changeAmount > 0 {
		presence := change.InputPresence{
			Transparent: len(inputs.UTXOs) > 0,
			Sapling:     len(inputs.Sapling) > 0,
			Orchard:     len(inputs.Orchard) > 0,
		}
		result, err := change.Plan(selector, wallet, recipientPools, presence, orchardActive, strategy, changeAmount)
		if err != nil {
			return nil, err
		}
		changeAddr = result.Address
		if result.Payment != nil {
			resolvedPayments = append(resolvedPayments, *result.Payment)
		}
	}

	ovkPair, err := ovk.Select(selector, wallet, ovk.InputPresence{
		Transparent: len(inputs.UTXOs) > 0,
		Sapling:     len(inputs.Sapling) > 0,
		Orchard:     len(inputs.Orchard) > 0,
	})
	if err != nil {
		return nil, err
	}

	effects := &TransactionEffects{
		Selector:            selector,
		Spendable:           inputs,
		Payments:            resolvedPayments,
		ChangeAddress:       changeAddr,
		Fee:                 fee,
		InternalOVK:         ovkPair.Internal,
		ExternalOVK:         ovkPair.External,
		AnchorHeight:        anchorHeight,
		AnchorConfirmations: anchorConfirmations,
		MaxOrchardActions:   p.MaxOrchardActions,
		state:               Planned,
	}
	effects.LockSpendable(wallet)

	log.Debugf("prepared plan: %d payments, fee %v, change %v", len(resolvedPayments), fee, changeAmount)
	return effects, nil
}
