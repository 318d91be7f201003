// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package planner

import (
	"errors"
	"fmt"

	"github.com/zcash-community/shieldedplan/policy"
	"github.com/zcash-community/shieldedplan/pool"
	"github.com/zcash-community/shieldedplan/spendable"
)

// ErrAlreadyUsed is returned when ApproveAndBuild is called on a plan that
// has already moved to Built or Aborted. Plans are single-use.
var ErrAlreadyUsed = errors.New("planner: plan has already been built or aborted")

// ErrInsufficientSaplingWitnesses is returned when the wallet cannot
// produce a witness for every selected Sapling note at the plan's anchor
// depth.
var ErrInsufficientSaplingWitnesses = errors.New("planner: insufficient Sapling witnesses")

// ErrInsufficientSproutWitnesses is returned when the wallet cannot produce
// a witness for every selected Sprout note.
var ErrInsufficientSproutWitnesses = errors.New("planner: insufficient Sprout witnesses")

// PrivacyPolicyError is returned when the caller-supplied strategy does not
// permit the leakage this plan's shape requires.
type PrivacyPolicyError struct {
	Required policy.Strategy
	Supplied policy.Strategy
}

func (e *PrivacyPolicyError) Error() string {
	return fmt.Sprintf("planner: strategy %v does not satisfy the plan's required policy %v", e.Supplied, e.Required)
}

// ApproveAndBuild checks the plan's shape against strategy, fetches the
// witnesses and spend information its shielded inputs require, and hands
// the assembled transaction off to an external builder. It moves the plan
// from Planned to Built on success, or to Aborted on failure — in both
// cases the caller remains responsible for eventually calling
// UnlockSpendable.
func (e *TransactionEffects) ApproveAndBuild(consensus Consensus, wallet Wallet, chain Chain, factory BuilderFactory, strategy policy.Strategy) (BuildResult, error) {
	if e.state != Planned {
		return BuildResult{}, ErrAlreadyUsed
	}

	required := e.RequiredPrivacyPolicy()
	if !strategy.IsCompatibleWith(required) {
		e.state = Aborted
		return BuildResult{}, &PrivacyPolicyError{Required: required, Supplied: strategy}
	}

	orchardAnchor, haveOrchardAnchor := e.determineOrchardAnchor(consensus, chain)

	chain.Lock()
	wallet.Lock()
	saplingOutpoints := make([]spendable.OutPoint, len(e.Spendable.Sapling))
	for i, n := range e.Spendable.Sapling {
		saplingOutpoints[i] = n.OutPoint
	}
	saplingWitnesses, _, ok := wallet.GetSaplingNoteWitnesses(saplingOutpoints, e.AnchorConfirmations)
	if !ok {
		wallet.Unlock()
		chain.Unlock()
		e.state = Aborted
		return BuildResult{}, ErrInsufficientSaplingWitnesses
	}

	var orchardSpends []OrchardSpendInfo
	if haveOrchardAnchor && len(e.Spendable.Orchard) > 0 {
		spends, err := wallet.GetOrchardSpendInfo(e.Spendable.Orchard, orchardAnchor)
		if err != nil {
			wallet.Unlock()
			chain.Unlock()
			e.state = Aborted
			return BuildResult{}, err
		}
		orchardSpends = spends
	}
	wallet.Unlock()
	chain.Unlock()

	var anchorArg *Anchor
	if haveOrchardAnchor {
		anchorArg = &orchardAnchor
	}
	chain.Lock()
	nextBlockHeight := chain.Height() + 1
	chain.Unlock()
	builder := factory.NewBuilder(consensus, nextBlockHeight, anchorArg)
	builder.SetFee(e.Fee)

	for _, spend := range orchardSpends {
		builder.AddOrchardSpend(spend)
	}
	for i, note := range e.Spendable.Sapling {
		key, ok := wallet.GetSaplingExtendedSpendingKey(note.Address)
		if !ok {
			e.state = Aborted
			return BuildResult{}, fmt.Errorf("planner: no Sapling spending key for address used by selector")
		}
		builder.AddSaplingSpend(note, saplingWitnesses[i], key)
	}
	for _, utxo := range e.Spendable.UTXOs {
		builder.AddTransparentInput(utxo)
	}

	var totalSpend pool.Amount
	totalSpend += e.Spendable.TransparentTotal() + e.Spendable.SaplingTotal() + e.Spendable.OrchardTotal()

	_, sproutSelector := e.ChangeAddress.(pool.SproutAddress)
	if len(e.Spendable.Sprout) > 0 {
		chain.Lock()
		wallet.Lock()
		sproutOutpoints := make([]spendable.JSOutPoint, len(e.Spendable.Sprout))
		for i, n := range e.Spendable.Sprout {
			sproutOutpoints[i] = n.OutPoint
		}
		sproutWitnesses, _, ok := wallet.GetSproutNoteWitnesses(sproutOutpoints, e.AnchorConfirmations)
		if !ok {
			wallet.Unlock()
			chain.Unlock()
			e.state = Aborted
			return BuildResult{}, ErrInsufficientSproutWitnesses
		}
		for i, note := range e.Spendable.Sprout {
			key, ok := wallet.GetSproutSpendingKey(note.Address)
			if !ok {
				wallet.Unlock()
				chain.Unlock()
				e.state = Aborted
				return BuildResult{}, fmt.Errorf("planner: no Sprout spending key for address used by selector")
			}
			builder.AddSproutInput(note, sproutWitnesses[i], key)
		}
		wallet.Unlock()
		chain.Unlock()
		totalSpend += e.Spendable.SproutTotal()
	}

	if e.ChangeAddress != nil && !sproutSelector {
		if totalSpend != e.Payments.Total()+e.Fee {
			e.state = Aborted
			return BuildResult{}, fmt.Errorf("planner: total spend %v does not match payments+fee %v", totalSpend, e.Payments.Total()+e.Fee)
		}
	}

	for _, p := range e.Payments {
		outputOVK := e.ExternalOVK
		if p.IsInternal {
			outputOVK = e.InternalOVK
		}
		switch receiver := p.Receiver.(type) {
		case pool.P2PKHReceiver:
			builder.AddTransparentOutput(receiver, p.Amount)
		case pool.P2SHReceiver:
			builder.AddTransparentOutput(receiver, p.Amount)
		case pool.SaplingReceiver:
			builder.AddSaplingOutput(receiver, p.Amount, p.Memo, outputOVK)
		case pool.OrchardReceiver:
			memo := &p.Memo
			if p.Memo == pool.NoMemo {
				memo = nil
			}
			builder.AddOrchardOutput(receiver, p.Amount, memo, outputOVK)
		default:
			e.state = Aborted
			return BuildResult{}, fmt.Errorf("planner: unrecognized resolved receiver type %T", p.Receiver)
		}
	}

	if sproutAddr, ok := e.ChangeAddress.(pool.SproutAddress); ok {
		builder.SendChangeToSprout(sproutAddr)
	}

	result, err := builder.Build()
	if err != nil {
		e.state = Aborted
		return BuildResult{}, err
	}
	e.state = Built
	log.Debugf("built transaction for plan with %d payments", len(e.Payments))
	return result, nil
}

// determineOrchardAnchor implements step 2 of the build sequence: the
// Orchard anchor is only fetched when no Sprout inputs are present and
// either Orchard is already involved in the plan or the preferred
// transaction version at the anchor height is ZIP-225 or later, and only
// when the plan actually has confirmations to pin an anchor against.
func (e *TransactionEffects) determineOrchardAnchor(consensus Consensus, chain Chain) (Anchor, bool) {
	if len(e.Spendable.Sprout) > 0 {
		return Anchor{}, false
	}
	orchardInvolved := len(e.Spendable.Orchard) > 0 || e.Payments.Pools().Has(pool.Orchard)
	if !orchardInvolved && !consensus.PreferredTxVersionAtLeastZIP225(e.AnchorHeight) {
		return Anchor{}, false
	}
	if e.AnchorConfirmations <= 0 {
		return Anchor{}, false
	}
	chain.Lock()
	defer chain.Unlock()
	return chain.FinalOrchardRootAt(e.AnchorHeight)
}
