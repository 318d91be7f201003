// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package planner

import "github.com/zcash-community/shieldedplan/pool"

// FundsErrorReason is the closed set of reasons an InvalidFundsError may
// carry.
type FundsErrorReason interface {
	error
	fundsErrorReasonTag()
}

// DustThresholdError reports that the only selections that would satisfy
// the target leave a residual strictly below the dust threshold.
type DustThresholdError struct {
	Dust   pool.Amount
	Change pool.Amount
}

func (*DustThresholdError) fundsErrorReasonTag() {}

func (e *DustThresholdError) Error() string {
	return "dust change: residual below the dust threshold and no further input could absorb it"
}

// InsufficientFundsError reports that the spendable set's total falls short
// of the target amount outright.
type InsufficientFundsError struct {
	Target pool.Amount
}

func (*InsufficientFundsError) fundsErrorReasonTag() {}

func (e *InsufficientFundsError) Error() string {
	return "insufficient funds for the requested target amount"
}

// InvalidFundsError wraps a funds-related planning failure with the
// available balance at the time of failure.
type InvalidFundsError struct {
	Available pool.Amount
	Reason    FundsErrorReason
}

func (e *InvalidFundsError) Error() string {
	return "invalid funds: " + e.Reason.Error()
}

func (e *InvalidFundsError) Unwrap() error {
	if err, ok := e.Reason.(error); ok {
		return err
	}
	return nil
}

// ChangeNotAllowedError reports a violation of the transparent-coinbase
// full-consumption rule: a coinbase input was selected but the plan would
// leave change, which coinbase spends must never do.
type ChangeNotAllowedError struct {
	Available pool.Amount
	Target    pool.Amount
}

func (e *ChangeNotAllowedError) Error() string {
	return "a coinbase input requires the transaction to fully consume its inputs, leaving no change"
}

// TransparentRecipientNotAllowedError reports a violation of the
// transparent-coinbase rule's shielded-recipients requirement: a coinbase
// input was selected but at least one resolved payment targets a
// transparent receiver.
type TransparentRecipientNotAllowedError struct{}

func (e *TransparentRecipientNotAllowedError) Error() string {
	return "a coinbase input requires every recipient to be shielded"
}

// SproutExclusivityError reports that a plan tried to mix Sprout inputs
// with an Orchard spend or output, which Sprout's spend-only design
// forbids.
type SproutExclusivityError struct{}

func (e *SproutExclusivityError) Error() string {
	return "a transaction with Sprout inputs may not also spend or pay to Orchard"
}
