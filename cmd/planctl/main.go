// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// planctl is a demonstration harness for the planner package: it wires a
// minimal in-memory wallet, chain and transaction-builder collaborator
// together and runs one payment through PrepareTransaction and
// ApproveAndBuild, printing the resulting plan and build result.
//
// It exists to exercise the planner end to end without a real wallet
// backend; it is not a production wallet CLI.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"sync"

	"github.com/btcsuite/btclog"
	"github.com/davecgh/go-spew/spew"
	"github.com/jessevdk/go-flags"
	"github.com/zcash-community/shieldedplan/feeaction"
	"github.com/zcash-community/shieldedplan/payment"
	"github.com/zcash-community/shieldedplan/planner"
	"github.com/zcash-community/shieldedplan/policy"
	"github.com/zcash-community/shieldedplan/pool"
	"github.com/zcash-community/shieldedplan/spendable"
)

var opts = struct {
	To         string `long:"to" description:"hex-encoded 20-byte P2PKH hash of the recipient" default:"0101010101010101010101010101010101010101"`
	Amount     int64  `long:"amount" description:"zatoshi amount to send" default:"90000000"`
	Fee        int64  `long:"fee" description:"zatoshi fee" default:"1000"`
	UTXO       int64  `long:"utxo" description:"zatoshi amount of the single fake spendable UTXO" default:"100000000"`
	MinConf    int    `long:"minconf" description:"minimum confirmation depth for input selection" default:"1"`
	Policy     string `long:"policy" description:"privacy policy strategy name" default:"AllowFullyTransparent"`
	Verbose    bool   `short:"v" long:"verbose" description:"enable debug logging from the planner packages"`
}{}

func init() {
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}
}

var strategyByName = map[string]policy.Strategy{
	"NoPrivacy":                         policy.NoPrivacy,
	"AllowFullyTransparent":             policy.AllowFullyTransparent,
	"AllowRevealedSendersAndRecipients": policy.AllowRevealedSendersAndRecipients,
	"AllowLinkingAccountAddresses":      policy.AllowLinkingAccountAddresses,
	"AllowRevealedSenders":              policy.AllowRevealedSenders,
	"AllowRevealedRecipients":           policy.AllowRevealedRecipients,
	"AllowRevealedAmounts":              policy.AllowRevealedAmounts,
	"FullPrivacy":                       policy.FullPrivacy,
}

func main() {
	os.Exit(mainInt())
}

func mainInt() int {
	strategy, ok := strategyByName[opts.Policy]
	if !ok {
		fmt.Fprintf(os.Stderr, "unrecognized policy %q\n", opts.Policy)
		return 1
	}

	if opts.Verbose {
		logger := btclog.NewBackend(os.Stderr).Logger("PLAN")
		logger.SetLevel(btclog.LevelDebug)
		planner.UseLogger(logger)
		spendable.UseLogger(logger)
	}

	toHash, err := hex.DecodeString(opts.To)
	if err != nil || len(toHash) != 20 {
		fmt.Fprintln(os.Stderr, "--to must be a 20-byte hex-encoded pubkey hash")
		return 1
	}
	var recipientHash, changeHash [20]byte
	copy(recipientHash[:], toHash)
	changeHash[0] = 0xff

	recipient := pool.P2PKHReceiver{Hash: recipientHash}
	wallet := &fakeWallet{
		inputs:         spendable.Inputs{UTXOs: []spendable.UTXO{{Amount: pool.Amount(opts.UTXO)}}},
		changeReceiver: pool.P2PKHReceiver{Hash: changeHash},
		canGenChange:   true,
	}
	chain := &fakeChain{height: 1_000_000}
	consensus := fakeConsensus{orchardActiveHeight: 1_000_000}
	builder := &fakeBuilder{}
	factory := fakeBuilderFactory{builder: builder}

	p := planner.NewPlanner(feeaction.DefaultMaxOrchardActions, feeaction.DefaultRelayFeePerKb, opts.MinConf)
	payments := payment.Payments{{Recipient: recipient, Amount: pool.Amount(opts.Amount)}}

	effects, err := p.PrepareTransaction(wallet, chain, consensus, pool.TransparentKeyHashSelector{}, payments, strategy, pool.Amount(opts.Fee), 0)
	if err != nil {
		fmt.Fprintln(os.Stderr, "prepare failed:", err)
		return 1
	}
	defer effects.UnlockSpendable(wallet)

	fmt.Println("prepared plan:")
	spew.Dump(effects)

	result, err := effects.ApproveAndBuild(consensus, wallet, chain, factory, strategy)
	if err != nil {
		fmt.Fprintln(os.Stderr, "build failed:", err)
		return 1
	}

	fmt.Println("build result:")
	spew.Dump(result)
	return 0
}

// fakeChain is a minimal Chain collaborator with no real Orchard roots: this
// harness only demonstrates the transparent path.
type fakeChain struct {
	sync.Mutex
	height int
}

func (c *fakeChain) Height() int { return c.height }
func (c *fakeChain) FinalOrchardRootAt(int) (planner.Anchor, bool) {
	return planner.Anchor{}, false
}

type fakeConsensus struct {
	orchardActiveHeight int
}

func (c fakeConsensus) NetworkUpgradeActive(height int, _ planner.NetworkUpgrade) bool {
	return height >= c.orchardActiveHeight
}

func (c fakeConsensus) PreferredTxVersionAtLeastZIP225(height int) bool {
	return height >= c.orchardActiveHeight
}

// fakeWallet holds everything the harness's single scenario needs and
// nothing else: there is no real key material or persistent note store
// behind it.
type fakeWallet struct {
	sync.Mutex
	inputs         spendable.Inputs
	changeReceiver pool.Receiver
	canGenChange   bool
}

func (w *fakeWallet) FindSpendableInputs(pool.Selector, int, int) (spendable.Inputs, error) {
	return w.inputs, nil
}
func (w *fakeWallet) FindAccountForSelector(pool.Selector) (pool.AccountID, bool) {
	return pool.LegacyAccount, true
}
func (w *fakeWallet) GenerateChangeAddressForAccount(pool.AccountID, pool.Set) (pool.Receiver, bool) {
	return w.changeReceiver, w.canGenChange
}
func (w *fakeWallet) GetUFVKForAddress(*pool.UnifiedAddress) (pool.UFVK, bool) { return nil, false }
func (w *fakeWallet) GetUnifiedFullViewingKeyByAccount(pool.AccountID) (pool.UFVK, bool) {
	return nil, false
}
func (w *fakeWallet) GetLegacyAccountKey() pool.AccountKey                    { return fakeAccountKey{} }
func (w *fakeWallet) GetSaplingExtendedSpendingKey(pool.SaplingReceiver) (pool.SaplingSpendingKey, bool) {
	return nil, false
}
func (w *fakeWallet) GetSproutSpendingKey(pool.SproutAddress) (pool.SproutSpendingKey, bool) {
	return nil, false
}
func (w *fakeWallet) GetSaplingNoteWitnesses([]spendable.OutPoint, int) ([]planner.SaplingWitness, planner.Anchor, bool) {
	return nil, planner.Anchor{}, true
}
func (w *fakeWallet) GetSproutNoteWitnesses([]spendable.JSOutPoint, int) ([]planner.SproutWitness, planner.Anchor, bool) {
	return nil, planner.Anchor{}, true
}
func (w *fakeWallet) GetOrchardSpendInfo([]spendable.OrchardNote, planner.Anchor) ([]planner.OrchardSpendInfo, error) {
	return nil, nil
}
func (w *fakeWallet) LockCoin(spendable.OutPoint)           {}
func (w *fakeWallet) UnlockCoin(spendable.OutPoint)         {}
func (w *fakeWallet) LockNote(spendable.OutPoint)           {}
func (w *fakeWallet) UnlockNote(spendable.OutPoint)         {}
func (w *fakeWallet) LockJSOutPoint(spendable.JSOutPoint)   {}
func (w *fakeWallet) UnlockJSOutPoint(spendable.JSOutPoint) {}

// fakeAccountKey returns an all-zero OVK pair: good enough to thread
// through the demo builder, which never inspects the key material.
type fakeAccountKey struct{}

func (fakeAccountKey) ShieldingOVKs() pool.OVKPair { return pool.OVKPair{} }

// fakeBuilder records what it was asked to do instead of producing a real
// transaction.
type fakeBuilder struct {
	fee     pool.Amount
	inputs  int
	outputs int
}

func (b *fakeBuilder) SetFee(fee pool.Amount) { b.fee = fee }
func (b *fakeBuilder) AddOrchardSpend(planner.OrchardSpendInfo) {
	b.inputs++
}
func (b *fakeBuilder) AddSaplingSpend(spendable.SaplingNote, planner.SaplingWitness, pool.SaplingSpendingKey) {
	b.inputs++
}
func (b *fakeBuilder) AddSproutInput(spendable.SproutNote, planner.SproutWitness, pool.SproutSpendingKey) {
	b.inputs++
}
func (b *fakeBuilder) AddTransparentInput(spendable.UTXO) { b.inputs++ }
func (b *fakeBuilder) AddTransparentOutput(pool.Receiver, pool.Amount) {
	b.outputs++
}
func (b *fakeBuilder) AddSaplingOutput(pool.SaplingReceiver, pool.Amount, pool.Memo, pool.OVK) {
	b.outputs++
}
func (b *fakeBuilder) AddOrchardOutput(pool.OrchardReceiver, pool.Amount, *pool.Memo, pool.OVK) {
	b.outputs++
}
func (b *fakeBuilder) SendChangeToSprout(pool.SproutAddress)     {}
func (b *fakeBuilder) GetOrchardAnchor() (planner.Anchor, bool)  { return planner.Anchor{}, false }
func (b *fakeBuilder) Build() (planner.BuildResult, error) {
	return planner.BuildResult{
		SignedTransaction: fmt.Sprintf("fake tx: %d inputs, %d outputs, fee %v", b.inputs, b.outputs, b.fee),
	}, nil
}

type fakeBuilderFactory struct{ builder *fakeBuilder }

func (f fakeBuilderFactory) NewBuilder(planner.Consensus, int, *planner.Anchor) planner.Builder {
	return f.builder
}
