// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package planner

import "github.com/btcsuite/btclog"

// log is this package's logger, disabled by default. Call UseLogger to wire
// it to a host application's logging backend.
var log btclog.Logger

func init() { DisableLog() }

// DisableLog disables all library log output.
func DisableLog() { UseLogger(btclog.Disabled) }

// UseLogger sets the logger used by this package. The spendable package
// keeps its own logger, set through spendable.UseLogger.
func UseLogger(logger btclog.Logger) { log = logger }
