// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command txcorectl is a small demonstration CLI exercising the sighash and
// script-template packages end to end: it builds a minimal transaction,
// computes a SIGHASH digest and signature for one of its inputs, and
// matches a canonical P2PKH locking script against its template.
//
// The library packages (wire, script, bsvec, sighash) never touch flags,
// environment variables, or logging themselves; only this demo binary does,
// matching the library's "no CLI, no env vars" scope (spec.md §6.2).
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/bsvctl/txcore/bsvec"
	"github.com/bsvctl/txcore/script"
	"github.com/bsvctl/txcore/sighash"
	"github.com/bsvctl/txcore/wire"
)

func main() {
	sighashFlag := flag.String("sighash", "ALL|FORKID", "SIGHASH flag name")
	value := flag.Uint64("value", 100000, "UTXO value in satoshis")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "txcorectl: failed to build logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger, *sighashFlag, *value); err != nil {
		logger.Error("txcorectl failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger, sighashFlagName string, value uint64) error {
	sigHashFlag, err := sighash.FlagFromName(sighashFlagName)
	if err != nil {
		return err
	}
	logger.Info("parsed sighash flag", zap.String("flag", sigHashFlag.Name()), zap.Uint8("byte", sigHashFlag.Uint8()))

	priv, err := bsvec.ParsePrivateKey(mustDecodeHex("0000000000000000000000000000000000000000000000000000000000000001"))
	if err != nil {
		return err
	}
	pub := priv.PubKey()

	lockingScriptBytes := p2pkhLockingScript(pub.SerializeCompressed())
	lockingScript, err := script.Parse(lockingScriptBytes)
	if err != nil {
		return err
	}

	tx := demoTransaction(lockingScriptBytes)

	cache := sighash.NewHashCache()
	signer := bsvec.NewSigner(priv)

	signature, err := sighash.Sign(signer, tx, 0, sigHashFlag, lockingScriptBytes, value, cache)
	if err != nil {
		return err
	}
	logger.Info("computed signature", zap.String("der_plus_flag", hex.EncodeToString(signature)))

	template, err := script.TemplateFromASM("OP_DUP OP_HASH160 OP_PUBKEYHASH OP_EQUALVERIFY OP_CHECKSIG")
	if err != nil {
		return err
	}

	matches, err := lockingScript.Match(template)
	if err != nil {
		return err
	}
	for _, m := range matches {
		logger.Info("template capture", zap.String("kind", m.Kind.String()), zap.String("data", hex.EncodeToString(m.Data)))
	}

	return nil
}

// p2pkhLockingScript builds OP_DUP OP_HASH160 <placeholder-20-bytes>
// OP_EQUALVERIFY OP_CHECKSIG. The demo does not compute a real HASH160 of
// the public key - this is a fixture script, not a spendable one.
func p2pkhLockingScript(pubKey []byte) []byte {
	hash160 := make([]byte, 20)
	copy(hash160, pubKey)

	out := []byte{byte(script.OP_DUP), byte(script.OP_HASH160), byte(len(hash160))}
	out = append(out, hash160...)
	out = append(out, byte(script.OP_EQUALVERIFY), byte(script.OP_CHECKSIG))
	return out
}

func demoTransaction(lockingScript []byte) *wire.Tx {
	return &wire.Tx{
		Version: 1,
		TxIn: []*wire.TxIn{
			{
				PreviousOutPoint: wire.OutPoint{Hash: wire.ZeroHash, Index: 0},
				SignatureScript:  nil,
				Sequence:         0xffffffff,
			},
		},
		TxOut: []*wire.TxOut{
			{Value: 99000, LockingScript: lockingScript},
		},
		LockTime: 0,
	}
}

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
