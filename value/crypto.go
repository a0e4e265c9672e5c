// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Meridian Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package value

import (
	"encoding/hex"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/meridian-inc/manifestkit/fault"
)

// byte sizes of the cryptographic literals
const (
	DigestLength             = 32
	Secp256k1PublicKeyLength = 33
	Secp256k1SignatureLength = 65
	Ed25519PublicKeyLength   = ed25519.PublicKeySize
	Ed25519SignatureLength   = ed25519.SignatureSize
)

// Digest - a 32 byte hash, rendered as lowercase hex
type Digest [DigestLength]byte

// PublicKeySecp256k1 - compressed ECDSA public key bytes
type PublicKeySecp256k1 [Secp256k1PublicKeyLength]byte

// SignatureSecp256k1 - [v, r, s] ECDSA signature bytes
type SignatureSecp256k1 [Secp256k1SignatureLength]byte

// PublicKeyEd25519 - EdDSA public key bytes
type PublicKeyEd25519 [Ed25519PublicKeyLength]byte

// SignatureEd25519 - EdDSA signature bytes
type SignatureEd25519 [Ed25519SignatureLength]byte

// NewDigest - hash arbitrary data to a Digest
func NewDigest(data []byte) Digest {
	return Digest(sha3.Sum256(data))
}

// DigestFromString - parse a 64 character hex string
func DigestFromString(s string) (Digest, error) {
	var d Digest
	if err := fixedFromHex(s, d[:]); nil != err {
		return Digest{}, err
	}
	return d, nil
}

// String - lowercase hex
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// MarshalText - satisfy the encoding.TextMarshaler interface
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (k PublicKeySecp256k1) String() string { return hex.EncodeToString(k[:]) }
func (s SignatureSecp256k1) String() string { return hex.EncodeToString(s[:]) }
func (k PublicKeyEd25519) String() string   { return hex.EncodeToString(k[:]) }
func (s SignatureEd25519) String() string   { return hex.EncodeToString(s[:]) }

// Secp256k1PublicKeyFromString - parse a 66 character hex string
func Secp256k1PublicKeyFromString(s string) (PublicKeySecp256k1, error) {
	var k PublicKeySecp256k1
	if err := fixedFromHex(s, k[:]); nil != err {
		return PublicKeySecp256k1{}, fault.ErrInvalidPublicKeyLength
	}
	return k, nil
}

// Secp256k1SignatureFromString - parse a 130 character hex string
func Secp256k1SignatureFromString(s string) (SignatureSecp256k1, error) {
	var sig SignatureSecp256k1
	if err := fixedFromHex(s, sig[:]); nil != err {
		return SignatureSecp256k1{}, fault.ErrInvalidSignatureLength
	}
	return sig, nil
}

// Ed25519PublicKeyFromString - parse a 64 character hex string
func Ed25519PublicKeyFromString(s string) (PublicKeyEd25519, error) {
	var k PublicKeyEd25519
	if err := fixedFromHex(s, k[:]); nil != err {
		return PublicKeyEd25519{}, fault.ErrInvalidPublicKeyLength
	}
	return k, nil
}

// Ed25519SignatureFromString - parse a 128 character hex string
func Ed25519SignatureFromString(s string) (SignatureEd25519, error) {
	var sig SignatureEd25519
	if err := fixedFromHex(s, sig[:]); nil != err {
		return SignatureEd25519{}, fault.ErrInvalidSignatureLength
	}
	return sig, nil
}

// decode hex into an exactly sized buffer
func fixedFromHex(s string, out []byte) error {
	b, err := hex.DecodeString(s)
	if nil != err || len(b) != len(out) {
		return fault.ErrNotValuePack
	}
	copy(out, b)
	return nil
}
