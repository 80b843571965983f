package ripple

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/Amr-9/RippleHunter/pkg/generator/seed"
)

// Alphabet is the Ripple flavour of Base58. It excludes 0, O, I and l like
// Bitcoin's but orders the symbols differently, so 'r' encodes zero.
const Alphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

var rippleAlphabet = base58.NewAlphabet(Alphabet)

// Version prefixes for Base58Check payloads.
var (
	accountPrefix        = []byte{0x00}
	familySeedPrefix     = []byte{0x21}
	ed25519FamilyPrefix  = []byte{0x01, 0xe1, 0x4b}
	errChecksum          = errors.New("checksum mismatch")
	errUnknownSeedFormat = errors.New("unknown family seed format")
)

// Base58CheckEncode encodes prefix||payload with a 4-byte double SHA-256
// checksum using the Ripple alphabet.
func Base58CheckEncode(prefix, payload []byte) string {
	data := make([]byte, 0, len(prefix)+len(payload)+4)
	data = append(data, prefix...)
	data = append(data, payload...)

	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	data = append(data, second[:4]...)

	return base58.EncodeAlphabet(data, rippleAlphabet)
}

// Base58CheckDecode decodes s and verifies its checksum. It returns the data
// without the checksum, version prefix included.
func Base58CheckDecode(s string) ([]byte, error) {
	data, err := base58.DecodeAlphabet(s, rippleAlphabet)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %q", s)
	}
	if len(data) < 5 {
		return nil, errors.Errorf("decode %q: too short", s)
	}
	body, sum := data[:len(data)-4], data[len(data)-4:]
	first := sha256.Sum256(body)
	second := sha256.Sum256(first[:])
	if !bytes.Equal(second[:4], sum) {
		return nil, errors.Wrapf(errChecksum, "decode %q", s)
	}
	return body, nil
}

// EncodeAccountID encodes a 20-byte account hash as an r... address.
func EncodeAccountID(hash160 []byte) string {
	return Base58CheckEncode(accountPrefix, hash160)
}

// EncodeSeed encodes a seed as a family seed for the given key type.
func EncodeSeed(s seed.Seed, kt KeyType) string {
	if kt == Ed25519 {
		return Base58CheckEncode(ed25519FamilyPrefix, s[:])
	}
	return Base58CheckEncode(familySeedPrefix, s[:])
}

// DecodeSeed parses a family seed (s... or sEd...) and reports its key type.
func DecodeSeed(str string) (seed.Seed, KeyType, error) {
	body, err := Base58CheckDecode(str)
	if err != nil {
		return seed.Seed{}, Secp256k1, err
	}
	var s seed.Seed
	switch {
	case len(body) == len(ed25519FamilyPrefix)+seed.Size && bytes.HasPrefix(body, ed25519FamilyPrefix):
		copy(s[:], body[len(ed25519FamilyPrefix):])
		return s, Ed25519, nil
	case len(body) == len(familySeedPrefix)+seed.Size && bytes.HasPrefix(body, familySeedPrefix):
		copy(s[:], body[len(familySeedPrefix):])
		return s, Secp256k1, nil
	}
	return seed.Seed{}, Secp256k1, errors.Wrapf(errUnknownSeedFormat, "decode %q", str)
}

// ParseAnchor converts anchor material given on the command line into bytes.
// A family seed yields its full 16 bytes, anything else is read as hex.
// Length is not validated here; streams truncate anchors wider than a seed.
func ParseAnchor(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if strings.HasPrefix(s, "s") {
		decoded, _, err := DecodeSeed(s)
		if err != nil {
			return nil, err
		}
		return decoded[:], nil
	}
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "anchor %q", s)
	}
	return b, nil
}
