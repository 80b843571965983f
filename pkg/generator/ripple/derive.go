// Package ripple provides Ripple (XRP Ledger) vanity seed support.
// Seeds are 16-byte family seeds; accounts are derived with secp256k1 or
// Ed25519 and encoded as Base58Check r... addresses.
package ripple

import (
	"crypto/ed25519"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"math"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160"

	"github.com/Amr-9/RippleHunter/pkg/generator"
	"github.com/Amr-9/RippleHunter/pkg/generator/seed"
)

// KeyType is the signing algorithm a family seed is expanded for.
type KeyType int

const (
	Secp256k1 KeyType = iota // Classic rippled keys
	Ed25519                  // Ed25519 keys, seeds encode as sEd...
)

// String returns the key type name.
func (k KeyType) String() string {
	if k == Ed25519 {
		return "ed25519"
	}
	return "secp256k1"
}

// ParseKeyType converts a key type name into a KeyType.
func ParseKeyType(s string) (KeyType, error) {
	switch s {
	case "secp256k1", "ecdsa", "":
		return Secp256k1, nil
	case "ed25519":
		return Ed25519, nil
	default:
		return Secp256k1, errors.Errorf("unknown key type %q", s)
	}
}

// Deriver derives Ripple accounts from seeds. It holds no mutable state and
// is safe for concurrent use.
type Deriver struct {
	keyType KeyType
}

// NewDeriver creates a deriver for the given key type.
func NewDeriver(kt KeyType) *Deriver {
	return &Deriver{keyType: kt}
}

// KeyType returns the key type the deriver expands seeds for.
func (d *Deriver) KeyType() KeyType {
	return d.keyType
}

// Derive implements generator.Deriver.
func (d *Deriver) Derive(s seed.Seed) (generator.Candidate, error) {
	var (
		pub []byte
		err error
	)
	if d.keyType == Ed25519 {
		pub = ed25519PublicKey(s)
	} else {
		pub, err = secp256k1PublicKey(s)
		if err != nil {
			return generator.Candidate{}, errors.Wrap(generator.ErrDerivationFailure, err.Error())
		}
	}
	return generator.Candidate{
		Seed:         s,
		SeedEncoding: EncodeSeed(s, d.keyType),
		SeedHex:      s.Hex(),
		AccountID:    EncodeAccountID(hash160(pub)),
	}, nil
}

// secp256k1PublicKey expands a seed into the compressed public key of
// account 0 of its key family.
func secp256k1PublicKey(s seed.Seed) ([]byte, error) {
	root, err := validScalar(s[:])
	if err != nil {
		return nil, errors.Wrap(err, "root generator")
	}
	rootPub := scalarBaseCompressed(&root)

	var accountIndex [4]byte
	tweak, err := validScalar(rootPub, accountIndex[:])
	if err != nil {
		return nil, errors.Wrap(err, "account key")
	}

	account := root
	account.Add(&tweak)
	return scalarBaseCompressed(&account), nil
}

// validScalar returns the first SHA-512Half(parts || seq) that is a valid
// private key, trying seq = 0, 1, 2 ...
func validScalar(parts ...[]byte) (btcec.ModNScalar, error) {
	var seqBuf [4]byte
	for seq := uint64(0); seq <= math.MaxUint32; seq++ {
		h := sha512.New()
		for _, p := range parts {
			h.Write(p)
		}
		binary.BigEndian.PutUint32(seqBuf[:], uint32(seq))
		h.Write(seqBuf[:])
		digest := h.Sum(nil)

		var k btcec.ModNScalar
		overflow := k.SetByteSlice(digest[:32])
		if !overflow && !k.IsZero() {
			return k, nil
		}
	}
	return btcec.ModNScalar{}, errors.New("no valid scalar in sequence space")
}

// scalarBaseCompressed computes k*G and returns the compressed point.
func scalarBaseCompressed(k *btcec.ModNScalar) []byte {
	var p btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(k, &p)
	p.ToAffine()
	return btcec.NewPublicKey(&p.X, &p.Y).SerializeCompressed()
}

// ed25519PublicKey expands a seed into a 0xED-prefixed Ed25519 public key.
func ed25519PublicKey(s seed.Seed) []byte {
	digest := sha512.Sum512(s[:])
	priv := ed25519.NewKeyFromSeed(digest[:32])
	pub := priv.Public().(ed25519.PublicKey)

	out := make([]byte, 0, 1+ed25519.PublicKeySize)
	out = append(out, 0xed)
	return append(out, pub...)
}

// hash160 computes RIPEMD160(SHA256(b)).
func hash160(b []byte) []byte {
	sum := sha256.Sum256(b)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}
