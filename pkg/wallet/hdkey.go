package wallet

import (
	"crypto/ecdsa"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
)

// hardenedOffset marks the start of the hardened child-number range.
const hardenedOffset = 0x80000000

// masterSeedKey is the fixed HMAC key from BIP-32.
var masterSeedKey = []byte("Bitcoin seed")

// deriveKey walks the BIP-32 tree from the seed along the given path and
// returns the ECDSA private key at the leaf.
func deriveKey(seed []byte, path accounts.DerivationPath) (*ecdsa.PrivateKey, error) {
	key, chainCode, err := newMasterKey(seed)
	if err != nil {
		return nil, err
	}

	for _, childNum := range path {
		key, chainCode, err = deriveChild(key, chainCode, childNum)
		if err != nil {
			return nil, err
		}
	}

	return crypto.ToECDSA(key)
}

// newMasterKey produces the BIP-32 master key and chain code from a seed.
func newMasterKey(seed []byte) (key, chainCode []byte, err error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, nil, errors.New("seed length must be between 16 and 64 bytes")
	}

	sum := hmacSHA512(masterSeedKey, seed)
	key, chainCode = sum[:32], sum[32:]
	if !isValidPrivateKey(key) {
		return nil, nil, errors.New("derived master key is invalid")
	}
	return key, chainCode, nil
}

// deriveChild computes one BIP-32 child step. Hardened children commit to
// the parent private key, normal children to the compressed public key.
func deriveChild(parentKey, parentChainCode []byte, childNum uint32) (key, chainCode []byte, err error) {
	var data []byte
	if childNum >= hardenedOffset {
		data = append([]byte{0x00}, parentKey...)
	} else {
		priv, err := crypto.ToECDSA(parentKey)
		if err != nil {
			return nil, nil, err
		}
		data = crypto.CompressPubkey(&priv.PublicKey)
	}

	var serialized [4]byte
	binary.BigEndian.PutUint32(serialized[:], childNum)
	data = append(data, serialized[:]...)

	sum := hmacSHA512(parentChainCode, data)
	il, chainCode := sum[:32], sum[32:]

	n := crypto.S256().Params().N
	childKey := new(big.Int).SetBytes(il)
	childKey.Add(childKey, new(big.Int).SetBytes(parentKey))
	childKey.Mod(childKey, n)

	key = childKey.FillBytes(make([]byte, 32))
	if !isValidPrivateKey(key) {
		return nil, nil, errors.New("derived child key is invalid")
	}
	return key, chainCode, nil
}

func hmacSHA512(key, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// isValidPrivateKey checks the scalar is in [1, N).
func isValidPrivateKey(key []byte) bool {
	k := new(big.Int).SetBytes(key)
	if k.Sign() == 0 {
		return false
	}
	return k.Cmp(crypto.S256().Params().N) < 0
}
