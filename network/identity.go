package network

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"

	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	mimc_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"golang.org/x/crypto/blake2b"
)

// CircuitID derives a commitment-style identifier for a circuit from its
// verifying key: the key's canonical compressed encoding is hashed with the
// network's identity hash and the digest is hex-encoded in little-endian
// byte order. Any change to the key's encoding changes the identity.
func (id ID) CircuitID(vk io.WriterTo) (string, error) {
	var buf bytes.Buffer
	if _, err := vk.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("error serializing verifying key: %v", err)
	}
	digest, err := id.identityHash(buf.Bytes())
	if err != nil {
		return "", err
	}
	reverseBytes(digest)
	return hex.EncodeToString(digest), nil
}

// identityHash applies the network's circuit-identity hash to data.
func (id ID) identityHash(data []byte) ([]byte, error) {
	switch id {
	case Testnet1:
		return mimcSum(data), nil
	case Testnet2:
		sum := blake2b.Sum256(data)
		return sum[:], nil
	default:
		return nil, fmt.Errorf("unrecognized network %v", id)
	}
}

// mimcSum hashes arbitrary bytes with MiMC over the BN254 scalar field,
// canonicalizing each block so values at or above the field modulus reduce
// the same way on every run.
func mimcSum(data []byte) []byte {
	h := mimc_bn254.NewMiMC()
	size := h.BlockSize()
	for i := 0; i < len(data); i += size {
		end := i + size
		if end > len(data) {
			end = len(data)
		}
		var elem fr_bn254.Element
		elem.SetBytes(data[i:end])
		h.Write(elem.Marshal())
	}
	return h.Sum(nil)
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
