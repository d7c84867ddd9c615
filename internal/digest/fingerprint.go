package digest

import (
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"containment/internal/domain"
)

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create digest CBOR encoder mode: %v", err))
	}
}

type canonicalProblem struct {
	_       struct{} `cbor:",toarray"`
	Motes   []int
	Devices [][3]int
}

// Canonical returns the deterministic CBOR encoding of p.
func Canonical(p domain.Problem) ([]byte, error) {
	c := canonicalProblem{
		Motes:   make([]int, len(p.Motes)),
		Devices: make([][3]int, len(p.Devices)),
	}
	for i, m := range p.Motes {
		c.Motes[i] = m.Radius
	}
	for i, d := range p.Devices {
		c.Devices[i] = [3]int{d.Length, d.Width, d.Height}
	}
	return encMode.Marshal(c)
}

// Fingerprint returns the hex BLAKE2b-256 digest of p's canonical encoding.
func Fingerprint(p domain.Problem) (domain.Fingerprint, error) {
	b, err := Canonical(p)
	if err != nil {
		return "", fmt.Errorf("encoding problem: %w", err)
	}
	sum := blake2b.Sum256(b)
	return domain.Fingerprint(hex.EncodeToString(sum[:])), nil
}
