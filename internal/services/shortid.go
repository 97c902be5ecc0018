package services

import (
	"math/big"

	"github.com/google/uuid"
)

// base57 is the shortuuid alphabet: alphanumerics minus the lookalikes
// 0, O, 1, l, I. Existing ids in deployed databases use this encoding.
const base57 = "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// NewShortID returns a 22-character base57 encoding of a random UUID.
func NewShortID() string {
	id := uuid.New()

	n := new(big.Int).SetBytes(id[:])
	base := big.NewInt(int64(len(base57)))
	rem := new(big.Int)

	buf := make([]byte, 22)
	for i := len(buf) - 1; i >= 0; i-- {
		n.DivMod(n, base, rem)
		buf[i] = base57[rem.Int64()]
	}
	return string(buf)
}
