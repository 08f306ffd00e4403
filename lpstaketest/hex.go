package lpstaketest

import (
	"crypto/rand"
	"testing"

	"github.com/lpstake/lpstake"
)

// RandomAddr returns a valid random address generated on the fly.
func RandomAddr(t testing.TB) lpstake.Address {
	raw := make([]byte, lpstake.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot generate a random address: %s", err)
	}
	a := lpstake.Address(raw)
	if err := a.Validate(); err != nil {
		t.Fatalf("generated address is not valid: %s", err)
	}
	return a
}
