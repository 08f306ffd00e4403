package crypto

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is used for the conditions we get from signatures
const ExtensionName = "sigs"

// Signer is the functionality we use from a private key.
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

// PublicKey is an ed25519 public key.
type PublicKey struct {
	Ed25519 []byte
}

// Signature is an ed25519 signature.
type Signature struct {
	Ed25519 []byte
}

// PrivateKey is an ed25519 private key in its expanded 64 bytes form.
type PrivateKey struct {
	Ed25519 []byte
}

var _ Signer = (*PrivateKey)(nil)

// Verify verifies the signature was created with this message and public key
func (p *PublicKey) Verify(message []byte, sig *Signature) bool {
	if p == nil || len(p.Ed25519) != ed25519.PublicKeySize {
		return false
	}
	if sig == nil || len(sig.Ed25519) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p.Ed25519), message, sig.Ed25519)
}

// Condition encodes the public key into a signature condition. Empty key
// has no condition.
func (p *PublicKey) Condition() lpstake.Condition {
	if p == nil || len(p.Ed25519) == 0 {
		return nil
	}
	return lpstake.NewCondition(ExtensionName, "ed25519", p.Ed25519)
}

// Address is the address of the signature condition of this key.
func (p *PublicKey) Address() lpstake.Address {
	return p.Condition().Address()
}

func (p *PublicKey) Validate() error {
	if len(p.Ed25519) != ed25519.PublicKeySize {
		return errors.Wrapf(errors.ErrInvalidInput, "public key must be %d bytes", ed25519.PublicKeySize)
	}
	return nil
}

func (p *PublicKey) Marshal() ([]byte, error) {
	return lpstake.MarshalBinary(p)
}

func (p *PublicKey) Unmarshal(raw []byte) error {
	return lpstake.UnmarshalBinary(raw, p)
}

func (s *Signature) Marshal() ([]byte, error) {
	return lpstake.MarshalBinary(s)
}

func (s *Signature) Unmarshal(raw []byte) error {
	return lpstake.UnmarshalBinary(raw, s)
}

// Sign returns a matching signature for this private key
func (p *PrivateKey) Sign(message []byte) (*Signature, error) {
	if len(p.Ed25519) != ed25519.PrivateKeySize {
		return nil, errors.Wrap(errors.ErrInvalidState, "malformed private key")
	}
	bz := ed25519.Sign(ed25519.PrivateKey(p.Ed25519), message)
	return &Signature{Ed25519: bz}, nil
}

// PublicKey returns the corresponding PublicKey
func (p *PrivateKey) PublicKey() *PublicKey {
	privateKey := ed25519.PrivateKey(p.Ed25519)
	pub := privateKey.Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: pub}
}

func (p *PrivateKey) Marshal() ([]byte, error) {
	return lpstake.MarshalBinary(p)
}

func (p *PrivateKey) Unmarshal(raw []byte) error {
	if err := lpstake.UnmarshalBinary(raw, p); err != nil {
		return err
	}
	if len(p.Ed25519) != ed25519.PrivateKeySize {
		return errors.Wrap(errors.ErrInvalidInput, "malformed private key")
	}
	return nil
}

// GenPrivKeyEd25519 returns a random new private key
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	priv := ed25519.NewKeyFromSeed(seed)
	return &PrivateKey{Ed25519: priv}
}
