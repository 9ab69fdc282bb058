// Package signature computes EIP-712 digests of the authorization messages accepted by the
// ledger, and signs and verifies them.
package signature

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/holiman/uint256"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

// Domain separates signatures of one verifying contract from every other
type Domain struct {
	Name              string         `json:"name"`
	Version           string         `json:"version"`
	ChainID           int64          `json:"chain_id"`
	VerifyingContract common.Address `json:"verifying_contract"`
}

func (d Domain) typedDataDomain() apitypes.TypedDataDomain {
	return apitypes.TypedDataDomain{
		Name:              d.Name,
		Version:           d.Version,
		ChainId:           math.NewHexOrDecimal256(d.ChainID),
		VerifyingContract: d.VerifyingContract.Hex(),
	}
}

var domainType = []apitypes.Type{
	{Name: "name", Type: "string"},
	{Name: "version", Type: "string"},
	{Name: "chainId", Type: "uint256"},
	{Name: "verifyingContract", Type: "address"},
}

// Message is a typed authorization payload
type Message interface {
	// PrimaryType is the EIP-712 struct name
	PrimaryType() string
	// Fields lists the struct members in encoding order
	Fields() []apitypes.Type
	// Values returns the member values keyed by field name
	Values() apitypes.TypedDataMessage
	// ExpiresAt returns the deadline in unix seconds
	ExpiresAt() uint64
}

// TypedData builds the EIP-712 document of msg under d
func TypedData(d Domain, msg Message) apitypes.TypedData {
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain":    domainType,
			msg.PrimaryType(): msg.Fields(),
		},
		PrimaryType: msg.PrimaryType(),
		Domain:      d.typedDataDomain(),
		Message:     msg.Values(),
	}
}

// Hash returns the EIP-712 digest of msg under d
func Hash(d Domain, msg Message) (common.Hash, error) {
	digest, _, err := apitypes.TypedDataAndHash(TypedData(d, msg))
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to hash typed data: %w", err)
	}
	return common.BytesToHash(digest), nil
}

// Sign signs msg under d with key. The recovery id is returned as 27/28.
func Sign(d Domain, msg Message, key *ecdsa.PrivateKey) ([]byte, error) {
	digest, err := Hash(d, msg)
	if err != nil {
		return nil, err
	}
	sig, err := crypto.Sign(digest.Bytes(), key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign digest: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

// Recover returns the address that signed digest
func Recover(digest common.Hash, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, domain.ErrInvalidSignature
	}
	normalized := make([]byte, crypto.SignatureLength)
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}
	pub, err := crypto.SigToPub(digest.Bytes(), normalized)
	if err != nil {
		return common.Address{}, domain.ErrInvalidSignature
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// Verifier checks signatures made for one domain
type Verifier struct {
	domain Domain
}

// NewVerifier creates a verifier for d
func NewVerifier(d Domain) *Verifier {
	return &Verifier{domain: d}
}

// Domain returns the domain the verifier checks against
func (v *Verifier) Domain() Domain {
	return v.domain
}

// Signer re-hashes msg and returns the recovered signer and the digest.
// The deadline is checked before the signature.
func (v *Verifier) Signer(now uint64, msg Message, sig []byte) (common.Address, common.Hash, error) {
	if now > msg.ExpiresAt() {
		return common.Address{}, common.Hash{}, domain.ErrSignatureExpired
	}
	digest, err := Hash(v.domain, msg)
	if err != nil {
		return common.Address{}, common.Hash{}, domain.ErrInvalidSignature
	}
	signer, err := Recover(digest, sig)
	if err != nil {
		return common.Address{}, common.Hash{}, err
	}
	return signer, digest, nil
}

// Verify fails unless sig is a live signature of msg by expected
func (v *Verifier) Verify(now uint64, msg Message, sig []byte, expected common.Address) (common.Hash, error) {
	signer, digest, err := v.Signer(now, msg, sig)
	if err != nil {
		return common.Hash{}, err
	}
	if signer != expected {
		return common.Hash{}, domain.ErrInvalidSignature
	}
	return digest, nil
}

func uintValue(v uint64) *math.HexOrDecimal256 {
	return (*math.HexOrDecimal256)(new(big.Int).SetUint64(v))
}

func bigValue(v *big.Int) *math.HexOrDecimal256 {
	if v == nil {
		v = new(big.Int)
	}
	return (*math.HexOrDecimal256)(new(big.Int).Set(v))
}

func amount(v *uint256.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v.ToBig()
}
