package signature_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/signature"
)

var testDomain = signature.Domain{
	Name:              "OSNFT_RELAYER",
	Version:           "1",
	ChainID:           31337,
	VerifyingContract: common.HexToAddress("0x00000000000000000000000000000000000000a1"),
}

func sellMessage(to common.Address) signature.SellMessage {
	return signature.SellMessage{
		To:           to,
		TokenID:      domain.TokenIDFromURL("github.com/ujjwalguptaofficial/jsstore"),
		Share:        100,
		Price:        uint256.NewInt(1000),
		PaymentToken: common.HexToAddress("0x00000000000000000000000000000000000000b1"),
		SellPriority: 5,
		Deadline:     2_000,
	}
}

func TestVerify(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := crypto.PubkeyToAddress(key.PublicKey)

	msg := sellMessage(signer)
	sig, err := signature.Sign(testDomain, msg, key)
	require.NoError(t, err)

	verifier := signature.NewVerifier(testDomain)

	t.Run("valid signature", func(t *testing.T) {
		digest, err := verifier.Verify(1_000, msg, sig, signer)
		require.NoError(t, err)
		expected, err := signature.Hash(testDomain, msg)
		require.NoError(t, err)
		assert.Equal(t, expected, digest)
	})

	t.Run("deadline equal to now is still valid", func(t *testing.T) {
		_, err := verifier.Verify(2_000, msg, sig, signer)
		require.NoError(t, err)
	})

	t.Run("expired signature", func(t *testing.T) {
		_, err := verifier.Verify(2_001, msg, sig, signer)
		assert.ErrorIs(t, err, domain.ErrSignatureExpired)
	})

	t.Run("wrong principal", func(t *testing.T) {
		_, err := verifier.Verify(1_000, msg, sig, common.HexToAddress("0x1"))
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})

	t.Run("other domain", func(t *testing.T) {
		other := testDomain
		other.VerifyingContract = common.HexToAddress("0x00000000000000000000000000000000000000a2")
		_, err := signature.NewVerifier(other).Verify(1_000, msg, sig, signer)
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})

	t.Run("malformed signature", func(t *testing.T) {
		_, err := verifier.Verify(1_000, msg, sig[:64], signer)
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})
}

func TestVerifyTamperedFields(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := crypto.PubkeyToAddress(key.PublicKey)
	verifier := signature.NewVerifier(testDomain)

	msg := sellMessage(signer)
	sig, err := signature.Sign(testDomain, msg, key)
	require.NoError(t, err)

	tests := []struct {
		name   string
		tamper func(m *signature.SellMessage)
	}{
		{"deadline", func(m *signature.SellMessage) { m.Deadline++ }},
		{"recipient", func(m *signature.SellMessage) { m.To = common.HexToAddress("0x2") }},
		{"share", func(m *signature.SellMessage) { m.Share = 101 }},
		{"price", func(m *signature.SellMessage) { m.Price = uint256.NewInt(999) }},
		{"token id", func(m *signature.SellMessage) { m.TokenID = domain.TokenIDFromURL("github.com/other/repo") }},
		{"payment token", func(m *signature.SellMessage) { m.PaymentToken = common.HexToAddress("0x3") }},
		{"priority", func(m *signature.SellMessage) { m.SellPriority = 6 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tampered := msg
			tt.tamper(&tampered)
			_, err := verifier.Verify(1_000, tampered, sig, signer)
			assert.ErrorIs(t, err, domain.ErrInvalidSignature)
		})
	}
}

func TestHashDistinguishesMessageKinds(t *testing.T) {
	to := common.HexToAddress("0x4")
	mint := signature.MintMessage{To: to, ProjectURL: "github.com/a/b", NFTType: domain.NFTTypeShare, TotalShare: domain.TotalShares, Deadline: 10}
	buy := signature.BuyMessage{To: to, SellID: domain.ListingID(domain.TokenIDFromURL("github.com/a/b"), to), Share: 1, MaxPrice: uint256.NewInt(1), Deadline: 10}
	tokenize := signature.TokenizeMessage{To: to, ProjectURL: "github.com/a/b", BasePrice: uint256.NewInt(1), PopularityFactorPrice: uint256.NewInt(1), Royalty: 5, Deadline: 10}

	seen := map[common.Hash]string{}
	for name, msg := range map[string]signature.Message{"mint": mint, "buy": buy, "tokenize": tokenize} {
		digest, err := signature.Hash(testDomain, msg)
		require.NoError(t, err)
		_, dup := seen[digest]
		assert.False(t, dup, name)
		seen[digest] = name
	}
}

func TestRecoverAcceptsBothRecoveryEncodings(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	digest := crypto.Keccak256Hash([]byte("payload"))

	raw, err := crypto.Sign(digest.Bytes(), key)
	require.NoError(t, err)

	addr, err := signature.Recover(digest, raw)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), addr)

	legacy := append([]byte{}, raw...)
	legacy[64] += 27
	addr, err = signature.Recover(digest, legacy)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), addr)
}
