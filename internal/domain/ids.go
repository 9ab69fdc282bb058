package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// CanonicalProjectURL normalizes a project URL so that the same repository always
// hashes to the same token id, e.g. "https://GitHub.com/a/b.git/" -> "github.com/a/b"
func CanonicalProjectURL(projectURL string) string {
	u := strings.TrimSpace(projectURL)
	u = strings.ToLower(u)
	for _, scheme := range []string{"https://", "http://"} {
		u = strings.TrimPrefix(u, scheme)
	}
	u = strings.TrimPrefix(u, "www.")
	u = strings.TrimRight(u, "/")
	u = strings.TrimSuffix(u, ".git")
	return u
}

// TokenIDFromURL returns the permanent token id of a project
func TokenIDFromURL(projectURL string) common.Hash {
	return crypto.Keccak256Hash([]byte(CanonicalProjectURL(projectURL)))
}

// ListingID returns the key shared by sale listings and auctions: keccak256(tokenId ++ seller)
func ListingID(tokenID common.Hash, seller common.Address) common.Hash {
	return crypto.Keccak256Hash(tokenID.Bytes(), seller.Bytes())
}

// IsZeroAddress reports whether addr is the zero address
func IsZeroAddress(addr common.Address) bool {
	return addr == (common.Address{})
}
