package token

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

// Directory is the set of fungible-token contracts deployed on the host
type Directory struct {
	tokens map[common.Address]*Token
}

// NewDirectory creates a directory of tokens
func NewDirectory(tokens ...*Token) *Directory {
	d := &Directory{tokens: make(map[common.Address]*Token, len(tokens))}
	for _, t := range tokens {
		d.Register(t)
	}
	return d
}

// Register adds t to the directory. Only called while wiring the host.
func (d *Directory) Register(t *Token) {
	d.tokens[t.Address()] = t
}

// Token returns the token deployed at addr
func (d *Directory) Token(addr common.Address) (*Token, error) {
	t, ok := d.tokens[addr]
	if !ok {
		return nil, domain.ErrUnknownToken
	}
	return t, nil
}

// Payment returns the token at addr through the payment-token surface
func (d *Directory) Payment(addr common.Address) (PaymentToken, error) {
	t, err := d.Token(addr)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Has reports whether a token is deployed at addr
func (d *Directory) Has(addr common.Address) bool {
	_, ok := d.tokens[addr]
	return ok
}

// All returns every token ordered by address
func (d *Directory) All() []*Token {
	out := make([]*Token, 0, len(d.tokens))
	for _, t := range d.tokens {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Address().Cmp(out[j].Address()) < 0
	})
	return out
}
