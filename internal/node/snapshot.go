package node

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/marketplace"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/ownership"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/relayer"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/token"
)

// Snapshot is the full ledger state at a height
type Snapshot struct {
	Height      uint64                            `json:"height"`
	Tokens      map[common.Address]token.Snapshot `json:"tokens"`
	Payable     token.RegistrySnapshot            `json:"payable"`
	Ownership   ownership.Snapshot                `json:"ownership"`
	Marketplace marketplace.Snapshot              `json:"marketplace"`
	Relayer     relayer.Snapshot                  `json:"relayer"`
}

// Export returns a consistent snapshot of the committed state
func (n *Node) Export() *Snapshot {
	var s *Snapshot
	_ = n.host.Locked(func(height uint64) error {
		s = n.export(height)
		return nil
	})
	return s
}

// export must run while the host lock is held
func (n *Node) export(height uint64) *Snapshot {
	s := &Snapshot{
		Height:      height,
		Tokens:      make(map[common.Address]token.Snapshot),
		Payable:     n.Payable.Export(),
		Ownership:   n.Ownership.Export(),
		Marketplace: n.Marketplace.Export(),
		Relayer:     n.Relayer.Export(),
	}
	for _, t := range n.Tokens.All() {
		s.Tokens[t.Address()] = t.Export()
	}
	return s
}

// Restore replaces the state with s. Tokens absent from the deployment are ignored.
func (n *Node) Restore(s *Snapshot) {
	_ = n.host.Locked(func(uint64) error {
		for addr, ts := range s.Tokens {
			if t, err := n.Tokens.Token(addr); err == nil {
				t.Import(ts)
			}
		}
		n.Payable.Import(s.Payable)
		n.Ownership.Import(s.Ownership)
		n.Marketplace.Import(s.Marketplace)
		n.Relayer.Import(s.Relayer)
		return nil
	})
	n.host.Restore(s.Height)
}
