package chain

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain/state"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

// Ownable is single-owner access control for a ledger component
type Ownable struct {
	component string
	address   common.Address
	owner     *state.Value[common.Address]
}

// NewOwnable creates access control for the component deployed at address
func NewOwnable(j *state.Journal, component string, address, owner common.Address) *Ownable {
	return &Ownable{
		component: component,
		address:   address,
		owner:     state.NewValue(j, owner),
	}
}

// Owner returns the current owner
func (o *Ownable) Owner() common.Address {
	return o.owner.Get()
}

// OnlyOwner fails unless the caller is the owner
func (o *Ownable) OnlyOwner(c *Context) error {
	if c.Caller() != o.owner.Get() {
		return domain.ErrNotOwner
	}
	return nil
}

// TransferOwnership hands the component to newOwner
func (o *Ownable) TransferOwnership(c *Context, newOwner common.Address) error {
	if err := o.OnlyOwner(c); err != nil {
		return err
	}
	if domain.IsZeroAddress(newOwner) {
		return domain.ErrZeroAddress
	}
	previous := o.owner.Get()
	o.owner.Set(newOwner)
	c.Emit(o.address, domain.OwnershipTransferred{
		Component:     o.component,
		PreviousOwner: previous,
		NewOwner:      newOwner,
	})
	return nil
}

// Import restores the owner from a snapshot
func (o *Ownable) Import(owner common.Address) {
	o.owner.Import(owner)
}
