package events

import (
	"context"

	"github.com/crucible-fi/crucible/core/types"
)

type VaultCreated struct {
	*Base
	vault types.Vault
}

func NewVaultCreatedEvent(ctx context.Context, vault *types.Vault) *VaultCreated {
	return &VaultCreated{
		Base:  newBase(ctx, VaultCreatedEvent),
		vault: *vault.Clone(),
	}
}

func (e VaultCreated) Vault() types.Vault {
	return e.vault
}

type VaultDestroyed struct {
	*Base
	vaultID string
}

func NewVaultDestroyedEvent(ctx context.Context, vaultID string) *VaultDestroyed {
	return &VaultDestroyed{
		Base:    newBase(ctx, VaultDestroyedEvent),
		vaultID: vaultID,
	}
}

func (e VaultDestroyed) VaultID() string {
	return e.vaultID
}

type VaultOwnerChanged struct {
	*Base
	vaultID  string
	oldOwner string
	newOwner string
}

func NewVaultOwnerChangedEvent(ctx context.Context, vaultID, oldOwner, newOwner string) *VaultOwnerChanged {
	return &VaultOwnerChanged{
		Base:     newBase(ctx, VaultOwnerChangedEvent),
		vaultID:  vaultID,
		oldOwner: oldOwner,
		newOwner: newOwner,
	}
}

func (e VaultOwnerChanged) VaultID() string {
	return e.vaultID
}

func (e VaultOwnerChanged) OldOwner() string {
	return e.oldOwner
}

func (e VaultOwnerChanged) NewOwner() string {
	return e.newOwner
}

// BalancesUpdated is emitted on every committed balance change, whether by
// user action or auction settlement.
type BalancesUpdated struct {
	*Base
	vaultID  string
	balances types.Balances
}

func NewBalancesUpdatedEvent(ctx context.Context, vaultID string, balances *types.Balances) *BalancesUpdated {
	return &BalancesUpdated{
		Base:     newBase(ctx, BalancesUpdatedEvent),
		vaultID:  vaultID,
		balances: *balances.Clone(),
	}
}

func (e BalancesUpdated) VaultID() string {
	return e.vaultID
}

func (e BalancesUpdated) Balances() types.Balances {
	return e.balances
}
