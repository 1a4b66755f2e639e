// Package keys derives the deterministic account keys used by the clubhouse program.
// Record IDs and escrow owners are program-derived: they are Keccak-256 hashes of a
// namespace and seed material truncated to an account address, so they can be
// recomputed by any client and never collide with a key that has a private key.
package keys

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

// Namespaces used as the first seed of every derived key.
const (
	NamespaceHouse        = "house"
	NamespaceCampaign     = "campaign"
	NamespaceHouseVault   = "vault"
	NamespaceRewardVault  = "rewards"
	NamespaceDepositVault = "deposit"
	NamespaceCampaignAuth = "campaign_auth"
	NamespaceProgramAdmin = "program_admin"
)

// Derive hashes namespace and seeds into an account address.
// Seeds are length-prefixed so ("ab","c") and ("a","bc") never collide.
func Derive(namespace string, seeds ...[]byte) common.Address {
	buf := make([]byte, 0, 64)
	buf = append(buf, byte(len(namespace)))
	buf = append(buf, namespace...)
	for _, s := range seeds {
		buf = append(buf, byte(len(s)>>8), byte(len(s)))
		buf = append(buf, s...)
	}
	return common.BytesToAddress(crypto.Keccak256(buf))
}

// HouseID returns the key of the house registered under name.
func HouseID(name string) common.Address {
	return Derive(NamespaceHouse, []byte(name))
}

// CampaignID returns the key of the campaign registered under name in house.
func CampaignID(house common.Address, name string) common.Address {
	return Derive(NamespaceCampaign, house.Bytes(), []byte(name))
}

// HouseVault owns the house's currency and native fee escrow.
func HouseVault(house common.Address) common.Address {
	return Derive(NamespaceHouseVault, house.Bytes())
}

// RewardVault owns the campaign's reward escrow.
func RewardVault(campaign common.Address) common.Address {
	return Derive(NamespaceRewardVault, campaign.Bytes())
}

// DepositVault owns player deposits and stakes for one generation of the
// campaign. A campaign rebuilt under the same name gets a fresh vault, so stakes
// left in an earlier generation are never swept with the new one.
func DepositVault(campaign common.Address, generation uuid.UUID) common.Address {
	return Derive(NamespaceDepositVault, campaign.Bytes(), generation[:])
}

// CampaignAuthority owns the campaign's native claim fee balance.
func CampaignAuthority(campaign common.Address) common.Address {
	return Derive(NamespaceCampaignAuth, campaign.Bytes())
}

// ProgramAdminProof returns the key of the capability record granted to admin.
func ProgramAdminProof(admin common.Address) common.Address {
	return Derive(NamespaceProgramAdmin, admin.Bytes())
}

// IsZero reports whether addr is the unset key.
func IsZero(addr common.Address) bool {
	return addr == (common.Address{})
}
