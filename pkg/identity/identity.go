// Package identity resolves the canonical identity a player acts under.
//
// A player is either a plain account holder, the holder of a collection-verified
// NFT, or the owner of an asset from an alternate registry whose update authority
// references the collection. Every consumer switches over Kind exhaustively.
package identity

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrUnexpectedProof      = errors.New("unexpected proof")
	ErrMissingProof         = errors.New("missing identity proof")
	ErrTokenOwnerMismatch   = errors.New("token owner mismatch")
	ErrOwnerBalanceMismatch = errors.New("owner balance mismatch")
	ErrMetadataMismatch     = errors.New("metadata mismatch")
	ErrCollectionMismatch   = errors.New("collection proof invalid")
	ErrInvalidIdentity      = errors.New("invalid identity")
)

// Kind tags the identity variant.
type Kind uint8

const (
	KindNone Kind = iota
	KindUser
	KindNFT
	KindAsset
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindUser:
		return "user"
	case KindNFT:
		return "nft"
	case KindAsset:
		return "asset"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "none", "":
		return KindNone, nil
	case "user":
		return KindUser, nil
	case "nft":
		return KindNFT, nil
	case "asset":
		return KindAsset, nil
	default:
		return KindNone, fmt.Errorf("unknown identity kind %q", s)
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Identity is the resolved (kind, key) pair a player record is bound to.
// Key is the caller for User, the mint for NFT and the asset for Asset.
type Identity struct {
	Kind Kind           `json:"kind"`
	Key  common.Address `json:"key"`
}

// User returns the plain account identity of key.
func User(key common.Address) Identity { return Identity{Kind: KindUser, Key: key} }

// NFT returns the identity of the holder of mint.
func NFT(mint common.Address) Identity { return Identity{Kind: KindNFT, Key: mint} }

// Asset returns the identity of the owner of asset.
func Asset(asset common.Address) Identity { return Identity{Kind: KindAsset, Key: asset} }

// Valid reports whether the identity is one of the concrete variants.
func (id Identity) Valid() bool {
	switch id.Kind {
	case KindUser, KindNFT, KindAsset:
		return id.Key != (common.Address{})
	case KindNone:
		return false
	default:
		return false
	}
}

// Gated reports whether the identity spends energy.
func (id Identity) Gated() bool {
	switch id.Kind {
	case KindNFT, KindAsset:
		return true
	case KindUser, KindNone:
		return false
	default:
		return false
	}
}

func (id Identity) String() string {
	return id.Kind.String() + ":" + id.Key.Hex()
}

// Proofs are the caller-supplied identity proofs for one request.
type Proofs struct {
	NFT   *NFTProof   `json:"nft,omitempty"`
	Asset *AssetProof `json:"asset,omitempty"`
}

// Empty reports whether no proof was supplied.
func (p Proofs) Empty() bool {
	return p.NFT == nil && p.Asset == nil
}

// NFTProof carries a token account holding the NFT and the NFT's metadata.
type NFTProof struct {
	Mint       common.Address `json:"mint"`
	TokenOwner common.Address `json:"token_owner"`
	Amount     uint64         `json:"amount"`
	Metadata   Metadata       `json:"metadata"`
}

// Metadata is the subset of NFT metadata used for collection membership.
type Metadata struct {
	Mint       common.Address `json:"mint"`
	Collection *Collection    `json:"collection,omitempty"`
	Creators   []Creator      `json:"creators,omitempty"`
}

// Collection is a metadata collection reference.
type Collection struct {
	Key      common.Address `json:"key"`
	Verified bool           `json:"verified"`
}

// Creator is a metadata creator entry.
type Creator struct {
	Address  common.Address `json:"address"`
	Verified bool           `json:"verified"`
}

// AuthorityKind tags an asset's update authority.
type AuthorityKind string

const (
	AuthorityNone       AuthorityKind = "none"
	AuthorityAddress    AuthorityKind = "address"
	AuthorityCollection AuthorityKind = "collection"
)

// AssetProof carries an alternate-registry asset record.
type AssetProof struct {
	Asset           common.Address  `json:"asset"`
	Owner           common.Address  `json:"owner"`
	UpdateAuthority UpdateAuthority `json:"update_authority"`
}

// UpdateAuthority references who may update the asset.
type UpdateAuthority struct {
	Kind AuthorityKind  `json:"kind"`
	Key  common.Address `json:"key"`
}
