package identity

import (
	"github.com/ethereum/go-ethereum/common"
)

// Resolve produces the identity caller acts under.
//
// collection is the campaign's gating collection, nil when ungated. Ungated
// campaigns accept only the caller's own account and reject any proof. Gated
// campaigns require exactly one proof that verifies against collection.
func Resolve(collection *common.Address, caller common.Address, proofs Proofs) (Identity, error) {
	if caller == (common.Address{}) {
		return Identity{}, ErrInvalidIdentity
	}
	if collection == nil {
		if !proofs.Empty() {
			return Identity{}, ErrUnexpectedProof
		}
		return User(caller), nil
	}

	switch {
	case proofs.NFT != nil && proofs.Asset != nil:
		return Identity{}, ErrUnexpectedProof
	case proofs.NFT != nil:
		if err := VerifyNFT(*collection, caller, proofs.NFT); err != nil {
			return Identity{}, err
		}
		return NFT(proofs.NFT.Mint), nil
	case proofs.Asset != nil:
		if err := VerifyAsset(*collection, caller, proofs.Asset); err != nil {
			return Identity{}, err
		}
		return Asset(proofs.Asset.Asset), nil
	default:
		return Identity{}, ErrMissingProof
	}
}

// VerifyNFT checks that caller holds exactly one unit of a collection member.
func VerifyNFT(collection, caller common.Address, proof *NFTProof) error {
	if err := VerifyHolder(caller, proof); err != nil {
		return err
	}
	return MetadataContains(proof.Metadata, collection)
}

// VerifyHolder checks token ownership without any collection requirement.
func VerifyHolder(caller common.Address, proof *NFTProof) error {
	if proof == nil {
		return ErrMissingProof
	}
	if proof.TokenOwner != caller {
		return ErrTokenOwnerMismatch
	}
	if proof.Metadata.Mint != proof.Mint {
		return ErrMetadataMismatch
	}
	if proof.Amount != 1 {
		return ErrOwnerBalanceMismatch
	}
	return nil
}

// MetadataContains accepts a verified collection entry or a verified creator
// equal to collection.
func MetadataContains(md Metadata, collection common.Address) error {
	if md.Collection != nil && md.Collection.Verified && md.Collection.Key == collection {
		return nil
	}
	for _, c := range md.Creators {
		if c.Verified && c.Address == collection {
			return nil
		}
	}
	return ErrCollectionMismatch
}

// VerifyAsset checks that caller owns the asset and that its update authority
// is the collection.
func VerifyAsset(collection, caller common.Address, proof *AssetProof) error {
	if proof.Owner != caller {
		return ErrTokenOwnerMismatch
	}
	if proof.UpdateAuthority.Kind != AuthorityCollection || proof.UpdateAuthority.Key != collection {
		return ErrCollectionMismatch
	}
	return nil
}

// Claimed returns the identity the proofs point at, without verifying them.
func Claimed(caller common.Address, proofs Proofs) (Identity, error) {
	switch {
	case proofs.NFT != nil && proofs.Asset != nil:
		return Identity{}, ErrUnexpectedProof
	case proofs.NFT != nil:
		return NFT(proofs.NFT.Mint), nil
	case proofs.Asset != nil:
		return Asset(proofs.Asset.Asset), nil
	default:
		return User(caller), nil
	}
}

// Owns reports whether caller can act for id using proofs, without any
// collection check. It is used once the gating record no longer exists.
func Owns(id Identity, caller common.Address, proofs Proofs) error {
	switch id.Kind {
	case KindUser:
		if !proofs.Empty() {
			return ErrUnexpectedProof
		}
		if id.Key != caller {
			return ErrTokenOwnerMismatch
		}
		return nil
	case KindNFT:
		if proofs.Asset != nil {
			return ErrUnexpectedProof
		}
		if err := VerifyHolder(caller, proofs.NFT); err != nil {
			return err
		}
		if proofs.NFT.Mint != id.Key {
			return ErrMetadataMismatch
		}
		return nil
	case KindAsset:
		if proofs.NFT != nil {
			return ErrUnexpectedProof
		}
		if proofs.Asset == nil {
			return ErrMissingProof
		}
		if proofs.Asset.Owner != caller {
			return ErrTokenOwnerMismatch
		}
		if proofs.Asset.Asset != id.Key {
			return ErrMetadataMismatch
		}
		return nil
	case KindNone:
		return ErrInvalidIdentity
	default:
		return ErrInvalidIdentity
	}
}
