package inventory

import (
	"fmt"

	"github.com/holiman/uint256"
)

const (
	IdentifierBits = 256

	MinIndexBits     = 1
	MaxIndexBits     = IdentifierBits - 2
	DefaultIndexBits = 128
)

type Kind int

const (
	KindFungible              Kind = 10
	KindNonFungibleCollection Kind = 11
	KindNonFungibleToken      Kind = 12
)

func (k Kind) String() string {
	switch k {
	case KindFungible:
		return "fungible"
	case KindNonFungibleCollection:
		return "non-fungible-collection"
	case KindNonFungibleToken:
		return "non-fungible-token"
	}
	panic(int(k))
}

// Codec partitions the identifier space. The top bit flags non-fungible
// ids and the low IndexBits of a non-fungible id hold the token index.
type Codec struct {
	indexBits uint
	flag      uint256.Int
	indexMask uint256.Int
}

func NewCodec(indexBits uint) (Codec, error) {
	if indexBits < MinIndexBits || indexBits > MaxIndexBits {
		return Codec{}, fmt.Errorf("invalid index bits %d", indexBits)
	}
	var c Codec
	c.indexBits = indexBits
	c.flag.Lsh(uint256.NewInt(1), IdentifierBits-1)
	c.indexMask.Lsh(uint256.NewInt(1), indexBits)
	c.indexMask.SubUint64(&c.indexMask, 1)
	return c, nil
}

func (c Codec) IndexBits() uint {
	return c.indexBits
}

func (c Codec) Classify(id uint256.Int) Kind {
	if !c.isFlagged(id) {
		return KindFungible
	}
	var index uint256.Int
	index.And(&id, &c.indexMask)
	if index.IsZero() {
		return KindNonFungibleCollection
	}
	return KindNonFungibleToken
}

func (c Codec) IsFungible(id uint256.Int) bool {
	return !c.isFlagged(id)
}

func (c Codec) CollectionOf(id uint256.Int) uint256.Int {
	if !c.isFlagged(id) {
		return id
	}
	var mask, coll uint256.Int
	mask.Not(&c.indexMask)
	coll.And(&id, &mask)
	return coll
}

func (c Codec) IndexOf(id uint256.Int) uint256.Int {
	var index uint256.Int
	if c.isFlagged(id) {
		index.And(&id, &c.indexMask)
	}
	return index
}

// FungibleCollectionID keeps the tag as is, the flag bit must stay clear.
func (c Codec) FungibleCollectionID(tag uint256.Int) (uint256.Int, error) {
	if c.isFlagged(tag) {
		return uint256.Int{}, fmt.Errorf("fungible tag %s overflows", tag.Hex())
	}
	return tag, nil
}

func (c Codec) NonFungibleCollectionID(tag uint256.Int) (uint256.Int, error) {
	if tag.BitLen() > int(IdentifierBits-1-c.indexBits) {
		return uint256.Int{}, fmt.Errorf("non-fungible tag %s overflows", tag.Hex())
	}
	var id uint256.Int
	id.Lsh(&tag, c.indexBits)
	id.Or(&id, &c.flag)
	return id, nil
}

func (c Codec) NonFungibleTokenID(tag, index uint256.Int) (uint256.Int, error) {
	if index.IsZero() || index.BitLen() > int(c.indexBits) {
		return uint256.Int{}, fmt.Errorf("invalid token index %s", index.Hex())
	}
	id, err := c.NonFungibleCollectionID(tag)
	if err != nil {
		return id, err
	}
	id.Or(&id, &index)
	return id, nil
}

func (c Codec) isFlagged(id uint256.Int) bool {
	var flag uint256.Int
	flag.And(&id, &c.flag)
	return !flag.IsZero()
}
