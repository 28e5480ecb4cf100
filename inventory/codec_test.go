package inventory

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestCodec(t *testing.T) {
	_, err := NewCodec(0)
	if err == nil {
		t.Fatalf("NewCodec(0) should fail")
	}
	_, err = NewCodec(MaxIndexBits + 1)
	if err == nil {
		t.Fatalf("NewCodec(%d) should fail", MaxIndexBits+1)
	}

	c, err := NewCodec(DefaultIndexBits)
	if err != nil {
		t.Fatalf("NewCodec failed: %v", err)
	}

	ft, err := c.FungibleCollectionID(*uint256.NewInt(42))
	if err != nil {
		t.Fatalf("FungibleCollectionID failed: %v", err)
	}
	if c.Classify(ft) != KindFungible || !c.IsFungible(ft) {
		t.Fatalf("%s should be fungible", ft.Hex())
	}
	if coll := c.CollectionOf(ft); !coll.Eq(&ft) {
		t.Fatalf("fungible collection should be itself: %s", coll.Hex())
	}
	if index := c.IndexOf(ft); !index.IsZero() {
		t.Fatalf("fungible index should be zero: %s", index.Hex())
	}

	nfc, err := c.NonFungibleCollectionID(*uint256.NewInt(1))
	if err != nil {
		t.Fatalf("NonFungibleCollectionID failed: %v", err)
	}
	want, _ := uint256.FromHex("0x8000000000000000000000000000000100000000000000000000000000000000")
	if !nfc.Eq(want) {
		t.Fatalf("collection id mismatch %s", nfc.Hex())
	}
	if c.Classify(nfc) != KindNonFungibleCollection || c.IsFungible(nfc) {
		t.Fatalf("%s should be a non-fungible collection", nfc.Hex())
	}

	tok, err := c.NonFungibleTokenID(*uint256.NewInt(1), *uint256.NewInt(5))
	if err != nil {
		t.Fatalf("NonFungibleTokenID failed: %v", err)
	}
	if c.Classify(tok) != KindNonFungibleToken {
		t.Fatalf("%s should be a token", tok.Hex())
	}
	if coll := c.CollectionOf(tok); !coll.Eq(&nfc) {
		t.Fatalf("token collection mismatch %s", coll.Hex())
	}
	if index := c.IndexOf(tok); index.Uint64() != 5 {
		t.Fatalf("token index mismatch %s", index.Hex())
	}

	_, err = c.NonFungibleTokenID(*uint256.NewInt(1), uint256.Int{})
	if err == nil {
		t.Fatalf("zero index should fail")
	}
	var big uint256.Int
	big.Lsh(uint256.NewInt(1), DefaultIndexBits)
	_, err = c.NonFungibleTokenID(*uint256.NewInt(1), big)
	if err == nil {
		t.Fatalf("index overflow should fail")
	}
	big.Lsh(uint256.NewInt(1), IdentifierBits-1-DefaultIndexBits)
	_, err = c.NonFungibleCollectionID(big)
	if err == nil {
		t.Fatalf("tag overflow should fail")
	}
	_, err = c.FungibleCollectionID(nfc)
	if err == nil {
		t.Fatalf("flagged fungible tag should fail")
	}
}

func TestCodecNarrowIndex(t *testing.T) {
	c, err := NewCodec(8)
	if err != nil {
		t.Fatalf("NewCodec failed: %v", err)
	}
	nfc, _ := c.NonFungibleCollectionID(*uint256.NewInt(3))
	tok, _ := c.NonFungibleTokenID(*uint256.NewInt(3), *uint256.NewInt(255))
	if c.Classify(tok) != KindNonFungibleToken {
		t.Fatalf("%s should be a token", tok.Hex())
	}
	if coll := c.CollectionOf(tok); !coll.Eq(&nfc) {
		t.Fatalf("token collection mismatch %s", coll.Hex())
	}
	_, err = c.NonFungibleTokenID(*uint256.NewInt(3), *uint256.NewInt(256))
	if err == nil {
		t.Fatalf("index 256 should overflow 8 bits")
	}

	var id uint256.Int
	id.Lsh(uint256.NewInt(1), IdentifierBits-1)
	if c.Classify(id) != KindNonFungibleCollection {
		t.Fatalf("bare flag should classify as a collection")
	}
	id.SetUint64(256)
	if c.Classify(id) != KindFungible {
		t.Fatalf("unflagged id should be fungible")
	}
}
