package metadata

import (
	"encoding/hex"
	"strings"

	"github.com/holiman/uint256"
)

const idPlaceholder = "{id}"

// Template resolves collection URIs by substituting the id, as 64 lower
// case hex digits, for every {id} in the base. Without a placeholder the
// decimal id is appended.
type Template struct {
	Base string
}

func NewTemplate(base string) *Template {
	return &Template{Base: base}
}

func (t *Template) URI(id uint256.Int) string {
	if t.Base == "" {
		return ""
	}
	if strings.Contains(t.Base, idPlaceholder) {
		buf := id.Bytes32()
		return strings.ReplaceAll(t.Base, idPlaceholder, hex.EncodeToString(buf[:]))
	}
	return t.Base + id.Dec()
}
