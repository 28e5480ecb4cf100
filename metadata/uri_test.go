package metadata

import (
	"strings"
	"testing"

	"github.com/holiman/uint256"
)

func TestTemplateURI(t *testing.T) {
	id := *uint256.NewInt(0x2a)

	tpl := NewTemplate("https://example.com/api/{id}.json")
	uri := tpl.URI(id)
	want := "https://example.com/api/" + strings.Repeat("0", 62) + "2a.json"
	if uri != want {
		t.Fatalf("URI mismatch: got %s want %s", uri, want)
	}

	tpl = NewTemplate("https://example.com/api/")
	if uri := tpl.URI(id); uri != "https://example.com/api/42" {
		t.Fatalf("URI mismatch: got %s", uri)
	}

	tpl = NewTemplate("")
	if uri := tpl.URI(id); uri != "" {
		t.Fatalf("URI should be empty: %s", uri)
	}
}
