package inventory

import (
	"os"
	"path/filepath"
	"testing"
)

const testConfig = `
[app]
client-id = "8e8b5b0c-4ea1-4a4e-9a43-2f2b3d1fd1d2"

[inventory]
index-bits = 64
creator = "f6b3ae3f-8f3b-4d4e-8a8e-9b3e0f2c3a11"
uri = "https://example.com/{id}.json"
`

func TestSetup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(path, []byte(testConfig), 0600)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	conf, err := Setup(path)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if conf.Inventory.IndexBits != 64 {
		t.Fatalf("index bits mismatch %d", conf.Inventory.IndexBits)
	}
	if conf.ClientId().String() != "8e8b5b0c-4ea1-4a4e-9a43-2f2b3d1fd1d2" {
		t.Fatalf("client id mismatch %s", conf.ClientId())
	}
	if conf.CreatorId().String() != "f6b3ae3f-8f3b-4d4e-8a8e-9b3e0f2c3a11" {
		t.Fatalf("creator mismatch %s", conf.CreatorId())
	}
	if conf.Inventory.URI != "https://example.com/{id}.json" {
		t.Fatalf("uri mismatch %s", conf.Inventory.URI)
	}

	_, err = Setup(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatalf("Setup with a missing file should fail")
	}
}

func TestConfigurationValidate(t *testing.T) {
	conf := &Configuration{}
	err := conf.Validate()
	if err != nil || conf.Inventory.IndexBits != DefaultIndexBits {
		t.Fatalf("Validate should default index bits %d %v", conf.Inventory.IndexBits, err)
	}

	conf.Inventory.IndexBits = MaxIndexBits + 1
	if conf.Validate() == nil {
		t.Fatalf("Validate should reject index bits %d", conf.Inventory.IndexBits)
	}

	conf = DefaultConfiguration()
	conf.Inventory.Creator = "nobody"
	if conf.Validate() == nil {
		t.Fatalf("Validate should reject creator %s", conf.Inventory.Creator)
	}
	conf = DefaultConfiguration()
	conf.App.ClientId = "nobody"
	if conf.Validate() == nil {
		t.Fatalf("Validate should reject client id %s", conf.App.ClientId)
	}
}
