package inventory

import (
	"fmt"
	"os"

	"github.com/gofrs/uuid"
	"github.com/pelletier/go-toml"
)

type AppConfiguration struct {
	ClientId string `toml:"client-id"`
}

type InventoryConfiguration struct {
	IndexBits uint   `toml:"index-bits"`
	Creator   string `toml:"creator"`
	URI       string `toml:"uri"`
}

type Configuration struct {
	App       AppConfiguration       `toml:"app"`
	Inventory InventoryConfiguration `toml:"inventory"`
}

func Setup(path string) (*Configuration, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var conf Configuration
	err = toml.Unmarshal(f, &conf)
	if err != nil {
		return nil, err
	}
	return &conf, conf.Validate()
}

func DefaultConfiguration() *Configuration {
	return &Configuration{
		Inventory: InventoryConfiguration{IndexBits: DefaultIndexBits},
	}
}

func (conf *Configuration) Validate() error {
	if conf.Inventory.IndexBits == 0 {
		conf.Inventory.IndexBits = DefaultIndexBits
	}
	if _, err := NewCodec(conf.Inventory.IndexBits); err != nil {
		return err
	}
	if conf.App.ClientId != "" {
		if _, err := uuid.FromString(conf.App.ClientId); err != nil {
			return fmt.Errorf("invalid app client id %s", conf.App.ClientId)
		}
	}
	if conf.Inventory.Creator != "" {
		if _, err := uuid.FromString(conf.Inventory.Creator); err != nil {
			return fmt.Errorf("invalid inventory creator %s", conf.Inventory.Creator)
		}
	}
	return nil
}

func (conf *Configuration) CreatorId() uuid.UUID {
	return uuid.FromStringOrNil(conf.Inventory.Creator)
}

func (conf *Configuration) ClientId() uuid.UUID {
	return uuid.FromStringOrNil(conf.App.ClientId)
}
