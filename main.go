package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MixinNetwork/inventory/inventory"
	"github.com/MixinNetwork/inventory/legacy"
	"github.com/MixinNetwork/inventory/metadata"
	"github.com/MixinNetwork/inventory/store"
	"github.com/MixinNetwork/mixin/logger"
	"github.com/gofrs/uuid"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

const usage = `usage: inventory [-d dir] [-c config] <command> [args]

  collection <id>
  mint-fungible <to> <collection> <amount>
  mint-token <to> <token>
  transfer <from> <to> <id> <amount> [data]
  burn <from> <id> <amount>
  approve <operator> <true|false>
  balance <owner> <id>
  owner <token>
  events [offset] [limit]
`

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bp := flag.String("d", "~/.mixin/inventory/data", "database directory path")
	cp := flag.String("c", "~/.mixin/inventory/config.toml", "configuration file path")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	conf, err := inventory.Setup(expandHome(*cp))
	if err != nil {
		panic(err)
	}
	db, err := store.OpenBadger(ctx, expandHome(*bp))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	led, err := inventory.BuildLedger(ctx, db, conf, metadata.NewTemplate(conf.Inventory.URI))
	if err != nil {
		panic(err)
	}
	led.AddListener(legacy.NewProjector(led, &legacySink{}))

	err = run(ctx, led, db, conf.ClientId(), flag.Args())
	if err != nil {
		logger.Printf("%s => %v\n", flag.Arg(0), err)
		os.Exit(1)
	}
}

func run(ctx context.Context, led *inventory.Ledger, db *store.BadgerStore, sender uuid.UUID, args []string) error {
	cmd, args := args[0], args[1:]
	switch {
	case cmd == "collection" && len(args) == 1:
		return led.CreateCollection(ctx, sender, parseID(args[0]))
	case cmd == "mint-fungible" && len(args) == 3:
		return led.MintFungible(ctx, sender, parseUser(args[0]), parseID(args[1]), parseAmount(args[2]))
	case cmd == "mint-token" && len(args) == 2:
		return led.MintNonFungible(ctx, sender, parseUser(args[0]), parseID(args[1]))
	case cmd == "transfer" && (len(args) == 4 || len(args) == 5):
		var data []byte
		if len(args) == 5 {
			data = parseData(args[4])
		}
		return led.Transfer(ctx, sender, parseUser(args[0]), parseUser(args[1]), parseID(args[2]), parseAmount(args[3]), data)
	case cmd == "burn" && len(args) == 3:
		return led.Burn(ctx, sender, parseUser(args[0]), parseID(args[1]), parseAmount(args[2]))
	case cmd == "approve" && len(args) == 2:
		approved, err := strconv.ParseBool(args[1])
		if err != nil {
			return err
		}
		return led.SetApprovalForAll(ctx, sender, parseUser(args[0]), approved)
	case cmd == "balance" && len(args) == 2:
		bal, err := led.BalanceOf(ctx, parseUser(args[0]), parseID(args[1]))
		if err != nil {
			return err
		}
		fmt.Println(bal.Dec())
		return nil
	case cmd == "owner" && len(args) == 1:
		owner, err := led.OwnerOf(ctx, parseID(args[0]))
		if err != nil {
			return err
		}
		fmt.Println(owner)
		return nil
	case cmd == "events" && len(args) <= 2:
		offset, limit := uint64(0), 100
		if len(args) > 0 {
			offset, _ = strconv.ParseUint(args[0], 10, 64)
		}
		if len(args) > 1 {
			limit, _ = strconv.Atoi(args[1])
		}
		events, err := db.ListEvents(offset, limit)
		if err != nil {
			return err
		}
		for _, e := range events {
			fmt.Println(e.TraceId, e.Hash, e)
		}
		return nil
	}
	return fmt.Errorf("invalid command %s %v", cmd, args)
}

type legacySink struct{}

func (*legacySink) EmitTransfer(ctx context.Context, t *legacy.Transfer) {
	logger.Printf("Transfer(%s, %s, %s) #%d\n", t.From, t.To, t.TokenId.Hex(), t.Sequence)
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		usr, _ := user.Current()
		p = filepath.Join(usr.HomeDir, p[2:])
	}
	return p
}

func parseUser(s string) uuid.UUID {
	id, err := uuid.FromString(s)
	if err != nil {
		panic(err)
	}
	return id
}

func parseID(s string) uint256.Int {
	var id *uint256.Int
	var err error
	if strings.HasPrefix(s, "0x") {
		id, err = uint256.FromHex(s)
	} else {
		id, err = uint256.FromDecimal(s)
	}
	if err != nil {
		panic(fmt.Errorf("invalid id %s: %v", s, err))
	}
	return *id
}

func parseAmount(s string) uint256.Int {
	d, err := decimal.NewFromString(s)
	if err != nil || d.Sign() < 0 || !d.Equal(d.Truncate(0)) {
		panic(fmt.Errorf("invalid amount %s", s))
	}
	amt, err := uint256.FromDecimal(d.Truncate(0).String())
	if err != nil {
		panic(fmt.Errorf("invalid amount %s: %v", s, err))
	}
	return *amt
}

func parseData(s string) []byte {
	data, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		panic(err)
	}
	return data
}
