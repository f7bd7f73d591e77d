package memledger

import (
	"flag"

	"nomen.so/nomen/ledger"
	"nomen.so/nomen/ledger/registry"
)

func init() {
	registry.MustRegister(registry.Backend{
		Name:        "memory",
		Description: "volatile in-memory account store",
		RegisterFlags: func(fs *flag.FlagSet) {},
		Open: func() (ledger.Fetcher, ledger.Store, func() error, error) {
			l := New()
			return l, l, nil, nil
		},
	})
}
