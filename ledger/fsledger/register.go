package fsledger

import (
	"flag"

	"nomen.so/nomen/ledger"
	"nomen.so/nomen/ledger/registry"
)

var flagRoot *string

func init() {
	registry.MustRegister(registry.Backend{
		Name:        "fs",
		Description: "filesystem account store (one file per address)",
		RegisterFlags: func(fs *flag.FlagSet) {
			flagRoot = fs.String("fs-root", "", "root directory for the fs backend")
		},
		Open: func() (ledger.Fetcher, ledger.Store, func() error, error) {
			l, err := New(*flagRoot)
			if err != nil {
				return nil, nil, nil, err
			}
			return l, l, nil, nil
		},
	})
}
