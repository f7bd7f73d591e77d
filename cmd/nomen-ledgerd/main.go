package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"google.golang.org/grpc"

	"nomen.so/nomen/ledger/grpcledger"
	"nomen.so/nomen/ledger/registry"

	_ "nomen.so/nomen/ledger/fsledger"
	_ "nomen.so/nomen/ledger/memledger"
)

func main() {
	fs := flag.NewFlagSet("nomen-ledgerd", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7600", "listen address")
	backend := fs.String("backend", "fs", "ledger backend name")
	listBackends := fs.Bool("list-backends", false, "List supported backends and exit")

	registry.RegisterFlags(fs)

	_ = fs.Parse(os.Args[1:])
	if *listBackends {
		for _, b := range registry.List() {
			if b.Description == "" {
				_, _ = fmt.Fprintf(os.Stdout, "%s\n", b.Name)
				continue
			}
			_, _ = fmt.Fprintf(os.Stdout, "%s\t%s\n", b.Name, b.Description)
		}
		return
	}

	fetcher, store, closeFn, err := registry.Open(*backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if closeFn != nil {
		defer closeFn()
	}

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lis.Close()

	s := grpc.NewServer()
	grpcledger.RegisterLedgerServer(s, &grpcledger.Server{Fetcher: fetcher, Store: store})

	fmt.Fprintf(os.Stderr, "nomen-ledgerd listening on %s (backend=%s)\n", lis.Addr().String(), *backend)
	if err := s.Serve(lis); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
