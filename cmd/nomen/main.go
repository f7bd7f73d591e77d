package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"nomen.so/nomen/derive"
	"nomen.so/nomen/ledger"
	"nomen.so/nomen/ledger/grpcledger"
	"nomen.so/nomen/lookup"
	"nomen.so/nomen/nsid"
	"nomen.so/nomen/record"
	"nomen.so/nomen/resolve"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "hash":
		return cmdHash(args[1:], out, errOut)
	case "derive":
		return cmdDerive(args[1:], out, errOut)
	case "resolve":
		return cmdResolve(args[1:], out, errOut)
	case "record":
		return cmdRecord(args[1:], out, errOut)
	case "lookup":
		return cmdLookup(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "nomen: name-service derivation and lookup CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  nomen hash <label>")
	fmt.Fprintln(w, "  nomen derive --label <label> [--class <base58>] [--parent <base58>]")
	fmt.Fprintln(w, "  nomen resolve <name>")
	fmt.Fprintln(w, "  nomen record <file>")
	fmt.Fprintln(w, "  nomen lookup --ledger <addr:port> [--commitment processed|confirmed|finalized] <name>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - resolve prints one derived address per label, leaf first")
	fmt.Fprintln(w, "  - record reads raw account bytes from <file> (\"-\" for stdin)")
}

func cmdHash(args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "usage: nomen hash <label>")
		return 2
	}
	digest := derive.HashLabel(args[0])
	fmt.Fprintln(out, hex.EncodeToString(digest[:]))
	return 0
}

func cmdDerive(args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("derive", flag.ContinueOnError)
	fs.SetOutput(errOut)
	label := fs.String("label", "", "label to derive")
	classStr := fs.String("class", "", "optional class identifier (base58)")
	parentStr := fs.String("parent", "", "optional parent identifier (base58)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *label == "" {
		fmt.Fprintln(errOut, "derive: --label is required")
		return 2
	}

	class, parent := nsid.Zero, nsid.Zero
	var err error
	if *classStr != "" {
		if class, err = nsid.Parse(*classStr); err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
	}
	if *parentStr != "" {
		if parent, err = nsid.Parse(*parentStr); err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
	}

	addr, err := derive.AddressClassParent(derive.HashLabel(*label), class, parent)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	fmt.Fprintln(out, addr)
	return 0
}

func cmdResolve(args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "usage: nomen resolve <name>")
		return 2
	}
	keys, err := resolve.Domain(args[0])
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	for _, k := range keys {
		fmt.Fprintln(out, k)
	}
	return 0
}

func cmdRecord(args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "usage: nomen record <file>")
		return 2
	}

	var raw []byte
	var err error
	if args[0] == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(args[0])
	}
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	rec, err := record.Decode(nsid.Zero, raw)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	printRecord(out, rec)
	return 0
}

func cmdLookup(args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	fs.SetOutput(errOut)
	target := fs.String("ledger", "127.0.0.1:7600", "ledger gRPC address")
	commitment := fs.String("commitment", "", "commitment level (default finalized)")
	timeout := fs.Duration("timeout", 10*time.Second, "per-call timeout")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: nomen lookup [flags] <name>")
		return 2
	}

	client, err := grpcledger.Dial(*target, grpcledger.DialOptions{Timeout: *timeout})
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	defer client.Close()
	client.Timeout = *timeout

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := lookup.Lookup(ctx, client, fs.Arg(0), lookup.Options{
		Commitment: ledger.Commitment(*commitment),
	})
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	fmt.Fprintln(out, "Addresses (leaf first):")
	for _, k := range res.Addresses {
		fmt.Fprintf(out, "  %s\n", k)
	}
	printRecord(out, res.Record)
	fmt.Fprintf(out, "Lamports:   %d\n", res.Account.Lamports)
	fmt.Fprintf(out, "Rent epoch: %d\n", res.Account.RentEpoch)
	return 0
}

func printRecord(w io.Writer, rec *record.Record) {
	fmt.Fprintf(w, "Parent:  %s\n", rec.Parent)
	fmt.Fprintf(w, "Owner:   %s\n", rec.Owner)
	fmt.Fprintf(w, "Class:   %s\n", rec.Class)
	if id, err := record.ContentID(rec.Payload); err == nil {
		fmt.Fprintf(w, "Content: %s\n", id)
		return
	}
	fmt.Fprintf(w, "Payload: %d bytes (hex %s)\n", len(rec.Payload), hex.EncodeToString(rec.Payload))
}
