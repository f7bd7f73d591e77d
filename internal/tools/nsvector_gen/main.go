// nsvector_gen prints derivation vectors for a set of names so other
// implementations can cross-check hashing and address derivation.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"nomen.so/nomen/derive"
	"nomen.so/nomen/resolve"
)

type multiStringFlag []string

func (m *multiStringFlag) String() string {
	return strings.Join(*m, ",")
}

func (m *multiStringFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func main() {
	var names multiStringFlag
	flag.Var(&names, "name", "dotted name to derive (repeatable)")
	flag.Parse()

	if len(names) == 0 {
		names = multiStringFlag{"example", "sub.example", "a.b.c"}
	}

	for _, name := range names {
		keys, err := resolve.Domain(name)
		if err != nil {
			fatalf("resolve %q: %v", name, err)
		}
		labels := strings.Split(strings.ToLower(strings.TrimSpace(name)), ".")

		fmt.Printf("name: %s\n", name)
		for i, label := range labels {
			digest := derive.HashLabel(label)
			fmt.Printf("  label=%-12q digest=%s address=%s\n",
				label, hex.EncodeToString(digest[:]), keys[i])
		}
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
