package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sara-star-quant/tlsalg/pkg/registry"
	"github.com/sara-star-quant/tlsalg/pkg/suite"
)

type listOptions struct {
	Suites      bool
	Ciphers     bool
	MACs        bool
	KX          bool
	Compression bool
	Versions    bool
	SRP         bool
}

func runList(opts listOptions) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	defer w.Flush()

	if opts.Ciphers {
		fmt.Fprintln(w, "CIPHERS")
		fmt.Fprintln(w, "  NAME\tKEY\tBLOCK\tIV\tEXPORT")
		for _, e := range registry.Ciphers.Entries() {
			fmt.Fprintf(w, "  %s\t%d\t%d\t%d\t%v\n", e.Name, e.KeySize, e.BlockSize, e.IVSize, e.Export)
		}
		fmt.Fprintln(w)
	}

	if opts.MACs {
		fmt.Fprintln(w, "MACS")
		fmt.Fprintln(w, "  NAME\tDIGEST")
		for _, e := range registry.MACs.Entries() {
			fmt.Fprintf(w, "  %s\t%d\n", e.Name, e.DigestSize)
		}
		fmt.Fprintln(w)
	}

	if opts.KX {
		reg := registry.KeyExchanges
		if opts.SRP {
			reg = registry.NewKXRegistry(registry.SRPKeyExchanges()...)
		}
		fmt.Fprintln(w, "KEY EXCHANGES")
		for _, e := range reg.Entries() {
			fmt.Fprintf(w, "  %s\n", e.Name)
		}
		fmt.Fprintln(w)
	}

	if opts.Compression {
		fmt.Fprintln(w, "COMPRESSION")
		fmt.Fprintln(w, "  NAME\tNUM")
		for _, e := range registry.Compressions.Entries() {
			fmt.Fprintf(w, "  %s\t0x%02X\n", registry.Compressions.Name(e.ID), e.Num)
		}
		fmt.Fprintln(w)
	}

	if opts.Versions {
		fmt.Fprintln(w, "VERSIONS")
		fmt.Fprintln(w, "  NAME\tWIRE\tSUPPORTED")
		for _, e := range registry.Versions.Entries() {
			fmt.Fprintf(w, "  %s\t%d.%d\t%v\n", e.Name, e.Major, e.Minor, e.Supported)
		}
		fmt.Fprintln(w)
	}

	if opts.Suites {
		fmt.Fprintf(w, "CIPHER SUITES (%d)\n", suite.Count())
		fmt.Fprintln(w, "  CODE\tNAME\tMIN VERSION")
		for _, e := range suite.All() {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", e.ID, e.Name, registry.Versions.Name(e.MinVersion))
		}
	}
}
