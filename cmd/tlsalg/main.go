package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sara-star-quant/tlsalg/pkg/metrics"
	pkgversion "github.com/sara-star-quant/tlsalg/pkg/version"
)

// Build-time variables (set via -ldflags)
var (
	version   = ""        // Set via -ldflags "-X main.version=x.y.z"
	buildTime = "unknown" // Set via -ldflags "-X main.buildTime=..."
	gitCommit = "unknown" // Set via -ldflags "-X main.gitCommit=..."
)

func getVersion() string {
	if version != "" {
		return version
	}
	return pkgversion.String()
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "list":
		listCommand()
	case "candidates":
		candidatesCommand()
	case "version":
		fmt.Printf("tlsalg version %s\n", getVersion())
		if buildTime != "unknown" {
			fmt.Printf("Built: %s\n", buildTime)
		}
		if gitCommit != "unknown" {
			fmt.Printf("Commit: %s\n", gitCommit)
		}
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`tlsalg - TLS Algorithm Registry & Suite Selection Tool

USAGE:
    tlsalg <command> [options]

COMMANDS:
    list        List registered algorithms and cipher suites
    candidates  Compute the filtered, sorted cipher suite offer
    version     Print version information
    help        Show this help message

Run 'tlsalg <command> --help' for more information on a command.

EXAMPLES:
    # Dump the full cipher suite table
    tlsalg list --suites

    # List ciphers with their key and block sizes
    tlsalg list --ciphers

    # Show what a default session would offer under TLS 1.0
    tlsalg candidates --version "TLS 1.0"

    # Restrict the key exchanges and show the wire encoding
    tlsalg candidates --kx "RSA,DHE RSA" --wire`)
}

func listCommand() {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	suites := fs.Bool("suites", false, "List the cipher suite table")
	ciphers := fs.Bool("ciphers", false, "List cipher algorithms")
	macs := fs.Bool("macs", false, "List MAC algorithms")
	kx := fs.Bool("kx", false, "List key exchange algorithms")
	compression := fs.Bool("compression", false, "List compression methods")
	versions := fs.Bool("versions", false, "List protocol versions")
	srp := fs.Bool("srp", false, "Include SRP key exchanges")

	fs.Usage = func() {
		fmt.Println(`USAGE: tlsalg list [options]

List the contents of the algorithm registries. With no options, every
registry is listed.

OPTIONS:`)
		fs.PrintDefaults()
	}

	_ = fs.Parse(os.Args[2:])

	all := !*suites && !*ciphers && !*macs && !*kx && !*compression && !*versions
	runList(listOptions{
		Suites:      all || *suites,
		Ciphers:     all || *ciphers,
		MACs:        all || *macs,
		KX:          all || *kx,
		Compression: all || *compression,
		Versions:    all || *versions,
		SRP:         *srp,
	})
}

func candidatesCommand() {
	fs := flag.NewFlagSet("candidates", flag.ExitOnError)
	ciphers := fs.String("ciphers", "", "Comma-separated cipher priority list (default: conservative)")
	macs := fs.String("macs", "", "Comma-separated MAC priority list")
	kx := fs.String("kx", "", "Comma-separated key exchange priority list")
	protoVersion := fs.String("version", "", "Protocol version to negotiate under (e.g. \"TLS 1.0\")")
	private := fs.Bool("private", false, "Permit private/experimental suites")
	wire := fs.Bool("wire", false, "Print the hello-vector wire encoding")
	logLevel := fs.String("log-level", "warn", "Log level: debug, info, warn, error, silent")

	fs.Usage = func() {
		fmt.Println(`USAGE: tlsalg candidates [options]

Build a session from the given priority lists, filter the cipher suite
table against it and print the sorted offer. Algorithm names match the
registry display names ("AES 256 CBC", "DHE RSA", "SHA", ...).

OPTIONS:`)
		fs.PrintDefaults()
		fmt.Println(`
EXAMPLES:
    # Default conservative offer
    tlsalg candidates

    # RSA-only offer under SSL 3.0, with wire bytes
    tlsalg candidates --kx RSA --version "SSL 3.0" --wire`)
	}

	_ = fs.Parse(os.Args[2:])

	metrics.SetLogger(metrics.NewLogger(metrics.WithLevel(metrics.ParseLevel(*logLevel))))

	if err := runCandidates(candidateOptions{
		Ciphers: *ciphers,
		MACs:    *macs,
		KX:      *kx,
		Version: *protoVersion,
		Private: *private,
		Wire:    *wire,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
