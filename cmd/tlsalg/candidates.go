package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/sara-star-quant/tlsalg/internal/constants"
	qerrors "github.com/sara-star-quant/tlsalg/internal/errors"
	"github.com/sara-star-quant/tlsalg/pkg/metrics"
	"github.com/sara-star-quant/tlsalg/pkg/registry"
	"github.com/sara-star-quant/tlsalg/pkg/session"
	"github.com/sara-star-quant/tlsalg/pkg/suite"
)

type candidateOptions struct {
	Ciphers string
	MACs    string
	KX      string
	Version string
	Private bool
	Wire    bool
}

func runCandidates(opts candidateOptions) error {
	prio := session.Default()

	kxReg := registry.NewKXRegistry(registry.SRPKeyExchanges()...)

	if opts.Ciphers != "" {
		list, err := parseNames(opts.Ciphers, func(name string) (constants.Cipher, bool) {
			id := registry.Ciphers.ByName(name)
			return id, id != constants.CipherUnknown
		})
		if err != nil {
			return err
		}
		prio.Cipher = list
	}

	if opts.MACs != "" {
		list, err := parseNames(opts.MACs, func(name string) (constants.MAC, bool) {
			id := registry.MACs.ByName(name)
			return id, id != constants.MACUnknown
		})
		if err != nil {
			return err
		}
		prio.MAC = list
	}

	if opts.KX != "" {
		list, err := parseNames(opts.KX, func(name string) (constants.KX, bool) {
			id := kxReg.ByName(name)
			return id, id != constants.KXUnknown
		})
		if err != nil {
			return err
		}
		prio.KX = list
	}

	sess := session.New(prio)
	sess.EnablePrivate(opts.Private)

	if opts.Version != "" {
		v := registry.Versions.ByName(opts.Version)
		if v == constants.VersionUnknown {
			return fmt.Errorf("%w: %q", qerrors.ErrUnknownVersion, opts.Version)
		}
		sess.SetVersion(v)
	}

	ctx := context.Background()
	ctx, end := metrics.StartSpan(ctx, metrics.SpanCandidateSuites,
		metrics.WithAttributes(map[string]interface{}{"version": registry.Versions.Name(sess.Version())}))
	suites, err := suite.CandidateSuites(sess)
	end(err)
	if err != nil {
		return err
	}

	_, end = metrics.StartSpan(ctx, metrics.SpanSortSuites)
	suite.SortByPriority(sess, suites)
	end(nil)

	fmt.Printf("Version: %s\n", registry.Versions.Name(sess.Version()))
	fmt.Printf("Suites (%d):\n", len(suites))
	for _, s := range suites {
		fmt.Printf("  %s %s\n", s, suite.Name(s))
	}

	_, end = metrics.StartSpan(ctx, metrics.SpanCandidateCompression)
	methods, err := suite.CandidateCompressionMethods(sess, registry.Compressions)
	end(err)
	if err != nil {
		return err
	}
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = registry.Compressions.Name(registry.Compressions.ByNum(int(m)))
	}
	fmt.Printf("Compression: %s\n", strings.Join(names, ", "))

	if opts.Wire {
		wire, err := suite.EncodeSuites(suites)
		if err != nil {
			return err
		}
		fmt.Printf("Suite vector: %x\n", wire)

		wire, err = suite.EncodeCompressionMethods(methods)
		if err != nil {
			return err
		}
		fmt.Printf("Compression vector: %x\n", wire)
	}

	return nil
}

// parseNames splits a comma-separated list and resolves each name through
// lookup, rejecting names the registry does not know.
func parseNames[T any](s string, lookup func(string) (T, bool)) ([]T, error) {
	parts := strings.Split(s, ",")
	out := make([]T, 0, len(parts))
	for _, p := range parts {
		name := strings.TrimSpace(p)
		if name == "" {
			continue
		}
		id, ok := lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", qerrors.ErrUnknownAlgorithm, name)
		}
		out = append(out, id)
	}
	return out, nil
}
