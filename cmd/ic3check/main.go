// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-air/ic3check/ic3"
	"github.com/go-air/ic3check/logic/aiger"
	"github.com/go-air/ic3check/model"
	"github.com/go-air/ic3check/z"
)

var (
	verbose     = flag.Bool("v", false, "verbose: print frames, obligations, generalization traces")
	stats       = flag.Bool("s", false, "print statistics after the run")
	random      = flag.Bool("r", false, "randomize sat decisions and pool ordering (profiling only)")
	basic       = flag.Bool("b", false, "basic generalization: disable ctg-based mic")
	timeout     = flag.Duration("timeout", 0, "overall wall-clock budget; 0 means no timeout")
	pprofAddr   = flag.String("pprof", "", "address to serve http profile (eg :6060)")
	incremental = flag.String("incremental", "", "path to a more constrained model to check first, reusing its invariant")
	mode        = flag.Int("mode", 1, "incremental reuse mode when -incremental is set: 1 or 2")
)

func path2Reader(p string) (io.Reader, error) {
	if p == "-" {
		return os.Stdin, nil
	}
	st, stErr := os.Stat(p)
	if stErr != nil {
		return nil, stErr
	}
	if st.Mode()&os.ModeSymlink != 0 {
		q, e := os.Readlink(p)
		if e != nil {
			return nil, e
		}
		p = q
	}
	f, e := os.Open(p)
	if e != nil {
		return nil, e
	}
	if strings.HasSuffix(p, ".gz") {
		r, e := gzip.NewReader(f)
		if e != nil {
			return nil, e
		}
		return r, nil
	}
	if strings.HasSuffix(p, ".bz2") {
		return bzip2.NewReader(f), nil
	}
	return f, nil
}

// readAiger auto-detects AIGER ascii ("aag") vs binary ("aig") framing
// by peeking the first three bytes, then dispatches to the matching
// reader.
func readAiger(r io.Reader) (*aiger.T, error) {
	br := bufio.NewReader(r)
	hdr, err := br.Peek(3)
	if err != nil {
		return nil, err
	}
	switch string(hdr) {
	case "aag":
		return aiger.ReadAscii(br)
	case "aig":
		return aiger.ReadBinary(br)
	default:
		return nil, fmt.Errorf("ic3check: unrecognized aiger header %q", hdr)
	}
}

func loadModel(path string, propIdx int) (*model.Model, error) {
	r, err := path2Reader(path)
	if err != nil {
		return nil, err
	}
	a, err := readAiger(r)
	if err != nil {
		return nil, err
	}
	return model.New(a, propIdx)
}

// cfgFromFlags translates the parsed flags into an ic3.Config, exactly
// mirroring cmd/gini's package-level flag.XxxVar-into-call-site shape.
func cfgFromFlags() ic3.Config {
	cfg := ic3.DefaultConfig()
	cfg.Basic = *basic
	cfg.Random = *random
	return cfg
}

func printInvariant(inv []ic3.Cube) {
	for _, clause := range inv {
		var b strings.Builder
		for _, lit := range clause {
			fmt.Fprintf(&b, "%s ", lit)
		}
		b.WriteString("0")
		fmt.Println(b.String())
	}
}

func printTrace(trace [][]z.Lit) {
	for _, step := range trace {
		var b strings.Builder
		for _, lit := range step {
			fmt.Fprintf(&b, "%s ", lit)
		}
		b.WriteString("0")
		fmt.Println(b.String())
	}
}

func run(path string, propIdx int) int {
	mdl, err := loadModel(path, propIdx)
	if err != nil {
		log.Printf("%s", err)
		return 0
	}
	cfg := cfgFromFlags()
	if cfg.Random {
		rand.Seed(1)
	}
	var ck *ic3.Checker
	if *incremental != "" {
		prevMdl, err := loadModel(*incremental, propIdx)
		if err != nil {
			log.Printf("%s", err)
			return 0
		}
		prev := ic3.NewChecker(prevMdl, cfg)
		prevRes := prev.Check()
		if *verbose {
			log.Printf("incremental base run: %s", prevRes.Verdict)
		}
		ck = ic3.NewIncremental(mdl, prev, *mode, cfg)
	} else {
		ck = ic3.NewChecker(mdl, cfg)
	}
	start := time.Now()
	res := ck.Check()
	elapsed := time.Since(start)

	switch res.Verdict {
	case ic3.Safe:
		fmt.Printf("1 %s\n", elapsed)
		printInvariant(res.Invariant)
	case ic3.Unsafe:
		fmt.Printf("0 %s\n", elapsed)
		printTrace(res.Trace)
	}
	if *stats {
		st := ck.Stats()
		log.Println(&st)
	}
	return 1
}

func main() {
	flag.Usage = func() {
		p := os.Args[0]
		_, p = filepath.Split(p)
		fmt.Fprintf(os.Stderr, usage, p, p, p, p)
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr)
	}
	log.SetPrefix("c [ic3check] ")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(0)
	}
	path := flag.Arg(0)
	propIdx := 0
	if flag.NArg() > 1 {
		n, err := strconv.Atoi(flag.Arg(1))
		if err != nil {
			log.Printf("invalid property index %q: %s", flag.Arg(1), err)
			os.Exit(0)
		}
		propIdx = n
	}

	exitCode := 0
	done := make(chan int, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if sbe, ok := r.(*ic3.SatBackendError); ok {
					log.Printf("%s", sbe)
					done <- 1
					return
				}
				panic(r)
			}
		}()
		done <- run(path, propIdx)
	}()

	if *timeout > 0 {
		select {
		case exitCode = <-done:
		case <-time.After(*timeout):
			log.Printf("timeout after %s", *timeout)
			os.Exit(2)
		}
	} else {
		exitCode = <-done
	}
	os.Exit(exitCode)
}
