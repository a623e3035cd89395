package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go-simpler.org/env"

	"djson.dev/chk"
	"djson.dev/cursor"
	"djson.dev/log"
	"djson.dev/lol"
	"djson.dev/values"
)

type C struct {
	LogLevel string `env:"LOG_LEVEL" default:"info" usage:"log level: fatal error warn info debug trace"`
}

func helpRequested() bool {
	if len(os.Args) > 1 {
		switch strings.ToLower(os.Args[1]) {
		case "help", "-h", "--h", "-help", "--help", "?":
			return true
		}
	}
	return false
}

func printHelp(w io.Writer) {
	fmt.Fprintf(w, `%s [file]

reads a JSON document from the file given as the first argument, or from
stdin when there is none, and prints its re-encoded form to stdout.

environment:

	LOG_LEVEL	log level: fatal error warn info debug trace (default info)

`, os.Args[0])
}

func main() {
	if helpRequested() {
		printHelp(os.Stderr)
		os.Exit(0)
	}
	cfg := &C{}
	if err := env.Load(cfg, nil); chk.E(err) {
		os.Exit(1)
	}
	lol.SetLogLevel(cfg.LogLevel)
	var in []byte
	var err error
	if len(os.Args) > 1 {
		if in, err = os.ReadFile(os.Args[1]); err != nil {
			log.F.F("%s", errors.Wrapf(err, "reading %s", os.Args[1]))
			os.Exit(1)
		}
	} else {
		if in, err = io.ReadAll(os.Stdin); err != nil {
			log.F.F("%s", errors.Wrap(err, "reading stdin"))
			os.Exit(1)
		}
	}
	c := cursor.New(in)
	var v values.I
	if v, err = values.Read(c); chk.E(err) {
		os.Exit(1)
	}
	if len(c.Rem()) > 0 {
		log.D.F("%d trailing bytes after the value", len(c.Rem()))
	}
	fmt.Printf("%s\n", v.Marshal(nil))
}
