package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/heathj/tagparser/parser"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tagparser", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tokens := fs.Bool("tokens", false, "print one token per line instead of XML")
	caseSensitive := fs.Bool("case-sensitive", false, "keep tag and attribute names as written")
	maxErrors := fs.Int("max-errors", 1000, "stop after this many recoverable errors")
	charset := fs.String("charset", "", "decode the input from this charset, e.g. windows-1252")
	annotate := fs.Bool("annotate", false, "mark inserted start-tags with a comment")
	html5 := fs.Bool("html5-entities", false, "resolve HTML5 entity names")
	verbose := fs.Bool("v", false, "log the completion report")
	debug := fs.Bool("vv", false, "log every pushback and state change")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: tagparser [options] [file]\n\n")
		fmt.Fprintln(stderr, "Converts tag soup to well-formed XML. Reads stdin when no file is given.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "error: at most one input file is allowed")
		fs.Usage()
		return 2
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(logrus.WarnLevel)
	switch {
	case *debug:
		log.SetLevel(logrus.TraceLevel)
	case *verbose:
		log.SetLevel(logrus.InfoLevel)
	}

	in, source := stdin, "<stdin>"
	if fs.NArg() == 1 {
		source = fs.Arg(0)
		f, err := os.Open(source)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	if *charset != "" {
		enc, err := htmlindex.Get(*charset)
		if err != nil {
			fmt.Fprintf(stderr, "error: unknown charset %q\n", *charset)
			return 2
		}
		in = transform.NewReader(in, enc.NewDecoder())
	}

	p := parser.NewParser(in,
		parser.WithSource(source),
		parser.WithLogger(log),
		parser.WithCaseSensitive(*caseSensitive),
		parser.WithMaxErrors(*maxErrors),
		parser.WithAnnotateRepairs(*annotate),
		parser.WithHTML5Entities(*html5),
	)

	var err error
	if *tokens {
		err = printTokens(p, stdout)
	} else {
		err = printXML(p, stdout)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func printTokens(p *parser.Parser, w io.Writer) error {
	tokens, err := p.Tokens()
	if err != nil {
		return err
	}
	for _, t := range tokens {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return errors.Wrap(err, "writing tokens")
		}
	}
	return nil
}

func printXML(p *parser.Parser, w io.Writer) error {
	if err := p.Start(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return errors.Wrap(err, "writing xml")
}
