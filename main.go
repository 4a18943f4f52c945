package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/heathj/htmlobj/objectify"
	"github.com/heathj/htmlobj/parser"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tdewolff/minify/v2"
	mhtml "github.com/tdewolff/minify/v2/html"
	"gopkg.in/yaml.v3"
)

type config struct {
	decode   bool
	format   string
	tree     bool
	minify   bool
	selector string
	verbose  bool
}

func main() {
	var cfg config
	flag.BoolVar(&cfg.decode, "d", false, "decode a record from stdin into HTML")
	flag.StringVar(&cfg.format, "format", "json", "record format: json or yaml")
	flag.BoolVar(&cfg.tree, "tree", false, "print records as a tree instead of json/yaml")
	flag.BoolVar(&cfg.minify, "minify", false, "minify decoded HTML")
	flag.StringVar(&cfg.selector, "select", "", "parse stdin as a document and encode the elements matching this CSS selector")
	flag.BoolVar(&cfg.verbose, "v", false, "log debug output to stderr")
	flag.Parse()

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if cfg.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		logrus.WithError(err).Fatal("htmlobj failed")
	}
}

func run(cfg config, in io.Reader, out io.Writer) error {
	if cfg.format != "json" && cfg.format != "yaml" {
		return errors.Errorf("unknown format %q", cfg.format)
	}
	input, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}

	if cfg.decode {
		return decode(cfg, input, out)
	}

	var recs []*objectify.Record
	if cfg.selector != "" {
		doc, err := parser.ParseHTMLDocument(bytes.NewReader(input))
		if err != nil {
			return err
		}
		nodes, err := parser.QuerySelectorAll(doc, cfg.selector)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			rec, err := objectify.FromNode(n)
			if err != nil {
				return err
			}
			recs = append(recs, rec)
		}
		logrus.WithField("selector", cfg.selector).Debugf("%d matches", len(recs))
	} else {
		rec, err := objectify.FromHTML(string(input))
		if err != nil {
			return err
		}
		recs = append(recs, rec)
	}

	if cfg.tree {
		for _, rec := range recs {
			fmt.Fprint(out, objectify.Dump(rec))
		}
		return nil
	}
	var v interface{} = recs
	if cfg.selector == "" {
		v = recs[0]
	}
	return writeRecords(cfg.format, v, out)
}

func decode(cfg config, input []byte, out io.Writer) error {
	var rec objectify.Record
	var err error
	if cfg.format == "yaml" {
		err = yaml.Unmarshal(input, &rec)
	} else {
		err = json.Unmarshal(input, &rec)
	}
	if err != nil {
		return errors.Wrap(err, "reading record")
	}

	markup, err := objectify.ToHTML(&rec)
	if err != nil {
		return err
	}
	if cfg.minify {
		m := minify.New()
		m.AddFunc("text/html", mhtml.Minify)
		if markup, err = m.String("text/html", markup); err != nil {
			return errors.Wrap(err, "minifying")
		}
	}
	_, err = fmt.Fprintln(out, markup)
	return err
}

func writeRecords(format string, v interface{}, out io.Writer) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
