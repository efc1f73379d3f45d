package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jcgregorio/logger"
	"github.com/pkg/errors"
	cli "github.com/urfave/cli/v2"

	"lispy-lang/impl/internal/evaluator"
	"lispy-lang/impl/internal/lexer"
	"lispy-lang/impl/internal/parser"
	"lispy-lang/impl/internal/repl"
	"lispy-lang/impl/internal/value"
)

type tokenOut struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func newLogger(c *cli.Context) *logger.Logger {
	return logger.NewFromOptions(&logger.Options{
		SyncWriter:   os.Stderr,
		IncludeDebug: c.Bool("debug"),
	})
}

func printTokens(w io.Writer, log *logger.Logger, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	toks, rest := lexer.Tokenize(data)
	if len(rest) > 0 {
		log.Debugf("stopped tokenizing %s at %q", path, rest)
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, t := range toks {
		if err := enc.Encode(tokenOut{Type: t.Kind().String(), Value: t.String()}); err != nil {
			return err
		}
	}
	return nil
}

func printAST(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	tree := parser.Build(lexer.Lex(string(data)))
	if tree == nil {
		return errors.Wrapf(value.ErrEmptyInput, "%s", path)
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(tree)
}

func runREPL(c *cli.Context, in io.Reader) error {
	log := newLogger(c)
	ev := evaluator.New(log)
	prompt := c.String("prompt")

	if f, ok := in.(*os.File); ok && repl.IsTerminal(f) {
		lines, out, restore, err := repl.NewTerminal(f, os.Stdout, prompt)
		if err != nil {
			return err
		}
		defer restore()
		return repl.New(lines, out, ev, log).Run()
	}
	return repl.New(repl.NewScanner(in, c.App.Writer, prompt), c.App.Writer, ev, log).Run()
}

func newApp(in io.Reader, out io.Writer) *cli.App {
	replAction := func(c *cli.Context) error { return runREPL(c, in) }
	return &cli.App{
		Name:   "lispy",
		Usage:  "evaluate parenthesized integer arithmetic",
		Writer: out,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log debug output to stderr",
				EnvVars: []string{"LISPY_DEBUG"},
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "never colour error messages",
			},
			&cli.StringFlag{
				Name:    "prompt",
				Usage:   "REPL prompt",
				Value:   repl.DefaultPrompt,
				EnvVars: []string{"LISPY_PROMPT"},
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("no-color") {
				color.NoColor = true
			}
			return nil
		},
		Action: replAction,
		Commands: []*cli.Command{
			{
				Name:   "repl",
				Usage:  "read, evaluate and print lines until exit",
				Action: replAction,
			},
			{
				Name:      "eval",
				Usage:     "evaluate an expression and print the result",
				ArgsUsage: "EXPR...",
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return errors.New("eval needs an expression")
					}
					v, err := evaluator.New(newLogger(c)).EvalValue(strings.Join(c.Args().Slice(), " "))
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(c.App.Writer, v)
					return err
				},
			},
			{
				Name:      "tokens",
				Usage:     "print the token stream of a file as JSON lines",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("tokens needs exactly one file")
					}
					return printTokens(c.App.Writer, newLogger(c), c.Args().First())
				},
			},
			{
				Name:      "ast",
				Usage:     "print the tree of a file as JSON",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("ast needs exactly one file")
					}
					return printAST(c.App.Writer, c.Args().First())
				},
			},
		},
	}
}

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "[Error]", err)
		os.Exit(1)
	}
}
