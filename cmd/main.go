package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"github.com/smarthome-go/juno/juno"
	"github.com/smarthome-go/juno/juno/config"
	"github.com/smarthome-go/juno/juno/fuzzer"
	"github.com/smarthome-go/juno/juno/lexer"
	"github.com/smarthome-go/juno/juno/parser/ast"
)

const programName = "juno"
const version = "latest"
const configMetadataKey = "config"

func fileValidator(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("Expected exactly one argument <file>")
	}
	return nil
}

func loadConfig(ctx *cli.Context) error {
	var cfg config.Config
	var err error

	if path := ctx.String("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if ctx.IsSet("color") {
		cfg.Color = config.ColorMode(ctx.String("color"))
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	ctx.App.Metadata[configMetadataKey] = cfg
	return nil
}

func configOf(ctx *cli.Context) config.Config {
	cfg, ok := ctx.App.Metadata[configMetadataKey].(config.Config)
	if !ok {
		return config.Default()
	}
	return cfg
}

func dumpNode(node ast.Node, format config.DumpFormat) string {
	if format == config.DumpSpew {
		return spew.Sdump(node)
	}
	return ast.Dump(node)
}

func main() {
	// nolint:exhaustruct
	app := &cli.App{
		Name:     programName,
		Usage:    "Lex and parse Juno programs",
		Version:  version,
		Compiled: time.Now(),
		Metadata: make(map[string]interface{}),
		Authors: []*cli.Author{
			{
				Name:  "The Smarthome Authors",
				Email: "",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to a YAML or TOML configuration file",
				Aliases: []string{"c"},
				EnvVars: []string{config.EnvVariable},
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "When to use colors: `auto`, `always` or `never`",
			},
		},
		Before: loadConfig,
		Commands: []*cli.Command{
			{
				Name:      "tokens",
				Usage:     "Print the tokens of a Juno file",
				ArgsUsage: "[file]",
				Args:      true,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "only",
						Usage:   "Only print tokens of the given kind(s), e.g. `Identifier`",
						Aliases: []string{"o"},
					},
				},
				Before: fileValidator,
				Action: func(c *cli.Context) error {
					filter := make(map[lexer.TokenKind]bool)
					for _, name := range c.StringSlice("only") {
						kind, err := lexer.ParseTokenKind(name)
						if err != nil {
							return err
						}
						filter[kind] = true
					}

					source, err := readSource(c.Args().Get(0))
					if err != nil {
						return err
					}

					tokens, errs := juno.Tokenize(source.Program, source.Filename)
					for _, token := range tokens {
						if len(filter) > 0 && !filter[token.Kind] {
							continue
						}
						fmt.Println(token)
					}

					out := newPrinter(configOf(c).Color)
					out.diagnostics(errs, source.Program)
					if len(errs) > 0 {
						return errors.New("Encountered lexical error(s)")
					}
					return nil
				},
			},
			{
				Name:      "parse",
				Usage:     "Parse a Juno file and print its syntax tree",
				ArgsUsage: "[file]",
				Args:      true,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "dump",
						Usage:   "Output format of the tree: `tree` or `spew`",
						Aliases: []string{"d"},
					},
					&cli.BoolFlag{
						Name:    "tokens",
						Usage:   "If set, the tokens are printed before the tree",
						Aliases: []string{"t"},
					},
				},
				Before: fileValidator,
				Action: func(c *cli.Context) error {
					cfg := configOf(c)
					if c.IsSet("dump") {
						cfg.Dump = config.DumpFormat(c.String("dump"))
						if err := cfg.Validate(); err != nil {
							return err
						}
					}

					source, err := readSource(c.Args().Get(0))
					if err != nil {
						return err
					}

					start := time.Now()
					result := juno.Parse(source.Program, source.Filename)
					log.Printf("Lex + Parse: elapsed: %v\n", time.Since(start))

					if cfg.ShowTokens || c.Bool("tokens") {
						for _, token := range result.Tokens {
							fmt.Println(token)
						}
					}

					for _, node := range result.Nodes {
						fmt.Print(dumpNode(node, cfg.Dump))
					}

					out := newPrinter(cfg.Color)
					out.diagnostics(result.Errors, source.Program)
					if result.HasErrors() {
						return errors.New("Encountered syntax error(s)")
					}
					return nil
				},
			},
			{
				Name:      "check",
				Usage:     "Parse several Juno files in parallel and report their diagnostics",
				ArgsUsage: "[files...]",
				Args:      true,
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:    "num-workers",
						Usage:   "The number of files to parse at the same time. (Default is number of CPUs)",
						Aliases: []string{"n"},
					},
				},
				Before: func(ctx *cli.Context) error {
					if ctx.Args().Len() == 0 {
						return fmt.Errorf("Expected at least one argument <file>")
					}
					return nil
				},
				Action: func(c *cli.Context) error {
					cfg := configOf(c)

					numWorkers := cfg.Workers
					if c.IsSet("num-workers") {
						numWorkers = int(c.Uint("num-workers"))
					}
					if numWorkers == 0 {
						numWorkers = runtime.NumCPU()
						log.Printf("Using default amount of %d workers.\n", numWorkers)
					}

					sources := make([]juno.Source, 0, c.Args().Len())
					for _, path := range c.Args().Slice() {
						source, err := readSource(path)
						if err != nil {
							return err
						}
						sources = append(sources, source)
					}

					start := time.Now()
					results, err := juno.ParseFiles(c.Context, sources, numWorkers)
					if err != nil {
						return err
					}
					log.Printf("Checked %d file(s): elapsed: %v\n", len(results), time.Since(start))

					out := newPrinter(cfg.Color)
					failed := 0
					for _, result := range results {
						out.diagnostics(result.Errors, result.Program)
						if result.HasErrors() {
							failed++
						}
					}

					if failed > 0 {
						return fmt.Errorf("%d of %d file(s) contain errors", failed, len(results))
					}
					return nil
				},
			},
			{
				Name:  "repl",
				Usage: "Interactively parse Juno statements",
				Action: func(c *cli.Context) error {
					return repl(configOf(c))
				},
			},
			{
				Name:    "fuzz",
				Aliases: []string{"f"},
				Usage:   "fuzzing subcommand",
				Subcommands: []*cli.Command{
					{
						Name:  "gen",
						Usage: "generate random Juno programs",
						Flags: []cli.Flag{
							&cli.Int64Flag{
								Name:    "seed",
								Usage:   "Random seed for the generator",
								Aliases: []string{"s"},
							},
							&cli.UintFlag{
								Name:    "count",
								Usage:   "Number of programs to generate",
								Aliases: []string{"n"},
								Value:   10,
							},
							&cli.UintFlag{
								Name:    "depth",
								Usage:   "Maximum nesting depth of the generated expressions",
								Aliases: []string{"d"},
								Value:   3,
							},
							&cli.BoolFlag{
								Name:    "verify",
								Usage:   "Parse every generated program and fail on mismatches",
								Aliases: []string{"v"},
							},
						},
						Action: func(c *cli.Context) error {
							gen := fuzzer.NewGenerator(c.Int64("seed"), c.Uint("depth"))

							for i := uint(0); i < c.Uint("count"); i++ {
								program := gen.Program()
								fmt.Printf("%q\n", program.Source)

								if !c.Bool("verify") {
									continue
								}

								result := juno.Parse(program.Source, "fuzz.juno")
								if result.HasErrors() || len(result.Nodes) != 1 {
									return fmt.Errorf("Program %q failed to parse: %s", program.Source, spew.Sdump(result.Errors))
								}
								if got := result.Nodes[0].String(); got != program.Canonical {
									return fmt.Errorf("Program %q parsed as `%s`, expected `%s`", program.Source, got, program.Canonical)
								}
							}

							return nil
						},
					},
				},
			},
			{
				Name:  "kinds",
				Usage: "List all token kinds",
				Action: func(c *cli.Context) error {
					for _, kind := range lexer.Kinds {
						fmt.Printf("%-12s %s\n", kind.Name(), kind)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
