package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/agenthands/mcjs/pkg/compiler/js"
	"github.com/agenthands/mcjs/pkg/compiler/lexer"
	"github.com/agenthands/mcjs/pkg/config"
	"github.com/agenthands/mcjs/pkg/runner"
	"github.com/agenthands/mcjs/pkg/workspace"
)

const usage = `Usage: mcjs [run|build|tokens] [flags] [source.mc]

With no arguments, mcjs compiles index.mc to index.js and runs it with node.
Settings are read from mcjs.yaml in the -root directory unless -config is given.`

// runnerFactory builds the runner for a compiled program.
type runnerFactory func(rt config.Runtime, dir string) runner.Runner

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "mcjs: ", 0)

	cmd := "run"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	var err error
	switch cmd {
	case "run":
		newRunner := func(rt config.Runtime, dir string) runner.Runner {
			r := runner.NewExec(rt.Command, rt.Args...)
			r.Dir = dir
			r.Stdout = stdout
			r.Stderr = stderr
			r.Logger = logger
			return r
		}
		err = runScript(ctx, args, stderr, logger, newRunner)
	case "build":
		err = buildScript(args, stderr, logger)
	case "tokens":
		err = dumpTokens(args, stdout, stderr)
	case "help", "-h", "--help":
		fmt.Fprintln(stdout, usage)
		return 0
	default:
		fmt.Fprintln(stderr, "Unknown command:", cmd)
		fmt.Fprintln(stderr, usage)
		return 1
	}

	if err != nil {
		logger.Print(err)
		return 1
	}
	return 0
}

type options struct {
	configPath string
	root       string
	output     string
}

func parseFlags(name string, args []string, stderr io.Writer, withOutput bool) (*options, *config.Config, error) {
	opts := &options{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "YAML project file (default <root>/"+config.DefaultFile+")")
	fs.StringVar(&opts.root, "root", ".", "Workspace directory that source and output paths are confined to")
	if withOutput {
		fs.StringVar(&opts.output, "o", "", "Output file (overrides the project file)")
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	if opts.configPath == "" {
		opts.configPath = filepath.Join(opts.root, config.DefaultFile)
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 1 {
		return nil, nil, fmt.Errorf("%s: expected at most one source file, got %d", name, fs.NArg())
	}
	if fs.NArg() == 1 {
		cfg.Source = fs.Arg(0)
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return opts, cfg, nil
}

// compile reads the configured source, translates it and writes the output,
// returning the absolute output path.
func compile(opts *options, cfg *config.Config, logger *log.Logger) (string, error) {
	ws, err := workspace.New(opts.root, cfg.MaxFileSize)
	if err != nil {
		return "", err
	}

	srcPath, err := ws.Resolve(cfg.Source)
	if err != nil {
		return "", err
	}
	outPath, err := ws.Resolve(cfg.Output)
	if err != nil {
		return "", err
	}
	if srcPath == outPath {
		return "", fmt.Errorf("output %s would overwrite source %s", cfg.Output, cfg.Source)
	}

	src, err := ws.ReadSource(cfg.Source)
	if err != nil {
		return "", err
	}

	out, err := js.NewCompiler().Compile(src)
	if err != nil {
		return "", fmt.Errorf("compile %s: %w", cfg.Source, err)
	}

	path, err := ws.WriteOutput(cfg.Output, out)
	if err != nil {
		return "", err
	}
	logger.Printf("compiled %s -> %s", cfg.Source, cfg.Output)
	return path, nil
}

func runScript(ctx context.Context, args []string, stderr io.Writer, logger *log.Logger, newRunner runnerFactory) error {
	opts, cfg, err := parseFlags("run", args, stderr, false)
	if err != nil {
		return err
	}

	path, err := compile(opts, cfg, logger)
	if err != nil {
		return err
	}

	return newRunner(cfg.Runtime, opts.root).Run(ctx, path)
}

func buildScript(args []string, stderr io.Writer, logger *log.Logger) error {
	opts, cfg, err := parseFlags("build", args, stderr, true)
	if err != nil {
		return err
	}
	_, err = compile(opts, cfg, logger)
	return err
}

func dumpTokens(args []string, stdout, stderr io.Writer) error {
	opts, cfg, err := parseFlags("tokens", args, stderr, false)
	if err != nil {
		return err
	}

	ws, err := workspace.New(opts.root, cfg.MaxFileSize)
	if err != nil {
		return err
	}
	src, err := ws.ReadSource(cfg.Source)
	if err != nil {
		return err
	}

	tokens, err := lexer.Lex([]byte(src))
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		fmt.Fprintf(stdout, "%d\t%v\n", tok.Line, tok)
	}
	return nil
}
