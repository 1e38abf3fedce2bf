package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saylorsolutions/keyshield/cmd/internal"
	"github.com/saylorsolutions/keyshield/pkg/config"
	"github.com/saylorsolutions/keyshield/pkg/generator"
	"github.com/saylorsolutions/keyshield/pkg/shield"
	flag "github.com/spf13/pflag"
)

var version = "dev"

type options struct {
	help       bool
	version    bool
	configFile string
	encoding   string
	logLevel   string
	workers    int

	complex    bool
	diagram    string
	cells      []string
	salt       string
	mnemonic   string
	passphrase string
	target     string
	min        uint32
	max        uint32
}

func main() {
	var opts options
	flags := newFlags(&opts)
	if len(os.Args) == 1 {
		flags.Usage()
		return
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		internal.Fatal("Error parsing flags: %v", err)
	}
	if opts.help {
		flags.Usage()
		return
	}
	if opts.version {
		fmt.Println(version)
		return
	}
	if flags.NArg() == 0 {
		internal.Fatal("Missing required COMMAND argument")
	}

	cmd, args := flags.Arg(0), flags.Args()[1:]
	if cmd == "targets" {
		for _, t := range generator.Targets() {
			fmt.Println(t)
		}
		return
	}
	s := newShield(flags, opts)
	switch cmd {
	case "compress", "decompress":
		if len(args) != 1 {
			internal.Fatal("The %s command requires exactly one TEXT argument", cmd)
		}
		text, err := readText(args[0])
		internal.Check(err, "Failed to read TEXT")
		out, err := s.Compress(text, cmd == "compress")
		internal.Check(err, "Failed to %s", cmd)
		fmt.Println(out)
	case "derive":
		if len(args) != 0 {
			internal.Fatal("Unexpected arguments for derive: %s", strings.Join(args, " "))
		}
		results, err := derive(s, opts)
		internal.Check(err, "Failed to derive credentials")
		for _, r := range results {
			fmt.Println(r)
		}
	default:
		internal.Fatal("Unknown command '%s'", cmd)
	}
}

func newFlags(opts *options) *flag.FlagSet {
	flags := flag.NewFlagSet("keyshield", flag.ContinueOnError)
	flags.BoolVarP(&opts.help, "help", "h", false, "Prints this usage information.")
	flags.BoolVar(&opts.version, "version", false, "Prints the version of keyshield.")
	flags.StringVarP(&opts.configFile, "config", "f", "", "YAML config file. Flags given on the command line override its values.")
	flags.StringVarP(&opts.encoding, "encoding", "e", "hex", "Text encoding of compressed and sealed output, either hex or base64.")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level, one of panic, fatal, error, warn, info, debug, or trace.")
	flags.IntVar(&opts.workers, "workers", 0, "Number of credentials derived concurrently. 0 uses the number of CPUs.")
	flags.BoolVarP(&opts.complex, "complex", "c", false, "Treat diagram cells as whole strings instead of single characters.")
	flags.StringVarP(&opts.diagram, "diagram", "d", "", "File containing the diagram, or - for stdin.")
	flags.StringArrayVarP(&opts.cells, "cell", "C", nil, "A diagram cell value in row-major order. May be repeated, and an empty value leaves the cell empty.")
	flags.StringVarP(&opts.salt, "salt", "s", "", "Salt mixed into the diagram when deriving the master key.")
	flags.StringVarP(&opts.mnemonic, "mnemonic", "m", "", "Derive the master key from a BIP39 mnemonic instead of a diagram.")
	flags.StringVarP(&opts.passphrase, "passphrase", "p", "", "Optional BIP39 passphrase used with --mnemonic.")
	flags.StringVarP(&opts.target, "target", "t", "", fmt.Sprintf("Kind of credential to derive, one of: %s.", targetList()))
	flags.Uint32Var(&opts.min, "min", 0, "First index to derive.")
	flags.Uint32Var(&opts.max, "max", 0, "Last index to derive, inclusive.")
	flags.Usage = func() {
		fmt.Printf(`
keyshield protects text in memory and derives deterministic credentials from a memorable diagram.
A diagram is a 7x7 grid of cells, filled in row-major order. The same diagram and salt always produce the same master key, and every credential is derived from that master key by index.

USAGE:  keyshield COMMAND [FLAGS] [ARGS]

COMMANDS:
    compress TEXT      Compresses TEXT and prints it encoded as text. Use - to read TEXT from stdin.
    decompress TEXT    Reverses compress.
    derive             Derives credentials for every index from --min to --max.
    targets            Lists the kinds of credential that can be derived.

DIAGRAM FILES:
    Each line is a row of up to 7 comma separated cells, and at most 7 rows are read.
    Blank entries leave a cell empty, and lines starting with # are ignored.

FLAGS:
%s
SECURITY:
    Master keys are only held sealed with a key generated for this process, and are never written out.
Anyone who learns the diagram and salt can derive every credential, so choose a diagram that's hard to guess.
`, flags.FlagUsages())
	}
	return flags
}

func targetList() string {
	var names []string
	for _, t := range generator.Targets() {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}

func newShield(flags *flag.FlagSet, opts options) *shield.Shield {
	cfg := config.Default()
	if len(opts.configFile) > 0 {
		var err error
		cfg, err = config.Load(opts.configFile)
		internal.Check(err, "Failed to load config")
	}
	if flags.Changed("encoding") {
		cfg.Encoding = opts.encoding
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("workers") {
		cfg.Generator.Workers = opts.workers
	}
	internal.Check(cfg.Validate(), "Invalid configuration")
	log, err := internal.NewLogger(cfg.LogLevel)
	internal.Check(err, "Failed to create logger")
	s, err := shield.New(*cfg, shield.WithLogger(log))
	internal.Check(err, "Failed to initialize")
	return s
}

func readText(arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func derive(s *shield.Shield, opts options) ([]string, error) {
	if _, err := generator.ParseTarget(opts.target); err != nil {
		return nil, fmt.Errorf("%w, possible values: %s", err, targetList())
	}
	if opts.min > opts.max {
		return nil, fmt.Errorf("--min %d is greater than --max %d", opts.min, opts.max)
	}
	master, err := initMaster(s, opts)
	if err != nil {
		return nil, err
	}
	return s.Generate(master, opts.target, opts.min, opts.max)
}

func initMaster(s *shield.Shield, opts options) (string, error) {
	sources := 0
	for _, given := range []bool{len(opts.mnemonic) > 0, len(opts.diagram) > 0, len(opts.cells) > 0} {
		if given {
			sources++
		}
	}
	switch {
	case sources == 0:
		return "", errors.New("one of --mnemonic, --diagram, or --cell is required")
	case sources > 1:
		return "", errors.New("only one of --mnemonic, --diagram, or --cell may be used")
	}

	if len(opts.mnemonic) > 0 {
		return s.MnemonicInit(opts.mnemonic, opts.passphrase)
	}
	cells := opts.cells
	if len(opts.diagram) > 0 {
		var err error
		cells, err = readDiagram(opts.diagram)
		if err != nil {
			return "", fmt.Errorf("failed to read diagram: %w", err)
		}
	}
	if opts.complex {
		return s.ComplexInit(cells, opts.salt)
	}
	return s.SimpleInit(cells, opts.salt)
}
