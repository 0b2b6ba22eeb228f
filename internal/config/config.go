package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	flag "github.com/spf13/pflag"

	"github.com/vaultpass/pw/internal/crypto"
	"github.com/vaultpass/pw/internal/model"
)

// EnvPrefix marks environment variables that mirror command line flags,
// e.g. PW_LENGTH=24 or PW_SYMBOL=true.
const EnvPrefix = "PW_"

var ErrUsage = errors.New("invalid arguments")

var boolKeys = []string{"numeric", "symbol", "alpha", "lower", "upper", "diceware", "verbose", "version"}

type Config struct {
	Request model.GenerateRequest
	Verbose bool
	Version bool
}

// Load parses args (without the program name) on top of PW_* environment
// variables. Flags set on the command line win over the environment.
// On -h/--help the usage is written to usage and flag.ErrHelp is returned.
func Load(args []string, usage io.Writer) (Config, error) {
	f := newFlagSet(usage)
	if err := f.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if f.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected argument %q", ErrUsage, f.Arg(0))
	}

	ko := koanf.New(".")
	if err := ko.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("loading environment: %w", err)
	}
	// posflag fills in the empty default, so record whether a length was given
	// before it runs.
	lengthSet := f.Changed("length") || ko.Exists("length")
	if err := ko.Load(posflag.Provider(f, ".", ko), nil); err != nil {
		return Config{}, fmt.Errorf("loading flags: %w", err)
	}

	flags := make(map[string]bool, len(boolKeys))
	for _, key := range boolKeys {
		b, err := parseBool(ko, key)
		if err != nil {
			return Config{}, err
		}
		flags[key] = b
	}

	cfg := Config{
		Request: model.GenerateRequest{
			ExcludeNumeric: flags["numeric"],
			ExcludeLower:   flags["alpha"] || flags["lower"],
			ExcludeUpper:   flags["alpha"] || flags["upper"],
			ExcludeSymbol:  flags["symbol"],
			Diceware:       flags["diceware"],
		},
		Verbose: flags["verbose"],
		Version: flags["version"],
	}

	cfg.Request.Length = crypto.DefaultLength
	if cfg.Request.Diceware {
		cfg.Request.Length = crypto.DefaultDicewareLength
	}
	if lengthSet {
		length, err := parseLength(ko.String("length"))
		if err != nil {
			return Config{}, err
		}
		cfg.Request.Length = length
	}

	return cfg, nil
}

func newFlagSet(usage io.Writer) *flag.FlagSet {
	f := flag.NewFlagSet("pw", flag.ContinueOnError)
	f.SetOutput(usage)
	f.Usage = func() {
		fmt.Fprintln(usage, "Generates a random password with the given limitations, and copies it to the clipboard.")
		fmt.Fprintln(usage)
		fmt.Fprintln(usage, "Usage: pw [flags]")
		fmt.Fprint(usage, f.FlagUsages())
	}

	f.Bool("numeric", false, "Prohibit numeric characters.")
	f.Bool("symbol", false, "Prohibit symbol characters.")
	f.Bool("alpha", false, "Prohibit all alphabetic characters.")
	f.Bool("lower", false, "Prohibit lowercase alphabetic characters.")
	f.BoolP("upper", "u", false, "Prohibit uppercase alphabetic characters.")
	f.Bool("diceware", false, "Diceware passphrase (exclusive to other options).")
	f.String("length", "", "The desired length of the password (default 16, or 4 with --diceware).")
	f.BoolP("verbose", "v", false, "Log debug output to stderr.")
	f.Bool("version", false, "Show build version.")
	return f
}

// parseBool reads key as a boolean. Flags are typed by pflag, so a bad value
// can only come from the environment.
func parseBool(ko *koanf.Koanf, key string) (bool, error) {
	if !ko.Exists(key) {
		return false, nil
	}
	v := ko.String(key)
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s%s=%q is not a boolean", ErrUsage, EnvPrefix, strings.ToUpper(key), v)
	}
	return b, nil
}

func parseLength(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > crypto.MaxLength {
		return 0, fmt.Errorf("%w: got %q", crypto.ErrInvalidLength, s)
	}
	return n, nil
}
