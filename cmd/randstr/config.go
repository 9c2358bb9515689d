package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/randstr"
	"github.com/katalvlaran/randstr/alphabet"
)

const envPrefix = "RANDSTR"

// Defaults for keys that have one.
const (
	defaultLength = 16
	defaultCount  = 1
)

// Options is the fully resolved command-line configuration.
//
// Base carries the per-class keys of randstr.Config (upper, must_digit, ...)
// found in the config file; its Custom and Length are left to the fields below.
type Options struct {
	Base    randstr.Config
	Classes []string `validate:"dive,required"`
	Must    []string `validate:"dive,required"`
	All     bool
	Custom  string
	Length  int `validate:"gte=0"`
	Count   int `validate:"min=1,max=100000"`
	Seed    int64
	Verbose bool
}

// settings lists every key Load understands. Decoding into it with
// UnmarshalExact rejects config files carrying anything else.
type settings struct {
	randstr.Config `mapstructure:",squash"`

	Classes interface{} `mapstructure:"classes"`
	Must    interface{} `mapstructure:"must"`
	All     bool        `mapstructure:"all"`
	Count   int         `mapstructure:"count"`
	Seed    int64       `mapstructure:"seed"`
	Verbose bool        `mapstructure:"verbose"`
}

// registerFlags declares every flag on fs.
func registerFlags(fs *pflag.FlagSet) {
	fs.StringSliceP("class", "c", nil, "character classes to allow: upper,lower,letter,digit,symbol,whitespace,custom")
	fs.StringSliceP("must", "m", nil, "classes that must appear at least once (implies --class)")
	fs.BoolP("all", "a", false, "allow letters, digits and symbols")
	fs.String("custom", "", "custom character set (enables the custom class)")
	fs.IntP("length", "l", defaultLength, "length of every generated string")
	fs.IntP("count", "n", defaultCount, "number of strings to generate")
	fs.Int64("seed", 0, "seed for a reproducible stream; 0 uses crypto/rand")
	fs.String("config", "", "YAML config file")
	fs.BoolP("verbose", "v", false, "log debug details to stderr")
}

// Load parses args and layers defaults < config file < RANDSTR_* env < flags.
// pflag.ErrHelp is returned untouched when -h/--help is given.
func Load(fs *pflag.FlagSet, args []string) (Options, error) {
	registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	v := viper.New()
	v.SetDefault("length", defaultLength)
	v.SetDefault("count", defaultCount)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	// Flag names differ from config keys for the list flags.
	for key, flag := range map[string]string{
		"classes": "class",
		"must":    "must",
		"all":     "all",
		"custom":  "custom",
		"length":  "length",
		"count":   "count",
		"seed":    "seed",
		"verbose": "verbose",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return Options{}, fmt.Errorf("Load: bind %s: %w", flag, err)
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Options{}, fmt.Errorf("Load: read config %s: %w", path, err)
		}
	}

	var known settings
	if err := v.UnmarshalExact(&known); err != nil {
		return Options{}, fmt.Errorf("Load: %w", err)
	}
	base := known.Config
	base.Custom = nil

	classes, err := toList(v.Get("classes"))
	if err != nil {
		return Options{}, fmt.Errorf("Load: classes: %w", err)
	}
	must, err := toList(v.Get("must"))
	if err != nil {
		return Options{}, fmt.Errorf("Load: must: %w", err)
	}

	opts := Options{
		Base:    base,
		Classes: classes,
		Must:    must,
		All:     v.GetBool("all"),
		Custom:  v.GetString("custom"),
		Length:  v.GetInt("length"),
		Count:   v.GetInt("count"),
		Seed:    v.GetInt64("seed"),
		Verbose: v.GetBool("verbose"),
	}
	if err := validate(opts); err != nil {
		return Options{}, err
	}
	if _, err := opts.Spec(); err != nil {
		return Options{}, fmt.Errorf("Load: %w", err)
	}
	return opts, nil
}

// toList accepts a list from a flag or config file, or a comma-separated
// string from the environment.
func toList(raw interface{}) ([]string, error) {
	switch s := raw.(type) {
	case nil:
		return nil, nil
	case string:
		raw = strings.Split(s, ",")
	}
	items, err := cast.ToStringSliceE(raw)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out, nil
}

var validate = func() func(Options) error {
	vd := validator.New()
	return func(o Options) error {
		if err := vd.Struct(o); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				f := verrs[0]
				return fmt.Errorf("invalid %s: %v fails %q", strings.ToLower(f.Field()), f.Value(), f.ActualTag())
			}
			return err
		}
		return nil
	}
}()

// Spec turns the resolved options into a randstr.Spec: Base first, then the
// class lists and switches on top.
func (o Options) Spec() (*randstr.Spec, error) {
	var ropts []randstr.Option
	if o.Seed != 0 {
		ropts = append(ropts, randstr.WithSeed(o.Seed))
	}
	s := randstr.FromConfig(o.Base, ropts...).Length(o.Length)

	if o.All {
		s.All()
	}
	if o.Custom != "" {
		s.Custom(o.Custom)
	}
	for _, name := range o.Classes {
		k, err := alphabet.ParseKind(name)
		if err != nil {
			return nil, err
		}
		if k == alphabet.Custom {
			s.Custom(o.Custom)
			continue
		}
		s.Enable(k)
	}
	for _, name := range o.Must {
		k, err := alphabet.ParseKind(name)
		if err != nil {
			return nil, err
		}
		if k == alphabet.Custom {
			s.MustCustom(o.Custom)
			continue
		}
		s.Must(k)
	}
	return s, nil
}
