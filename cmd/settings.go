package main

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

var validate = validator.New()

var errNotInteger = errors.New("not an integer")

// settings are the merged CLI arguments, config file and environment for a single run.
// Flags set on the command line win over the config file, which wins over flag defaults.
type settings struct {
	URL    string `validate:"required"`
	Method string `validate:"required"`
	Body   string `validate:"required"`

	DataType string `validate:"required"`
	Start    int64
	End      int64

	Concurrency     int           `validate:"gte=0"`
	Timeout         time.Duration `validate:"gte=0"`
	Headers         []string      `validate:"dive,contains=:"`
	SkipCertVerify  bool
	DropFixedParams bool

	Debug    bool
	NoBanner bool
}

// loadSettings reads the positional arguments and merges the optional flags with the config file named by --config
// and FUZZYWUZZY_* environment variables.
func loadSettings(c *cli.Context) (*settings, error) {
	if c.Args().Len() != 3 {
		return nil, fmt.Errorf("expected 3 arguments (url, http_method, post_body), got %d", c.Args().Len())
	}

	v := viper.New()
	v.SetEnvPrefix("fuzzywuzzy")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := c.String("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	s := &settings{
		URL:             c.Args().Get(0),
		Method:          c.Args().Get(1),
		Body:            c.Args().Get(2),
		DataType:        c.String("fuzz-data-type"),
		Start:           c.Int64("fuzz-int-start"),
		End:             c.Int64("fuzz-int-end"),
		Concurrency:     c.Int("concurrency"),
		Timeout:         c.Duration("timeout"),
		Headers:         c.StringSlice("header"),
		SkipCertVerify:  c.Bool("skip-cert-verify"),
		DropFixedParams: c.Bool("drop-fixed-params"),
		Debug:           c.Bool("debug"),
		NoBanner:        c.Bool("no-banner"),
	}

	fromConfig := func(flag string) bool {
		return !c.IsSet(flag) && v.IsSet(flag)
	}
	var err error
	if fromConfig("fuzz-data-type") {
		s.DataType = v.GetString("fuzz-data-type")
	}
	if fromConfig("fuzz-int-start") {
		if s.Start, err = configInt64(v, "fuzz-int-start"); err != nil {
			return nil, err
		}
	}
	if fromConfig("fuzz-int-end") {
		if s.End, err = configInt64(v, "fuzz-int-end"); err != nil {
			return nil, err
		}
	}
	if fromConfig("concurrency") {
		if s.Concurrency, err = configInt(v, "concurrency"); err != nil {
			return nil, err
		}
	}
	if fromConfig("timeout") {
		if s.Timeout, err = configDuration(v, "timeout"); err != nil {
			return nil, err
		}
	}
	if fromConfig("header") {
		s.Headers = v.GetStringSlice("header")
	}
	if fromConfig("skip-cert-verify") {
		if s.SkipCertVerify, err = configBool(v, "skip-cert-verify"); err != nil {
			return nil, err
		}
	}
	if fromConfig("drop-fixed-params") {
		if s.DropFixedParams, err = configBool(v, "drop-fixed-params"); err != nil {
			return nil, err
		}
	}

	if err := validate.Struct(s); err != nil {
		return nil, err
	}
	return s, nil
}

// configInt64 reads a whole number from the config file or environment.
// Floats and strings that aren't base 10 integers are rejected rather than truncated.
func configInt64(v *viper.Viper, key string) (int64, error) {
	raw := v.Get(key)
	switch value := raw.(type) {
	case float32, float64, bool:
		return 0, fmt.Errorf("invalid %s %v: %w", key, value, errNotInteger)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: %w", key, value, errNotInteger)
		}
		return n, nil
	}

	n, err := cast.ToInt64E(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %v: %w", key, raw, errNotInteger)
	}
	return n, nil
}

func configInt(v *viper.Viper, key string) (int, error) {
	n, err := configInt64(v, key)
	if err != nil {
		return 0, err
	}
	if n < math.MinInt || n > math.MaxInt {
		return 0, fmt.Errorf("invalid %s %d: out of range", key, n)
	}
	return int(n), nil
}

// configDuration accepts Go duration strings like "10s". Bare numbers are rejected because they have no unit.
func configDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.Get(key)
	if d, ok := raw.(time.Duration); ok {
		return d, nil
	}

	value, ok := raw.(string)
	if !ok {
		return 0, fmt.Errorf("invalid %s %v: expected a duration like 10s", key, raw)
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}

func configBool(v *viper.Viper, key string) (bool, error) {
	b, err := cast.ToBoolE(v.Get(key))
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

// parseHeaders turns "Name: value" strings into a header set.
func parseHeaders(raw []string) (http.Header, error) {
	headers := http.Header{}
	for _, header := range raw {
		name, value, found := strings.Cut(header, ":")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("invalid header %q, expected 'Name: value'", header)
		}
		headers.Add(name, strings.TrimSpace(value))
	}
	return headers, nil
}
