package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/joncooperworks/fuzzywuzzy"
	"github.com/urfave/cli/v2"
)

func actionFuzz(c *cli.Context) error {
	s, err := loadSettings(c)
	if err != nil {
		return err
	}

	if !s.NoBanner {
		printBanner(os.Stdout)
	}

	url, err := fuzzywuzzy.ValidateURL(s.URL)
	if err != nil {
		return err
	}

	method, err := fuzzywuzzy.ValidateMethod(s.Method)
	if err != nil {
		return err
	}

	dataType, err := fuzzywuzzy.ParseDataType(s.DataType)
	if err != nil {
		return err
	}

	template, err := fuzzywuzzy.ParseTemplate(s.Body)
	if err != nil {
		return fmt.Errorf("%w. Did you include exactly %s in your value?", err, fuzzywuzzy.FuzzMarker)
	}

	headers, err := parseHeaders(s.Headers)
	if err != nil {
		return err
	}

	generator := &fuzzywuzzy.Generator{
		Template:        template,
		Range:           fuzzywuzzy.IntegerRange{Start: s.Start, End: s.End},
		DropFixedParams: s.DropFixedParams,
	}

	logger := newLogger(s.Debug).With().Str("batch", uuid.NewString()).Logger()
	config := &fuzzywuzzy.Config{
		URL:                   url,
		Headers:               headers,
		Client:                fuzzywuzzy.NewClient(s.Timeout, s.SkipCertVerify),
		MaxConcurrentRequests: s.Concurrency,
		Logger:                logger,
	}

	fmt.Printf("Attempting to fuzz %s body %s for %s values at %s from %d to %d\n",
		method, s.Body, dataType, url, s.Start, s.End)
	logger.Debug().
		Int64("requests", generator.Count()).
		Int("concurrency", s.Concurrency).
		Dur("timeout", s.Timeout).
		Msg("Sending requests")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fuzzer := &fuzzywuzzy.Fuzzer{Config: config}
	report := fuzzer.Run(ctx, generator)

	fmt.Printf("Finished making %d requests to %s.\n", report.Completed, url)
	report.WriteSummary(os.Stdout)
	fmt.Printf("Program took %v seconds to run\n", report.Elapsed.Seconds())

	if ctx.Err() != nil {
		return fmt.Errorf("interrupted after %d of %d requests", report.Completed, generator.Count())
	}
	return nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "fuzzywuzzy",
		Usage:     "fuzz a single POST body parameter with a range of integers",
		ArgsUsage: "<url> <http_method> <post_body>",
		Description: "Use the string " + fuzzywuzzy.FuzzMarker + " to select the parameter to fuzz, like \"id=" +
			fuzzywuzzy.FuzzMarker + "&someOtherParm=0\". Every HTTP 200 response is logged as a success.\n" +
			"Only POST bodies are supported, and only one parameter can be fuzzed at a time.",
		Action: actionFuzz,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "fuzz-data-type",
				Required: false,
				Value:    string(fuzzywuzzy.DataTypeInteger),
				Usage:    "type of data to fuzz with. Integer is the only supported type",
			},
			&cli.Int64Flag{
				Name:     "fuzz-int-start",
				Required: false,
				Value:    0,
				Usage:    "first integer to fuzz with",
			},
			&cli.Int64Flag{
				Name:     "fuzz-int-end",
				Required: false,
				Value:    100000,
				Usage:    "last integer to fuzz with, inclusive",
			},
			&cli.IntFlag{
				Name:     "concurrency",
				Required: false,
				Value:    0,
				Usage:    "maximum requests in flight. 0 sends the whole range at once",
			},
			&cli.DurationFlag{
				Name:     "timeout",
				Required: false,
				Usage:    "timeout for each HTTP request, e.g. 10s. 0 waits forever",
			},
			&cli.StringSliceFlag{
				Name:     "header",
				Required: false,
				Usage:    "extra HTTP header to send with every request, as 'Name: value'",
			},
			&cli.BoolFlag{
				Name:     "skip-cert-verify",
				Required: false,
				Value:    false,
				Usage:    "skip verifying SSL certificate when making requests",
			},
			&cli.BoolFlag{
				Name:     "drop-fixed-params",
				Required: false,
				Value:    false,
				Usage:    "send only the fuzzed parameter, leaving out the other parameters in the body",
			},
			&cli.StringFlag{
				Name:     "config",
				Required: false,
				Usage:    "YAML config file with defaults for the optional flags",
			},
			&cli.BoolFlag{
				Name:     "debug",
				Required: false,
				Usage:    "log every response and batch details",
			},
			&cli.BoolFlag{
				Name:     "no-banner",
				Required: false,
				Usage:    "don't print the banner",
			},
		},
	}
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
