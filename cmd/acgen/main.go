// Command acgen compiles the ActiveCampaign endpoint table into request
// builder methods. It is run through go:generate from pkg/activecampaign.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/natserract/activecampaign/pkg/activecampaign/routes"
	"github.com/natserract/activecampaign/pkg/endpoint"
	"go.uber.org/zap"
)

type CLI struct {
	Out      string `help:"Output file." default:"builder_gen.go" short:"o"`
	Package  string `help:"Package name of the generated file." default:"activecampaign"`
	Type     string `help:"Client type receiving the generated methods." default:"ActiveCampaign"`
	Receiver string `help:"Receiver variable name." default:"a"`
	Check    bool   `help:"Fail if the output file is out of date instead of writing it."`
}

func (c *CLI) Run(logger *zap.Logger) error {
	var buf bytes.Buffer
	err := endpoint.Generate(&buf, endpoint.GenerateOptions{
		Generator: "acgen",
		Package:   c.Package,
		Type:      c.Type,
		Receiver:  c.Receiver,
		Returns:   "*httpclient.RequestBuilder",
		Build:     "request",
		Imports:   []string{`httpclient "github.com/natserract/activecampaign/pkg/http"`},
		Filename:  c.Out,
	}, routes.Table)
	if err != nil {
		return err
	}

	if c.Check {
		current, err := os.ReadFile(c.Out)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", c.Out, err)
		}
		if !bytes.Equal(current, buf.Bytes()) {
			return fmt.Errorf("%s is out of date, run go generate", c.Out)
		}
		logger.Info("Generated file is up to date", zap.String("path", c.Out))
		return nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.Out), ".acgen-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.Out); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Out, err)
	}

	logger.Info("Generated request builders",
		zap.String("path", c.Out),
		zap.Int("endpoints", len(routes.Table)))
	return nil
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("acgen"),
		kong.Description("Generate ActiveCampaign request builders from the endpoint table."),
		kong.UsageOnError(),
	)
	err = ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
