// Command accleanup deletes ActiveCampaign contacts by email address.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/natserract/activecampaign/pkg/activecampaign"
	"github.com/natserract/activecampaign/pkg/config"
	"go.uber.org/zap"
)

type CLI struct {
	Emails []string `arg:"" help:"Email addresses of the contacts to delete."`
}

func (c *CLI) Run(client activecampaign.ContactsClient, logger *zap.Logger) error {
	ctx := context.Background()
	for _, email := range c.Emails {
		if err := client.FindAndDeleteByEmail(ctx, email); err != nil {
			logger.Error("Failed to delete contact", zap.String("email", email), zap.Error(err))
			return fmt.Errorf("delete %s: %w", email, err)
		}
	}
	return nil
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("accleanup"),
		kong.Description("Find ActiveCampaign contacts by email and delete them."),
		kong.UsageOnError(),
	)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	client := activecampaign.NewClientWithLogger(cfg, logger)
	err = ctx.Run(logger, kong.BindTo(client, (*activecampaign.ContactsClient)(nil)))
	ctx.FatalIfErrorf(err)
}
