// Package cli implements rankctl, an offline front end to the roster engine.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	service "github.com/okian/collegerank/internal/app"
	"github.com/okian/collegerank/pkg/logger"
)

type options struct {
	catalog string
	verbose bool
}

// NewRootCommand builds the rankctl command tree writing to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "rankctl",
		Short:         "Query the college rankings catalog",
		Long:          "rankctl runs the listing engine locally: filter, sort, page and compare colleges from the built-in or a YAML catalog.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(out)
	root.PersistentFlags().StringVar(&opts.catalog, "catalog", "", "YAML catalog file (default: built-in dataset)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log service activity to stderr")

	root.AddCommand(
		newListCommand(opts),
		newTopCommand(opts),
		newShowCommand(opts),
		newRegionsCommand(opts),
		newCitiesCommand(opts),
	)
	return root
}

// withService starts a service over the selected catalog for the duration of fn.
func withService(ctx context.Context, cmd *cobra.Command, opts *options, fn func(*service.Service) error) error {
	log := logger.Discard()
	if opts.verbose {
		if err := logger.Init(logger.WithOutput(cmd.ErrOrStderr())); err != nil {
			return err
		}
		_ = logger.SetLevelString("debug")
		log = logger.Named("rankctl")
	}
	svc := service.New(
		service.WithLogger(log),
		service.WithCatalogPath(opts.catalog),
	)
	if err := svc.Start(ctx); err != nil {
		return err
	}
	defer svc.Stop()
	return fn(svc)
}
