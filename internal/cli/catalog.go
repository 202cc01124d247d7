package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	service "github.com/okian/collegerank/internal/app"
)

func newTopCommand(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the best colleges by overall score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd.Context(), cmd, opts, func(svc *service.Service) error {
				entries, err := svc.TopN(cmd.Context(), limit)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTop(entries))
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "number of colleges")
	return cmd
}

func newShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show the details profile of one college",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid college id %q", args[0])
			}
			return withService(cmd.Context(), cmd, opts, func(svc *service.Service) error {
				d, err := svc.Profile(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderProfile(d))
				return nil
			})
		},
	}
}

func newRegionsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the regions of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd.Context(), cmd, opts, func(svc *service.Service) error {
				regions, err := svc.Regions(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(regions, "\n"))
				return nil
			})
		},
	}
}

func newCitiesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cities REGION",
		Short: "List the cities of a region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), cmd, opts, func(svc *service.Service) error {
				cities, err := svc.Cities(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if len(cities) == 0 {
					return fmt.Errorf("no cities in region %q", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(cities, "\n"))
				return nil
			})
		},
	}
}
