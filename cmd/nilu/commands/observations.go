package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/luftdata/go-nilu/pkg/nilu"
)

// NewObservationsCommand creates the obs command group.
func NewObservationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "obs",
		Aliases: []string{"observations"},
		Short:   "Query observations",
		Long:    "Query historical and up-to-date air quality observations",
	}

	cmd.AddCommand(newObsHistoricalCommand())
	cmd.AddCommand(newObsLatestCommand())

	return cmd
}

// HistoricalOptions holds the options for historical observations.
type HistoricalOptions struct {
	Components  []string
	ShowInvalid bool
}

func newObsHistoricalCommand() *cobra.Command {
	var opts HistoricalOptions

	cmd := &cobra.Command{
		Use:   "historical <from> <to> [station]",
		Short: "Fetch historical observations",
		Long:  "Fetch observations within a time period; dates use the 2006-01-02 format",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("parsing from date: %w", err)
			}

			to, err := time.Parse("2006-01-02", args[1])
			if err != nil {
				return fmt.Errorf("parsing to date: %w", err)
			}

			station := ""
			if len(args) == 3 {
				station = args[2]
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := nilu.NewQueryParams()
			if len(opts.Components) > 0 {
				params.WithComponents(opts.Components...)
			}

			if cmd.Flags().Changed("show-invalid") {
				params.WithShowInvalid(opts.ShowInvalid)
			}

			observations, err := client.Observations().Historical(context.Background(), from, to, station, params)
			if err != nil {
				return fmt.Errorf("failed to fetch historical observations: %w", err)
			}

			return renderOutput(observations, func() error {
				table := newTable("Station", "Component", "From", "To", "Value", "Unit")
				for _, series := range observations {
					for _, value := range series.Values {
						_ = table.Append(
							series.Station,
							series.Component,
							value.FromTime.Format(nilu.TimestampLayout),
							value.ToTime.Format(nilu.TimestampLayout),
							formatValue(value.Value),
							series.Unit,
						)
					}
				}

				return renderTable(table)
			})
		},
	}

	cmd.Flags().StringSliceVar(&opts.Components, "components", nil, "only observations for the given components")
	cmd.Flags().BoolVar(&opts.ShowInvalid, "show-invalid", false, "include invalid values as N/A")

	return cmd
}

// LatestOptions holds the options for latest observations.
type LatestOptions struct {
	Area      string
	Station   string
	Component string
}

func newObsLatestCommand() *cobra.Command {
	var opts LatestOptions

	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Fetch up-to-date observations",
		Long:  "Fetch the most recent measurements per station and component",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := nilu.NewQueryParams()
			if opts.Area != "" {
				params.WithArea(opts.Area)
			}

			if opts.Station != "" {
				params.WithStation(opts.Station)
			}

			if opts.Component != "" {
				params.WithComponent(opts.Component)
			}

			observations, err := client.Observations().Latest(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to fetch latest observations: %w", err)
			}

			return renderOutput(observations, func() error {
				table := newTable("Station", "Component", "From", "To", "Value", "Unit", "Index")
				for _, obs := range observations {
					_ = table.Append(
						obs.Station,
						obs.Component,
						obs.FromTime.Format(nilu.TimestampLayout),
						obs.ToTime.Format(nilu.TimestampLayout),
						fmt.Sprintf("%.2f", obs.Value),
						obs.Unit,
						fmt.Sprintf("%d", obs.Index),
					)
				}

				return renderTable(table)
			})
		},
	}

	cmd.Flags().StringVar(&opts.Area, "area", "", "only observations within the given area")
	cmd.Flags().StringVar(&opts.Station, "station", "", "only observations for the given station")
	cmd.Flags().StringVar(&opts.Component, "component", "", "only observations for the given component")

	return cmd
}
