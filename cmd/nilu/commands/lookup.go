package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/luftdata/go-nilu/pkg/nilu"
)

// NewLookupCommand creates the lookup command group.
func NewLookupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Query NILU metadata",
		Long:  "Query areas, stations, components, air quality indices and time series",
	}

	cmd.AddCommand(newLookupAreasCommand())
	cmd.AddCommand(newLookupStationsCommand())
	cmd.AddCommand(newLookupComponentsCommand())
	cmd.AddCommand(newLookupAQIsCommand())
	cmd.AddCommand(newLookupTimeseriesCommand())

	return cmd
}

func newLookupAreasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "areas",
		Short: "List areas",
		Long:  "List all available areas",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			areas, err := client.Lookup().Areas(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list areas: %w", err)
			}

			return renderOutput(areas, func() error {
				table := newTable("Area", "Municipality", "Zone")
				for _, area := range areas {
					_ = table.Append(area.Area, area.Municipality, area.Zone)
				}

				return renderTable(table)
			})
		},
	}
}

// StationsOptions holds the options for listing stations.
type StationsOptions struct {
	Area string
	UTD  bool
}

func newLookupStationsCommand() *cobra.Command {
	var opts StationsOptions

	cmd := &cobra.Command{
		Use:   "stations",
		Short: "List stations",
		Long:  "List metadata for measurement stations",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := nilu.NewQueryParams()
			if opts.Area != "" {
				params.WithArea(opts.Area)
			}

			if cmd.Flags().Changed("utd") {
				params.WithUTD(opts.UTD)
			}

			stations, err := client.Lookup().Stations(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list stations: %w", err)
			}

			return renderOutput(stations, func() error {
				table := newTable("ID", "Station", "Area", "Zone", "EOI", "Components", "Last Measurement")
				for _, station := range stations {
					_ = table.Append(
						strconv.Itoa(station.ID),
						station.Station,
						station.Area,
						station.Zone,
						station.EOI,
						station.Components,
						formatTimestamp(station.LastMeasurement),
					)
				}

				return renderTable(table)
			})
		},
	}

	cmd.Flags().StringVar(&opts.Area, "area", "", "only stations within the given area")
	cmd.Flags().BoolVar(&opts.UTD, "utd", false, "only stations with up-to-date data")

	return cmd
}

func newLookupComponentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List components",
		Long:  "List all measured pollutant components",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			components, err := client.Lookup().Components(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list components: %w", err)
			}

			return renderOutput(components, func() error {
				table := newTable("Component", "Unit")
				for _, component := range components {
					_ = table.Append(component.Component, component.Unit)
				}

				return renderTable(table)
			})
		},
	}
}

// AQIsOptions holds the options for listing air quality indices.
type AQIsOptions struct {
	Component string
	Culture   string
}

func newLookupAQIsCommand() *cobra.Command {
	var opts AQIsOptions

	cmd := &cobra.Command{
		Use:     "aqis",
		Aliases: []string{"aqi"},
		Short:   "List air quality indices",
		Long:    "List the air quality index scale per component",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := nilu.NewQueryParams()
			if opts.Component != "" {
				params.WithComponent(opts.Component)
			}

			if opts.Culture != "" {
				params.WithCulture(opts.Culture)
			}

			indices, err := client.Lookup().AirQualityIndices(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list air quality indices: %w", err)
			}

			return renderOutput(indices, func() error {
				table := newTable("Component", "Unit", "Index", "From", "To", "Text")
				for _, index := range indices {
					for _, band := range index.Bands {
						toValue := NotAvailable
						if band.ToValue != nil {
							toValue = fmt.Sprintf("%.1f", *band.ToValue)
						}

						_ = table.Append(
							index.Component,
							index.Unit,
							strconv.Itoa(band.Index),
							fmt.Sprintf("%.1f", band.FromValue),
							toValue,
							band.Text,
						)
					}
				}

				return renderTable(table)
			})
		},
	}

	cmd.Flags().StringVar(&opts.Component, "component", "", "only the index for the given component")
	cmd.Flags().StringVar(&opts.Culture, "culture", "", "language of descriptions (e.g. en)")

	return cmd
}

// TimeseriesOptions holds the options for listing time series.
type TimeseriesOptions struct {
	Station   string
	Component string
	Timestep  int
}

func newLookupTimeseriesCommand() *cobra.Command {
	var opts TimeseriesOptions

	cmd := &cobra.Command{
		Use:   "timeseries",
		Short: "List time series",
		Long:  "List all available time series",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := nilu.NewQueryParams()
			if opts.Station != "" {
				params.WithStation(opts.Station)
			}

			if opts.Component != "" {
				params.WithComponent(opts.Component)
			}

			if opts.Timestep > 0 {
				params.WithTimestep(opts.Timestep)
			}

			series, err := client.Lookup().Timeseries(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list timeseries: %w", err)
			}

			return renderOutput(series, func() error {
				table := newTable("ID", "Station", "Component", "Unit", "Timestep", "First", "Last")
				for _, ts := range series {
					_ = table.Append(
						strconv.Itoa(ts.ID),
						ts.Station,
						ts.Component,
						ts.Unit,
						strconv.Itoa(ts.Timestep),
						formatTimestamp(ts.FirstMeasurement),
						formatTimestamp(ts.LastMeasurement),
					)
				}

				return renderTable(table)
			})
		},
	}

	cmd.Flags().StringVar(&opts.Station, "station", "", "only time series for the given station")
	cmd.Flags().StringVar(&opts.Component, "component", "", "only time series for the given component")
	cmd.Flags().IntVar(&opts.Timestep, "timestep", 0, "only time series with the given timestep in seconds")

	return cmd
}
