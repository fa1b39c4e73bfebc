package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
)

func (c *cli) packagesCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "packages",
		Short: "List, create and advance packages",
	}
	command.AddCommand(c.listPackagesCommand(), c.createPackageCommand(), c.advancePackageCommand())
	return command
}

func (c *cli) listPackagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List packages",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			packages, err := c.root.Packages.ListPackages(command.Context())
			if err != nil {
				return err
			}
			return printPackages(c.out, packages)
		},
	}
}

func (c *cli) createPackageCommand() *cobra.Command {
	var (
		weight                                        float64
		dimensions                                    string
		sender, receiver, location, transportationRaw int64
	)

	command := &cobra.Command{
		Use:   "create",
		Short: "Register a new package",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			draft := shipment.Draft{
				Weight:            weight,
				Dimensions:        dimensions,
				SenderID:          kernel.ID(sender),
				ReceiverID:        kernel.ID(receiver),
				CurrentLocationID: kernel.ID(location),
			}
			if transportationRaw != 0 {
				draft.TransportationID = kernel.OptionalID(kernel.ID(transportationRaw))
			}

			pkg, err := c.root.Packages.CreatePackage(command.Context(), draft)
			if err != nil {
				return err
			}
			return printPackage(c.out, pkg)
		},
	}
	command.Flags().Float64Var(&weight, "weight", 0, "weight in kg")
	command.Flags().StringVar(&dimensions, "dimensions", "", "dimensions, for example 30x20x15")
	command.Flags().Int64Var(&sender, "sender", 0, "sender customer id")
	command.Flags().Int64Var(&receiver, "receiver", 0, "receiver customer id")
	command.Flags().Int64Var(&location, "location", 0, "current location id")
	command.Flags().Int64Var(&transportationRaw, "transportation", 0, "transportation id (optional)")
	return command
}

func (c *cli) advancePackageCommand() *cobra.Command {
	var (
		statusRaw string
		location  int64
	)

	command := &cobra.Command{
		Use:   "advance ID",
		Short: "Record a new status of a package at a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			id, err := kernel.ParseID(args[0])
			if err != nil {
				return err
			}
			status, err := shipment.ParseStatus(statusRaw)
			if err != nil {
				return err
			}

			pkg, err := c.root.Packages.AdvanceStatus(command.Context(), id, status, kernel.ID(location))
			if err != nil {
				return err
			}
			return printPackage(c.out, pkg)
		},
	}
	command.Flags().StringVar(&statusRaw, "status", "", fmt.Sprintf("new status, one of %v", shipment.Statuses()))
	command.Flags().Int64Var(&location, "location", 0, "location id where the status was observed")
	_ = command.MarkFlagRequired("status")
	_ = command.MarkFlagRequired("location")
	return command
}

func (c *cli) trackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "track ID",
		Short: "Show a package with its full history",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			id, err := kernel.ParseID(args[0])
			if err != nil {
				return err
			}
			details, err := c.root.Ledger.Lookup(command.Context(), id)
			if err != nil {
				return err
			}
			return printDetails(c.out, details)
		},
	}
}
