package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"parceltrack/internal/core/domain/model/directory"
	"parceltrack/internal/core/domain/model/kernel"
)

func (c *cli) customersCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "customers",
		Short: "Browse customers",
	}
	command.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List customers",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			customers, err := c.root.Directory.Customers(command.Context())
			if err != nil {
				return err
			}
			return printCustomers(c.out, customers)
		},
	})
	return command
}

func (c *cli) locationsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "locations",
		Short: "List, create and delete locations",
	}
	command.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List locations",
			Args:  cobra.NoArgs,
			RunE: func(command *cobra.Command, _ []string) error {
				locations, err := c.root.Directory.Locations(command.Context())
				if err != nil {
					return err
				}
				return printLocations(c.out, locations)
			},
		},
		c.createLocationCommand(),
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a location no package refers to",
			Args:  cobra.ExactArgs(1),
			RunE: func(command *cobra.Command, args []string) error {
				id, err := kernel.ParseID(args[0])
				if err != nil {
					return err
				}
				if err = c.root.Directory.DeleteLocation(command.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(c.out, "Location %s deleted\n", id)
				return nil
			},
		},
	)
	return command
}

func (c *cli) createLocationCommand() *cobra.Command {
	var (
		draft  directory.LocationDraft
		center int64
	)

	command := &cobra.Command{
		Use:   "create",
		Short: "Create a location within a center",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			draft.CenterID = kernel.ID(center)
			location, err := c.root.Directory.CreateLocation(command.Context(), draft)
			if err != nil {
				return err
			}
			return printLocations(c.out, []directory.Location{location})
		},
	}
	command.Flags().StringVar(&draft.Name, "name", "", "location name")
	command.Flags().StringVar(&draft.Address, "address", "", "street address")
	command.Flags().StringVar(&draft.City, "city", "", "city")
	command.Flags().Int64Var(&center, "center", 0, "owning center id")
	return command
}

func (c *cli) centersCommand() *cobra.Command {
	var draft directory.CenterDraft

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a center",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			center, err := c.root.Directory.CreateCenter(command.Context(), draft)
			if err != nil {
				return err
			}
			return printCenters(c.out, []directory.Center{center})
		},
	}
	create.Flags().StringVar(&draft.Name, "name", "", "center name")
	create.Flags().StringVar(&draft.City, "city", "", "city")
	create.Flags().StringVar(&draft.Type, "type", "", "center type, for example SORTING")

	command := &cobra.Command{
		Use:   "centers",
		Short: "List and create centers",
	}
	command.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List centers",
			Args:  cobra.NoArgs,
			RunE: func(command *cobra.Command, _ []string) error {
				centers, err := c.root.Directory.Centers(command.Context())
				if err != nil {
					return err
				}
				return printCenters(c.out, centers)
			},
		},
		create,
	)
	return command
}
