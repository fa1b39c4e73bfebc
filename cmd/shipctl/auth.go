package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"parceltrack/internal/core/domain/model/identity"
)

// gatedActions are the actions `actions` asks the Permission Oracle about.
var gatedActions = []struct {
	label      string
	capability identity.Capability
}{
	{"list packages", identity.ViewPackages},
	{"create packages", identity.CreatePackage},
	{"advance package status", identity.UpdatePackageStatus},
	{"list customers", identity.ViewCustomers},
	{"list locations", identity.ViewLocations},
	{"create or delete locations", identity.ManageLocations},
	{"list centers", identity.ViewCenters},
	{"create centers", identity.ManageCenters},
	{"track packages", identity.TrackPackage},
}

func (c *cli) loginCommand() *cobra.Command {
	var username, password string

	command := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			if password == "" {
				fmt.Fprint(c.errOut, "Password: ")
				line, err := bufio.NewReader(c.in).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("reading password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			sess, err := c.root.Session.Login(command.Context(), identity.Credentials{
				Username: username,
				Password: password,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Signed in as %s (%s)\n", sess.Identity.Username(), sess.Identity.Role())
			return nil
		},
	}
	command.Flags().StringVarP(&username, "username", "u", "", "account name")
	command.Flags().StringVarP(&password, "password", "p", "", "password (read from stdin when omitted)")
	_ = command.MarkFlagRequired("username")
	return command
}

func (c *cli) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the session",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			if err := c.root.Session.Logout(command.Context()); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Signed out")
			return nil
		},
	}
}

func (c *cli) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed in identity",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			sess, ok := c.root.Session.Current()
			if !ok {
				fmt.Fprintln(c.out, "Not signed in")
				return nil
			}
			who := sess.Identity
			fmt.Fprintf(c.out, "%s (%s)\n", who.Username(), who.Role())
			if who.Email() != "" {
				fmt.Fprintln(c.out, who.Email())
			}
			return nil
		},
	}
}

func (c *cli) canCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "can CAPABILITY",
		Short: "Ask the remote authority whether the session holds a capability",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			capability := identity.Capability(strings.ToUpper(strings.TrimSpace(args[0])))
			allowed, err := c.root.Permissions.HasCapability(command.Context(), capability)
			if err != nil {
				return err
			}
			if allowed {
				fmt.Fprintf(c.out, "yes: %s is permitted\n", capability)
			} else {
				fmt.Fprintf(c.out, "no: %s is not permitted\n", capability)
			}
			return nil
		},
	}
}

func (c *cli) actionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List the actions the session may perform",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			interaction := c.root.Permissions.Interaction()
			offered := false
			for _, action := range gatedActions {
				allowed, err := interaction.HasCapability(command.Context(), action.capability)
				if err != nil {
					return err
				}
				if allowed {
					fmt.Fprintf(c.out, "  %-28s %s\n", action.label, action.capability)
					offered = true
				}
			}
			if !offered {
				fmt.Fprintln(c.out, "No actions available. Sign in with: shipctl login")
			}
			return nil
		},
	}
}
