package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"parceltrack/internal/core/domain/model/directory"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/pkg/errs"
)

const timeLayout = "2006-01-02 15:04"

// prompter is told by the Session Store when the remote authority ended the session.
type prompter struct {
	out io.Writer
}

func (p prompter) PromptReauthentication(_ context.Context, _ error) {
	fmt.Fprintln(p.out, "Your session has ended. Sign in again with: shipctl login")
}

// userMessage turns an error of the taxonomy into the line shown to the user.
func userMessage(err error) string {
	var (
		authn    *errs.AuthenticationError
		conflict *errs.ConflictError
	)

	switch {
	case errors.As(err, &authn):
		if authn.Reason == "invalid credentials" {
			return "Wrong username or password."
		}
		return "You are not signed in. Run: shipctl login"
	case errors.Is(err, errs.ErrAuthorization):
		return "You are not permitted to do that."
	case errs.IsNotFound(err):
		return "Not found: " + err.Error()
	case errors.As(err, &conflict):
		reason := conflict.Reason
		if reason == "" {
			reason = conflict.Subject
		}
		return "Not possible right now: " + reason
	case errs.IsValidation(err):
		return "Invalid input: " + err.Error()
	case errors.Is(err, errs.ErrNetwork):
		return "Cannot reach the tracking service. Check PARCELTRACK_API_BASE_URL and try again."
	case errors.Is(err, errs.ErrRemoteFailure):
		return "The tracking service failed to answer: " + err.Error()
	default:
		return "Error: " + err.Error()
	}
}

func table(out io.Writer, header string, rows func(w io.Writer)) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, header)
	rows(w)
	return w.Flush()
}

func printPackages(out io.Writer, packages []*shipment.Package) error {
	return table(out, "ID\tSTATUS\tLOCATION\tWEIGHT\tDIMENSIONS\tSENDER\tRECEIVER\tCREATED", func(w io.Writer) {
		for _, p := range packages {
			fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%s\t%s\t%s\t%s\n",
				p.ID(), p.Status(), p.CurrentLocationID(), p.Weight(), p.Dimensions(),
				p.SenderID(), p.ReceiverID(), p.CreatedAt().Format(timeLayout))
		}
	})
}

func printPackage(out io.Writer, p *shipment.Package) error {
	transportation := "none"
	if id := p.TransportationID(); id != nil {
		transportation = id.String()
	}
	fmt.Fprintf(out, "Package %s: %s at location %s (transportation %s)\n",
		p.ID(), p.Status(), p.CurrentLocationID(), transportation)
	return printHistory(out, p.Tracks(), nil)
}

func printDetails(out io.Writer, d shipment.Details) error {
	p := d.Package
	latest := p.Latest()
	fmt.Fprintf(out, "Package %s  %g kg  %s\n", p.ID(), p.Weight(), p.Dimensions())
	fmt.Fprintf(out, "From:   %s <%s>\n", d.Sender.Name(), d.Sender.Email())
	fmt.Fprintf(out, "To:     %s <%s>\n", d.Receiver.Name(), d.Receiver.Email())
	fmt.Fprintf(out, "Latest: %s at %s, %s since %s\n",
		latest.Status(), d.CurrentLocation.Name(), d.CurrentLocation.City(), latest.Timestamp().Format(timeLayout))
	if t := d.Transportation; t != nil {
		fmt.Fprintf(out, "Transportation %s: %s, departs %s, arrives %s\n",
			t.ID(), t.Type(), t.DepartureTime().Format(timeLayout), t.ArrivalTime().Format(timeLayout))
	}
	fmt.Fprintln(out)

	return printHistory(out, d.History(), func(id kernel.ID) string {
		if id == d.CurrentLocation.ID() {
			return d.CurrentLocation.Name()
		}
		return id.String()
	})
}

func printHistory(out io.Writer, tracks []shipment.Track, location func(kernel.ID) string) error {
	if location == nil {
		location = kernel.ID.String
	}
	return table(out, "#\tTIME\tSTATUS\tLOCATION", func(w io.Writer) {
		for i, t := range tracks {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, t.Timestamp().Format(timeLayout), t.Status(), location(t.LocationID()))
		}
	})
}

func printCustomers(out io.Writer, customers []directory.Customer) error {
	return table(out, "ID\tNAME\tEMAIL\tPHONE", func(w io.Writer) {
		for _, c := range customers {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID(), c.Name(), c.Email(), c.Phone())
		}
	})
}

func printLocations(out io.Writer, locations []directory.Location) error {
	return table(out, "ID\tNAME\tADDRESS\tCITY\tCENTER", func(w io.Writer) {
		for _, l := range locations {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", l.ID(), l.Name(), l.Address(), l.City(), l.CenterID())
		}
	})
}

func printCenters(out io.Writer, centers []directory.Center) error {
	return table(out, "ID\tNAME\tCITY\tTYPE", func(w io.Writer) {
		for _, c := range centers {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID(), c.Name(), c.City(), strings.ToUpper(c.Type()))
		}
	})
}
