// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/filter"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/usecase/adminuc"
	"github.com/momeni/car-dealer/pkg/core/usecase/cataloguc"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	listFilter filter.State
	carInput   adminuc.CarForm
	confirmed  bool
)

var carsCmd = &cobra.Command{
	Use:   "cars",
	Short: "List, show, add, edit, or delete cars",
}

var carsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the cars which match the filter flags",
	Long: `List the cars which match the filter flags. Malformed price and
year bounds are ignored, like the listing page of the web server.`,
	Args: cobra.NoArgs,
	RunE: run(func(cmd *cobra.Command, _ []string, cl *client) error {
		v := cl.ucs.Catalog.Listing(cmd.Context(), listFilter.Normalize())
		if v.Err != nil {
			return v.Err
		}
		printCars(cmd.OutOrStdout(), cl.ucs.Contact.Currency(), v)
		return nil
	}),
}

var carsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the details of a car",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(cmd *cobra.Command, args []string, cl *client) error {
		v := cl.ucs.Catalog.Detail(cmd.Context(), model.ID(args[0]), 1)
		switch {
		case v.Err != nil:
			return v.Err
		case !v.Found:
			return cerr.NotFound(fmt.Errorf("car %q is not found", args[0]))
		}
		printCar(cmd.OutOrStdout(), cl.ucs.Contact.Currency(), v)
		return nil
	}),
}

var carsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new car",
	Long: `Add a new car using the field flags. The brand, model, year,
price, mileage, color, and location flags are required. The placeholder
image is used if no image is given.`,
	Args: cobra.NoArgs,
	RunE: run(func(cmd *cobra.Command, _ []string, cl *client) error {
		f := adminuc.EmptyCarForm()
		overlay(cmd.Flags(), &f)
		car, err := cl.ucs.Admin.SubmitCar(cmd.Context(), cl.sess, "", f)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "added car", car.ID)
		return nil
	}),
}

var carsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit the given fields of a car",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(cmd *cobra.Command, args []string, cl *client) error {
		id := model.ID(args[0])
		car, err := cl.ucs.Admin.Car(cmd.Context(), id)
		if err != nil {
			return err
		}
		f := adminuc.CarFormFrom(car)
		overlay(cmd.Flags(), &f)
		if _, err = cl.ucs.Admin.SubmitCar(cmd.Context(), cl.sess, id, f); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "updated car", id)
		return nil
	}),
}

var carsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a car (requires --yes)",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(cmd *cobra.Command, args []string, cl *client) error {
		id := model.ID(args[0])
		err := cl.ucs.Admin.DeleteCar(cmd.Context(), cl.sess, id, confirmed)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "deleted car", id)
		return nil
	}),
}

// carFlags names the flags of the car form fields.
var carFlags = []struct {
	name, usage string
	field       func(f *adminuc.CarForm) *string
}{
	{"brand", "brand, e.g., Toyota", func(f *adminuc.CarForm) *string { return &f.Brand }},
	{"model", "model, e.g., Camry", func(f *adminuc.CarForm) *string { return &f.Model }},
	{"year", "model year", func(f *adminuc.CarForm) *string { return &f.Year }},
	{"price", "price in whole currency units", func(f *adminuc.CarForm) *string { return &f.Price }},
	{"mileage", "mileage in miles", func(f *adminuc.CarForm) *string { return &f.Mileage }},
	{"fuel-type", "Petrol, Diesel, Electric, or Hybrid", func(f *adminuc.CarForm) *string { return &f.FuelType }},
	{"transmission", "Manual or Automatic", func(f *adminuc.CarForm) *string { return &f.Transmission }},
	{"body-type", "Sedan, SUV, Hatchback, Coupe, Convertible, or Pickup", func(f *adminuc.CarForm) *string { return &f.BodyType }},
	{"color", "color", func(f *adminuc.CarForm) *string { return &f.Color }},
	{"location", "location", func(f *adminuc.CarForm) *string { return &f.Location }},
	{"description", "description", func(f *adminuc.CarForm) *string { return &f.Description }},
	{"features", `comma separated features, e.g., "AC, Navigation"`, func(f *adminuc.CarForm) *string { return &f.Features }},
	{"image", "image URL", func(f *adminuc.CarForm) *string { return &f.Image }},
}

// overlay copies the explicitly given car flags into f.
func overlay(fs *pflag.FlagSet, f *adminuc.CarForm) {
	for _, cf := range carFlags {
		if fs.Changed(cf.name) {
			*cf.field(f) = *cf.field(&carInput)
		}
	}
}

func printCars(w io.Writer, cur model.Currency, v *cataloguc.ListingView) {
	fmt.Fprintln(w, v.Summary())
	if v.Shown() == 0 {
		fmt.Fprintln(w, "No cars match your current filters.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tYEAR\tBRAND\tMODEL\tPRICE\tMILEAGE\tLOCATION")
	for _, car := range v.Cars {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			car.ID, car.Year, car.Brand, car.Model, cur.Format(car.Price),
			model.FormatMileage(car.Mileage), car.Location)
	}
	_ = tw.Flush()
}

func printCar(w io.Writer, cur model.Currency, v *cataloguc.DetailView) {
	car := v.Car
	fmt.Fprintf(w, "%d %s %s (%s)\n", car.Year, car.Brand, car.Model, car.ID)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Price:\t%s\n", cur.Format(car.Price))
	fmt.Fprintf(tw, "Mileage:\t%s miles\n", model.FormatMileage(car.Mileage))
	fmt.Fprintf(tw, "Fuel Type:\t%s\n", car.FuelType)
	fmt.Fprintf(tw, "Transmission:\t%s\n", car.Transmission)
	fmt.Fprintf(tw, "Body Type:\t%s\n", car.BodyType)
	fmt.Fprintf(tw, "Color:\t%s\n", car.Color)
	fmt.Fprintf(tw, "Location:\t%s\n", car.Location)
	fmt.Fprintf(tw, "Features:\t%s\n", strings.Join(car.Features, ", "))
	fmt.Fprintf(tw, "Images:\t%d\n", v.Carousel.Count())
	_ = tw.Flush()
	if car.Description != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, car.Description)
	}
	if v.HasPrev {
		fmt.Fprintln(w, "previous:", v.Prev)
	}
	if v.HasNext {
		fmt.Fprintln(w, "next:", v.Next)
	}
}

func init() {
	lf := carsListCmd.Flags()
	lf.StringVar(&listFilter.Brand, "brand", "", "brand name, or all")
	lf.StringVar(&listFilter.BodyType, "body-type", "", "body type, or all")
	lf.StringVar(&listFilter.FuelType, "fuel-type", "", "fuel type, or all")
	lf.StringVar(&listFilter.Transmission, "transmission", "", "transmission, or all")
	lf.StringVar(&listFilter.MinPrice, "min-price", "", "minimum price")
	lf.StringVar(&listFilter.MaxPrice, "max-price", "", "maximum price")
	lf.StringVar(&listFilter.MinYear, "min-year", "", "minimum model year")
	lf.StringVar(&listFilter.MaxYear, "max-year", "", "maximum model year")

	for _, c := range []*cobra.Command{carsAddCmd, carsEditCmd} {
		for _, cf := range carFlags {
			c.Flags().StringVar(cf.field(&carInput), cf.name, "", cf.usage)
		}
	}
	carsDeleteCmd.Flags().BoolVar(&confirmed, "yes", false, "confirm the deletion")

	carsCmd.AddCommand(carsListCmd, carsShowCmd, carsAddCmd, carsEditCmd, carsDeleteCmd)
	rootCmd.AddCommand(carsCmd)
}
