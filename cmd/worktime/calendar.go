package main

import (
	"fmt"

	"github.com/warp/worktime/calendar"
	"github.com/warp/worktime/generic"
)

type WorkingDaysCmd struct {
	Regions []string `short:"r" help:"Holiday regions, e.g. de,de_nw." sep:"," default:"de"`
	From    string   `help:"First day (YYYY-MM-DD)." required:""`
	Until   string   `help:"Last day (YYYY-MM-DD), inclusive." required:""`
}

func (c *WorkingDaysCmd) Validate() error {
	return calendar.ValidateRegions(c.Regions)
}

func (c *WorkingDaysCmd) Run(ctx *Context) error {
	from, err := generic.ParseTimePoint(c.From)
	if err != nil {
		return err
	}
	until, err := generic.ParseTimePoint(c.Until)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Out, ctx.Calendar.WorkingDaysBetween(c.Regions, from, until))
	return nil
}

type HolidaysCmd struct {
	Regions []string `short:"r" help:"Holiday regions, e.g. de,de_nw." sep:"," default:"de"`
	Year    int      `short:"y" help:"Year, default current."`
}

func (c *HolidaysCmd) Validate() error {
	return calendar.ValidateRegions(c.Regions)
}

func (c *HolidaysCmd) Run(ctx *Context) error {
	year := c.Year
	if year == 0 {
		year = generic.Today(ctx.Clock).Year()
	}
	for _, h := range ctx.Calendar.Holidays(c.Regions, year) {
		fmt.Fprintf(ctx.Out, "%s  %s  %s\n", h.Date, h.Date.Weekday().String()[:3], h.Name)
	}
	return nil
}
