package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/warp/worktime/api"
	"github.com/warp/worktime/calendar"
	"github.com/warp/worktime/generic"
	"github.com/warp/worktime/worktime"
)

type ReportCmd struct {
	Regions       []string `short:"r" help:"Holiday regions, e.g. de,de_nw. Omit to leave unset." sep:","`
	HoursPerWeek  float64  `help:"Contract hours per week." default:"40"`
	HoursWorked   float64  `short:"w" help:"Hours worked so far this year." default:"0"`
	VacationTotal float64  `help:"Vacation days per year (0 leaves it unset)."`
	VacationDay   []string `help:"A vacation day (repeatable)." sep:","`
	SickTotal     float64  `help:"Estimated sick days per year (0 leaves it unset)."`
	SickDay       []string `help:"A sick day (repeatable)." sep:","`
	Date          string   `short:"d" help:"Reference day (YYYY-MM-DD), default today."`
	JSON          bool     `help:"Print JSON instead of text."`
}

func (c *ReportCmd) Validate() error {
	if c.HoursPerWeek <= 0 {
		return fmt.Errorf("hours-per-week must be positive")
	}
	return calendar.ValidateRegions(c.Regions)
}

func (c *ReportCmd) Run(ctx *Context) error {
	date := generic.Today(ctx.Clock)
	if c.Date != "" {
		d, err := generic.ParseTimePoint(c.Date)
		if err != nil {
			return err
		}
		date = d
	}

	calc, err := c.calculator(ctx)
	if err != nil {
		return err
	}
	report := calc.Report(date)

	if c.JSON {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(api.NewReportDTO("", report))
	}
	return writeReport(ctx, report)
}

func (c *ReportCmd) calculator(ctx *Context) (*worktime.Calculator, error) {
	calc := worktime.New(ctx.Calendar,
		worktime.WithClock(ctx.Clock),
		worktime.WithHoursPerWeek(c.HoursPerWeek),
		worktime.WithHoursWorked(c.HoursWorked),
	)
	if c.Regions != nil {
		calc.SetRegionList(c.Regions)
	}
	if c.VacationTotal != 0 {
		calc.SetVacationDaysTotal(c.VacationTotal)
	}
	if c.SickTotal != 0 {
		calc.SetEstimatedSickDaysTotal(c.SickTotal)
	}
	for _, raw := range c.VacationDay {
		d, err := generic.ParseTimePoint(raw)
		if err != nil {
			return nil, fmt.Errorf("vacation day: %w", err)
		}
		calc.AddVacationDay(d)
	}
	for _, raw := range c.SickDay {
		d, err := generic.ParseTimePoint(raw)
		if err != nil {
			return nil, fmt.Errorf("sick day: %w", err)
		}
		calc.AddSickDay(d)
	}
	return calc, nil
}

func writeReport(ctx *Context, r *worktime.Report) error {
	tw := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	row := func(label, value string) { fmt.Fprintf(tw, "  %s\t%s\n", label, value) }
	section := func(title string) { fmt.Fprintf(tw, "%s\n", title) }

	regions := "not set"
	if r.Regions != nil {
		regions = strings.Join(r.Regions, ", ")
	}

	section("Work time on " + r.Date.String())
	row("regions", regions)
	row("hours per week", show(r.HoursPerWeek, generic.UnitHours))
	row("hours per day", show(r.HoursPerDay, generic.UnitHours))
	row("worked", show(r.HoursWorked, generic.UnitHours)+" ("+show(r.DaysWorked, generic.UnitDays)+")")

	if w := r.Working; w != nil {
		section("Working time")
		row("days until date", fmt.Sprint(w.DaysUntil))
		row("hours until date", show(w.HoursUntil, generic.UnitHours))
		row("days remaining", fmt.Sprint(w.DaysRemaining))
		row("hours remaining", show(w.HoursRemaining, generic.UnitHours))
		row("hours this year", show(w.HoursYearTotal, generic.UnitHours))
		row("share of year", show(w.HoursFractionUntil, generic.UnitRatio))
	}

	v := r.Vacation
	section("Vacation")
	row("taken", show(v.DaysTaken, generic.UnitDays))
	row("available", showOptional(v.DaysAvailable, generic.UnitDays))
	row("distributed", showOptional(v.DaysDistributed, generic.UnitDays))
	row("debt", showOptional(v.DebtDays, generic.UnitDays))

	s := r.Sick
	section("Sick leave")
	row("taken", show(s.Days, generic.UnitDays))
	row("estimated left", showOptional(s.EstimatedDaysLeft, generic.UnitDays))

	if p := r.Projection; p != nil {
		section("Year-end projection")
		row("projected", show(p.ProjectedHours, generic.UnitHours))
		row("target", show(p.TargetHours, generic.UnitHours))
		row("overtime", show(p.OvertimeHours, generic.UnitHours)+" ("+show(p.OvertimeDays, generic.UnitDays)+")")
	}

	if len(r.Missing) > 0 {
		section("Not configured: " + strings.Join(r.Missing, ", "))
	}
	return tw.Flush()
}

// show renders v rounded for display; non-finite values print as n/a.
func show(v float64, unit generic.Unit) string {
	a, ok := generic.NewAmount(v, unit)
	if !ok {
		return "n/a"
	}
	return a.Rounded().String()
}

func showOptional(v *float64, unit generic.Unit) string {
	if v == nil {
		return "not set"
	}
	return show(*v, unit)
}
