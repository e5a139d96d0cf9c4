// Command worktime answers work-time questions from flags, without a
// server: a full report, working-day counts and holiday lists.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/warp/worktime/calendar"
	"github.com/warp/worktime/generic"
	"github.com/warp/worktime/logger"
	"github.com/warp/worktime/store/sqlite"
)

// Context is passed to every command's Run.
type Context struct {
	Calendar *calendar.Calendar
	Clock    generic.Clock
	Out      io.Writer
}

var CLI struct {
	Version  kong.VersionFlag
	DB       string `help:"SQLite database whose company holidays extend the calendar." type:"path"`
	LogLevel string `help:"Log level for diagnostics on stderr." default:"warn" env:"WORKTIME_LOG_LEVEL"`

	Report      ReportCmd      `cmd:"" help:"Compute a work-time report for one day."`
	WorkingDays WorkingDaysCmd `cmd:"" help:"Count working days between two dates."`
	Holidays    HolidaysCmd    `cmd:"" help:"List the public holidays of a year."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("worktime"),
		kong.Description("Working hours, vacation and overtime calculator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": "v0.1.0"},
	)

	logger.Init(logger.Config{Level: CLI.LogLevel, Format: "console", Output: "stderr"})

	err := execute(ctx, CLI.DB, &Context{
		Calendar: calendar.New(),
		Clock:    generic.SystemClock{},
		Out:      os.Stdout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute runs the selected command. Company holidays from dbPath extend
// the calendar; the store is closed before execute returns.
func execute(kctx *kong.Context, dbPath string, cctx *Context) error {
	if dbPath != "" {
		store, err := sqlite.New(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		cctx.Calendar.Extra = store
		logger.Component("cli").Debug().Str("db", dbPath).Msg("company holidays enabled")
	}
	return kctx.Run(cctx)
}
