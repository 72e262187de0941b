package main

import (
	"errors"
	"os"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/regularization"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/timeline"
	"github.com/cmlabs-hris/hris-portal-go/internal/repository/sqlite"
	"github.com/spf13/cobra"
)

func SetupCommands(a *cliApp) *cobra.Command {
	// root command
	rootCmd := &cobra.Command{
		Use:           "portalctl",
		Short:         "Inspect the employee portal views from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}
	rootCmd.SetOut(a.out)
	rootCmd.PersistentFlags().StringVar(&a.driver, "driver", "", "database driver, postgres or sqlite (overrides DB_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&a.sqlitePath, "sqlite", "", "sqlite database file (overrides SQLITE_PATH)")
	rootCmd.PersistentFlags().StringVar(&a.tz, "tz", "", "IANA time zone of the viewer (overrides APP_TIME_ZONE)")

	rootCmd.AddCommand(
		calendarCommand(a),
		holidaysCommand(a),
		timelineCommand(a),
		validateCommand(a),
		seedCommand(a),
	)

	return rootCmd
}

// command for printing one month of the calendar, optionally as a pdf
func calendarCommand(a *cliApp) *cobra.Command {
	var (
		employeeID string
		year       int
		month      int
		pdfPath    string
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the month calendar of an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.open(ctx); err != nil {
				return err
			}
			loc, err := a.location()
			if err != nil {
				return err
			}

			today := a.now().In(loc)
			if year == 0 {
				year = today.Year()
			}
			if month == 0 {
				month = int(today.Month())
			}
			req := calendar.MonthRequest{EmployeeID: employeeID, Year: year, Month: month, Location: loc}
			if err := req.Validate(); err != nil {
				return err
			}

			if pdfPath != "" {
				f, err := os.Create(pdfPath)
				if err != nil {
					return err
				}
				if err := a.services.Calendar.RenderMonthPDF(ctx, req, f); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				a.printf("Wrote %s\n", pdfPath)
				return nil
			}

			resp, err := a.services.Calendar.GetMonth(ctx, req)
			if err != nil {
				return err
			}
			return renderMonth(a.out, resp)
		},
	}
	cmd.Flags().StringVar(&employeeID, "employee", "", "employee id")
	cmd.Flags().IntVar(&year, "year", 0, "year, defaults to the current year")
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12, defaults to the current month")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "write the month as a pdf to this file instead of printing it")
	_ = cmd.MarkFlagRequired("employee")

	return cmd
}

func holidaysCommand(a *cliApp) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List upcoming holidays",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			loc, err := a.location()
			if err != nil {
				return err
			}
			holidays, err := a.services.Calendar.UpcomingHolidays(cmd.Context(), limit, loc)
			if err != nil {
				return err
			}
			return renderHolidays(a.out, holidays)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 5, "number of holidays to list")

	return cmd
}

// command for printing the weekly session timeline as text bars
func timelineCommand(a *cliApp) *cobra.Command {
	var employeeID, date string

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Print the weekly work session timeline of an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			loc, err := a.location()
			if err != nil {
				return err
			}
			req := timeline.WeekRequest{EmployeeID: employeeID, Date: date, Location: loc}
			if err := req.Validate(); err != nil {
				return err
			}
			week, err := a.services.Timeline.GetWeek(cmd.Context(), req)
			if err != nil {
				return err
			}
			return renderWeek(a.out, week)
		},
	}
	cmd.Flags().StringVar(&employeeID, "employee", "", "employee id")
	cmd.Flags().StringVar(&date, "date", "", "any day of the week, YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("employee")

	return cmd
}

func validateCommand(a *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run the leave or regularization rules without submitting anything",
	}
	cmd.AddCommand(validateLeaveCommand(a), validateRegularizationCommand(a))
	return cmd
}

func validateLeaveCommand(a *cliApp) *cobra.Command {
	var req leave.ValidateLeaveRequest

	cmd := &cobra.Command{
		Use:   "leave",
		Short: "Validate a leave request against the stored balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			loc, err := a.location()
			if err != nil {
				return err
			}
			req.Location = loc
			if err := req.Validate(); err != nil {
				return err
			}
			result, err := a.services.Leave.ValidateRequest(cmd.Context(), req)
			if err != nil {
				return err
			}
			renderLeaveResult(a.out, result)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.EmployeeID, "employee", "", "employee id")
	cmd.Flags().StringVar(&req.LeaveType, "type", "", "Sick Leave, Casual Leave or Unpaid Leave")
	cmd.Flags().StringVar(&req.StartDate, "start", "", "start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.EndDate, "end", "", "end date, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.DayType, "day-type", string(leave.DayTypeFull), "Full Day or Half Day")
	cmd.Flags().StringVar(&req.HalfDayVariant, "half", "", "1st Half or 2nd Half")
	_ = cmd.MarkFlagRequired("employee")

	return cmd
}

func validateRegularizationCommand(a *cliApp) *cobra.Command {
	var req regularization.ValidateRegularizationRequest

	cmd := &cobra.Command{
		Use:   "regularization",
		Short: "Validate an attendance regularization against logged time",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			loc, err := a.location()
			if err != nil {
				return err
			}
			req.Location = loc
			if err := req.Validate(); err != nil {
				return err
			}
			resp, err := a.services.Regularization.Validate(cmd.Context(), req)
			if err != nil {
				return err
			}
			renderRegularizationResult(a.out, resp)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.EmployeeID, "employee", "", "employee id")
	cmd.Flags().StringVar(&req.Date, "date", "", "date to regularize, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.CheckIn, "in", "", "check-in time, HH:MM")
	cmd.Flags().StringVar(&req.CheckOut, "out", "", "check-out time, HH:MM")
	_ = cmd.MarkFlagRequired("employee")

	return cmd
}

// command for loading a JSON fixture into the sqlite store
func seedCommand(a *cliApp) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a JSON fixture into the sqlite database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd.Context()); err != nil {
				return err
			}
			if a.repos.SQLite == nil {
				return errors.New("seed needs the sqlite driver")
			}

			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			fixture, err := sqlite.DecodeFixture(f)
			if err != nil {
				return err
			}
			if err := a.repos.SQLite.Seed(cmd.Context(), fixture); err != nil {
				return err
			}
			a.printf("Seeded %d holidays, %d leaves, %d attendance records, %d sessions, %d projects, %d time logs\n",
				len(fixture.Holidays), len(fixture.Leaves), len(fixture.Attendance), len(fixture.Sessions),
				len(fixture.Projects), len(fixture.TimeLogs))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "fixture file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
