package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/himalayanmicrofin/hmfin/internal/api"
	"github.com/himalayanmicrofin/hmfin/internal/cli"
	"github.com/himalayanmicrofin/hmfin/internal/format"
	"github.com/himalayanmicrofin/hmfin/internal/model"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

const exportPageSize = 100

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Collection report for agents",
	}

	cmd.AddCommand(reportListCmd())
	cmd.AddCommand(reportPendingsCmd())
	cmd.AddCommand(reportMarkPaidCmd())
	cmd.AddCommand(reportExportCmd())

	return cmd
}

// reportFilterFlags binds the shared filter flags and parses them into
// an api.ReportFilter.
type reportFilterFlags struct {
	from        string
	to          string
	collectedBy string
	planType    string
}

func (f *reportFilterFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.collectedBy, "collected-by", "", "filter by collector")
	cmd.Flags().StringVar(&f.planType, "plan-type", "", "filter by plan type: Loan or Deposit")
}

func (f *reportFilterFlags) parse() (api.ReportFilter, error) {
	var filter api.ReportFilter
	var err error

	if f.from != "" {
		filter.From, err = time.Parse("2006-01-02", f.from)
		if err != nil {
			return filter, fmt.Errorf("invalid --from date %q", f.from)
		}
	}
	if f.to != "" {
		filter.To, err = time.Parse("2006-01-02", f.to)
		if err != nil {
			return filter, fmt.Errorf("invalid --to date %q", f.to)
		}
	}
	if f.planType != "" && f.planType != "Loan" && f.planType != "Deposit" {
		return filter, fmt.Errorf("invalid --plan-type %q: must be Loan or Deposit", f.planType)
	}
	filter.CollectedBy = f.collectedBy
	filter.PlanType = f.planType
	return filter, nil
}

func reportListCmd() *cobra.Command {
	var (
		filterFlags reportFilterFlags
		skip        int
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List collected repayments",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			filter, err := filterFlags.parse()
			if err != nil {
				return err
			}

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			entries, total, err := client.Report(ctx, filter, skip, limit)
			if err != nil {
				return fmt.Errorf("failed to get report: %w", err)
			}
			if len(entries) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No entries match."))
				return nil
			}

			if err := printReportEntries(entries); err != nil {
				return err
			}
			fmt.Println(cli.SubtleStyle.Render(
				fmt.Sprintf("Showing %d of %d entries.", len(entries), total)))
			return nil
		},
	}

	filterFlags.bind(cmd)
	cmd.Flags().IntVar(&skip, "skip", 0, "number of entries to skip")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to list")
	return cmd
}

func reportPendingsCmd() *cobra.Command {
	var (
		skip  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "pendings",
		Short: "List collections not yet settled with the office",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			entries, err := client.PendingReport(ctx, skip, limit)
			if err != nil {
				return fmt.Errorf("failed to get pending report: %w", err)
			}
			if len(entries) == 0 {
				fmt.Println(cli.SubtleStyle.Render("Nothing pending."))
				return nil
			}

			return printReportEntries(entries)
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "number of entries to skip")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to list")
	return cmd
}

func reportMarkPaidCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "mark-paid <entry-id>",
		Short: "Settle a pending report entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			if !yes {
				confirmer := cli.NewConfirmer(os.Stdin, os.Stdout)
				ok, err := confirmer.Confirm(ctx,
					fmt.Sprintf("Mark report entry %d as settled?", id))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.FormatWarning("Entry left pending."))
					return nil
				}
			}

			if err := client.MarkAsPaid(ctx, id); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Entry marked as settled."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "settle without confirmation")
	return cmd
}

func reportExportCmd() *cobra.Command {
	var (
		filterFlags reportFilterFlags
		outPath     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the report to CSV",
		Long: `Export all matching report entries to a CSV file, paging through the
server in batches.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			filter, err := filterFlags.parse()
			if err != nil {
				return err
			}

			client, _, err := newAuthedClient(ctx)
			if err != nil {
				return err
			}

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outPath, err)
			}
			defer func() { _ = out.Close() }()

			writer := csv.NewWriter(out)
			if err := writer.Write([]string{
				"entry_id", "record", "plan_type", "pay_date",
				"member", "phone", "amount", "late_fee", "collected_by", "status",
			}); err != nil {
				return fmt.Errorf("failed to write CSV header: %w", err)
			}

			entries, total, err := client.Report(ctx, filter, 0, exportPageSize)
			if err != nil {
				return fmt.Errorf("failed to get report: %w", err)
			}

			bar := progressbar.NewOptions64(total,
				progressbar.OptionSetDescription("Exporting"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			written := 0
			for len(entries) > 0 {
				for i := range entries {
					if err := writeReportRow(writer, &entries[i]); err != nil {
						return err
					}
				}
				written += len(entries)
				_ = bar.Add(len(entries))

				if int64(written) >= total || len(entries) < exportPageSize {
					break
				}
				entries, _, err = client.Report(ctx, filter, written, exportPageSize)
				if err != nil {
					return fmt.Errorf("failed to get report page: %w", err)
				}
			}

			writer.Flush()
			if err := writer.Error(); err != nil {
				return fmt.Errorf("failed to write CSV: %w", err)
			}
			_ = bar.Finish()

			fmt.Println(cli.FormatSuccess(
				fmt.Sprintf("Exported %d entries to %s.", written, outPath)))
			return nil
		},
	}

	filterFlags.bind(cmd)
	cmd.Flags().StringVar(&outPath, "out", "report.csv", "output CSV path")
	return cmd
}

func printReportEntries(entries []model.ReportEntry) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	header := cli.TableHeaderStyle
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		header.Render("ID"),
		header.Render("Record"),
		header.Render("Date"),
		header.Render("Member"),
		header.Render("Amount"),
		header.Render("Late fee"),
		header.Render("Status"))

	for _, e := range entries {
		code, err := reportRecordCode(&e)
		if err != nil {
			return err
		}
		name := ""
		if e.User != nil {
			name = e.User.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			code,
			e.PayDate.Format("2006-01-02"),
			name,
			format.Currency(e.Amount),
			format.Currency(e.LateFee),
			e.Status)
	}
	return nil
}

func writeReportRow(writer *csv.Writer, e *model.ReportEntry) error {
	code, err := reportRecordCode(e)
	if err != nil {
		return err
	}
	name, phone := "", ""
	if e.User != nil {
		name = e.User.Name
		phone = e.User.Phone
	}
	return writer.Write([]string{
		fmt.Sprintf("%d", e.ID),
		code,
		e.PlanType,
		e.PayDate.Format("2006-01-02"),
		name,
		phone,
		e.Amount.StringFixed(2),
		e.LateFee.StringFixed(2),
		e.CollectedBy,
		e.Status,
	})
}

// reportRecordCode renders the display code of the account a report
// entry was collected against.
func reportRecordCode(e *model.ReportEntry) (string, error) {
	switch e.PlanType {
	case "FD":
		return format.RecordID(e.RecordID, format.CategoryFD)
	case "RD":
		return format.RecordID(e.RecordID, format.CategoryRD)
	default:
		return format.RecordID(e.RecordID, format.CategoryLoan)
	}
}
