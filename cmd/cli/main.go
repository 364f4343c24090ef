package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/erpledger/internal/adapter/http/dto"
)

const dateLayout = "2006-01-02"

type options struct {
	baseURL string
	timeout time.Duration
	json    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "erpledger-cli",
		Short:        "ERP ledger CLI tool",
		Long:         `A command line interface for reading statements and reconciliation reports from the ERP ledger API.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "url", "http://localhost:8080", "Base URL of the ERP ledger API")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "Print the raw JSON response")

	rootCmd.AddCommand(
		newStatementCmd(opts),
		newNetCmd(opts),
		newReconcileCmd(opts),
	)

	return rootCmd
}

func newStatementCmd(opts *options) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "statement <holder-id>",
		Short: "Print a holder's statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if from != "" {
				query.Set("from", from)
			}
			if to != "" {
				query.Set("to", to)
			}

			path := "/api/v1/holders/" + url.PathEscape(args[0]) + "/ledger"
			if len(query) > 0 {
				path += "?" + query.Encode()
			}

			var statement dto.StatementResponse
			raw, err := newClient(opts).get(cmd.Context(), path, &statement)
			if err != nil {
				return err
			}
			if opts.json {
				return printRaw(cmd.OutOrStdout(), raw)
			}

			return printStatement(cmd.OutOrStdout(), &statement)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day of the window (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last day of the window (YYYY-MM-DD)")

	return cmd
}

func newNetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "net <employee-id>",
		Short: "Print an employee's current salary and current debt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var net dto.EmployeeNetResponse
			raw, err := newClient(opts).get(cmd.Context(), "/api/v1/employees/"+url.PathEscape(args[0])+"/net", &net)
			if err != nil {
				return err
			}
			if opts.json {
				return printRaw(cmd.OutOrStdout(), raw)
			}

			return printEmployeeNet(cmd.OutOrStdout(), &net)
		},
	}
}

func newReconcileCmd(opts *options) *cobra.Command {
	var latest bool

	cmd := &cobra.Command{
		Use:   "reconcile [holder-id]",
		Short: "Compare cached balances with recomputed ledgers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient(opts)

			if len(args) == 1 {
				var result dto.ReconciliationResponse
				raw, err := client.get(cmd.Context(), "/api/v1/holders/"+url.PathEscape(args[0])+"/reconciliation", &result)
				if err != nil {
					return err
				}
				if opts.json {
					return printRaw(cmd.OutOrStdout(), raw)
				}
				return printReconciliation(cmd.OutOrStdout(), []*dto.ReconciliationResponse{&result})
			}

			path := "/api/v1/reconciliation"
			if latest {
				path += "/latest"
			}

			var report dto.ReconciliationReportResponse
			raw, err := client.get(cmd.Context(), path, &report)
			if err != nil {
				return err
			}
			if opts.json {
				return printRaw(cmd.OutOrStdout(), raw)
			}

			return printReport(cmd.OutOrStdout(), &report)
		},
	}

	cmd.Flags().BoolVar(&latest, "latest", false, "Show the report stored by the background refresher")

	return cmd
}

type apiClient struct {
	baseURL string
	http    *http.Client
}

func newClient(opts *options) *apiClient {
	return &apiClient{
		baseURL: opts.baseURL,
		http:    &http.Client{Timeout: opts.timeout},
	}
}

// get decodes a 200 response into out and also returns the raw body.
func (c *apiClient) get(ctx context.Context, path string, out any) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr dto.ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			if apiErr.Message != "" {
				return nil, fmt.Errorf("%s (status %d): %s", apiErr.Error, resp.StatusCode, apiErr.Message)
			}
			return nil, fmt.Errorf("%s (status %d)", apiErr.Error, resp.StatusCode)
		}
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return body, nil
}

func printRaw(w io.Writer, raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printStatement(w io.Writer, s *dto.StatementResponse) error {
	fmt.Fprintf(w, "%s (%s) %s\n\n", s.HolderName, s.HolderKind, s.HolderID)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "DATE\tDESCRIPTION\tSOURCE\tDEBIT\tCREDIT\tBALANCE\t")
	for _, e := range s.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			formatDate(e.Date),
			truncate(e.Description, 40),
			e.SourceLabel,
			e.Debit.StringFixed(2),
			e.Credit.StringFixed(2),
			e.RunningBalance.StringFixed(2),
		)
	}
	fmt.Fprintf(tw, "\tTOTAL\t\t%s\t%s\t%s\t\n",
		s.Totals.Debit.StringFixed(2),
		s.Totals.Credit.StringFixed(2),
		s.Totals.Closing.StringFixed(2),
	)
	if err := tw.Flush(); err != nil {
		return err
	}

	if s.OverCreditLimit && s.CreditLimit != nil {
		fmt.Fprintf(w, "\nWARNING: closing balance exceeds credit limit %s\n", s.CreditLimit.StringFixed(2))
	}

	return nil
}

func printEmployeeNet(w io.Writer, n *dto.EmployeeNetResponse) error {
	fmt.Fprintf(w, "%s %s\n\n", n.EmployeeName, n.EmployeeID)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		label string
		value string
	}{
		{"Base salary", n.BaseSalary.StringFixed(2)},
		{"Salary deductions", n.SalaryDeductionsTotal.StringFixed(2)},
		{"Salary to debt", n.SalaryToDebtTotal.StringFixed(2)},
		{"Current salary", n.CurrentSalary.StringFixed(2)},
		{"Debt exposure", n.TotalDebtExposure.StringFixed(2)},
		{"Debt deductions", n.DebtDeductionsTotal.StringFixed(2)},
		{"Current debt", n.CurrentDebt.StringFixed(2)},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row.label, row.value)
	}

	return tw.Flush()
}

func printReport(w io.Writer, r *dto.ReconciliationReportResponse) error {
	fmt.Fprintf(w, "Checked at:  %s\n", r.CheckedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Reconciled:  %d/%d\n", r.ReconciledHolders, r.TotalHolders)
	fmt.Fprintf(w, "Total drift: %s\n", r.TotalDrift.StringFixed(2))

	if len(r.Discrepancies) == 0 {
		fmt.Fprintln(w, "\nAll holders reconciled")
		return nil
	}

	fmt.Fprintln(w)
	return printReconciliation(w, r.Discrepancies)
}

func printReconciliation(w io.Writer, results []*dto.ReconciliationResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HOLDER\tKIND\tRECORDED\tCALCULATED\tDIFFERENCE\tSTATUS")
	for _, r := range results {
		status := "DRIFT"
		if r.IsReconciled {
			status = "OK"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.HolderID,
			r.HolderKind,
			r.RecordedBalance.StringFixed(2),
			r.CalculatedBalance.StringFixed(2),
			r.Difference.StringFixed(2),
			status,
		)
	}

	return tw.Flush()
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(dateLayout)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
