package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/app"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/domain"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/service"
	"github.com/aussiebroadwan/clientarea/pkg/slogx"
	"github.com/spf13/cobra"
)

func newCodesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codes",
		Short: "Check and repair client unique codes",
		Long: `Every client carries a unique code embedding its owner's professional code.
Access tokens are derived from it, so a missing or stale code means the
client's activation link cannot work.`,
	}

	cmd.AddCommand(newCodesAuditCommand())
	cmd.AddCommand(newCodesRepairCommand())
	return cmd
}

func newCodesAuditCommand() *cobra.Command {
	var failOnIssues bool

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "List clients whose unique code is missing or names another owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCodeService(cmd, func(ctx context.Context, codes *service.CodeService) error {
				report, err := codes.Audit(ctx)
				if err != nil {
					return err
				}
				printReport(cmd.OutOrStdout(), report)
				if failOnIssues && report.Inconsistent() > 0 {
					return fmt.Errorf("%d inconsistent unique codes", report.Inconsistent())
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&failOnIssues, "fail", false, "exit non-zero when inconsistencies are found")
	return cmd
}

func newCodesRepairCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repair",
		Short: "Assign missing codes and regenerate codes that name another owner",
		Long: `Repair is idempotent: running it again right away changes nothing.
Regenerated codes invalidate the activation links issued with the old ones.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCodeService(cmd, func(ctx context.Context, codes *service.CodeService) error {
				report, err := codes.Repair(ctx)
				printReport(cmd.OutOrStdout(), report)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "repaired: %d\n", len(report.Repaired))
				return nil
			})
		},
	}
}

func withCodeService(cmd *cobra.Command, fn func(context.Context, *service.CodeService) error) error {
	cfg := app.LoadConfig()
	logger := app.NewLogger(cfg)

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
	defer cancel()
	ctx = slogx.WithContext(ctx, logger.With("command", cmd.CommandPath()))

	st, err := app.OpenStore(ctx, cfg, logger, true)
	if err != nil {
		return err
	}
	defer st.Close()

	return fn(ctx, &service.CodeService{Store: st})
}

func printReport(w io.Writer, r domain.CodeReport) {
	fmt.Fprintf(w, "checked:    %d\n", r.Checked)
	fmt.Fprintf(w, "missing:    %d %v\n", len(r.Missing), r.Missing)
	fmt.Fprintf(w, "mismatched: %d %v\n", len(r.Mismatched), r.Mismatched)
}
