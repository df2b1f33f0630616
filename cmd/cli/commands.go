package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amirasaad/pocketpilot/infra/initializer"
	"github.com/amirasaad/pocketpilot/pkg/config"
	"github.com/amirasaad/pocketpilot/pkg/domain/budget"
	"github.com/amirasaad/pocketpilot/pkg/domain/voice"
	"github.com/amirasaad/pocketpilot/pkg/parser"
	usersvc "github.com/amirasaad/pocketpilot/pkg/service/user"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	label   = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen)
	warn    = color.New(color.FgYellow)
)

func field(w io.Writer, name string, value any) {
	label.Fprintf(w, "%-18s", name+":")
	fmt.Fprintln(w, value)
}

// clarify prints the parser's question instead of failing.
func clarify(w io.Writer, err error) error {
	var ce *parser.ClarificationError
	if errors.As(err, &ce) {
		warn.Fprintf(w, "Need %s: %s\n", ce.Slot, ce.Prompt)
		return nil
	}
	if errors.Is(err, parser.ErrNotFinancial) {
		warn.Fprintln(w, "Not a financial message.")
		return nil
	}
	return err
}

func parseSMSCmd() *cobra.Command {
	var domains []string
	cmd := &cobra.Command{
		Use:   "parse-sms <text>",
		Short: "Extract amount, type and domain from a bank SMS",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			sms, err := parser.ParseSMS(strings.Join(args, " "), domains)
			if err != nil {
				return clarify(w, err)
			}
			field(w, "Amount", sms.Amount.StringFixed(2))
			field(w, "Type", sms.Type)
			domain := "-"
			if sms.DomainIndex >= 0 {
				domain = domains[sms.DomainIndex]
			}
			field(w, "Domain", domain)
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&domains, "domains", "d", nil, "Domain names to match, comma separated")
	return cmd
}

func planCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <text>",
		Short: `Build a voice budget plan from text such as "20000 for 30 days"`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			d, err := parser.ParseDuration(strings.Join(args, " "))
			if err != nil {
				return clarify(w, err)
			}
			plan, err := voice.GeneratePlan(d.Amount, d.Days)
			if err != nil {
				return err
			}
			field(w, "Amount", d.Amount.String())
			field(w, "Days", d.Days)
			field(w, "Daily allowed", plan.DailyAllowed.String())
			field(w, "Weekly budget", plan.WeeklyBudget.String())
			field(w, "Emergency buffer", plan.EmergencyBuffer.String())
			field(w, "Savings", plan.SavingsSuggestion.String())
			c := plan.Categories
			field(w, "Essentials", c.Essentials.String())
			field(w, "Food", c.Food.String())
			field(w, "Transport", c.Transport.String())
			field(w, "Savings bucket", c.Savings.String())
			field(w, "Misc", c.Misc.String())
			return nil
		},
	}
}

// parseSpend reads name=amount pairs.
func parseSpend(pairs []string) ([]budget.Spend, error) {
	out := make([]budget.Spend, 0, len(pairs))
	for _, p := range pairs {
		name, raw, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("spend %q must look like name=amount", p)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("spend %q: %w", p, err)
		}
		out = append(out, budget.Spend{
			DomainID:   uuid.New(),
			DomainName: strings.TrimSpace(name),
			Amount:     amount,
		})
	}
	return out, nil
}

func budgetCmd() *cobra.Command {
	var (
		total string
		days  int
		spend []string
	)
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Split a budget across domains by last month's spending",
		Example: `  pocketpilot budget --total 1000 --days 10 --spend food=300 --spend travel=100`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			amount, err := decimal.NewFromString(total)
			if err != nil {
				return fmt.Errorf("total: %w", err)
			}
			selection, err := parseSpend(spend)
			if err != nil {
				return err
			}
			plan, err := budget.GeneratePlan(amount, days, selection)
			if err != nil {
				return err
			}
			if plan.Fallback {
				warn.Fprintln(w, "No spending history, splitting equally.")
			}
			for _, a := range plan.Breakdown {
				label.Fprintf(w, "%-18s", a.DomainName+":")
				fmt.Fprintf(w, "%s per day, %s total\n", a.DailyLimit.StringFixed(2), a.TotalLimit.StringFixed(2))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&total, "total", "", "Total budget")
	cmd.Flags().IntVar(&days, "days", 30, "Number of days")
	cmd.Flags().StringArrayVar(&spend, "spend", nil, "Historical spend as name=amount, repeatable")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("spend")
	return cmd
}

// readPassword prompts without echo on a terminal and reads one line
// otherwise.
func readPassword(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.OutOrStdout(), "Password: ")
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		return string(raw), err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func signupCmd() *cobra.Command {
	var (
		username string
		email    string
		envFile  string
	)
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account in the configured database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readPassword(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			deps, err := initializer.InitializeDependencies(cfg)
			if err != nil {
				return err
			}
			u, err := usersvc.New(deps.Uow, deps.Logger).
				Signup(context.Background(), username, email, password)
			if err != nil {
				return err
			}
			success.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", u.Username, u.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&email, "email", "e", "", "Email address")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Environment file to load")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
