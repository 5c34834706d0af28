package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/servisthird/coreledger/internal/seed"
	"github.com/servisthird/coreledger/internal/store"
)

func newDemoCommand() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a sample flow against an in-memory ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), userID)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "demo-user", "user to bootstrap")

	return cmd
}

func runDemo(out io.Writer, userID string) error {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(store.NewMemoryGateway(), seed.DemoSource{}, logger)
	ctx := context.Background()

	accounts, err := st.Accounts(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading accounts: %w", err)
	}

	fmt.Fprintf(out, "Accounts for %s:\n", userID)
	for _, a := range accounts {
		fmt.Fprintf(out, "  %-14s %-20s %12s  %s\n",
			a.AccountNumber, a.AccountName, a.Balance.StringFixed(2), a.AccountType)
	}

	from, to := accounts[0], accounts[1]
	amount := decimal.NewFromInt(100)
	ref, err := st.Transfer(ctx, userID, store.TransferParams{
		FromAccountID: from.AccountID,
		ToAccountID:   to.AccountID,
		Amount:        amount,
		Description:   "Demo transfer",
	})
	if err != nil {
		return fmt.Errorf("transferring: %w", err)
	}
	fmt.Fprintf(out, "\nTransferred %s from %s to %s (ref %s)\n",
		amount.StringFixed(2), from.AccountName, to.AccountName, ref)

	txns, err := st.Transactions(ctx, userID, "")
	if err != nil {
		return fmt.Errorf("loading transactions: %w", err)
	}
	fmt.Fprintf(out, "\nRecent transactions:\n")
	for i, t := range txns {
		if i == 5 {
			break
		}
		fmt.Fprintf(out, "  %s %-8s %10s  %s\n", t.TransactionID, t.Type, t.Amount.StringFixed(2), t.Description)
	}

	budget, err := st.Budget(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading budget: %w", err)
	}
	fmt.Fprintf(out, "\nBudget (monthly limit %s):\n", budget.MonthlyLimit.StringFixed(2))
	for _, c := range budget.Categories {
		fmt.Fprintf(out, "  %-16s %8s spent of %8s\n", c.Name, c.Spent.StringFixed(2), c.Limit.StringFixed(2))
	}

	return nil
}
