// Command cli is an operator tool that drives the services directly against
// the database, bypassing the HTTP layer.
package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/eaglebank/eaglebank/infra/initializer"
	"github.com/eaglebank/eaglebank/pkg/app"
	"github.com/eaglebank/eaglebank/pkg/config"
	"github.com/eaglebank/eaglebank/pkg/currency"
	accountdomain "github.com/eaglebank/eaglebank/pkg/domain/account"
	userdomain "github.com/eaglebank/eaglebank/pkg/domain/user"
	accountsvc "github.com/eaglebank/eaglebank/pkg/service/account"
	ledgersvc "github.com/eaglebank/eaglebank/pkg/service/ledger"
	usersvc "github.com/eaglebank/eaglebank/pkg/service/user"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func usage() error {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  create-user <name> <email> <phone>")
	fmt.Println("  open-account <user_id> <name>")
	fmt.Println("  deposit <user_id> <account_number> <amount>")
	fmt.Println("  withdraw <user_id> <account_number> <amount>")
	fmt.Println("  balance <user_id> <account_number>")
	return nil
}

func run(args []string) error {
	if len(args) < 1 {
		return usage()
	}

	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	a := app.New(*deps, cfg)
	ctx := context.Background()

	switch args[0] {
	case "create-user":
		if len(args) < 4 {
			return fmt.Errorf("usage: create-user <name> <email> <phone>")
		}
		return createUser(ctx, a.UserService, args[1], args[2], args[3])
	case "open-account":
		if len(args) < 3 {
			return fmt.Errorf("usage: open-account <user_id> <name>")
		}
		account, err := a.AccountService.Create(ctx, args[1], accountsvc.CreateInput{
			Name:        args[2],
			AccountType: accountdomain.Personal,
		})
		if err != nil {
			return err
		}
		color.Green("Account opened: %s (sort code %s)", account.AccountNumber, account.SortCode)
		return nil
	case "deposit", "withdraw":
		if len(args) < 4 {
			return fmt.Errorf("usage: %s <user_id> <account_number> <amount>", args[0])
		}
		amount, err := decimal.NewFromString(args[3])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[3], err)
		}
		kind := accountdomain.Deposit
		if args[0] == "withdraw" {
			kind = accountdomain.Withdrawal
		}
		txn, err := a.LedgerService.CreateTransaction(ctx, args[2], args[1], ledgersvc.CreateInput{
			Amount:   amount,
			Currency: currency.DefaultCurrency,
			Type:     kind,
		})
		if err != nil {
			return err
		}
		color.Green("Transaction %s posted: %s %s %s", txn.ID, txn.Type, txn.Amount, txn.Currency)
		return nil
	case "balance":
		if len(args) < 3 {
			return fmt.Errorf("usage: balance <user_id> <account_number>")
		}
		account, err := a.AccountService.Get(ctx, args[2], args[1])
		if err != nil {
			return err
		}
		color.Green("Account %s balance: %s %s", account.AccountNumber, account.Balance, account.Currency)
		return nil
	default:
		return usage()
	}
}

func createUser(ctx context.Context, svc *usersvc.Service, name, email, phone string) error {
	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	u, err := svc.Create(ctx, usersvc.CreateInput{
		Name:        name,
		Email:       email,
		Password:    string(password),
		PhoneNumber: phone,
		Address:     userdomain.Address{},
	})
	if err != nil {
		return err
	}
	color.Green("User created: %s", u.ID)
	return nil
}
