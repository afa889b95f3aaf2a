package console

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vancomm/minesweeper-console/internal/ledger"
)

const checkbookMenu = "\nWhat would you like to do? (deposit, withdraw, balance, exit): "

// Checkbook runs the ledger menu until the player exits or input runs out.
// Journal failures end the loop with an error.
func Checkbook(ctx context.Context, cb *ledger.Checkbook, in io.Reader, out io.Writer) error {
	p := newPrompter(in, out)
	p.say("Welcome to the Checkbook Application.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		action, ok := p.ask(checkbookMenu)
		if !ok {
			return p.err()
		}

		switch strings.ToLower(action) {
		case "exit":
			p.say("Exiting program. Goodbye!")
			return nil

		case "deposit":
			amount, ok := askAmount(p, "Enter the amount to deposit: $")
			if !ok {
				continue
			}
			e, err := cb.Deposit(ctx, amount)
			if err != nil {
				return err
			}
			p.say("Deposited %s", ledger.FormatAmount(e.Amount))
			p.say("Current Balance: %s", ledger.FormatAmount(e.Balance))

		case "withdraw":
			amount, ok := askAmount(p, "Enter the amount to withdraw: $")
			if !ok {
				continue
			}
			e, err := cb.Withdraw(ctx, amount)
			if errors.Is(err, ledger.ErrInsufficientFunds) {
				p.say("Error: Insufficient funds to complete the withdrawal.")
				continue
			}
			if err != nil {
				return err
			}
			p.say("Withdrew %s", ledger.FormatAmount(e.Amount))
			p.say("Current Balance: %s", ledger.FormatAmount(e.Balance))

		case "balance":
			p.say("Current Balance: %s", ledger.FormatAmount(cb.Balance()))

		case "":
			continue

		default:
			p.say("Invalid command. Please try again.")
		}
	}
}

// askAmount reads a non-negative amount. ok is false when the answer was
// rejected or input ran out.
func askAmount(p *prompter, question string) (amount decimal.Decimal, ok bool) {
	answer, ok := p.ask(question)
	if !ok {
		return amount, false
	}
	amount, err := decimal.NewFromString(answer)
	if err != nil {
		p.say("Error: Invalid input. Please enter a numeric value (e.g., 50.00).")
		return amount, false
	}
	if amount.IsNegative() {
		p.say("Error: Amount cannot be negative.")
		return amount, false
	}
	return amount, true
}
