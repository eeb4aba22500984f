// Package app provides the top-level application lifecycle for the merchant
// game. It wires the engine from configuration and runs the interactive
// command loop until the player quits or the context is cancelled.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mercatorgames/tycoon/internal/catalog"
	"github.com/mercatorgames/tycoon/internal/config"
	"github.com/mercatorgames/tycoon/internal/engine"
	"github.com/mercatorgames/tycoon/internal/service"
)

// App is the root application object. It owns the configuration, logger, and
// the I/O streams of the command loop.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	in     io.Reader
	out    io.Writer
}

// New creates a new App reading commands from in and printing to out.
func New(cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "app")),
		in:     in,
		out:    out,
	}
}

// Run builds the engine and processes commands until EOF, "quit", or context
// cancellation.
func (a *App) Run(ctx context.Context) error {
	eng, err := engine.New(*a.cfg, a.logger)
	if err != nil {
		return fmt.Errorf("app: build engine: %w", err)
	}

	fmt.Fprintf(a.out, "Merchant Tycoon. You start in %s with $%d. Type \"help\" for commands.\n",
		eng.CurrentCity().Name, eng.State().Cash)

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(a.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Fprint(a.out, "> ")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			quit, err := a.dispatch(eng, strings.Fields(strings.TrimSpace(line)))
			if err != nil {
				fmt.Fprintf(a.out, "error: %v\n", err)
			}
			if quit {
				return nil
			}
		}
	}
}

// dispatch runs one command. It returns true when the player quits.
func (a *App) dispatch(eng *engine.Engine, args []string) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}
	cmd := strings.ToLower(args[0])
	args = args[1:]

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		a.printHelp()
		return false, nil
	case "status":
		a.printStatus(eng)
		return false, nil
	case "cities":
		a.printCities(eng)
		return false, nil
	case "prices":
		a.printGoodsPrices(eng)
		return false, nil
	case "assets":
		a.printAssetPrices(eng)
		return false, nil
	case "lots":
		a.printLots(eng)
		return false, nil
	case "portfolio":
		a.printPortfolio(eng)
		return false, nil
	case "loans":
		a.printLoans(eng)
		return false, nil
	case "bank":
		a.printBank(eng)
		return false, nil
	case "messages":
		a.printMessages(eng)
		return false, nil
	}

	msg, err := a.runAction(eng, cmd, args)
	if err != nil {
		return false, err
	}
	if msg != "" {
		fmt.Fprintln(a.out, msg)
	}
	return false, nil
}

func (a *App) runAction(eng *engine.Engine, cmd string, args []string) (string, error) {
	switch cmd {
	case "buy":
		good, qty, err := nameAndQty(args)
		if err != nil {
			return "", err
		}
		return eng.Buy(good, qty)
	case "sell":
		good, qty, err := nameAndQty(args)
		if err != nil {
			return "", err
		}
		return eng.Sell(good, qty)
	case "selllot":
		id, qty, err := nameAndQty(args)
		if err != nil {
			return "", err
		}
		return eng.SellLot(id, qty)
	case "invest":
		sym, qty, err := nameAndQty(args)
		if err != nil {
			return "", err
		}
		return eng.BuyAsset(strings.ToUpper(sym), qty)
	case "divest":
		sym, qty, err := nameAndQty(args)
		if err != nil {
			return "", err
		}
		return eng.SellAsset(strings.ToUpper(sym), qty)
	case "divestlot":
		id, qty, err := nameAndQty(args)
		if err != nil {
			return "", err
		}
		return eng.SellAssetLot(id, qty)
	case "deposit":
		n, err := oneAmount(args)
		if err != nil {
			return "", err
		}
		return eng.Deposit(n)
	case "withdraw":
		n, err := oneAmount(args)
		if err != nil {
			return "", err
		}
		return eng.Withdraw(n)
	case "loan":
		n, err := oneAmount(args)
		if err != nil {
			return "", err
		}
		return eng.TakeLoan(n)
	case "repay":
		id, n, err := nameAndQty(args)
		if err != nil {
			return "", err
		}
		return eng.RepayLoan(id, n)
	case "extend":
		count := 1
		if len(args) == 1 {
			c, err := strconv.Atoi(args[0])
			if err != nil || c < 1 {
				return "", fmt.Errorf("app: extend: bad count %q", args[0])
			}
			count = c
		}
		return eng.ExtendCargo(count)
	case "lotto":
		return eng.BuyLottoTicket()
	case "travel":
		if len(args) != 1 {
			return "", fmt.Errorf("app: travel: usage: travel <city>")
		}
		idx, err := resolveCity(args[0])
		if err != nil {
			return "", err
		}
		return eng.Travel(idx)
	case "save":
		return eng.Save()
	case "load":
		return eng.Load()
	default:
		return "", fmt.Errorf("app: unknown command %q (try \"help\")", cmd)
	}
}

// resolveCity accepts a catalog index or a case-insensitive city name.
func resolveCity(arg string) (int, error) {
	if idx, err := strconv.Atoi(arg); err == nil {
		return idx, nil
	}
	for i, c := range catalog.Cities {
		if strings.EqualFold(c.Name, arg) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("app: unknown city %q", arg)
}

func nameAndQty(args []string) (string, int64, error) {
	if len(args) != 2 {
		return "", 0, fmt.Errorf("app: expected <name> <quantity>")
	}
	qty, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("app: bad quantity %q", args[1])
	}
	return args[0], qty, nil
}

func oneAmount(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("app: expected <amount>")
	}
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("app: bad amount %q", args[0])
	}
	return n, nil
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `commands:
  status | cities | prices | assets | lots | portfolio | loans | bank | messages
  buy <good> <qty>        sell <good> <qty>       selllot <lot-id> <qty>
  invest <symbol> <qty>   divest <symbol> <qty>   divestlot <lot-id> <qty>
  deposit <amount>        withdraw <amount>
  loan <amount>           repay <loan-id> <amount>
  extend [count]          lotto
  travel <city>           save | load | quit
`)
}

func (a *App) printStatus(eng *engine.Engine) {
	st := eng.State()
	fmt.Fprintf(a.out, "Day %d in %s. Cash $%d, bank $%d, debt $%d, wealth $%d.\n",
		st.Day, eng.CurrentCity().Name, st.Cash, st.Bank.Balance, st.Debt, eng.Wealth())
	fmt.Fprintf(a.out, "Cargo %d/%d, next extension $%d, travel fee $%d, credit capacity $%d.\n",
		eng.CargoUsed(), st.MaxCargo, eng.NextCargoExtensionCost(), eng.TravelFee(), eng.CreditCapacity())
}

func (a *App) printCities(eng *engine.Engine) {
	for i, c := range catalog.Cities {
		marker := " "
		if i == eng.State().CurrentCity {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %2d  %s, %s\n", marker, i, c.Name, c.Country)
	}
}

func (a *App) printGoodsPrices(eng *engine.Engine) {
	book := eng.Book()
	for _, g := range catalog.Goods {
		price := book.Goods[g.Name]
		prev := book.GoodsPrev[g.Name]
		held := eng.State().Inventory[g.Name]
		fmt.Fprintf(a.out, "%-22s $%-8d prev $%-8d held %d\n", g.Name, price, prev, held)
	}
}

func (a *App) printAssetPrices(eng *engine.Engine) {
	book := eng.Book()
	for _, as := range catalog.Assets {
		price := book.Assets[as.Symbol]
		held := eng.State().Portfolio[as.Symbol]
		fmt.Fprintf(a.out, "%-6s %-10s $%-12s held %d\n", as.Symbol, as.Class, price.StringFixed(2), held)
	}
}

func (a *App) printLots(eng *engine.Engine) {
	for _, lot := range eng.State().PurchaseLots {
		fmt.Fprintf(a.out, "%s  %-22s qty %-6d paid $%-8d day %d in %s\n",
			lot.ID, lot.Good, lot.Quantity, lot.UnitPrice, lot.Day, lot.City)
	}
}

func (a *App) printPortfolio(eng *engine.Engine) {
	st := eng.State()
	for _, lot := range st.InvestmentLots {
		fmt.Fprintf(a.out, "%s  %-6s qty %-6d paid $%-10s held %d days\n",
			lot.ID, lot.Symbol, lot.Quantity, lot.UnitPrice.StringFixed(2), lot.DaysHeld)
	}
	fmt.Fprintf(a.out, "portfolio value: $%s\n", service.PortfolioValue(st, eng.Book()).StringFixed(2))
}

func (a *App) printLoans(eng *engine.Engine) {
	st := eng.State()
	for _, l := range st.Loans {
		status := "open"
		if l.Repaid {
			status = "repaid"
		}
		fmt.Fprintf(a.out, "%s  principal $%-8d remaining $%-8d APR %.1f%%  day %d  %s\n",
			l.ID, l.Principal, l.Remaining, l.RateAnnual*100, l.DayTaken, status)
	}
	fmt.Fprintf(a.out, "today's loan rate: %.1f%% APR, capacity $%d\n",
		st.LoanRateToday*100, eng.CreditCapacity())
}

func (a *App) printBank(eng *engine.Engine) {
	st := eng.State()
	fmt.Fprintf(a.out, "balance $%d at %.2f%% APR\n", st.Bank.Balance, st.Bank.RateAnnual*100)
	for _, tx := range st.Bank.Transactions {
		fmt.Fprintf(a.out, "day %-4d %-10s $%-10d balance $%d  %s\n",
			tx.Day, tx.Type, tx.Amount, tx.BalanceAfter, tx.Title)
	}
}

func (a *App) printMessages(eng *engine.Engine) {
	for _, m := range eng.State().Messages {
		fmt.Fprintf(a.out, "day %-4d [%s] %s\n", m.Day, m.Level, m.Text)
	}
}
