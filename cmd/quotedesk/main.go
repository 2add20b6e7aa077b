package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/quotedesk/quotedesk/internal/app"
	"github.com/quotedesk/quotedesk/internal/common"
	"github.com/quotedesk/quotedesk/internal/config"
	"github.com/quotedesk/quotedesk/internal/ui"
)

// configPaths is a custom flag type that allows multiple -config flags.
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	configFiles configPaths
	apiURL      = flag.String("api", "", "Quote backend URL (overrides config)")
	showVersion = flag.Bool("version", false, "Print version information")
)

func init() {
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("quotedesk version %s\n", config.GetFullVersion())
		os.Exit(0)
	}

	// Auto-discover config file if not specified.
	if len(configFiles) == 0 {
		if _, err := os.Stat("quotedesk.toml"); err == nil {
			configFiles = append(configFiles, "quotedesk.toml")
		}
	}

	cfg, err := config.LoadFromFiles(configFiles...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyFlagOverrides(cfg, *apiURL)

	logger := common.NewLoggerFromConfig(cfg.Logging)
	presenter := ui.NewConsolePresenter(os.Stdout)

	application, err := app.New(cfg, logger, presenter)
	if err != nil {
		logger.Error().Str("error", err.Error()).Msg("failed to initialize application")
		os.Exit(1)
	}

	ctx := context.Background()

	// Startup: populate the dataset and render the first page.
	application.LoadRequested(ctx)

	repl(ctx, application, presenter)
}

// repl maps typed commands onto the core's user intents.
func repl(ctx context.Context, application *app.App, presenter *ui.ConsolePresenter) {
	fmt.Println("commands: load | more | open N | summary SYM | tickers Q | tech SYM | fund SYM | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, arg := line, ""
		if i := strings.IndexByte(line, ' '); i >= 0 {
			cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
		}

		switch strings.ToLower(cmd) {
		case "quit", "exit":
			return

		case "load", "reload":
			application.LoadRequested(ctx)

		case "more":
			application.RevealMoreRequested()

		case "open":
			n, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("usage: open N")
				continue
			}
			symbol, ok := presenter.SymbolAt(n)
			if !ok {
				fmt.Printf("no card %d on display\n", n)
				continue
			}
			application.CardActivated(ctx, symbol)

		case "summary":
			application.SymbolSubmitted(ctx, arg)

		case "tickers":
			page, err := application.Client().Tickers(ctx, arg, 20, 0)
			if err != nil {
				presenter.ShowError(err.Error())
				continue
			}
			fmt.Printf("%d of %d symbols: %s\n", len(page.Data), page.Total, strings.Join(page.Data, ", "))

		case "tech":
			tech, err := application.Client().Technicals(ctx, strings.ToUpper(arg))
			if err != nil {
				presenter.ShowError(err.Error())
				continue
			}
			fmt.Printf("RSI %s | MACD hist %s | SMA50 %s | SMA200 %s\n",
				common.FormatRatio(tech.RSI.Latest),
				common.FormatRatio(tech.MACD.HistLatest),
				common.FormatRatio(tech.MovingAverages.SMA50Latest),
				common.FormatRatio(tech.MovingAverages.SMA200Latest),
			)

		case "fund":
			fund, err := application.Client().Fundamentals(ctx, strings.ToUpper(arg))
			if err != nil {
				presenter.ShowError(err.Error())
				continue
			}
			fmt.Printf("P/E %s | ROE %s | D/E %s | mcap %s\n",
				common.FormatRatio(fund.TrailingPE),
				common.FormatRatio(fund.ReturnOnEquity),
				common.FormatRatio(fund.DebtToEquity),
				common.FormatMarketCap(fund.MarketCap),
			)

		default:
			// A bare token is treated as a symbol submission.
			application.SymbolSubmitted(ctx, line)
		}
	}
}
