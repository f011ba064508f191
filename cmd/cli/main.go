package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"binomial-pricer/internal/analysis"
	"binomial-pricer/internal/batch"
	"binomial-pricer/internal/config"
	"binomial-pricer/internal/data"
	"binomial-pricer/internal/lattice"
	"binomial-pricer/internal/model"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "price":
		err = cmdPrice(os.Args[2:], os.Stdin, os.Stdout)
	case "batch":
		err = cmdBatch(os.Args[2:], os.Stdout)
	case "converge":
		err = cmdConverge(os.Args[2:], os.Stdout)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli price --spot 100 --vol 0.2 --expiry 1 --rate 0.05 --strike 100 --steps 10")
	fmt.Println("  cli price --interactive   (also used when no contract is given)")
	fmt.Println("  cli batch --scenarios examples/scenarios.yaml --out results/quotes.csv")
	fmt.Println("  cli converge --config examples/config.yaml --max-steps 1024 --representation recombining")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - every command accepts --config (default $PRICER_CONFIG); contract flags override the config's contract")
	fmt.Println("  - flat lattices grow as 2^steps; use --representation recombining for large step counts")
}

// commonFlags are shared by every subcommand.
type commonFlags struct {
	fs             *flag.FlagSet
	configPath     *string
	representation *string
	contract       model.ContractParams
}

func newCommonFlags(name string) *commonFlags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cf := &commonFlags{fs: fs}
	cf.configPath = fs.String("config", os.Getenv("PRICER_CONFIG"), "Path to YAML config")
	cf.representation = fs.String("representation", "", "Lattice representation: flat or recombining (default from config)")
	fs.Float64Var(&cf.contract.SpotPrice, "spot", 0, "Current price of the underlying")
	fs.Float64Var(&cf.contract.Volatility, "vol", 0, "Annualized volatility (0.2 = 20%)")
	fs.Float64Var(&cf.contract.ExpiryYears, "expiry", 0, "Time to expiry in years")
	fs.Float64Var(&cf.contract.RiskFreeRate, "rate", 0, "Risk-free rate, continuously compounded")
	fs.Float64Var(&cf.contract.Strike, "strike", 0, "Strike price")
	fs.IntVar(&cf.contract.Steps, "steps", 0, "Number of lattice steps")
	return cf
}

func (cf *commonFlags) loadConfig() (*config.Config, error) {
	if *cf.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(*cf.configPath)
}

// resolveContract overlays explicitly set flags onto the config contract.
// Unlike MergeContract, a flag set to zero still wins.
func (cf *commonFlags) resolveContract(cfg *config.Config) model.ContractParams {
	out := cfg.Contract
	cf.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "spot":
			out.SpotPrice = cf.contract.SpotPrice
		case "vol":
			out.Volatility = cf.contract.Volatility
		case "expiry":
			out.ExpiryYears = cf.contract.ExpiryYears
		case "rate":
			out.RiskFreeRate = cf.contract.RiskFreeRate
		case "strike":
			out.Strike = cf.contract.Strike
		case "steps":
			out.Steps = cf.contract.Steps
		}
	})
	return out
}

func (cf *commonFlags) pricer(cfg *config.Config) (*lattice.LatticePricer, error) {
	if *cf.representation != "" && *cf.representation != cfg.Pricer.Representation {
		rep, err := model.ParseRepresentation(*cf.representation)
		if err != nil {
			return nil, err
		}
		return lattice.New(rep, 0)
	}
	return cfg.NewPricer()
}

func cmdPrice(args []string, in io.Reader, out io.Writer) error {
	cf := newCommonFlags("price")
	interactive := cf.fs.Bool("interactive", false, "Prompt for the six inputs instead of reading flags")
	tree := cf.fs.Bool("tree", false, "Print both flat lattices level by level")
	if err := cf.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := cf.loadConfig()
	if err != nil {
		return err
	}
	pricer, err := cf.pricer(cfg)
	if err != nil {
		return err
	}

	contract := cf.resolveContract(cfg)
	// With no flags and no config contract, ask for the inputs.
	if *interactive || contract.IsZero() {
		contract, err = NewPrompterFromReader(in, out).Contract()
		if err != nil {
			return err
		}
	}

	// Build the tree first so a contract it cannot show fails before
	// anything is printed.
	var t *lattice.Tree
	if *tree {
		if t, err = pricer.Build(contract); err != nil {
			return err
		}
	}

	var price float64
	if t != nil && pricer.Name() == string(model.RepresentationFlat) {
		price = t.Root()
	} else if price, err = pricer.Price(contract); err != nil {
		return err
	}
	fmt.Fprintln(out, "The price of the stock option is", strconv.FormatFloat(price, 'g', -1, 64))

	if t != nil {
		for i := range t.Prices {
			fmt.Fprintf(out, "level %d prices: %v\n", i, t.Prices[i])
			fmt.Fprintf(out, "level %d values: %v\n", i, t.Values[i])
		}
	}
	return nil
}

func cmdBatch(args []string, out io.Writer) error {
	cf := newCommonFlags("batch")
	scenariosPath := cf.fs.String("scenarios", "examples/scenarios.yaml", "Path to YAML or JSON scenarios file")
	outPath := cf.fs.String("out", "results/quotes.csv", "Output CSV path")
	if err := cf.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := cf.loadConfig()
	if err != nil {
		return err
	}
	pricer, err := cf.pricer(cfg)
	if err != nil {
		return err
	}

	scenarios, err := data.LoadScenarios(*scenariosPath)
	if err != nil {
		return err
	}

	res, err := batch.New().Run(scenarios, pricer)
	if err != nil {
		return err
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		return err
	}
	if err := batch.WriteQuotesCSV(*outPath, res.Ledger); err != nil {
		return err
	}

	log.Printf("batch: priced %d scenarios on %s", len(res.Ledger), pricer.Name())
	fmt.Fprintf(out, "Wrote %d rows to %s\n", len(res.Ledger), *outPath)
	fmt.Fprintf(out, "Max |lattice - Black-Scholes| = %.6f\n", res.MaxAbsDiff)
	return nil
}

func cmdConverge(args []string, out io.Writer) error {
	cf := newCommonFlags("converge")
	stepList := cf.fs.String("step-list", "", "Comma-separated step counts (e.g. 1,10,100)")
	maxSteps := cf.fs.Int("max-steps", 0, "Use 1, 2, 4, ... up to this many steps (default: pricer cap)")
	if err := cf.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := cf.loadConfig()
	if err != nil {
		return err
	}
	pricer, err := cf.pricer(cfg)
	if err != nil {
		return err
	}

	steps, err := parseSteps(*stepList)
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		upTo := *maxSteps
		if upTo <= 0 || upTo > pricer.Limit() {
			upTo = pricer.Limit()
		}
		steps = analysis.DoublingSteps(upTo)
	}

	report, err := analysis.Convergence(cf.resolveContract(cfg), steps, pricer)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%-8s %-14s %-14s %-12s\n", "steps", "lattice", "black-scholes", "abs-error")
	for _, p := range report.Points {
		fmt.Fprintf(out, "%-8d %-14.6f %-14.6f %-12.6f\n", p.Steps, p.Lattice, p.BlackScholes, p.AbsError)
	}
	fmt.Fprintf(out, "pricer=%s max-error=%.6f mean-error=%.6f\n", report.Pricer, report.MaxAbsError, report.MeanAbsError)
	return nil
}

func parseSteps(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid step count %q: %w", part, err)
		}
		out = append(out, n)
	}
	return out, nil
}
