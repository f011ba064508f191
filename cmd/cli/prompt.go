package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"binomial-pricer/internal/model"
)

// errNoInput is returned when input ends before a value is read.
var errNoInput = errors.New("no more input")

// Prompter wraps an input scanner and output writer for interactive prompts.
// Inject a custom reader/writer for tests.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompterFromReader creates a Prompter with custom reader/writer (for tests).
func NewPrompterFromReader(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(r),
		out:     w,
	}
}

// Float prompts until the answer parses as a float.
func (p *Prompter) Float(prompt string) (float64, error) {
	for {
		fmt.Fprint(p.out, prompt)
		if !p.scanner.Scan() {
			return 0, p.scanErr()
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(p.scanner.Text()), 64)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(p.out, "Not a number: %q\n", p.scanner.Text())
	}
}

// Int prompts until the answer parses as an integer.
func (p *Prompter) Int(prompt string) (int, error) {
	for {
		fmt.Fprint(p.out, prompt)
		if !p.scanner.Scan() {
			return 0, p.scanErr()
		}
		v, err := strconv.Atoi(strings.TrimSpace(p.scanner.Text()))
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(p.out, "Not a whole number: %q\n", p.scanner.Text())
	}
}

// scanErr reports why Scan stopped: a read error, or errNoInput at EOF.
func (p *Prompter) scanErr() error {
	if err := p.scanner.Err(); err != nil {
		return err
	}
	return errNoInput
}

// Contract asks for the six pricing inputs in the classic order.
func (p *Prompter) Contract() (model.ContractParams, error) {
	var c model.ContractParams
	var err error
	if c.SpotPrice, err = p.Float("Enter the current price of the stock: "); err != nil {
		return c, err
	}
	if c.Volatility, err = p.Float("Enter the volatility: "); err != nil {
		return c, err
	}
	if c.ExpiryYears, err = p.Float("Enter the expiration period of the option in years: "); err != nil {
		return c, err
	}
	if c.RiskFreeRate, err = p.Float("Enter the risk-free rate of interest: "); err != nil {
		return c, err
	}
	if c.Strike, err = p.Float("Enter the strike price for the option: "); err != nil {
		return c, err
	}
	if c.Steps, err = p.Int("Enter the number of times the stock changes value till expiry: "); err != nil {
		return c, err
	}
	return c, nil
}
