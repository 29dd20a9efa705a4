// Command bigintctl is the test-vector driver for the bigint library: it
// runs an arithmetic or division operation over every (x, y) pair in a
// pair of operand files and writes one result per line, in the format
// original_source/autobahn_test.c's bi_test/bi_test_div produce.
package main

// SPDX-License-Identifier: Apache-2.0

import (
	"fmt"
	"log"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bantling/bigint/bigint"
	"github.com/bantling/bigint/vector"
)

// fileConfig is the shape of an optional TOML config file, decoded with
// go-toml/v2 into a generic map and then mapstructure-decoded into this
// struct — the same two-step decode the teacher's config-loading code
// uses when accepting a loosely-typed document.
type fileConfig struct {
	OperandXFile string `mapstructure:"operand_x_file"`
	OperandYFile string `mapstructure:"operand_y_file"`
	ResultFile   string `mapstructure:"result_file"`
	ResultQFile  string `mapstructure:"result_q_file"`
	ResultRFile  string `mapstructure:"result_r_file"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("decoding %s: %w", path, err)
	}

	return cfg, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "bigintctl",
		Short: "Test-vector driver for the bigint arithmetic library",
	}

	var configPath string
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Optional TOML config file (operand/result file defaults)")

	// arith command: run add, sub, mul (schoolbook or karatsuba), or square
	// over every operand pair.
	var arithOp string
	var arithX, arithY, arithResult string

	arithCmd := &cobra.Command{
		Use:   "arith",
		Short: "Run add/sub/mul/square over a pair of operand files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadFileConfig(configPath)
			if err != nil {
				return err
			}

			xPath := firstNonEmpty(arithX, cfg.OperandXFile)
			yPath := firstNonEmpty(arithY, cfg.OperandYFile)
			resultPath := firstNonEmpty(arithResult, cfg.ResultFile)

			return runArith(arithOp, xPath, yPath, resultPath)
		},
	}
	arithCmd.Flags().StringVar(&arithOp, "op", "add", "Operation: add, sub, mul, karatsuba, square")
	arithCmd.Flags().StringVar(&arithX, "x", "", "Operand x file path")
	arithCmd.Flags().StringVar(&arithY, "y", "", "Operand y file path")
	arithCmd.Flags().StringVar(&arithResult, "result", "", "Result file path")

	// div command: run division over every operand pair, writing DIV0! for
	// a zero divisor.
	var divX, divY, divQ, divR string

	divCmd := &cobra.Command{
		Use:   "div",
		Short: "Run division over a pair of operand files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadFileConfig(configPath)
			if err != nil {
				return err
			}

			xPath := firstNonEmpty(divX, cfg.OperandXFile)
			yPath := firstNonEmpty(divY, cfg.OperandYFile)
			qPath := firstNonEmpty(divQ, cfg.ResultQFile)
			rPath := firstNonEmpty(divR, cfg.ResultRFile)

			return runDiv(xPath, yPath, qPath, rPath)
		},
	}
	divCmd.Flags().StringVar(&divX, "x", "", "Operand x file path")
	divCmd.Flags().StringVar(&divY, "y", "", "Operand y file path")
	divCmd.Flags().StringVar(&divQ, "quotient", "", "Quotient result file path")
	divCmd.Flags().StringVar(&divR, "remainder", "", "Remainder result file path")

	rootCmd.AddCommand(arithCmd, divCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func runArith(op, xPath, yPath, resultPath string) error {
	xFile, err := os.Open(xPath)
	if err != nil {
		log.Printf("bigintctl: cannot open operand x file: %v", err)
		return err
	}
	defer xFile.Close()

	yFile, err := os.Open(yPath)
	if err != nil {
		log.Printf("bigintctl: cannot open operand y file: %v", err)
		return err
	}
	defer yFile.Close()

	resultFile, err := os.Create(resultPath)
	if err != nil {
		log.Printf("bigintctl: cannot create result file: %v", err)
		return err
	}
	defer resultFile.Close()

	pairs, err := vector.ReadOperandPairs(xFile, yFile)
	if err != nil {
		log.Printf("bigintctl: reading operand pairs: %v", err)
		return err
	}

	for i, pair := range pairs {
		var result *bigint.Int

		switch op {
		case "add":
			result = bigint.Add(pair.X, pair.Y)
		case "sub":
			result = bigint.Sub(pair.X, pair.Y)
		case "mul":
			result = bigint.SchoolbookMultiply(pair.X, pair.Y)
		case "karatsuba":
			result = bigint.KaratsubaMultiply(pair.X, pair.Y)
		case "square":
			result = bigint.Square(pair.X)
		default:
			return fmt.Errorf("unknown --op %q: use add, sub, mul, karatsuba, or square", op)
		}

		if err := vector.WriteResult(resultFile, result); err != nil {
			log.Printf("bigintctl: pair %d: writing result: %v", i, err)
			return err
		}
	}

	fmt.Printf("bigintctl: ran %s over %d operand pairs\n", op, len(pairs))
	return nil
}

func runDiv(xPath, yPath, qPath, rPath string) error {
	xFile, err := os.Open(xPath)
	if err != nil {
		log.Printf("bigintctl: cannot open operand x file: %v", err)
		return err
	}
	defer xFile.Close()

	yFile, err := os.Open(yPath)
	if err != nil {
		log.Printf("bigintctl: cannot open operand y file: %v", err)
		return err
	}
	defer yFile.Close()

	qFile, err := os.Create(qPath)
	if err != nil {
		log.Printf("bigintctl: cannot create quotient file: %v", err)
		return err
	}
	defer qFile.Close()

	rFile, err := os.Create(rPath)
	if err != nil {
		log.Printf("bigintctl: cannot create remainder file: %v", err)
		return err
	}
	defer rFile.Close()

	pairs, err := vector.ReadOperandPairs(xFile, yFile)
	if err != nil {
		log.Printf("bigintctl: reading operand pairs: %v", err)
		return err
	}

	failures := 0
	for i, pair := range pairs {
		if pair.Y.IsZero() {
			if err := vector.WriteDivisionByZero(qFile); err != nil {
				return err
			}
			if err := vector.WriteDivisionByZero(rFile); err != nil {
				return err
			}
			continue
		}

		q, r, err := bigint.WordLongDivide(pair.X, pair.Y)
		if err != nil {
			log.Printf("bigintctl: pair %d: %v", i, err)
			failures++
			continue
		}

		if err := vector.WriteResult(qFile, q); err != nil {
			return err
		}
		if err := vector.WriteResult(rFile, r); err != nil {
			return err
		}
	}

	fmt.Printf("bigintctl: ran division over %d operand pairs, %d failures\n", len(pairs), failures)
	if failures > 0 {
		return fmt.Errorf("%d division operations failed", failures)
	}
	return nil
}
