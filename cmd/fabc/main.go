package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fabrikgo/fabrik/blueprint"
	"github.com/fabrikgo/fabrik/fab"
)

var (
	bpPath string
	target string
)

var rootCmd = &cobra.Command{
	Use:   "fabc",
	Short: "Evaluate fabrik blueprints",
}

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Build a blueprint node against the built-in factories and print the value",
	RunE:  runEval,
}

var factoriesCmd = &cobra.Command{
	Use:   "factories",
	Short: "List the built-in factories and their signatures",
	Run:   runFactories,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&bpPath, "blueprint", "b", "blueprint.yaml", "blueprint file (yaml or json)")
	evalCmd.Flags().StringVarP(&target, "target", "t", "", "node to build (defaults to the blueprint's target)")
	rootCmd.AddCommand(evalCmd, factoriesCmd)
}

// newLogger builds a component-tagged zerolog logger on stderr. The
// APP_ENV variable switches to the human-readable console format.
func newLogger(component string) zerolog.Logger {
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		return zerolog.New(writer).With().Timestamp().Str("component", component).Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Str("component", component).Logger()
}

// builtins is the demo registry available to evaluated blueprints.
//
// Integer factories operate on int, which is what YAML integer literals
// decode to; the *f variants operate on float64 for JSON numbers.
func builtins() *blueprint.Registry {
	return blueprint.NewRegistry().
		Provide("add", fab.Func2(func(a, b int) int { return a + b })).
		Provide("sub", fab.Func2(func(a, b int) int { return a - b })).
		Provide("mul", fab.Func2(func(a, b int) int { return a * b })).
		Provide("double", fab.Func1(func(v int) int { return v * 2 })).
		Provide("neg", fab.Func1(func(v int) int { return -v })).
		Provide("addf", fab.Func2(func(a, b float64) float64 { return a + b })).
		Provide("mulf", fab.Func2(func(a, b float64) float64 { return a * b })).
		Provide("itoa", fab.Func1(strconv.Itoa)).
		Provide("concat", fab.Func2(func(a, b string) string { return a + b })).
		Provide("upper", fab.Func1(strings.ToUpper)).
		Provide("lower", fab.Func1(strings.ToLower)).
		Provide("strlen", fab.Func1(func(s string) int { return len(s) }))
}

func runEval(cmd *cobra.Command, args []string) error {
	log := newLogger("eval")

	bp, err := blueprint.Load(bpPath)
	if err != nil {
		return fmt.Errorf("load blueprint: %w", err)
	}

	name := target
	if name == "" {
		name = bp.Target
	}

	g, err := bp.BuildNode(builtins(), name)
	if err != nil {
		return fmt.Errorf("build node %q: %w", name, err)
	}

	v := g.Invoke()
	log.Info().
		Str("node", name).
		Str("type", v.Type().String()).
		Msg("blueprint evaluated")

	fmt.Println(v.Any())
	return nil
}

func runFactories(cmd *cobra.Command, args []string) {
	reg := builtins()
	for _, name := range reg.Names() {
		f := reg.MustGet(name)
		argTypes := f.ArgTypes()
		sig := make([]string, 0, len(argTypes))
		for _, ref := range argTypes {
			sig = append(sig, ref.String())
		}
		fmt.Printf("%s(%s) -> %s\n", name, strings.Join(sig, ", "), f.OutputType())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log := newLogger("main")
		log.Error().Err(err).Msg("fabc failed")
		os.Exit(1)
	}
}
