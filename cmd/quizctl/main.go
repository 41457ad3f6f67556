// Command quizctl exercises the quiz generator outside the server: it can
// generate one quiz with the configured backend or check a saved model
// response against the quiz parser.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codeswap/backend/internal/generator"
	"github.com/codeswap/backend/internal/infrastructure/config"
)

var rootCmd = &cobra.Command{
	Use:           "quizctl",
	Short:         "Generate and validate CodeSwap quizzes",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one quiz with the configured LLM backend",
	Long: `Generates a single quiz using the same environment configuration as the
server (LLM_PROVIDER, OPENAI_API_KEY, GEMINI_API_KEY, ...) and prints it as JSON.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse a raw model response and validate the quiz shape",
	Long:  `Reads a model response (optionally wrapped in a json code fence) and reports whether it is a valid quiz.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(parseCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	gen, err := generator.FromConfig(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.QuizGenerateTimeout)
	defer cancel()

	q, err := gen.Generate(ctx)
	if err != nil {
		return err
	}
	return printJSON(cmd, q)
}

func runParse(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	q, err := generator.ParseQuiz(string(raw))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "OK: %s holds %d valid questions\n", args[0], len(q))
	return printJSON(cmd, q)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
