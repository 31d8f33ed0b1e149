/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sudoDevesh/swagger2jmeter/internal/jmx"
	"github.com/sudoDevesh/swagger2jmeter/internal/models"
	"github.com/sudoDevesh/swagger2jmeter/internal/openapi"
	"github.com/sudoDevesh/swagger2jmeter/internal/output"
)

var (
	planTitle    string
	planThreads  int
	planRampTime int
	planDuration int
	planHeaders  []string
	planOutput   string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [spec-url-or-file]",
	Short: "Generate a JMeter test plan from a Swagger/OpenAPI document",
	Long: `Generate a JMeter test plan (.jmx) from a Swagger 2.0 or OpenAPI 3.x
document. Every endpoint matching the filters becomes one HTTP sampler.

The generated plan references its protocol, host and port through plan
variables, so it can be retargeted at run time without regenerating.

Examples:
  # Plan for every endpoint, written next to the spec
  swagger2jmeter generate https://petstore.swagger.io/v2/swagger.json -o plan.jmx

  # Only the pet endpoints, 50 threads ramping over 30s, 5 minute run
  swagger2jmeter generate swagger.json --tags pet -n 50 -r 30 -d 300

  # Common headers on every sampler
  swagger2jmeter generate swagger.json -H "Authorization: Bearer t" -H "Accept: application/json"`,
	Args: cobra.ExactArgs(1),
	Run:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) {
	doc := loadSpec(args[0])

	endpoints := openapi.Extract(doc)
	filtered := filterEndpoints(endpoints, filter, tags)
	if len(filtered) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no endpoints selected, nothing to generate")
		os.Exit(1)
	}

	// Config file values apply when the flag was not given.
	if !cmd.Flags().Changed("threads") && viper.IsSet("plan.threads") {
		planThreads = viper.GetInt("plan.threads")
	}
	if !cmd.Flags().Changed("ramp") && viper.IsSet("plan.ramp") {
		planRampTime = viper.GetInt("plan.ramp")
	}
	if !cmd.Flags().Changed("duration") && viper.IsSet("plan.duration") {
		planDuration = viper.GetInt("plan.duration")
	}

	cfg := models.PlanConfig{
		Title:    planTitle,
		BaseURL:  openapi.ResolveBaseURL(serverURL, doc),
		Threads:  planThreads,
		RampTime: planRampTime,
		Duration: planDuration,
		Headers:  resolveHeaders(planHeaders),
	}

	plan, err := jmx.Serialize(cfg, filtered)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error serializing plan: %v\n", err)
		os.Exit(1)
	}

	outFile := planOutput
	if outFile == "" {
		outFile = jmx.Filename(cfg.Title)
	}
	if err := output.WritePlan(plan, outFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing plan: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n%s\n", white("=== Plan Generated ==="))
	fmt.Printf("Title:     %s\n", cfg.Title)
	fmt.Printf("Base URL:  %s\n", cyan(cfg.BaseURL))
	fmt.Printf("Endpoints: %d\n", len(filtered))
	fmt.Printf("Load:      %d threads, %ds ramp-up, %ds duration\n",
		cfg.Threads, cfg.RampTime, cfg.Duration)
	fmt.Printf("Output:    %s\n", green(outFile))

	if verbose {
		for _, ep := range filtered {
			fmt.Printf("  %-8s %s\n", colorMethod(ep.Method), ep.Path)
		}
	}
}

// resolveHeaders picks the common headers for the plan: -H flags when given,
// otherwise the plan.headers list from the config file.
func resolveHeaders(flags []string) []models.Header {
	raw := flags
	if len(raw) == 0 && viper.IsSet("plan.headers") {
		raw = viper.GetStringSlice("plan.headers")
	}
	return parseHeaders(raw)
}

// parseHeaders turns repeated "Key: Value" entries into header values. The
// value may be empty; blank keys are kept here and dropped by the
// serializer.
func parseHeaders(raw []string) []models.Header {
	headers := make([]models.Header, 0, len(raw))
	for _, h := range raw {
		key, value, _ := strings.Cut(h, ":")
		headers = append(headers, models.Header{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
	return headers
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&serverURL, "server", "", "Override server URL from the spec")
	generateCmd.Flags().StringVar(&filter, "filter", "", "Filter endpoints by path pattern or summary")
	generateCmd.Flags().StringSliceVar(&tags, "tags", []string{}, "Filter by OpenAPI tags")
	generateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")

	generateCmd.Flags().StringVar(&planTitle, "title", "API Load Test", "Test plan title")
	generateCmd.Flags().IntVarP(&planThreads, "threads", "n", 10, "Number of threads (virtual users)")
	generateCmd.Flags().IntVarP(&planRampTime, "ramp", "r", 10, "Ramp-up time in seconds")
	generateCmd.Flags().IntVarP(&planDuration, "duration", "d", 60, "Test duration in seconds")
	generateCmd.Flags().StringArrayVarP(&planHeaders, "header", "H", nil, `Common header "Key: Value" (can be specified multiple times)`)
	generateCmd.Flags().StringVarP(&planOutput, "output", "o", "", "Output file (default: derived from the title)")
}
