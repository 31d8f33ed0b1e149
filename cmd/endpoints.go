/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sudoDevesh/swagger2jmeter/internal/models"
	"github.com/sudoDevesh/swagger2jmeter/internal/openapi"
)

var (
	serverURL string
	filter    string
	tags      []string
	verbose   bool

	// Color helpers
	cyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	white  = color.New(color.FgWhite, color.Bold).SprintFunc()
)

// endpointsCmd represents the endpoints command
var endpointsCmd = &cobra.Command{
	Use:   "endpoints [spec-url-or-file]",
	Short: "List the endpoints of a Swagger/OpenAPI document",
	Long: `List the HTTP operations of a Swagger 2.0 or OpenAPI 3.x document,
grouped by their first tag. Use the same --filter and --tags flags with the
generate command to turn a subset into a test plan.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc := loadSpec(args[0])

		endpoints := openapi.Extract(doc)
		filtered := filterEndpoints(endpoints, filter, tags)
		if len(filtered) == 0 {
			fmt.Println("No endpoints found matching the criteria")
			os.Exit(0)
		}

		fmt.Printf("Base URL: %s\n", cyan(openapi.ResolveBaseURL(serverURL, doc)))
		fmt.Printf("Endpoints: %d\n", len(filtered))

		for _, group := range openapi.GroupByTag(filtered) {
			fmt.Printf("\n%s\n", white(group.Name))
			for _, ep := range group.Endpoints {
				fmt.Printf("  %-8s %s", colorMethod(ep.Method), ep.Path)
				if ep.Summary != "" {
					fmt.Printf("  - %s", ep.Summary)
				}
				fmt.Println()
				if verbose {
					if ep.Description != "" {
						fmt.Printf("           %s\n", ep.Description)
					}
					if len(ep.Parameters) > 0 {
						fmt.Printf("           parameters: %d\n", len(ep.Parameters))
					}
				}
			}
		}
	},
}

// loadSpec fetches and decodes the document, with spinner feedback on a TTY.
// It exits the process on failure; the pipeline is never invoked without a
// document.
func loadSpec(source string) *openapi.Document {
	var s *spinner.Spinner
	if isTTY {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = fmt.Sprintf(" Fetching %s...", source)
		s.Start()
	}

	loader := openapi.NewLoader(30 * time.Second)
	doc, err := loader.Load(context.Background(), source)

	if s != nil {
		s.Stop()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading spec: %v\n", err)
		os.Exit(1)
	}
	return doc
}

func filterEndpoints(endpoints []models.Endpoint, filterStr string, tagFilters []string) []models.Endpoint {
	var filtered []models.Endpoint

	for _, ep := range endpoints {
		// Filter by path pattern or summary
		if filterStr != "" {
			if !strings.Contains(ep.Path, filterStr) && !strings.Contains(ep.Summary, filterStr) {
				continue
			}
		}

		// Filter by tags
		if len(tagFilters) > 0 {
			found := false
			for _, filterTag := range tagFilters {
				for _, epTag := range ep.Tags {
					if epTag == filterTag {
						found = true
						break
					}
				}
				if found {
					break
				}
			}
			if !found {
				continue
			}
		}

		filtered = append(filtered, ep)
	}

	return filtered
}

func colorMethod(method string) string {
	switch method {
	case "GET":
		return green(method)
	case "POST", "PUT", "PATCH":
		return yellow(method)
	case "DELETE":
		return red(method)
	default:
		return method
	}
}

func init() {
	rootCmd.AddCommand(endpointsCmd)

	endpointsCmd.Flags().StringVar(&serverURL, "server", "", "Override server URL from the spec")
	endpointsCmd.Flags().StringVar(&filter, "filter", "", "Filter endpoints by path pattern or summary")
	endpointsCmd.Flags().StringSliceVar(&tags, "tags", []string{}, "Filter by OpenAPI tags (can be specified multiple times)")
	endpointsCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")
}
