package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netlab/topo"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.yaml>",
	Short: "Validate a YAML topology document",
	Long: `Validate a declarative YAML topology document: schema version, kind,
node declarations, and link references.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	doc, err := topo.LoadDocument(args[0])
	if err != nil {
		return err
	}

	if err := doc.Validate(); err != nil {
		return fmt.Errorf("document validation failed: %w", err)
	}

	t, err := doc.Topology()
	if err != nil {
		return fmt.Errorf("failed to build topology: %w", err)
	}

	fmt.Printf("✓ %s is a valid %s document\n", args[0], doc.Kind)
	fmt.Printf("  name:  %s\n", doc.Metadata.Name)
	fmt.Printf("  nodes: %d\n", t.Graph.NodeCount())
	fmt.Printf("  links: %d\n", t.Graph.EdgeCount())

	return nil
}
