package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/aretw0/latch/internal/presentation/graph"
	"github.com/aretw0/latch/pkg/blueprint"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the machine visualization",
	Long:  `Reads the YAML definition and outputs a Mermaid state diagram representing its transition table.`,
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		if !cmd.Flags().Changed("file") && len(args) > 0 {
			file = args[0]
		}
		render, _ := cmd.Flags().GetBool("render")

		def, err := blueprint.LoadFile(file)
		if err != nil {
			fmt.Printf("Error loading definition: %v\n", err)
			os.Exit(1)
		}

		output := graph.GenerateMermaid(def)

		if !render {
			fmt.Print(output)
			return
		}

		// Wrap the diagram in a fenced block and pretty-print it for the
		// terminal.
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
		if err != nil {
			fmt.Printf("Error initializing renderer: %v\n", err)
			os.Exit(1)
		}
		markdown := fmt.Sprintf("# %s\n\n```mermaid\n%s```\n", file, output)
		pretty, err := r.Render(markdown)
		if err != nil {
			fmt.Printf("Error rendering diagram: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(pretty)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().Bool("render", false, "Pretty-print the diagram for the terminal")
}
