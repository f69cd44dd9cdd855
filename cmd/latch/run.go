package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/latch"
	"github.com/aretw0/latch/internal/logging"
	"github.com/aretw0/latch/pkg/blueprint"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the machine interactively",
	Long: `Loads the YAML definition and drives it from the terminal: type an event
name to dispatch it, "events" to list the vocabulary, "quit" to leave.
Actions named by the definition announce themselves when their transition
fires.`,
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		if !cmd.Flags().Changed("file") && len(args) > 0 {
			file = args[0]
		}
		levelName, _ := cmd.Flags().GetString("log-level")

		if err := runSession(file, levelName); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runSession(file, levelName string) error {
	def, err := blueprint.LoadFile(file)
	if err != nil {
		return err
	}

	output := termenv.NewOutput(os.Stdout)
	announce := func(name string) blueprint.Action {
		return func(from, event blueprint.Symbol) {
			fmt.Printf("  %s %s\n",
				output.String("action:").Foreground(output.Color("6")).Bold(),
				name)
		}
	}

	// Bind every action name the definition references to an announcer.
	actions := make(map[string]blueprint.Action)
	for _, rule := range def.Transitions {
		if rule.Action != "" {
			actions[rule.Action] = announce(rule.Action)
		}
	}

	logger := logging.New(logging.ParseLevel(levelName))
	machine, err := blueprint.Build(def, actions,
		latch.WithLogger[blueprint.Symbol, blueprint.Symbol](logger))
	if err != nil {
		return err
	}

	fmt.Printf("Machine %s loaded. Events: %s\n", file, strings.Join(machine.Events().Names(), ", "))

	reader := bufio.NewReader(os.Stdin)
	for {
		prompt := output.String(machine.Current().Name()).Foreground(output.Color("3"))
		fmt.Printf("[%s] > ", prompt)

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return nil
		}
		input := strings.TrimSpace(line)

		switch input {
		case "":
			continue
		case "quit", "exit":
			fmt.Println("Bye!")
			return nil
		case "events":
			fmt.Println(strings.Join(machine.Events().Names(), ", "))
			continue
		}

		before := machine.Current()
		if err := machine.OnEvent(input); err != nil {
			fmt.Printf("  %v (try \"events\")\n", err)
			continue
		}
		if machine.Current() == before {
			fmt.Printf("  ignored in state %s\n", before.Name())
		}
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
