package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"cgpa-agent/config"
	"cgpa-agent/domain"
	"cgpa-agent/repository"
	"cgpa-agent/service"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	promptColor  = color.New(color.FgMagenta, color.Bold)
	warnColor    = color.New(color.FgRed, color.Bold)
	insightColor = color.New(color.FgYellow, color.Bold)
)

const banner = `
 __  __ ___ ___ _  _   ___  _   _ ___  ___
|  \/  |_ _/ __| || | / _ \| | | | _ \/ __|
| |\/| || |\__ \ __ |( (_) ) |_| |  _/\__ \
|_|  |_|___|___/_||_| \___/ \___/|_|  |___/
`

var (
	configFile string
	cgpa       float64
	semester   int
	variations int
	paths      []string
	csvOut     string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "cgpa-sim",
		Short: "CGPA multiverse simulator",
		Long: `cgpa-sim projects possible CGPA trajectories from your current standing
under a set of named evolution paths and prints the outcomes with advice.`,
		RunE: runSimulation,
	}

	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Configuration file path")
	rootCmd.Flags().Float64Var(&cgpa, "cgpa", 2.91, "Current CGPA")
	rootCmd.Flags().IntVar(&semester, "semester", 1, "Current semester (1 to 10)")
	rootCmd.Flags().IntVar(&variations, "variations", 5, "Trajectories per path")
	rootCmd.Flags().StringSliceVar(&paths, "paths", nil, "Paths to simulate (default: all)")
	rootCmd.Flags().StringVar(&csvOut, "csv", "", "Write outcomes to a CSV file")

	if err := rootCmd.Execute(); err != nil {
		warnColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	titleColor.Print(banner + "\n")
	promptColor.Println("Let's shape your CGPA multiverse with ultimate realism.")

	switch {
	case cgpa < service.ProbationLine:
		warnColor.Println("** Warning **: A CGPA below 2.0 can lead to academic probation. Time to hustle!")
	case cgpa >= 3.9:
		titleColor.Println("** Impressively High! ** You're flirting with a perfect 4.0.")
	}

	insightService := service.NewInsightService()
	simulationService := service.NewSimulationService(
		insightService,
		repository.NewMockCache(),
		cfg.GradeScale(),
	)

	result, err := simulationService.Simulate(domain.SimulationInput{
		Paths:           paths,
		Variations:      variations,
		CurrentSemester: semester,
		CurrentCGPA:     cgpa,
	})
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	promptColor.Println("\n===== POST-SIMULATION ANALYSIS =====")
	if err := printOutcomeTable(result.Outcomes); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if result.Stats != nil {
		s := result.Stats
		fmt.Printf("\nFinal CGPA across %d trajectories: mean %.2f, median %.2f, range %.2f-%.2f (95%% CI %.2f-%.2f)\n",
			s.Count, s.Mean, s.Median, s.Min, s.Max, s.CILower, s.CIUpper)
	}

	insightColor.Println("\nQuick Recruiter Insights:")
	fmt.Println(`- Below 3.0: Some companies or roles may have a cutoff.
- 3.0 to 3.5: Comfortable baseline for many mainstream applications.
- 3.5 to 3.6: Strong contender; you'll attract solid interest.
- 3.6 to 3.8+: Dean's List territory, appealing to highly selective employers.
- 3.8+: Near-perfect academically. Balance with real-world projects too!`)

	if result.Commentary != "" {
		promptColor.Println("\nAdvisor's take:")
		fmt.Println(result.Commentary)
	}

	if csvOut != "" {
		if err := writeOutcomesCSV(csvOut, result.Outcomes); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		fmt.Printf("\nWrote outcomes to %s\n", csvOut)
	}

	return nil
}

func printOutcomeTable(outcomes []domain.FinalOutcome) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Path", "Variation", "Final CGPA", "Category & Advice"})

	var data [][]string
	for _, o := range outcomes {
		data = append(data, []string{
			o.Path,
			fmt.Sprintf("%d", o.Variation),
			fmt.Sprintf("%.2f", o.FinalCGPA),
			fmt.Sprintf("%s. %s", o.Category, o.Advice),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeOutcomesCSV(path string, outcomes []domain.FinalOutcome) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write([]string{"Path", "Variation", "Final CGPA", "Category", "Insights"}); err != nil {
		return err
	}
	for _, o := range outcomes {
		record := []string{
			o.Path,
			fmt.Sprintf("%d", o.Variation),
			fmt.Sprintf("%.2f", o.FinalCGPA),
			o.Category,
			o.Advice,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return writer.Error()
}
