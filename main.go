//go:build !lambda

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

var cli struct {
	Config  string `help:"Path to YAML config file." default:"config.yml" type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging."`

	Plan    PlanCmd    `cmd:"" help:"Generate a greedy meal plan for a calorie budget."`
	Tune    TuneCmd    `cmd:"" help:"Search the ranking knobs across budget scenarios."`
	Foods   FoodsCmd   `cmd:"" help:"List the food catalog."`
	History HistoryCmd `cmd:"" help:"Show recent tuning runs."`
}

// PlanCmd runs the greedy planner once.
type PlanCmd struct {
	Budget    float64  `arg:"" help:"Calorie budget for the plan."`
	Craving   []string `short:"c" help:"Craved food names, matched case-insensitively."`
	Satisfied int      `help:"Cravings already satisfied before this run."`
	JSON      bool     `help:"Emit the plan as JSON."`
}

func (p *PlanCmd) Run(cfg *Config) error {
	foods, err := LoadFoods(cfg.FoodsPath)
	if err != nil {
		return err
	}

	state := NewFoodState(foods)
	plan := GeneratePlan(state, p.Craving, p.Satisfied, p.Budget, cfg.PlannerKnobs())

	if p.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}
	fmt.Print(FormatPlan(plan, p.Budget))
	return nil
}

// TuneCmd runs the knob search and reports the recommendation.
type TuneCmd struct {
	Iterations int    `help:"Override configured iteration count."`
	Seed       int64  `help:"Override configured random seed."`
	CSV        string `help:"Write all evaluated configurations to this CSV file." type:"path"`
	Out        string `help:"Write the recommended knobs as JSON to this file." type:"path"`
	NoClimb    bool   `help:"Skip hill-climb refinement of the Pareto frontier."`
	NoHistory  bool   `help:"Skip recording the run in the history database."`
}

func (t *TuneCmd) Run(cfg *Config) error {
	foods, err := LoadFoods(cfg.FoodsPath)
	if err != nil {
		return err
	}

	search := cfg.SearchConfig()
	if t.Iterations > 0 {
		search.Iterations = t.Iterations
	}
	if t.Seed != 0 {
		search.Seed = t.Seed
	}
	if t.NoClimb {
		search.HillClimb = nil
	}

	start := time.Now()
	res := RunSearch(search, foods)
	logger.Info("search finished", "configs", len(res.Results), "elapsed", time.Since(start).Round(time.Millisecond))

	fmt.Print(FormatSearchSummary(res, search.TopK))

	if t.CSV != "" {
		f, err := os.Create(t.CSV)
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		defer f.Close()
		if err := WriteResultsCSV(f, res); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		logger.Info("wrote results", "path", t.CSV)
	}

	if t.Out != "" {
		data, err := BestKnobsJSON(res)
		if err != nil {
			return err
		}
		if err := os.WriteFile(t.Out, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write knobs: %w", err)
		}
		logger.Info("wrote recommended knobs", "path", t.Out)
	}

	if !t.NoHistory {
		hist, err := OpenHistory(cfg.HistoryDB)
		if err != nil {
			return err
		}
		defer hist.Close()
		id, err := hist.RecordRun(search, res)
		if err != nil {
			return err
		}
		logger.Info("recorded run", "id", id)
	}
	return nil
}

// FoodsCmd prints the catalog with tastiness names.
type FoodsCmd struct{}

func (f *FoodsCmd) Run(cfg *Config) error {
	foods, err := LoadFoods(cfg.FoodsPath)
	if err != nil {
		return err
	}
	fmt.Print(FormatCatalog(foods))
	return nil
}

// HistoryCmd lists recent tuning runs.
type HistoryCmd struct {
	Limit int `default:"10" help:"Maximum runs to show."`
}

func (h *HistoryCmd) Run(cfg *Config) error {
	hist, err := OpenHistory(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer hist.Close()

	runs, err := hist.RecentRuns(h.Limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no tuning runs recorded yet")
		return nil
	}

	fmt.Printf("%-36s %-20s %6s %6s %10s %8s\n", "ID", "When", "Seed", "Iters", "SP", "Balance")
	for _, r := range runs {
		fmt.Printf("%-36s %-20s %6d %6d %10.2f %8.3f\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Seed, r.Iterations,
			r.AvgFinalSP, r.AvgBalance)
	}
	return nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("ecodiet-planner"),
		kong.Description("Greedy SP meal planner and ranking-knob tuner."),
		kong.UsageOnError(),
	)

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		logger.Fatal("config", "err", err)
	}

	level, _ := log.ParseLevel(cfg.LogLevel)
	logger.SetLevel(level)
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if err := ctx.Run(cfg); err != nil {
		logger.Fatal("run", "err", err)
	}
}
