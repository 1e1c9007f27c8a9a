package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"weekly-menu-planner/internal/app"
	"weekly-menu-planner/internal/catalog"
	"weekly-menu-planner/internal/config"
	"weekly-menu-planner/internal/database"
	"weekly-menu-planner/internal/export"
	"weekly-menu-planner/internal/grocery"
	"weekly-menu-planner/internal/history"
	"weekly-menu-planner/internal/planner"
	"weekly-menu-planner/internal/pricing"
	"weekly-menu-planner/internal/server"
	"weekly-menu-planner/internal/storage"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	store, err := storage.NewStateStore(cfg.StatePath)
	if err != nil {
		log.Fatalf("Failed to initialize plan state store: %v", err)
	}

	application := app.NewApp(planner.NewEngine(nil), store, history.NewRepository(db.SQL))

	switch os.Args[1] {
	case "plan":
		planCmd := flag.NewFlagSet("plan", flag.ExitOnError)
		familySize := planCmd.Int("family", 0, "Family size (keeps current when 0)")
		budget := planCmd.String("budget", "", "Budget mode: tight, balanced or generous")
		avoidPork := planCmd.Bool("avoid-pork", false, "Skip recipes with pork")
		avoidSeafood := planCmd.Bool("avoid-seafood", false, "Skip recipes with seafood")
		preferVeg := planCmd.Bool("prefer-veg", false, "Favor vegetarian recipes")
		kidsOnly := planCmd.Bool("kids-only", false, "Kid-friendly recipes only")
		planCmd.Parse(os.Args[2:])

		settings := currentSettings(ctx, application)
		if *familySize > 0 {
			settings.FamilySize = *familySize
		}
		if *budget != "" {
			settings.BudgetMode = planner.BudgetMode(*budget)
		}
		settings.AvoidPork = *avoidPork
		settings.AvoidSeafood = *avoidSeafood
		settings.PreferVegetables = *preferVeg
		settings.KidsOnly = *kidsOnly

		state, err := application.RegenerateWeek(ctx, settings)
		if err != nil {
			log.Fatalf("Plan generation failed: %v", err)
		}
		printPlan(state)

	case "groceries":
		list, _, err := application.Groceries(ctx)
		if err != nil {
			log.Fatalf("Grocery aggregation failed: %v", err)
		}
		printGroceries(list)

	case "select":
		if len(os.Args) < 5 {
			fmt.Println("Usage: menu-planner select <day> <meal> <recipe-id>")
			os.Exit(1)
		}
		mt, ok := planner.ParseMealType(os.Args[3])
		if !ok {
			log.Fatalf("Unknown meal type: %s", os.Args[3])
		}
		if _, err := application.SelectMeal(ctx, os.Args[2], mt, os.Args[4]); err != nil {
			log.Fatalf("Selection rejected: %v", err)
		}
		fmt.Printf("Selected %s for %s %s.\n", os.Args[4], os.Args[2], os.Args[3])

	case "redo":
		if len(os.Args) < 4 {
			fmt.Println("Usage: menu-planner redo <day> <meal>")
			os.Exit(1)
		}
		mt, ok := planner.ParseMealType(os.Args[3])
		if !ok {
			log.Fatalf("Unknown meal type: %s", os.Args[3])
		}
		slot, _, err := application.RegenerateSlot(ctx, os.Args[2], mt)
		if err != nil {
			log.Fatalf("Slot regeneration failed: %v", err)
		}
		fmt.Printf("New suggestions for %s %s:\n", os.Args[2], os.Args[3])
		for i, id := range slot.SuggestedMealIDs {
			r, ok := catalog.ByID(id)
			if !ok {
				continue
			}
			marker := " "
			if i == 0 {
				marker = "*"
			}
			fmt.Printf("%s %-28s %6.2f/person\n", marker, r.Name, pricing.CostPerPerson(r))
		}

	case "export":
		exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
		what := exportCmd.String("what", "groceries", "What to export: plan or groceries")
		out := exportCmd.String("out", "", "Output file (stdout when empty)")
		exportCmd.Parse(os.Args[2:])

		w := os.Stdout
		if *out != "" {
			f, err := os.Create(*out)
			if err != nil {
				log.Fatalf("Failed to create output file: %v", err)
			}
			defer f.Close()
			w = f
		}

		switch *what {
		case "plan":
			state, err := application.CurrentPlan(ctx)
			if err != nil {
				log.Fatalf("Export failed: %v", err)
			}
			if err := export.WritePlanCSV(w, state); err != nil {
				log.Fatalf("Export failed: %v", err)
			}
		case "groceries":
			list, _, err := application.Groceries(ctx)
			if err != nil {
				log.Fatalf("Export failed: %v", err)
			}
			if err := export.WriteGroceriesCSV(w, list); err != nil {
				log.Fatalf("Export failed: %v", err)
			}
		default:
			log.Fatalf("Unknown export target: %s", *what)
		}

	case "history":
		historyCmd := flag.NewFlagSet("history", flag.ExitOnError)
		limit := historyCmd.Int("n", 10, "Number of snapshots to list")
		historyCmd.Parse(os.Args[2:])

		entries, err := history.NewRepository(db.SQL).ListRecent(ctx, *limit)
		if err != nil {
			log.Fatalf("Failed to list history: %v", err)
		}
		if len(entries) == 0 {
			fmt.Println("No plan snapshots yet.")
			return
		}
		for _, e := range entries {
			fmt.Printf("%s  %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.ID)
		}

	case "history-cleanup":
		cleanupCmd := flag.NewFlagSet("history-cleanup", flag.ExitOnError)
		days := cleanupCmd.Int("days", 90, "Keep snapshots for the last N days")
		cleanupCmd.Parse(os.Args[2:])

		affected, err := history.NewRepository(db.SQL).Cleanup(ctx, *days)
		if err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
		fmt.Printf("Removed %d old plan snapshots.\n", affected)

	case "token":
		tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)
		ttl := tokenCmd.Duration("ttl", 30*24*time.Hour, "Token lifetime")
		tokenCmd.Parse(os.Args[2:])

		if cfg.JWTSecret == "" {
			log.Fatal("JWT_SECRET is not set")
		}
		token, err := server.MintToken(cfg.JWTSecret, *ttl)
		if err != nil {
			log.Fatalf("Failed to mint token: %v", err)
		}
		fmt.Println(token)

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func currentSettings(ctx context.Context, application *app.App) planner.Settings {
	state, err := application.CurrentPlan(ctx)
	if err != nil {
		return planner.DefaultSettings()
	}
	return state.Settings
}

func printPlan(state *planner.PlanState) {
	fmt.Printf("Weekly menu (family of %d, %s budget)\n\n", state.Settings.FamilySize, state.Settings.BudgetMode)
	for _, day := range planner.Days {
		fmt.Printf("%s\n", day)
		for _, mt := range catalog.MealTypes {
			slot, ok := state.Slots[planner.SlotKey(day, mt)]
			if !ok {
				continue
			}
			r, ok := catalog.ByID(slot.SelectedMealID)
			if !ok {
				continue
			}
			fmt.Printf("  %-10s %-32s %6.2f/person\n", mt, r.Name, pricing.CostPerPerson(r))
		}
	}
}

func printGroceries(list grocery.List) {
	for _, g := range list.Groups {
		fmt.Printf("%s\n", g.Category)
		for _, l := range g.Lines {
			fmt.Printf("  %-22s %8.0f %-6s %8.2f\n", l.Ingredient, l.Quantity, l.Unit, l.Price)
		}
		fmt.Printf("  %-22s %8s %-6s %8.2f\n", "subtotal", "", "", g.Subtotal)
	}
	fmt.Printf("\nTotal: %.2f\n", list.Total)
}

func printUsage() {
	fmt.Println("Usage: menu-planner <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  plan              Regenerate the full weekly menu")
	fmt.Println("  groceries         Print the aggregated shopping list")
	fmt.Println("  select            Pick a suggested recipe for a slot")
	fmt.Println("  redo              Regenerate suggestions for one slot")
	fmt.Println("  export            Write the plan or grocery list as CSV")
	fmt.Println("  history           List recent plan snapshots")
	fmt.Println("  history-cleanup   Remove old plan snapshots")
	fmt.Println("  token             Mint an API access token")
}
