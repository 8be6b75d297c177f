// Package main prints the contents of a launch planner database.
//
// Usage:
//
//	DB_PATH=~/LaunchPlanner/data go run ./cmd/dbinspect
//	go run ./cmd/dbinspect -db ./data -dump goals
//	go run ./cmd/dbinspect -db ./data -repair
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goccy/go-json"

	"github.com/launchplanner/launchplanner-server/internal/store"
)

func main() {
	dbFlag := flag.String("db", "", "Database directory (default: $DB_PATH or ~/LaunchPlanner/data)")
	dump := flag.String("dump", "", "Print one collection as stored (products, goals or leads)")
	repair := flag.Bool("repair", false, "Remove goals and leads whose product no longer exists")
	flag.Parse()

	dbPath := *dbFlag
	if dbPath == "" {
		dbPath = os.Getenv("DB_PATH")
	}
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/LaunchPlanner/data")
	}

	// Badger locks the directory even for read-only opens, so stop the server first.
	var (
		s   *store.Store
		err error
	)
	if *repair {
		s, err = store.New(dbPath, nil, store.NewNoopEmitter())
	} else {
		s, err = store.NewReadOnly(dbPath, nil)
	}
	if errors.Is(err, store.ErrDatabaseLocked) {
		log.Fatalf("Database %s is locked by another process. Stop the server and try again.", dbPath)
	}
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	if *dump != "" {
		raw, err := s.RawCollection(ctx, *dump)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", *dump, err)
		}
		var out bytes.Buffer
		if err := json.Indent(&out, raw, "", "  "); err != nil {
			log.Fatalf("Collection %s is not valid JSON: %v", *dump, err)
		}
		fmt.Println(out.String())
		return
	}

	fmt.Println("=== Database Inspection ===")
	fmt.Println()

	stats, err := s.Stats(ctx)
	if err != nil {
		log.Fatalf("Failed to read collections: %v", err)
	}
	fmt.Printf("Products: %d\n", stats.Products)
	fmt.Printf("Goals:    %d\n", stats.Goals)
	fmt.Printf("Leads:    %d\n", stats.Leads)
	fmt.Println()

	products, err := s.ListProducts(ctx)
	if err != nil {
		log.Fatalf("Failed to list products: %v", err)
	}
	for _, p := range products {
		goals, err := s.ListGoalsByProduct(ctx, p.ID)
		if err != nil {
			log.Fatalf("Failed to list goals: %v", err)
		}
		leads, err := s.ListLeadsByProduct(ctx, p.ID)
		if err != nil {
			log.Fatalf("Failed to list leads: %v", err)
		}

		done := 0
		for _, g := range goals {
			if g.Completed {
				done++
			}
		}

		fmt.Printf("Product: %s\n", p.Name)
		fmt.Printf("  ID:      %s\n", p.ID)
		fmt.Printf("  Target:  %s %d (%s to %s)\n", p.TargetQuarter, p.TargetYear, p.StartDate, p.EndDate)
		fmt.Printf("  Status:  %s\n", p.Status)
		fmt.Printf("  Goals:   %d (%d completed)\n", len(goals), done)
		fmt.Printf("  Leads:   %d\n", len(leads))
	}
	fmt.Println()

	report, err := s.Reconcile(ctx, !*repair)
	if err != nil {
		log.Fatalf("Failed to check references: %v", err)
	}
	if report.Removed() == 0 {
		fmt.Println("No orphaned goals or leads")
		return
	}

	verb := "Found"
	if *repair {
		verb = "Removed"
	}
	fmt.Printf("%s %d orphaned goals and %d orphaned leads\n", verb, len(report.OrphanGoalIDs), len(report.OrphanLeadIDs))
	for _, goalID := range report.OrphanGoalIDs {
		fmt.Printf("  goal %s\n", goalID)
	}
	for _, leadID := range report.OrphanLeadIDs {
		fmt.Printf("  lead %s\n", leadID)
	}
	if !*repair {
		fmt.Println("Run with -repair to remove them")
	}
}
