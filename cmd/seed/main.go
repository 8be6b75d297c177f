// Package main seeds a launch planner database with demo products, goals and leads.
//
// Records go through the service layer, so they get the same defaults and
// validation as records created over the API.
//
// Usage:
//
//	DB_PATH=~/LaunchPlanner/data go run ./cmd/seed
//	DB_PATH=./data go run ./cmd/seed -leads 50
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/launchplanner/launchplanner-server/internal/logger"
	"github.com/launchplanner/launchplanner-server/internal/service"
	"github.com/launchplanner/launchplanner-server/internal/store"
)

var leadsPerProduct = flag.Int("leads", 12, "Leads to capture per product")

type seedProduct struct {
	name        string
	description string
	offsetDays  int
	lengthDays  int
	goals       []seedGoal
}

type seedGoal struct {
	title    string
	category string
	target   int
	progress int
}

var demoProducts = []seedProduct{
	{
		name:        "Orbit Analytics",
		description: "Self-serve dashboards for small teams",
		offsetDays:  -30,
		lengthDays:  60,
		goals: []seedGoal{
			{title: "Publish launch blog post", category: "Content"},
			{title: "Book partner webinars", category: "Partnerships", target: 4, progress: 2},
			{title: "Collect beta signups", category: "Marketing", target: 200, progress: 140},
		},
	},
	{
		name:        "Pocket CRM",
		description: "A contact manager that fits in a phone",
		offsetDays:  20,
		lengthDays:  90,
		goals: []seedGoal{
			{title: "Close design partners", category: "Sales", target: 5},
			{title: "Ship onboarding flow", category: "Development"},
			{title: "Start community forum", category: "Community"},
		},
	},
	{
		name:        "Lumen Docs",
		description: "Docs site generator with search built in",
		offsetDays:  120,
		lengthDays:  45,
		goals: []seedGoal{
			{title: "Record demo video", category: "Content", target: 1},
			{title: "Draft pricing page", category: "Marketing"},
		},
	},
}

var (
	firstNames = []string{"Ada", "Grace", "Linus", "Ken", "Barbara", "Margaret", "Dennis", "Frances"}
	sources    = []string{"landing-page", "webinar", "referral", "newsletter", "conference"}
)

func main() {
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/LaunchPlanner/data")
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil, store.NewNoopEmitter())
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	quiet := logger.Discard().Logger
	products := service.NewProductService(s, quiet)
	goals := service.NewGoalService(s, quiet)
	leads := service.NewLeadService(s, quiet)

	ctx := context.Background()
	today := time.Now().UTC().Truncate(24 * time.Hour)

	var goalCount, leadCount int
	for _, sp := range demoProducts {
		start := today.AddDate(0, 0, sp.offsetDays)
		p, err := products.CreateProduct(ctx, service.CreateProductRequest{
			Name:        sp.name,
			Description: sp.description,
			StartDate:   start.Format(time.DateOnly),
			EndDate:     start.AddDate(0, 0, sp.lengthDays).Format(time.DateOnly),
		})
		if err != nil {
			log.Fatalf("Failed to create product %q: %v", sp.name, err)
		}
		fmt.Printf("Created product %s (%s %d)\n", p.Name, p.TargetQuarter, p.TargetYear)

		for _, sg := range sp.goals {
			req := service.CreateGoalRequest{
				ProductID: p.ID,
				Title:     sg.title,
				Category:  sg.category,
			}
			if sg.target > 0 {
				target := sg.target
				req.TargetCount = &target
			}
			g, err := goals.CreateGoal(ctx, req)
			if err != nil {
				log.Fatalf("Failed to create goal %q: %v", sg.title, err)
			}
			for range sg.progress {
				if _, err := goals.IncrementGoal(ctx, g.ID); err != nil {
					log.Fatalf("Failed to increment goal %q: %v", sg.title, err)
				}
			}
			goalCount++
		}

		for n := range *leadsPerProduct {
			name := firstNames[rand.IntN(len(firstNames))]
			_, err := leads.CreateLead(ctx, service.CreateLeadRequest{
				ProductID: p.ID,
				Email:     fmt.Sprintf("%s.%d@example.com", name, n),
				Name:      name,
				Source:    sources[rand.IntN(len(sources))],
			})
			if err != nil {
				log.Fatalf("Failed to create lead: %v", err)
			}
			leadCount++
		}
	}

	fmt.Printf("\nSeeded %d products, %d goals and %d leads\n", len(demoProducts), goalCount, leadCount)
}
