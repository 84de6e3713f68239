package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"tomorrownews/internal/config"
	"tomorrownews/internal/store"
)

// Deletes every prediction whose headline or components mention the given
// keyword. Destructive and non-reversible, so interactive runs get a short
// window to Ctrl+C out.
func main() {
	keyword := flag.String("keyword", "Local", "substring to match against headline and components")
	flag.Parse()

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	logger := slog.Default()

	cfg := config.Load()

	if cfg.Store.Host == "" {
		log.Fatal("PostgreSQL not configured. This only works with PostgreSQL. Set DB_HOST in .env.")
	}

	st, err := store.New(cfg.Store, logger)
	if err != nil {
		log.Fatalf("error opening prediction store: %v", err)
	}
	defer st.Close()

	ctx := context.Background()

	matches, err := st.Find(ctx, store.Filter{})
	if err != nil {
		log.Fatalf("error listing predictions: %v", err)
	}

	var preview int
	for _, p := range matches {
		if strings.Contains(strings.ToLower(p.Headline), strings.ToLower(*keyword)) {
			preview++
			fmt.Printf("[%d] %.80s\n", preview, p.Headline)
		}
	}
	if preview == 0 {
		fmt.Printf("No prediction headlines contain %q; component matches may still be deleted.\n", *keyword)
	}

	if os.Getenv("SKIP_WAIT") != "true" {
		fmt.Printf("\nAbout to delete predictions containing %q.\n", *keyword)
		fmt.Println("Press Ctrl+C to cancel, or wait 3 seconds to continue...")
		time.Sleep(3 * time.Second)
	}

	deleted, err := st.BulkDelete(ctx, *keyword)
	if err != nil {
		log.Fatalf("error cleaning up: %v", err)
	}

	fmt.Printf("Deleted %d predictions containing %q\n", deleted, *keyword)
}
