package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"waypoint-tour-service/internal/adapters/cache"
	"waypoint-tour-service/internal/config"
	"waypoint-tour-service/internal/platform/db"
)

type options struct {
	initSchema bool
	purge      string
}

// parseFlags reads the dbtool command line. At least one action is required.
func parseFlags(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("dbtool", flag.ContinueOnError)
	fs.BoolVar(&opts.initSchema, "init", false, "create the directions cache schema")
	fs.StringVar(&opts.purge, "purge", "", "delete cached routes older than this Postgres interval (e.g. \"30 days\")")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if !opts.initSchema && opts.purge == "" {
		fs.Usage()
		return options{}, errors.New("nothing to do: pass -init and/or -purge")
	}
	return opts, nil
}

// dbtool prepares or maintains the Postgres directions cache.
//
//	dbtool -init
//	dbtool -purge "30 days"
func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx := context.Background()

	if opts.initSchema {
		log.Println("Initializing database schema...")
		if err := cache.InitSchema(ctx, conn); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}
		log.Println("Schema ready.")
	}

	if opts.purge != "" {
		log.Printf("Purging cached routes older than %s...", opts.purge)
		n, err := cache.PurgeOlderThan(ctx, conn, opts.purge)
		if err != nil {
			log.Fatalf("purge failed: %v", err)
		}
		log.Printf("Purge complete. removed=%d", n)
	}
}
