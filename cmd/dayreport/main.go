// Command dayreport prints the daily report for tasks in a tracker database.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"dayjob-record/internal/config"
	"dayjob-record/internal/database"
	"dayjob-record/internal/models"
	"dayjob-record/internal/report"
	"dayjob-record/internal/store"
)

type options struct {
	dbPath string
	ids    string
	locale string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := options{}
	flag.StringVar(&opts.dbPath, "db", cfg.DBPath, "path to the tracker database")
	flag.StringVar(&opts.ids, "ids", "", "comma-separated task ids (default: all visible tasks)")
	flag.StringVar(&opts.locale, "locale", cfg.ReportLocale, "report language (en, zh)")
	flag.Parse()

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	ids, err := parseIDs(opts.ids)
	if err != nil {
		return err
	}

	db, err := database.Open(opts.dbPath, "silent")
	if err != nil {
		return err
	}
	s := store.New(db, store.Options{})

	var tasks []models.Task
	if len(ids) == 0 {
		tasks, err = s.ListTasks(ctx, store.TaskFilter{})
	} else {
		tasks, err = s.GetTasksByIDs(ctx, ids)
	}
	if err != nil {
		return err
	}

	text, err := report.Generate(ctx, tasks, s, report.LabelsFor(opts.locale))
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, text)
	return err
}

func parseIDs(raw string) ([]uint, error) {
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid task id %q", part)
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
