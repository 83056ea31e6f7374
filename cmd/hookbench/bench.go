package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/delaneyj/hookparty/hooks"
	"github.com/delaneyj/hookparty/pkg/dom"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/uber-go/tally/v4"
	"github.com/urfave/cli/v3"
)

func bench(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadBenchConfig(cmd.String(configKey))
	if err != nil {
		return err
	}
	if cmd.IsSet(componentsKey) {
		cfg.Components = []int{int(cmd.Int(componentsKey))}
	}
	if cmd.IsSet(memosKey) {
		cfg.Memos = []int{int(cmd.Int(memosKey))}
	}
	if cmd.IsSet(iterationsKey) {
		cfg.Iterations = int(cmd.Int(iterationsKey))
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	start := time.Now()
	log.Printf("hookbench started, %d iterations per size", cfg.Iterations)
	defer func() {
		log.Printf("hookbench finished in %v", time.Since(start))
	}()

	tbl := table.NewWriter()
	tbl.SetTitle("Hooks render passes")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "renders", "effects"})

	for _, n := range cfg.Components {
		for _, m := range cfg.Memos {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := benchmarkCounters(n, m, cfg.Iterations)
			if err != nil {
				return fmt.Errorf("%d components * %d memos: %w", n, m, err)
			}
			calc := res.tach.Calc()
			tbl.AppendRow(table.Row{
				fmt.Sprintf("update: %d components * %d memos", n, m),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
				humanize.Comma(res.renders),
				humanize.Comma(res.effects),
			})
		}
	}

	tbl.Render()
	return nil
}

type benchResult struct {
	tach    *tachymeter.Tachymeter
	renders int64
	effects int64
}

// benchmarkCounters mounts n counter rows, then times iterations rounds of
// bumping every row and flushing once.
func benchmarkCounters(n, memos, iterations int) (*benchResult, error) {
	scope := tally.NewTestScope("", nil)
	sched := hooks.NewScheduler(
		hooks.WithReconciler(dom.New()),
		hooks.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		hooks.WithMetrics(scope),
	)

	rows := make([]*counterRow, n)
	handles := make([]*hooks.Handle[*counterRow], n)
	for i := range rows {
		rows[i] = &counterRow{memos: memos}
		h, err := hooks.Mount(sched, counterComponent, rows[i], hooks.Target(fmt.Sprintf("row-%d", i)))
		if err != nil {
			return nil, err
		}
		handles[i] = h
	}

	tach := tachymeter.New(&tachymeter.Config{Size: iterations})
	for iter := 0; iter < iterations; iter++ {
		start := time.Now()
		for _, row := range rows {
			row.set.Update(func(v int) int { return v + 1 })
		}
		if err := sched.Flush(); err != nil {
			return nil, err
		}
		tach.AddTime(time.Since(start))
	}

	for _, h := range handles {
		if err := h.Unmount(); err != nil {
			return nil, err
		}
	}

	res := &benchResult{tach: tach}
	for _, c := range scope.Snapshot().Counters() {
		switch c.Name() {
		case "renders":
			res.renders = c.Value()
		case "effects":
			res.effects = c.Value()
		}
	}
	return res, nil
}
