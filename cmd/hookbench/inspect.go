package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/delaneyj/hookparty/hooks"
	"github.com/delaneyj/hookparty/pkg/dom"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

func inspect(ctx context.Context, cmd *cli.Command) error {
	return inspectSeed(os.Stdout, dom.New(), hooks.Target(cmd.String(targetKey)))
}

// inspectSeed mounts the memo seed into doc, reports on it and unmounts it.
// opts are applied after the defaults.
func inspectSeed(w io.Writer, doc *dom.Document, target hooks.Target, opts ...hooks.Option) (err error) {
	base := []hooks.Option{
		hooks.WithReconciler(doc),
		hooks.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	sched := hooks.NewScheduler(append(base, opts...)...)

	computes := 0
	h, err := hooks.Mount(sched, memoSeed, &computes, target)
	if err != nil {
		return errors.Join(err, h.Unmount())
	}
	defer func() {
		if unmountErr := h.Unmount(); unmountErr != nil {
			err = errors.Join(err, fmt.Errorf("unmount %s: %w", target, unmountErr))
		}
	}()

	return writeReport(w, doc, h.Instance, computes)
}

func writeReport(w io.Writer, doc *dom.Document, inst *hooks.Instance, computes int) error {
	result, _ := doc.TextByID(inst.Target(), "result")
	fmt.Fprintf(w, "component:  %s\n", inst.Name())
	fmt.Fprintf(w, "instance:   %s\n", inst.ID())
	fmt.Fprintf(w, "renders:    %d\n", inst.Renders())
	fmt.Fprintf(w, "commits:    %d\n", inst.Commits())
	fmt.Fprintf(w, "memo runs:  %d\n", computes)
	fmt.Fprintf(w, "result:     %s\n", result)
	fmt.Fprintf(w, "signature:  %016x\n", inst.Signature())
	fmt.Fprintf(w, "html:\n%s\n\n", doc.HTML(inst.Target()))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"slot", "kind", "setter", "deps", "cleanup"})
	for _, slot := range inst.Slots() {
		setter := ""
		if slot.SetterID != 0 {
			setter = strconv.FormatUint(slot.SetterID, 10)
		}
		deps := ""
		if slot.Deps != nil {
			deps = fmt.Sprint(slot.Deps)
		}
		table.Append([]string{
			strconv.Itoa(slot.Index),
			slot.Kind.String(),
			setter,
			deps,
			strconv.FormatBool(slot.HasCleanup),
		})
	}
	table.Render()
	return nil
}
