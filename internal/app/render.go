package app

import (
	"fmt"
	"io"
	"strings"

	"go.trai.ch/trim/internal/core/domain"
)

// RenderPlan writes a human-readable summary of a configuration pass to w,
// one block per module, in the order the reports were produced.
func RenderPlan(w io.Writer, reports []domain.ModuleReport) error {
	var b strings.Builder

	if len(reports) == 0 {
		b.WriteString("no modules configured\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "mode: %s\n", reports[0].Mode)

	for _, report := range reports {
		b.WriteString("\n")
		renderModule(&b, report)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderModule(b *strings.Builder, report domain.ModuleReport) {
	fmt.Fprintf(b, "%s (%s) %s\n", report.Path, report.Kind, report.Namespace)

	if report.Prune.SyncSkipped {
		b.WriteString("  sync session, graph untouched\n")
		return
	}

	if len(report.Variants) > 0 {
		fmt.Fprintf(b, "  variants: %s\n", joinVariantNames(report.Variants))
	}

	if len(report.Prune.Disabled) == 0 {
		b.WriteString("  nothing to disable\n")
	} else {
		fmt.Fprintf(b, "  disabled %d/%d: %s\n",
			len(report.Prune.Disabled), len(report.Prune.Expanded),
			strings.Join(report.Prune.Disabled, ", "))
	}
	if len(report.Prune.Missing) > 0 {
		fmt.Fprintf(b, "  not registered: %s\n", strings.Join(report.Prune.Missing, ", "))
	}
	fmt.Fprintf(b, "  fingerprint: %s\n", report.Fingerprint)
}

func joinVariantNames(variants []domain.Variant) string {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.Name
	}
	return strings.Join(names, ", ")
}
