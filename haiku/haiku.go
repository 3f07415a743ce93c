// Package haiku generates the short confirmation poem embedded in delivery
// emails. The generator sits behind a narrow interface so that a creative
// backend can be swapped in without touching the workflow; the template
// implementation here is deterministic and is what tests and demo runs use.
package haiku

import (
	"context"
	"fmt"
	"strings"
)

// Generator produces a short confirmation text from a month name and the
// ordered item names.
type Generator interface {
	ConfirmationText(ctx context.Context, month string, items []string) (string, error)
}

// TemplateGenerator renders a fixed three-line poem shape. Same inputs,
// same text, every time.
type TemplateGenerator struct{}

// NewTemplateGenerator creates the deterministic template generator.
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

func (g *TemplateGenerator) ConfirmationText(ctx context.Context, month string, items []string) (string, error) {
	if month == "" {
		return "", fmt.Errorf("month is empty")
	}

	middle := "warm cookies on their way"
	switch len(items) {
	case 0:
	case 1:
		middle = fmt.Sprintf("%s, fresh from the oven", items[0])
	default:
		middle = fmt.Sprintf("%s and %s", strings.Join(items[:len(items)-1], ", "), items[len(items)-1])
	}

	lines := []string{
		fmt.Sprintf("%s breeze drifts by", month),
		middle,
		"sweet crumbs greet the door",
	}
	return strings.Join(lines, "\n"), nil
}
