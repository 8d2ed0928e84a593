// Package charts renders report data as PNG images.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"fintrack/internal/money"
	"fintrack/internal/services"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no data to chart")

// Generator renders charts at a fixed size.
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a Generator with the default 800x500 canvas.
func NewGenerator() *Generator {
	return &Generator{Width: 800, Height: 500}
}

// SpendingPie draws one slice per category, colored with the category color
// and labelled with its share of total spending.
func (g *Generator) SpendingPie(spending []services.CategorySpending) ([]byte, error) {
	var total int64
	for _, s := range spending {
		total += s.TotalCents
	}
	if total <= 0 {
		return nil, ErrNoData
	}

	values := make([]chart.Value, 0, len(spending))
	for _, s := range spending {
		if s.TotalCents <= 0 {
			continue
		}
		share := float64(s.TotalCents) / float64(total) * 100
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s (%.1f%%)", s.Name, money.Format(s.TotalCents), share),
			Value: float64(s.TotalCents),
			Style: chart.Style{
				FillColor:   parseColor(s.Color),
				StrokeColor: chart.ColorWhite,
				StrokeWidth: 1,
			},
		})
	}

	pie := chart.PieChart{
		Width:  g.Width,
		Height: g.Height,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   40,
				Right:  40,
				Bottom: 40,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render spending chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// parseColor converts "#rrggbb" or "#rgb" to a drawing color.
func parseColor(hex string) drawing.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return chart.ColorBlue
	}
	return drawing.ColorFromHex(hex)
}
