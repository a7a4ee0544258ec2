// Package render formats note lists for the CLI.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/glassnotes/internal/notes"
)

// OutputFormat represents different output formats
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
	FormatCompact OutputFormat = "compact"
	FormatQuiet   OutputFormat = "quiet"
)

var Formats = []OutputFormat{FormatDefault, FormatTable, FormatJSON, FormatCSV, FormatCompact, FormatQuiet}

// ParseFormat accepts any of Formats, case-insensitively.
func ParseFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatDefault, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

type Config struct {
	Format OutputFormat
	Width  int
	ShowID bool
	Color  bool
}

// DefaultConfig reads the width from $COLUMNS.
func DefaultConfig() Config {
	width := 100
	if colEnv := os.Getenv("COLUMNS"); colEnv != "" {
		if v, err := strconv.Atoi(colEnv); err == nil && v > 40 {
			width = v
		}
	}
	return Config{
		Format: FormatDefault,
		Width:  width,
		ShowID: true,
		Color:  true,
	}
}

type styles struct {
	Title     lipgloss.Style
	Separator lipgloss.Style
	Meta      lipgloss.Style
	Text      lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		return styles{
			Title:     lipgloss.NewStyle().Bold(true),
			Separator: lipgloss.NewStyle(),
			Meta:      lipgloss.NewStyle(),
			Text:      lipgloss.NewStyle(),
		}
	}
	return styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Meta:      lipgloss.NewStyle().Faint(true),
		Text:      lipgloss.NewStyle(),
	}
}

type Renderer struct {
	cfg    Config
	styles styles
}

func New(cfg Config) *Renderer {
	if cfg.Width <= 0 {
		cfg.Width = 100
	}
	return &Renderer{cfg: cfg, styles: newStyles(cfg.Color)}
}

// Notes renders list in the configured format.
func (r *Renderer) Notes(list []notes.Note) (string, error) {
	switch r.cfg.Format {
	case FormatJSON:
		return r.json(list)
	case FormatCSV:
		return r.csv(list)
	case FormatTable:
		return r.table(list), nil
	case FormatCompact:
		return r.compact(list), nil
	case FormatQuiet:
		return r.quiet(list), nil
	default:
		return r.normal(list), nil
	}
}

func (r *Renderer) rule() string {
	return r.styles.Separator.Render(strings.Repeat("─", min(r.cfg.Width, 120)))
}

func (r *Renderer) normal(list []notes.Note) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Notes"))
	b.WriteString("  ")
	b.WriteString(r.styles.Meta.Render(fmt.Sprintf("%d total", len(list))))
	b.WriteString("\n")
	b.WriteString(r.rule())
	b.WriteString("\n")
	for _, n := range list {
		var meta []string
		if r.cfg.ShowID {
			meta = append(meta, fmt.Sprintf("[%d]", n.ID))
		}
		meta = append(meta, n.CreatedAt)
		b.WriteString(r.styles.Meta.Render(strings.Join(meta, "  ")))
		b.WriteString("\n")
		b.WriteString(r.styles.Text.Render("  " + n.Body))
		b.WriteString("\n")
		b.WriteString(r.rule())
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) json(list []notes.Note) (string, error) {
	if list == nil {
		list = []notes.Note{}
	}
	data, err := json.MarshalIndent(struct {
		Notes []notes.Note `json:"notes"`
		Total int          `json:"total"`
	}{list, len(list)}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

func (r *Renderer) csv(list []notes.Note) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"id", "created_at", "title", "body"})
	for _, n := range list {
		_ = w.Write([]string{
			strconv.FormatInt(n.ID, 10),
			n.CreatedAt,
			n.Title,
			n.Body,
		})
	}
	w.Flush()
	return b.String(), w.Error()
}

func (r *Renderer) table(list []notes.Note) string {
	var b strings.Builder
	b.WriteString("ID\tCreated\tText\n")
	b.WriteString(strings.Repeat("-", r.cfg.Width))
	b.WriteString("\n")
	for _, n := range list {
		fmt.Fprintf(&b, "%d\t%s\t%s\n", n.ID, n.CreatedAt, truncate(n.Body, 50))
	}
	return b.String()
}

func (r *Renderer) compact(list []notes.Note) string {
	var b strings.Builder
	for _, n := range list {
		fmt.Fprintf(&b, "%d %s\n", n.ID, truncate(n.Body, 80))
	}
	return b.String()
}

// quiet prints bodies only, for scripting.
func (r *Renderer) quiet(list []notes.Note) string {
	var b strings.Builder
	for _, n := range list {
		b.WriteString(n.Body)
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	rs := []rune(s)
	if len(rs) > n {
		return string(rs[:n-3]) + "..."
	}
	return s
}
