package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/quantmind-br/docsmanifest-go/pkg/docsmanifest"
	"gopkg.in/yaml.v3"
)

// Format names accepted by NewRenderer
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// Renderer writes manifest data to an io.Writer in a fixed format
type Renderer struct {
	w      io.Writer
	format string
}

// NewRenderer creates a renderer. An empty format selects text.
func NewRenderer(w io.Writer, format string) (*Renderer, error) {
	if format == "" {
		format = FormatText
	}
	switch format {
	case FormatText, FormatMarkdown, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	return &Renderer{w: w, format: format}, nil
}

// Format returns the renderer's output format
func (r *Renderer) Format() string {
	return r.format
}

// Platforms writes a list of platform keys
func (r *Renderer) Platforms(platforms []docsmanifest.Platform) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		keys := make([]string, len(platforms))
		for i, p := range platforms {
			keys[i] = string(p)
		}
		return r.encode(keys)
	case FormatMarkdown:
		for _, p := range platforms {
			if _, err := fmt.Fprintf(r.w, "- `%s`\n", p); err != nil {
				return err
			}
		}
		return nil
	default:
		for _, p := range platforms {
			if _, err := fmt.Fprintln(r.w, p); err != nil {
				return err
			}
		}
		return nil
	}
}

// Entries writes the entries of one platform
func (r *Renderer) Entries(platform docsmanifest.Platform, entries []docsmanifest.DocEntry) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		return r.encode(entries)
	case FormatMarkdown:
		if _, err := fmt.Fprintf(r.w, "## %s\n\n", platform); err != nil {
			return err
		}
		for _, e := range entries {
			if _, err := fmt.Fprintf(r.w, "- **%s** (`%s`): %s\n", e.Title, e.ID, e.Description); err != nil {
				return err
			}
		}
		return nil
	default:
		tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tDESCRIPTION")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.ID, e.Title, e.Description)
		}
		return tw.Flush()
	}
}

// Entry writes a single entry
func (r *Renderer) Entry(platform docsmanifest.Platform, entry docsmanifest.DocEntry) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		return r.encode(entry)
	case FormatMarkdown:
		_, err := fmt.Fprintf(r.w, "### %s\n\n%s\n\n_%s/%s_\n", entry.Title, entry.Description, platform, entry.ID)
		return err
	default:
		_, err := fmt.Fprintf(r.w, "platform:     %s\nid:           %s\ntitle:        %s\ndescription:  %s\n",
			platform, entry.ID, entry.Title, entry.Description)
		return err
	}
}

// Manifest writes the whole manifest. JSON and YAML use the canonical
// ordered form, so the output can be loaded back.
func (r *Renderer) Manifest(m *docsmanifest.Manifest) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		data, err := docsmanifest.Encode(m, docsmanifest.Format(r.format))
		if err != nil {
			return err
		}
		_, err = r.w.Write(data)
		return err
	default:
		for i, s := range m.Sections {
			if i > 0 {
				if _, err := io.WriteString(r.w, "\n"); err != nil {
					return err
				}
			}
			if r.format == FormatText {
				if _, err := fmt.Fprintf(r.w, "[%s] %d entries\n", s.Platform, len(s.Entries)); err != nil {
					return err
				}
			}
			if err := r.Entries(s.Platform, s.Entries); err != nil {
				return err
			}
		}
		return nil
	}
}

func (r *Renderer) encode(v interface{}) error {
	if r.format == FormatYAML {
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
