package docsmanifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an encoding of the canonical manifest structure
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat parses a format name or file extension
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedExt, s)
	}
}

// Encode serializes the manifest in the given format, preserving order
func Encode(m *Manifest, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return nil, fmt.Errorf("failed to encode manifest: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode manifest: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode manifest: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, format)
	}
}

// MarshalYAML emits the manifest as a mapping in declaration order
func (m *Manifest) MarshalYAML() (interface{}, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range m.Sections {
		var list yaml.Node
		entries := s.Entries
		if entries == nil {
			entries = []DocEntry{}
		}
		if err := list.Encode(entries); err != nil {
			return nil, err
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(s.Platform)},
			&list,
		)
	}
	return root, nil
}

// UnmarshalYAML reads a mapping of platform keys, keeping document order.
// Duplicate keys are kept so that validation can report them.
func (m *Manifest) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of platform keys", node.Line)
	}

	sections := make([]Section, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: platform key must be a string", key.Line)
		}
		var entries []DocEntry
		if err := value.Decode(&entries); err != nil {
			return fmt.Errorf("platform %q: %w", key.Value, err)
		}
		sections = append(sections, Section{Platform: Platform(key.Value), Entries: entries})
	}
	m.Sections = sections
	return nil
}

// MarshalJSON emits the manifest as an object in declaration order
func (m *Manifest) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range m.Sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(s.Platform))
		if err != nil {
			return nil, err
		}
		entries := s.Entries
		if entries == nil {
			entries = []DocEntry{}
		}
		value, err := json.Marshal(entries)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON walks the token stream so object key order survives
func (m *Manifest) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected an object of platform keys")
	}

	var sections []Section
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("platform key must be a string")
		}
		var entries []DocEntry
		if err := dec.Decode(&entries); err != nil {
			return fmt.Errorf("platform %q: %w", key, err)
		}
		sections = append(sections, Section{Platform: Platform(key), Entries: entries})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if sections == nil {
		sections = []Section{}
	}
	m.Sections = sections
	return nil
}
