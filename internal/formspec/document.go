package formspec

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Kind is the type of a form row
type Kind string

const (
	// KindLabel is a read-only row showing a title and a detail text
	KindLabel Kind = "label"

	// KindText is an editable single-line text row
	KindText Kind = "text"

	// KindSelector shows its value and expands an inline picker when activated
	KindSelector Kind = "selector"
)

// Kinds returns every row kind
func Kinds() []Kind {
	return []Kind{KindLabel, KindText, KindSelector}
}

// IsValid returns true if k is a known row kind
func (k Kind) IsValid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// Errors returned by Validate and Build
var (
	ErrInvalidDocument = errors.New("invalid form document")
	ErrUnknownKind     = errors.New("unknown row kind")
)

// Document is a complete form
type Document struct {
	Title    string    `yaml:"title" toml:"title" json:"title" jsonschema:"description=Window title"`
	Sections []Section `yaml:"sections" toml:"sections" json:"sections" jsonschema:"required,minItems=1"`
}

// Section is a group of rows with optional header and footer text
type Section struct {
	Header string `yaml:"header,omitempty" toml:"header,omitempty" json:"header,omitempty"`
	Footer string `yaml:"footer,omitempty" toml:"footer,omitempty" json:"footer,omitempty"`
	Rows   []Row  `yaml:"rows" toml:"rows" json:"rows"`
}

// Row describes one form row
type Row struct {
	Kind        Kind     `yaml:"kind" toml:"kind" json:"kind" jsonschema:"required,enum=label,enum=text,enum=selector"`
	Key         string   `yaml:"key" toml:"key" json:"key" jsonschema:"required,description=Unique identifier of the row's value"`
	Title       string   `yaml:"title,omitempty" toml:"title,omitempty" json:"title,omitempty" jsonschema:"description=Defaults to the key in title case"`
	Detail      string   `yaml:"detail,omitempty" toml:"detail,omitempty" json:"detail,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty" toml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Value       string   `yaml:"value,omitempty" toml:"value,omitempty" json:"value,omitempty"`
	Options     []string `yaml:"options,omitempty" toml:"options,omitempty" json:"options,omitempty" jsonschema:"description=Choices of a selector row"`
	Required    bool     `yaml:"required,omitempty" toml:"required,omitempty" json:"required,omitempty"`
	Disabled    bool     `yaml:"disabled,omitempty" toml:"disabled,omitempty" json:"disabled,omitempty"`
	Height      int      `yaml:"height,omitempty" toml:"height,omitempty" json:"height,omitempty" jsonschema:"minimum=0"`
}

// DisplayTitle returns Title, or the key in title case when Title is empty
func (r Row) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	words := strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(r.Key)
	return cases.Title(language.English).String(words)
}

// Validate checks the document and returns every problem found, wrapped in
// ErrInvalidDocument
func (d *Document) Validate() error {
	var problems []error
	if len(d.Sections) == 0 {
		problems = append(problems, errors.New("document has no sections"))
	}

	keys := make(map[string]string)
	for s, section := range d.Sections {
		for r, row := range section.Rows {
			where := fmt.Sprintf("section %d row %d", s, r)
			if !row.Kind.IsValid() {
				problems = append(problems, fmt.Errorf("%s: %w: %q", where, ErrUnknownKind, row.Kind))
			}
			if row.Key == "" {
				problems = append(problems, fmt.Errorf("%s: missing key", where))
			} else if first, ok := keys[row.Key]; ok {
				problems = append(problems, fmt.Errorf("%s: key %q already used by %s", where, row.Key, first))
			} else {
				keys[row.Key] = where
			}
			if row.Height < 0 {
				problems = append(problems, fmt.Errorf("%s: negative height %d", where, row.Height))
			}
			if row.Kind == KindSelector {
				if len(row.Options) == 0 {
					problems = append(problems, fmt.Errorf("%s: selector %q has no options", where, row.Key))
				} else if row.Value != "" && !containsString(row.Options, row.Value) {
					problems = append(problems, fmt.Errorf("%s: value %q is not one of the options", where, row.Value))
				}
			}
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidDocument, errors.Join(problems...))
}

// normalize converts text fields to NFC and lower-cases kinds
func (d *Document) normalize() {
	d.Title = norm.NFC.String(d.Title)
	for s := range d.Sections {
		section := &d.Sections[s]
		section.Header = norm.NFC.String(section.Header)
		section.Footer = norm.NFC.String(section.Footer)
		for r := range section.Rows {
			row := &section.Rows[r]
			row.Kind = Kind(strings.ToLower(strings.TrimSpace(string(row.Kind))))
			row.Key = norm.NFC.String(strings.TrimSpace(row.Key))
			row.Title = norm.NFC.String(row.Title)
			row.Detail = norm.NFC.String(row.Detail)
			row.Placeholder = norm.NFC.String(row.Placeholder)
			row.Value = norm.NFC.String(row.Value)
			for i, o := range row.Options {
				row.Options[i] = norm.NFC.String(o)
			}
		}
	}
}

// RowCount returns the number of rows across all sections
func (d *Document) RowCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Rows)
	}
	return n
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
