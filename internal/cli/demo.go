package cli

import (
	_ "embed"
	"fmt"

	"github.com/ytget/former/internal/formspec"
)

//go:embed demo.yaml
var demoForm []byte

// DemoDocument returns the form shown when no document is given
func DemoDocument() (*formspec.Document, error) {
	doc, err := formspec.Parse(demoForm, formspec.FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse demo form: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("demo form: %w", err)
	}
	return doc, nil
}
