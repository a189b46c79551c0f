package formspec

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/former/internal/former"
)

func demoDocument() *Document {
	return &Document{
		Title: "Account",
		Sections: []Section{
			{
				Header: "Profile",
				Rows: []Row{
					{Kind: KindText, Key: "name", Placeholder: "Your name", Required: true},
					{Kind: KindSelector, Key: "country", Options: []string{"Norway", "Japan", "Chile"}, Value: "Japan"},
				},
			},
			{
				Header: "About",
				Footer: "Read only",
				Rows: []Row{
					{Kind: KindLabel, Key: "app_version", Detail: "1.0"},
				},
			},
		},
	}
}

func TestLoadFormats(t *testing.T) {
	for _, name := range []string{"demo.yaml", "demo.toml", "demo.json"} {
		t.Run(name, func(t *testing.T) {
			doc, err := Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, demoDocument(), doc)
			assert.Equal(t, 3, doc.RowCount())
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"form.yaml", FormatYAML, false},
		{"form.YML", FormatYAML, false},
		{"dir/form.toml", FormatTOML, false},
		{"form.json", FormatJSON, false},
		{"form.txt", "", true},
		{"form", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if tt.wantErr {
			assert.Error(t, err, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatYAML, "sections:\n  - rows:\n      - kind: text\n        key: a\n        colour: red\n"},
		{FormatTOML, "[[sections]]\n[[sections.rows]]\nkind = \"text\"\nkey = \"a\"\ncolour = \"red\"\n"},
		{FormatJSON, `{"sections":[{"rows":[{"kind":"text","key":"a","colour":"red"}]}]}`},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.data), tt.format)
		assert.Error(t, err, tt.format)
	}
}

func TestParseUnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte("{}"), Format("xml"))
	assert.Error(t, err)
}

func TestParseNormalizes(t *testing.T) {
	// decomposed "e" plus combining acute accent
	data := "sections:\n  - rows:\n      - kind: \" Label \"\n        key: \" cafe\u0301 \"\n"
	doc, err := Parse([]byte(data), FormatYAML)
	require.NoError(t, err)

	row := doc.Sections[0].Rows[0]
	assert.Equal(t, KindLabel, row.Kind)
	assert.Equal(t, "caf\u00e9", row.Key)
}

func TestLoadInvalidDocument(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "invalid.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDocument))
	assert.True(t, errors.Is(err, ErrUnknownKind))
	assert.Contains(t, err.Error(), `key "volume" already used by section 0 row 0`)
	assert.Contains(t, err.Error(), `selector "volume" has no options`)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Document)
		problem string
	}{
		{"no sections", func(d *Document) { d.Sections = nil }, "document has no sections"},
		{"missing key", func(d *Document) { d.Sections[0].Rows[0].Key = "" }, "section 0 row 0: missing key"},
		{"negative height", func(d *Document) { d.Sections[1].Rows[0].Height = -1 }, "negative height -1"},
		{"value outside options", func(d *Document) { d.Sections[0].Rows[1].Value = "Peru" }, `value "Peru" is not one of the options`},
		{"unknown kind", func(d *Document) { d.Sections[1].Rows[0].Kind = "toggle" }, `unknown row kind: "toggle"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := demoDocument()
			tt.mutate(doc)
			err := doc.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDocument)
			assert.Contains(t, err.Error(), tt.problem)
		})
	}

	assert.NoError(t, demoDocument().Validate())
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		row  Row
		want string
	}{
		{Row{Key: "name"}, "Name"},
		{Row{Key: "app_version"}, "App Version"},
		{Row{Key: "first-name.given"}, "First Name Given"},
		{Row{Key: "name", Title: "Full name"}, "Full name"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.row.DisplayTitle(), tt.row.Key)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(demoDocument(), format)
			require.NoError(t, err)

			doc, err := Parse(data, format)
			require.NoError(t, err)
			assert.Equal(t, demoDocument(), doc)
		})
	}

	_, err := Marshal(demoDocument(), Format("xml"))
	assert.Error(t, err)
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, SchemaID, schema["$id"])
	assert.Equal(t, "Former form document", schema["title"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "title")
	assert.Contains(t, props, "sections")
	assert.Contains(t, string(data), `"selector"`)
}

type stubRow struct {
	former.BaseRowFormer
	spec Row
}

func newStubRow(spec Row) *stubRow {
	r := &stubRow{spec: spec}
	r.ExtendRowFormer(r)
	return r
}

func (r *stubRow) Value() string { return r.spec.Value }

type stubLabel struct {
	former.BaseRowFormer
}

type stubView struct {
	former.BaseViewFormer
	text string
}

type stubFactory struct {
	headers []string
	footers []string
}

func (f *stubFactory) Label(row Row) former.RowFormer {
	r := &stubLabel{}
	r.ExtendRowFormer(r)
	return r
}

func (f *stubFactory) Text(row Row) former.RowFormer     { return newStubRow(row) }
func (f *stubFactory) Selector(row Row) former.RowFormer { return newStubRow(row) }

func (f *stubFactory) Header(text string) former.ViewFormer {
	f.headers = append(f.headers, text)
	v := &stubView{text: text}
	v.ExtendViewFormer(v, nil)
	return v
}

func (f *stubFactory) Footer(text string) former.ViewFormer {
	f.footers = append(f.footers, text)
	v := &stubView{text: text}
	v.ExtendViewFormer(v, nil)
	return v
}

func TestBuild(t *testing.T) {
	factory := &stubFactory{}
	form, err := Build(demoDocument(), factory)
	require.NoError(t, err)

	assert.Equal(t, "Account", form.Title)
	require.Len(t, form.Sections, 2)
	assert.Equal(t, 2, form.Sections[0].NumberOfRows())
	assert.Equal(t, 1, form.Sections[1].NumberOfRows())
	assert.NotNil(t, form.Sections[0].Header())
	assert.Nil(t, form.Sections[0].Footer())
	assert.NotNil(t, form.Sections[1].Footer())
	assert.Equal(t, []string{"Profile", "About"}, factory.headers)
	assert.Equal(t, []string{"Read only"}, factory.footers)

	assert.Equal(t, []string{"name", "country", "app_version"}, form.Keys())
	country, ok := form.Row("country")
	require.True(t, ok)
	assert.Same(t, form.Sections[0].Row(1), country)
	assert.Equal(t, "country", form.Key(country))
	assert.Equal(t, "", form.Key(newStubRow(Row{})))

	// label rows capture no value
	assert.Equal(t, map[string]string{"name": "", "country": "Japan"}, form.Values())
}

func TestBuildInvalid(t *testing.T) {
	doc := demoDocument()
	doc.Sections[0].Rows[1].Options = nil

	_, err := Build(doc, &stubFactory{})
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestBuildFromParsedFile(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "demo.yaml"))
	require.NoError(t, err)
	doc, err := Parse(data, FormatYAML)
	require.NoError(t, err)

	form, err := Build(doc, &stubFactory{})
	require.NoError(t, err)
	assert.Len(t, form.Values(), 2)
}
