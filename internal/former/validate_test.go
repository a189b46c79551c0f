package former

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/former/internal/model"
)

func TestValidation(t *testing.T) {
	f, _, trace := newFixture(t)
	pass, fail := true, false
	a, b, c, d := newTestRow("A", trace), newTestRow("B", trace), newTestRow("C", trace), newTestRow("D", trace)
	a.valid = &pass
	b.valid = &fail
	d.valid = &fail
	f.Add(NewSectionFormer(a, b), NewSectionFormer(c, d))

	tests := []struct {
		path model.IndexPath
		want bool
	}{
		{model.NewIndexPath(0, 0), true},
		{model.NewIndexPath(1, 0), false},
		{model.NewIndexPath(0, 1), true},
		{model.NewIndexPath(1, 1), false},
		{model.NewIndexPath(5, 0), true},
		{model.NewIndexPath(0, 5), true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.ValidateAt(tt.path), "path %s", tt.path)
	}

	assert.True(t, f.Validate(c))
	assert.True(t, f.Validate(nil))
	assert.False(t, f.Validate(b))
	assert.Equal(t, []RowFormer{b, d}, f.ValidateAll())

	fail = true
	assert.Nil(t, f.ValidateAll())
}
