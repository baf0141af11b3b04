package blockview

import (
	"strings"
	"testing"

	"github.com/riordanpawley/sourcemode/internal/domain"
	"github.com/riordanpawley/sourcemode/internal/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDocument(t *testing.T) {
	doc := domain.NewDocument()
	require.NoError(t, doc.AddRegion("header", "<h1>Hi</h1>"))
	require.NoError(t, doc.AddRegion("body", "<p>There</p>"))

	out := RenderDocument(doc, 60, styles.New())

	assert.Contains(t, out, "header")
	assert.Contains(t, out, "<h1>Hi</h1>")
	assert.Contains(t, out, "body")
	assert.Contains(t, out, "<p>There</p>")
}

func TestRenderDocument_SkipsConcealedRegions(t *testing.T) {
	doc := domain.NewDocument()
	require.NoError(t, doc.AddRegion("visible", "shown"))
	require.NoError(t, doc.AddRegion("hidden", "not shown"))
	require.NoError(t, doc.SetConcealed("hidden", true))

	out := RenderDocument(doc, 60, styles.New())

	assert.Contains(t, out, "shown")
	assert.False(t, strings.Contains(out, "not shown"), "concealed region leaked into view")
}

func TestRenderDocument_Empty(t *testing.T) {
	out := RenderDocument(domain.NewDocument(), 60, styles.New())

	assert.Empty(t, out)
}
