package mailer_test

import (
	"io/fs"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashimpoudel/portfolio/pkg/mailer"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{
			Data: []byte(`<html><head><title>{{.Metadata.Title}}</title></head><body>{{.Content}}</body></html>`),
		},
		"notification.md": &fstest.MapFile{
			Data: []byte("---\nTitle: New contact message\n---\n**{{.Name}}** wrote:\n\n{{.Message}}\n"),
		},
		"broken.md": &fstest.MapFile{
			Data: []byte("---\nTitle: [unclosed\n---\nbody"),
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	r := mailer.NewRenderer(testFS(), mailer.RendererConfig{})
	out, err := r.Render("base.html", "notification.md", map[string]string{
		"Name":    "Alice",
		"Message": "line one\nline two",
	})
	require.NoError(t, err)

	assert.Equal(t, "New contact message", out.Metadata["Title"])
	assert.Contains(t, out.Markdown, "**Alice** wrote:")
	assert.Contains(t, out.HTML, "<title>New contact message</title>")
	assert.Contains(t, out.HTML, "<strong>Alice</strong>")
	assert.Contains(t, out.HTML, "line one<br")
}

func TestRenderer_Render_OmitsRawHTML(t *testing.T) {
	t.Parallel()

	r := mailer.NewRenderer(testFS(), mailer.RendererConfig{})
	out, err := r.Render("base.html", "notification.md", map[string]string{
		"Name":    "Mallory",
		"Message": "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.NotContains(t, out.HTML, "<script>")
}

func TestRenderer_Render_Errors(t *testing.T) {
	t.Parallel()

	r := mailer.NewRenderer(testFS(), mailer.RendererConfig{})

	_, err := r.Render("base.html", "missing.md", nil)
	require.ErrorIs(t, err, mailer.ErrTemplateNotFound)

	_, err = r.Render("missing.html", "notification.md", map[string]string{"Name": "a", "Message": "b"})
	require.ErrorIs(t, err, mailer.ErrLayoutNotFound)

	_, err = r.Render("base.html", "broken.md", nil)
	require.ErrorIs(t, err, mailer.ErrInvalidFrontmatter)

	_, err = r.Render("base.html", "notification.md", map[string]string{"Name": "a"})
	require.ErrorIs(t, err, mailer.ErrRenderFailed)
}

type countingFS struct {
	fstest.MapFS
	opens *atomic.Int32
}

func (c countingFS) Open(name string) (fs.File, error) {
	c.opens.Add(1)
	return c.MapFS.Open(name)
}

func TestRenderer_Render_CachesTemplates(t *testing.T) {
	t.Parallel()

	var opens atomic.Int32
	r := mailer.NewRenderer(countingFS{MapFS: testFS(), opens: &opens}, mailer.RendererConfig{})
	data := map[string]string{"Name": "Alice", "Message": "hi"}

	_, err := r.Render("base.html", "notification.md", data)
	require.NoError(t, err)
	first := opens.Load()
	require.Equal(t, int32(2), first)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Render("base.html", "notification.md", data)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, first, opens.Load())
}
