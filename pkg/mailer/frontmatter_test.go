package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashimpoudel/portfolio/pkg/mailer"
)

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	t.Run("with frontmatter", func(t *testing.T) {
		t.Parallel()
		tpl, err := mailer.ParseTemplate([]byte("---\nTitle: Hello\n---\nBody text\n"))
		require.NoError(t, err)
		assert.Equal(t, "Hello", tpl.Metadata["Title"])
		assert.Equal(t, "Body text\n", tpl.Body)
	})

	t.Run("without frontmatter", func(t *testing.T) {
		t.Parallel()
		tpl, err := mailer.ParseTemplate([]byte("Just body"))
		require.NoError(t, err)
		assert.Empty(t, tpl.Metadata)
		assert.Equal(t, "Just body", tpl.Body)
	})

	t.Run("empty frontmatter", func(t *testing.T) {
		t.Parallel()
		tpl, err := mailer.ParseTemplate([]byte("---\n---\nBody"))
		require.NoError(t, err)
		assert.Empty(t, tpl.Metadata)
		assert.Equal(t, "Body", tpl.Body)
	})

	t.Run("unclosed", func(t *testing.T) {
		t.Parallel()
		_, err := mailer.ParseTemplate([]byte("---\nTitle: Hello\nBody"))
		require.ErrorIs(t, err, mailer.ErrInvalidFrontmatter)
	})

	t.Run("only delimiter", func(t *testing.T) {
		t.Parallel()
		_, err := mailer.ParseTemplate([]byte("---\n"))
		require.ErrorIs(t, err, mailer.ErrInvalidFrontmatter)
	})
}
