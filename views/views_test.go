package views

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_AllPagesParsed(t *testing.T) {
	tpl := Templates()
	for _, name := range []string{
		"home.html", "creators.html", "creator_form.html",
		"creator_view.html", "creator_delete.html",
		"head", "foot", "socials", "cards",
	} {
		assert.NotNil(t, tpl.Lookup(name), name)
	}
}

func TestStatic_ServesIcons(t *testing.T) {
	f, err := Static().Open("icons/tiktok.svg")
	require.NoError(t, err)
	defer f.Close()

	b, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")
}
