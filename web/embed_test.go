package web_test

import (
	"bytes"
	"io/fs"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/zawiya/internal/view/components"
	"github.com/nfrund/zawiya/web"
)

func appScript(t *testing.T) string {
	t.Helper()
	raw, err := fs.ReadFile(web.Static, "js/app.js")
	require.NoError(t, err)
	return string(raw)
}

func TestScriptReadsNavbarSettings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, components.Navbar("/").Render(&buf))

	attrs := regexp.MustCompile(`data-([a-z-]+)="`).FindAllStringSubmatch(buf.String(), -1)
	require.NotEmpty(t, attrs)

	script := appScript(t)
	for _, m := range attrs {
		assert.Contains(t, script, "'"+m[1]+"'", "app.js reads data-%s", m[1])
	}
	assert.Contains(t, script, "navbar.offsetHeight")
	assert.Contains(t, script, "section[id]")
}

func TestScriptCounterEndsWithFinalText(t *testing.T) {
	script := appScript(t)
	assert.Contains(t, script, "data-final")
	assert.Contains(t, script, "+ '+'")
}

func TestScriptReportsClipboardAndShareOutcome(t *testing.T) {
	script := appScript(t)
	assert.Contains(t, script, components.CopyResultPath)
	assert.Contains(t, script, components.ShareResultPath)
	assert.Contains(t, script, components.CopyEvent)
	assert.Contains(t, script, components.ShareEvent)
	assert.Contains(t, script, "execCommand('copy')")
}

func TestScriptSetsObserverCookie(t *testing.T) {
	script := appScript(t)
	assert.Contains(t, script, components.ObserverCookie+"=0")
	assert.Contains(t, script, components.ObserverCookie+"=1")
}
