package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMediaURLLoopback(t *testing.T) {
	for _, base := range []string{
		"http://localhost:8000",
		"http://localhost:8000/",
		"http://127.0.0.1:8000",
		"http://[::1]:8000",
		"http://0.0.0.0:8000",
	} {
		assert.Empty(t, ResolveMediaURL("module.pdf", "", base), "base=%s", base)
	}
}

func TestResolveMediaURLPublicHost(t *testing.T) {
	got := ResolveMediaURL("module_abc.pdf", "", "https://setu.example.org")

	assert.Equal(t, "https://setu.example.org/exports/module_abc.pdf", got)
	assert.True(t, strings.HasSuffix(got, "module_abc.pdf"))
}

func TestResolveMediaURLTrimsTrailingSlash(t *testing.T) {
	got := ResolveMediaURL("m.pdf", "", "https://setu.example.org/")

	assert.Equal(t, "https://setu.example.org/exports/m.pdf", got)
}

func TestResolveMediaURLExplicitDownloadPath(t *testing.T) {
	got := ResolveMediaURL("m.pdf", "/downloads/m.pdf", "https://setu.example.org")

	assert.Equal(t, "https://setu.example.org/downloads/m.pdf", got)
}

func TestBuildDownloadURLIgnoresHost(t *testing.T) {
	// Link mode still needs an absolute URL even on a local base
	got := BuildDownloadURL("m.pdf", "", "http://localhost:8000")

	assert.Equal(t, "http://localhost:8000/exports/m.pdf", got)
}
