package errors

import (
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUsesRegistry(t *testing.T) {
	err := New("E122")
	assert.Equal(t, "E122", err.Code)
	assert.Equal(t, CategoryManifest, err.Category)
	assert.Equal(t, "Unknown store", err.Message)
	assert.NotEmpty(t, err.Detail)

	unknown := New("E999")
	assert.Equal(t, "Unknown error", unknown.Message)
}

func TestEveryCodeIsRegistered(t *testing.T) {
	codes := GetAllCodes()
	assert.Equal(t, []string{
		"E101", "E102", "E103",
		"E120", "E121", "E122", "E123",
		"E140", "E141",
		"E160", "E161", "E162", "E163",
	}, codes)
	for _, code := range codes {
		tmpl, ok := GetTemplate(code)
		require.True(t, ok, code)
		assert.NotEmpty(t, tmpl.Message, code)
		assert.NotEmpty(t, tmpl.Category, code)
	}
}

func TestErrorString(t *testing.T) {
	cause := stderrors.New("boom")
	err := New("E120").WithLocation("page.yaml", 3, 5).Wrap(cause)

	assert.Equal(t, "E120: page.yaml:3:5: Invalid manifest: boom", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil, "E161"))

	original := New("E141")
	assert.Same(t, original, FromError(original, "E161"))

	wrapped := FromError(stderrors.New("disk full"), "E161")
	assert.Equal(t, "E161", wrapped.Code)
	assert.Equal(t, "disk full", wrapped.Wrapped.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "bad flag %q", "x")
	assert.Empty(t, err.Code)
	assert.Equal(t, `bad flag "x"`, err.Error())
}

func TestWithLocationReadsContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.yaml")
	lines := []string{"one", "two", "three", "four", "five", "six", "seven"}
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644))

	err := New("E121").WithLocation(path, 4, 3)
	assert.Equal(t, []string{"two", "three", "four", "five", "six"}, err.Context)

	missing := New("E121").WithLocation(filepath.Join(t.TempDir(), "nope"), 1, 1)
	assert.Empty(t, missing.Context)
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E122").
		WithContext([]string{"root:", "  - {store: nope}", "  - x"}).
		WithSuggestion("Declare the store under stores.").
		Wrap(stderrors.New("cause"))
	err.Location = &Location{File: "page.yaml", Line: 2, Column: 5}

	out := err.Format()
	assert.Contains(t, out, "ERROR E122: Unknown store")
	assert.Contains(t, out, "page.yaml:2:5")
	assert.Contains(t, out, "→    2 │   - {store: nope}")
	assert.Contains(t, out, "│     ^")
	assert.Contains(t, out, "Cause: cause")
	assert.Contains(t, out, "Hint: Declare the store under stores.")
	assert.NotContains(t, out, "\033[")
}

func TestFormatCompact(t *testing.T) {
	err := New("E123").WithDetail("ignored")
	err.Location = &Location{File: "a.yaml", Line: 7}
	assert.Equal(t, "a.yaml:7: E123: Unknown component", err.FormatCompact())
}

func TestFormatJSON(t *testing.T) {
	err := New("E140").Wrap(stderrors.New("bad yaml"))

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(err.FormatJSON()), &got))
	assert.Equal(t, "E140", got["code"])
	assert.Equal(t, "config", got["category"])
	assert.Equal(t, "bad yaml", got["cause"])
	assert.NotContains(t, got, "location")
}

func TestFprint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var b strings.Builder
	Fprint(&b, New("E160"))
	assert.Contains(t, b.String(), "ERROR E160")

	b.Reset()
	Fprint(&b, stderrors.New("plain"))
	assert.Contains(t, b.String(), "ERROR: plain")
}

func TestWrapText(t *testing.T) {
	lines := wrapText("aaa bbb ccc ddd", 7)
	assert.Equal(t, []string{"aaa bbb", "ccc ddd"}, lines)
}
