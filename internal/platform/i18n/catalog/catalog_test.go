package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.hasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.hasLocale("pt-BR") {
		t.Fatalf("expected locale pt-BR")
	}
	namespaces := bundle.namespaces(BaseLocale)
	if len(namespaces) != 2 || namespaces[0] != "commands" || namespaces[1] != "primefinder" {
		t.Fatalf("namespaces = %v", namespaces)
	}
}

func TestEmbeddedLocalesTranslateEveryKey(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	for _, locale := range bundle.Locales() {
		if missing := bundle.missingKeys(locale); len(missing) > 0 {
			t.Fatalf("locale %s missing keys %v", locale, missing)
		}
	}
}

func TestPrinterTranslatesAndFormatsNumbers(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}

	tests := []struct {
		locale string
		want   string
	}{
		{locale: "en-US", want: "count: 1,234"},
		{locale: "pt-BR", want: "contador: 1.234"},
		{locale: "pt", want: "contador: 1.234"},
		{locale: "fr-FR", want: "count: 1,234"},
		{locale: "", want: "count: 1,234"},
		{locale: "not a tag", want: "count: 1,234"},
	}
	for _, tt := range tests {
		if got := bundle.Printer(tt.locale).Sprintf("count.value", 1234); got != tt.want {
			t.Fatalf("Printer(%q) = %q, want %q", tt.locale, got, tt.want)
		}
	}
}

func TestLoadFromFSRejectsIncompleteLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "a.key": "a"
  "b.key": "b"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/pt-BR/core.yaml"), `locale: "pt-BR"
namespace: "core"
messages:
  "a.key": "á"
`)
	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected incomplete locale error")
	}
	if !strings.Contains(err.Error(), "pt-BR") || !strings.Contains(err.Error(), "b.key") {
		t.Fatalf("error = %v, want locale and missing key named", err)
	}
}

func TestLoadFromFSAcceptsCompleteLocales(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "a.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/pt-BR/core.yaml"), `locale: "pt-BR"
namespace: "core"
messages:
  "a.key": "á"
`)
	bundle, err := LoadFromFS(os.DirFS(tempDir))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := bundle.Printer("pt-BR").Sprintf("a.key"); got != "á" {
		t.Fatalf("pt-BR a.key = %q", got)
	}
}

func TestLoadFromFSRejectsMissingNamespace(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "a.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/pt-BR/web.yaml"), `locale: "pt-BR"
namespace: "web"
messages:
  "a.key": "á"
`)
	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected namespace mismatch error")
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "a.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/web.yaml"), `locale: "en-US"
namespace: "web"
messages:
  "a.key": "b"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/pt-BR/core.yaml"), `locale: "pt-BR"
namespace: "core"
messages:
  "a.key": "a"
`)
	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestLoadFromFSRejectsMismatchedLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "pt-BR"
namespace: "core"
messages:
  "a.key": "a"
`)
	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestParseCatalogFileErrors(t *testing.T) {
	tests := map[string]string{
		"missing locale":    "namespace: \"core\"\nmessages:\n  \"a\": \"b\"\n",
		"missing messages":  "locale: \"en-US\"\nnamespace: \"core\"\nmessages:\n",
		"stray line":        "locale: \"en-US\"\n\"a\": \"b\"\n",
		"unterminated key":  "locale: \"en-US\"\nnamespace: \"core\"\nmessages:\n  \"a: \"b\"\n",
		"missing separator": "locale: \"en-US\"\nnamespace: \"core\"\nmessages:\n  \"a\" \"b\"\n",
	}
	for name, input := range tests {
		if _, err := parseCatalogFile([]byte(input)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestParseMessageEntryUnescapes(t *testing.T) {
	key, value, err := parseMessageEntry(`"quote.key": "say \"hi\" %d"`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if key != "quote.key" || value != `say "hi" %d` {
		t.Fatalf("got %q=%q", key, value)
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
