package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Supported language codes
const (
	LangES = "es"
	LangEN = "en"
)

// Bundle holds the two loaded language tables.
type Bundle struct {
	tables      map[string]map[string]string
	defaultLang string
}

// Load reads the es and en tables from dir. Both files must exist and
// parse; there is no partial-load recovery, the caller treats an error
// here as fatal.
func Load(dir, defaultLang string) (*Bundle, error) {
	tables := make(map[string]map[string]string, 2)
	for _, lang := range []string{LangES, LangEN} {
		path := filepath.Join(dir, lang+".json")
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read language file %s: %w", path, err)
		}
		var table map[string]string
		if err := json.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("failed to parse language file %s: %w", path, err)
		}
		tables[lang] = table
	}

	if _, ok := tables[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %q is not a loaded table", defaultLang)
	}

	return &Bundle{tables: tables, defaultLang: defaultLang}, nil
}

// T resolves key in lang. An unknown lang falls back to the default
// table; a missing key renders as the key itself verbatim.
func (b *Bundle) T(lang, key string) string {
	table, ok := b.tables[lang]
	if !ok {
		table = b.tables[b.defaultLang]
	}
	if v, ok := table[key]; ok {
		return v
	}
	return key
}

// Toggle flips between the two supported codes. Any code other than
// es toggles back to es.
func Toggle(lang string) string {
	if lang == LangES {
		return LangEN
	}
	return LangES
}

// DefaultLang returns the bundle's fallback language code
func (b *Bundle) DefaultLang() string {
	return b.defaultLang
}
