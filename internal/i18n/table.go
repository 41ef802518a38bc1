// Package i18n holds the localized string bundles for every screen. Bundles are
// compiled into the binary from YAML files and must define identical keys in
// every language; Load rejects tables that drift apart.
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/ytget/feedback-widget/internal/model"
)

// ScreenID names a bundle. Screen bundles share ids with model.Screen.
type ScreenID string

const (
	ScreenCommon   ScreenID = "common"
	ScreenRating   ScreenID = ScreenID(model.ScreenRating)
	ScreenFeedback ScreenID = ScreenID(model.ScreenFeedback)
	ScreenReview   ScreenID = ScreenID(model.ScreenReview)
	ScreenThankYou ScreenID = ScreenID(model.ScreenThankYou)
)

// Text keys
const (
	KeyAppTitle   = "app_title"
	KeyFooter     = "footer"
	KeyLanguage   = "language"
	KeyThemeDark  = "theme_dark"
	KeyThemeLight = "theme_light"
	KeyBack       = "back"

	KeyTitle    = "title"
	KeySubtitle = "subtitle"

	KeyPlaceholder = "placeholder"
	KeySubmit      = "submit"
	KeySubmitting  = "submitting"

	KeyReviewButton = "review_button"
	KeyCopyButton   = "copy_button"
	KeyCopied       = "copied"
	KeySuggestions  = "suggestions"
	KeyOpenFailed   = "open_failed"

	KeyPositiveTitle   = "positive_title"
	KeyPositiveMessage = "positive_message"
	KeyNegativeTitle   = "negative_title"
	KeyNegativeMessage = "negative_message"
	KeyAgain           = "again"
)

// List keys
const (
	ListRatingLabels = "labels"
	ListComments     = "comments"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Bundle is the set of strings one screen needs in one language
type Bundle struct {
	Texts map[string]string   `yaml:"text"`
	Lists map[string][]string `yaml:"list,omitempty"`
}

// Text returns the string for key, or the key itself when missing
func (b Bundle) Text(key string) string {
	if text, ok := b.Texts[key]; ok {
		return text
	}
	return key
}

// List returns the list for key, or nil when missing
func (b Bundle) List(key string) []string {
	return b.Lists[key]
}

// Item returns the i-th element of a list, or "" when out of range
func (b Bundle) Item(key string, i int) string {
	list := b.Lists[key]
	if i < 0 || i >= len(list) {
		return ""
	}
	return list[i]
}

// Table maps language and screen to a bundle
type Table struct {
	bundles map[model.Language]map[ScreenID]Bundle
}

// Screens returns every bundle id a complete table defines
func Screens() []ScreenID {
	return []ScreenID{ScreenCommon, ScreenRating, ScreenFeedback, ScreenReview, ScreenThankYou}
}

// Load decodes the embedded locale files and validates them
func Load() (*Table, error) {
	t := &Table{bundles: make(map[model.Language]map[ScreenID]Bundle)}

	for _, lang := range model.Languages() {
		data, err := localeFS.ReadFile("locales/" + lang.String() + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("read %s bundle: %w", lang, err)
		}
		bundles, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s bundle: %w", lang, err)
		}
		t.bundles[lang] = bundles
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Parse decodes one locale file
func Parse(data []byte) (map[ScreenID]Bundle, error) {
	bundles := make(map[ScreenID]Bundle)
	if err := yaml.Unmarshal(data, &bundles); err != nil {
		return nil, err
	}
	return bundles, nil
}

// NewTable builds a table from already decoded bundles, validating them
func NewTable(bundles map[model.Language]map[ScreenID]Bundle) (*Table, error) {
	t := &Table{bundles: bundles}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide table. It panics if the embedded bundles are
// inconsistent, which tests catch before a release.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Load()
		if err != nil {
			panic(fmt.Sprintf("i18n: embedded bundles are invalid: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// Lookup returns the bundle for a screen in the given language
func (t *Table) Lookup(lang model.Language, screen ScreenID) Bundle {
	return t.bundles[lang][screen]
}

// Validate checks that every language defines every screen with the same keys
// and list lengths as English
func (t *Table) Validate() error {
	var err error

	ref, ok := t.bundles[model.DefaultLanguage]
	if !ok {
		return fmt.Errorf("missing %s bundles", model.DefaultLanguage)
	}

	for _, lang := range model.Languages() {
		bundles, ok := t.bundles[lang]
		if !ok {
			err = multierr.Append(err, fmt.Errorf("missing %s bundles", lang))
			continue
		}
		for _, screen := range Screens() {
			want, okRef := ref[screen]
			got, okLang := bundles[screen]
			if !okRef || !okLang {
				err = multierr.Append(err, fmt.Errorf("%s: missing screen %q", lang, screen))
				continue
			}
			err = multierr.Append(err, compareBundles(lang, screen, want, got))
		}
	}

	return err
}

func compareBundles(lang model.Language, screen ScreenID, want, got Bundle) error {
	var err error

	if missing, extra := diffKeys(want.Texts, got.Texts); len(missing)+len(extra) > 0 {
		err = multierr.Append(err, fmt.Errorf("%s/%s: text keys missing [%s] extra [%s]",
			lang, screen, strings.Join(missing, ", "), strings.Join(extra, ", ")))
	}
	for key, text := range got.Texts {
		if strings.TrimSpace(text) == "" {
			err = multierr.Append(err, fmt.Errorf("%s/%s: empty text for %q", lang, screen, key))
		}
	}

	if missing, extra := diffKeys(want.Lists, got.Lists); len(missing)+len(extra) > 0 {
		err = multierr.Append(err, fmt.Errorf("%s/%s: list keys missing [%s] extra [%s]",
			lang, screen, strings.Join(missing, ", "), strings.Join(extra, ", ")))
	}
	for key, list := range want.Lists {
		if other, ok := got.Lists[key]; ok && len(other) != len(list) {
			err = multierr.Append(err, fmt.Errorf("%s/%s: list %q has %d items, want %d",
				lang, screen, key, len(other), len(list)))
		}
	}

	return err
}

func diffKeys[V any](want, got map[string]V) (missing, extra []string) {
	for key := range want {
		if _, ok := got[key]; !ok {
			missing = append(missing, key)
		}
	}
	for key := range got {
		if _, ok := want[key]; !ok {
			extra = append(extra, key)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return missing, extra
}
