// Package i18n translates menu titles. Titles double as message ids: a
// title with no translation for the active language is shown as written.
package i18n

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// DefaultLanguage is the language titles are written in.
var DefaultLanguage = language.English

// Localizer resolves titles for one set of preferred languages.
type Localizer struct {
	bundle *goi18n.Bundle
	loc    *goi18n.Localizer
	tags   []language.Tag
}

// New returns a Localizer with an empty bundle whose source language is
// DefaultLanguage. preferred may hold BCP 47 tags or Accept-Language values.
func New(preferred ...string) *Localizer {
	bundle := goi18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	l := &Localizer{bundle: bundle}
	l.SetLanguages(preferred...)
	return l
}

// SetLanguages replaces the preferred languages.
func (l *Localizer) SetLanguages(preferred ...string) {
	l.tags = l.tags[:0]
	for _, p := range preferred {
		if tag, err := language.Parse(p); err == nil {
			l.tags = append(l.tags, tag)
		}
	}
	l.loc = goi18n.NewLocalizer(l.bundle, preferred...)
}

// Languages returns the parsed preferred languages, skipping invalid tags.
func (l *Localizer) Languages() []language.Tag {
	return append([]language.Tag(nil), l.tags...)
}

// AddMessages parses a message file. The language is taken from the file
// name, as in "active.es.toml".
func (l *Localizer) AddMessages(name string, data []byte) error {
	if _, err := l.bundle.ParseMessageFileBytes(data, name); err != nil {
		return fmt.Errorf("parse messages %s: %w", name, err)
	}
	return nil
}

// LoadMessages reads and parses a message file from disk.
func (l *Localizer) LoadMessages(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read messages: %w", err)
	}
	return l.AddMessages(filepath.Base(path), data)
}

// Title returns the translation of title, or title itself when no
// translation exists for the preferred languages.
func (l *Localizer) Title(title string) string {
	if l == nil || title == "" {
		return title
	}
	out, err := l.loc.Localize(&goi18n.LocalizeConfig{
		DefaultMessage: &goi18n.Message{ID: title, Other: title},
	})
	if err != nil || out == "" {
		return title
	}
	return out
}
