package i18n

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func newTestService(t *testing.T) *I18nService {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.MustLoadMessageFile("en.json")
	bundle.MustLoadMessageFile("hi.json")
	return &I18nService{bundle: bundle}
}

// Keys raised by the repos and use cases must resolve in both bundles; T
// falls back to echoing the raw key when a message is missing.
func TestBundles_ResolveErrorKeys(t *testing.T) {
	svc := newTestService(t)

	keys := []string{
		"workitem.concurrent_modification",
		"workitem.invalid_ref",
		"scope.outside_jurisdiction",
		"scope.not_admin",
		"assignee.unknown",
		"transition.note_required",
		"user.not_found",
	}

	for _, key := range keys {
		for _, lang := range []string{"en", "hi"} {
			msg := svc.T(lang, key, nil)
			assert.NotEqual(t, key, msg, "key %q must resolve for %q", key, lang)
		}
	}
}
