package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		lang string
		want language.Tag
	}{
		{"", language.English},
		{"en", language.English},
		{"en-GB", language.English},
		{"fr", language.French},
		{"fr-CA", language.French},
		{"fr-FR,fr;q=0.9,en;q=0.8", language.French},
		{"fr_FR.UTF-8", language.French},
		{"en_US@euro", language.English},
		{"C.UTF-8", language.English},
		{"not a tag!!", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.lang))
		})
	}
}

func TestInitSwitchesCatalog(t *testing.T) {
	t.Cleanup(func() { Init("en") })

	Init("fr")
	assert.Equal(t, "Démarré depuis", T(MsgRCListLogsRunningSinceLabel))

	Init("en")
	assert.Equal(t, "Running since", T(MsgRCListLogsRunningSinceLabel))
	assert.Equal(t, "Not running", T(MsgRCListLogsNotRunningLabel))
}

func TestEveryKeyTranslated(t *testing.T) {
	for tag, c := range catalogs {
		for k := MessageKey(0); k < msgCount; k++ {
			assert.NotEmpty(t, c[k], "%s: missing message %d", tag, k)
		}
	}
}

func TestOutOfRangeKey(t *testing.T) {
	assert.Equal(t, "", T(msgCount))
	assert.Equal(t, "", T(MessageKey(-1)))
}

func TestTf(t *testing.T) {
	t.Cleanup(func() { Init("en") })
	Init("en")
	assert.Equal(t, "Copied: web-1", Tf(MsgCopied, "web-1"))
}
