// Package i18n renders the human-readable text stored on timeline events
// and shown next to them.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
)

type eventTemplate struct {
	args int
	pt   string
	en   string
}

// Message keys are the event kinds themselves.
var eventTemplates = map[vo.EventKind]eventTemplate{
	vo.EventOpening: {
		args: 2,
		pt:   "Chamado %s aberto com status %s",
		en:   "Ticket %s opened with status %s",
	},
	vo.EventUpdated: {
		args: 1,
		pt:   "Campos alterados: %s",
		en:   "Fields changed: %s",
	},
	vo.EventStatusChanged: {
		args: 2,
		pt:   "Status alterado de %s para %s",
		en:   "Status changed from %s to %s",
	},
	vo.EventClosed: {
		args: 1,
		pt:   "Chamado encerrado com status %s",
		en:   "Ticket closed with status %s",
	},
	vo.EventReopened: {
		args: 1,
		pt:   "Chamado reaberto com status %s",
		en:   "Ticket reopened with status %s",
	},
	vo.EventAttachmentAdded: {
		args: 1,
		pt:   "Anexo adicionado: %s",
		en:   "Attachment added: %s",
	},
	vo.EventAttachmentRemoved: {
		args: 1,
		pt:   "Anexo removido: %s",
		en:   "Attachment removed: %s",
	},
	vo.EventComment: {
		args: 1,
		pt:   "Comentário de %s",
		en:   "Comment by %s",
	},
}

// EventDescriber implements ticket.EventDescriber with an x/text catalog.
type EventDescriber struct {
	tag     language.Tag
	printer *message.Printer
}

// NewEventDescriber returns a describer for locale ("pt-BR" or "en").
// Unknown locales fall back to pt-BR.
func NewEventDescriber(locale string) *EventDescriber {
	ptBR := language.BrazilianPortuguese
	builder := catalog.NewBuilder(catalog.Fallback(ptBR))
	for kind, tpl := range eventTemplates {
		_ = builder.SetString(ptBR, string(kind), tpl.pt)
		_ = builder.SetString(language.English, string(kind), tpl.en)
	}

	tag := matchLocale(locale)
	return &EventDescriber{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}
}

func (d *EventDescriber) Locale() language.Tag {
	return d.tag
}

func (d *EventDescriber) Describe(kind vo.EventKind, args ...any) string {
	tpl, ok := eventTemplates[kind]
	if !ok {
		return string(kind)
	}
	padded := make([]any, tpl.args)
	for i := range padded {
		if i < len(args) {
			padded[i] = args[i]
		} else {
			padded[i] = "-"
		}
	}
	return d.printer.Sprintf(string(kind), padded...)
}

var supported = language.NewMatcher([]language.Tag{
	language.BrazilianPortuguese,
	language.English,
})

func matchLocale(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.BrazilianPortuguese
	}
	_, idx, conf := supported.Match(tag)
	if conf == language.No {
		return language.BrazilianPortuguese
	}
	return []language.Tag{language.BrazilianPortuguese, language.English}[idx]
}
