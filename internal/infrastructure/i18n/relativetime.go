package i18n

import (
	"time"

	"github.com/xeonx/timeago"
	"golang.org/x/text/language"
)

const day = 24 * time.Hour

var portuguese = timeago.Config{
	PastPrefix:   "há ",
	PastSuffix:   "",
	FuturePrefix: "em ",
	FutureSuffix: "",
	Periods: []timeago.FormatPeriod{
		{D: time.Second, One: "um segundo", Many: "%d segundos"},
		{D: time.Minute, One: "um minuto", Many: "%d minutos"},
		{D: time.Hour, One: "uma hora", Many: "%d horas"},
		{D: day, One: "um dia", Many: "%d dias"},
		{D: 30 * day, One: "um mês", Many: "%d meses"},
		{D: 365 * day, One: "um ano", Many: "%d anos"},
	},
	Zero:          "instantes",
	Max:           73 * day,
	DefaultLayout: "02/01/2006",
}

// RelativeTimeFormatter renders "3 hours ago" style labels.
type RelativeTimeFormatter struct {
	cfg timeago.Config
	now func() time.Time
}

func NewRelativeTimeFormatter(locale string) *RelativeTimeFormatter {
	cfg := portuguese
	if matchLocale(locale) == language.English {
		cfg = timeago.English
	}
	return &RelativeTimeFormatter{cfg: cfg, now: time.Now}
}

func (f *RelativeTimeFormatter) Format(t time.Time) string {
	return f.cfg.FormatReference(t, f.now())
}
