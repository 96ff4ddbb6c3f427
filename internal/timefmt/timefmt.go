// Package timefmt renders timestamps for display.
package timefmt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/nl"
	ut "github.com/go-playground/universal-translator"
)

const (
	clockLayout   = "3:04 PM"
	weekdayLayout = "Mon"

	DefaultLocale = "en_US"
)

// FormatClock12h renders t as "H:MM AM|PM"; midnight is shown as 12.
func FormatClock12h(t time.Time) string {
	return t.Format(clockLayout)
}

// AbbreviatedWeekday returns one of Sun, Mon, Tue, Wed, Thu, Fri, Sat.
func AbbreviatedWeekday(t time.Time) string {
	return t.Format(weekdayLayout)
}

var translators = func() *ut.UniversalTranslator {
	fallback := en_US.New()
	return ut.New(fallback, fallback, en.New(), en_GB.New(), de.New(), es.New(), fr.New(), it.New(), nl.New())
}()

// Formatter renders locale-dependent dates.
type Formatter struct {
	trans ut.Translator
}

// NewFormatter returns a Formatter for locale, en_US when empty. Unknown locales are an error.
func NewFormatter(locale string) (*Formatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	trans, found := translators.GetTranslator(locale)
	if !found {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}
	return &Formatter{trans: trans}, nil
}

// FormatLongDate renders t as "day month year" with the locale's abbreviated
// month name, e.g. "4 Jun 2024" for en_US.
func (f *Formatter) FormatLongDate(t time.Time) string {
	b := make([]byte, 0, 16)
	b = strconv.AppendInt(b, int64(t.Day()), 10)
	b = append(b, ' ')
	b = append(b, f.trans.MonthAbbreviated(t.Month())...)
	b = append(b, ' ')
	b = strconv.AppendInt(b, int64(t.Year()), 10)
	return string(b)
}

func (f *Formatter) Locale() string {
	return f.trans.Locale()
}
