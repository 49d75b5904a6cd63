// Package htmlrender renders card entries to HTML markup with
// html/template. It is the reference Renderer implementation used by the
// server and the CLI.
package htmlrender

import (
	"context"
	"html/template"
	"strings"

	"github.com/KirkDiggler/roll-api/internal/errors"
	"github.com/KirkDiggler/roll-api/internal/host"
	"github.com/KirkDiggler/roll-api/internal/settings"
)

const entryTemplates = `
{{define "header"}}<header class="card-header"><h3>{{.Title}}</h3>{{if .Subtitle}}<span class="subtitle">{{.Subtitle}}</span>{{end}}</header>{{end}}

{{define "multiroll"}}<div class="multiroll" data-roll-type="{{.RollType}}">{{if .Title}}<span class="title">{{.Title}}</span>{{end}}<span class="formula">{{.Formula}}</span>{{range .Outcomes}}<span class="die{{if .Ignored}} ignored{{end}}{{if .IsCrit}} crit{{end}}">{{.Result.Total}}</span>{{end}}<span class="total">{{.ChosenTotal}}</span></div>{{end}}

{{define "damage"}}<div class="damage" data-damage-type="{{.Entry.DamageType}}">{{range $slot, $label := .Entry.Labels}}<span class="label slot-{{$slot}}">{{$label}}</span>{{end}}<span class="formula">{{.Entry.Formula}}</span><span class="base">{{.Entry.Base.Total}}</span>{{if .Entry.CritExtra}}<span class="crit-extra">{{.CritString}} +{{.Entry.CritExtra.Total}}</span>{{end}}<span class="total">{{.Total}}</span></div>{{end}}

{{define "button"}}<button class="save-button" data-ability="{{.Ability}}">{{.Ability}} Save{{if not .HideDC}} DC {{.DC}}{{end}}</button>{{end}}

{{define "description"}}<div class="description">{{.}}</div>{{end}}

{{define "card"}}<div class="roll-card" data-item="{{.Card.ItemID}}">{{range .Markup}}{{.}}{{end}}</div>{{end}}
`

// Renderer renders entries with the embedded templates
type Renderer struct {
	tmpl *template.Template

	// CritString is prepended to critical extra totals
	CritString string
}

// New creates a renderer. The crit string comes from the settings snapshot
// of the enclosing request; defaults apply when empty.
func New(critString string) (*Renderer, error) {
	tmpl, err := template.New("entries").Parse(entryTemplates)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse entry templates")
	}
	if critString == "" {
		critString = settings.Defaults().CritString
	}
	return &Renderer{tmpl: tmpl, CritString: critString}, nil
}

type damageData struct {
	Entry      *host.DamageEntry
	CritString string
	Total      int32
}

type cardData struct {
	Card   *host.CardContext
	Markup []template.HTML
}

// RenderEntry renders one entry to markup
func (r *Renderer) RenderEntry(_ context.Context, entry *host.Entry) (string, error) {
	var sb strings.Builder
	var err error

	switch entry.Kind {
	case host.EntryHeader:
		err = r.tmpl.ExecuteTemplate(&sb, "header", entry.Header)
	case host.EntryMultiRoll:
		err = r.tmpl.ExecuteTemplate(&sb, "multiroll", entry.MultiRoll)
	case host.EntryDamage:
		total := entry.Damage.Base.Total
		if entry.Damage.CritExtra != nil {
			total += entry.Damage.CritExtra.Total
		}
		err = r.tmpl.ExecuteTemplate(&sb, "damage", &damageData{
			Entry:      entry.Damage,
			CritString: r.CritString,
			Total:      total,
		})
	case host.EntryButton:
		err = r.tmpl.ExecuteTemplate(&sb, "button", entry.Button)
	case host.EntryDescription:
		err = r.tmpl.ExecuteTemplate(&sb, "description", entry.Text)
	case host.EntryHTML:
		// Raw markup passes through untouched
		return entry.Text, nil
	default:
		return "", errors.InvalidArgumentf("unknown entry kind: %s", entry.Kind)
	}

	if err != nil {
		return "", errors.Wrapf(err, "failed to render %s entry", entry.Kind)
	}
	return sb.String(), nil
}

// RenderCard assembles rendered entries into the final card markup
func (r *Renderer) RenderCard(_ context.Context, card *host.CardContext, markup []string) (string, error) {
	trusted := make([]template.HTML, len(markup))
	for i, m := range markup {
		// Entry markup is produced by RenderEntry and already escaped
		trusted[i] = template.HTML(m) // #nosec G203
	}

	var sb strings.Builder
	if err := r.tmpl.ExecuteTemplate(&sb, "card", &cardData{Card: card, Markup: trusted}); err != nil {
		return "", errors.Wrap(err, "failed to render card")
	}
	return sb.String(), nil
}

var _ host.Renderer = (*Renderer)(nil)
