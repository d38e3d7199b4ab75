package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"

	"capstore/internal/structs"
	"capstore/internal/texts"
	"capstore/pkg/config"
	"capstore/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var (
	Module = fx.Provide(New)
)

//go:embed templates/*.html
var templateFS embed.FS

type (
	Params struct {
		fx.In
		Config config.IConfig
	}

	PageData struct {
		SessionID string
		Products  []structs.Product
		Badge     structs.Badge
		Panel     structs.PanelModel
	}

	// Renderer turns render models into markup. The panel is always
	// rendered whole; carts are small enough that diffing is not worth it.
	Renderer struct {
		tmpl           *template.Template
		lang           utils.Lang
		currency       string
		continueTarget string
	}
)

func New(p Params) (*Renderer, error) {
	lang, ok := utils.ParseLang(p.Config.GetString("storefront.language"))
	if !ok {
		lang = utils.EN
	}
	return NewRenderer(lang, p.Config.GetString("cart.currency_symbol"), p.Config.GetString("catalog.continue_target"))
}

func NewRenderer(lang utils.Lang, currency, continueTarget string) (*Renderer, error) {
	r := &Renderer{lang: lang, currency: currency, continueTarget: continueTarget}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"t":          func(key string) string { return texts.Get(r.lang, key) },
		"itemCount":  func(n int) string { return texts.ItemCount(r.lang, n) },
		"money":      func(d decimal.Decimal) string { return "$" + utils.FCurrency(d) + r.currency },
		"command":    commandJSON,
		"continueTo": func() string { return r.continueTarget },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("render: parse templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

func (r *Renderer) Lang() utils.Lang {
	return r.lang
}

func (r *Renderer) Currency() string {
	return r.currency
}

func (r *Renderer) Panel(model structs.PanelModel) ([]byte, error) {
	return r.execute("panel", model)
}

func (r *Renderer) Page(data PageData) ([]byte, error) {
	return r.execute("page", data)
}

func (r *Renderer) execute(name string, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render: %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func commandJSON(cmd structs.Command) (string, error) {
	b, err := json.Marshal(cmd)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
