package catalog

import (
	"context"
	"fmt"
	"strings"

	"capstore/internal/structs"
	"capstore/pkg/config"
	"capstore/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

var defaultProducts = []structs.Product{
	{Control: "add-classic-snapback", Name: "Classic Snapback", RawPrice: "450", Icon: "🧢", Description: "Flat brim, adjustable strap."},
	{Control: "add-urban-trucker", Name: "Urban Trucker", RawPrice: "380", Icon: "🧢", Description: "Mesh back, foam front."},
	{Control: "add-vintage-dad-hat", Name: "Vintage Dad Hat", RawPrice: "320", Icon: "👒", Description: "Washed cotton, curved brim."},
	{Control: "add-premium-fitted", Name: "Premium Fitted", RawPrice: "550", Icon: "🎩", Description: "Structured crown, wool blend."},
}

type (
	Params struct {
		fx.In
		Config config.IConfig
		Logger logger.Logger
	}

	Service interface {
		List() []structs.Product
		ByControl(control string) (structs.Product, bool)
	}

	service struct {
		products []structs.Product
	}
)

func New(p Params) (Service, error) {
	ctx := context.Background()

	var raw []structs.Product
	if err := p.Config.UnmarshalKey("catalog.products", &raw); err != nil {
		return nil, fmt.Errorf("catalog: decode products: %w", err)
	}
	if len(raw) == 0 {
		raw = defaultProducts
	}

	products, err := prepare(raw)
	if err != nil {
		p.Logger.Error(ctx, "invalid catalog", zap.Error(err))
		return nil, err
	}
	p.Logger.Info(ctx, "catalog loaded", zap.Int("products", len(products)))

	return &service{products: products}, nil
}

// NewStatic builds a catalog from products without configuration.
func NewStatic(products []structs.Product) (Service, error) {
	prepared, err := prepare(products)
	if err != nil {
		return nil, err
	}
	return &service{products: prepared}, nil
}

func prepare(raw []structs.Product) ([]structs.Product, error) {
	var (
		out      = make([]structs.Product, 0, len(raw))
		controls = map[string]bool{}
		names    = map[string]bool{}
	)
	for i, p := range raw {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" || strings.TrimSpace(p.Icon) == "" {
			return nil, fmt.Errorf("product %d: %w: name and icon are required", i, structs.ErrInvalidProduct)
		}
		if p.Price.IsZero() {
			price, err := decimal.NewFromString(strings.TrimSpace(p.RawPrice))
			if err != nil {
				return nil, fmt.Errorf("product %q: %w: %q", p.Name, structs.ErrInvalidPrice, p.RawPrice)
			}
			p.Price = price
		}
		if !p.Price.IsPositive() {
			return nil, fmt.Errorf("product %q: %w: must be positive", p.Name, structs.ErrInvalidPrice)
		}
		if p.Control == "" {
			p.Control = "add-" + slug(p.Name)
		}
		if names[p.Name] || controls[p.Control] {
			return nil, fmt.Errorf("product %q: %w: duplicate name or control", p.Name, structs.ErrInvalidProduct)
		}
		names[p.Name] = true
		controls[p.Control] = true
		out = append(out, p)
	}
	return out, nil
}

func (s *service) List() []structs.Product {
	out := make([]structs.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *service) ByControl(control string) (structs.Product, bool) {
	for _, p := range s.products {
		if p.Control == control {
			return p, true
		}
	}
	return structs.Product{}, false
}

func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
