package cart

import (
	"capstore/internal/structs"

	"github.com/shopspring/decimal"
)

// Aggregates are always derived from the entry list; nothing is cached.

func (c *controller) TotalItemCount() int {
	total := 0
	for _, e := range c.entries {
		total += e.Quantity
	}
	return total
}

func (c *controller) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.entries {
		total = total.Add(lineSubtotal(e))
	}
	return total
}

func (c *controller) Badge() structs.Badge {
	count := c.TotalItemCount()
	return structs.Badge{
		Count:  count,
		Hidden: c.hideBadgeAtZero && count == 0,
	}
}

func (c *controller) RenderModel() structs.PanelModel {
	model := structs.PanelModel{
		Kind:       structs.PanelEmpty,
		TotalItems: c.TotalItemCount(),
		TotalPrice: c.TotalPrice(),
		Currency:   c.currency,
	}
	if len(c.entries) == 0 {
		return model
	}

	model.Kind = structs.PanelPopulated
	model.Lines = make([]structs.PanelLine, 0, len(c.entries))
	for _, e := range c.entries {
		model.Lines = append(model.Lines, structs.PanelLine{
			ID:           e.ID,
			Name:         e.Name,
			UnitPrice:    e.UnitPrice,
			Icon:         e.Icon,
			Quantity:     e.Quantity,
			LineSubtotal: lineSubtotal(e),
		})
	}
	return model
}

func lineSubtotal(e *structs.CartEntry) decimal.Decimal {
	return e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Quantity)))
}
