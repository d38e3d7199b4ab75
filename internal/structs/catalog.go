package structs

import "github.com/shopspring/decimal"

type Product struct {
	Control     string          `json:"control" mapstructure:"control"`
	Name        string          `json:"name" mapstructure:"name"`
	Price       decimal.Decimal `json:"price" mapstructure:"-"`
	RawPrice    string          `json:"-" mapstructure:"price"`
	Icon        string          `json:"icon" mapstructure:"icon"`
	Description string          `json:"description" mapstructure:"description"`
}

// AddCommand is the command bound to the product's "add to cart" control.
func (p Product) AddCommand() Command {
	return Command{
		Op:      OpAdd,
		Name:    p.Name,
		Price:   p.Price.String(),
		Icon:    p.Icon,
		Control: p.Control,
	}
}
