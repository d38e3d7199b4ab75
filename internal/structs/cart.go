package structs

import "github.com/shopspring/decimal"

type CartEntry struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Icon      string          `json:"icon"`
	Quantity  int             `json:"quantity"`
}

// AddToCart carries the static data of an "add" control. Price is loose on
// purpose: controls may send it as a number or as a numeric string.
type AddToCart struct {
	Name    string      `json:"name"`
	Price   interface{} `json:"price"`
	Icon    string      `json:"icon"`
	Control string      `json:"control,omitempty"`
}

type Badge struct {
	Count  int  `json:"count"`
	Hidden bool `json:"hidden"`
}

type PanelKind string

const (
	PanelEmpty     PanelKind = "empty"
	PanelPopulated PanelKind = "populated"
)

type PanelLine struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Icon         string          `json:"icon"`
	Quantity     int             `json:"quantity"`
	LineSubtotal decimal.Decimal `json:"line_subtotal"`
}

// PanelModel is everything the presentation layer needs to draw the cart
// panel. An empty cart yields Kind == PanelEmpty and no lines.
type PanelModel struct {
	Kind       PanelKind       `json:"kind"`
	Lines      []PanelLine     `json:"lines,omitempty"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Currency   string          `json:"currency"`
}

func (m PanelModel) IsEmpty() bool {
	return m.Kind == PanelEmpty
}

type Receipt struct {
	Lines      []PanelLine     `json:"lines"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type Snapshot struct {
	Badge        Badge      `json:"badge"`
	Panel        PanelModel `json:"panel"`
	PanelVisible bool       `json:"panel_visible"`
}

type CommandOp string

const (
	OpAdd            CommandOp = "add"
	OpChangeQuantity CommandOp = "change_quantity"
	OpRemove         CommandOp = "remove"
	OpCheckout       CommandOp = "checkout"
)

// Command is what a UI control is bound to. Only the fields relevant to Op
// are read.
type Command struct {
	Op      CommandOp   `json:"op" binding:"required"`
	Name    string      `json:"name,omitempty"`
	Price   interface{} `json:"price,omitempty"`
	Icon    string      `json:"icon,omitempty"`
	Control string      `json:"control,omitempty"`
	ID      string      `json:"id,omitempty"`
	Delta   int         `json:"delta,omitempty"`
}
