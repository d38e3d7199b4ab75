package cart

import (
	"context"
	"fmt"
	"math"
	"strings"

	"capstore/internal/structs"
	"capstore/internal/texts"
	"capstore/pkg/logger"
	"capstore/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

const (
	// MaxQuantity caps a single entry so the item count of a cart stays
	// far from int overflow.
	MaxQuantity = math.MaxInt32

	maxPriceLen      = 64
	maxPriceExponent = 12
	minPriceExponent = -8
)

var maxUnitPrice = decimal.New(1, maxPriceExponent)

type (
	// View receives the two refresh signals. They are always sent as a pair.
	View interface {
		RefreshBadge(ctx context.Context, badge structs.Badge)
		RefreshPanel(ctx context.Context, model structs.PanelModel)
	}

	Notifier interface {
		Notify(ctx context.Context, message string)
		Acknowledge(ctx context.Context, control, label string)
	}

	Options struct {
		Logger          logger.Logger
		View            View
		Notifier        Notifier
		Lang            utils.Lang
		Currency        string
		HideBadgeAtZero bool
		NewID           func() string
	}

	// Controller owns one cart. It is not safe for concurrent use: the
	// owning session runs every call and timer callback one at a time.
	Controller interface {
		Add(ctx context.Context, req structs.AddToCart) error
		ChangeQuantity(ctx context.Context, id string, delta int) bool
		Remove(ctx context.Context, id string) bool
		Checkout(ctx context.Context) (structs.Receipt, error)
		Dispatch(ctx context.Context, cmd structs.Command) error

		Entries() []structs.CartEntry
		TotalItemCount() int
		TotalPrice() decimal.Decimal
		Badge() structs.Badge
		RenderModel() structs.PanelModel
		RefreshPanel(ctx context.Context)
	}

	controller struct {
		logger          logger.Logger
		view            View
		notifier        Notifier
		lang            utils.Lang
		currency        string
		hideBadgeAtZero bool
		newID           func() string

		// insertion ordered; lookups are linear since carts stay small
		entries []*structs.CartEntry
	}
)

func New(opts Options) Controller {
	c := &controller{
		logger:          opts.Logger,
		view:            opts.View,
		notifier:        opts.Notifier,
		lang:            opts.Lang,
		currency:        opts.Currency,
		hideBadgeAtZero: opts.HideBadgeAtZero,
		newID:           opts.NewID,
		entries:         []*structs.CartEntry{},
	}
	if c.logger == nil {
		c.logger = logger.NewNop()
	}
	if c.newID == nil {
		c.newID = utils.GenUUID
	}
	if c.lang == "" {
		c.lang = utils.EN
	}
	return c
}

func (c *controller) Add(ctx context.Context, req structs.AddToCart) error {
	name := strings.TrimSpace(req.Name)
	icon := strings.TrimSpace(req.Icon)
	rawPrice := strings.TrimSpace(cast.ToString(req.Price))

	if name == "" || icon == "" || rawPrice == "" {
		c.logger.Warn(ctx, "add rejected: missing fields",
			zap.String("name", req.Name), zap.Any("price", req.Price), zap.String("icon", req.Icon))
		c.notify(ctx, texts.Get(c.lang, texts.AddFailed))
		return fmt.Errorf("%w: name, price and icon are required", structs.ErrInvalidProduct)
	}

	price, err := parsePrice(rawPrice)
	if err != nil {
		c.logger.Warn(ctx, "add rejected: bad price", zap.String("name", name), zap.String("price", rawPrice), zap.Error(err))
		c.notify(ctx, texts.Get(c.lang, texts.InvalidPrice))
		return err
	}

	if entry := c.findByName(name); entry != nil {
		entry.Quantity = addQuantity(entry.Quantity, 1)
		c.logger.Info(ctx, "cart entry incremented", zap.String("id", entry.ID), zap.Int("quantity", entry.Quantity))
	} else {
		entry = &structs.CartEntry{
			ID:        c.newID(),
			Name:      name,
			UnitPrice: price,
			Icon:      icon,
			Quantity:  1,
		}
		c.entries = append(c.entries, entry)
		c.logger.Info(ctx, "cart entry added", zap.String("id", entry.ID), zap.String("name", name), zap.String("price", price.String()))
	}

	c.refresh(ctx)
	if req.Control != "" && c.notifier != nil {
		c.notifier.Acknowledge(ctx, req.Control, texts.Get(c.lang, texts.ControlAdded))
	}
	c.notify(ctx, texts.Getf(c.lang, texts.AddedToCart, name))
	return nil
}

func (c *controller) ChangeQuantity(ctx context.Context, id string, delta int) bool {
	_, entry := c.findByID(id)
	if entry == nil {
		return false
	}

	// compared before adding, so a huge delta cannot wrap into a removal
	if delta <= -entry.Quantity {
		return c.Remove(ctx, id)
	}
	quantity := addQuantity(entry.Quantity, delta)

	entry.Quantity = quantity
	c.logger.Info(ctx, "cart entry quantity changed", zap.String("id", id), zap.Int("delta", delta), zap.Int("quantity", quantity))
	c.refresh(ctx)
	return true
}

func (c *controller) Remove(ctx context.Context, id string) bool {
	idx, entry := c.findByID(id)
	if entry == nil {
		return false
	}

	name := entry.Name
	c.entries = append(c.entries[:idx], c.entries[idx+1:]...)
	c.logger.Info(ctx, "cart entry removed", zap.String("id", id), zap.String("name", name))

	c.refresh(ctx)
	c.notify(ctx, texts.Getf(c.lang, texts.RemovedFromCart, name))
	return true
}

func (c *controller) Checkout(ctx context.Context) (structs.Receipt, error) {
	if len(c.entries) == 0 {
		c.notify(ctx, texts.Get(c.lang, texts.CheckoutEmpty))
		return structs.Receipt{}, structs.ErrCartEmpty
	}

	model := c.RenderModel()
	receipt := structs.Receipt{
		Lines:      model.Lines,
		TotalItems: model.TotalItems,
		TotalPrice: model.TotalPrice,
	}

	c.notify(ctx, texts.Getf(c.lang, texts.CheckoutDone, utils.FCurrency(receipt.TotalPrice), c.currency))
	c.entries = []*structs.CartEntry{}
	c.logger.Info(ctx, "checkout completed",
		zap.Int("items", receipt.TotalItems), zap.String("total", receipt.TotalPrice.String()))

	c.refresh(ctx)
	return receipt, nil
}

func (c *controller) Dispatch(ctx context.Context, cmd structs.Command) error {
	switch cmd.Op {
	case structs.OpAdd:
		return c.Add(ctx, structs.AddToCart{
			Name:    cmd.Name,
			Price:   cmd.Price,
			Icon:    cmd.Icon,
			Control: cmd.Control,
		})
	case structs.OpChangeQuantity:
		c.ChangeQuantity(ctx, cmd.ID, cmd.Delta)
		return nil
	case structs.OpRemove:
		c.Remove(ctx, cmd.ID)
		return nil
	case structs.OpCheckout:
		_, err := c.Checkout(ctx)
		return err
	default:
		return fmt.Errorf("%w: %q", structs.ErrUnknownCommand, cmd.Op)
	}
}

func (c *controller) Entries() []structs.CartEntry {
	out := make([]structs.CartEntry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, *e)
	}
	return out
}

func (c *controller) RefreshPanel(ctx context.Context) {
	if c.view != nil {
		c.view.RefreshPanel(ctx, c.RenderModel())
	}
}

func (c *controller) refresh(ctx context.Context) {
	if c.view == nil {
		return
	}
	c.view.RefreshBadge(ctx, c.Badge())
	c.view.RefreshPanel(ctx, c.RenderModel())
}

func (c *controller) notify(ctx context.Context, message string) {
	if c.notifier != nil {
		c.notifier.Notify(ctx, message)
	}
}

func (c *controller) findByName(name string) *structs.CartEntry {
	for _, e := range c.entries {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func (c *controller) findByID(id string) (int, *structs.CartEntry) {
	for i, e := range c.entries {
		if e.ID == id {
			return i, e
		}
	}
	return -1, nil
}

// addQuantity adds delta to a positive quantity, saturating at MaxQuantity.
func addQuantity(quantity, delta int) int {
	if delta > MaxQuantity-quantity {
		return MaxQuantity
	}
	return quantity + delta
}

// parsePrice accepts a positive amount up to maxUnitPrice with at most
// -minPriceExponent decimals. The exponent is checked before any
// comparison: comparing rescales, and 1e100000000 would not fit in memory.
func parsePrice(raw string) (decimal.Decimal, error) {
	if len(raw) > maxPriceLen {
		return decimal.Zero, fmt.Errorf("%w: %w: too long", structs.ErrInvalidProduct, structs.ErrInvalidPrice)
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w: %q", structs.ErrInvalidProduct, structs.ErrInvalidPrice, raw)
	}
	if exp := price.Exponent(); exp > maxPriceExponent || exp < minPriceExponent {
		return decimal.Zero, fmt.Errorf("%w: %w: %q out of range", structs.ErrInvalidProduct, structs.ErrInvalidPrice, raw)
	}
	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %w: %s must be positive", structs.ErrInvalidProduct, structs.ErrInvalidPrice, raw)
	}
	if price.GreaterThan(maxUnitPrice) {
		return decimal.Zero, fmt.Errorf("%w: %w: %s exceeds %s", structs.ErrInvalidProduct, structs.ErrInvalidPrice, raw, maxUnitPrice)
	}
	return price, nil
}
