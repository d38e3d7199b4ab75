package catalog

import (
	"testing"

	"capstore/internal/structs"
	"capstore/pkg/config"
	"capstore/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	svc, err := New(Params{Config: config.NewConfig(), Logger: logger.NewNop()})
	require.NoError(t, err)

	products := svc.List()
	require.Len(t, products, len(defaultProducts))
	assert.True(t, decimal.NewFromInt(450).Equal(products[0].Price))

	p, ok := svc.ByControl("add-urban-trucker")
	require.True(t, ok)
	assert.Equal(t, "Urban Trucker", p.Name)
}

func TestPrepareFillsControlAndValidates(t *testing.T) {
	svc, err := NewStatic([]structs.Product{{Name: "Snow Beanie 2.0", RawPrice: "199.90", Icon: "🧶"}})
	require.NoError(t, err)
	assert.Equal(t, "add-snow-beanie-2-0", svc.List()[0].Control)

	_, err = NewStatic([]structs.Product{{Name: "Cap", RawPrice: "0", Icon: "🧢"}})
	assert.ErrorIs(t, err, structs.ErrInvalidPrice)

	_, err = NewStatic([]structs.Product{{Name: "Cap", RawPrice: "abc", Icon: "🧢"}})
	assert.ErrorIs(t, err, structs.ErrInvalidPrice)

	_, err = NewStatic([]structs.Product{{Name: "", RawPrice: "10", Icon: "🧢"}})
	assert.ErrorIs(t, err, structs.ErrInvalidProduct)

	_, err = NewStatic([]structs.Product{
		{Name: "Cap", RawPrice: "10", Icon: "🧢"},
		{Name: "Cap", RawPrice: "12", Icon: "🧢"},
	})
	assert.ErrorIs(t, err, structs.ErrInvalidProduct)
}

func TestAddCommandIsBoundToProduct(t *testing.T) {
	svc, err := NewStatic([]structs.Product{{Name: "Cap", RawPrice: "100", Icon: "🧢"}})
	require.NoError(t, err)

	cmd := svc.List()[0].AddCommand()
	assert.Equal(t, structs.Command{Op: structs.OpAdd, Name: "Cap", Price: "100", Icon: "🧢", Control: "add-cap"}, cmd)
}
