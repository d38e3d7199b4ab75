package texts

import (
	"fmt"

	"capstore/pkg/utils"
)

type TextKey = string

const (
	// Cart notifications
	AddedToCart     TextKey = "added_to_cart"
	RemovedFromCart TextKey = "removed_from_cart"
	AddFailed       TextKey = "add_failed"
	InvalidPrice    TextKey = "invalid_price"
	CheckoutEmpty   TextKey = "checkout_empty"
	CheckoutDone    TextKey = "checkout_done"
	ControlAdded    TextKey = "control_added"

	// Forms
	SellPublished TextKey = "sell_published"
	ContactSent   TextKey = "contact_sent"

	// Panel
	CartTitle        TextKey = "cart_title"
	CartEmpty        TextKey = "cart_empty"
	CartEmptyHint    TextKey = "cart_empty_hint"
	CartTotal        TextKey = "cart_total"
	CartItemsOne     TextKey = "cart_items_one"
	CartItemsMany    TextKey = "cart_items_many"
	CheckoutButton   TextKey = "checkout_button"
	RemoveButton     TextKey = "remove_button"
	ContinueShopping TextKey = "continue_shopping"
	AddToCartButton  TextKey = "add_to_cart_button"
)

var MapText = map[TextKey]utils.Language{
	AddedToCart: {
		EN: "%s added to cart",
		ES: "%s agregada al carrito",
	},
	RemovedFromCart: {
		EN: "%s removed from cart",
		ES: "%s eliminada del carrito",
	},
	AddFailed: {
		EN: "Could not add the product to the cart",
		ES: "Error al agregar producto al carrito",
	},
	InvalidPrice: {
		EN: "Error: invalid price",
		ES: "Error: Precio inválido",
	},
	CheckoutEmpty: {
		EN: "Your cart is empty. Add some products to buy!",
		ES: "Tu carrito está vacío. ¡Agrega productos para comprar!",
	},
	CheckoutDone: {
		EN: "Purchase completed for $%s%s! Thanks for shopping 🎉",
		ES: "¡Compra realizada por $%s%s! Gracias por tu compra 🎉",
	},
	ControlAdded: {
		EN: "Added! ✓",
		ES: "¡Agregado! ✓",
	},
	SellPublished: {
		EN: "Your cap has been listed successfully!",
		ES: "¡Tu gorra ha sido publicada exitosamente!",
	},
	ContactSent: {
		EN: "Thanks for your message, we will get back to you soon!",
		ES: "¡Gracias por tu mensaje, te responderemos pronto!",
	},
	CartTitle: {
		EN: "Your cart",
		ES: "Tu carrito",
	},
	CartEmpty: {
		EN: "Your cart is empty",
		ES: "Tu carrito está vacío",
	},
	CartEmptyHint: {
		EN: "Add some amazing products!",
		ES: "¡Agrega algunos productos increíbles!",
	},
	CartTotal: {
		EN: "Total",
		ES: "Total",
	},
	CartItemsOne: {
		EN: "%d product in your cart",
		ES: "%d producto en tu carrito",
	},
	CartItemsMany: {
		EN: "%d products in your cart",
		ES: "%d productos en tu carrito",
	},
	CheckoutButton: {
		EN: "Proceed to checkout 🚀",
		ES: "Proceder al Pago 🚀",
	},
	RemoveButton: {
		EN: "Remove",
		ES: "Eliminar",
	},
	ContinueShopping: {
		EN: "Continue shopping",
		ES: "Continuar Comprando",
	},
	AddToCartButton: {
		EN: "Add to cart",
		ES: "Agregar al Carrito",
	},
}

func Get(lang utils.Lang, key TextKey) string {
	return MapText[key].By(lang)
}

func Getf(lang utils.Lang, key TextKey, args ...interface{}) string {
	return fmt.Sprintf(Get(lang, key), args...)
}

// ItemCount picks the singular or plural summary line.
func ItemCount(lang utils.Lang, n int) string {
	if n == 1 {
		return Getf(lang, CartItemsOne, n)
	}
	return Getf(lang, CartItemsMany, n)
}
