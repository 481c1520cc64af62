package entity

import "encoding/json"

// Category representa una categoría del directorio (categories.json).
// Products es la fuente de verdad de pertenencia; ProductCount debe coincidir con len(Products).
type Category struct {
	Slug         string
	Name         string
	Description  string
	ProductCount int
	Products     []string        // slugs de productos
	Editorial    json.RawMessage // intro, FAQ, criterios de compra; se entrega sin interpretar
}

// UnmarshalJSON decodifica con la misma tolerancia que Product.
func (c *Category) UnmarshalJSON(data []byte) error {
	obj, ok := parseObject(data)
	if !ok {
		*c = Category{}
		return nil
	}
	count, _ := obj.count("product_count")
	*c = Category{
		Slug:         obj.str("slug"),
		Name:         obj.str("name"),
		Description:  obj.str("description"),
		ProductCount: count,
		Products:     obj.strs("products"),
	}
	if obj.has("editorial") {
		c.Editorial = append(json.RawMessage(nil), obj["editorial"]...)
	}
	return nil
}

// Contains indica si el slug pertenece a la categoría.
func (c *Category) Contains(slug string) bool {
	for _, s := range c.Products {
		if s == slug {
			return true
		}
	}
	return false
}
