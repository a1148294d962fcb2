package entity

import "github.com/shopspring/decimal"

// CartItem es una entrada del carrito de sesión (vive en Redis, no en PostgreSQL).
// PrecioUnitario es el precio mostrado al añadir; el checkout vuelve a leer el
// precio vigente para la captura definitiva en la línea de pedido.
type CartItem struct {
	ProductoID     string          `json:"producto_id"`
	Nombre         string          `json:"nombre"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Cantidad       int             `json:"cantidad"`
}

// Cart es el carrito completo de un usuario.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Total suma cantidad × precio de cada entrada.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.PrecioUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad))))
	}
	return total
}

// IsEmpty indica si el carrito no tiene entradas.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// SetItem añade o reemplaza la cantidad de un producto. Cantidad 0 elimina la entrada.
func (c *Cart) SetItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductoID == item.ProductoID {
			if item.Cantidad <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
				return
			}
			c.Items[i].Cantidad = item.Cantidad
			c.Items[i].PrecioUnitario = item.PrecioUnitario
			c.Items[i].Nombre = item.Nombre
			return
		}
	}
	if item.Cantidad > 0 {
		c.Items = append(c.Items, item)
	}
}

// AddItem añade un producto, acumulando cantidad si ya estaba.
func (c *Cart) AddItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductoID == item.ProductoID {
			c.Items[i].Cantidad += item.Cantidad
			c.Items[i].PrecioUnitario = item.PrecioUnitario
			return
		}
	}
	c.Items = append(c.Items, item)
}

// RemoveItem elimina la entrada del producto si existe.
func (c *Cart) RemoveItem(productoID string) {
	for i := range c.Items {
		if c.Items[i].ProductoID == productoID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}
