package catalog

import "github.com/tiendita/cart-ledger/internal/model"

// DefaultSeed is the dataset the catalog boots from when no persisted
// snapshot exists. Prices are in the base currency.
func DefaultSeed() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Laptop Gamer Asus ROG", UnitPrice: 1500, Stock: 5, ImageURL: "img/laptop-rog.jpg"},
		{ID: 2, Name: "Mouse Optico Logitech G502", UnitPrice: 25, Stock: 20, ImageURL: "img/mouse-g502.jpg"},
		{ID: 3, Name: "Teclado Mecanico Corsair K95", UnitPrice: 120, Stock: 12, ImageURL: "img/teclado-k95.jpg"},
		{ID: 4, Name: "Monitor 27\" Dell", UnitPrice: 350, Stock: 8, ImageURL: "img/monitor-dell.jpg"},
		{ID: 5, Name: "Placa de Video TUF Gaming 3090", UnitPrice: 1300, Stock: 3, ImageURL: "img/gpu-3090.jpg"},
		{ID: 6, Name: "Auriculares Corsair Void Elite", UnitPrice: 300, Stock: 10, ImageURL: "img/auriculares-void.jpg"},
		{ID: 7, Name: "Mouse Gamer Corsair Harpoon", UnitPrice: 300, Stock: 15, ImageURL: "img/mouse-harpoon.jpg"},
		{ID: 8, Name: "Disco Solido SSD 1TB Lexar", UnitPrice: 200, Stock: 18, ImageURL: "img/ssd-lexar.jpg"},
		{ID: 9, Name: "Memoria RAM 16GB DDR5", UnitPrice: 80, Stock: 25, ImageURL: "img/ram-ddr5.jpg"},
		{ID: 10, Name: "Fuente de Poder ROG Strix 1000W", UnitPrice: 100, Stock: 9, ImageURL: "img/fuente-strix.jpg"},
		{ID: 11, Name: "Gabinete NZXT H510", UnitPrice: 90, Stock: 7, ImageURL: "img/gabinete-h510.jpg"},
	}
}
