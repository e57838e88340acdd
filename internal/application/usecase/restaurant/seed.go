package restaurant

import (
	"fmt"
	"strings"

	"github.com/reservafacil/reserva-api/internal/domain/restaurant"
)

type seedEntry struct {
	nombre    string
	direccion string
	categoria int64
	imagen    string
}

// seedSlug derives the unique demo email local-part from the image file name.
func (e seedEntry) seedSlug() string {
	base := e.imagen[strings.LastIndex(e.imagen, "/")+1:]
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}

// Demo catalogue used by the seed endpoint. Shared contact details are
// intentional, the records only exist so the frontend has something to show.
var seedEntries = []seedEntry{
	{"Trattoria Bella", "Calle Mayor 45, Madrid", 1, "https://images.reservafacil.dev/seed/trattoria-bella.webp"},
	{"Pasta Fresca", "Calle de la Paz 10, Valencia", 1, "https://images.reservafacil.dev/seed/pasta-fresca.jpg"},
	{"Osteria del Mare", "Paseo Marítimo 8, Barcelona", 1, "https://images.reservafacil.dev/seed/osteria-del-mare.jpg"},
	{"El Mariachi Loco", "Avenida de América 23, Madrid", 2, "https://images.reservafacil.dev/seed/el-mariachi-loco.png"},
	{"Cantina del Cactus", "Boulevard de los Aztecas 15, Barcelona", 2, "https://images.reservafacil.dev/seed/cantina-del-cactus.jpg"},
	{"Tacos y Más", "Calle del Carmen 99, Valencia", 2, "https://images.reservafacil.dev/seed/tacos-y-mas.jpeg"},
	{"Sakura House", "Calle Bonsai 12, Madrid", 3, "https://images.reservafacil.dev/seed/sakura-house.jpg"},
	{"Samurai Sushi", "Avenida de Japón 23, Barcelona", 3, "https://images.reservafacil.dev/seed/samurai-sushi.jpeg"},
	{"Yoko Ramen", "Calle del Pescador 7, Valencia", 3, "https://images.reservafacil.dev/seed/yoko-ramen.webp"},
	{"Dragón Rojo", "Calle Pagoda 34, Madrid", 4, "https://images.reservafacil.dev/seed/dragon-rojo.jpg"},
	{"Dim Sum Palace", "Avenida Oriente 22, Barcelona", 4, "https://images.reservafacil.dev/seed/dim-sum-palace.jpg"},
	{"Pekin Express", "Calle Muralla 8, Sevilla", 4, "https://images.reservafacil.dev/seed/pekin-express.jpeg"},
	{"Curry Masala", "Calle Taj Mahal 12, Madrid", 5, "https://images.reservafacil.dev/seed/curry-masala.jpg"},
	{"Palacio del Sabor", "Avenida Ganges 5, Valencia", 5, "https://images.reservafacil.dev/seed/palacio-del-sabor.jpg"},
	{"Namaste India", "Boulevard Raj 10, Barcelona", 5, "https://images.reservafacil.dev/seed/namaste-india.png"},
	{"Hard Rock", "Avenida de la Libertad 45, Madrid", 6, "https://images.reservafacil.dev/seed/hard-rock.jpeg"},
	{"Steak House", "Calle Ruta 66 77, Barcelona", 6, "https://images.reservafacil.dev/seed/steak-house.jpg"},
	{"Bernie's Diner", "Calle Manhattan 23, Valencia", 6, "https://images.reservafacil.dev/seed/bernies-diner.jpg"},
	{"Taberna Flamenca", "Calle Sevilla 7, Sevilla", 7, "https://images.reservafacil.dev/seed/taberna-flamenca.jpg"},
	{"Casa del Arroz", "Paseo de la Castellana 12, Madrid", 7, "https://images.reservafacil.dev/seed/casa-del-arroz.jpg"},
	{"Sabores del Mar", "Plaza del Mar 3, Barcelona", 7, "https://images.reservafacil.dev/seed/sabores-del-mar.jpg"},
	{"Oasis del Sabor", "Calle del Desierto 14, Granada", 8, "https://images.reservafacil.dev/seed/oasis-del-sabor.jpg"},
	{"El Sultán", "Avenida Oasis 18, Córdoba", 8, "https://images.reservafacil.dev/seed/el-sultan.jpg"},
	{"Mezze Lounge", "Boulevard Dubai 25, Madrid", 8, "https://images.reservafacil.dev/seed/mezze-lounge.png"},
	{"Bangkok Delight", "Calle Siam 4, Barcelona", 9, "https://images.reservafacil.dev/seed/bangkok-delight.jpg"},
	{"Sabai Sabai", "Avenida Phuket 21, Madrid", 9, "https://images.reservafacil.dev/seed/sabai-sabai.jpg"},
	{"Thai Spice", "Boulevard Chiang Mai 8, Valencia", 9, "https://images.reservafacil.dev/seed/thai-spice.jpg"},
	{"Haller", "Avenida Montmartre 9, Barcelona", 10, "https://images.reservafacil.dev/seed/haller.jpg"},
	{"Sublimotion", "Paseo de la Castellana 13, Madrid", 10, "https://images.reservafacil.dev/seed/sublimotion.jpeg"},
	{"Chez Marie", "Calle Napoleón 19, Valencia", 10, "https://images.reservafacil.dev/seed/chez-marie.jpeg"},
	{"Asador Don Julio", "Calle de la Carne 9, Madrid", 11, "https://images.reservafacil.dev/seed/asador-don-julio.webp"},
	{"Casa del Fernet", "Paseo Marítimo 11, Barcelona", 11, "https://images.reservafacil.dev/seed/casa-del-fernet.webp"},
	{"Empanadas Locas", "Calle de Verdad 19, Valencia", 11, "https://images.reservafacil.dev/seed/empanadas-locas.jpg"},
	{"Green Delight", "Avenida de la Paz 45, Madrid", 12, "https://images.reservafacil.dev/seed/green-delight.jpeg"},
	{"Vida Verde", "Calle de la Luna 8, Barcelona", 12, "https://images.reservafacil.dev/seed/vida-verde.jpg"},
	{"Hortaliza Viva", "Calle Mayor 21, Valencia", 12, "https://images.reservafacil.dev/seed/hortaliza-viva.jpg"},
	{"Sabor Latino", "Calle de Alcalá 22, Madrid", 13, "https://images.reservafacil.dev/seed/sabor-latino.jpg"},
	{"El Fogón de la Abuela", "Calle de la Reina 15, Barcelona", 13, "https://images.reservafacil.dev/seed/el-fogon-de-la-abuela.jpg"},
	{"Casa Caribe", "Paseo de la Castellana 33, Valencia", 13, "https://images.reservafacil.dev/seed/casa-caribe.webp"},
}

func seedRestaurants() []*restaurant.Restaurant {
	rs := make([]*restaurant.Restaurant, 0, len(seedEntries))
	for _, e := range seedEntries {
		categoria := e.categoria
		rs = append(rs, &restaurant.Restaurant{
			Nombre:        e.nombre,
			Email:         fmt.Sprintf("%s@reservafacil.dev", e.seedSlug()),
			Direccion:     e.direccion,
			Telefono:      "555-555-555",
			CantidadMesas: 10,
			CategoriasID:  &categoria,
			Image:         e.imagen,
		})
	}
	return rs
}
