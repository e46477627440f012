package categorizer

// DefaultRules returns the built-in rule table. Food is declared before
// Restaurants, so shared keywords such as "café" and "bar" resolve to Food.
func DefaultRules() []Rule {
	return []Rule{
		{Category: "Transport", Keywords: []string{
			"taxi", "uber", "cabify", "bus", "metro", "gasolina", "gasolinera", "parking", "estacionamiento",
			"renfe", "vuelo", "avión", "tren", "peaje", "taller", "reparacion", "neumaticos", "itv", "diésel", "repsol", "cepsa",
		}},
		{Category: "Food", Keywords: []string{
			"mercadona", "carrefour", "lidl", "aldi", "dia", "alcampo", "eroski", "supermercado", "hipercor",
			"comida", "restaurante", "bar", "pizzería", "glovo", "just eat", "ubereats", "café", "desayuno",
			"cena", "burger king", "mcdonalds", "tapa", "panaderia", "carniceria",
		}},
		{Category: "Housing", Keywords: []string{
			"alquiler", "hipoteca", "luz", "agua", "internet", "comunidad", "ikea", "leroy merlin",
			"ferretería", "fontanero", "electricista", "mueble", "deco", "limpieza", "detergente",
			"gas", "calefacción", "endesa", "iberdrola",
		}},
		{Category: "Leisure & Travel", Keywords: []string{
			"cine", "netflix", "spotify", "gym", "gimnasio", "concierto", "teatro", "videojuegos",
			"hotel", "airbnb", "booking", "viaje", "discoteca", "copa", "cerveza", "hbo", "disney+",
			"playstation", "xbox", "steam",
		}},
		{Category: "Health & Beauty", Keywords: []string{
			"farmacia", "médico", "dentista", "hospital", "seguro", "psicologo", "fisio",
			"peluquería", "barbería", "cosméticos", "maquillaje", "perfume", "crema",
		}},
		{Category: "Subscriptions & Digital", Keywords: []string{
			"amazon", "prime", "apple", "icloud", "adobe", "google", "cloud", "hosting",
			"software", "patreon", "chatgpt", "midjourney",
		}},
		{Category: "Apparel", Keywords: []string{
			"zara", "h&m", "nike", "adidas", "mango", "primark", "ropa", "zapatos",
			"bolso", "moda", "tienda", "centro comercial",
		}},
		{Category: "Education", Keywords: []string{
			"curso", "academia", "universidad", "libro", "formacion", "master", "clases", "escuela",
		}},
		{Category: "Restaurants", Keywords: []string{
			"restaurante", "café", "bar", "pizzería", "glovo", "just eat", "ubereats",
			"desayuno", "comida", "cena", "burger king", "mcdonalds", "tapa",
		}},
		{Category: "Technology", Keywords: []string{
			"apple", "samsung", "xiaomi", "ordenador", "portátil", "tablet", "smartphone",
			"televisión", "tv", "auriculares", "cargador", "gadget",
		}},
	}
}
