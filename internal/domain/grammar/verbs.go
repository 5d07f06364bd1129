package grammar

// commonRegularVerbs lists common fully regular verbs per ending class,
// ordered by frequency. The beginner tier draws from the first six entries of
// each list only, so those are deliberately the most common and simplest.
var commonRegularVerbs = map[string][]string{
	"ar": {
		"hablar", "trabajar", "estudiar", "caminar", "cocinar", "bailar",
		"cantar", "escuchar", "mirar", "comprar", "visitar", "llamar",
	},
	"er": {
		"comer", "beber", "aprender", "correr", "vender", "responder",
		"comprender", "deber", "prometer", "sorprender",
	},
	"ir": {
		"vivir", "escribir", "recibir", "decidir", "subir", "compartir",
		"asistir", "permitir", "describir", "abrir",
	},
}
