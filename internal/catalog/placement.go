package catalog

// PlacementQuestion is one multiple-choice calibration question.
type PlacementQuestion struct {
	ID           string
	Prompt       string
	Options      []string
	CorrectIndex int
}

// PlacementQuestions is the fixed five-question calibration bank.
var PlacementQuestions = []PlacementQuestion{
	{
		ID:     "q1",
		Prompt: "¿Qué usarías para guardar tu nombre en el código?",
		Options: []string{
			"Un número", "Una variable", "Un bucle", "Un color",
		},
		CorrectIndex: 1,
	},
	{
		ID:     "q2",
		Prompt: "Si quieres que la computadora haga algo 10 veces, ¿qué es lo mejor que puedes usar?",
		Options: []string{
			"Una variable",
			"Un condicional",
			"Un bucle",
			"Escribir el código 10 veces",
		},
		CorrectIndex: 2,
	},
	{
		ID:     "q3",
		Prompt: "¿Para qué sirve una declaración `if`?",
		Options: []string{
			"Para repetir código.",
			"Para guardar información.",
			"Para tomar una decisión y hacer algo si una condición es verdadera.",
			"Para dibujar en la pantalla.",
		},
		CorrectIndex: 2,
	},
	{
		ID:     "q4",
		Prompt: "¿Qué es un algoritmo?",
		Options: []string{
			"Un personaje de un juego.",
			"Un error en el código.",
			"Una lista de pasos o instrucciones para resolver un problema.",
			"El color de fondo de una página web.",
		},
		CorrectIndex: 2,
	},
	{
		ID:     "q5",
		Prompt: "¿Qué resultado mostraría el código `mostrar(\"Hola, \" + \"Mundo\");`?",
		Options: []string{
			"Hola, Mundo", "Hola,Mundo", "Hola, + Mundo", "Error",
		},
		CorrectIndex: 0,
	},
}
