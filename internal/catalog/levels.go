package catalog

// Levels is the fixed curriculum, ordered from beginner to advanced.
var Levels = []Level{
	{
		ID:          LevelInicial,
		Title:       "Nivel Inicial",
		Description: "Empieza tu aventura en el código. ¡Vamos a crear cosas increíbles juntos!",
		Lessons: []Lesson{
			{
				ID:          "ini-1",
				Title:       "Tu Primer \"Hola Mundo\"",
				Description: "Aprende a dar tu primer paso y hacer que la computadora te salude.",
				Content: "¡Bienvenido al mundo de la programación! Tu primera misión es hacer que la computadora diga \"Hola, Mundo!\". Es una tradición para todos los programadores.\n\n" +
					"Usaremos un comando especial llamado `mostrar()`. Todo lo que pongas dentro de los paréntesis y entre comillas, ¡aparecerá en la pantalla!\n\n" +
					"[CODE_START]\n// Este es un comando para mostrar un mensaje\nmostrar(\"¡Hola, Mundo!\");\n[CODE_END]\n\n" +
					"¡Felicidades! Acabas de escribir tu primera línea de código. Eres oficialmente un programador.",
				AIContext:     "Soy un niño aprendiendo a programar. Explícame qué es \"Hola, Mundo\" y por qué es importante.",
				EstimatedTime: "10 min",
			},
			{
				ID:          "ini-2",
				Title:       "Variables: Cajas Mágicas",
				Description: "Descubre cómo guardar información en \"cajas mágicas\" llamadas variables.",
				Content: "Imagina que tienes cajas mágicas para guardar tus juguetes. En programación, tenemos \"variables\", que son como cajas para guardar información.\n\n" +
					"Podemos crear una variable con un nombre y ponerle algo adentro. Por ejemplo, podemos guardar un número o un texto.\n\n" +
					"[CODE_START]\n// Creamos una caja (variable) llamada \"puntos\" y guardamos el número 100\nlet puntos = 100;\n\n// Creamos otra caja llamada \"nombre\" y guardamos el texto \"Super Coder\"\nlet nombre = \"Super Coder\";\n\n// Ahora podemos ver qué hay dentro\nmostrar(puntos);\nmostrar(nombre);\n[CODE_END]\n\n" +
					"¡Las variables son súper útiles para recordar cosas en nuestros programas!",
				AIContext:     "Explícame qué es una variable como si fueran cajas mágicas para guardar cosas.",
				EstimatedTime: "15 min",
			},
			{
				ID:          "ini-3",
				Title:       "Algoritmos: Recetas para Robots",
				Description: "Aprende a dar instrucciones paso a paso, como si escribieras una receta.",
				Content: "Un algoritmo es como una receta de cocina, ¡pero para computadoras! Son una lista de pasos que le dices a la computadora que siga para hacer algo.\n\n" +
					"Por ejemplo, para hacer un sándwich, los pasos serían:\n1. Tomar dos rebanadas de pan.\n2. Poner jamón en una rebanada.\n3. Poner queso sobre el jamón.\n4. Juntar las dos rebanadas de pan.\n\n" +
					"En programación, escribimos algoritmos para resolver problemas. ¡Cada programa que usamos sigue un algoritmo!",
				AIContext:     "¿Qué es un algoritmo? Explícamelo con una analogía divertida, como una receta de cocina.",
				EstimatedTime: "15 min",
			},
			{
				ID:          "ini-4",
				Title:       "Secuencias: El Orden Importa",
				Description: "Descubre por qué el orden de tus instrucciones es súper importante.",
				Content: "Las computadoras siguen tus instrucciones en el orden exacto en que las escribes. ¡Igual que cuando sigues los pasos para armar un juguete! Si cambias el orden, el resultado puede ser muy diferente.\n\n" +
					"[CODE_START]\n// ¿Qué pasa si saludamos primero y luego preparamos el mensaje?\nlet mensaje = \"¡Estoy listo para programar!\";\nmostrar(\"¡Hola!\");\nmostrar(mensaje);\n\n// Ahora al revés\nmostrar(mensaje); // ¡Oh, no! La variable \"mensaje\" no existe todavía aquí.\nlet mensaje = \"¡Estoy listo para programar!\";\n[CODE_END]\n\n" +
					"El orden correcto es la clave para que tus programas funcionen como esperas. ¡Siempre de arriba hacia abajo!",
				AIContext:     "¿Por qué es importante el orden del código? Usa una analogía como armar un LEGO.",
				EstimatedTime: "10 min",
			},
			{
				ID:          "ini-5",
				Title:       "Depuración: ¡A Cazar Bichos!",
				Description: "Aprende a encontrar y aplastar los \"bichos\" (errores) en tu código.",
				Content: "A veces, nuestro código no funciona. ¡No te preocupes! A estos errores los llamamos \"bugs\" o \"bichos\". Ser programador también significa ser un buen detective de bichos.\n\n" +
					"Un error común es escribir mal un comando o el nombre de una variable.\n\n" +
					"[CODE_START]\nlet nombreAmigo = \"Alex\";\n// ¡Uy! Escribimos \"n ombre\" en lugar de \"nombreAmigo\"\nmostrar(n ombre);\n// La consola nos dirá que hay un error. ¡Tenemos que arreglarlo!\n\n// Versión correcta:\nmostrar(nombreAmigo);\n[CODE_END]\n\n" +
					"Revisar tu código con atención es el superpoder para cazar y arreglar cualquier bicho.",
				AIContext:     "¿Qué es un \"bug\" o \"bicho\" en programación? ¿Cómo puedo encontrarlos?",
				EstimatedTime: "15 min",
			},
			{
				ID:          "ini-6",
				Title:       "Comentarios: Notas para Ti",
				Description: "Deja mensajes secretos en tu código que solo tú y otros programadores pueden leer.",
				Content: "Puedes escribir notas en tu código que la computadora ignorará por completo. ¡Son para los humanos! Se llaman \"comentarios\" y son muy útiles para recordar qué hace una parte de tu código o para dejar una idea.\n\n" +
					"Para escribir un comentario, usamos dos barras inclinadas `//`.\n\n" +
					"[CODE_START]\n// Esta variable guarda la edad de mi mascota.\nlet edadMascota = 4;\n\n// La siguiente línea mostrará un saludo\nmostrar(\"¡Mi mascota es genial!\"); // ¡Y tiene 4 años!\n[CODE_END]\n\n" +
					"Usa comentarios para que tu código sea más fácil de entender. ¡Es como dejar pistas para tu yo del futuro!",
				AIContext:     "Explícame para qué sirven los comentarios en el código.",
				EstimatedTime: "10 min",
			},
			{
				ID:          "ini-7",
				Title:       "Tu Primer Dibujo con Código",
				Description: "Usa el código para dibujar formas y figuras simples en la pantalla.",
				Content: "¡No todo es texto! También podemos usar código para crear arte. Imagina que tienes un lápiz mágico que obedece tus comandos. Podemos decirle que dibuje un círculo, un cuadrado o que cambie de color.\n\n" +
					"[CODE_START]\n// Le decimos al lápiz que se ponga de color rojo\ncolor(\"rojo\");\n\n// Dibujamos un círculo en una posición (x, y) con un tamaño\ncirculo(50, 50, 40);\n\n// ¡Ahora un cuadrado azul!\ncolor(\"azul\");\ncuadrado(100, 100, 60);\n[CODE_END]\n\n" +
					"¡Experimenta con diferentes formas, colores y tamaños para crear tu propia obra de arte digital!",
				AIContext:     "¿Cómo puedo dibujar con código? Dame ideas sencillas para empezar.",
				EstimatedTime: "20 min",
			},
		},
	},
	{
		ID:          LevelIntermedio,
		Title:       "Nivel Intermedio",
		Description: "Aprende nuevos trucos y hechizos para que tus programas sean más inteligentes.",
		Lessons: []Lesson{
			{
				ID:          "int-1",
				Title:       "Condicionales: Tomando Decisiones",
				Description: "Enseña a tu programa a decidir qué hacer con las sentencias if/else.",
				Content: "A veces, queremos que nuestro programa haga una cosa si algo es verdad, y otra cosa si es falso. ¡Para eso usamos los condicionales! Son como un \"si pasa esto, haz aquello\".\n\n" +
					"Usamos la palabra mágica `if` (que significa \"si\" en inglés). Si la condición dentro del `if` es verdadera, se ejecuta el código.\n\n" +
					"[CODE_START]\nlet edad = 10;\n\nif (edad > 7) {\n  mostrar(\"¡Puedes entrar al tobogán gigante!\");\n} else {\n  mostrar(\"Aún necesitas crecer un poco más.\");\n}\n[CODE_END]\n\n" +
					"El `else` (que significa \"si no\") nos da una acción alternativa. ¡Ahora tus programas pueden pensar!",
				AIContext:     "Explícame qué es un condicional \"if/else\" con un ejemplo de un parque de diversiones.",
				EstimatedTime: "20 min",
			},
			{
				ID:          "int-2",
				Title:       "Bucles: Repitiendo Acciones",
				Description: "Aprende a hacer que la computadora repita tareas muchas veces con los bucles.",
				Content: "¿Te imaginas tener que escribir `mostrar(\"¡Hola!\")` cien veces? ¡Sería muy aburrido! Para eso existen los bucles. Un bucle repite un bloque de código las veces que queramos.\n\n" +
					"Un bucle famoso es el bucle `for`. Le decimos desde dónde empezar a contar, hasta dónde llegar y de cuánto en cuánto avanzar.\n\n" +
					"[CODE_START]\n// Este bucle contará del 1 al 5\nfor (let i = 1; i <= 5; i = i + 1) {\n  mostrar(\"Número: \" + i);\n}\n[CODE_END]\n\n" +
					"¡Los bucles nos ahorran muchísimo trabajo y hacen que la computadora trabaje por nosotros!",
				AIContext:     "¿Qué es un bucle \"for\"? Explícame para qué sirve con un ejemplo fácil.",
				EstimatedTime: "20 min",
			},
			{
				ID:          "int-3",
				Title:       "Funciones: Hechizos de Código",
				Description: "Crea tus propios \"hechizos\" de código para usarlos cuando quieras.",
				Content: "Una función es como un hechizo mágico que creas y le pones un nombre. Cada vez que dices el nombre del hechizo (llamas a la función), ¡sucede la magia!\n\n" +
					"Esto es genial porque si tienes un conjunto de pasos que usas mucho, puedes guardarlos en una función y no tener que escribirlos una y otra vez.\n\n" +
					"[CODE_START]\n// Creamos un hechizo (función) para saludar\nfunction saludarAmigo(nombre) {\n  mostrar(\"¡Hola, \" + nombre + \"! ¡Qué bueno verte!\");\n}\n\n// Ahora usamos nuestro hechizo\nsaludarAmigo(\"Ana\");\nsaludarAmigo(\"Luis\");\n[CODE_END]\n\n" +
					"¡Con las funciones, tu código será más ordenado y poderoso!",
				AIContext:     "¿Qué es una función en programación? Explícamelo como si fueran hechizos mágicos.",
				EstimatedTime: "25 min",
			},
			{
				ID:          "int-4",
				Title:       "Bucles \"Mientras\": Repetir con Condición",
				Description: "Usa el bucle `while` para repetir algo mientras una condición sea verdadera.",
				Content: "Además del bucle `for`, existe otro tipo de bucle llamado `while` (mientras). Este bucle repetirá el código en su interior una y otra vez, ¡mientras una condición sea verdadera!\n\n" +
					"Es útil cuando no sabemos exactamente cuántas veces necesitamos repetir algo.\n\n" +
					"[CODE_START]\nlet energia = 5;\n\nwhile (energia > 0) {\n  mostrar(\"¡Aún tengo energía! Nivel: \" + energia);\n  energia = energia - 1; // ¡Importante! Debemos cambiar la condición para no crear un bucle infinito.\n}\n\nmostrar(\"¡Uf! Necesito recargar.\");\n[CODE_END]\n\n" +
					"¡Los bucles `while` son geniales para juegos y simulaciones!",
				AIContext:     "¿Cuál es la diferencia entre un bucle `for` y un bucle `while`?",
				EstimatedTime: "20 min",
			},
			{
				ID:          "int-5",
				Title:       "Arrays: Listas de Amigos",
				Description: "Guarda listas de tus cosas favoritas, como amigos o sabores de helado.",
				Content: "Imagina un cofre del tesoro donde guardas todos tus juguetes favoritos. En programación, un \"array\" es como ese cofre. Es una lista donde puedes guardar muchos valores juntos.\n\n" +
					"Para crear un array, usamos corchetes `[]` y separamos los elementos con comas.\n\n" +
					"[CODE_START]\n// Un array con nuestros postres favoritos\nlet postres = [\"helado\", \"pastel\", \"galletas\"];\n\n// Podemos ver un elemento específico por su posición (empezamos a contar desde 0)\nmostrar(postres[0]); // Muestra \"helado\"\nmostrar(postres[2]); // Muestra \"galletas\"\n[CODE_END]\n\n" +
					"Los arrays son perfectos para guardar listas de amigos, puntuaciones de juegos, ¡o lo que se te ocurra!",
				AIContext:     "Explícame qué es un array como si fuera un cofre del tesoro o una colección.",
				EstimatedTime: "20 min",
			},
			{
				ID:          "int-6",
				Title:       "Anidación: Ideas Dentro de Ideas",
				Description: "Aprende a poner bucles dentro de condicionales (¡y viceversa!).",
				Content: "¡Ahora vamos a combinar nuestros poderes! Podemos poner un condicional `if` dentro de un bucle `for`, o un bucle dentro de otro bucle. A esto se le llama \"anidar\" y nos permite crear programas muy inteligentes.\n\n" +
					"[CODE_START]\n// Vamos a contar hasta 10 y decir si cada número es par o impar\nfor (let i = 1; i <= 10; i = i + 1) {\n  \n  // Un `if` anidado dentro del `for`\n  if (i % 2 === 0) { // El operador % nos da el resto de una división\n    mostrar(i + \" es un número par.\");\n  } else {\n    mostrar(i + \" es un número impar.\");\n  }\n}\n[CODE_END]\n\n" +
					"Anidar es como construir con bloques de LEGO: ¡puedes juntar las piezas de diferentes maneras para crear algo nuevo y genial!",
				AIContext:     "¿Qué significa \"anidar\" código? Dame un ejemplo fácil de entender.",
				EstimatedTime: "25 min",
			},
			{
				ID:          "int-7",
				Title:       "Eventos: Magia al Hacer Clic",
				Description: "Haz que tus programas reaccionen cuando el usuario hace clic en un botón.",
				Content: "Los programas más divertidos son los que reaccionan a lo que hacemos. A estas acciones, como hacer clic con el ratón o pulsar una tecla, las llamamos \"eventos\".\n\n" +
					"Podemos \"escuchar\" un evento en un elemento, como un botón, y ejecutar una función cuando suceda.\n\n" +
					"[CODE_START]\n// Imagina que tenemos un botón en la pantalla con el id=\"miBoton\"\nlet miBoton = obtenerElemento(\"miBoton\");\n\n// Le decimos al botón que escuche el evento \"clic\"\nmiBoton.alHacerClic(function() {\n  // Este código se ejecuta CADA VEZ que se hace clic en el botón\n  mostrar(\"¡Auch! ¡Me has hecho clic!\");\n});\n[CODE_END]\n\n" +
					"¡Con los eventos, puedes crear juegos interactivos, aplicaciones y mucho más!",
				AIContext:     "¿Qué es un evento en programación? Explícamelo como si fuera un interruptor de luz.",
				EstimatedTime: "25 min",
			},
		},
	},
	{
		ID:          LevelAvanzado,
		Title:       "Nivel Avanzado",
		Description: "Conviértete en un maestro del código y crea proyectos aún más asombrosos.",
		Lessons: []Lesson{
			{
				ID:          "ava-1",
				Title:       "Objetos: Crea tus Personajes",
				Description: "Aprende a crear estructuras complejas, como personajes para un juego.",
				Content: "Si quisiéramos crear un personaje para un juego, necesitaríamos guardar varias cosas sobre él: su nombre, sus puntos de vida, si tiene una llave... Para eso usamos \"objetos\".\n\n" +
					"Un objeto agrupa varias variables (propiedades) en un solo lugar. Usamos llaves `{}` para crearlos.\n\n" +
					"[CODE_START]\n// Un objeto que representa a nuestro héroe\nlet heroe = {\n  nombre: \"Capitán Valiente\",\n  vida: 100,\n  tieneLlave: false\n};\n\n// Así vemos sus propiedades\nmostrar(heroe.nombre);\nmostrar(\"Vida: \" + heroe.vida);\n[CODE_END]\n\n" +
					"¡Con los objetos, puedes representar casi cualquier cosa del mundo real en tu código!",
				AIContext:     "¿Qué es un objeto en programación? Explícamelo creando un personaje de un videojuego.",
				EstimatedTime: "25 min",
			},
			{
				ID:          "ava-2",
				Title:       "Métodos: ¡Dando Poder a tus Objetos!",
				Description: "Dale acciones y poderes a tus personajes con métodos.",
				Content: "Ahora que nuestro \"Capitán Valiente\" existe como un objeto, ¡démosle poderes! Un método es una función que vive dentro de un objeto. Es una acción que el objeto puede realizar.\n\n" +
					"Vamos a darle a nuestro héroe la habilidad de saludar.\n\n" +
					"[CODE_START]\nlet heroe = {\n  nombre: \"Capitán Valiente\",\n  vida: 100,\n  tieneLlave: false,\n  // ¡Aquí está nuestro método!\n  saludar: function() {\n    mostrar(\"¡Hola! Soy \" + this.nombre + \" y estoy listo para la aventura.\");\n  }\n};\n\n// Para usar su poder, llamamos al método así:\nheroe.saludar();\n[CODE_END]\n\n" +
					"La palabra `this` es especial: se refiere al propio objeto. ¡Así, el Capitán sabe cómo decir su propio nombre! Ahora puedes darle todo tipo de poderes a tus personajes.",
				AIContext:     "Explícame qué es un método en un objeto, como si fuera un poder especial de un personaje.",
				EstimatedTime: "25 min",
			},
			{
				ID:          "ava-3",
				Title:       "Manipulando Arrays",
				Description: "Aprende a añadir, quitar y cambiar elementos en tus listas de tesoros.",
				Content: "Tus listas (arrays) son dinámicas. ¡Puedes cambiarlas cuando quieras! Hay métodos especiales para añadir elementos al final, quitarlos o incluso añadirlos al principio.\n\n" +
					"[CODE_START]\nlet inventario = [\"espada\", \"escudo\"];\n\n// Añadimos una poción al final\ninventario.agregar(\"poción\"); // Ahora es [\"espada\", \"escudo\", \"poción\"]\nmostrar(inventario);\n\n// Quitamos el último elemento\ninventario.quitarUltimo(); // Ahora es [\"espada\", \"escudo\"]\nmostrar(inventario);\n\n// ¿Cuántos objetos tenemos?\nmostrar(\"Tengo \" + inventario.longitud + \" objetos.\");\n[CODE_END]\n\n" +
					"Dominar estos métodos te da un control total sobre tus colecciones de datos.",
				AIContext:     "¿Cómo puedo añadir o quitar cosas de un array? ¿Qué es \"longitud\"?",
				EstimatedTime: "25 min",
			},
			{
				ID:          "ava-4",
				Title:       "El DOM: El Esqueleto de la Web",
				Description: "Descubre cómo el código puede ver y cambiar los elementos de una página web.",
				Content: "Cada página web es un documento. Tu código puede interactuar con este documento a través de algo llamado DOM (Document Object Model). ¡Piensa en el DOM como el esqueleto de la página!\n\n" +
					"Puedes usar JavaScript para seleccionar un elemento del esqueleto (como un título, un párrafo o una imagen) y cambiarlo.\n\n" +
					"[CODE_START]\n// Imagina que hay un título en tu página con id=\"tituloPrincipal\"\nlet miTitulo = obtenerElementoPorId(\"tituloPrincipal\");\n\n// ¡Vamos a cambiar su texto!\nmiTitulo.texto = \"¡Página Mágica Creada con Código!\";\n\n// ¡Y su color!\nmiTitulo.estilo.color = \"purple\";\n[CODE_END]\n\n" +
					"Manipular el DOM es la clave para crear páginas web dinámicas e interactivas. ¡Es como tener control total sobre lo que ve el usuario!",
				AIContext:     "¿Qué es el DOM? Explícamelo como si fuera el esqueleto de una página web.",
				EstimatedTime: "30 min",
			},
			{
				ID:          "ava-5",
				Title:       "Proyecto: Tu Propia Calculadora",
				Description: "¡Junta todo lo que has aprendido para construir una calculadora que funciona!",
				Content: "¡Es hora de un gran proyecto! Vamos a usar HTML para crear los botones, CSS para que se vea bonita, y JavaScript (con todo lo que has aprendido) para que funcione.\n\n" +
					"Necesitarás:\n- Variables para guardar los números y la operación.\n- Funciones para sumar, restar, etc.\n- Manipulación del DOM para mostrar el resultado en la pantalla.\n- Eventos para que los botones reaccionen al hacer clic.\n\n" +
					"[CODE_START]\n// Lógica simple para un botón de suma\nfunction sumar() {\n  let numero1 = obtenerValorDe(\"input1\");\n  let numero2 = obtenerValorDe(\"input2\");\n  let resultado = numero1 + numero2;\n  mostrarResultadoEnPantalla(resultado);\n}\n\n// Asociar esta función al evento de clic del botón de suma\nlet botonSuma = obtenerElementoPorId(\"botonSumar\");\nbotonSuma.alHacerClic(sumar);\n[CODE_END]\n\n" +
					"Este es un desafío emocionante que pone a prueba tus habilidades. ¡Demuestra todo lo que sabes!",
				AIContext:     "Quiero hacer una calculadora. ¿Qué pasos debo seguir? ¿Qué conceptos de programación necesito usar?",
				EstimatedTime: "45 min",
			},
			{
				ID:          "ava-6",
				Title:       "JSON: El Lenguaje de los Datos",
				Description: "Aprende sobre JSON, el formato que usan las computadoras para pasarse datos.",
				Content: "Cuando los programas se comunican por internet, necesitan un idioma en común para entenderse. JSON (JavaScript Object Notation) es ese idioma. ¡Se parece mucho a los objetos de JavaScript que ya conoces!\n\n" +
					"Es una forma de escribir datos de manera ordenada que tanto humanos como computadoras pueden leer fácilmente.\n\n" +
					"[CODE_START]\n// Así se ve un objeto de personaje en formato JSON\n{\n  \"nombre\": \"Astro-Gato\",\n  \"planeta\": \"Miau-Prime\",\n  \"vidasRestantes\": 9,\n  \"poderes\": [\"rayo láser\", \"súper siesta\"]\n}\n[CODE_END]\n\n" +
					"Verás JSON por todas partes cuando trabajes con APIs y datos de internet. ¡Es el lenguaje universal para la información en la web!",
				AIContext:     "¿Qué es JSON? ¿Por qué se parece a los objetos de JavaScript?",
				EstimatedTime: "20 min",
			},
			{
				ID:          "ava-7",
				Title:       "APIs: Conectando con el Mundo",
				Description: "Aprende cómo los programas hablan entre sí para obtener información.",
				Content: "Una API (Interfaz de Programación de Aplicaciones) es como un mesero en un restaurante. Tú (tu programa) le pides algo al mesero (la API), él va a la cocina (otro servidor o servicio) y te trae lo que pediste (los datos).\n\n" +
					"Podemos usar APIs para obtener el clima, buscar gifs de gatos, conseguir datos de un juego, ¡y mucho más!\n\n" +
					"[CODE_START]\n// Así se pediría un chiste aleatorio a una API de chistes\npedirDatos(\"https://api.dechistes.com/chiste-aleatorio\")\n  .luego(function(respuesta) {\n    // La respuesta suele venir en formato JSON\n    let chiste = respuesta.chiste;\n    mostrar(chiste);\n  });\n[CODE_END]\n\n" +
					"Las APIs abren un universo de posibilidades, permitiendo que tu programa se conecte y use el poder de otros servicios en internet.",
				AIContext:     "¿Qué es una API? Explícamelo con la analogía de un restaurante.",
				EstimatedTime: "30 min",
			},
		},
	},
}
