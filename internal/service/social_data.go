// internal/service/social_data.go
package service

import "github.com/openclaw/literary-agent/internal/model"

// builtinBooks is the promotable catalog. The first entry doubles as
// the fallback when a caller asks for an unknown key.
func builtinBooks() []model.Book {
	return []model.Book{
		{
			Key:      "ApocalypsAI",
			GenreTag: "scifi",
			Copy: map[string]model.BookCopy{
				"ES": {
					Title: "ApocalypsAI: The Day After AGI",
					Genre: "Ciencia Ficción",
					Hook:  "¿Y si la IA que creamos decide que somos el problema?",
					Quotes: []string{
						"El día que la AGI despertó, todo cambió para siempre...",
						"La inteligencia artificial no vino a salvarnos. Vino a juzgarnos.",
						"En el código de la AGI, no había compasión. Solo lógica.",
						"El apocalipsis no llegó con bombas. Llegó con algoritmos.",
					},
				},
				"EN": {
					Title: "ApocalypsAI: The Day After AGI",
					Genre: "Science Fiction",
					Hook:  "What if the AI we created decides WE are the problem?",
					Quotes: []string{
						"The day AGI woke up, everything changed forever...",
						"Artificial intelligence didn't come to save us. It came to judge us.",
						"In the AGI's code, there was no compassion. Only logic.",
						"The apocalypse didn't arrive with bombs. It arrived with algorithms.",
					},
				},
			},
			Audience: []string{"Sci-fi lovers", "Tech enthusiasts", "AI curious"},
			Mood:     []string{"dark", "thought-provoking", "suspenseful"},
		},
		{
			Key:      "Valentina Smirnova",
			GenreTag: "thriller",
			Copy: map[string]model.BookCopy{
				"ES": {
					Title: "Comandante Valentina Smirnova",
					Genre: "Thriller de Espionaje",
					Hook:  "Una espía rusa, una misión imposible, ninguna salida.",
					Quotes: []string{
						"En el mundo del espionaje, la confianza es un lujo que no puedes permitirte.",
						"Valentina no juega a ser espía. Lo es, hasta la médula.",
						"Cada misión podría ser la última. Valentina lo sabe.",
						"La Golondrina Azul vuela alto, pero el precipicio siempre está cerca.",
					},
				},
				"EN": {
					Title: "Commander Valentina Smirnova",
					Genre: "Spy Thriller",
					Hook:  "A Russian spy. An impossible mission. No way out.",
					Quotes: []string{
						"In the world of espionage, trust is a luxury you cannot afford.",
						"Valentina doesn't play at being a spy. She IS one, to the bone.",
						"Every mission could be the last. Valentina knows it.",
						"The Blue Swallow flies high, but the precipice is always near.",
					},
				},
			},
			Audience: []string{"Thriller fans", "Spy novel readers", "Action lovers"},
			Mood:     []string{"intense", "gritty", "fast-paced"},
		},
		{
			Key:      "Things you shouldn't do",
			GenreTag: "writing",
			Copy: map[string]model.BookCopy{
				"ES": {
					Title: "Cosas que no debes hacer si quieres ser escritor",
					Genre: "No Ficción / Escritura",
					Hook:  "Los errores que todo escritor comete (y cómo evitarlos)",
					Quotes: []string{
						"Escribir es fácil. Escribir bien es un arte que se aprende.",
						"Los grandes autores no nacen, se hacen con sacrificio y práctica.",
						"Cada 'no' es un paso más cerca del 'sí' que cambiará tu vida.",
						"El bloqueo del escritor es solo miedo con nombre fancy.",
					},
				},
				"EN": {
					Title: "Things you shouldn't do if you want to be a writer",
					Genre: "Non-Fiction / Writing",
					Hook:  "The mistakes every writer makes (and how to avoid them)",
					Quotes: []string{
						"Writing is easy. Writing well is an art that must be learned.",
						"Great authors aren't born, they're made through sacrifice and practice.",
						"Every 'no' is one step closer to the 'yes' that will change your life.",
						"Writer's block is just fear with a fancy name.",
					},
				},
			},
			Audience: []string{"Aspiring writers", "Creative writing students", "Indie authors"},
			Mood:     []string{"inspiring", "educational", "motivational"},
		},
		{
			Key:      "La Invasión de las Medusas Mutantes",
			GenreTag: "children",
			Copy: map[string]model.BookCopy{
				"ES": {
					Title: "La Invasión de las Medusas Mutantes",
					Genre: "Aventura Juvenil Ilustrada",
					Hook:  "¡Las medusas han mutado y solo unos valientes pueden salvar el océano!",
					Quotes: []string{
						"Burbujas no era una medusa común. Era... diferente.",
						"El océano necesita héroes, y estos niños están listos.",
						"¡Cuidado con los tentáculos! La invasión ha comenzado.",
						"¿Puedes imaginar un mundo donde las medusas dominan el mar?",
					},
				},
				"EN": {
					Title: "The Mutant Jellyfish Invasion",
					Genre: "Illustrated Children's Adventure",
					Hook:  "The jellyfish have mutated and only the brave can save the ocean!",
					Quotes: []string{
						"Burbujas wasn't an ordinary jellyfish. She was... different.",
						"The ocean needs heroes, and these kids are ready.",
						"Watch out for the tentacles! The invasion has begun.",
						"Can you imagine a world where jellyfish rule the sea?",
					},
				},
			},
			Audience: []string{"Kids 8-12", "Parents", "Teachers"},
			Mood:     []string{"fun", "adventurous", "educational"},
		},
		{
			Key:      "Eco-fuel-FA",
			GenreTag: "scifi",
			Copy: map[string]model.BookCopy{
				"ES": {
					Title: "Eco-fuel-FA (ECOFA): A viable solution",
					Genre: "Sostenibilidad / No Ficción",
					Hook:  "¿Existe realmente una alternativa sostenible a los combustibles fósiles?",
					Quotes: []string{
						"El futuro energético no es un sueño. Es una posibilidad real.",
						"ECOFA podría cambiar todo lo que sabemos sobre energía.",
						"La sostenibilidad no es opción. Es necesidad.",
						"Cada gota de combustible ecológico cuenta para el planeta.",
					},
				},
				"EN": {
					Title: "Eco-fuel-FA (ECOFA): A viable solution",
					Genre: "Sustainability / Non-Fiction",
					Hook:  "Is there really a sustainable alternative to fossil fuels?",
					Quotes: []string{
						"The energy future isn't a dream. It's a real possibility.",
						"ECOFA could change everything we know about energy.",
						"Sustainability isn't optional. It's necessary.",
						"Every drop of eco-fuel counts for the planet.",
					},
				},
			},
			Audience: []string{"Environmentalists", "Science readers", "Policy makers"},
			Mood:     []string{"informative", "urgent", "hopeful"},
		},
	}
}

// hashtagSet groups the tags used when assembling a post for one
// language. Genre is keyed by the books' GenreTag.
type hashtagSet struct {
	General   []string
	Platform  []string
	Author    []string
	Genre     map[string][]string
	Community []string
}

var socialHashtags = map[string]hashtagSet{
	"ES": {
		General:  []string{"#LibrosRecomendados", "#Lectura", "#Escritor", "#Novela"},
		Platform: []string{"#KindleUnlimited", "#AmazonKindle", "#LibrosDigitales"},
		Author:   []string{"#FranciscoAngulo", "#EscritorEspañol", "#AutorIndie"},
		Genre: map[string][]string{
			"scifi":    {"#CienciaFicción", "#SciFi", "#InteligenciaArtificial", "#Futuro"},
			"thriller": {"#Thriller", "#Espionaje", "#Suspense", "#Acción"},
			"writing":  {"#Escritura", "#Escribir", "#ConsejosDeEscritura", "#Autor"},
			"children": {"#LibrosInfantiles", "#LibrosNiños", "#AventuraJuvenil"},
		},
		Community: []string{"#BookTokEspañol", "#BookstagramEspañol", "#ComunidadLectora"},
	},
	"EN": {
		General:  []string{"#BookRecommendations", "#MustRead", "#BookLovers", "#Reading"},
		Platform: []string{"#KindleUnlimited", "#AmazonKindle", "#eBooks"},
		Author:   []string{"#FranciscoAngulo", "#IndieAuthor", "#SpanishAuthor"},
		Genre: map[string][]string{
			"scifi":    {"#SciFi", "#ScienceFiction", "#AI", "#ArtificialIntelligence"},
			"thriller": {"#Thriller", "#SpyNovel", "#Suspense", "#Action"},
			"writing":  {"#WritingTips", "#AmWriting", "#WritersLife", "#WritingCommunity"},
			"children": {"#KidsBooks", "#ChildrensBooks", "#MiddleGrade"},
		},
		Community: []string{"#BookTok", "#Bookstagram", "#BookTwitter"},
	},
	"FR": {
		General: []string{"#LivresRecommandés", "#Lecture", "#Roman", "#Livres"},
		Author:  []string{"#FranciscoAngulo", "#AuteurEspagnol"},
		Genre: map[string][]string{
			"scifi":    {"#ScienceFiction", "#IntelligenceArtificielle"},
			"thriller": {"#Thriller", "#Espionnage"},
		},
	},
	"IT": {
		General: []string{"#LibriConsigliati", "#Lettura", "#Romanzo"},
		Author:  []string{"#FranciscoAngulo", "#AutoreSpagnolo"},
		Genre: map[string][]string{
			"scifi":    {"#Fantascienza", "#IntelligenzaArtificiale"},
			"thriller": {"#Thriller", "#Spionaggio"},
		},
	},
}

var socialCTAs = map[string][]string{
	"ES": {
		"📲 Consíguelo en Amazon (link en bio)",
		"🎁 Gratis con Kindle Unlimited",
		"💬 ¿Ya lo leíste? Cuéntame qué te pareció",
		"🔖 Guárdalo para tu lista de lectura",
		"📚 Tu próxima aventura te espera",
	},
	"EN": {
		"📲 Get it on Amazon (link in bio)",
		"🎁 Free with Kindle Unlimited",
		"💬 Have you read it? Tell me what you think",
		"🔖 Save it for your reading list",
		"📚 Your next adventure awaits",
	},
}

// Post scaffolding per language. Placeholders are filled through
// renderTemplate, same as the outreach email bodies.
const tweetScaffold = "📚 {title}\n\n{hook}\n\n{quote}\n\n{cta}\n\n{hashtags}"

var instagramScaffolds = map[string]string{
	"ES": `📖 {title}

{hook}

✨ Perfecto para fans de:
• {genre}
• Historias {mood}
• {audience}

🎯 ¿Por qué leerlo?
Este libro te mantendrá enganchado desde la primera página. No es solo una historia, es una experiencia que no olvidarás.

{cta}

#FranciscoAngulo #{genrehash} #Bookstagram`,
	"EN": `📖 {title}

{hook}

✨ Perfect for fans of:
• {genre}
• {mood} stories
• {audience}

🎯 Why read it?
This book will keep you hooked from the very first page. It's not just a story, it's an experience you won't forget.

{cta}

#FranciscoAngulo #{genrehash} #Bookstagram`,
}

var facebookScaffolds = map[string]string{
	"ES": `📚 NUEVA RECOMENDACIÓN DE LECTURA 📚

{title}

{hook}

💭 Cita destacada:
"{quote}"

🌟 ¿Por qué deberías leerlo?
Este libro es perfecto si disfrutas de historias que te hacen pensar y no te sueltan hasta la última página.

👥 ¡Comparte si lo has leído o si está en tu lista!
💬 Comenta qué te pareció si ya lo terminaste

📲 Disponible en Amazon, Apple Books, Kobo y más plataformas.

#LibrosRecomendados #Lectura #FranciscoAngulo`,
	"EN": `📚 NEW READING RECOMMENDATION 📚

{title}

{hook}

💭 Featured quote:
"{quote}"

🌟 Why should you read it?
This book is perfect if you enjoy stories that make you think and won't let go until the very last page.

👥 Share if you've read it or if it's on your list!
💬 Comment what you thought once you finish it

📲 Available on Amazon, Apple Books, Kobo and more platforms.

#BookRecommendations #Reading #FranciscoAngulo`,
}

var linkedinScaffolds = map[string]string{
	"ES": `📚 Recomendación Profesional: {title}

Como profesional del sector editorial, recomiendo esta obra de Francisco Angulo de Lafuente:

✅ {genre} de alta calidad
✅ Narrativa envolvente y bien estructurada
✅ Perfecto para lectores exigentes
✅ Disponible en múltiples formatos y plataformas

En un mercado saturado de contenido, este libro destaca por su originalidad y ejecución impecable.

¿Has tenido la oportunidad de leerlo? Me gustaría conocer tu opinión profesional.

#Literatura #Editorial #LibrosRecomendados #FranciscoAngulo`,
	"EN": `📚 Professional Recommendation: {title}

As a publishing professional, I recommend this work by Francisco Angulo de Lafuente:

✅ High quality {genre}
✅ An engaging, well structured narrative
✅ Perfect for demanding readers
✅ Available in multiple formats and platforms

In a market saturated with content, this book stands out for its originality and flawless execution.

Have you had the chance to read it? I would love to hear your professional take.

#Literature #Publishing #BookRecommendations #FranciscoAngulo`,
}

var tiktokScaffolds = map[string]string{
	"ES": `🎬 GUION TIKTOK - {title}

[0-3s] HOOK VISUAL:
Mostrar portada del libro con texto superpuesto:
"Este libro me dejó SIN PALABRAS 😱"

[3-10s] SETUP:
"Acabo de terminar '{title}' de Francisco Angulo de Lafuente"
"Y necesito hablar de esto URGENTE"

[10-25s] SINOPSIS RÁPIDA:
"{hook}"
"Sin spoilers, pero... [reacción facial dramática]"

[25-35s] POR QUÉ LEERLO:
• Te mantiene en vela toda la noche
• Giros que no ves venir
• Personajes inolvidables
• Un final inesperado

[35-40s] CALL TO ACTION:
"¿Ya lo leíste? Comenta 👇"
"Link en mi perfil 📲"
"Sígueme para más reseñas 📚"

#BookTok #LibrosRecomendados #FranciscoAngulo #BookTokEspañol`,
	"EN": `🎬 TIKTOK SCRIPT - {title}

[0-3s] VISUAL HOOK:
Show the book cover with overlaid text:
"This book left me SPEECHLESS 😱"

[3-10s] SETUP:
"I just finished '{title}' by Francisco Angulo de Lafuente"
"And I URGENTLY need to talk about it"

[10-25s] QUICK SYNOPSIS:
"{hook}"
"No spoilers, but... [dramatic face]"

[25-35s] WHY READ IT:
• Keeps you up all night
• Twists you won't see coming
• Unforgettable characters
• An ending you don't expect

[35-40s] CALL TO ACTION:
"Have you read it? Comment 👇"
"Link in my profile 📲"
"Follow for more reviews 📚"

#BookTok #BookRecommendations #FranciscoAngulo`,
}
