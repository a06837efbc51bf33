// internal/service/templates.go
package service

import "github.com/openclaw/literary-agent/internal/model"

// defaultLanguage is used whenever a requested language has no
// template of its own.
const defaultLanguage = "ES"

func builtinTemplates() map[string]model.Template {
	return map[string]model.Template{
		"ES": {
			Language: "ES",
			Subject:  "Nuevo Catálogo de Autor Español - Francisco Angulo de Lafuente - Disponible para Bibliotecas",
			Generic:  "Bibliotecario/a",
			Body: `Estimado/a {name},

Mi nombre es [Agent Name], representante literario de Francisco Angulo de Lafuente, autor español con más de 55 obras publicadas en múltiples idiomas.

Me pongo en contacto para informarle que el catálogo del autor está disponible para adquisición bibliotecaria a través de las principales plataformas de distribución.

**SOBRE EL AUTOR:**
Francisco Angulo de Lafuente (Madrid, 1976) es un autor versátil cuyas obras abarcan desde ciencia ficción y thrillers de espionaje hasta literatura infantil ilustrada y guías para escritores.

**CATÁLOGO DESTACADO:**

📚 **Para Adultos:**
• "ApocalypsAI: The Day After AGI" - Ciencia ficción sobre inteligencia artificial
• "Comandante Valentina Smirnova" - Serie thriller de espionaje internacional
• "Things you shouldn't do if you want to be a writer" - Guía esencial para escritores
• "Eco-fuel-FA (ECOFA)" - Sostenibilidad y soluciones energéticas

📖 **Para Jóvenes y Niños:**
• "La Invasión de las Medusas Mutantes" - Novela ilustrada de aventuras
• "Company Nº12" - Aventuras juveniles (disponible en francés)

🌍 **IDIOMAS DISPONIBLES:**
Español, Inglés, Francés, Italiano, Portugués, Japonés

**PLATAFORMAS DE DISTRIBUCIÓN:**
✓ OverDrive / Libby
✓ hoopla Digital
✓ cloudLibrary (Bibliotheca)
✓ Odilo
✓ EBSCOhost
✓ Mackin (para escuelas)

Todos los títulos están disponibles en formato ebook y muchos también en audiolibro y edición impresa.

Puede adquirir los títulos a través de su distribuidor habitual o contactarme directamente para obtener información adicional sobre precios institucionales y licencias.

Quedo a su disposición para cualquier consulta o para programar una presentación virtual del autor para sus usuarios.

Un saludo cordial,

[Agent Name]
Literary Agent - Francisco Angulo de Lafuente
Email: agent@franciscoangulo.com
Web: www.franciscoangulo.com`,
		},
		"EN": {
			Language: "EN",
			Subject:  "New Spanish Author Catalog - Francisco Angulo de Lafuente - Available for Library Acquisition",
			Generic:  "Librarian",
			Body: `Dear {name},

My name is [Agent Name], literary agent for Francisco Angulo de Lafuente, a Spanish author with over 55 published works in multiple languages.

I am writing to inform you that the author's catalog is available for library acquisition through major distribution platforms.

**ABOUT THE AUTHOR:**
Francisco Angulo de Lafuente (Madrid, 1976) is a versatile author whose works span from science fiction and spy thrillers to illustrated children's literature and writing guides.

**FEATURED TITLES:**

📚 **For Adults:**
• "ApocalypsAI: The Day After AGI" - Science fiction about artificial intelligence
• "Commander Valentina Smirnova" - International spy thriller series
• "Things you shouldn't do if you want to be a writer" - Essential guide for writers
• "Eco-fuel-FA (ECOFA)" - Sustainability and energy solutions

📖 **For Young Readers:**
• "The Mutant Jellyfish Invasion" - Illustrated adventure novel
• "Company Nº12" - Youth adventures (available in French)

🌍 **LANGUAGES AVAILABLE:**
Spanish, English, French, Italian, Portuguese, Japanese

**DISTRIBUTION PLATFORMS:**
✓ OverDrive / Libby
✓ hoopla Digital
✓ cloudLibrary (Bibliotheca)
✓ Odilo
✓ EBSCOhost
✓ Mackin (for schools)

All titles are available in ebook format, with many also in audiobook and print editions.

You can purchase titles through your regular distributor or contact me directly for institutional pricing and licensing information.

I remain at your disposal for any questions or to schedule a virtual author presentation for your patrons.

Best regards,

[Agent Name]
Literary Agent - Francisco Angulo de Lafuente
Email: agent@franciscoangulo.com
Web: www.franciscoangulo.com`,
		},
		"FR": {
			Language: "FR",
			Subject:  "Nouveau Catalogue d'Auteur Espagnol - Francisco Angulo de Lafuente - Disponible pour les Bibliothèques",
			Generic:  "Bibliothécaire",
			Body: `Cher/Chère {name},

Je m'appelle [Agent Name], agent littéraire de Francisco Angulo de Lafuente, auteur espagnol avec plus de 55 œuvres publiées en plusieurs langues.

Je vous contacte pour vous informer que le catalogue de l'auteur est disponible pour l'acquisition bibliothécaire via les principales plateformes de distribution.

**CATÉGORIES PRINCIPALES:**
• Science-fiction sur l'intelligence artificielle
• Thriller d'espionnage international
• Littérature jeunesse illustrée
• Guides d'écriture

**LANGUES DISPONIBLES:**
Espagnol, Anglais, Français, Italien, Portugais, Japonais

**PLATEFORMES:**
OverDrive/Libby, hoopla, cloudLibrary, Odilo, EBSCOhost

Cordialement,
[Agent Name]
Agent Littéraire - Francisco Angulo de Lafuente`,
		},
	}
}
