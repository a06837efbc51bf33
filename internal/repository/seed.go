package repository

import "github.com/openclaw/literary-agent/internal/model"

// SeedContacts is the starter library list the store bootstraps
// itself with on first use.
func SeedContacts() []model.Contact {
	return []model.Contact{
		// Spain
		{Name: "Biblioteca Nacional de España", Email: "contacto@bne.es", City: "Madrid", Country: "España", Region: "Europa", Kind: "National", PreferredLanguage: "ES"},
		{Name: "Biblioteca Pública Municipal de Madrid", Email: "bibliotecas@madrid.es", City: "Madrid", Country: "España", Region: "España", Kind: "Public", PreferredLanguage: "ES"},
		{Name: "Biblioteca de Catalunya", Email: "biblioteca@bc.cat", City: "Barcelona", Country: "España", Region: "España", Kind: "National", PreferredLanguage: "ES"},
		{Name: "Biblioteca Pública de Andalucía", Email: "biblioteca@juntadeandalucia.es", City: "Sevilla", Country: "España", Region: "España", Kind: "Public", PreferredLanguage: "ES"},
		// Latin America
		{Name: "Biblioteca Nacional de México", Email: "contacto@bnm.unam.mx", City: "Ciudad de México", Country: "México", Region: "Latinoamérica", Kind: "National", PreferredLanguage: "ES"},
		{Name: "Biblioteca Nacional de Argentina", Email: "info@bn.gov.ar", City: "Buenos Aires", Country: "Argentina", Region: "Latinoamérica", Kind: "National", PreferredLanguage: "ES"},
		{Name: "Biblioteca Nacional de Colombia", Email: "contacto@bn.gov.co", City: "Bogotá", Country: "Colombia", Region: "Latinoamérica", Kind: "National", PreferredLanguage: "ES"},
		{Name: "Biblioteca de Santiago", Email: "biblioteca@santiago.cl", City: "Santiago", Country: "Chile", Region: "Latinoamérica", Kind: "Public", PreferredLanguage: "ES"},
		// United States
		{Name: "New York Public Library", Email: "acquisitions@nypl.org", City: "New York", Country: "USA", Region: "Norte America", Kind: "Public", PreferredLanguage: "EN"},
		{Name: "Los Angeles Public Library", Email: "collections@lapl.org", City: "Los Angeles", Country: "USA", Region: "Norte America", Kind: "Public", PreferredLanguage: "EN"},
		{Name: "Miami-Dade Public Library", Email: "acquisitions@mdpls.org", City: "Miami", Country: "USA", Region: "Norte America", Kind: "Public", PreferredLanguage: "ES", Notes: "Hispanic community"},
		{Name: "Houston Public Library", Email: "collections@houstontx.gov", City: "Houston", Country: "USA", Region: "Norte America", Kind: "Public", PreferredLanguage: "EN"},
		// United Kingdom
		{Name: "British Library", Email: "acquisitions@bl.uk", City: "London", Country: "UK", Region: "Europa", Kind: "National", PreferredLanguage: "EN"},
		{Name: "London Public Library", Email: "info@londonlibrary.co.uk", City: "London", Country: "UK", Region: "Europa", Kind: "Public", PreferredLanguage: "EN"},
		// France
		{Name: "Bibliothèque Nationale de France", Email: "contact@bnf.fr", City: "Paris", Country: "Francia", Region: "Europa", Kind: "National", PreferredLanguage: "FR"},
		{Name: "Bibliothèque Publique de Paris", Email: "bibliotheque@paris.fr", City: "Paris", Country: "Francia", Region: "Europa", Kind: "Public", PreferredLanguage: "FR"},
		// Italy
		{Name: "Biblioteca Nazionale Centrale di Roma", Email: "bncrm@beniculturali.it", City: "Roma", Country: "Italia", Region: "Europa", Kind: "National", PreferredLanguage: "IT"},
		{Name: "Biblioteca Nazionale di Milano", Email: "bnm@beniculturali.it", City: "Milán", Country: "Italia", Region: "Europa", Kind: "National", PreferredLanguage: "IT"},
		// Canada
		{Name: "Toronto Public Library", Email: "collections@tpl.ca", City: "Toronto", Country: "Canadá", Region: "Norte America", Kind: "Public", PreferredLanguage: "EN"},
		{Name: "Vancouver Public Library", Email: "info@vpl.ca", City: "Vancouver", Country: "Canadá", Region: "Norte America", Kind: "Public", PreferredLanguage: "EN"},
	}
}
