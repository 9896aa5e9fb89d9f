package domain

import "strings"

// KnownCountries son los países operados, en su forma normalizada.
// El orden define la prioridad al buscar el país en un nombre de
// campaña.
var KnownCountries = []string{
	"PERU",
	"COLOMBIA",
	"MEXICO",
	"CHILE",
	"ARGENTINA",
	"ECUADOR",
	"PANAMA",
	"ESTADOS UNIDOS",
}

// CountryNotFound marca campañas cuyo nombre no menciona ningún país.
const CountryNotFound = "N/A"

// CountryFromText busca el primer país conocido dentro de un texto ya
// normalizado en mayúsculas sin tildes.
func CountryFromText(normalized string) string {
	for _, country := range KnownCountries {
		if strings.Contains(normalized, country) {
			return country
		}
	}
	return CountryNotFound
}
