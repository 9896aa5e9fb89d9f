package domain

import "strings"

// ProductRule clasifica campañas por producto. El orden de las reglas
// importa: la primera que coincide gana, así que las más específicas
// deben configurarse antes que las genéricas.
type ProductRule struct {
	Name     string   `json:"producto"`
	Country  string   `json:"pais,omitempty"`
	Keywords []string `json:"palabras"`
}

// Matches evalúa la regla contra un nombre de campaña ya normalizado
// en mayúsculas. Si la regla exige país, este debe aparecer como
// substring del nombre además de alguna palabra clave.
func (r ProductRule) Matches(upperCampaignName string) bool {
	if r.Country != "" && !strings.Contains(upperCampaignName, strings.ToUpper(r.Country)) {
		return false
	}

	for _, kw := range r.Keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(upperCampaignName, strings.ToUpper(kw)) {
			return true
		}
	}

	return false
}

// MatchProduct devuelve el producto de la primera regla que coincide.
func MatchProduct(campaignName string, rules []ProductRule) (string, bool) {
	upper := strings.ToUpper(campaignName)
	for _, rule := range rules {
		if rule.Matches(upper) {
			return rule.Name, true
		}
	}
	return "", false
}
