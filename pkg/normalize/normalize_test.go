package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "quita tildes y sube a mayúsculas",
			input:    "méxico",
			expected: "MEXICO",
		},
		{
			name:     "recorta espacios en los extremos",
			input:    "  Perú  ",
			expected: "PERU",
		},
		{
			name:     "texto ya normalizado queda igual",
			input:    "COLOMBIA",
			expected: "COLOMBIA",
		},
		{
			name:     "eñe se conserva sin la tilde virgulilla",
			input:    "campaña",
			expected: "CAMPANA",
		},
		{
			name:     "cadena vacía",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Text(tt.input))
		})
	}
}

func TestAdID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"prefijo con guion", "Ads-555", "555"},
		{"prefijo con espacio", "ads 123", "123"},
		{"prefijo con guion bajo", "ADS_77", "77"},
		{"prefijo sin separador", "ads99", "99"},
		{"sin prefijo queda igual", "120210776512340191", "120210776512340191"},
		{"solo prefijo conserva el original", "ads", "ads"},
		{"vacío", "", ""},
		{"espacios alrededor", "  Ads- 42 ", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AdID(tt.input))
		})
	}
}

func TestAdIDIdempotente(t *testing.T) {
	inputs := []string{"Ads-555", "555", "ads 123", "ADS-ADS-5", "ads", ""}

	for _, in := range inputs {
		once := AdID(in)
		assert.Equal(t, once, AdID(once), "AdID debe ser idempotente para %q", in)
	}
}

func TestAdIDVariantesConvergen(t *testing.T) {
	// Las anotaciones manuales y el ID crudo deben agrupar juntas.
	variants := []string{"Ads-555", "ads 555", "ADS_555", "555", " 555 "}

	for _, v := range variants {
		assert.Equal(t, "555", AdID(v))
	}
}
