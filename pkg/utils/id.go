package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID produce un identificador corto para snapshots de reporte.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 10)
}
