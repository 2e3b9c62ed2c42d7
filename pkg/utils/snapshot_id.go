package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	snapshotAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	snapshotIDSize   = 10
)

// NewSnapshotID gera o identificador de uma carga da tabela de vendas
func NewSnapshotID() (string, error) {
	return gonanoid.Generate(snapshotAlphabet, snapshotIDSize)
}
