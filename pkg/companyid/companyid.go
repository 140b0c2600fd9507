package companyid

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// Prefix literal de todos los identificadores de empresa.
const Prefix = "CMP-"

const (
	base36      = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixChars = 6
)

// New genera un identificador de empresa: "CMP-" + epoch en milisegundos +
// sufijo aleatorio de 6 caracteres base36. Unicidad práctica, no criptográfica:
// la colisión requiere mismo milisegundo y mismo sufijo.
func New() string {
	var sb strings.Builder
	sb.WriteString(Prefix)
	sb.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	for i := 0; i < suffixChars; i++ {
		sb.WriteByte(base36[rand.IntN(len(base36))])
	}
	return sb.String()
}
