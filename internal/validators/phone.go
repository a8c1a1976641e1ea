package validators

import "strings"

// NormalizePhone reduz o telefone aos dígitos; é a chave de
// identificação do cliente, então "(11) 98765-4321" e "11987654321"
// precisam colidir.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidPhone só exige que sobre algum dígito após a normalização;
// comprimento não é restringido, números curtos de teste e ramais
// internos são admitidos.
func IsValidPhone(raw string) bool {
	return NormalizePhone(raw) != ""
}
