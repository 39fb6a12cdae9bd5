package entities

// BrazilianStates holds the 27 federative unit codes accepted as invoice state.
var BrazilianStates = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA",
	"MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI", "RJ", "RN",
	"RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

func IsBrazilianState(s string) bool {
	for _, uf := range BrazilianStates {
		if uf == s {
			return true
		}
	}
	return false
}
