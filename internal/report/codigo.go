package report

import (
	"strconv"
	"strings"
)

// Gramática do código de ferramenta embutido no código de produto: prefixo
// de 3 letras seguido de 3 dígitos, ou de 2 letras seguido de 4 dígitos
// (largura fixa de 6 caracteres). A ausência de casamento é o resultado
// normal para códigos que não são de ferramenta, nunca um erro.

const unidadeComprimento = " mm"

// ExtrairComprimentoAcabado decodifica o comprimento acabado: a partir do
// 9º caractere do código, a sequência inicial de dígitos. Vazio quando o
// código é curto demais ou não há dígitos na posição.
func ExtrairComprimentoAcabado(produto string) string {
	if len(produto) <= 8 {
		return ""
	}
	resto := produto[8:]
	fim := 0
	for fim < len(resto) && resto[fim] >= '0' && resto[fim] <= '9' {
		fim++
	}
	if fim == 0 {
		return ""
	}
	valor, err := strconv.Atoi(resto[:fim])
	if err != nil {
		return ""
	}
	return strconv.Itoa(valor) + unidadeComprimento
}

// ExtrairFerramenta decodifica o código de ferramenta no formato
// "LLL-DDD" ou "LL-DDDD". Vazio quando o prefixo não casa com nenhuma das
// duas alternativas.
func ExtrairFerramenta(produto string) string {
	if produto == "" {
		return ""
	}
	s := strings.ToUpper(produto)
	letras, resto, digitos := prefixoFerramenta(s)
	if letras == "" {
		return ""
	}
	nums := coletarDigitos(resto, digitos)
	return letras + "-" + nums
}

func prefixoFerramenta(s string) (letras, resto string, digitos int) {
	if len(s) >= 4 && ehLetra(s[0]) && ehLetra(s[1]) && ehLetra(s[2]) && ehAlfaNum(s[3]) {
		return s[:3], s[3:], 3
	}
	if len(s) >= 3 && ehLetra(s[0]) && ehLetra(s[1]) && ehAlfaNum(s[2]) {
		return s[:2], s[2:], 4
	}
	return "", "", 0
}

// coletarDigitos varre o restante acumulando dígitos até a largura pedida.
// A letra O é corrigida para 0 (confusão comum de digitação/OCR); qualquer
// outro caractere é pulado. Faltando dígitos no fim, completa com zeros.
func coletarDigitos(resto string, digitos int) string {
	nums := make([]byte, 0, digitos)
	for i := 0; i < len(resto) && len(nums) < digitos; i++ {
		switch ch := resto[i]; {
		case ch >= '0' && ch <= '9':
			nums = append(nums, ch)
		case ch == 'O':
			nums = append(nums, '0')
		}
	}
	for len(nums) < digitos {
		nums = append(nums, '0')
	}
	return string(nums)
}

func ehLetra(ch byte) bool {
	return ch >= 'A' && ch <= 'Z'
}

func ehAlfaNum(ch byte) bool {
	return ehLetra(ch) || (ch >= '0' && ch <= '9')
}
