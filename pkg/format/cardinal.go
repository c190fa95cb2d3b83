package format

import "strconv"

var cardinalUnits = [...]string{
	"cero", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho",
	"nueve", "diez", "once", "doce", "trece", "catorce", "quince",
	"dieciséis", "diecisiete", "dieciocho", "diecinueve", "veinte",
	"veintiuno", "veintidós", "veintitrés", "veinticuatro", "veinticinco",
	"veintiséis", "veintisiete", "veintiocho", "veintinueve",
}

var cardinalTens = [...]string{
	"", "", "", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta",
	"ochenta", "noventa",
}

var cardinalHundreds = [...]string{
	"", "ciento", "doscientos", "trescientos", "cuatrocientos", "quinientos",
	"seiscientos", "setecientos", "ochocientos", "novecientos",
}

// Cardinal spells an integer as Spanish cardinal words, as used in the
// narrative passages of a filing ("quince (15) acreedores"). It covers
// 0 through 999.999; anything outside that range falls back to the numeral.
func Cardinal(n int) string {
	if n < 0 || n > 999_999 {
		return strconv.Itoa(n)
	}
	if n < 1000 {
		return cardinalBelowThousand(n)
	}
	thousands := n / 1000
	rest := n % 1000
	var head string
	if thousands == 1 {
		head = "mil"
	} else {
		head = cardinalBelowThousand(thousands) + " mil"
	}
	if rest == 0 {
		return head
	}
	return head + " " + cardinalBelowThousand(rest)
}

func cardinalBelowThousand(n int) string {
	if n == 100 {
		return "cien"
	}
	if n >= 100 {
		head := cardinalHundreds[n/100]
		rest := n % 100
		if rest == 0 {
			return head
		}
		return head + " " + cardinalBelowHundred(rest)
	}
	return cardinalBelowHundred(n)
}

func cardinalBelowHundred(n int) string {
	if n < 30 {
		return cardinalUnits[n]
	}
	head := cardinalTens[n/10]
	rest := n % 10
	if rest == 0 {
		return head
	}
	return head + " y " + cardinalUnits[rest]
}
