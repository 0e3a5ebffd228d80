package service

import "strings"

// Method buckets used by the closure arithmetic.
const (
	MethodCash     = "cash"
	MethodTransfer = "transfer"
	MethodOther    = "other"
)

var (
	cashKeywords     = []string{"efectivo", "cash"}
	transferKeywords = []string{"transfer", "transferencia", "dep", "bank", "tarjeta"}
)

// ClassifyMethod buckets a free-text payment method by substring match,
// case-insensitively. Cash keywords win over transfer keywords, so
// "deposito en efectivo" counts as cash. Anything unmatched is other.
func ClassifyMethod(method string) string {
	m := strings.ToLower(method)
	for _, kw := range cashKeywords {
		if strings.Contains(m, kw) {
			return MethodCash
		}
	}
	for _, kw := range transferKeywords {
		if strings.Contains(m, kw) {
			return MethodTransfer
		}
	}
	return MethodOther
}
