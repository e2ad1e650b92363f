package typedframe

import (
	"strings"

	"github.com/tiendc/gofn"
)

// ProcessorFunc transforms a raw cell's text before classification or
// typed parsing sees it. ReadingOptions.Processors runs a chain of these
// over every cell, in order, before the TypeSystem is consulted.
type ProcessorFunc func(s string) string

func ProcessorTrim(s string) string {
	return strings.TrimSpace(s)
}

func ProcessorTrimPrefix(prefix string) ProcessorFunc {
	return func(s string) string { return strings.TrimPrefix(s, prefix) }
}

func ProcessorTrimSuffix(suffix string) ProcessorFunc {
	return func(s string) string { return strings.TrimSuffix(s, suffix) }
}

func ProcessorReplace(old, new string, n int) ProcessorFunc {
	return func(s string) string { return strings.Replace(s, old, new, n) }
}

func ProcessorReplaceAll(old, new string) ProcessorFunc {
	return func(s string) string { return strings.ReplaceAll(s, old, new) }
}

func ProcessorLower(s string) string {
	return strings.ToLower(s)
}

func ProcessorUpper(s string) string {
	return strings.ToUpper(s)
}

func ProcessorNumberGroup(fractionSep, groupSep byte) ProcessorFunc {
	return func(s string) string { return gofn.NumberFmtGroup(s, fractionSep, groupSep) }
}

func ProcessorNumberUngroup(groupSep byte) ProcessorFunc {
	return func(s string) string { return gofn.NumberFmtUngroup(s, groupSep) }
}

func ProcessorNumberGroupComma(s string) string {
	return gofn.NumberFmtGroup(s, '.', ',')
}

func ProcessorNumberUngroupComma(s string) string {
	return gofn.NumberFmtUngroup(s, ',')
}

// applyProcessors runs s through every processor in chain, in order.
func applyProcessors(s string, chain []ProcessorFunc) string {
	for _, p := range chain {
		s = p(s)
	}
	return s
}
