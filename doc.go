// Package gellermann checks and generates Gellermann series: two-symbol
// trial orders for perception experiments that are balanced, free of long
// runs and close to chance level against simple alternation strategies.
//
// 🚀 What is in the box?
//
//	A small, dependency-light library with one job per subpackage:
//		• predicate/ — the five validity criteria over boolean series
//		• generator/ — rejection sampling and exhaustive enumeration
//		• symbols/   — alphabets and symbol <-> boolean mappings
//		• table/     — wide and long tables, CSV/TSV rendering
//		• config/    — YAML generation profiles
//
// and a command-line front end in cmd/gellermann.
//
// ✨ Quick start:
//
//	ok, err := gellermann.IsGellermannSeries(strings.Split("LLRRLRLLRR", ""), gellermann.DefaultTolerance)
//
//	seq, err := gellermann.GenerateGellermannSeries(10, 5, gellermann.DefaultAlphabet,
//		generator.WithSeed(42))
//	for s := range seq {
//		fmt.Println(s)
//	}
//
// Generation is lazy: series are produced one per pull, so a caller may
// report progress or stop early simply by leaving the range loop.
//
//	go get github.com/katalvlaran/gellermann
package gellermann
