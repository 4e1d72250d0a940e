// Package recetario plans meals from a cookbook and keeps track of what was cooked.
//
// It is built around three spreadsheets:
//   - the recipes (comidas.xlsx): the dry quantity of every ingredient of every dish.
//   - the equivalences (equivalencias.xlsx): for each ingredient, an equivalence
//     key and value. Ingredients sharing a key can replace one another, the
//     quantity being scaled by the ratio of their values.
//   - the history (historico_comidas.xlsx): one row per ingredient of every meal cooked.
//
// The first two are read-only reference data, loaded once in a Kitchen. The
// history is managed by a HistoryStore that rewrites the whole file on every change.
//
// This package serves as the foundational logic for the `rcp` command-line tool.
package recetario
