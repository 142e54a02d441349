// Package catalog implements the on-disk tier catalog format: for tier
// n, file out/n.txt holds one line per chunk, each line the chunk's
// checked representatives base64-encoded (per package graph's
// ToString) and joined by ";". Readers tolerate stray "{" and "}"
// characters and ignore fragments shorter than two characters.
package catalog
