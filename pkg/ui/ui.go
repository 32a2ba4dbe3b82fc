// Package ui decides how twcfg output looks: rich terminal styling or plain
// text, detected from the output stream and NO_COLOR, and renders tables.
package ui
