// Package content embeds the stock levels and dialog file.
package content

import "embed"

// DialogFile is the name of the dialog blob.
const DialogFile = "dialog.txt"

// StartLevel is the level a new game begins in.
const StartLevel = "town"

//go:embed *.txt
var FS embed.FS
