// Package assets holds files compiled into the binary.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.txt
var FS embed.FS

// WordsFile is the name of the built-in word list inside FS.
const WordsFile = "words.txt"

// OpenWords opens the built-in word list. The caller closes it.
func OpenWords() (fs.File, error) {
	return FS.Open(WordsFile)
}
