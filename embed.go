// embed.go - built-in effect packs.
// Must live at the repository root because //go:embed can only reach
// files below the declaring package's directory.
package main

import "embed"

//go:embed data/effects
var dataFS embed.FS
