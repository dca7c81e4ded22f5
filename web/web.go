// Package web embeds the portfolio front end served by the relay.
package web

import "embed"

// Assets holds the static site under "public".
//
//go:embed public
var Assets embed.FS

// Root is the directory inside Assets that is served at "/".
const Root = "public"
