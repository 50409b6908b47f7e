// Package appfs embeds the files the binaries ship with: database migrations and HTML templates.
package appfs

import "embed"

//go:embed migrations templates
var FS embed.FS
