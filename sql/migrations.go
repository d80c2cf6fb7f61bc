// Package migrations embute os arquivos goose deste diretório no binário.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
