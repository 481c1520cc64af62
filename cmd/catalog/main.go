// catalog consulta y mantiene el directorio desde la línea de comandos.
//
// Uso:
//
//	go run ./cmd/catalog search "lease" --sort rating --free-trial
//	go run ./cmd/catalog show appfolio
//	go run ./cmd/catalog validate --data-dir ./data
//	go run ./cmd/catalog import --from ./data   (CATALOG_SOURCE=postgres)
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
