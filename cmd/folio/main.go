// cmd/folio/main.go
package main

import (
	"context"

	"github.com/dalemusser/waffle/app"
	"github.com/motadesign/folio/internal/app/bootstrap"
)

func main() {
	app.Run(context.Background(), bootstrap.Hooks)
}
