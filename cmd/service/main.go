// File: cmd/service/main.go
// @title        Contacts API
// @version      1.0
// @description  Contact book REST API with JWT authentication.
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"os"

	_ "contacts-api/docs" // registers the swag spec served at /swagger
)

var (
	exitFunc = os.Exit
	osArgs   = os.Args[1:]
)

func main() {
	cmd := newRootCmd()
	cmd.SetArgs(osArgs)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}
