package main

import (
	"agrodirect/cmd"
	_ "agrodirect/docs"
	"os"
)

// @title AgroDirect API
// @version 1.0
// @description Farmer-to-buyer produce marketplace storefront sessions.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
