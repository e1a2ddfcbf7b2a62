// Package main is the entry point for the ipe API server and its tooling.
package main

import (
	"os"

	_ "ipe/docs" // swagger docs
)

// @title           Ipê API
// @version         1.0
// @description     Invite-gated platform where researchers publish short summaries of their findings.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT from POST /auth/login, sent as "Bearer {token}".

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
