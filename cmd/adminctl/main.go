// Command adminctl provisions and maintains administrative accounts
// directly against the credential store.
//
// Usage:
//
//	adminctl create      -email <email> [-role admin] [server flags]
//	adminctl unlock      -email <email> [server flags]
//	adminctl activate    -email <email> [server flags]
//	adminctl deactivate  -email <email> [server flags]
//	adminctl reset-token -email <email> [server flags]
//
// Server flags, the JSON config file and environment variables are read
// exactly as the server reads them, so -d selects the database.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/adminauth/internal/server"
)

func main() {

	ctx := context.Background()

	if err := run(ctx, os.Args[1:], os.Stdout, server.OpenStore); err != nil {
		fmt.Fprintln(os.Stderr, "adminctl:", err)
		os.Exit(1)
	}

}
