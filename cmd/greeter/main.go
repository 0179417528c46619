/*
 * Copyright (c) 2022-present unTill Pro, Ltd.
 */

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/extensionpoints/pkg/extensionpoints"
)

func main() {
	host := wireHost(extensionpoints.DefaultConfig)
	host.Setup()

	name := ""
	if len(os.Args) > 1 {
		name = os.Args[1]
	}
	greeting, _, err := host.Greet(context.Background(), name)
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
	fmt.Println(greeting)
}
