//go:generate go run github.com/google/wire/cmd/wire
//go:build wireinject
// +build wireinject

/*
 * Copyright (c) 2022-present unTill Pro, Ltd.
 */

package main

import (
	"github.com/google/wire"

	"github.com/voedger/extensionpoints/pkg/extensionpoints"
)

func wireHost(cfg extensionpoints.Config) Host {
	panic(
		wire.Build(
			extensionpoints.ProviderSet,
			wire.Struct(new(Host), "*"),
		),
	)
}
