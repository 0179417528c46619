/*
 * Copyright (c) 2022-present unTill Pro, Ltd.
 */

package extensionpoints

import "github.com/google/wire"

// ProviderSet provides one IRegistry per wire injector, normally one per process
var ProviderSet = wire.NewSet(Provide)

// New creates an empty registry with DefaultConfig
func New() IRegistry {
	return Provide(DefaultConfig)
}

func Provide(cfg Config) IRegistry {
	return &implIRegistry{
		cfg:    cfg,
		points: map[string]IExtensionPoint{},
	}
}

// Value makes a response that is returned as is on execution
func Value(v any) Response {
	return staticValue{value: v}
}

// Callback makes a response that is called with the execution input
func Callback(fn CallbackFunc) Response {
	return callback{fn: fn}
}
