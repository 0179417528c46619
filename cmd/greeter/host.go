/*
 * Copyright (c) 2022-present unTill Pro, Ltd.
 */

package main

import (
	"context"
	"strings"

	"github.com/voedger/extensionpoints/pkg/extensionpoints"
)

const (
	epGreeting  = "greeting"
	epDecorate  = "decorate"
	defaultName = "world"
)

// Host owns the process registry, built by wireHost
type Host struct {
	Registry extensionpoints.IRegistry
}

// Setup registers the built-in extensions. Must be called before Greet
func (h Host) Setup() {
	h.Registry.Register(epGreeting, "salutation", extensionpoints.Value("Hello"))
	h.Registry.Register(epGreeting, "punctuation", extensionpoints.Callback(func(_ context.Context, input any) (any, error) {
		return input.(string) + "!", nil
	}), 10)

	h.Registry.Add(epDecorate)
}

// Greet builds the greeting serially then lets decorators inspect it concurrently
func (h Host) Greet(ctx context.Context, name string) (greeting string, decorations []string, err error) {
	if len(name) == 0 {
		name = defaultName
	}
	res, err := h.Registry.ExecuteSerial(ctx, epGreeting, nil)
	if err != nil {
		return "", nil, err
	}
	greeting = strings.TrimSuffix(res.(string), "!") + ", " + name + "!"
	for _, o := range h.Registry.Execute(ctx, epDecorate, greeting) {
		if !o.OK() {
			return "", nil, o.Err
		}
		decorations = append(decorations, o.Value.(string))
	}
	return greeting, decorations, nil
}
