/*
 * Copyright (c) 2020-present unTill Pro, Ltd.
 */

package extensionpoints

import "context"

// IExtensionPoint is a named hook. Extensions are registered once during setup and executed many times.
//
// Not thread safe: all Register calls must complete before any Execute or ExecuteSerial starts.
type IExtensionPoint interface {
	Name() string

	// Inserts or overwrites the extension with the given id. Overwritten extension keeps its registration slot.
	// Optional priority (default 0) is used by ExecuteSerial only. More than one priority -> panic
	Register(extensionID string, response Response, priority ...int)

	// Runs all extensions concurrently, each one receives the same input.
	//
	// exitOnError == false: waits for all extensions, returns one Outcome per extension
	// in registration order, err is always nil.
	//
	// exitOnError == true: returns the first extension error as soon as it happens, the rest extensions
	// keep running and their results are discarded. On success every Outcome is OK.
	Execute(ctx context.Context, input any, exitOnError bool) (outcomes []Outcome, err error)

	// Runs extensions one by one ordered by priority ascending, ties are kept in registration order.
	// The first extension receives input, each next one receives the result of the previous one.
	// Stops at the first error. Returns input as is if there are no extensions.
	ExecuteSerial(ctx context.Context, input any) (res any, err error)

	// Extension ids in registration order
	Extensions() []string
	Len() int
}

// IRegistry indexes extension points by name.
//
// Not thread safe: Add and Register are expected during setup only, before concurrent execution starts.
type IRegistry interface {
	// Creates new empty extension point. Existing point with the same name is replaced and its extensions are lost
	Add(name string) IExtensionPoint

	// Creates the point if it does not exist then registers the extension on it
	Register(name string, extensionID string, response Response, priority ...int)

	// Returns existing points in the order of names, unknown names are skipped
	Get(names ...string) []IExtensionPoint

	// Returns all points by name. The map is a copy
	Points() map[string]IExtensionPoint

	// Executes the point with exitOnError == false. Unknown point -> nil
	Execute(ctx context.Context, name string, input any) []Outcome

	// Executes the point serially. Unknown point -> nil, nil
	ExecuteSerial(ctx context.Context, name string, input any) (res any, err error)
}
