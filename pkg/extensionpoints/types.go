/*
 * Copyright (c) 2020-present unTill Pro, Ltd.
 */

package extensionpoints

import "context"

// Response is either a static value or a callback, see Value() and Callback()
type Response interface {
	isResponse()
}

// CallbackFunc is a unary extension callback
type CallbackFunc func(ctx context.Context, input any) (any, error)

type staticValue struct {
	value any
}

func (staticValue) isResponse() {}

type callback struct {
	fn CallbackFunc
}

func (callback) isResponse() {}

// Outcome is the result of a single extension produced by IExtensionPoint.Execute
type Outcome struct {
	ExtensionID string
	Value       any
	Err         error
}

func (o Outcome) OK() bool { return o.Err == nil }

type Config struct {
	// Max number of callbacks Execute runs at once. 0 -> unlimited
	ConcurrencyLimit int
}

type extension struct {
	id       string
	response Response
	priority int
}

type implIExtensionPoint struct {
	name  string
	cfg   Config
	exts  []*extension
	index map[string]int // extension id -> position in exts
}

type implIRegistry struct {
	cfg    Config
	points map[string]IExtensionPoint
}
