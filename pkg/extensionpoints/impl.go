/*
 * Copyright (c) 2022-present unTill Pro, Ltd.
 */

package extensionpoints

import (
	"cmp"
	"context"
	"fmt"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"

	"github.com/voedger/extensionpoints/pkg/coreutils"
)

func newExtensionPoint(name string, cfg Config) *implIExtensionPoint {
	return &implIExtensionPoint{
		name:  name,
		cfg:   cfg,
		index: map[string]int{},
	}
}

func (ep *implIExtensionPoint) Name() string { return ep.name }

func (ep *implIExtensionPoint) Register(extensionID string, response Response, priority ...int) {
	if len(extensionID) == 0 {
		panic("extension id must not be empty, extension point " + ep.name)
	}
	if response == nil {
		panic("response must not be nil, extension " + extensionID + " of extension point " + ep.name)
	}
	if cb, ok := response.(callback); ok && cb.fn == nil {
		panic("callback must not be nil, extension " + extensionID + " of extension point " + ep.name)
	}
	ext := &extension{
		id:       extensionID,
		response: response,
		priority: priorityFromArgs(priority),
	}
	if i, ok := ep.index[extensionID]; ok {
		ep.exts[i] = ext
		if logger.IsVerbose() {
			logger.Verbose("extension", extensionID, "overwritten at", ep.name, "priority", ext.priority)
		}
		return
	}
	ep.index[extensionID] = len(ep.exts)
	ep.exts = append(ep.exts, ext)
	if logger.IsVerbose() {
		logger.Verbose("extension", extensionID, "registered at", ep.name, "priority", ext.priority)
	}
}

func (ep *implIExtensionPoint) Execute(ctx context.Context, input any, exitOnError bool) (outcomes []Outcome, err error) {
	exts := slices.Clone(ep.exts)
	if logger.IsTrace() {
		logger.Trace("executing", ep.name, "extensions", len(exts), "exitOnError", exitOnError)
	}
	mapper := func(_ int, ext *extension) (any, error) {
		return ep.invoke(ctx, ext, input)
	}

	if exitOnError {
		values, err := coreutils.FirstError(exts, ep.cfg.ConcurrencyLimit, mapper)
		if err != nil {
			if logger.IsTrace() {
				logger.Trace("executed", ep.name, "failed:", err)
			}
			return nil, err
		}
		outcomes = make([]Outcome, len(exts))
		for i, ext := range exts {
			outcomes[i] = Outcome{ExtensionID: ext.id, Value: values[i]}
		}
		if logger.IsTrace() {
			logger.Trace("executed", ep.name, "extensions", len(exts))
		}
		return outcomes, nil
	}

	values, errs := coreutils.SettleAll(exts, ep.cfg.ConcurrencyLimit, mapper)
	outcomes = make([]Outcome, len(exts))
	failed := 0
	for i, ext := range exts {
		outcomes[i] = Outcome{ExtensionID: ext.id, Value: values[i], Err: errs[i]}
		if errs[i] != nil {
			failed++
		}
	}
	if logger.IsTrace() {
		logger.Trace("executed", ep.name, "extensions", len(exts), "failed", failed)
	}
	return outcomes, nil
}

func (ep *implIExtensionPoint) ExecuteSerial(ctx context.Context, input any) (res any, err error) {
	exts := slices.Clone(ep.exts)
	slices.SortStableFunc(exts, func(a, b *extension) int {
		return cmp.Compare(a.priority, b.priority)
	})
	if logger.IsTrace() {
		logger.Trace("executing serially", ep.name, "extensions", len(exts))
	}
	res = input
	for _, ext := range exts {
		if res, err = ep.invoke(ctx, ext, res); err != nil {
			if logger.IsTrace() {
				logger.Trace("executed serially", ep.name, "stopped at", ext.id, "failed:", err)
			}
			return nil, err
		}
	}
	if logger.IsTrace() {
		logger.Trace("executed serially", ep.name, "extensions", len(exts))
	}
	return res, nil
}

func (ep *implIExtensionPoint) Extensions() []string {
	res := make([]string, len(ep.exts))
	for i, ext := range ep.exts {
		res[i] = ext.id
	}
	return res
}

func (ep *implIExtensionPoint) Len() int { return len(ep.exts) }

// invoke returns the static value as is or calls the callback
// callback panic is returned as ErrExtensionPanic
func (ep *implIExtensionPoint) invoke(ctx context.Context, ext *extension, input any) (res any, err error) {
	switch r := ext.response.(type) {
	case staticValue:
		return r.value, nil
	case callback:
		defer func() {
			if p := recover(); p != nil {
				err = ExtensionError{Point: ep.name, ExtensionID: ext.id, Err: fmt.Errorf("%w: %v", ErrExtensionPanic, p)}
			}
		}()
		if res, err = r.fn(ctx, input); err != nil {
			return nil, ExtensionError{Point: ep.name, ExtensionID: ext.id, Err: err}
		}
		return res, nil
	default:
		// unreachable: Response is sealed
		panic(fmt.Sprintf("unexpected response type %T", r))
	}
}
