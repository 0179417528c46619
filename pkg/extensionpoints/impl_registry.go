/*
 * Copyright (c) 2022-present unTill Pro, Ltd.
 */

package extensionpoints

import (
	"context"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
)

func (r *implIRegistry) Add(name string) IExtensionPoint {
	return r.add(name)
}

func (r *implIRegistry) add(name string) IExtensionPoint {
	if len(name) == 0 {
		panic("extension point name must not be empty")
	}
	if logger.IsVerbose() {
		if _, ok := r.points[name]; ok {
			logger.Verbose("extension point", name, "reset")
		} else {
			logger.Verbose("extension point", name, "added")
		}
	}
	ep := newExtensionPoint(name, r.cfg)
	r.points[name] = ep
	return ep
}

func (r *implIRegistry) Register(name string, extensionID string, response Response, priority ...int) {
	ep, ok := r.points[name]
	if !ok {
		ep = r.add(name)
	}
	ep.Register(extensionID, response, priority...)
}

func (r *implIRegistry) Get(names ...string) []IExtensionPoint {
	res := make([]IExtensionPoint, 0, len(names))
	for _, name := range names {
		if ep, ok := r.points[name]; ok {
			res = append(res, ep)
		}
	}
	return res
}

func (r *implIRegistry) Points() map[string]IExtensionPoint {
	return maps.Clone(r.points)
}

func (r *implIRegistry) Execute(ctx context.Context, name string, input any) []Outcome {
	ep, ok := r.points[name]
	if !ok {
		return nil
	}
	// never fails when exitOnError == false
	outcomes, _ := ep.Execute(ctx, input, false)
	return outcomes
}

func (r *implIRegistry) ExecuteSerial(ctx context.Context, name string, input any) (res any, err error) {
	ep, ok := r.points[name]
	if !ok {
		return nil, nil
	}
	return ep.ExecuteSerial(ctx, input)
}
