/*
 * Copyright (c) 2020-present unTill Pro, Ltd.
 */

package extensionpoints

import (
	"errors"
	"fmt"
)

var ErrExtensionPanic = errors.New("extension panic")

// ExtensionError is returned for every failed extension. Unwrap gives the error returned by the callback
type ExtensionError struct {
	Point       string
	ExtensionID string
	Err         error
}

func (e ExtensionError) Error() string {
	return fmt.Sprintf("extension point '%s', extension '%s': %s", e.Point, e.ExtensionID, e.Err.Error())
}

func (e ExtensionError) Unwrap() error {
	return e.Err
}
