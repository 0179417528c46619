/*
 * Copyright (c) 2020-present unTill Pro, Ltd.
 */

package extensionpoints

const DefaultPriority = 0

var DefaultConfig = Config{
	ConcurrencyLimit: 0,
}
