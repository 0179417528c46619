/*
 * Copyright (c) 2022-present unTill Pro, Ltd.
 */

package extensionpoints

import "fmt"

func priorityFromArgs(priority []int) int {
	switch len(priority) {
	case 0:
		return DefaultPriority
	case 1:
		return priority[0]
	default:
		panic(fmt.Sprintf("priority len must be 0 or 1, got %d", len(priority)))
	}
}
