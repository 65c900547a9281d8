package event

import "fmt"

func cacheKeyEventDetails(id int64) string {
	return fmt.Sprintf("event:%d", id)
}
