// Package batch splits identifier sequences into contiguous fixed-size
// groups. Batching bounds the request URL length (a batch of 100 ids stays
// comfortably under common 8KB URL limits); it is not a throughput knob.
package batch

import "fmt"

// Split partitions ids into contiguous groups of at most size elements,
// preserving order. The final group may be smaller. Size must be positive.
func Split(ids []string, size int) ([][]string, error) {
	if size < 1 {
		return nil, fmt.Errorf("batch size must be positive, got %d", size)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	batches := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, ids[start:end])
	}
	return batches, nil
}
