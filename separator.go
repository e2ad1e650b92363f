package typedframe

import "strings"

// InferSeparator counts, over every record of the file, how many times each
// candidate occurs, and returns the candidate with the highest total count.
// Ties are broken by candidate order (first listed wins); if every
// candidate occurs zero times, the first candidate is returned (comma, by
// convention, when callers go through SeparatorInfer's default list).
func InferSeparator(path string, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return ",", nil
	}

	counts := make([]int, len(candidates))
	file := NewDatasetFile(path, "\"", false)
	err := file.ReadRecords(func(record string) error {
		for i, c := range candidates {
			counts[i] += strings.Count(record, c)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	best := 0
	for i := 1; i < len(candidates); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	return candidates[best], nil
}
