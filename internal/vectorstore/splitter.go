package vectorstore

import "studysupport/internal/domain"

// SplitText cuts text into fixed-size windows with a fixed overlap between
// consecutive windows: start_{i+1} = start_i + size - overlap. The overlap
// keeps facts spanning a window boundary retrievable from at least one chunk.
//
// Offsets are rune positions. Splitting is deterministic and total: the
// concatenation of chunk spans minus overlaps reconstructs the input exactly.
// Empty input yields no chunks; any other input of length at most size yields
// exactly one.
func SplitText(text string, size, overlap int) []domain.Chunk {
	if size <= 0 || overlap < 0 || overlap >= size {
		return nil
	}

	runes := []rune(text)
	total := len(runes)
	if total == 0 {
		return nil
	}

	step := size - overlap
	var chunks []domain.Chunk
	for start := 0; ; start += step {
		end := start + size
		if end > total {
			end = total
		}
		chunks = append(chunks, domain.Chunk{
			Text:  string(runes[start:end]),
			Start: start,
			End:   end,
		})
		if end == total {
			break
		}
	}
	return chunks
}
