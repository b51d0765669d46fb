package editor

import "slices"

// row holds one document line in both its raw form (what the user typed)
// and its rendered form (tabs expanded), plus one highlight class per
// rendered byte. render and hl are regenerated together on every change.
type row struct {
	chars         []byte
	render        []byte
	hl            []int
	hlOpenComment bool
}

// updateRender rebuilds the rendered form from the raw characters. Each tab
// advances to the next TAB_STOP boundary; everything else maps one-to-one.
func (r *row) updateRender() {
	tabs := 0
	for _, c := range r.chars {
		if c == '\t' {
			tabs++
		}
	}

	// Worst case tab expansion
	r.render = make([]byte, 0, len(r.chars)+tabs*(TAB_STOP-1))

	for _, c := range r.chars {
		if c == '\t' {
			r.render = append(r.render, ' ')
			for len(r.render)%TAB_STOP != 0 {
				r.render = append(r.render, ' ')
			}
		} else {
			r.render = append(r.render, c)
		}
	}
}

// Convert cursor X to render X, since rendered characters may differ from original characters (e.g., tabs)
func (r *row) cxToRx(cx int) int {
	rx := 0
	for j := 0; j < cx && j < len(r.chars); j++ {
		if r.chars[j] == '\t' {
			rx += TAB_STOP - (rx % TAB_STOP) // Expand tab to next TAB_STOP boundary
		} else {
			rx++
		}
	}
	return rx
}

func (r *row) rxToCx(rx int) int {
	curRx := 0
	var cx int
	for cx = 0; cx < len(r.chars); cx++ {
		if r.chars[cx] == '\t' {
			curRx += (TAB_STOP - 1) - (curRx % TAB_STOP)
		}
		curRx++

		if curRx > rx {
			return cx
		}
	}
	return cx
}

func (r *row) insertChar(at int, c byte) {
	if at < 0 || at > len(r.chars) {
		at = len(r.chars)
	}
	r.chars = slices.Insert(r.chars, at, c)
}

func (r *row) deleteChar(at int) {
	if at < 0 || at >= len(r.chars) {
		return
	}
	r.chars = slices.Delete(r.chars, at, at+1)
}

func (r *row) appendChars(s []byte) {
	r.chars = append(r.chars, s...)
}
