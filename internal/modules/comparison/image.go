// README: Image resolution and the load-failure fallback transition.
package comparison

import "strings"

// ImageState is what the renderer shows for one vehicle. Src starts as the
// option's own image (or the default) and moves to Fallback at most once.
type ImageState struct {
	Src      string `json:"src"`
	Fallback string `json:"fallback"`
	Failed   bool   `json:"failed"`
}

func ResolveImage(raw string, c Category) ImageState {
	fallback := DefaultImageFor(c)
	src := strings.TrimSpace(raw)
	if src == "" {
		src = fallback
	}
	return ImageState{Src: src, Fallback: fallback}
}

// OnLoadFailure is applied when Src failed to load in the browser. It swaps
// in the fallback once; a second failure leaves the state unchanged.
func (s ImageState) OnLoadFailure() ImageState {
	if s.Failed || s.Src == s.Fallback {
		return ImageState{Src: s.Src, Fallback: s.Fallback, Failed: true}
	}
	return ImageState{Src: s.Fallback, Fallback: s.Fallback, Failed: true}
}

// CanFallback reports whether a load failure would change the shown image.
func (s ImageState) CanFallback() bool {
	return !s.Failed && s.Src != s.Fallback
}
