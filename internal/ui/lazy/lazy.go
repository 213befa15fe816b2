// Package lazy defers loading images until they scroll into view.
package lazy

// Image is an image element; DataSrc holds the deferred source until it is loaded.
type Image struct {
	ID      string
	Src     string
	DataSrc string
}

// Loaded reports whether the real source is in place.
func (img *Image) Loaded() bool {
	return img.DataSrc == "" && img.Src != ""
}

func (img *Image) load() {
	img.Src = img.DataSrc
	img.DataSrc = ""
}

// Loader watches deferred images.
type Loader struct {
	watched map[string]*Image
}

// NewLoader collects the images carrying a deferred source. Without visibility
// observation every deferred image is loaded immediately.
func NewLoader(observerAvailable bool, images ...*Image) *Loader {
	l := &Loader{watched: make(map[string]*Image)}
	for _, img := range images {
		if img.DataSrc == "" {
			continue
		}
		if !observerAvailable {
			img.load()
			continue
		}
		l.watched[img.ID] = img
	}
	return l
}

// Visible swaps in the real source of a watched image and stops watching it.
func (l *Loader) Visible(id string) {
	img, ok := l.watched[id]
	if !ok {
		return
	}
	img.load()
	delete(l.watched, id)
}

// Pending returns how many images still wait for visibility.
func (l *Loader) Pending() int {
	return len(l.watched)
}
