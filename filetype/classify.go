package filetype

// Classifier maps a path to the Type of the entry it names.
// Implementations never fail; problems degrade to None.
type Classifier interface {
	Classify(path string) Type
}

// Disabled classifies everything as None without touching the filesystem.
type Disabled struct{}

// Classify implements Classifier.
func (Disabled) Classify(string) Type {
	return None
}

// Lstat classifies entries by querying the filesystem without following
// symbolic links.
type Lstat struct{}

// Classify implements Classifier.
func (Lstat) Classify(path string) Type {
	return lstat(path)
}

// Func adapts an ordinary function to the Classifier interface.
type Func func(path string) Type

// Classify implements Classifier.
func (f Func) Classify(path string) Type {
	return f(path)
}

// New returns Lstat when enabled and Disabled otherwise.
func New(enabled bool) Classifier {
	if enabled {
		return Lstat{}
	}
	return Disabled{}
}
