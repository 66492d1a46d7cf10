package source

import "os"

const defaultMode os.FileMode = 0644

// File represents a source file held as a single mutable text buffer
type File struct {
	URL  string      // File location
	Text string      // Current buffer
	Mode os.FileMode // Mode used when the buffer is written back

	loaded uint64 // fingerprint of the text as loaded
	dirty  bool
}

// NewFile creates a file buffer for the supplied text
func NewFile(URL, text string, mode os.FileMode) *File {
	if mode == 0 {
		mode = defaultMode
	}
	ret := &File{URL: URL, Text: text, Mode: mode}
	ret.loaded, _ = Hash([]byte(text))
	return ret
}

// Set replaces the buffer, marking the file dirty when the text differs
func (f *File) Set(text string) {
	if text == f.Text {
		return
	}
	f.Text = text
	f.dirty = true
}

// Dirty returns true once any edit mutated the buffer
func (f *File) Dirty() bool {
	return f.dirty
}

// Changed returns true if the buffer differs from the loaded content
func (f *File) Changed() bool {
	if !f.dirty {
		return false
	}
	current, err := Hash([]byte(f.Text))
	if err != nil {
		return true
	}
	return current != f.loaded
}

func (f *File) commit() {
	f.loaded, _ = Hash([]byte(f.Text))
	f.dirty = false
}
